// File: vec/property_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Randomized operation sequences checked against a plain slice oracle.

package vec_test

import (
	"math/rand"
	"testing"

	"github.com/momentics/smallvec/vec"
)

func TestVectorPropertyBased(t *testing.T) {
	const static = 4
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		v := vec.New[int](static)
		oracle := []int{}

		for i := 0; i < 3000; i++ {
			switch op := rng.Intn(10); {
			case op < 4: // append
				x := rng.Intn(100000)
				if err := v.Append(x); err != nil {
					t.Fatal(err)
				}
				oracle = append(oracle, x)
			case op < 6: // insert at random position
				x := rng.Intn(100000)
				pos := rng.Intn(len(oracle) + 1)
				if _, err := v.Insert(pos, x); err != nil {
					t.Fatal(err)
				}
				oracle = append(oracle[:pos], append([]int{x}, oracle[pos:]...)...)
			case op < 8: // erase random range
				if len(oracle) == 0 {
					continue
				}
				first := rng.Intn(len(oracle))
				last := first + rng.Intn(len(oracle)-first+1)
				v.EraseRange(first, last)
				oracle = append(oracle[:first], oracle[last:]...)
			case op < 9: // pop
				val, ok := v.Pop()
				if ok != (len(oracle) > 0) {
					t.Fatalf("seed %d op %d: pop ok=%v oracle len=%d", seed, i, ok, len(oracle))
				}
				if ok {
					if want := oracle[len(oracle)-1]; val != want {
						t.Fatalf("seed %d op %d: pop got %d, want %d", seed, i, val, want)
					}
					oracle = oracle[:len(oracle)-1]
				}
			default: // occasional clear
				if rng.Intn(50) == 0 {
					v.Clear()
					oracle = oracle[:0]
				}
			}

			if v.Len() != len(oracle) {
				t.Fatalf("seed %d op %d: len=%d oracle=%d", seed, i, v.Len(), len(oracle))
			}
			if v.Cap() < v.Len() {
				t.Fatalf("seed %d op %d: cap %d < len %d", seed, i, v.Cap(), v.Len())
			}
			// Storage tag invariants: the static region is active exactly
			// when cap == static, and a heap buffer implies size > static.
			if v.Cap() < static {
				t.Fatalf("seed %d op %d: cap %d below static %d", seed, i, v.Cap(), static)
			}
			if v.Cap() > static && v.Len() <= static {
				t.Fatalf("seed %d op %d: heap active at size %d <= static %d",
					seed, i, v.Len(), static)
			}
			j := 0
			for x := range v.Iter() {
				if x != oracle[j] {
					t.Fatalf("seed %d op %d: elem %d = %d, oracle %d", seed, i, j, x, oracle[j])
				}
				j++
			}
			if j != len(oracle) {
				t.Fatalf("seed %d op %d: iterated %d of %d", seed, i, j, len(oracle))
			}
		}
	}
}
