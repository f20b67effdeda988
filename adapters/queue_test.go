// File: adapters/queue_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO behavior is cross-checked against eapache/queue as an oracle
// under randomized operation sequences.

package adapters_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/smallvec/adapters"
)

func TestQueueBasic(t *testing.T) {
	q := adapters.NewQueue[int](2)
	for i := 1; i <= 5; i++ {
		if err := q.Enqueue(i); err != nil {
			t.Fatal(err)
		}
	}
	if front, ok := q.Peek(); !ok || front != 1 {
		t.Fatalf("peek: got %d/%v, want 1/true", front, ok)
	}
	for want := 1; want <= 5; want++ {
		got, ok := q.Dequeue()
		if !ok || got != want {
			t.Fatalf("dequeue: got %d/%v, want %d", got, ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("dequeue on empty queue reported ok")
	}
	if q.Cap() != 2 {
		t.Fatalf("drained queue cap: got %d, want 2", q.Cap())
	}
}

func TestQueueAgainstOracle(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		q := adapters.NewQueue[int](4)
		oracle := queue.New()

		for i := 0; i < 2000; i++ {
			if rng.Intn(2) == 0 {
				x := rng.Intn(100000)
				if err := q.Enqueue(x); err != nil {
					t.Fatal(err)
				}
				oracle.Add(x)
			} else {
				got, ok := q.Dequeue()
				if ok != (oracle.Length() > 0) {
					t.Fatalf("seed %d op %d: ok=%v oracle len=%d", seed, i, ok, oracle.Length())
				}
				if ok {
					if want := oracle.Remove().(int); got != want {
						t.Fatalf("seed %d op %d: got %d, want %d", seed, i, got, want)
					}
				}
			}
			if q.Len() != oracle.Length() {
				t.Fatalf("seed %d op %d: len=%d oracle=%d", seed, i, q.Len(), oracle.Length())
			}
			if front, ok := q.Peek(); ok {
				if want := oracle.Peek().(int); front != want {
					t.Fatalf("seed %d op %d: peek=%d oracle=%d", seed, i, front, want)
				}
			}
		}
	}
}
