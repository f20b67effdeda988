// Package vec
// Author: momentics <momentics@gmail.com>
//
// Inline-first growable vector. Elements live in a fixed static region
// embedded in the container for as long as they fit; once they do not,
// storage migrates to an allocator-provided heap buffer sized by a 3/2
// growth policy, and migrates back to the static region as soon as an
// erasure shrinks the data under the static capacity again.
//
// The container is a single-threaded value type: no locking, no
// goroutines, no suspension. Callers needing cross-goroutine access must
// synchronize externally.
//
// See vector.go for state and accessors, insert.go and erase.go for the
// fused relocation paths, capacity.go for the growth policy.
package vec
