// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values for the smallvec library.

package api

import "errors"

// Sentinel errors used across the library.
var (
	// ErrOutOfRange is returned by checked element access when the index
	// is not inside [0, Len()). This is the only error well-behaved callers
	// are expected to handle programmatically.
	ErrOutOfRange = errors.New("index out of range")

	// ErrResourceExhausted is reported when a backing buffer cannot be
	// acquired. The failed operation leaves the container unchanged.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrInvalidArgument is reported for malformed requests, such as a
	// negative allocation size or copy-assignment between containers of
	// different static capacities.
	ErrInvalidArgument = errors.New("invalid argument")
)
