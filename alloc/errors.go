package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that a request would exceed the allocator's limit.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadSize indicates a negative or overflowing size.
	ErrBadSize = errors.New("alloc: bad size")

	// ErrUnderflow indicates that more bytes were released than had been reserved.
	ErrUnderflow = errors.New("alloc: accounting underflow")
)
