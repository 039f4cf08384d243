package alloc

import (
	"fmt"
	"math"
	"unsafe"
)

// SizeOf returns the number of bytes n values of type T occupy.
func SizeOf[T any](n int) (int, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrBadSize, n)
	}
	if width > 0 && n > math.MaxInt/width {
		return 0, fmt.Errorf("%w: %d slots of %d bytes", ErrBadSize, n, width)
	}
	return n * width, nil
}

// Slots reserves room for n values of type T with a and returns a slice of
// length n.
func Slots[T any](a Allocator, n int) ([]T, error) {
	size, err := SizeOf[T](n)
	if err != nil {
		return nil, err
	}
	if err := a.Alloc(size); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Resize changes the length of s to n, re-reserving the difference with a.
// The first min(len(s), n) values are preserved. On error s is returned
// unchanged together with the error.
func Resize[T any](a Allocator, s []T, n int) ([]T, error) {
	oldSize, err := SizeOf[T](len(s))
	if err != nil {
		return s, err
	}
	newSize, err := SizeOf[T](n)
	if err != nil {
		return s, err
	}
	if err := a.Realloc(oldSize, newSize); err != nil {
		return s, err
	}
	if n == 0 {
		return nil, nil
	}
	r := make([]T, n)
	copy(r, s)
	return r, nil
}

// Release gives the reservation held by s back to a.
func Release[T any](a Allocator, s []T) {
	if size, err := SizeOf[T](len(s)); err == nil && size > 0 {
		a.Free(size)
	}
}
