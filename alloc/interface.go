package alloc

// Allocator admits, resizes and releases memory reservations.
// Implementations need not be safe for concurrent use unless stated.
type Allocator interface {
	// Alloc reserves size bytes.
	Alloc(size int) error

	// Realloc changes a reservation of oldSize bytes to newSize bytes.
	// On error the old reservation stays in place.
	Realloc(oldSize, newSize int) error

	// Free releases a reservation of size bytes.
	Free(size int)
}

// Heap admits every request. It is the default allocator of arena trees.
type Heap struct{}

var _ Allocator = Heap{}

func (Heap) Alloc(size int) error {
	if size < 0 {
		return ErrBadSize
	}
	return nil
}

func (Heap) Realloc(oldSize, newSize int) error {
	if oldSize < 0 || newSize < 0 {
		return ErrBadSize
	}
	return nil
}

func (Heap) Free(int) {}

// Default returns a if it is non-nil, Heap otherwise.
func Default(a Allocator) Allocator {
	if a == nil {
		return Heap{}
	}
	return a
}
