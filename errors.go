package arenatree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("arenatree: invalid configuration")
	// ErrCapacityExceeded signals an insert into a full bounded tree.
	ErrCapacityExceeded = errors.New("arenatree: capacity exceeded")
	// ErrNotFound signals that no element satisfies a lookup.
	ErrNotFound = errors.New("arenatree: element not found")
	// ErrEmpty signals a min/max query on an empty tree.
	ErrEmpty = errors.New("arenatree: tree is empty")
	// ErrAllocation wraps a failure reported by the tree's allocator.
	ErrAllocation = errors.New("arenatree: allocation failed")
	// ErrHibernated signals an operation on a hibernated tree.
	ErrHibernated = errors.New("arenatree: tree is hibernated")
	// ErrReleased signals an operation on a destroyed tree.
	ErrReleased = errors.New("arenatree: tree has been destroyed")
	// ErrNilTree signals an operation on a nil *Tree.
	ErrNilTree = errors.New("arenatree: nil tree")
	// ErrInvariant signals a broken structural invariant, reported by Check.
	ErrInvariant = errors.New("arenatree: invariant violated")
)
