package arenatree

import (
	"fmt"
	"slices"
)

// Set algebra treats trees as sets under the comparator of the first
// operand: an element of one tree is "in" another tree if that tree contains
// an element comparing equal to it. Results are new trees of a's kind,
// allocator and chunk size. If a is bounded, so is the result, sized to hold
// the largest possible outcome.
//
// Elements are passed through copyFn on their way into the result; a nil
// copyFn copies them by value.

// Union returns a tree holding every element of a plus every element of b
// not contained in a.
func Union[T any](a, b *Tree[T], copyFn func(T) T) (*Tree[T], error) {
	if err := operands(a, b); err != nil {
		return nil, err
	}
	xs := a.Slice()
	b.InOrder(func(x T) bool {
		if a.search(x) == nilIndex {
			xs = append(xs, x)
		}
		return true
	})
	slices.SortStableFunc(xs, a.cfg.Compare)
	return a.derive(xs, a.Cap()+b.Cap(), copyFn)
}

// Intersect returns a tree holding the elements of a that are contained in b.
func Intersect[T any](a, b *Tree[T], copyFn func(T) T) (*Tree[T], error) {
	if err := operands(a, b); err != nil {
		return nil, err
	}
	xs := collect(a, func(x T) bool { return b.search(x) != nilIndex })
	return a.derive(xs, a.Cap(), copyFn)
}

// Subtract returns a tree holding the elements of a not contained in b.
func Subtract[T any](a, b *Tree[T], copyFn func(T) T) (*Tree[T], error) {
	if err := operands(a, b); err != nil {
		return nil, err
	}
	xs := collect(a, func(x T) bool { return b.search(x) == nilIndex })
	return a.derive(xs, a.Cap(), copyFn)
}

// SymmetricExclude returns a tree holding the elements contained in exactly
// one of a and b.
func SymmetricExclude[T any](a, b *Tree[T], copyFn func(T) T) (*Tree[T], error) {
	if err := operands(a, b); err != nil {
		return nil, err
	}
	xs := collect(a, func(x T) bool { return b.search(x) == nilIndex })
	xs = append(xs, collect(b, func(x T) bool { return a.search(x) == nilIndex })...)
	slices.SortStableFunc(xs, a.cfg.Compare)
	return a.derive(xs, a.Cap()+b.Cap(), copyFn)
}

// IsSubset reports whether every element of a is contained in b.
func IsSubset[T any](a, b *Tree[T]) bool {
	if operands(a, b) != nil {
		return false
	}
	subset := true
	a.InOrder(func(x T) bool {
		subset = b.search(x) != nilIndex
		return subset
	})
	return subset
}

// IsProperSubset reports whether a is a subset of b and b holds an element
// not contained in a.
func IsProperSubset[T any](a, b *Tree[T]) bool {
	return IsSubset(a, b) && !IsSubset(b, a)
}

// IsDisjoint reports whether a and b have no element in common.
func IsDisjoint[T any](a, b *Tree[T]) bool {
	if operands(a, b) != nil {
		return false
	}
	disjoint := true
	a.InOrder(func(x T) bool {
		disjoint = b.search(x) == nilIndex
		return disjoint
	})
	return disjoint
}

func operands[T any](a, b *Tree[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil operand", ErrInvalidConfig)
	}
	if err := a.usable(); err != nil {
		return err
	}
	return b.usable()
}

func collect[T any](t *Tree[T], keep func(T) bool) []T {
	var xs []T
	t.InOrder(func(x T) bool {
		if keep(x) {
			xs = append(xs, x)
		}
		return true
	})
	return xs
}

// derive creates an empty tree configured like t and fills it with xs.
func (t *Tree[T]) derive(xs []T, capacity int, copyFn func(T) T) (*Tree[T], error) {
	cfg := t.cfg
	if cfg.Bounded() {
		cfg.Capacity = min(max(capacity, 1), maxSlots)
	}
	r, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if copyFn != nil {
		for i := range xs {
			xs[i] = copyFn(xs[i])
		}
	}
	if err := r.insertBalanced(xs); err != nil {
		r.Destroy(nil)
		return nil, err
	}
	return r, nil
}

// insertBalanced inserts xs middle-first, so that even a plain BST ends up
// balanced if xs is sorted.
func (t *Tree[T]) insertBalanced(xs []T) error {
	if len(xs) == 0 {
		return nil
	}
	mid := len(xs) / 2
	if err := t.Insert(xs[mid]); err != nil {
		return err
	}
	if err := t.insertBalanced(xs[:mid]); err != nil {
		return err
	}
	return t.insertBalanced(xs[mid+1:])
}
