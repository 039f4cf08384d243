package arenatree

import (
	"fmt"
)

// Tree is an arena-backed binary search tree holding elements of type T.
//
// The zero value is not usable; create trees with New.
type Tree[T any] struct {
	cfg    Config[T]
	root   index
	length int
	elems  []T
	parent []index
	left   []index
	right  []index
	meta   []uint8 // color (RedBlack) or height (AVL), nil for BST

	frozen   *hibernation // non-nil while hibernated
	released bool
}

// New creates an empty tree with validated configuration. Bounded trees
// reserve their full capacity up front, growable trees start without any
// slots.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg, root: nilIndex}
	if cfg.Bounded() {
		if err := t.allocArena(cfg.Capacity); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	if t == nil {
		return Config[T]{}
	}
	return t.cfg
}

// Kind returns the balancing discipline of t.
func (t *Tree[T]) Kind() Kind {
	if t == nil {
		return BST
	}
	return t.cfg.Kind
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Cap returns the number of slots currently held by the arena.
func (t *Tree[T]) Cap() int {
	if t == nil {
		return 0
	}
	return len(t.elems)
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.length == 0
}

// IsBounded reports whether t has a fixed capacity.
func (t *Tree[T]) IsBounded() bool {
	return t != nil && t.cfg.Bounded()
}

// IsFull reports whether the next Insert would fail for lack of slots.
// A growable tree is full only when it has reached MaxCapacity.
func (t *Tree[T]) IsFull() bool {
	if t == nil {
		return false
	}
	if t.cfg.Bounded() {
		return t.length == t.cfg.Capacity
	}
	return t.length == maxSlots
}

// IsHibernated reports whether t is currently hibernated.
func (t *Tree[T]) IsHibernated() bool {
	return t != nil && t.frozen != nil
}

func (t *Tree[T]) usable() error {
	if t == nil {
		return ErrNilTree
	}
	if t.released {
		return ErrReleased
	}
	if t.frozen != nil {
		return ErrHibernated
	}
	return nil
}

// --- Insert ----------------------------------------------------------------

// Insert adds x to the tree. Equal elements are kept, they group to the
// left of each other.
//
// Inserting into a full bounded tree returns ErrCapacityExceeded. If a
// growable tree cannot obtain another chunk, an error wrapping
// ErrAllocation is returned. In both cases the tree is unchanged.
func (t *Tree[T]) Insert(x T) error {
	if err := t.usable(); err != nil {
		return err
	}
	if err := t.ensureSlot(); err != nil {
		return err
	}
	n := t.newNode(x)
	t.link(n)
	switch t.cfg.Kind {
	case RedBlack:
		t.rbInsertFixup(n)
	case AVL:
		t.avlInsertFixup(n)
	}
	return nil
}

// link hangs the unlinked node n below the leaf its element sorts to.
func (t *Tree[T]) link(n index) {
	if t.root == nilIndex {
		t.root = n
		return
	}
	x := t.elems[n]
	cur := t.root
	for {
		if t.cfg.Compare(x, t.elems[cur]) <= 0 {
			if t.left[cur] == nilIndex {
				t.left[cur] = n
				break
			}
			cur = t.left[cur]
		} else {
			if t.right[cur] == nilIndex {
				t.right[cur] = n
				break
			}
			cur = t.right[cur]
		}
	}
	t.parent[n] = cur
}

// --- Remove ----------------------------------------------------------------

// search returns a node holding an element equal to x, or nilIndex.
func (t *Tree[T]) search(x T) index {
	n := t.root
	for n != nilIndex {
		c := t.cfg.Compare(x, t.elems[n])
		switch {
		case c == 0:
			return n
		case c < 0:
			n = t.left[n]
		default:
			n = t.right[n]
		}
	}
	return nilIndex
}

// Contains reports whether an element equal to x is stored in t.
func (t *Tree[T]) Contains(x T) bool {
	if t.usable() != nil {
		return false
	}
	return t.search(x) != nilIndex
}

// Remove deletes one element equal to x and returns it. If there is no such
// element, ErrNotFound is returned.
func (t *Tree[T]) Remove(x T) (T, error) {
	var zero T
	if err := t.usable(); err != nil {
		return zero, err
	}
	n := t.search(x)
	if n == nilIndex {
		return zero, ErrNotFound
	}
	return t.removeAt(n), nil
}

// removeAt unlinks node n, compacts the arena and returns n's element.
func (t *Tree[T]) removeAt(n index) T {
	x := t.elems[n]
	switch t.cfg.Kind {
	case RedBlack:
		t.rbUnlink(n)
	case AVL:
		t.avlUnlink(n)
	default:
		t.bstUnlink(n)
	}
	t.compact(n)
	t.shrink()
	return x
}

// Update replaces an element equal to x by x and returns the element
// replaced. Since both compare equal, the tree's shape is unaffected.
func (t *Tree[T]) Update(x T) (T, error) {
	var zero T
	if err := t.usable(); err != nil {
		return zero, err
	}
	n := t.search(x)
	if n == nilIndex {
		return zero, ErrNotFound
	}
	old := t.elems[n]
	t.elems[n] = x
	return old, nil
}

// --- Whole-tree operations -------------------------------------------------

// Clear removes all elements, calling destroy (if non-nil) on each of them.
// The arena keeps its slots.
func (t *Tree[T]) Clear(destroy func(T)) error {
	if err := t.usable(); err != nil {
		return err
	}
	var zero T
	for i := 0; i < t.length; i++ {
		if destroy != nil {
			destroy(t.elems[i])
		}
		t.elems[i] = zero
	}
	t.length = 0
	t.root = nilIndex
	return nil
}

// Destroy calls destroy (if non-nil) on every element and releases the
// arena. Any further operation on t fails with ErrReleased.
func (t *Tree[T]) Destroy(destroy func(T)) {
	if t == nil || t.released {
		return
	}
	if destroy != nil {
		for i := 0; i < t.length; i++ {
			destroy(t.elems[i])
		}
	}
	t.freeArena()
	if t.frozen != nil {
		t.frozen.release(t.cfg.Allocator)
		t.frozen = nil
	}
	t.length = 0
	t.root = nilIndex
	t.released = true
}

// Copy creates an independent tree with the same configuration, shape and
// capacity. Elements are passed through copyFn; a nil copyFn copies them
// by value.
func (t *Tree[T]) Copy(copyFn func(T) T) (*Tree[T], error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	c := &Tree[T]{cfg: t.cfg, root: t.root, length: t.length}
	if err := c.allocArena(len(t.elems)); err != nil {
		return nil, fmt.Errorf("copy: %w", err)
	}
	copy(c.parent, t.parent)
	copy(c.left, t.left)
	copy(c.right, t.right)
	copy(c.meta, t.meta)
	if copyFn == nil {
		copy(c.elems, t.elems[:t.length])
	} else {
		for i := 0; i < t.length; i++ {
			c.elems[i] = copyFn(t.elems[i])
		}
	}
	return c, nil
}
