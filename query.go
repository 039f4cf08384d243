package arenatree

func (t *Tree[T]) minimum(n index) index {
	for t.left[n] != nilIndex {
		n = t.left[n]
	}
	return n
}

func (t *Tree[T]) maximum(n index) index {
	for t.right[n] != nilIndex {
		n = t.right[n]
	}
	return n
}

// next returns the in-order successor node of n, or nilIndex.
func (t *Tree[T]) next(n index) index {
	if r := t.right[n]; r != nilIndex {
		return t.minimum(r)
	}
	p := t.parent[n]
	for p != nilIndex && n == t.right[p] {
		n, p = p, t.parent[p]
	}
	return p
}

// prev returns the in-order predecessor node of n, or nilIndex.
func (t *Tree[T]) prev(n index) index {
	if l := t.left[n]; l != nilIndex {
		return t.maximum(l)
	}
	p := t.parent[n]
	for p != nilIndex && n == t.left[p] {
		n, p = p, t.parent[p]
	}
	return p
}

// bound descends from the root and returns the last node for which the
// comparison against x selected it as a candidate.
//
// For a node holding e with c = Compare(x, e), a node is a candidate if
// accept(c) holds; descent then continues towards the side that may hold a
// better candidate: left if goLeft(c), right otherwise.
func (t *Tree[T]) bound(x T, accept, goLeft func(c int) bool) index {
	found := nilIndex
	for n := t.root; n != nilIndex; {
		c := t.cfg.Compare(x, t.elems[n])
		if accept(c) {
			found = n
		}
		if goLeft(c) {
			n = t.left[n]
		} else {
			n = t.right[n]
		}
	}
	return found
}

// floorNode: greatest element <= x.
func (t *Tree[T]) floorNode(x T) index {
	return t.bound(x, func(c int) bool { return c >= 0 }, func(c int) bool { return c < 0 })
}

// ceilNode: least element >= x.
func (t *Tree[T]) ceilNode(x T) index {
	return t.bound(x, func(c int) bool { return c <= 0 }, func(c int) bool { return c <= 0 })
}

// successorNode: least element > x.
func (t *Tree[T]) successorNode(x T) index {
	return t.bound(x, func(c int) bool { return c < 0 }, func(c int) bool { return c < 0 })
}

// predecessorNode: greatest element < x.
func (t *Tree[T]) predecessorNode(x T) index {
	return t.bound(x, func(c int) bool { return c > 0 }, func(c int) bool { return c <= 0 })
}

// --- Exported queries ------------------------------------------------------

func (t *Tree[T]) peek(n index, missing error) (T, error) {
	var zero T
	if err := t.usable(); err != nil {
		return zero, err
	}
	if n == nilIndex {
		return zero, missing
	}
	return t.elems[n], nil
}

func (t *Tree[T]) take(n index, missing error) (T, error) {
	var zero T
	if err := t.usable(); err != nil {
		return zero, err
	}
	if n == nilIndex {
		return zero, missing
	}
	return t.removeAt(n), nil
}

func (t *Tree[T]) minNode() index {
	if t.usable() != nil || t.root == nilIndex {
		return nilIndex
	}
	return t.minimum(t.root)
}

func (t *Tree[T]) maxNode() index {
	if t.usable() != nil || t.root == nilIndex {
		return nilIndex
	}
	return t.maximum(t.root)
}

// lookup guards query descents against unusable trees.
func (t *Tree[T]) lookup(x T, find func(T) index) index {
	if t.usable() != nil {
		return nilIndex
	}
	return find(x)
}

// Min returns the smallest element, or ErrEmpty.
func (t *Tree[T]) Min() (T, error) { return t.peek(t.minNode(), ErrEmpty) }

// Max returns the largest element, or ErrEmpty.
func (t *Tree[T]) Max() (T, error) { return t.peek(t.maxNode(), ErrEmpty) }

// RemoveMin removes and returns the smallest element, or ErrEmpty.
func (t *Tree[T]) RemoveMin() (T, error) { return t.take(t.minNode(), ErrEmpty) }

// RemoveMax removes and returns the largest element, or ErrEmpty.
func (t *Tree[T]) RemoveMax() (T, error) { return t.take(t.maxNode(), ErrEmpty) }

// Floor returns the greatest element less than or equal to x.
// If there is none, ErrNotFound is returned. x need not be in the tree.
func (t *Tree[T]) Floor(x T) (T, error) {
	return t.peek(t.lookup(x, t.floorNode), ErrNotFound)
}

// Ceil returns the least element greater than or equal to x, or ErrNotFound.
func (t *Tree[T]) Ceil(x T) (T, error) {
	return t.peek(t.lookup(x, t.ceilNode), ErrNotFound)
}

// Successor returns the least element strictly greater than x, or ErrNotFound.
func (t *Tree[T]) Successor(x T) (T, error) {
	return t.peek(t.lookup(x, t.successorNode), ErrNotFound)
}

// Predecessor returns the greatest element strictly less than x, or ErrNotFound.
func (t *Tree[T]) Predecessor(x T) (T, error) {
	return t.peek(t.lookup(x, t.predecessorNode), ErrNotFound)
}

// RemoveFloor removes and returns the element Floor(x) would return.
func (t *Tree[T]) RemoveFloor(x T) (T, error) {
	return t.take(t.lookup(x, t.floorNode), ErrNotFound)
}

// RemoveCeil removes and returns the element Ceil(x) would return.
func (t *Tree[T]) RemoveCeil(x T) (T, error) {
	return t.take(t.lookup(x, t.ceilNode), ErrNotFound)
}

// RemoveSuccessor removes and returns the element Successor(x) would return.
func (t *Tree[T]) RemoveSuccessor(x T) (T, error) {
	return t.take(t.lookup(x, t.successorNode), ErrNotFound)
}

// RemovePredecessor removes and returns the element Predecessor(x) would
// return.
func (t *Tree[T]) RemovePredecessor(x T) (T, error) {
	return t.take(t.lookup(x, t.predecessorNode), ErrNotFound)
}
