package arenatree

import "iter"

// Traversals call visit for each element in the respective order and stop as
// soon as visit returns false. The tree must not be modified from within
// visit. On hibernated or destroyed trees they visit nothing.

// InOrder visits elements in ascending order.
func (t *Tree[T]) InOrder(visit func(T) bool) {
	for n := t.minNode(); n != nilIndex; n = t.next(n) {
		if !visit(t.elems[n]) {
			return
		}
	}
}

// ReverseOrder visits elements in descending order.
func (t *Tree[T]) ReverseOrder(visit func(T) bool) {
	for n := t.maxNode(); n != nilIndex; n = t.prev(n) {
		if !visit(t.elems[n]) {
			return
		}
	}
}

// PreOrder visits every node before its children, left subtree first.
func (t *Tree[T]) PreOrder(visit func(T) bool) {
	if t.usable() != nil || t.root == nilIndex {
		return
	}
	stack := make([]index, 0, t.length)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(t.elems[n]) {
			return
		}
		if r := t.right[n]; r != nilIndex {
			stack = append(stack, r)
		}
		if l := t.left[n]; l != nilIndex {
			stack = append(stack, l)
		}
	}
}

// PostOrder visits every node after its children, left subtree first.
func (t *Tree[T]) PostOrder(visit func(T) bool) {
	if t.usable() != nil || t.root == nilIndex {
		return
	}
	for n := t.firstLeaf(t.root); n != nilIndex; {
		if !visit(t.elems[n]) {
			return
		}
		p := t.parent[n]
		if p != nilIndex && n == t.left[p] && t.right[p] != nilIndex {
			n = t.firstLeaf(t.right[p])
		} else {
			n = p
		}
	}
}

// firstLeaf returns the first node of n's subtree in post-order.
func (t *Tree[T]) firstLeaf(n index) index {
	for {
		switch {
		case t.left[n] != nilIndex:
			n = t.left[n]
		case t.right[n] != nilIndex:
			n = t.right[n]
		default:
			return n
		}
	}
}

// LevelOrder visits nodes breadth-first, left to right within a level.
func (t *Tree[T]) LevelOrder(visit func(T) bool) {
	if t.usable() != nil || t.root == nilIndex {
		return
	}
	queue := make([]index, 0, t.length)
	queue = append(queue, t.root)
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if !visit(t.elems[n]) {
			return
		}
		if l := t.left[n]; l != nilIndex {
			queue = append(queue, l)
		}
		if r := t.right[n]; r != nilIndex {
			queue = append(queue, r)
		}
	}
}

// All returns an iterator over the elements in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.InOrder(yield)
	}
}

// Backward returns an iterator over the elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ReverseOrder(yield)
	}
}

// Slice returns the elements in ascending order.
func (t *Tree[T]) Slice() []T {
	xs := make([]T, 0, t.Len())
	t.InOrder(func(x T) bool {
		xs = append(xs, x)
		return true
	})
	return xs
}
