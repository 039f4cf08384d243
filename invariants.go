package arenatree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - length bounded by the arena, root is nilIndex iff the tree is empty
//   - every link points into [0, length) and parent/child links agree
//   - every live slot is reachable from the root exactly once
//   - in-order elements are non-decreasing
//   - red-black: root black, no red node with a red child, equal black height
//   - AVL: stored heights are exact and balance factors lie in [-1, 1]
//
// Check is meant for tests and debugging; it visits every node.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if err := t.usable(); err != nil {
		return err
	}
	if t.length > len(t.elems) {
		return fmt.Errorf("%w: length %d exceeds capacity %d", ErrInvariant, t.length, len(t.elems))
	}
	if t.cfg.Bounded() && len(t.elems) != t.cfg.Capacity {
		return fmt.Errorf("%w: bounded arena has %d slots, configured %d",
			ErrInvariant, len(t.elems), t.cfg.Capacity)
	}
	if len(t.elems) > 0 && (t.meta != nil) != t.hasMeta() {
		return fmt.Errorf("%w: meta column does not match kind %s", ErrInvariant, t.cfg.Kind)
	}
	if (t.root == nilIndex) != (t.length == 0) {
		return fmt.Errorf("%w: root %d with length %d", ErrInvariant, t.root, t.length)
	}
	if t.root == nilIndex {
		return nil
	}
	if !t.live(t.root) {
		return fmt.Errorf("%w: root %d out of range", ErrInvariant, t.root)
	}
	if t.parent[t.root] != nilIndex {
		return fmt.Errorf("%w: root %d has parent %d", ErrInvariant, t.root, t.parent[t.root])
	}
	if t.cfg.Kind == RedBlack && t.meta[t.root] != black {
		return fmt.Errorf("%w: red root", ErrInvariant)
	}
	seen := make([]bool, t.length)
	if _, err := t.checkNode(t.root, seen); err != nil {
		return err
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: slot %d is unreachable", ErrInvariant, i)
		}
	}
	return t.checkOrder()
}

func (t *Tree[T]) live(n index) bool {
	return n != nilIndex && int(n) < t.length
}

// checkNode validates the subtree at n and returns its black height
// (RedBlack) or height (AVL and BST).
func (t *Tree[T]) checkNode(n index, seen []bool) (int, error) {
	if n == nilIndex {
		return 0, nil
	}
	if seen[n] {
		return 0, fmt.Errorf("%w: node %d reachable twice", ErrInvariant, n)
	}
	seen[n] = true
	var hs [2]int
	for i, c := range [2]index{t.left[n], t.right[n]} {
		if c == nilIndex {
			continue
		}
		if !t.live(c) {
			return 0, fmt.Errorf("%w: node %d links to %d outside [0,%d)", ErrInvariant, n, c, t.length)
		}
		if t.parent[c] != n {
			return 0, fmt.Errorf("%w: child %d of %d has parent %d", ErrInvariant, c, n, t.parent[c])
		}
		if t.cfg.Kind == RedBlack && t.meta[n] == red && t.meta[c] == red {
			return 0, fmt.Errorf("%w: red node %d has red child %d", ErrInvariant, n, c)
		}
		h, err := t.checkNode(c, seen)
		if err != nil {
			return 0, err
		}
		hs[i] = h
	}
	switch t.cfg.Kind {
	case RedBlack:
		if hs[0] != hs[1] {
			return 0, fmt.Errorf("%w: black heights %d/%d differ below %d", ErrInvariant, hs[0], hs[1], n)
		}
		if t.meta[n] == black {
			return hs[0] + 1, nil
		}
		return hs[0], nil
	case AVL:
		h := 1 + max(hs[0], hs[1])
		if int(t.meta[n]) != h {
			return 0, fmt.Errorf("%w: node %d stores height %d, actual %d", ErrInvariant, n, t.meta[n], h)
		}
		if b := hs[0] - hs[1]; b < -1 || b > 1 {
			return 0, fmt.Errorf("%w: node %d has balance %d", ErrInvariant, n, b)
		}
		return h, nil
	}
	return 1 + max(hs[0], hs[1]), nil
}

func (t *Tree[T]) checkOrder() error {
	prev, count := nilIndex, 0
	for n := t.minimum(t.root); n != nilIndex; n = t.next(n) {
		if prev != nilIndex && t.cfg.Compare(t.elems[prev], t.elems[n]) > 0 {
			return fmt.Errorf("%w: in-order elements at %d and %d out of order", ErrInvariant, prev, n)
		}
		prev = n
		count++
	}
	if count != t.length {
		return fmt.Errorf("%w: in-order walk saw %d of %d nodes", ErrInvariant, count, t.length)
	}
	return nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if t.usable() != nil {
		return 0
	}
	var h func(n index) int
	h = func(n index) int {
		if n == nilIndex {
			return 0
		}
		return 1 + max(h(t.left[n]), h(t.right[n]))
	}
	return h(t.root)
}
