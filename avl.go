package arenatree

func (t *Tree[T]) height(n index) int {
	if n == nilIndex {
		return 0
	}
	return int(t.meta[n])
}

func (t *Tree[T]) fixHeight(n index) {
	t.meta[n] = uint8(1 + max(t.height(t.left[n]), t.height(t.right[n])))
}

// balanceOf is height(left) - height(right).
func (t *Tree[T]) balanceOf(n index) int {
	return t.height(t.left[n]) - t.height(t.right[n])
}

func (t *Tree[T]) avlRotateLeft(x index) index {
	y := t.rotateLeft(x)
	t.fixHeight(x)
	t.fixHeight(y)
	return y
}

func (t *Tree[T]) avlRotateRight(x index) index {
	y := t.rotateRight(x)
	t.fixHeight(x)
	t.fixHeight(y)
	return y
}

// rebalance recomputes n's height and rotates if n is out of balance.
// It returns the root of the (possibly rotated) subtree.
func (t *Tree[T]) rebalance(n index) index {
	t.fixHeight(n)
	switch b := t.balanceOf(n); {
	case b > 1:
		if t.balanceOf(t.left[n]) < 0 {
			t.avlRotateLeft(t.left[n])
		}
		return t.avlRotateRight(n)
	case b < -1:
		if t.balanceOf(t.right[n]) > 0 {
			t.avlRotateRight(t.right[n])
		}
		return t.avlRotateLeft(n)
	}
	return n
}

// avlInsertFixup walks up from the new leaf n. A rotation restores the
// subtree's former height, so the walk ends after the first one, as it does
// when a height stays unchanged.
func (t *Tree[T]) avlInsertFixup(n index) {
	for p := t.parent[n]; p != nilIndex; p = t.parent[p] {
		h := t.height(p)
		if t.rebalance(p) != p {
			return
		}
		if t.height(p) == h {
			return
		}
	}
}

// avlUnlink removes node z from an AVL tree and rebalances every ancestor of
// the spliced position up to the root.
func (t *Tree[T]) avlUnlink(z index) {
	var start index
	switch {
	case t.left[z] == nilIndex:
		start = t.parent[z]
		t.transplant(z, t.right[z])
	case t.right[z] == nilIndex:
		start = t.parent[z]
		t.transplant(z, t.left[z])
	default:
		var y index
		y, _, start = t.replaceBySuccessor(z)
		t.meta[y] = t.meta[z]
	}
	for n := start; n != nilIndex; {
		n = t.parent[t.rebalance(n)]
	}
}
