package arenatree

// replaceChild makes n take old's place below p. If p is nilIndex, n
// becomes the root.
func (t *Tree[T]) replaceChild(p, old, n index) {
	switch {
	case p == nilIndex:
		t.root = n
	case t.left[p] == old:
		t.left[p] = n
	default:
		assert(t.right[p] == old, "replaceChild: old is not a child of p")
		t.right[p] = n
	}
	if n != nilIndex {
		t.parent[n] = p
	}
}

// transplant replaces the subtree rooted at u by the subtree rooted at v.
// u's own links are left untouched.
func (t *Tree[T]) transplant(u, v index) {
	t.replaceChild(t.parent[u], u, v)
}

//     x              y
//    / \            / \
//   a   y    =>    x   c
//      / \        / \
//     b   c      a   b
//
// rotateLeft returns the new subtree root y.
func (t *Tree[T]) rotateLeft(x index) index {
	y := t.right[x]
	assert(y != nilIndex, "rotateLeft without right child")
	t.right[x] = t.left[y]
	if b := t.left[y]; b != nilIndex {
		t.parent[b] = x
	}
	t.replaceChild(t.parent[x], x, y)
	t.left[y] = x
	t.parent[x] = y
	return y
}

// rotateRight is the mirror image of rotateLeft and returns the new subtree
// root.
func (t *Tree[T]) rotateRight(x index) index {
	y := t.left[x]
	assert(y != nilIndex, "rotateRight without left child")
	t.left[x] = t.right[y]
	if b := t.right[y]; b != nilIndex {
		t.parent[b] = x
	}
	t.replaceChild(t.parent[x], x, y)
	t.right[y] = x
	t.parent[x] = y
	return y
}

// replaceBySuccessor removes z, which must have two children, by moving the
// minimum y of z's right subtree into z's position. It returns y, the node x
// that took y's former place (possibly nilIndex) and x's parent.
func (t *Tree[T]) replaceBySuccessor(z index) (y, x, xParent index) {
	y = t.minimum(t.right[z])
	x = t.right[y]
	if t.parent[y] == z {
		xParent = y
	} else {
		xParent = t.parent[y]
		t.transplant(y, x)
		t.right[y] = t.right[z]
		t.parent[t.right[y]] = y
	}
	t.transplant(z, y)
	t.left[y] = t.left[z]
	t.parent[t.left[y]] = y
	return y, x, xParent
}

// replaceByPredecessor is the mirror image of replaceBySuccessor, promoting
// the maximum of z's left subtree.
func (t *Tree[T]) replaceByPredecessor(z index) (y, x, xParent index) {
	y = t.maximum(t.left[z])
	x = t.left[y]
	if t.parent[y] == z {
		xParent = y
	} else {
		xParent = t.parent[y]
		t.transplant(y, x)
		t.left[y] = t.left[z]
		t.parent[t.left[y]] = y
	}
	t.transplant(z, y)
	t.right[y] = t.right[z]
	t.parent[t.right[y]] = y
	return y, x, xParent
}
