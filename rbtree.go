package arenatree

// colorOf returns the color of n. nilIndex counts as black.
func (t *Tree[T]) colorOf(n index) uint8 {
	if n == nilIndex {
		return black
	}
	return t.meta[n]
}

// rbInsertFixup restores the red-black properties after the red node z has
// been linked in.
func (t *Tree[T]) rbInsertFixup(z index) {
	for {
		p := t.parent[z]
		if p == nilIndex || t.meta[p] == black {
			break
		}
		g := t.parent[p] // p is red, hence not the root
		if p == t.left[g] {
			if u := t.right[g]; t.colorOf(u) == red {
				t.meta[p], t.meta[u], t.meta[g] = black, black, red
				z = g
				continue
			}
			if z == t.right[p] {
				z = p
				t.rotateLeft(z)
				p = t.parent[z]
			}
			t.meta[p], t.meta[g] = black, red
			t.rotateRight(g)
		} else {
			if u := t.left[g]; t.colorOf(u) == red {
				t.meta[p], t.meta[u], t.meta[g] = black, black, red
				z = g
				continue
			}
			if z == t.left[p] {
				z = p
				t.rotateRight(z)
				p = t.parent[z]
			}
			t.meta[p], t.meta[g] = black, red
			t.rotateLeft(g)
		}
	}
	t.meta[t.root] = black
}

// rbUnlink removes node z from a red-black tree. A node with two children is
// replaced by its in-order successor, which takes over z's color.
func (t *Tree[T]) rbUnlink(z index) {
	var x, xp index
	removed := t.meta[z]
	switch {
	case t.left[z] == nilIndex:
		x, xp = t.right[z], t.parent[z]
		t.transplant(z, x)
	case t.right[z] == nilIndex:
		x, xp = t.left[z], t.parent[z]
		t.transplant(z, x)
	default:
		var y index
		y, x, xp = t.replaceBySuccessor(z)
		removed = t.meta[y]
		t.meta[y] = t.meta[z]
	}
	if removed == black {
		t.rbRemoveFixup(x, xp)
	}
}

// rbRemoveFixup resolves the missing black on the path through x. As x may
// be nilIndex, its parent xp is tracked alongside.
func (t *Tree[T]) rbRemoveFixup(x, xp index) {
	for x != t.root && t.colorOf(x) == black {
		if x == t.left[xp] {
			w := t.right[xp]
			if t.colorOf(w) == red {
				t.meta[w], t.meta[xp] = black, red
				t.rotateLeft(xp)
				w = t.right[xp]
			}
			if t.colorOf(t.left[w]) == black && t.colorOf(t.right[w]) == black {
				t.meta[w] = red
				x, xp = xp, t.parent[xp]
				continue
			}
			if t.colorOf(t.right[w]) == black {
				t.meta[t.left[w]], t.meta[w] = black, red
				t.rotateRight(w)
				w = t.right[xp]
			}
			t.meta[w], t.meta[xp] = t.meta[xp], black
			t.meta[t.right[w]] = black
			t.rotateLeft(xp)
			x, xp = t.root, nilIndex
		} else {
			w := t.left[xp]
			if t.colorOf(w) == red {
				t.meta[w], t.meta[xp] = black, red
				t.rotateRight(xp)
				w = t.left[xp]
			}
			if t.colorOf(t.left[w]) == black && t.colorOf(t.right[w]) == black {
				t.meta[w] = red
				x, xp = xp, t.parent[xp]
				continue
			}
			if t.colorOf(t.left[w]) == black {
				t.meta[t.right[w]], t.meta[w] = black, red
				t.rotateLeft(w)
				w = t.left[xp]
			}
			t.meta[w], t.meta[xp] = t.meta[xp], black
			t.meta[t.left[w]] = black
			t.rotateRight(xp)
			x, xp = t.root, nilIndex
		}
	}
	if x != nilIndex {
		t.meta[x] = black
	}
}
