package arenatree

// bstUnlink removes node z from a plain binary search tree.
//
// A node with two children is replaced by the extreme node of its deeper
// side: the length of the rightmost path into the left subtree is compared
// with the length of the leftmost path into the right subtree, and the
// predecessor is promoted only if its path is strictly longer.
func (t *Tree[T]) bstUnlink(z index) {
	switch {
	case t.left[z] == nilIndex:
		t.transplant(z, t.right[z])
	case t.right[z] == nilIndex:
		t.transplant(z, t.left[z])
	case t.spine(t.left[z], t.right) > t.spine(t.right[z], t.left):
		t.replaceByPredecessor(z)
	default:
		t.replaceBySuccessor(z)
	}
}

// spine counts the nodes on the path starting at n and following links in
// column dir (t.left or t.right).
func (t *Tree[T]) spine(n index, dir []index) int {
	k := 0
	for ; n != nilIndex; n = dir[n] {
		k++
	}
	return k
}
