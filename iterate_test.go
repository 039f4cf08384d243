package arenatree

import (
	"slices"
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func collectWith(walk func(func(int) bool), limit int) []int {
	var xs []int
	walk(func(x int) bool {
		xs = append(xs, x)
		return len(xs) < limit
	})
	return xs
}

func TestTraversalOrders(t *testing.T) {
	tree := newIntTree(t, BST, 0, 0)
	//        4
	//      /   \
	//     2     6
	//    / \   / \
	//   1   3 5   7
	insertAll(t, tree, 4, 2, 6, 1, 3, 5, 7)

	all := 100
	tassert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collectWith(tree.InOrder, all))
	tassert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, collectWith(tree.ReverseOrder, all))
	tassert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collectWith(tree.PreOrder, all))
	tassert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collectWith(tree.PostOrder, all))
	tassert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, collectWith(tree.LevelOrder, all))
}

func TestTraversalStopsEarly(t *testing.T) {
	tree := newIntTree(t, BST, 0, 0)
	insertAll(t, tree, 4, 2, 6, 1, 3, 5, 7)

	tassert.Equal(t, []int{1, 2, 3}, collectWith(tree.InOrder, 3))
	tassert.Equal(t, []int{4, 2}, collectWith(tree.PreOrder, 2))
	tassert.Equal(t, []int{1}, collectWith(tree.PostOrder, 1))
	tassert.Equal(t, []int{4, 2, 6, 1}, collectWith(tree.LevelOrder, 4))
}

func TestTraversalOfEmptyTree(t *testing.T) {
	for _, kind := range kinds {
		tree := newIntTree(t, kind, 0, 0)
		for _, walk := range []func(func(int) bool){
			tree.InOrder, tree.ReverseOrder, tree.PreOrder, tree.PostOrder, tree.LevelOrder,
		} {
			tassert.Empty(t, collectWith(walk, 10))
		}
	}
}

func TestTraversalsVisitEveryNode(t *testing.T) {
	for _, kind := range kinds {
		tree := newIntTree(t, kind, 0, 0)
		for i := 0; i < 100; i++ {
			insertAll(t, tree, (i*37)%101)
		}
		want := tree.Slice()
		for _, walk := range []func(func(int) bool){tree.PreOrder, tree.PostOrder, tree.LevelOrder} {
			got := collectWith(walk, 1000)
			slices.Sort(got)
			tassert.Equal(t, want, got)
		}
	}
}

func TestIterators(t *testing.T) {
	tree := newIntTree(t, AVL, 0, 0)
	insertAll(t, tree, 3, 1, 2)
	tassert.Equal(t, []int{1, 2, 3}, slices.Collect(tree.All()))
	tassert.Equal(t, []int{3, 2, 1}, slices.Collect(tree.Backward()))
	for x := range tree.All() {
		if x == 2 {
			break
		}
	}
}
