package arenatree

import (
	"cmp"
	"math/rand"
	"testing"
)

func benchTree(b *testing.B, kind Kind) *Tree[int] {
	tree, err := New(Config[int]{Kind: kind, Compare: cmp.Compare[int]})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	return tree
}

func BenchmarkInsertRemove(b *testing.B) {
	xs := rand.New(rand.NewSource(1)).Perm(4096)
	for _, kind := range []Kind{BST, RedBlack, AVL} {
		b.Run(kind.String(), func(b *testing.B) {
			tree := benchTree(b, kind)
			for b.Loop() {
				for _, x := range xs {
					if err := tree.Insert(x); err != nil {
						b.Fatal(err)
					}
				}
				for _, x := range xs {
					if _, err := tree.Remove(x); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	xs := rand.New(rand.NewSource(1)).Perm(4096)
	for _, kind := range []Kind{BST, RedBlack, AVL} {
		b.Run(kind.String(), func(b *testing.B) {
			tree := benchTree(b, kind)
			for _, x := range xs {
				if err := tree.Insert(x); err != nil {
					b.Fatal(err)
				}
			}
			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				if !tree.Contains(xs[i%len(xs)]) {
					b.Fatal("lost element")
				}
			}
		})
	}
}
