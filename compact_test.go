package arenatree

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/npillmayer/arenatree/alloc"
	"github.com/stretchr/testify/require"
)

func slotsByElement(tree *Tree[int]) map[int]index {
	m := make(map[int]index, tree.length)
	for i := 0; i < tree.length; i++ {
		m[tree.elems[i]] = index(i)
	}
	return m
}

func TestCompactionMovesOneNode(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			r := rand.New(rand.NewSource(11))
			tree := newIntTree(t, kind, 0, 8)
			xs := r.Perm(200)
			for _, x := range xs {
				require.NoError(t, tree.Insert(x))
			}
			r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
			for _, x := range xs {
				before := slotsByElement(tree)
				last := index(tree.length - 1)
				_, err := tree.Remove(x)
				require.NoError(t, err)
				require.NoError(t, tree.Check())

				moved := 0
				for y, slot := range slotsByElement(tree) {
					if before[y] != slot {
						moved++
						require.Equal(t, last, before[y], "only the last slot may move")
						require.Equal(t, before[x], slot, "moved node fills the hole")
					}
				}
				if before[x] == last {
					require.Zero(t, moved)
				} else {
					require.Equal(t, 1, moved)
				}
				for i := 0; i < tree.length; i++ {
					for _, link := range []index{tree.parent[i], tree.left[i], tree.right[i]} {
						require.True(t, link == nilIndex || int(link) < tree.length)
					}
				}
			}
			require.True(t, tree.IsEmpty())
		})
	}
}

func TestCompactionWithEqualElements(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			tree := newIntTree(t, kind, 0, 4)
			for i := 0; i < 40; i++ {
				require.NoError(t, tree.Insert(i%3))
			}
			for tree.Len() > 0 {
				x, err := tree.RemoveMax()
				require.NoError(t, err)
				require.Contains(t, []int{0, 1, 2}, x)
				require.NoError(t, tree.Check())
			}
			require.Equal(t, 0, tree.Cap())
		})
	}
}

func TestArenaIsOneReservation(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			budget := alloc.NewBudget(1 << 20)
			tree, err := New(Config[int]{Kind: kind, Compare: cmp.Compare[int], Chunk: 8, Allocator: budget})
			require.NoError(t, err)
			for i := 0; i < 50; i++ {
				require.NoError(t, tree.Insert(i))
				want, err := tree.arenaBytes(tree.Cap())
				require.NoError(t, err)
				require.Equal(t, want, budget.Used(), "after insert %d", i)
			}
			for i := 0; i < 50; i++ {
				_, err := tree.Remove(i)
				require.NoError(t, err)
				want, err := tree.arenaBytes(tree.Cap())
				require.NoError(t, err)
				require.Equal(t, want, budget.Used(), "after remove %d", i)
			}
			tree.Destroy(nil)
			require.Zero(t, budget.Used())
		})
	}
}
