package arenatree

import (
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	for _, kind := range kinds {
		tree := newIntTree(t, kind, 0, 0)
		_, err := tree.Min()
		tassert.ErrorIs(t, err, ErrEmpty)
		_, err = tree.RemoveMax()
		tassert.ErrorIs(t, err, ErrEmpty)

		insertAll(t, tree, 50, 20, 80, 10, 90)
		x, err := tree.Min()
		require.NoError(t, err)
		tassert.Equal(t, 10, x)
		x, err = tree.Max()
		require.NoError(t, err)
		tassert.Equal(t, 90, x)

		x, err = tree.RemoveMin()
		require.NoError(t, err)
		tassert.Equal(t, 10, x)
		x, err = tree.RemoveMax()
		require.NoError(t, err)
		tassert.Equal(t, 90, x)
		tassert.Equal(t, []int{20, 50, 80}, tree.Slice())
		require.NoError(t, tree.Check())
	}
}

func TestNeighbourQueries(t *testing.T) {
	for _, kind := range kinds {
		tree := newIntTree(t, kind, 0, 0)
		insertAll(t, tree, 10, 20, 30, 40, 50)
		for _, tc := range []struct {
			name string
			fn   func(int) (int, error)
			x    int
			want int
			err  error
		}{
			{"floor exact", tree.Floor, 30, 30, nil},
			{"floor between", tree.Floor, 35, 30, nil},
			{"floor below", tree.Floor, 5, 0, ErrNotFound},
			{"floor above", tree.Floor, 99, 50, nil},
			{"ceil exact", tree.Ceil, 30, 30, nil},
			{"ceil between", tree.Ceil, 35, 40, nil},
			{"ceil above", tree.Ceil, 51, 0, ErrNotFound},
			{"successor exact", tree.Successor, 30, 40, nil},
			{"successor between", tree.Successor, 31, 40, nil},
			{"successor of max", tree.Successor, 50, 0, ErrNotFound},
			{"predecessor exact", tree.Predecessor, 30, 20, nil},
			{"predecessor between", tree.Predecessor, 29, 20, nil},
			{"predecessor of min", tree.Predecessor, 10, 0, ErrNotFound},
		} {
			got, err := tc.fn(tc.x)
			if tc.err != nil {
				tassert.ErrorIs(t, err, tc.err, "%s/%s", kind, tc.name)
				continue
			}
			require.NoError(t, err, "%s/%s", kind, tc.name)
			tassert.Equal(t, tc.want, got, "%s/%s", kind, tc.name)
		}
		tassert.Equal(t, 5, tree.Len(), "queries must not modify the tree")
	}
}

func TestRemovingQueries(t *testing.T) {
	for _, kind := range kinds {
		tree := newIntTree(t, kind, 8, 0)
		insertAll(t, tree, 10, 20, 30, 40, 50)

		x, err := tree.RemoveFloor(35)
		require.NoError(t, err)
		tassert.Equal(t, 30, x)
		x, err = tree.RemoveCeil(35)
		require.NoError(t, err)
		tassert.Equal(t, 40, x)
		x, err = tree.RemoveSuccessor(10)
		require.NoError(t, err)
		tassert.Equal(t, 20, x)
		x, err = tree.RemovePredecessor(50)
		require.NoError(t, err)
		tassert.Equal(t, 10, x)
		_, err = tree.RemovePredecessor(50)
		tassert.ErrorIs(t, err, ErrNotFound)

		tassert.Equal(t, []int{50}, tree.Slice())
		require.NoError(t, tree.Check())
	}
}
