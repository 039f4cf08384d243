package arenatree

import (
	"fmt"
	"math"

	"github.com/npillmayer/arenatree/alloc"
)

// index addresses a slot of the arena.
type index uint32

// nilIndex marks the absence of a node. It lies outside every valid arena.
const nilIndex index = math.MaxUint32

// maxSlots is MaxCapacity, clipped to the platform's int.
const maxSlots = int(min(uint64(MaxCapacity), uint64(math.MaxInt)))

// Node colors for red-black trees, stored in the meta column.
const (
	red   uint8 = 0
	black uint8 = 1
)

// arenaBytes is the number of bytes n slots occupy across all columns.
func (t *Tree[T]) arenaBytes(n int) (int, error) {
	e, err := alloc.SizeOf[T](n)
	if err != nil {
		return 0, err
	}
	links, err := alloc.SizeOf[index](n)
	if err != nil {
		return 0, err
	}
	size := e + 3*links
	if t.hasMeta() {
		size += n
	}
	if size < 0 {
		return 0, fmt.Errorf("%w: arena of %d slots", alloc.ErrBadSize, n)
	}
	return size, nil
}

func (t *Tree[T]) hasMeta() bool {
	return t.cfg.Kind != BST
}

// allocArena reserves and creates columns for n slots. Columns must be empty.
func (t *Tree[T]) allocArena(n int) error {
	assert(len(t.elems) == 0, "arena already allocated")
	if n == 0 {
		return nil
	}
	size, err := t.arenaBytes(n)
	if err != nil {
		return err
	}
	if err := t.cfg.Allocator.Alloc(size); err != nil {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	t.setColumns(n)
	return nil
}

// resizeArena changes the number of slots to n, keeping slots [0, length).
// On error the arena is unchanged.
func (t *Tree[T]) resizeArena(n int) error {
	assert(n >= t.length, "arena resize would drop live nodes")
	oldSize, err := t.arenaBytes(len(t.elems))
	if err != nil {
		return err
	}
	newSize, err := t.arenaBytes(n)
	if err != nil {
		return err
	}
	if err := t.cfg.Allocator.Realloc(oldSize, newSize); err != nil {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	t.setColumns(n)
	return nil
}

// reservedBytes is the size of the arena's current reservation. The link
// columns of a hibernated tree are not part of it.
func (t *Tree[T]) reservedBytes() int {
	size, err := t.arenaBytes(len(t.elems))
	if err != nil {
		return 0
	}
	if t.frozen != nil {
		links, _ := t.linkBytes(len(t.elems))
		size -= links
	}
	return size
}

// freeArena releases all columns.
func (t *Tree[T]) freeArena() {
	if size := t.reservedBytes(); size > 0 {
		t.cfg.Allocator.Free(size)
	}
	t.elems, t.parent, t.left, t.right, t.meta = nil, nil, nil, nil, nil
}

// setColumns resizes every column to n slots. Callers charge the allocator
// once for the arena as a whole, so that a grow either succeeds for all
// columns or leaves them untouched.
func (t *Tree[T]) setColumns(n int) {
	t.elems = resized(t.elems, n)
	t.parent = resized(t.parent, n)
	t.left = resized(t.left, n)
	t.right = resized(t.right, n)
	if t.hasMeta() {
		t.meta = resized(t.meta, n)
	}
}

func resized[S any](s []S, n int) []S {
	if n == 0 {
		return nil
	}
	r := make([]S, n)
	copy(r, s)
	return r
}

// ensureSlot makes room for one more node.
func (t *Tree[T]) ensureSlot() error {
	if t.length < len(t.elems) {
		return nil
	}
	if t.cfg.Bounded() {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, t.cfg.Capacity)
	}
	n := len(t.elems) + t.cfg.Chunk
	if n > maxSlots {
		n = maxSlots
	}
	if n <= t.length {
		return fmt.Errorf("%w: tree holds %d nodes", ErrCapacityExceeded, t.length)
	}
	if err := t.resizeArena(n); err != nil {
		return err
	}
	tracer().Debugf("arenatree: %s arena grown to %d slots", t.cfg.Kind, n)
	return nil
}

// shrink releases one chunk of a growable arena once it is entirely unused.
func (t *Tree[T]) shrink() {
	if t.cfg.Bounded() || len(t.elems)-t.cfg.Chunk != t.length {
		return
	}
	if err := t.resizeArena(t.length); err != nil {
		tracer().Errorf("arenatree: keeping %d slots: %v", len(t.elems), err)
		return
	}
	tracer().Debugf("arenatree: %s arena shrunk to %d slots", t.cfg.Kind, t.length)
}

// newNode places x into the first free slot as an unlinked node.
func (t *Tree[T]) newNode(x T) index {
	n := index(t.length)
	t.elems[n] = x
	t.parent[n], t.left[n], t.right[n] = nilIndex, nilIndex, nilIndex
	switch t.cfg.Kind {
	case RedBlack:
		t.meta[n] = red
	case AVL:
		t.meta[n] = 1
	}
	t.length++
	return n
}

// compact fills the unlinked slot hole with the node in the last slot and
// repairs every reference to that node. Afterwards slots [0, length) are
// exactly the live nodes again.
func (t *Tree[T]) compact(hole index) {
	last := index(t.length - 1)
	var zero T
	if hole != last {
		t.elems[hole] = t.elems[last]
		t.parent[hole] = t.parent[last]
		t.left[hole] = t.left[last]
		t.right[hole] = t.right[last]
		if t.meta != nil {
			t.meta[hole] = t.meta[last]
		}
		if p := t.parent[hole]; p == nilIndex {
			assert(t.root == last, "parentless node is not the root")
			t.root = hole
		} else if t.left[p] == last {
			t.left[p] = hole
		} else {
			assert(t.right[p] == last, "parent does not reference moved node")
			t.right[p] = hole
		}
		if l := t.left[hole]; l != nilIndex {
			t.parent[l] = hole
		}
		if r := t.right[hole]; r != nilIndex {
			t.parent[r] = hole
		}
	}
	t.elems[last] = zero
	t.parent[last], t.left[last], t.right[last] = nilIndex, nilIndex, nilIndex
	t.length--
	if t.length == 0 {
		t.root = nilIndex
	}
}
