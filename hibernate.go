package arenatree

import (
	"encoding/binary"
	"fmt"

	"github.com/npillmayer/arenatree/alloc"
	"github.com/pierrec/lz4/v4"
)

// A hibernated tree keeps its elements resident and holds its link columns
// (and meta column) LZ4-compressed. Only the live prefix [0, length) of each
// column is stored.
type hibernation struct {
	parent, left, right, meta frozenColumn
}

type frozenColumn struct {
	data []byte // reserved through the tree's allocator
	size int    // uncompressed size in bytes
	raw  bool   // data is stored uncompressed
}

// linkBytes is the share of arenaBytes(n) taken by the index and meta columns.
func (t *Tree[T]) linkBytes(n int) (int, error) {
	total, err := t.arenaBytes(n)
	if err != nil {
		return 0, err
	}
	e, err := alloc.SizeOf[T](n)
	if err != nil {
		return 0, err
	}
	return total - e, nil
}

// Hibernate compresses the tree's link columns and releases them. While
// hibernated, every operation except Boot, Destroy and IsHibernated fails
// with ErrHibernated or acts as on an empty tree. Hibernating an empty or
// already hibernated tree does nothing.
func (t *Tree[T]) Hibernate() error {
	if t == nil {
		return ErrNilTree
	}
	if t.released {
		return ErrReleased
	}
	if t.frozen != nil || t.length == 0 {
		return nil
	}
	a := t.cfg.Allocator
	h := &hibernation{}
	var err error
	if h.parent, err = freeze(a, indexBytes(t.parent[:t.length])); err != nil {
		return t.abortHibernate(h, err)
	}
	if h.left, err = freeze(a, indexBytes(t.left[:t.length])); err != nil {
		return t.abortHibernate(h, err)
	}
	if h.right, err = freeze(a, indexBytes(t.right[:t.length])); err != nil {
		return t.abortHibernate(h, err)
	}
	if t.meta != nil {
		if h.meta, err = freeze(a, t.meta[:t.length]); err != nil {
			return t.abortHibernate(h, err)
		}
	}
	total, _ := t.arenaBytes(len(t.elems))
	links, _ := t.linkBytes(len(t.elems))
	if err := a.Realloc(total, total-links); err != nil {
		return t.abortHibernate(h, err)
	}
	t.parent, t.left, t.right, t.meta = nil, nil, nil, nil
	t.frozen = h
	tracer().Debugf("arenatree: hibernated %d nodes into %d bytes", t.length, h.footprint())
	return nil
}

func (t *Tree[T]) abortHibernate(h *hibernation, err error) error {
	h.release(t.cfg.Allocator)
	return fmt.Errorf("%w: hibernate: %w", ErrAllocation, err)
}

// Boot restores the link columns of a hibernated tree. If the allocator
// refuses the memory, the tree stays hibernated.
func (t *Tree[T]) Boot() error {
	if t == nil {
		return ErrNilTree
	}
	if t.released {
		return ErrReleased
	}
	h := t.frozen
	if h == nil {
		return nil
	}
	a := t.cfg.Allocator
	total, _ := t.arenaBytes(len(t.elems))
	links, _ := t.linkBytes(len(t.elems))
	if err := a.Realloc(total-links, total); err != nil {
		return fmt.Errorf("%w: boot: %w", ErrAllocation, err)
	}
	undo := func(err error) error {
		_ = a.Realloc(total, total-links)
		return err
	}
	n := len(t.elems)
	parent, err := h.parent.indices(n, t.length)
	if err != nil {
		return undo(err)
	}
	left, err := h.left.indices(n, t.length)
	if err != nil {
		return undo(err)
	}
	right, err := h.right.indices(n, t.length)
	if err != nil {
		return undo(err)
	}
	var meta []uint8
	if t.hasMeta() {
		meta = make([]uint8, n)
		if err := h.meta.thaw(meta[:t.length]); err != nil {
			return undo(err)
		}
	}
	t.parent, t.left, t.right, t.meta = parent, left, right, meta
	h.release(a)
	t.frozen = nil
	tracer().Debugf("arenatree: booted %d nodes", t.length)
	return nil
}

func (h *hibernation) footprint() int {
	return len(h.parent.data) + len(h.left.data) + len(h.right.data) + len(h.meta.data)
}

func (h *hibernation) release(a alloc.Allocator) {
	for _, c := range []*frozenColumn{&h.parent, &h.left, &h.right, &h.meta} {
		alloc.Release(a, c.data)
		c.data = nil
	}
}

// freeze compresses src into a buffer reserved through a. Incompressible
// input is stored as is.
func freeze(a alloc.Allocator, src []byte) (frozenColumn, error) {
	c := frozenColumn{size: len(src)}
	if len(src) == 0 {
		return c, nil
	}
	buf, err := alloc.Slots[byte](a, lz4.CompressBlockBound(len(src)))
	if err != nil {
		return c, err
	}
	written, err := lz4.CompressBlock(src, buf, nil)
	if err != nil || written == 0 || written >= len(src) {
		c.raw = true
		written = len(src)
		copy(buf, src)
	}
	if c.data, err = alloc.Resize(a, buf, written); err != nil {
		alloc.Release(a, buf)
		return c, err
	}
	return c, nil
}

// thaw decompresses c into dst, which must have c.size bytes.
func (c frozenColumn) thaw(dst []byte) error {
	assert(len(dst) == c.size, "thaw: destination size mismatch")
	if c.size == 0 {
		return nil
	}
	if c.raw {
		copy(dst, c.data)
		return nil
	}
	n, err := lz4.UncompressBlock(c.data, dst)
	if err != nil {
		return fmt.Errorf("%w: boot: %v", ErrInvariant, err)
	}
	if n != c.size {
		return fmt.Errorf("%w: boot: column decoded to %d of %d bytes", ErrInvariant, n, c.size)
	}
	return nil
}

// indices decodes c into an index column of n slots, of which the first
// live ones are stored in c; the rest are set to nilIndex.
func (c frozenColumn) indices(n, live int) ([]index, error) {
	raw := make([]byte, live*4)
	if err := c.thaw(raw); err != nil {
		return nil, err
	}
	col := make([]index, n)
	for i := range col {
		if i < live {
			col[i] = index(binary.LittleEndian.Uint32(raw[i*4:]))
		} else {
			col[i] = nilIndex
		}
	}
	return col, nil
}

func indexBytes(col []index) []byte {
	b := make([]byte, 0, len(col)*4)
	for _, x := range col {
		b = binary.LittleEndian.AppendUint32(b, uint32(x))
	}
	return b
}
