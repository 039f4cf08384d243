package alloc

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arenatree.alloc'.
func tracer() tracing.Trace {
	return tracing.Select("arenatree.alloc")
}

// Budget admits requests as long as the sum of live reservations stays
// within a fixed byte limit.
type Budget struct {
	limit int
	used  int
}

var _ Allocator = (*Budget)(nil)

// NewBudget creates a budget allocator with a limit of limit bytes.
func NewBudget(limit int) *Budget {
	if limit < 0 {
		limit = 0
	}
	return &Budget{limit: limit}
}

// ParseBudget creates a budget allocator from a human readable size such as
// "512 KiB" or "4MB".
func ParseBudget(s string) (*Budget, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSize, err)
	}
	if n > uint64(maxInt) {
		return nil, fmt.Errorf("%w: budget %q too large", ErrBadSize, s)
	}
	return NewBudget(int(n)), nil
}

const maxInt = int(^uint(0) >> 1)

// Limit returns the byte limit.
func (b *Budget) Limit() int { return b.limit }

// Used returns the number of bytes currently reserved.
func (b *Budget) Used() int { return b.used }

// Available returns the number of bytes that may still be reserved.
func (b *Budget) Available() int { return b.limit - b.used }

func (b *Budget) Alloc(size int) error {
	if size < 0 {
		return ErrBadSize
	}
	if size > b.Available() {
		return fmt.Errorf("%w: need %s, have %s of %s", ErrOutOfMemory,
			humanize.IBytes(uint64(size)), humanize.IBytes(uint64(b.Available())),
			humanize.IBytes(uint64(b.limit)))
	}
	b.used += size
	return nil
}

func (b *Budget) Realloc(oldSize, newSize int) error {
	if oldSize < 0 || newSize < 0 {
		return ErrBadSize
	}
	if oldSize > b.used {
		return fmt.Errorf("%w: realloc of %d bytes with %d in use", ErrUnderflow, oldSize, b.used)
	}
	if newSize-oldSize > b.Available() {
		return fmt.Errorf("%w: grow %s to %s exceeds limit %s", ErrOutOfMemory,
			humanize.IBytes(uint64(oldSize)), humanize.IBytes(uint64(newSize)),
			humanize.IBytes(uint64(b.limit)))
	}
	b.used += newSize - oldSize
	return nil
}

func (b *Budget) Free(size int) {
	if size > b.used {
		tracer().Errorf("%v: free of %d bytes with %d in use", ErrUnderflow, size, b.used)
		b.used = 0
		return
	}
	b.used -= size
}

func (b *Budget) String() string {
	return fmt.Sprintf("budget(%s/%s)", humanize.IBytes(uint64(b.used)), humanize.IBytes(uint64(b.limit)))
}
