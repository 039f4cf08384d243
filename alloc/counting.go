package alloc

// Stats is a snapshot of the activity seen by a Counting allocator.
type Stats struct {
	Allocs   int // successful Alloc calls
	Reallocs int // successful Realloc calls
	Frees    int // Free calls
	Failures int // rejected Alloc and Realloc calls
	Live     int // bytes currently reserved
	Peak     int // high-water mark of Live
}

// Counting forwards to another allocator and records statistics.
type Counting struct {
	next  Allocator
	stats Stats
}

var _ Allocator = (*Counting)(nil)

// NewCounting wraps next. A nil next is replaced by Heap.
func NewCounting(next Allocator) *Counting {
	return &Counting{next: Default(next)}
}

// Stats returns a snapshot of the statistics.
func (c *Counting) Stats() Stats { return c.stats }

// Reset zeroes all counters except Live.
func (c *Counting) Reset() {
	c.stats = Stats{Live: c.stats.Live, Peak: c.stats.Live}
}

func (c *Counting) Alloc(size int) error {
	if err := c.next.Alloc(size); err != nil {
		c.stats.Failures++
		return err
	}
	c.stats.Allocs++
	c.grow(size)
	return nil
}

func (c *Counting) Realloc(oldSize, newSize int) error {
	if err := c.next.Realloc(oldSize, newSize); err != nil {
		c.stats.Failures++
		return err
	}
	c.stats.Reallocs++
	c.grow(newSize - oldSize)
	return nil
}

func (c *Counting) Free(size int) {
	c.next.Free(size)
	c.stats.Frees++
	c.grow(-size)
}

func (c *Counting) grow(delta int) {
	c.stats.Live += delta
	if c.stats.Live < 0 {
		c.stats.Live = 0
	}
	if c.stats.Live > c.stats.Peak {
		c.stats.Peak = c.stats.Live
	}
}
