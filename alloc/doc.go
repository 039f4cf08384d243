/*
Package alloc provides the memory capability handed to arena-backed trees.

The Go runtime owns the actual memory. An Allocator is consulted whenever a
tree wants to obtain, resize or release one of its backing columns, and it
decides whether the request is admitted. This makes allocation failure a
first-class, testable outcome and lets callers observe how much memory their
trees hold.

# Allocator Interface

	Alloc(size)            reserve size bytes
	Realloc(old, new)      move a reservation from old to new bytes
	Free(size)             give back size bytes

Sizes are byte counts. Typed helpers Slots, Resize and Release compute them
from the element type and return ready-to-use slices.

# Implementations

Heap admits every request. Budget enforces a hard byte limit and fails with
ErrOutOfMemory. Counting wraps another allocator and keeps statistics.
Instrumented wraps another allocator and mirrors its activity into
Prometheus metrics.

# Usage Example

	budget, err := alloc.ParseBudget("64KiB")
	if err != nil {
	    return err
	}
	xs, err := alloc.Slots[uint32](budget, 1024)
	if err != nil {
	    return err // errors.Is(err, alloc.ErrOutOfMemory)
	}
	defer alloc.Release(budget, xs)
*/
package alloc
