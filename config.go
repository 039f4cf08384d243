package arenatree

import (
	"fmt"
	"math"

	"github.com/npillmayer/arenatree/alloc"
)

// Kind selects the balancing discipline of a tree.
type Kind uint8

const (
	BST Kind = iota
	RedBlack
	AVL
)

func (k Kind) String() string {
	switch k {
	case BST:
		return "bst"
	case RedBlack:
		return "redblack"
	case AVL:
		return "avl"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps "bst", "rb"/"redblack" and "avl" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bst", "plain":
		return BST, nil
	case "rb", "redblack", "red-black":
		return RedBlack, nil
	case "avl":
		return AVL, nil
	}
	return BST, fmt.Errorf("%w: unknown tree kind %q", ErrInvalidConfig, s)
}

// DefaultChunk is the growth increment of growable trees.
const DefaultChunk = 64

// MaxCapacity is the largest number of nodes a tree can hold.
const MaxCapacity = math.MaxUint32

// Config configures a tree.
type Config[T any] struct {
	// Kind selects the balancing discipline.
	Kind Kind
	// Compare orders elements. It returns a negative number, zero or a
	// positive number if a < b, a == b or a > b respectively.
	Compare func(a, b T) int
	// Capacity > 0 creates a bounded tree holding at most Capacity nodes.
	// Capacity == 0 creates a growable tree.
	Capacity int
	// Chunk is the growth increment of growable trees. Zero selects DefaultChunk.
	Chunk int
	// Allocator admits memory requests. Nil selects alloc.Heap.
	Allocator alloc.Allocator
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Chunk == 0 {
		cfg.Chunk = DefaultChunk
	}
	cfg.Allocator = alloc.Default(cfg.Allocator)
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Kind > AVL {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, cfg.Kind)
	}
	if cfg.Capacity < 0 || uint64(cfg.Capacity) > MaxCapacity {
		return fmt.Errorf("%w: capacity %d out of range", ErrInvalidConfig, cfg.Capacity)
	}
	if cfg.Chunk < 0 || uint64(cfg.Chunk) > MaxCapacity {
		return fmt.Errorf("%w: chunk %d out of range", ErrInvalidConfig, cfg.Chunk)
	}
	return nil
}

// Bounded reports whether the configuration describes a bounded tree.
func (cfg Config[T]) Bounded() bool {
	return cfg.Capacity > 0
}
