package alloc

import (
	"fmt"

	"github.com/joshuapare/gcheap/internal/layout"
)

// SizeClass classifies a header-inclusive allocation size into one of three
// placement strategies.
type SizeClass uint8

const (
	// SizeClassSmall fits many-per-block, within a single line. Small cells
	// are the fine-grained bulk of the heap.
	SizeClassSmall SizeClass = iota

	// SizeClassMedium fits within one block's usable capacity. The space
	// left in a block after a medium cell is not chased; fragmentation is
	// accepted and reclaimed only by an external compaction pass.
	SizeClassMedium

	// SizeClassLarge exceeds a block's usable capacity. Large cells occupy a
	// dedicated run of whole blocks and never share bump space.
	SizeClassLarge
)

// String returns the class name for diagnostics.
func (c SizeClass) String() string {
	switch c {
	case SizeClassSmall:
		return "small"
	case SizeClassMedium:
		return "medium"
	case SizeClassLarge:
		return "large"
	default:
		return fmt.Sprintf("SizeClass(%d)", uint8(c))
	}
}

// ClassForSize maps a header-inclusive byte count to its size class. Sizes
// beyond layout.MaxAllocSize have no class and fail with ErrTooLarge, which
// surfaces to callers as an ordinary allocation failure.
func ClassForSize(size uint64) (SizeClass, error) {
	switch {
	case size <= layout.LineSize:
		return SizeClassSmall, nil
	case size <= layout.BlockCapacity:
		return SizeClassMedium, nil
	case size <= layout.MaxAllocSize:
		return SizeClassLarge, nil
	default:
		return 0, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
}
