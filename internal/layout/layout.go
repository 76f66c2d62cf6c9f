package layout

import (
	"fmt"
	"unsafe"
)

// Layout describes one allocation request: a byte size and a power-of-two
// alignment. It is the only currency the allocator accepts, so every request
// carries its alignment requirement explicitly rather than implying it.
type Layout struct {
	Size  int
	Align int
}

// New builds a Layout after validating it. Size must be non-negative and
// align must be a power of two no larger than a block.
func New(size, align int) (Layout, error) {
	if size < 0 {
		return Layout{}, fmt.Errorf("layout: negative size %d", size)
	}
	if !IsPowerOfTwo(align) {
		return Layout{}, fmt.Errorf("layout: alignment %d is not a power of two", align)
	}
	if align > BlockAlignment {
		return Layout{}, fmt.Errorf("layout: alignment %d exceeds block alignment %d", align, BlockAlignment)
	}
	return Layout{Size: size, Align: align}, nil
}

// For returns the Layout of values of type T, mirroring what the compiler
// would require for a heap cell holding one T.
func For[T any]() Layout {
	var v T
	return Layout{Size: int(unsafe.Sizeof(v)), Align: int(unsafe.Alignof(v))}
}
