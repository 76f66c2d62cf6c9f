package alloc

import (
	"unsafe"

	"github.com/joshuapare/gcheap/internal/layout"
)

// Allocator is one allocation front against an arena. It computes the
// header-adjusted cell layout, drives its bump head, writes the header, and
// hands back the object address.
//
// An Allocator is not safe for concurrent use; create one per goroutine and
// share the Arena instead. The only state fronts share is the arena's mark
// cell and block supply.
type Allocator struct {
	head *head
	mark *MarkCell
}

// New creates an allocation front against arena.
func New(arena *Arena) *Allocator {
	return &Allocator{
		head: newHead(arena),
		mark: arena.MarkRef(),
	}
}

// Alloc places an object described by l and returns its address. The cell is
// the object prefixed by a Header and alignment padding:
//
//	cell base                      object
//	|                              |
//	[Header][padding..............][object bytes...]
//
// The returned address satisfies l.Align, and the header is recoverable from
// it via HeaderOf. The new object is stamped with the arena's current mark.
//
// Fails with ErrTooLarge when the padded size has no class and ErrNoBlock
// when the store cannot supply memory; both are terminal for this call.
func (a *Allocator) Alloc(l layout.Layout) (unsafe.Pointer, error) {
	off, align := objectOffset(l.Align)
	allocSize := off + l.Size

	class, err := ClassForSize(uint64(allocSize))
	if err != nil {
		return nil, err
	}

	space, err := a.head.alloc(layout.Layout{Size: allocSize, Align: align}, class)
	if err != nil {
		return nil, err
	}

	// The encoded size can truncate for large cells. That is fine: the
	// field drives per-block line bookkeeping, and large cells live alone
	// in dedicated spans where it is never read.
	*headerAt(space) = Header{
		class: class,
		mark:  a.mark.Load(),
		size:  uint16(allocSize),
	}
	return unsafe.Add(space, off), nil
}

// IsOld reports whether the object's stored mark equals the arena's current
// mark. The tracer uses this to recognize objects already stamped for the
// in-progress epoch — which also keeps it from looping on reference cycles —
// and to tell survivors of a flip from fresh garbage.
func IsOld[T any](a *Allocator, p *T) bool {
	return GetMark(p) == a.mark.Load()
}

// HeaderOf recovers the header of an allocated object. The padding is
// recomputed from T's alignment exactly as Alloc computed it, so the result
// mirrors the allocation-time placement bit for bit. p must have been
// returned by Alloc with the layout of T.
func HeaderOf[T any](p *T) *Header {
	off, align := objectOffset(int(unsafe.Alignof(*p)))
	assertAligned(uintptr(unsafe.Pointer(p)), align)
	return headerAt(unsafe.Add(unsafe.Pointer(p), -off))
}

// GetMark reads the mark byte of an allocated object.
func GetMark[T any](p *T) Mark {
	return HeaderOf(p).Mark()
}

// SetMark writes the mark byte of an allocated object.
func SetMark[T any](p *T, m Mark) {
	HeaderOf(p).SetMark(m)
}
