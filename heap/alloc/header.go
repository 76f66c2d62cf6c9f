package alloc

import "unsafe"

// Header is the metadata record immediately preceding every object. It is
// written into raw block memory at allocation time and recovered by address
// arithmetic, so its layout is part of the heap format: 4 bytes, 2-byte
// alignment.
type Header struct {
	class SizeClass
	mark  Mark
	size  uint16
}

const (
	headerSize  = int(unsafe.Sizeof(Header{}))
	headerAlign = int(unsafe.Alignof(Header{}))
)

// SizeClass returns the class assigned at allocation time.
func (h *Header) SizeClass() SizeClass {
	return h.class
}

// Mark returns the object's current epoch color.
func (h *Header) Mark() Mark {
	return h.mark
}

// SetMark rewrites the object's epoch color. Called by the tracer when it
// visits the object.
func (h *Header) SetMark(m Mark) {
	h.mark = m
}

// Size returns the encoded header-inclusive allocation size. The field is
// exact for small and medium cells, where it drives per-block bookkeeping;
// for large cells it is a truncated leftover and must not be relied on.
func (h *Header) Size() uint16 {
	return h.size
}

// objectOffset returns the distance from a cell's base to its object along
// with the alignment the cell must satisfy. The padding between header and
// object is a pure function of the object's alignment, never stored: the
// allocation path and the header-recovery path both call this, so the two
// can never disagree.
//
//	align   = max(headerAlign, objAlign)
//	padding = (align - headerSize%align) % align
//	offset  = headerSize + padding
//
// Because offset is a multiple of align, a cell base aligned to align
// yields an object address aligned to objAlign.
func objectOffset(objAlign int) (offset, align int) {
	align = headerAlign
	if objAlign > align {
		align = objAlign
	}
	padding := (align - headerSize%align) % align
	return headerSize + padding, align
}

// headerAt interprets raw cell memory as a Header.
func headerAt(p unsafe.Pointer) *Header {
	return (*Header)(p)
}
