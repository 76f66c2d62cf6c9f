package alloc

import (
	"unsafe"

	"github.com/joshuapare/gcheap/heap/store"
	"github.com/joshuapare/gcheap/internal/layout"
)

// head is a bump-pointer cursor over one block at a time: the placement
// engine behind an Allocator. It is owned by a single allocation front and
// is not safe for concurrent use; fronts share only the arena behind it.
//
// The first line of every block is the bookkeeping reserve, so the cursor
// starts at layout.LineSize and runs to the end of the block. Space left
// behind when the cursor moves to a fresh block is deliberate internal
// fragmentation, reclaimed only by an external compaction pass.
type head struct {
	arena  *Arena
	block  store.Block
	offset int
	gen    uint64
}

func newHead(a *Arena) *head {
	return &head{arena: a}
}

// alloc places one cell of the given header-inclusive layout and returns its
// base address, aligned to l.Align. Large cells get a dedicated span; all
// others bump into the current block, replacing it when the cell does not
// fit.
func (h *head) alloc(l layout.Layout, class SizeClass) (unsafe.Pointer, error) {
	if class == SizeClassLarge {
		return h.allocSpan(l)
	}

	// A refresh recycles every block behind the arena's back; drop the
	// cursor rather than bump into memory someone else may now own.
	if h.block.Valid() && h.gen != h.arena.generation() {
		h.block = store.Block{}
	}

	if h.block.Valid() {
		off := layout.AlignUp(h.offset, l.Align)
		if off+l.Size <= layout.BlockSize {
			h.offset = off + l.Size
			return h.block.At(off), nil
		}
	}

	// Placement in a fresh block is fully determined by the layout alone.
	// An over-aligned cell can overflow even a fresh block; it occupies a
	// span of whole blocks instead.
	start := layout.AlignUp(layout.LineSize, l.Align)
	if start+l.Size > layout.BlockSize {
		return h.allocSpan(l)
	}

	b, err := h.arena.getBlock()
	if err != nil {
		return nil, err
	}
	h.block = b
	h.offset = start + l.Size
	h.gen = h.arena.generation()
	return b.At(start), nil
}

// allocSpan places one cell at the start of a dedicated run of whole blocks.
// The span start is block-aligned, which satisfies every layout alignment,
// and no further cell is ever placed into the span.
func (h *head) allocSpan(l layout.Layout) (unsafe.Pointer, error) {
	b, err := h.arena.getSpan(l.Size)
	if err != nil {
		return nil, err
	}
	return b.At(0), nil
}
