package store

import (
	"fmt"

	"github.com/joshuapare/gcheap/internal/layout"
	"github.com/joshuapare/gcheap/internal/mmap"
)

// Region is a single raw memory reservation sliced into equal blocks. The
// reservation is aligned to the block size, so every block boundary inside
// it is naturally block-aligned. A region owns its memory for the lifetime
// of every block carved from it and is released exactly once, by the store
// that created it, with the layout it was created with.
type Region struct {
	data    []byte
	size    int
	release func() error
}

// NewRegion reserves l.Size bytes at l.Align. The size must be a whole
// number of blocks and the alignment must equal the block alignment.
func NewRegion(l layout.Layout) (*Region, error) {
	if l.Size <= 0 || l.Size%layout.BlockSize != 0 {
		return nil, fmt.Errorf("store: region size %d is not a multiple of the block size: %w", l.Size, ErrBadLayout)
	}
	if l.Align != layout.BlockAlignment {
		return nil, fmt.Errorf("store: region alignment %d must equal the block alignment: %w", l.Align, ErrBadLayout)
	}

	data, release, err := mmap.Alloc(l.Size, l.Align)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapFailed, err)
	}
	return &Region{data: data, size: l.Size, release: release}, nil
}

// At returns the address base+offset.
func (r *Region) At(offset int) *byte {
	assertOffset(offset, r.size)
	return &r.data[offset]
}

// Size returns the region's total byte size.
func (r *Region) Size() int {
	return r.size
}

// Blocks returns the number of blocks the region backs.
func (r *Region) Blocks() int {
	return r.size / layout.BlockSize
}

// Release returns the reservation to the platform. The caller must guarantee
// no block carved from the region is still outstanding. Safe to call twice.
func (r *Region) Release() error {
	if r.release == nil {
		return nil
	}
	rel := r.release
	r.release = nil
	r.data = nil
	return rel()
}
