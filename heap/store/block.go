package store

import "unsafe"

// Block is a fixed-size, block-aligned slice of a region. It is a handle,
// not an owner: the backing region stays alive in the store, and the block
// moves between the store and whichever allocation front currently holds it.
// The zero Block is invalid and reports !Valid().
type Block struct {
	ptr  unsafe.Pointer
	size int
}

// Valid reports whether the block refers to real memory.
func (b Block) Valid() bool {
	return b.ptr != nil
}

// Size returns the block's byte size. For ordinary blocks this is
// layout.BlockSize; spans cover a whole number of blocks.
func (b Block) Size() int {
	return b.size
}

// At returns the address base+offset within the block.
func (b Block) At(offset int) unsafe.Pointer {
	assertOffset(offset, b.size)
	return unsafe.Add(b.ptr, offset)
}
