package layout

// Alignment utilities for heap address computation. Alignments are always
// powers of two, so align-up is a mask operation.

// AlignUp returns n aligned up to the next multiple of align.
// align must be a power of two.
//
// Example:
//
//	AlignUp(1, 8)  = 8
//	AlignUp(8, 8)  = 8
//	AlignUp(9, 8)  = 16
func AlignUp(n, align int) int {
	return (n + align - 1) & ^(align - 1)
}

// AlignBlock returns n aligned up to the next block boundary.
// Used when sizing oversized allocations, which occupy whole blocks.
//
// Example:
//
//	AlignBlock(1)         = BlockSize
//	AlignBlock(BlockSize) = BlockSize
func AlignBlock(n int) int {
	return (n + BlockAlignmentMask) & ^BlockAlignmentMask
}

// IsAligned reports whether n is a multiple of align.
// align must be a power of two.
func IsAligned(n uintptr, align int) bool {
	return n&uintptr(align-1) == 0
}

// IsPowerOfTwo reports whether n is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
