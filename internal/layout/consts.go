// Package layout houses the geometry of the heap: block and region sizing,
// alignment helpers, and the size/alignment pair that describes a single
// allocation request. The goal is to keep every address computation a pure
// function of these constants so the write path and the read-back path can
// never disagree.
package layout

const (
	// BlockSize is the size of a heap block in bytes. Blocks are the unit of
	// currency between the block store and an allocation head, and every
	// region boundary is aligned to this value.
	BlockSize = 1 << 15 // 32 KiB

	// LineSize is the per-block bookkeeping reserve. The first line of every
	// block is set aside for block metadata and is never handed to objects.
	LineSize = 1 << 7 // 128 B

	// BlockCapacity is the number of bytes of a block that objects may
	// occupy (BlockSize minus the bookkeeping reserve).
	BlockCapacity = BlockSize - LineSize

	// BlocksPerRegion is the number of blocks carved from a single region
	// reservation.
	BlocksPerRegion = 32

	// RegionSize is the size of one region reservation in bytes.
	RegionSize = BlockSize * BlocksPerRegion // 1 MiB

	// MaxAllocSize is the largest header-inclusive allocation the heap will
	// classify. Requests beyond it fail classification and surface as an
	// allocation error.
	MaxAllocSize = 1<<32 - 1

	// BlockAlignment is the required alignment of blocks and regions.
	BlockAlignment = BlockSize

	// BlockAlignmentMask is the bitmask used for aligning to block
	// boundaries (BlockAlignment - 1).
	BlockAlignmentMask = BlockAlignment - 1
)
