package alloc

import "sync/atomic"

// Mark is a collection-epoch color. Every object carries one in its header,
// stamped at allocation time with the arena's current mark; the tracer
// rewrites it when it visits the object. The set is closed: the collector
// rotates through the colors at epoch boundaries.
type Mark uint8

const (
	MarkRed Mark = iota
	MarkGreen
	MarkBlue
)

// String returns the color name for diagnostics.
func (m Mark) String() string {
	switch m {
	case MarkRed:
		return "red"
	case MarkGreen:
		return "green"
	case MarkBlue:
		return "blue"
	default:
		return "invalid"
	}
}

// MarkCell is the arena's shared current-mark byte. Every allocator created
// against an arena holds the same cell, so all allocation fronts observe an
// epoch flip in a single total order without taking a lock.
//
// Loads and stores are sequentially consistent (sync/atomic). The value
// changes only at collection-epoch boundaries, flipped by the collector; a
// weaker ordering could let a front stamp a new object with a stale epoch
// and make the tracer re-visit or wrongly skip it.
type MarkCell struct {
	v atomic.Uint32
}

// Load returns the current mark.
func (c *MarkCell) Load() Mark {
	return Mark(c.v.Load())
}

// Store sets the current mark. Only the collector calls this, at epoch
// boundaries.
func (c *MarkCell) Store(m Mark) {
	c.v.Store(uint32(m))
}
