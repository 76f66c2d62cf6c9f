package alloc

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/joshuapare/gcheap/heap/store"
)

// Arena owns the block supply for one logical heap: a block store handle,
// the shared current-mark cell, and a coarse size counter. Any number of
// allocation fronts (Allocators) may be created against one arena.
type Arena struct {
	store *store.Store
	mark  MarkCell

	// gen counts Refresh calls. Allocation heads remember the generation a
	// block was taken under and drop their cursor when it changes, so a
	// refresh can never leave a front bumping into a recycled block.
	gen atomic.Uint64

	mu    sync.Mutex
	held  []store.Block
	spare store.Block
	bytes int
}

// NewArena creates an arena with zero blocks checked out. The first
// allocation triggers the first block acquisition.
func NewArena() *Arena {
	return &Arena{store: store.New()}
}

// MarkRef returns the shared current-mark cell. The collector flips it at
// epoch boundaries; every allocator against this arena reads it when
// stamping new objects.
func (a *Arena) MarkRef() *MarkCell {
	return &a.mark
}

// Size returns the arena's heap footprint: block size times blocks checked
// out, with oversized cells counted in whole blocks. Block-granularity
// accounting for growth heuristics, not a byte-exact figure; it only shrinks
// via Refresh.
func (a *Arena) Size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bytes
}

// Store exposes the underlying block store for diagnostics.
func (a *Arena) Store() *store.Store {
	return a.store
}

// Refresh collapses the arena's outstanding blocks to exactly one fresh
// block, recycling the rest. Used between logical phases, after an external
// collection has determined everything else is garbage; live allocation
// heads notice the generation change and drop their cursors.
func (a *Arena) Refresh() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.gen.Add(1)
	for _, b := range a.held {
		if err := a.store.Recycle(b); err != nil {
			return err
		}
	}
	a.held = a.held[:0]
	a.bytes = 0
	a.spare = store.Block{}

	b, err := a.store.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoBlock, err)
	}
	a.held = append(a.held, b)
	a.bytes += b.Size()
	a.spare = b
	return nil
}

// Close recycles every outstanding block and releases the store's regions.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.gen.Add(1)
	for _, b := range a.held {
		if err := a.store.Recycle(b); err != nil {
			return err
		}
	}
	a.held = nil
	a.spare = store.Block{}
	a.bytes = 0
	return a.store.Close()
}

// generation returns the current refresh generation.
func (a *Arena) generation() uint64 {
	return a.gen.Load()
}

// getBlock checks one block out of the store for an allocation head. The
// spare left behind by Refresh is handed out first; it is already counted.
func (a *Arena) getBlock() (store.Block, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.spare.Valid() {
		b := a.spare
		a.spare = store.Block{}
		return b, nil
	}

	b, err := a.store.Acquire()
	if err != nil {
		return store.Block{}, fmt.Errorf("%w: %w", ErrNoBlock, err)
	}
	a.held = append(a.held, b)
	a.bytes += b.Size()
	return b, nil
}

// getSpan checks out a dedicated run of whole blocks for one large cell.
func (a *Arena) getSpan(size int) (store.Block, error) {
	b, err := a.store.AcquireSpan(size)
	if err != nil {
		return store.Block{}, fmt.Errorf("%w: %w", ErrNoBlock, err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.held = append(a.held, b)
	a.bytes += b.Size()
	return b, nil
}
