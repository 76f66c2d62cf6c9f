package store

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/joshuapare/gcheap/internal/layout"
)

// Store pools regions and hands out their blocks. See the package
// documentation for the ownership rules.
type Store struct {
	mu          sync.Mutex
	free        []Block
	regions     []*Region
	spans       map[unsafe.Pointer]*Region
	outstanding int
}

// New creates an empty store. No memory is reserved until the first Acquire.
func New() *Store {
	return &Store{spans: make(map[unsafe.Pointer]*Region)}
}

// Acquire hands out one free block, mapping a fresh region when the pool is
// exhausted. The returned block is exclusively owned by the caller until it
// is recycled.
func (s *Store) Acquire() (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.free) == 0 {
		if err := s.grow(); err != nil {
			return Block{}, err
		}
	}

	b := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	s.outstanding++
	return b, nil
}

// AcquireSpan hands out an oversized block covering size bytes rounded up to
// whole blocks, backed by a dedicated region. A span is never placed on the
// free list: it belongs to exactly one object and its region is released
// when the span is recycled.
func (s *Store) AcquireSpan(size int) (Block, error) {
	if size <= 0 {
		return Block{}, fmt.Errorf("store: span of %d bytes: %w", size, ErrBadLayout)
	}
	spanSize := layout.AlignBlock(size)

	r, err := NewRegion(layout.Layout{Size: spanSize, Align: layout.BlockAlignment})
	if err != nil {
		return Block{}, err
	}

	b := Block{ptr: unsafe.Pointer(r.At(0)), size: spanSize}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.spans[b.ptr] = r
	s.outstanding++
	return b, nil
}

// Recycle moves a block back to the store. Ordinary blocks return to the
// free pool; spans release their backing region outright.
func (s *Store) Recycle(b Block) error {
	if !b.Valid() {
		return ErrBadBlock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.spans[b.ptr]; ok {
		delete(s.spans, b.ptr)
		s.outstanding--
		return r.Release()
	}

	if b.size != layout.BlockSize || !s.owns(b) {
		return ErrBadBlock
	}
	s.free = append(s.free, b)
	s.outstanding--
	return nil
}

// Outstanding returns the number of blocks currently checked out.
func (s *Store) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outstanding
}

// FreeCount returns the number of pooled blocks ready for reuse.
func (s *Store) FreeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.free)
}

// Close releases every region. It fails with ErrOutstanding if any block is
// still checked out, since releasing a region under a live block would leave
// dangling object memory.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outstanding != 0 {
		return fmt.Errorf("%w: %d outstanding", ErrOutstanding, s.outstanding)
	}

	var firstErr error
	for _, r := range s.regions {
		if err := r.Release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.regions = nil
	s.free = nil
	return firstErr
}

// grow maps one region and slices it into free blocks. Caller holds s.mu.
func (s *Store) grow() error {
	r, err := NewRegion(layout.Layout{Size: layout.RegionSize, Align: layout.BlockAlignment})
	if err != nil {
		return err
	}
	s.regions = append(s.regions, r)
	for i := 0; i < r.Blocks(); i++ {
		s.free = append(s.free, Block{
			ptr:  unsafe.Pointer(r.At(i * layout.BlockSize)),
			size: layout.BlockSize,
		})
	}
	return nil
}

// owns reports whether an ordinary block lies within one of the store's
// regions. Caller holds s.mu.
func (s *Store) owns(b Block) bool {
	addr := uintptr(b.ptr)
	for _, r := range s.regions {
		base := uintptr(unsafe.Pointer(r.At(0)))
		if addr >= base && addr < base+uintptr(r.Size()) {
			return true
		}
	}
	return false
}
