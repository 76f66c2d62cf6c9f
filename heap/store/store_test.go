package store

import (
	"sync"
	"testing"

	"github.com/joshuapare/gcheap/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

// TestStore_AcquireBlock: blocks come out block-sized and block-aligned.
func TestStore_AcquireBlock(t *testing.T) {
	s := newTestStore(t)

	b, err := s.Acquire()
	require.NoError(t, err)
	defer s.Recycle(b)

	assert.True(t, b.Valid())
	assert.Equal(t, layout.BlockSize, b.Size())
	assert.Zero(t, uintptr(b.At(0))%uintptr(layout.BlockAlignment))
	assert.Equal(t, 1, s.Outstanding())
}

// TestStore_RegionGrowth: exhausting a region maps another one.
func TestStore_RegionGrowth(t *testing.T) {
	s := newTestStore(t)

	var blocks []Block
	for i := 0; i < layout.BlocksPerRegion+1; i++ {
		b, err := s.Acquire()
		require.NoError(t, err)
		blocks = append(blocks, b)
	}

	assert.Equal(t, layout.BlocksPerRegion+1, s.Outstanding())
	assert.Equal(t, layout.BlocksPerRegion-1, s.FreeCount(), "second region minus one")

	for _, b := range blocks {
		require.NoError(t, s.Recycle(b))
	}
	assert.Zero(t, s.Outstanding())
}

// TestStore_RecycleReuses: a recycled block is handed out again rather than
// growing the pool.
func TestStore_RecycleReuses(t *testing.T) {
	s := newTestStore(t)

	b1, err := s.Acquire()
	require.NoError(t, err)
	base := b1.At(0)
	require.NoError(t, s.Recycle(b1))

	b2, err := s.Acquire()
	require.NoError(t, err)
	assert.Equal(t, base, b2.At(0), "free pool is last in, first out")
	require.NoError(t, s.Recycle(b2))
}

// TestStore_DistinctBlocks: no two outstanding blocks alias.
func TestStore_DistinctBlocks(t *testing.T) {
	s := newTestStore(t)

	seen := make(map[uintptr]bool)
	var blocks []Block
	for i := 0; i < layout.BlocksPerRegion*2; i++ {
		b, err := s.Acquire()
		require.NoError(t, err)
		addr := uintptr(b.At(0))
		assert.False(t, seen[addr], "block %#x handed out twice", addr)
		seen[addr] = true
		blocks = append(blocks, b)
	}
	for _, b := range blocks {
		require.NoError(t, s.Recycle(b))
	}
}

// TestStore_SpanRoundsUpToWholeBlocks: span sizing is block-granular.
func TestStore_SpanRoundsUpToWholeBlocks(t *testing.T) {
	s := newTestStore(t)

	b, err := s.AcquireSpan(layout.BlockSize + 1)
	require.NoError(t, err)
	assert.Equal(t, 2*layout.BlockSize, b.Size())
	require.NoError(t, s.Recycle(b))
}

// TestStore_SpanExactBlock: a span may be exactly one block; recycling must
// still release its dedicated region rather than pooling it.
func TestStore_SpanExactBlock(t *testing.T) {
	s := newTestStore(t)

	b, err := s.AcquireSpan(layout.BlockSize)
	require.NoError(t, err)
	assert.Equal(t, layout.BlockSize, b.Size())

	require.NoError(t, s.Recycle(b))
	assert.Zero(t, s.FreeCount(), "span memory never enters the free pool")
}

// TestStore_SpanBadSize rejects non-positive spans.
func TestStore_SpanBadSize(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AcquireSpan(0)
	assert.ErrorIs(t, err, ErrBadLayout)
}

// TestStore_RecycleForeign rejects blocks the store never issued.
func TestStore_RecycleForeign(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.Recycle(Block{}), ErrBadBlock)

	other := New()
	defer other.Close()
	b, err := other.Acquire()
	require.NoError(t, err)

	assert.ErrorIs(t, s.Recycle(b), ErrBadBlock)
	require.NoError(t, other.Recycle(b))
}

// TestStore_CloseWithOutstanding refuses to release regions under live
// blocks.
func TestStore_CloseWithOutstanding(t *testing.T) {
	s := New()

	b, err := s.Acquire()
	require.NoError(t, err)

	err = s.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutstanding)

	require.NoError(t, s.Recycle(b))
	require.NoError(t, s.Close())
}

// TestStore_ConcurrentAcquire: concurrent callers never receive the same
// block.
func TestStore_ConcurrentAcquire(t *testing.T) {
	s := newTestStore(t)

	const workers = 8
	const perWorker = 16

	var mu sync.Mutex
	seen := make(map[uintptr]bool)
	all := make([]Block, 0, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				b, err := s.Acquire()
				assert.NoError(t, err)

				mu.Lock()
				addr := uintptr(b.At(0))
				assert.False(t, seen[addr], "block %#x handed out twice", addr)
				seen[addr] = true
				all = append(all, b)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, s.Outstanding())
	for _, b := range all {
		require.NoError(t, s.Recycle(b))
	}
}
