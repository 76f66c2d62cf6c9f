package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Valid accepts well-formed size/alignment pairs.
func TestNew_Valid(t *testing.T) {
	l, err := New(32, 8)
	require.NoError(t, err)
	assert.Equal(t, 32, l.Size)
	assert.Equal(t, 8, l.Align)

	_, err = New(0, 1)
	assert.NoError(t, err, "zero-size layouts are legal")
}

// TestNew_Invalid rejects negative sizes and bad alignments.
func TestNew_Invalid(t *testing.T) {
	_, err := New(-1, 8)
	assert.Error(t, err)

	_, err = New(8, 0)
	assert.Error(t, err)

	_, err = New(8, 3)
	assert.Error(t, err)

	_, err = New(8, BlockAlignment*2)
	assert.Error(t, err, "alignment beyond a block cannot be honored")
}

// TestFor derives layouts from Go types.
func TestFor(t *testing.T) {
	l := For[uint64]()
	assert.Equal(t, 8, l.Size)
	assert.Equal(t, 8, l.Align)

	l = For[byte]()
	assert.Equal(t, 1, l.Size)
	assert.Equal(t, 1, l.Align)

	type pair struct {
		a uint32
		b byte
	}
	l = For[pair]()
	assert.Equal(t, 8, l.Size, "struct size includes trailing padding")
	assert.Equal(t, 4, l.Align)
}
