package alloc

import (
	"testing"

	"github.com/joshuapare/gcheap/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassForSize_Boundaries walks every classification boundary.
func TestClassForSize_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		size uint64
		want SizeClass
	}{
		{"one byte", 1, SizeClassSmall},
		{"line boundary", layout.LineSize, SizeClassSmall},
		{"just past a line", layout.LineSize + 1, SizeClassMedium},
		{"capacity boundary", layout.BlockCapacity, SizeClassMedium},
		{"just past capacity", layout.BlockCapacity + 1, SizeClassLarge},
		{"maximum representable", layout.MaxAllocSize, SizeClassLarge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ClassForSize(c.size)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

// TestClassForSize_TooLarge fails classification past the representable
// maximum, as an error rather than a panic.
func TestClassForSize_TooLarge(t *testing.T) {
	_, err := ClassForSize(layout.MaxAllocSize + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)
}

// TestSizeClass_String covers the diagnostic names.
func TestSizeClass_String(t *testing.T) {
	assert.Equal(t, "small", SizeClassSmall.String())
	assert.Equal(t, "medium", SizeClassMedium.String())
	assert.Equal(t, "large", SizeClassLarge.String())
	assert.Equal(t, "SizeClass(9)", SizeClass(9).String())
}
