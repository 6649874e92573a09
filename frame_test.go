package tet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFrame_PushPopOrder checks basic LIFO behavior of the operand stack.
func TestFrame_PushPopOrder(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	f := s.NewFrame(s.Root, nil)
	f.PushNumber(1)
	f.PushNumber(2)
	f.PushNumber(3)

	require.Equal(t, int32(3), f.PopNumber())
	require.Equal(t, int32(2), f.PopNumber())
	require.Equal(t, int32(1), f.PopNumber())
}

// TestFrame_PushGrowsByExactDoubling checks that the operand stack's
// backing array grows the same way the heap registry's does (§4.A, §4.D):
// capacity exactly doubles every time it fills, all the way past the
// point where Go's own append growth would have switched to a ~1.25x
// factor.
func TestFrame_PushGrowsByExactDoubling(t *testing.T) {
	s := NewInterpreter(WithStackInitialCap(8))
	defer s.Close()

	f := s.NewFrame(s.Root, nil)
	require.Equal(t, 8, cap(f.stack))

	wantCap := 8
	n := 0
	for wantCap <= 2048 {
		for n < wantCap {
			f.PushNumber(int32(n))
			n++
		}
		assert.Equal(t, wantCap, cap(f.stack), "capacity after filling to %d", wantCap)
		f.PushNumber(int32(n))
		n++
		wantCap *= 2
		assert.Equal(t, wantCap, cap(f.stack), "capacity after one push past %d", wantCap/2)
	}

	assert.Equal(t, n, f.Size())
}
