package tet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRegistry_TrackUntrack_LiveCountRoundTrips checks the basic identity
// bookkeeping §4.A promises: tracking N objects then untracking all of
// them returns the registry to empty.
func TestRegistry_TrackUntrack_LiveCountRoundTrips(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	before := s.GCLiveCount()
	var vals []*Number
	for i := 0; i < 20; i++ {
		vals = append(vals, s.NewNumber(int32(i)))
	}
	assert.Equal(t, before+20, s.GCLiveCount())

	for _, v := range vals {
		s.untrack(v)
	}
	assert.Equal(t, before, s.GCLiveCount())
}

// TestRegistry_UntrackIsSwapRemove verifies removing a non-last element
// leaves every other tracked object present (identity-checked), matching
// the swap-remove policy of §4.A: order is not preserved, membership is.
func TestRegistry_UntrackIsSwapRemove(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	a := s.NewNumber(1)
	b := s.NewNumber(2)
	c := s.NewNumber(3)

	s.untrack(b)

	found := map[gcObject]bool{}
	for _, o := range s.objects {
		found[o] = true
	}
	assert.True(t, found[a])
	assert.True(t, found[c])
	assert.False(t, found[b])
}

// TestRegistry_GrowsPastInitialCapacity exercises the double-on-overflow
// policy: tracking more than registryInitialCap objects must not lose or
// duplicate any of them.
func TestRegistry_GrowsPastInitialCapacity(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	before := s.GCLiveCount()
	const n = registryInitialCap*2 + 3
	for i := 0; i < n; i++ {
		s.NewNumber(int32(i))
	}
	assert.Equal(t, before+n, s.GCLiveCount())
}

// TestRegistry_ShrinksWhenSparse checks the halve-on-sparse policy:
// tracking many objects then untracking most of them should shrink the
// backing capacity back down, without ever losing the objects still live.
func TestRegistry_ShrinksWhenSparse(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	before := s.GCLiveCount()
	const n = 64
	var vals []*Number
	for i := 0; i < n; i++ {
		vals = append(vals, s.NewNumber(int32(i)))
	}
	grownCap := cap(s.objects)

	for _, v := range vals[:n-2] {
		s.untrack(v)
	}

	assert.Less(t, cap(s.objects), grownCap)
	assert.Equal(t, before+2, s.GCLiveCount())
}

// TestRegistrationStack_ForgetReturnsToPriorDepth checks the
// register/forget discipline (§5): a successful multi-step construction
// ends at the same pending-depth it started from.
func TestRegistrationStack_ForgetReturnsToPriorDepth(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	before := s.pendingDepth()
	s.NewSymbol("alpha")
	s.NewString("beta")
	s.NewError("gamma")
	assert.Equal(t, before, s.pendingDepth())
}

// TestRegistrationStack_CleanupToDropsUnfinishedEntries checks the other
// half of §5: an unwind mid-construction (modeled directly here, since
// register/forget is an internal discipline with no public constructor
// that leaves entries pending) is cleaned up back to the depth a Catch
// was installed at.
func TestRegistrationStack_CleanupToDropsUnfinishedEntries(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	depth := s.pendingDepth()
	s.register(3)
	s.register(5)
	assert.Equal(t, depth+2, s.pendingDepth())

	s.cleanupTo(depth)
	assert.Equal(t, depth, s.pendingDepth())
}
