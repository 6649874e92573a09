package tet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGC_CollectsUnreachableValue checks §8 invariant 1: a cell with no
// path from the root environment or the active frame is collected.
func TestGC_CollectsUnreachableValue(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	before := s.GCLiveCount()
	s.NewNumber(1234) // not bound anywhere, not on any stack
	assert.Equal(t, before+1, s.GCLiveCount())

	n := s.GC()
	assert.Equal(t, 1, n)
	assert.Equal(t, before, s.GCLiveCount())
}

// TestGC_KeepsValueReachableFromRoot checks §8 invariant 2: a value bound
// in the root environment survives a collection.
func TestGC_KeepsValueReachableFromRoot(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	x := s.NewSymbol("kept")
	v := s.NewNumber(99)
	s.Root.Put(x, v)

	s.GC()

	got := s.Root.Get(x)
	require.Equal(t, KindNumber, got.Kind())
	assert.Same(t, v, got)
}

// TestGC_KeepsValueReachableFromActiveFrameStack checks that a value only
// reachable via the active frame's operand stack (not yet bound to any
// symbol) survives.
func TestGC_KeepsValueReachableFromActiveFrameStack(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	f := s.NewFrame(s.Root, nil)
	v := s.NewNumber(55)
	f.Push(v)
	s.Active = f

	s.GC()

	assert.Equal(t, int32(55), f.Peek().(*Number).N)
}

// TestGC_SkipsSweepWhenEverythingMarked exercises the shortcut in GC():
// when every tracked object is reachable, the live count must be
// unchanged and the collected count must be 0.
func TestGC_SkipsSweepWhenEverythingMarked(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	before := s.GCLiveCount()
	n := s.GC()
	assert.Equal(t, 0, n)
	assert.Equal(t, before, s.GCLiveCount())
}

// TestState_Close_SweepsUnconditionally checks §9: Close reclaims every
// tracked cell regardless of reachability, including bindings still held
// by the root environment.
func TestState_Close_SweepsUnconditionally(t *testing.T) {
	s := NewInterpreter()
	s.Root.Put(s.NewSymbol("x"), s.NewNumber(1))

	before := s.GCLiveCount()
	n := s.Close()
	assert.Equal(t, before, n)
	assert.Equal(t, 0, s.GCLiveCount())
}
