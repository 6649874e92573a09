package tet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKind_String(t *testing.T) {
	tests := []struct {
		name     string
		kind     ValueKind
		expected string
	}{
		{"error", KindError, "ERROR"},
		{"number", KindNumber, "NUMBER"},
		{"symbol", KindSymbol, "SYMBOL"},
		{"string", KindString, "STRING"},
		{"sexpr", KindSExpr, "SEXPR"},
		{"qexpr", KindQExpr, "QEXPR"},
		{"primitive", KindPrimitive, "BUILTIN"},
		{"closure", KindClosure, "LAMBDA"},
		{"envref", KindEnvRef, "ENV"},
		{"frameref", KindFrameRef, "FRAME"},
		{"unknown", ValueKind(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestPair_KindFollowsQuoted(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	sexpr := s.NewSExpr(s.NewNumber(1), nil)
	qexpr := s.NewQExpr(s.NewNumber(1), nil)

	assert.Equal(t, KindSExpr, sexpr.Kind())
	assert.Equal(t, KindQExpr, qexpr.Kind())
}

func TestConstructors_RegisterIntoHeap(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	before := s.GCLiveCount()
	s.NewNumber(42)
	s.NewSymbol("x")
	s.NewString("hi")
	s.NewPair(false, nil, nil)

	assert.Equal(t, before+4, s.GCLiveCount())
}

func TestListLen(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	assert.Equal(t, 0, listLen(nil))

	one := s.NewSExpr(s.NewNumber(1), nil)
	assert.Equal(t, 1, listLen(one))

	three := s.NewSExpr(s.NewNumber(1), s.NewSExpr(s.NewNumber(2), s.NewSExpr(s.NewNumber(3), nil)))
	assert.Equal(t, 3, listLen(three))
}

func TestEnvRefFrameRef_MarkReachesTarget(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	e := s.NewEnvironment(s.Root)
	ref := s.NewEnvRef(e)
	require.NotNil(t, ref)

	n := ref.gcMark(s, 7)
	assert.GreaterOrEqual(t, n, 2) // ref itself, plus at least one env in the chain
	assert.Equal(t, uint8(7), e.color())

	f := s.NewFrame(s.Root, nil)
	fref := s.NewFrameRef(f)
	require.NotNil(t, fref)

	n = fref.gcMark(s, 9)
	assert.GreaterOrEqual(t, n, 2) // ref itself, plus the frame
	assert.Equal(t, uint8(9), f.color())
}
