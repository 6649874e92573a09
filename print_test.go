package tet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprint_Atoms(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	assert.Equal(t, "nil", Sprint(nil))
	assert.Equal(t, "42", Sprint(s.NewNumber(42)))
	assert.Equal(t, "-7", Sprint(s.NewNumber(-7)))
	assert.Equal(t, "x", Sprint(s.NewSymbol("x")))
	assert.Equal(t, `"hi"`, Sprint(s.NewString("hi")))
}

func TestSprint_SExprAndQExpr(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	sexpr := s.NewSExpr(s.NewNumber(1), s.NewSExpr(s.NewNumber(2), nil))
	assert.Equal(t, "(1 2)", Sprint(sexpr))

	qexpr := s.NewQExpr(s.NewNumber(1), s.NewQExpr(s.NewNumber(2), nil))
	assert.Equal(t, "{1 2}", Sprint(qexpr))

	empty := s.NewSExpr(nil, nil)
	assert.Equal(t, "()", Sprint(empty))
}

func TestSprint_ClosureAndPrimitive(t *testing.T) {
	s := NewInterpreter()
	defer s.Close()

	prim := s.NewPrimitive("+", biAdd)
	assert.Equal(t, "<builtin +>", Sprint(prim))

	params := s.NewSExpr(s.NewSymbol("x"), nil)
	body := s.NewSExpr(s.NewSymbol("x"), nil)
	assert.Equal(t, "<lambda (x) (x)>", Sprint(s.NewClosure(params, body)))
}
