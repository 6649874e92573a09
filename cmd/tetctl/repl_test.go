package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRepl_EvaluatesOneFormPerLine(t *testing.T) {
	in := strings.NewReader("(+ 1 2 3)\n(* 2 5)\n")
	var out bytes.Buffer

	runRepl(in, &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{"6", "10"}, lines)
}

func TestRunRepl_SkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n(+ 1 1)\n\n")
	var out bytes.Buffer

	runRepl(in, &out)

	assert.Equal(t, "2", strings.TrimSpace(out.String()))
}
