package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/raeon/tet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReplCmd())
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read-eval-print loop over stdin",
		Long: `The repl command reads one top-level form per line from stdin,
evaluating each against the same interpreter state (and its root
environment) as the lines before it, running a GC cycle between lines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl(cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
	}
}

func runRepl(in io.Reader, out io.Writer) {
	s := tet.NewInterpreter()
	defer s.Close()

	w := bufio.NewWriter(out)
	defer w.Flush()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result := s.EvalString(line)
		fmt.Fprintln(w, tet.Sprint(result))
		w.Flush()

		s.GC()
	}
}
