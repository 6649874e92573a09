package main

import (
	"fmt"
	"os"

	"github.com/raeon/tet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate one top-level form from a file",
		Long: `The run command reads the first top-level form out of the given
file, evaluates it against a freshly bootstrapped interpreter, and prints
the result. It exits non-zero if evaluation produced an error value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	s := tet.NewInterpreter()
	defer s.Close()

	result := s.EvalString(string(src))
	fmt.Println(tet.Sprint(result))

	if result.Kind() == tet.KindError {
		os.Exit(1)
	}
	return nil
}
