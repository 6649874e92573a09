package main

import (
	"fmt"
	"os"

	"github.com/raeon/tet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGCCmd())
}

func newGCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gc <file>",
		Short: "Evaluate a file and report heap size before/after a final GC cycle",
		Long: `The gc command behaves like run, but additionally prints the number
of tracked heap cells before and after a final collection, making
invariant 1 (unreachable cells are reclaimed) observable from the
command line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGC(args[0])
		},
	}
}

func runGC(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	s := tet.NewInterpreter()
	defer s.Close()

	result := s.EvalString(string(src))
	fmt.Println(tet.Sprint(result))

	before := s.GCLiveCount()
	collected := s.GC()
	after := s.GCLiveCount()

	fmt.Printf("heap: %d before, %d collected, %d after\n", before, collected, after)

	if result.Kind() == tet.KindError {
		os.Exit(1)
	}
	return nil
}
