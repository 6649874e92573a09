package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "tetctl",
	Short:   "Run and inspect tet programs",
	Long:    `tetctl reads, evaluates, and garbage-collects tet S-expression programs.`,
	Version: "0.1.0",
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}
