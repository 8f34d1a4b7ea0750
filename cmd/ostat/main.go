// Package main is the entry point of ostat, a tool to explore the word
// frequencies of text files with indexed weighted sets.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "ostat",
	Short:        "Word-frequency statistics backed by an order-statistics tree",
	SilenceUsage: true,
}

var (
	output    string
	minLength int
	caseSens  bool
	asHTML    bool
	fragSize  int64
)

// Run executes CLI.
func Run() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(Run())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "One of 'table', 'yaml' or 'json'")
	rootCmd.PersistentFlags().IntVar(&minLength, "min-length", 1, "Minimum length of words to count")
	rootCmd.PersistentFlags().BoolVar(&caseSens, "case-sensitive", false, "Do not fold words to lower case")
	rootCmd.PersistentFlags().BoolVar(&asHTML, "html", false, "Treat input files as HTML")
	rootCmd.PersistentFlags().Int64Var(&fragSize, "frag", 0, "Fragment size for loading files (0 = auto)")
	rootCmd.AddCommand(newWordsCmd(), newRankCmd(), newPickCmd(), newTreeCmd())
}
