package main

import (
	"errors"
	"math/rand/v2"
	"os"

	"github.com/npillmayer/indexed"
	"github.com/npillmayer/indexed/treeprint"
	"github.com/spf13/cobra"
)

func statOf(set *indexed.WeightedSet[string], word string) wordStat {
	s := wordStat{Word: word, Index: set.IndexOf(word), Prefix: set.PrefixWeightSum(word)}
	s.Count, _ = set.Weight(word)
	if total := set.TotalWeight(); total > 0 {
		s.Share = float64(s.Count) / float64(total)
	}
	return s
}

func newWordsCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "words [file...]",
		Short: "List the most frequent words of the given files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(); err != nil {
				return err
			}
			set, err := loadWords(cmd.Context(), args)
			if err != nil {
				return err
			}
			var stats []wordStat
			for _, e := range set.Top(top) {
				stats = append(stats, statOf(set, e.Key))
			}
			return printStats(cmd, stats)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 10, "Number of words to list")
	return cmd
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank [file] [word...]",
		Short: "Show position and cumulative counts of words",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("a file and at least one word are required")
			}
			if err := validateOutput(); err != nil {
				return err
			}
			set, err := loadWords(cmd.Context(), args[:1])
			if err != nil {
				return err
			}
			stats := make([]wordStat, 0, len(args)-1)
			for _, word := range args[1:] {
				stats = append(stats, statOf(set, word))
			}
			return printStats(cmd, stats)
		},
	}
}

func newPickCmd() *cobra.Command {
	var count int
	var seed uint64
	cmd := &cobra.Command{
		Use:   "pick [file...]",
		Short: "Pick random words, weighted by their frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(); err != nil {
				return err
			}
			set, err := loadWords(cmd.Context(), args)
			if err != nil {
				return err
			}
			r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			stats := make([]wordStat, 0, count)
			for range count {
				word, ok := set.Pick(r)
				if !ok {
					break
				}
				stats = append(stats, statOf(set, word))
			}
			return printStats(cmd, stats)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of words to pick")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for the random generator")
	return cmd
}

func newTreeCmd() *cobra.Command {
	var dot bool
	cmd := &cobra.Command{
		Use:   "tree [file...]",
		Short: "Print the internal tree of the word set",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadWords(cmd.Context(), args)
			if err != nil {
				return err
			}
			if dot {
				return set.Tree().ToDot(cmd.OutOrStdout())
			}
			config := &treeprint.Config{LineWidth: 80, Monochrome: true}
			if cmd.OutOrStdout() == os.Stdout {
				config = treeprint.ConfigFromTerminal()
			}
			return treeprint.Fprint(cmd.OutOrStdout(), set.Tree(), config)
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "Output Graphviz DOT instead of text")
	return cmd
}
