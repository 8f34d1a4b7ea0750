package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// wordStat is a printable statistics line for a word.
type wordStat struct {
	Word   string  `json:"word" yaml:"word"`
	Index  int     `json:"index" yaml:"index"`
	Count  int64   `json:"count" yaml:"count"`
	Prefix int64   `json:"prefix" yaml:"prefix"`
	Share  float64 `json:"share" yaml:"share"`
}

// validateOutput validates the --output flag.
func validateOutput() error {
	if output != "" && output != "table" && output != "yaml" && output != "json" {
		return errors.New(`--output must be 'table', 'yaml' or 'json'`)
	}
	return nil
}

func printStats(cmd *cobra.Command, stats []wordStat) error {
	switch output {
	case "", "table":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{
			"WORD",
			"INDEX",
			"COUNT",
			"PREFIX",
			"SHARE",
		})
		for _, s := range stats {
			tw.AppendRow(table.Row{
				s.Word,
				s.Index,
				s.Count,
				s.Prefix,
				fmt.Sprintf("%.2f%%", 100*s.Share),
			})
		}
		cmd.Printf("%s\n", tw.Render())
	case "json":
		jsonOutput, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(stats)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}
