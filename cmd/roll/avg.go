package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archer884/roll/internal/dice"
)

var avgCmd = &cobra.Command{
	Use:          "avg <expression>...",
	Short:        "Print expected values instead of rolling",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printAverages(args)
	},
}

// printAverages prints one line per distinct expression: its text and the
// expected value of a single evaluation. Aliases expand to their stored
// expressions; duplicates print once.
func printAverages(args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	type average struct {
		text  string
		value float64
	}

	seen := make(map[string]bool)
	var averages []average
	width := 0

	record := func(text string, expr dice.Expression) {
		if seen[text] {
			return
		}
		seen[text] = true
		averages = append(averages, average{text: text, value: dice.Average(expr)})
		if len(text) > width {
			width = len(text)
		}
	}

	for _, arg := range args {
		if formula, ok := store.Get(arg); ok {
			for _, stored := range formula.Expressions {
				record(stored.Text, stored.Expression)
			}
			continue
		}

		expr, err := dice.Parse(arg)
		if err != nil {
			return err
		}
		record(arg, expr)
	}

	for _, a := range averages {
		fmt.Printf("%-*s  %.2f\n", width, a.text, a.value)
	}
	return nil
}
