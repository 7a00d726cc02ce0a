// Command roll evaluates dice-notation expressions.
//
//	roll 2d6r+2 1d20+4*3
//	roll add attack -c "longsword +1" 1d20+5 1d8+3
//	roll attack
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/archer884/roll/internal/alias"
	"github.com/archer884/roll/internal/config"
	"github.com/archer884/roll/internal/dice"
	"github.com/archer884/roll/internal/history"
	"github.com/archer884/roll/internal/ui"
)

var (
	profile     string
	seed        uint64
	verboseFlag bool
	showAverage bool
)

var rootCmd = &cobra.Command{
	Use:   "roll [expression...]",
	Short: "roll - dice-notation interpreter",
	Long: `Evaluate dice-notation expressions like 2d6r+2 or 1d20+4*3.

Syntax: [count]d<sides>[r][+N|-N][*N]
  r     reroll 1s (once per die)
  +N    add N to each total
  *N    roll the whole expression N times ([N] also accepted)

Arguments matching a stored alias roll every expression in that alias.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if showAverage {
			return printAverages(args)
		}
		return executeExpressions(args)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "alias store profile (~/.roll.<profile>)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed the generator for reproducible rolls")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print expression text next to each result")
	rootCmd.Flags().BoolVarP(&showAverage, "show-average", "a", false, "print expected values instead of rolling")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(avgCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// executeExpressions rolls each argument in order, resolving aliases from
// the store, and appends the raw draws to the history log afterward.
func executeExpressions(args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	if err := applyColorSettings(); err != nil {
		return err
	}

	recorder := history.NewRecorder(newSource())

	for _, arg := range args {
		if formula, ok := store.Get(arg); ok {
			if err := rollFormula(arg, formula, recorder); err != nil {
				return err
			}
			continue
		}

		expr, err := dice.Parse(arg)
		if err != nil {
			return err
		}
		results, err := dice.Evaluate(expr, recorder)
		if err != nil {
			return err
		}

		text := ""
		if verboseFlag {
			text = arg
		}
		for _, line := range dice.Format(results, text) {
			fmt.Println(ui.RenderLine(line))
		}
	}

	return appendHistory(recorder)
}

func rollFormula(name string, formula *alias.Formula, src dice.Source) error {
	fmt.Println(ui.RenderComment("# " + name))
	if formula.Comment != "" {
		fmt.Println(ui.RenderComment("# " + formula.Comment))
	}

	for _, stored := range formula.Expressions {
		results, err := dice.Evaluate(stored.Expression, src)
		if err != nil {
			return err
		}
		for _, line := range dice.Format(results, stored.Text) {
			fmt.Println(ui.RenderLine(line))
		}
	}
	return nil
}

func newSource() dice.Source {
	if seed != 0 {
		return dice.NewSeededSource(seed, seed)
	}
	return dice.NewSource()
}

func openStore() (*alias.Store, error) {
	path, err := alias.DefaultPath(profile)
	if err != nil {
		return nil, err
	}
	return alias.Load(path)
}

func applyColorSettings() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return ui.SetFaceColors(cfg.Colors.Low, cfg.Colors.High)
}

func appendHistory(recorder *history.Recorder) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}
	log := history.New(filepath.Join(home, history.LogFileName))
	log.Record(recorder.Draws())
	return log.Write(Version)
}
