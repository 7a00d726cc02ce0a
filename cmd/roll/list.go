package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/archer884/roll/internal/ui"
)

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "List stored aliases",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		for _, name := range store.Names() {
			formula, _ := store.Get(name)
			fmt.Println("# " + name)
			if formula.Comment != "" {
				fmt.Println(ui.RenderComment("# " + formula.Comment))
			}
			for _, stored := range formula.Expressions {
				fmt.Println("  " + stored.Text)
			}
		}
		return nil
	},
}
