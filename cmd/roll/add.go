package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addComment string

var addCmd = &cobra.Command{
	Use:   "add <name> <expression>...",
	Short: "Store a set of expressions under an alias",
	Long: `Store one or more expressions under an easily-remembered name.

Every expression is compiled before storing; if any fails to parse, the
alias is not saved.`,
	Args:         cobra.MinimumNArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		name := args[0]
		if err := store.Set(name, addComment, args[1:]); err != nil {
			return err
		}
		if err := store.Save(); err != nil {
			return err
		}

		fmt.Printf("stored %s (%d expressions)\n", name, len(args)-1)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addComment, "comment", "c", "", "comment describing the stored expressions")
}
