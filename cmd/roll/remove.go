package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:          "rm <name>",
	Short:        "Remove a stored alias",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if !store.Remove(args[0]) {
			return fmt.Errorf("no alias named %q", args[0])
		}
		return store.Save()
	},
}
