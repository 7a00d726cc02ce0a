package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the current version of roll (overridden by ldflags at build time)
	Version = "0.14.0"
	// Build can be set via ldflags at compile time
	Build = "dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("roll version %s (%s)\n", Version, Build)
	},
}
