package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "heightcli",
	Short: "inspect and rebuild terrain height maps",
	Long: `heightcli is the command-line companion to the heightline core:
	- validate and rebuild shapes from a saved cell map,
	- create a terrain type registry fixture file (YAML),
	- run a line-of-sight query against a saved map from the shell.

This tool sits outside the core's library surface and
could be deleted without affecting it.`,
}

// Execute adds all child commands to RootCmd and executes it. Called once
// by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
