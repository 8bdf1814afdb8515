// Package main provides the labbook CLI.
// Implements: prd004-labbook-cli R1 (root command, global flags);
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// configDir is set by the --config-dir flag.
	configDir string

	// jsonOutput switches commands to JSON output.
	jsonOutput bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labbook",
	Short: "Labbook extracts sweep metadata from acquisition lab notebooks",
	Long: `Labbook compiles the numeric and textual lab-notebook tables of an
electrophysiology acquisition device into per-sweep, per-channel metadata,
decodes stimulus wave notes, and can persist reconciled runs to a local
sweep store for querying and export.`,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default: .labbook)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(reconcileCmd)
	rootCmd.AddCommand(wavenoteCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(sweepsCmd)
	rootCmd.AddCommand(exportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("labbook v0.1.0")
	},
}
