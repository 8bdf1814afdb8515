// Sweeps command queries sweep metadata from the store.
// Implements: prd004-labbook-cli R5 (store queries).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	sweepsDB    string
	sweepsRun   string
	sweepsSweep int
)

var sweepsCmd = &cobra.Command{
	Use:   "sweeps",
	Short: "Query sweep metadata from a saved run",
	Long: `Sweeps lists the sweep ids of a saved run, or with --sweep prints the
full per-channel metadata of one sweep.

Example:
  labbook sweeps --run 0192d3e0-...
  labbook sweeps --run 0192d3e0-... --sweep 12
  labbook sweeps --run 0192d3e0-... --sweep 12 --json`,
	RunE: runSweeps,
}

func init() {
	sweepsCmd.Flags().StringVar(&sweepsDB, "db", "", "sweep store directory")
	sweepsCmd.Flags().StringVar(&sweepsRun, "run", "", "run id (required)")
	sweepsCmd.Flags().IntVar(&sweepsSweep, "sweep", -1, "print one sweep's channel metadata")
	_ = sweepsCmd.MarkFlagRequired("run")
}

func runSweeps(cmd *cobra.Command, args []string) error {
	store, err := openStore(sweepsDB)
	if err != nil {
		return err
	}
	defer store.Detach()

	if sweepsSweep < 0 {
		ids, err := store.SweepIDs(sweepsRun)
		if err != nil {
			return fmt.Errorf("list sweeps: %w", err)
		}
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(ids)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	channels, err := store.Channels(sweepsRun, sweepsSweep)
	if err != nil {
		return fmt.Errorf("get sweep %d: %w", sweepsSweep, err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(channels)
	}

	for ch, meta := range channels {
		fmt.Printf("Channel %d:\n", ch)
		for _, name := range meta.Names() {
			v, _ := meta.Get(name)
			if v.IsAbsent() {
				continue
			}
			fmt.Printf("  %s = %s\n", name, v)
		}
	}
	return nil
}
