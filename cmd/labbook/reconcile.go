// Reconcile command compiles notebook tables into sweep metadata.
// Implements: prd004-labbook-cli R3 (reconcile);
//
//	docs/ARCHITECTURE § CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/labbook/internal/jsontables"
	"github.com/mesh-intelligence/labbook/pkg/notebook"
)

var (
	reconcileInput string
	reconcileDB    string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compile notebook tables into per-sweep metadata",
	Long: `Reconcile loads a decoded lab-notebook tables document, classifies the
rows, merges the fragmented per-sweep records, and prints the finalized
metadata. With --db the run is also persisted to the sweep store.

Example:
  labbook reconcile --input tables.json
  labbook reconcile --input tables.json --json
  labbook reconcile --input tables.json --db .labbook-db`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileInput, "input", "", "tables document (required)")
	reconcileCmd.Flags().StringVar(&reconcileDB, "db", "", "persist the run to this sweep store directory")
	_ = reconcileCmd.MarkFlagRequired("input")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	tables, err := jsontables.Load(reconcileInput)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}

	sweeps, err := notebook.Reconcile(tables)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	if reconcileDB != "" {
		store, err := openStore(reconcileDB)
		if err != nil {
			return err
		}
		defer store.Detach()

		runID, err := store.SaveRun(tables.Device, reconcileInput, sweeps)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved run %s\n", runID)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sweeps)
	}

	fmt.Printf("Device: %s\n", tables.Device)
	for _, id := range sweeps.IDs() {
		channels, _ := sweeps.Get(id)
		fmt.Printf("Sweep %d: %d channels\n", id, len(channels))
	}
	return nil
}
