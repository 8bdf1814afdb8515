// Runs command lists persisted reconciliation runs.
// Implements: prd004-labbook-cli R5 (store queries).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var runsDB string

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List runs saved in the sweep store",
	Long: `Runs lists every reconciliation run persisted to the sweep store,
newest first.

Example:
  labbook runs
  labbook runs --db .labbook-db --json`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsDB, "db", "", "sweep store directory")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := openStore(runsDB)
	if err != nil {
		return err
	}
	defer store.Detach()

	runs, err := store.Runs()
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	for _, r := range runs {
		fmt.Printf("%s  %s  %d sweeps  %s\n",
			r.RunID, r.Device, r.Sweeps, r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}
