// Export command writes a saved run to a JSONL file.
// Implements: prd004-labbook-cli R6 (export).
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	exportDB  string
	exportRun string
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a saved run as JSONL",
	Long: `Export writes every sweep channel of a saved run to a JSONL file, one
record per line, preserving sweep and field order. The file is written
atomically.

Example:
  labbook export --run 0192d3e0-... --out sweeps.jsonl`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDB, "db", "", "sweep store directory")
	exportCmd.Flags().StringVar(&exportRun, "run", "", "run id (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (required)")
	_ = exportCmd.MarkFlagRequired("run")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore(exportDB)
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.ExportRun(exportRun, exportOut); err != nil {
		return fmt.Errorf("export run: %w", err)
	}
	fmt.Printf("Exported run %s to %s\n", exportRun, exportOut)
	return nil
}
