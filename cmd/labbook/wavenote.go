// Wavenote command decodes the stimulus wave note of one sweep channel.
// Implements: prd004-labbook-cli R4 (wavenote).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/labbook/internal/jsontables"
	"github.com/mesh-intelligence/labbook/pkg/notebook"
	"github.com/mesh-intelligence/labbook/pkg/types"
)

var (
	wavenoteInput   string
	wavenoteSweep   int
	wavenoteChannel int
)

var wavenoteCmd = &cobra.Command{
	Use:   "wavenote",
	Short: "Decode the stimulus wave note for a sweep channel",
	Long: `Wavenote reconciles the notebook tables, selects one sweep channel, and
decodes its embedded stimulus wave note into the note format version and the
epochs active for the sweep's repeat count.

Example:
  labbook wavenote --input tables.json --sweep 12 --channel 0
  labbook wavenote --input tables.json --sweep 12 --channel 0 --json`,
	RunE: runWavenote,
}

func init() {
	wavenoteCmd.Flags().StringVar(&wavenoteInput, "input", "", "tables document (required)")
	wavenoteCmd.Flags().IntVar(&wavenoteSweep, "sweep", 0, "sweep id (required)")
	wavenoteCmd.Flags().IntVar(&wavenoteChannel, "channel", 0, "channel index")
	_ = wavenoteCmd.MarkFlagRequired("input")
	_ = wavenoteCmd.MarkFlagRequired("sweep")
}

func runWavenote(cmd *cobra.Command, args []string) error {
	tables, err := jsontables.Load(wavenoteInput)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}

	sweeps, err := notebook.Reconcile(tables)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	channels, ok := sweeps.Get(wavenoteSweep)
	if !ok {
		return fmt.Errorf("sweep %d not present in notebook", wavenoteSweep)
	}
	if wavenoteChannel < 0 || wavenoteChannel >= len(channels) {
		return fmt.Errorf("channel %d out of range (sweep %d has %d channels)",
			wavenoteChannel, wavenoteSweep, len(channels))
	}

	version, epochs, err := notebook.DecodeWaveNote(channels[wavenoteChannel])
	if err != nil {
		return fmt.Errorf("decode wave note: %w", err)
	}

	if jsonOutput {
		out := struct {
			Version float64        `json:"version"`
			Epochs  []*types.Epoch `json:"epochs"`
		}{version, epochs}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Version: %g\n", version)
	for i, epoch := range epochs {
		fmt.Printf("Epoch %d:\n", i)
		for _, name := range epoch.Names() {
			v, _ := epoch.Get(name)
			fmt.Printf("  %s = %s\n", name, v)
		}
	}
	return nil
}
