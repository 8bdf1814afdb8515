// Package notebook provides the public API for compiling lab-notebook
// tables into per-sweep, per-channel metadata and for decoding stimulus
// wave notes, keeping the reconciliation internals private.
//
// Implements: prd001-notebook-core (public surface);
//
//	docs/ARCHITECTURE § Public API.
package notebook

import (
	"time"

	"github.com/mesh-intelligence/labbook/internal/notebook"
	"github.com/mesh-intelligence/labbook/pkg/types"
)

// Reconcile compiles the decoded notebook tables into one finalized
// metadata record per sweep, keyed by sweep id in first-appearance order.
//
// Example:
//
//	sweeps, err := notebook.Reconcile(tables)
//	for _, id := range sweeps.IDs() {
//	    channels, _ := sweeps.Get(id)
//	    ...
//	}
func Reconcile(tables *types.Tables) (*types.SweepSet, error) {
	sweeps, _, err := notebook.Reconcile(tables)
	return sweeps, err
}

// ReconcileTestPulses runs the same scan and returns the merged test-pulse
// records instead, one fields × columns grid per two-row calibration probe.
func ReconcileTestPulses(tables *types.Tables) ([][][]float64, error) {
	_, pulses, err := notebook.Reconcile(tables)
	return pulses, err
}

// DecodeWaveNote decodes the stimulus wave note from one channel's
// finalized metadata, returning the note format version and the epochs
// active for the sweep's repeat count.
func DecodeWaveNote(meta *types.ChannelMeta) (float64, []*types.Epoch, error) {
	return notebook.DecodeWaveNote(meta)
}

// IgorTime converts seconds since 1904-01-01 into a UTC calendar time.
func IgorTime(seconds float64) time.Time {
	return notebook.IgorTime(seconds)
}
