package types

import "time"

// Run records one reconciliation pass persisted to the sweep store: which
// device's notebook was compiled, where the tables came from, and when.
// Implements: prd002-sqlite-store R2.
type Run struct {
	RunID     string    // UUID v7, generated on save.
	Device    string    // Device group name from the container.
	Source    string    // Path or label of the table input.
	CreatedAt time.Time // Timestamp of the save.
	Sweeps    int       // Number of sweeps in the run.
}
