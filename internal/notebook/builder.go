package notebook

import "math"

// sweepBuilder accumulates the numeric record for one sweep. It owns its
// grid (fields × columns); input rows are copied in, never aliased.
// Implements: prd001-notebook-core R3 (sweep accumulator).
type sweepBuilder struct {
	grid [][]float64
}

// newSweepBuilder seeds a builder with a deep copy of the first row seen for
// a sweep id.
func newSweepBuilder(rec [][]float64) *sweepBuilder {
	return &sweepBuilder{grid: copyGrid(rec)}
}

// merge folds a later row for the same sweep id into the grid. A cell is
// overwritten only when the incoming value is non-missing, so a set cell
// never regresses to NaN.
func (b *sweepBuilder) merge(rec [][]float64) {
	for f := range b.grid {
		if f >= len(rec) {
			break
		}
		for c := range b.grid[f] {
			if c >= len(rec[f]) {
				break
			}
			b.grid[f][c] = mergeCell(b.grid[f][c], rec[f][c])
		}
	}
}

// mergeCell is the single merge policy shared by the sweep-row and
// test-pulse paths: the incoming value wins only if it is non-missing.
func mergeCell(old, incoming float64) float64 {
	if math.IsNaN(incoming) {
		return old
	}
	return incoming
}

// mergePair combines the two physical rows of a test-pulse record. The
// second row only fills cells the first row left missing; seeding with the
// second row and merging the first on top gives the first row's values
// precedence through the same cell policy.
func mergePair(first, second [][]float64) [][]float64 {
	b := newSweepBuilder(second)
	b.merge(first)
	return b.grid
}

// copyGrid deep-copies a fields × columns grid.
func copyGrid(rec [][]float64) [][]float64 {
	out := make([][]float64, len(rec))
	for f := range rec {
		out[f] = make([]float64, len(rec[f]))
		copy(out[f], rec[f])
	}
	return out
}
