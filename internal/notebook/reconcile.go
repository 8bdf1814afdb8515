package notebook

import (
	"math"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

// Reconcile compiles the raw notebook tables into one finalized metadata
// record per sweep, keyed by sweep id in first-appearance order. The second
// result is the list of merged test-pulse records, which are excluded from
// sweep metadata but kept for calibration inspection. Inputs are not
// mutated.
// Implements: prd001-notebook-core R3 (classification and row merge),
// R5 (finalization), R6 (textual overlay).
func Reconcile(tables *types.Tables) (*types.SweepSet, [][][]float64, error) {
	if err := tables.Validate(); err != nil {
		return nil, nil, err
	}

	builders := make(map[int]*sweepBuilder)
	var order []int
	var testPulses [][][]float64

	srcIdx, hasSrc := -1, false
	if tables.NumericFields != nil {
		srcIdx, hasSrc = tables.NumericFields.Index(entrySourceTypeField)
	}

	for i := 0; i < len(tables.Numeric); i++ {
		rec := tables.Numeric[i]

		switch classify(rec, srcIdx, hasSrc) {
		case sourceTestPulse:
			// Test pulses are recorded as two consecutive rows; consume both.
			if i+1 < len(tables.Numeric) {
				testPulses = append(testPulses, mergePair(rec, tables.Numeric[i+1]))
				i++
			} else {
				testPulses = append(testPulses, copyGrid(rec))
			}

		case sourceSweep:
			id := int(rec[0][0])
			if b, ok := builders[id]; ok {
				b.merge(rec)
			} else {
				builders[id] = newSweepBuilder(rec)
				order = append(order, id)
			}

		default:
			// No recoverable sweep id; drop the row.
		}
	}

	set := types.NewSweepSet()
	for _, id := range order {
		set.Put(id, finalize(builders[id], tables.NumericFields))
	}

	overlay(set, tables.TextualFields, tables.Textual)

	return set, testPulses, nil
}

// classify determines the logical source of one numeric row. A present,
// finite EntrySourceType decides directly: zero is a sweep row, anything
// else a test pulse. Rows without a usable discriminator are sweep rows when
// they carry a finite sweep index, otherwise unclassifiable.
//
// Older files lack EntrySourceType entirely; those also interleave
// undiscriminated two-row test-pulse blocks that could be recognized by a
// TP Peak Resistance row followed by a TP Pulse Duration row. That detection
// is not implemented, so such blocks surface as sweep rows here.
func classify(rec [][]float64, srcIdx int, hasSrc bool) entrySource {
	if len(rec) == 0 || len(rec[0]) == 0 {
		return sourceUnknown
	}
	if hasSrc && srcIdx < len(rec) && len(rec[srcIdx]) > 0 && !math.IsNaN(rec[srcIdx][0]) {
		if rec[srcIdx][0] == 0 {
			if math.IsNaN(rec[0][0]) {
				return sourceUnknown
			}
			return sourceSweep
		}
		return sourceTestPulse
	}
	if math.IsNaN(rec[0][0]) {
		return sourceUnknown
	}
	return sourceSweep
}
