package types

import "fmt"

// NumericTable is the decoded numericalValues dataset: rows × fields ×
// columns of float64, with NaN marking cells the notebook never filled.
type NumericTable [][][]float64

// TextualTable is the decoded textualValues dataset: rows × fields × columns
// of string, with "" marking empty cells. The last column is the overflow
// slot holding values common to the whole sweep rather than one channel.
type TextualTable [][][]string

// Tables is the hand-off from a table provider: the device name, the two
// field dictionaries, and the two decoded value tables. The reconciler never
// mutates any of it.
// Implements: prd003-table-provider R1 (provider contract).
type Tables struct {
	Device        string
	NumericFields *FieldDict
	Numeric       NumericTable
	TextualFields *FieldDict
	Textual       TextualTable
}

// Validate checks that every row of each table carries one entry per
// dictionary field and that the column count is uniform within a table.
// Returns ErrShapeMismatch (wrapped with position detail) on the first
// inconsistency found.
func (t *Tables) Validate() error {
	if t.NumericFields == nil || t.TextualFields == nil {
		return fmt.Errorf("%w: missing field dictionary", ErrShapeMismatch)
	}
	cols := -1
	for i, row := range t.Numeric {
		if len(row) != t.NumericFields.Len() {
			return fmt.Errorf("%w: numeric row %d has %d fields, dictionary has %d",
				ErrShapeMismatch, i, len(row), t.NumericFields.Len())
		}
		for j, field := range row {
			if cols == -1 {
				cols = len(field)
			}
			if len(field) != cols {
				return fmt.Errorf("%w: numeric row %d field %d has %d columns, expected %d",
					ErrShapeMismatch, i, j, len(field), cols)
			}
		}
	}
	cols = -1
	for i, row := range t.Textual {
		if len(row) != t.TextualFields.Len() {
			return fmt.Errorf("%w: textual row %d has %d fields, dictionary has %d",
				ErrShapeMismatch, i, len(row), t.TextualFields.Len())
		}
		for j, field := range row {
			if cols == -1 {
				cols = len(field)
			}
			if len(field) != cols {
				return fmt.Errorf("%w: textual row %d field %d has %d columns, expected %d",
					ErrShapeMismatch, i, j, len(field), cols)
			}
		}
	}
	return nil
}
