// Package jsontables loads decoded lab-notebook tables from a JSON document.
// Container decoding (locating the device group and reading the key and
// value datasets) happens upstream; this provider accepts the resulting
// arrays under the dataset names the container uses, with null standing in
// for missing numeric cells since JSON cannot carry NaN.
// Implements: prd003-table-provider; docs/ARCHITECTURE § Table Providers.
package jsontables

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

// document mirrors the JSON input layout.
type document struct {
	Device          string         `json:"device"`
	NumericalKeys   []string       `json:"numericalKeys"`
	NumericalValues [][][]*float64 `json:"numericalValues"`
	TextualKeys     []string       `json:"textualKeys"`
	TextualValues   [][][]string   `json:"textualValues"`
}

// Load reads and decodes a tables document from a file.
func Load(path string) (*types.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tables file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a tables document from r and validates its shape. Missing
// key or value datasets are a configuration error; the reconciler assumes
// they were checked here.
func Decode(r io.Reader) (*types.Tables, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing tables document: %w", err)
	}

	if doc.NumericalKeys == nil {
		return nil, fmt.Errorf("%w: numericalKeys", types.ErrMissingDataset)
	}
	if doc.NumericalValues == nil {
		return nil, fmt.Errorf("%w: numericalValues", types.ErrMissingDataset)
	}
	if doc.TextualKeys == nil {
		return nil, fmt.Errorf("%w: textualKeys", types.ErrMissingDataset)
	}
	if doc.TextualValues == nil {
		return nil, fmt.Errorf("%w: textualValues", types.ErrMissingDataset)
	}

	tables := &types.Tables{
		Device:        doc.Device,
		NumericFields: types.NewFieldDict(doc.NumericalKeys),
		Numeric:       numericTable(doc.NumericalValues),
		TextualFields: types.NewFieldDict(doc.TextualKeys),
		Textual:       types.TextualTable(doc.TextualValues),
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

// numericTable materializes the whole numeric dataset up front, null cells
// becoming NaN. The reconciler scans the table more than once; decoding once
// here keeps the scan free of per-cell parsing.
func numericTable(values [][][]*float64) types.NumericTable {
	table := make(types.NumericTable, len(values))
	for i, row := range values {
		table[i] = make([][]float64, len(row))
		for f, field := range row {
			table[i][f] = make([]float64, len(field))
			for c, cell := range field {
				if cell == nil {
					table[i][f][c] = math.NaN()
				} else {
					table[i][f][c] = *cell
				}
			}
		}
	}
	return table
}
