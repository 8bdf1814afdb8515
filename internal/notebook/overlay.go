package notebook

import (
	"strconv"
	"strings"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

// overlay folds the textual table into the finalized sweep metadata. Only
// sweep rows participate; rows whose source type or sweep id does not parse,
// or whose sweep id never appeared in the numeric table, are skipped rather
// than treated as errors. For each field and channel the first writer wins:
// a non-absent value, numeric or textual, is never overwritten. Empty cells
// fall back to the overflow column before being skipped.
// Implements: prd001-notebook-core R6.
func overlay(set *types.SweepSet, fields *types.FieldDict, table types.TextualTable) {
	if fields == nil {
		return
	}
	srcIdx, hasSrc := fields.Index(entrySourceTypeField)

	for _, rec := range table {
		if len(rec) == 0 || len(rec[0]) == 0 {
			continue
		}
		if hasSrc {
			if srcIdx >= len(rec) || len(rec[srcIdx]) == 0 {
				continue
			}
			src, err := strconv.Atoi(strings.TrimSpace(rec[srcIdx][0]))
			if err != nil || src != 0 {
				continue
			}
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[0][0]))
		if err != nil {
			continue
		}
		channels, ok := set.Get(id)
		if !ok {
			continue
		}

		for _, name := range fields.Names() {
			f, ok := fields.Index(name)
			if !ok || f >= len(rec) || len(rec[f]) == 0 {
				continue
			}
			row := rec[f]
			overflow := row[len(row)-1]
			for c := 0; c < len(row)-1 && c < len(channels); c++ {
				if channels[c].HasValue(name) {
					continue
				}
				val := row[c]
				if val == "" {
					val = overflow
				}
				if val == "" {
					continue
				}
				channels[c].Set(name, types.Text(val))
			}
		}
	}
}
