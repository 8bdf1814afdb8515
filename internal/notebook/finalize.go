package notebook

import (
	"math"
	"strings"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

// finalize applies the broadcast rules to a sweep's accumulated grid and
// converts it to one ordered field→Value map per channel. Missing cells
// become the explicit Absent marker so consumers can tell a recorded zero
// from a never-recorded field. Running finalize on an already-finalized grid
// changes nothing; every broadcast is idempotent.
// Implements: prd001-notebook-core R5.
func finalize(b *sweepBuilder, fields *types.FieldDict) []*types.ChannelMeta {
	broadcastGlobal(b.grid)
	broadcastHeader(b.grid)
	broadcastPrefixed(b.grid, fields, asyncFieldPrefix)
	return channels(b.grid, fields)
}

// broadcastGlobal copies each field's global-column value into every column
// of that field, overwriting per-channel values. Only non-missing global
// values broadcast.
func broadcastGlobal(grid [][]float64) {
	for f := range grid {
		if globalColumn >= len(grid[f]) {
			continue
		}
		g := grid[f][globalColumn]
		if math.IsNaN(g) {
			continue
		}
		for c := range grid[f] {
			grid[f][c] = g
		}
	}
}

// broadcastHeader copies the leading channel-independent housekeeping fields
// from column 0 to every column, unconditionally.
func broadcastHeader(grid [][]float64) {
	for f := 0; f < headerFieldCount && f < len(grid); f++ {
		if len(grid[f]) == 0 {
			continue
		}
		v := grid[f][0]
		for c := range grid[f] {
			grid[f][c] = v
		}
	}
}

// broadcastPrefixed copies fields whose name carries the given prefix from
// column 0 to every column. The hardware records these device-wide
// measurements only in slot 0 even though they apply to all channels.
func broadcastPrefixed(grid [][]float64, fields *types.FieldDict, prefix string) {
	for _, name := range fields.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		f, ok := fields.Index(name)
		if !ok || f >= len(grid) || len(grid[f]) == 0 {
			continue
		}
		v := grid[f][0]
		for c := range grid[f] {
			grid[f][c] = v
		}
	}
}

// channels converts the grid to a list of per-channel ordered maps in field
// dictionary order.
func channels(grid [][]float64, fields *types.FieldDict) []*types.ChannelMeta {
	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	out := make([]*types.ChannelMeta, 0, cols)
	names := fields.Names()
	for c := 0; c < cols; c++ {
		meta := types.NewChannelMeta()
		for _, name := range names {
			f, ok := fields.Index(name)
			if !ok || f >= len(grid) || c >= len(grid[f]) {
				continue
			}
			if v := grid[f][c]; math.IsNaN(v) {
				meta.Set(name, types.Absent())
			} else {
				meta.Set(name, types.Number(v))
			}
		}
		out = append(out, meta)
	}
	return out
}
