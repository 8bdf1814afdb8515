package notebook

// Notebook schema constants. The numeric and textual tables share the layout
// conventions of the acquisition software's lab notebook.
const (
	// entrySourceTypeField discriminates sweep rows (0) from test-pulse
	// rows (any other finite value). Older files lack the field entirely.
	entrySourceTypeField = "EntrySourceType"

	// sweepCountField and stimWaveNoteField are the two fields the wave-note
	// decoder requires.
	sweepCountField   = "Set Sweep Count"
	stimWaveNoteField = "Stim Wave Note"

	// asyncFieldPrefix marks device-wide measurements (temperature and the
	// like) that the hardware records only in column 0.
	asyncFieldPrefix = "Async AD "

	// globalColumn is the column whose value, when present, applies to every
	// channel of the sweep.
	globalColumn = 8

	// headerFieldCount is the number of leading schema-fixed housekeeping
	// fields that are channel-independent.
	headerFieldCount = 4
)

// entrySource classifies one physical notebook row.
type entrySource int

const (
	sourceUnknown entrySource = iota
	sourceSweep
	sourceTestPulse
)
