package notebook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

// DecodeWaveNote decodes the stimulus wave note embedded in one channel's
// finalized metadata. The note encodes newline-separated records of
// semicolon-delimited "key = value" pairs; only the lines describing the
// sweep's current repeat count contribute epochs, in line order.
//
// Notes predating the version marker decode with version 0. A Version line
// that is present but unparsable is an error: it signals a note schema the
// decoder does not understand, and defaulting silently would mis-decode the
// epochs that follow.
// Implements: prd001-notebook-core R8 (wave-note decoder).
func DecodeWaveNote(meta *types.ChannelMeta) (float64, []*types.Epoch, error) {
	count, err := sweepCount(meta)
	if err != nil {
		return 0, nil, err
	}

	noteVal, ok := meta.Get(stimWaveNoteField)
	if !ok || noteVal.IsAbsent() {
		return 0, nil, fmt.Errorf("%w: %s", types.ErrMissingField, stimWaveNoteField)
	}
	note, ok := noteVal.Str()
	if !ok {
		return 0, nil, fmt.Errorf("%w: %s is not text", types.ErrMissingField, stimWaveNoteField)
	}

	lines := strings.Split(note, "\n")

	version := 0.0
	for _, line := range lines {
		if !strings.HasPrefix(line, "Version =") {
			continue
		}
		lit := strings.TrimSuffix(strings.TrimSpace(line), ";")
		_, after, _ := strings.Cut(lit, "=")
		version, err = strconv.ParseFloat(strings.TrimSpace(after), 64)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %q", types.ErrBadVersion, line)
		}
		break
	}

	selector := fmt.Sprintf("Sweep = %d;", count)
	var epochs []*types.Epoch
	for _, line := range lines {
		if !strings.HasPrefix(line, selector) {
			continue
		}
		epoch := types.NewEpoch()
		for _, part := range strings.Split(strings.TrimPrefix(line, selector), ";") {
			key, value, found := strings.Cut(part, "=")
			if !found {
				// Trailing empty fragments from the split carry no pair.
				continue
			}
			epoch.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		}
		epochs = append(epochs, epoch)
	}

	return version, epochs, nil
}

// sweepCount extracts the integer Set Sweep Count from channel metadata.
// The field is numeric in current files but may arrive as text through the
// textual overlay in older ones.
func sweepCount(meta *types.ChannelMeta) (int, error) {
	v, ok := meta.Get(sweepCountField)
	if !ok || v.IsAbsent() {
		return 0, fmt.Errorf("%w: %s", types.ErrMissingField, sweepCountField)
	}
	if f, ok := v.Float(); ok {
		return int(f), nil
	}
	if s, ok := v.Str(); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", types.ErrMissingField, sweepCountField, s)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s", types.ErrMissingField, sweepCountField)
}
