package notebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

var txtKeys = []string{"SweepNum", "EntrySourceType", "Stim Wave Note", "Comment"}

const (
	tSweepNum = iota
	tSourceType
	tWaveNote
	tComment

	txtFieldCount = 4
	txtColCount   = 4 // 3 channels + overflow column
)

func txtBlank() [][]string {
	g := make([][]string, txtFieldCount)
	for i := range g {
		g[i] = make([]string, txtColCount)
	}
	return g
}

// txtRow returns a blank textual row pre-marked as a sweep record.
func txtRow(id string) [][]string {
	g := txtBlank()
	g[tSweepNum][0] = id
	g[tSourceType][0] = "0"
	return g
}

// setWithSweep returns a SweepSet holding one finalized sweep with the given
// channel count and no textual fields filled.
func setWithSweep(id, channels int) *types.SweepSet {
	metas := make([]*types.ChannelMeta, channels)
	for i := range metas {
		metas[i] = types.NewChannelMeta()
	}
	set := types.NewSweepSet()
	set.Put(id, metas)
	return set
}

func TestOverlayFillsAbsentCells(t *testing.T) {
	set := setWithSweep(3, 3)
	row := txtRow(" 3 ") // ids tolerate surrounding whitespace
	row[tComment][1] = "bridge balanced"

	overlay(set, types.NewFieldDict(txtKeys), types.TextualTable{row})

	channels, _ := set.Get(3)
	v, ok := channels[1].Get("Comment")
	require.True(t, ok)
	s, isText := v.Str()
	require.True(t, isText)
	assert.Equal(t, "bridge balanced", s)
}

func TestOverlayFirstWriterWins(t *testing.T) {
	set := setWithSweep(3, 3)
	// Channel 0 already carries a numeric value for the field.
	channels, _ := set.Get(3)
	channels[0].Set("Comment", types.Number(7))

	first := txtRow("3")
	first[tComment][0] = "first"
	first[tComment][1] = "first"
	second := txtRow("3")
	second[tComment][1] = "second"

	overlay(set, types.NewFieldDict(txtKeys), types.TextualTable{first, second})

	v, _ := channels[0].Get("Comment")
	f, isNum := v.Float()
	require.True(t, isNum, "numeric cell must not be overwritten by text")
	assert.Equal(t, 7.0, f)

	v, _ = channels[1].Get("Comment")
	s, _ := v.Str()
	assert.Equal(t, "first", s)
}

func TestOverlayOverflowColumnFillsEmptyChannels(t *testing.T) {
	set := setWithSweep(5, 3)
	row := txtRow("5")
	row[tWaveNote][0] = "per-channel note"
	row[tWaveNote][3] = "shared note" // overflow column

	overlay(set, types.NewFieldDict(txtKeys), types.TextualTable{row})

	channels, _ := set.Get(5)
	v, _ := channels[0].Get("Stim Wave Note")
	s, _ := v.Str()
	assert.Equal(t, "per-channel note", s)

	for _, c := range []int{1, 2} {
		v, _ := channels[c].Get("Stim Wave Note")
		s, _ := v.Str()
		assert.Equal(t, "shared note", s, "channel %d", c)
	}
}

func TestOverlayEmptyEverywhereLeavesCellUnset(t *testing.T) {
	set := setWithSweep(1, 3)
	overlay(set, types.NewFieldDict(txtKeys), types.TextualTable{txtRow("1")})

	channels, _ := set.Get(1)
	_, ok := channels[0].Get("Comment")
	assert.False(t, ok)
}

func TestOverlaySkipsBadRows(t *testing.T) {
	set := setWithSweep(2, 3)

	testPulse := txtRow("2")
	testPulse[tSourceType][0] = "1"
	testPulse[tComment][0] = "tp"

	badID := txtRow("abc")
	badID[tComment][0] = "bad id"

	unknown := txtRow("99")
	unknown[tComment][0] = "no such sweep"

	overlay(set, types.NewFieldDict(txtKeys), types.TextualTable{testPulse, badID, unknown})

	channels, _ := set.Get(2)
	_, ok := channels[0].Get("Comment")
	assert.False(t, ok, "skipped rows must contribute nothing")
}

func TestOverlayWithoutSourceTypeField(t *testing.T) {
	// Older files have no EntrySourceType in the textual dictionary; every
	// row with a parsable sweep id participates.
	keys := []string{"SweepNum", "Comment"}
	row := [][]string{{"4", "", ""}, {"note", "", ""}}

	set := setWithSweep(4, 2)
	overlay(set, types.NewFieldDict(keys), types.TextualTable{row})

	channels, _ := set.Get(4)
	v, _ := channels[0].Get("Comment")
	s, _ := v.Str()
	assert.Equal(t, "note", s)
}
