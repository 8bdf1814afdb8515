package types

import (
	"encoding/json"
	"strconv"
)

// ValueKind discriminates the three states a metadata cell can be in.
type ValueKind int

const (
	// KindAbsent marks a cell the notebook never filled. Distinct from a
	// numeric zero or an empty string.
	KindAbsent ValueKind = iota
	// KindNumber marks a finite numeric cell.
	KindNumber
	// KindText marks a textual cell.
	KindText
)

// Value is one finalized metadata cell: absent, a number, or text. The zero
// Value is Absent. NaN never appears in a finalized Value; finalization maps
// unfilled numeric cells to Absent instead.
// Implements: prd001-notebook-core R1 (tagged cell values).
type Value struct {
	kind ValueKind
	num  float64
	str  string
}

// Absent returns the explicit missing-value marker.
func Absent() Value { return Value{} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Text returns a textual Value.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Kind returns the value's discriminator.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the cell was never filled.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Float returns the numeric payload. The second result is false unless the
// value is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Str returns the textual payload. The second result is false unless the
// value is text.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindText
}

// String renders the value for display: numbers in shortest form, text
// verbatim, absent as "-".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.str
	default:
		return "-"
	}
}

// MarshalJSON encodes absent as null, numbers as JSON numbers, and text as
// JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.str)
	default:
		return []byte("null"), nil
	}
}
