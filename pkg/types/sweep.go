package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ChannelMeta is the finalized metadata for one channel of one sweep: an
// ordered mapping from field name to Value. Field order follows the field
// dictionary, with textual-overlay fields appended in overlay order.
// Implements: prd001-notebook-core R5 (finalized sweep metadata).
type ChannelMeta struct {
	names  []string
	values map[string]Value
}

// NewChannelMeta returns an empty ChannelMeta.
func NewChannelMeta() *ChannelMeta {
	return &ChannelMeta{values: make(map[string]Value)}
}

// Set stores a value under the field name. A name seen for the first time is
// appended to the iteration order; overwriting keeps the original position.
func (m *ChannelMeta) Set(name string, v Value) {
	if _, seen := m.values[name]; !seen {
		m.names = append(m.names, name)
	}
	m.values[name] = v
}

// Get returns the value for a field name. The second result is false if the
// field was never set, Absent included.
func (m *ChannelMeta) Get(name string) (Value, bool) {
	v, ok := m.values[name]
	return v, ok
}

// HasValue reports whether the field holds a non-absent value. This is the
// predicate the textual overlay uses: an Absent numeric slot may still be
// filled by a textual row.
func (m *ChannelMeta) HasValue(name string) bool {
	v, ok := m.values[name]
	return ok && !v.IsAbsent()
}

// Names returns the field names in iteration order.
func (m *ChannelMeta) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of fields.
func (m *ChannelMeta) Len() int { return len(m.names) }

// MarshalJSON encodes the metadata as a JSON object whose keys appear in
// iteration order. encoding/json map encoding would sort keys; the column
// order of the original dictionary must survive.
func (m *ChannelMeta) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SweepSet is the reconciler output: an ordered mapping from sweep id to the
// per-channel metadata list. Sweep ids iterate in order of first appearance
// in the numeric table.
type SweepSet struct {
	ids    []int
	sweeps map[int][]*ChannelMeta
}

// NewSweepSet returns an empty SweepSet.
func NewSweepSet() *SweepSet {
	return &SweepSet{sweeps: make(map[int][]*ChannelMeta)}
}

// Put stores the channel list for a sweep id, appending the id to the
// iteration order on first sight.
func (s *SweepSet) Put(id int, channels []*ChannelMeta) {
	if _, seen := s.sweeps[id]; !seen {
		s.ids = append(s.ids, id)
	}
	s.sweeps[id] = channels
}

// Get returns the channel metadata list for a sweep id.
func (s *SweepSet) Get(id int) ([]*ChannelMeta, bool) {
	chans, ok := s.sweeps[id]
	return chans, ok
}

// IDs returns the sweep ids in first-appearance order.
func (s *SweepSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of sweeps.
func (s *SweepSet) Len() int { return len(s.ids) }

// MarshalJSON encodes the set as a JSON object keyed by sweep id, preserving
// first-appearance order.
func (s *SweepSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(id))
		buf.WriteString(`":`)
		val, err := json.Marshal(s.sweeps[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Epoch is one decoded stimulus epoch: an ordered mapping from attribute
// name to its literal string value from the wave note.
type Epoch struct {
	names  []string
	values map[string]string
}

// NewEpoch returns an empty Epoch.
func NewEpoch() *Epoch {
	return &Epoch{values: make(map[string]string)}
}

// Set stores an attribute, appending to the iteration order on first sight.
func (e *Epoch) Set(name, value string) {
	if _, seen := e.values[name]; !seen {
		e.names = append(e.names, name)
	}
	e.values[name] = value
}

// Get returns an attribute value.
func (e *Epoch) Get(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Names returns the attribute names in note order.
func (e *Epoch) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Len returns the number of attributes.
func (e *Epoch) Len() int { return len(e.names) }

// MarshalJSON encodes the epoch as a JSON object in attribute order.
func (e *Epoch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range e.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
