package types

// FieldDict is an ordered mapping from notebook field name to its row index
// within a single physical record. Iteration order matches the order the
// acquisition software wrote the keys, which downstream consumers rely on.
// Implements: prd001-notebook-core R2 (field dictionaries).
type FieldDict struct {
	names []string
	index map[string]int
}

// NewFieldDict builds a FieldDict from the key array of a notebook, assigning
// each name its position. A duplicated name keeps its first position in the
// iteration order but maps to its last index, matching the source format.
func NewFieldDict(names []string) *FieldDict {
	d := &FieldDict{index: make(map[string]int, len(names))}
	for i, name := range names {
		if _, seen := d.index[name]; !seen {
			d.names = append(d.names, name)
		}
		d.index[name] = i
	}
	return d
}

// Index returns the row index for a field name. The second result is false
// if the field is not part of the dictionary.
func (d *FieldDict) Index(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Names returns the field names in dictionary order. The returned slice is a
// copy; callers may mutate it freely.
func (d *FieldDict) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of distinct field names.
func (d *FieldDict) Len() int { return len(d.names) }
