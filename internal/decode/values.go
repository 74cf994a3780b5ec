package decode

import "slices"

type valueEntry struct {
	value Value
	raw   byte
}

// Values is the flat mapping of dump labels to decoded values. Labels keep
// the order of their first occurrence, a repeated label overwrites the value.
type Values struct {
	labels  []string
	entries map[string]valueEntry
}

// NewValues returns an empty mapping.
func NewValues() *Values {
	return &Values{
		entries: make(map[string]valueEntry),
	}
}

// Set stores the decoded value and the raw byte of a label.
func (v *Values) Set(label string, value Value, raw byte) {
	if _, ok := v.entries[label]; !ok {
		v.labels = append(v.labels, label)
	}
	v.entries[label] = valueEntry{value: value, raw: raw}
}

// Get returns the value of a label.
func (v *Values) Get(label string) (Value, bool) {
	entry, ok := v.entries[label]
	return entry.value, ok
}

// Value returns the value of a label or null if the label is absent.
func (v *Values) Value(label string) Value {
	return v.entries[label].value
}

// IntOr returns the integer value of a label or the default if the label
// is absent or not an integer.
func (v *Values) IntOr(label string, def int) int {
	if i, ok := v.entries[label].value.AsInt(); ok {
		return i
	}
	return def
}

// Raw returns the raw dump byte of a label.
func (v *Values) Raw(label string) (byte, bool) {
	entry, ok := v.entries[label]
	return entry.raw, ok
}

// Labels returns all labels in order of first occurrence.
func (v *Values) Labels() []string {
	return slices.Clone(v.labels)
}

// Len returns the number of labels.
func (v *Values) Len() int {
	return len(v.labels)
}
