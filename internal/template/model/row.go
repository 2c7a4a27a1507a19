package model

import "sort"

// Row holds the tag values for one generated page.
// Lookups are total: a tag without a value reads as the empty string.
type Row struct {
	values map[string]string
	order  []string
}

// NewRow creates a Row from a map. The map is copied.
func NewRow(values map[string]string) *Row {
	r := &Row{values: make(map[string]string, len(values))}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.Set(k, values[k])
	}
	return r
}

// Value returns the value for tag, or "" when the row has none.
func (r *Row) Value(tag string) string {
	if r == nil {
		return ""
	}
	return r.values[tag]
}

// Lookup returns the value for tag and whether the row supplies it.
func (r *Row) Lookup(tag string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.values[tag]
	return v, ok
}

// Has reports whether the row supplies a value for tag.
func (r *Row) Has(tag string) bool {
	_, ok := r.Lookup(tag)
	return ok
}

// Set sets the value for tag. New keys keep their insertion order.
func (r *Row) Set(tag, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[tag]; !ok {
		r.order = append(r.order, tag)
	}
	r.values[tag] = value
}

// Delete removes tag from the row.
func (r *Row) Delete(tag string) {
	if _, ok := r.values[tag]; !ok {
		return
	}
	delete(r.values, tag)
	for i, k := range r.order {
		if k == tag {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Keys returns the tags the row supplies, in insertion order.
func (r *Row) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of tags the row supplies.
func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.values)
}

// Map returns a copy of the row values.
func (r *Row) Map() map[string]string {
	out := make(map[string]string, r.Len())
	if r == nil {
		return out
	}
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the row.
func (r *Row) Clone() *Row {
	if r == nil {
		return nil
	}
	c := &Row{values: make(map[string]string, len(r.values))}
	for _, k := range r.order {
		c.Set(k, r.values[k])
	}
	return c
}
