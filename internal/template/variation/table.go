// Package variation holds the ordered rows that drive page generation.
package variation

import (
	"github.com/tacogips/pagegen/internal/debug"
	"github.com/tacogips/pagegen/internal/template/model"
	"github.com/tacogips/pagegen/internal/template/scanner"
)

// ImportMode controls how imported rows combine with existing ones.
type ImportMode int

const (
	// ImportAppend adds imported rows after the existing rows.
	ImportAppend ImportMode = iota
	// ImportReplace discards existing rows first.
	ImportReplace
)

// Table is an ordered collection of rows. Generation order is table order.
// Edits are never validated against the template; see Validate.
type Table struct {
	rows []*model.Row
}

// New creates a table with the given rows.
func New(rows ...*model.Row) *Table {
	t := &Table{}
	for _, r := range rows {
		t.Add(r)
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the rows in table order. The slice is a copy; rows are shared.
func (t *Table) Rows() []*model.Row {
	out := make([]*model.Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Row returns the row at index i.
func (t *Table) Row(i int) (*model.Row, error) {
	if err := t.checkIndex(i); err != nil {
		return nil, err
	}
	return t.rows[i], nil
}

// Add appends a row. A nil row is stored as an empty row.
func (t *Table) Add(row *model.Row) {
	if row == nil {
		row = model.NewRow(nil)
	}
	t.rows = append(t.rows, row)
}

// Insert places row at index i, shifting later rows down. i may equal Len.
func (t *Table) Insert(i int, row *model.Row) error {
	if i < 0 || i > len(t.rows) {
		return newTableError(RowOutOfRange, "insert position out of range", i, nil)
	}
	if row == nil {
		row = model.NewRow(nil)
	}
	t.rows = append(t.rows, nil)
	copy(t.rows[i+1:], t.rows[i:])
	t.rows[i] = row
	return nil
}

// Remove deletes the row at index i.
func (t *Table) Remove(i int) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

// Edit sets one cell. An empty value is kept as an explicit blank.
func (t *Table) Edit(i int, tag, value string) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	if !scanner.IsTagName(tag) {
		return newTableError(InvalidRow, "invalid tag name "+tag, i, nil)
	}
	t.rows[i].Set(tag, value)
	return nil
}

// ClearCell removes a tag from the row at index i.
func (t *Table) ClearCell(i int, tag string) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	t.rows[i].Delete(tag)
	return nil
}

// Import adds rows in bulk.
func (t *Table) Import(rows []*model.Row, mode ImportMode) {
	debug.Debug("[variation] Import: %d row(s), mode=%d", len(rows), mode)
	if mode == ImportReplace {
		t.rows = nil
	}
	for _, r := range rows {
		t.Add(r)
	}
}

// Columns returns the union of row keys in order of first appearance.
func (t *Table) Columns() []string {
	seen := make(map[string]struct{})
	cols := []string{}
	for _, r := range t.rows {
		for _, k := range r.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			cols = append(cols, k)
		}
	}
	return cols
}

// Validate reports every row that lacks a value for a tag used in pattern.
// A row may omit template-only tags; those substitute as blank.
func (t *Table) Validate(pattern string) []model.Warning {
	tags := scanner.Tags(pattern)
	var warnings []model.Warning
	for i, r := range t.rows {
		for _, tag := range tags {
			if !r.Has(tag) {
				warnings = append(warnings, model.NewMissingValueWarning(i+1, tag))
			}
		}
	}
	return warnings
}

func (t *Table) checkIndex(i int) error {
	if i < 0 || i >= len(t.rows) {
		return newTableError(RowOutOfRange, "row index out of range", i, nil)
	}
	return nil
}
