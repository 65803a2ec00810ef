package catalog

import "sort"

// Row is one marketplace export line: the raw cell values plus the
// row's position in the input file. Index is assigned at parse time and
// must be recoverable after any internal regrouping, so that output
// order always equals input order.
type Row struct {
	Index int
	Cells []string
}

// Cell returns the value at column i, empty when the row is shorter.
func (r *Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// SetCell overwrites the value at column i, growing the row when the
// input line was shorter than the platform schema.
func (r *Row) SetCell(i int, value string) {
	if i < 0 {
		return
	}
	for len(r.Cells) <= i {
		r.Cells = append(r.Cells, "")
	}
	r.Cells[i] = value
}

// Table is an ordered collection of marketplace rows for one run.
type Table struct {
	rows []Row
}

// NewTable wraps raw parsed cells into a table, assigning each row its
// original input index.
func NewTable(cells [][]string) *Table {
	rows := make([]Row, len(cells))
	for i, c := range cells {
		rows[i] = Row{Index: i, Cells: c}
	}
	return &Table{rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows exposes the backing rows for in-place reconciliation.
func (t *Table) Rows() []Row {
	return t.rows
}

// Row returns a pointer to the i-th row in current table order.
func (t *Table) Row(i int) *Row {
	return &t.rows[i]
}

// SortByIndex restores original input order after any internal
// processing that may have reordered rows.
func (t *Table) SortByIndex() {
	sort.SliceStable(t.rows, func(i, j int) bool {
		return t.rows[i].Index < t.rows[j].Index
	})
}
