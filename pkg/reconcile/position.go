package reconcile

import "github.com/jugandoyeducando/marketmaster/pkg/catalog"

// position finalizes the table for emission: restores original input
// order, projects every row onto the platform's fixed column schema
// (dropping anything past it, padding anything short of it), and
// normalizes integer identifier columns so a float-typed source cell
// never leaks a trailing ".0" into the output file.
func (e *engine) position(table *catalog.Table) {
	table.SortByIndex()

	width := len(e.cfg.Columns)
	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)
		if len(row.Cells) > width {
			row.Cells = row.Cells[:width]
		}
		for len(row.Cells) < width {
			row.Cells = append(row.Cells, "")
		}
		for _, c := range e.cfg.IntCols {
			row.Cells[c] = integerString(row.Cells[c])
		}
	}
}
