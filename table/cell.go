package table

import "fmt"

// Row is one body line of a table.
type Row struct {
	cells []string
}

// AddCell appends a cell and returns the row for chaining.
func (r *Row) AddCell(text string) *Row {
	r.cells = append(r.cells, text)
	return r
}

// AddCellf appends a formatted cell.
func (r *Row) AddCellf(format string, args ...any) *Row {
	return r.AddCell(fmt.Sprintf(format, args...))
}

// Cells returns the cell texts in column order.
func (r *Row) Cells() []string { return r.cells }
