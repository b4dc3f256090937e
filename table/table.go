package table

import (
	"errors"
	"fmt"

	"github.com/anixcopiadora/docgen/layout"
)

// ErrNoColumns is returned by Render for a table without columns.
var ErrNoColumns = errors.New("table: no columns")

// Column defines a table column. X is the absolute anchor of the header and
// of every cell; zero means the left margin plus 2mm.
type Column struct {
	Header string
	X      float64
	Align  layout.Align
}

// Table is a builder for ruled tables placed on a layout.Flow.
type Table struct {
	columns []Column
	rows    []*Row
	style   *Style
	width   float64 // band width; 0 means the content width
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// SetColumns sets the column definitions.
func (t *Table) SetColumns(cols ...Column) *Table {
	t.columns = cols
	return t
}

// SetStyle sets the table-wide style. Without it DefaultStyle at 10pt
// Helvetica is used.
func (t *Table) SetStyle(s Style) *Table {
	t.style = &s
	return t
}

// SetWidth sets the width of the header band.
func (t *Table) SetWidth(w float64) *Table {
	t.width = w
	return t
}

// AddRow adds a new body row and returns it for chaining.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.rows = append(t.rows, r)
	return r
}

// Len reports the number of body rows.
func (t *Table) Len() int { return len(t.rows) }

// Render places the table at the cursor of f and leaves the cursor one row
// pitch below the last row. A row whose baseline would fall past the style
// limit starts a new page, which repeats the header band.
func (t *Table) Render(f *layout.Flow) error {
	if len(t.columns) == 0 {
		return ErrNoColumns
	}
	for i, r := range t.rows {
		if len(r.cells) > len(t.columns) {
			return fmt.Errorf("table: row %d has %d cells for %d columns", i, len(r.cells), len(t.columns))
		}
	}

	style := DefaultStyle(layout.Font{Size: 10})
	if t.style != nil {
		style = *t.style
	}
	limit, top := style.Limit, style.Top
	if limit == 0 {
		limit = f.Page.Threshold
	}
	if top == 0 {
		top = f.Page.Top
	}

	t.header(f, style)
	for i, r := range t.rows {
		if f.Y > limit {
			f.NewPage(top)
			t.header(f, style)
		}
		if style.AlternateFill != nil && i%2 == 1 {
			f.Emit(layout.DrawRect{
				X: f.Page.Margin, Y: f.Y - style.RowPitch + 2,
				W: t.bandWidth(f), H: style.RowPitch,
				Filled: true, NoStroke: true, Fill: *style.AlternateFill,
			})
		}
		for j, cell := range r.cells {
			col := t.columns[j]
			f.Text(cell, t.x(f, col), 0, col.Align, style.CellFont)
		}
		f.Advance(style.RowPitch)
	}
	return nil
}

func (t *Table) header(f *layout.Flow, style Style) {
	f.Emit(layout.DrawRect{
		X: f.Page.Margin, Y: f.Y,
		W: t.bandWidth(f), H: style.HeaderHeight,
		Filled: true, NoStroke: true, Fill: style.HeaderFill,
	})
	for _, col := range t.columns {
		f.Text(col.Header, t.x(f, col), style.HeaderBaseline, col.Align, style.HeaderFont)
	}
	f.Advance(style.HeaderAdvance)
}

func (t *Table) bandWidth(f *layout.Flow) float64 {
	if t.width > 0 {
		return t.width
	}
	return f.Page.ContentWidth()
}

func (t *Table) x(f *layout.Flow, col Column) float64 {
	if col.X == 0 {
		return f.Page.Margin + 2
	}
	return col.X
}
