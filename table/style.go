// Package table lays out simple ruled tables as layout operations.
//
// A table is a filled header band followed by one line per row. Cells are
// anchored at their column's x with the column alignment; the header band is
// repeated at the top of every page the table continues on.
package table

import "github.com/anixcopiadora/docgen/layout"

// Style defines the geometry and appearance of a table.
type Style struct {
	HeaderFill layout.Color
	// HeaderHeight is the height of the filled band.
	HeaderHeight float64
	// HeaderBaseline is the header text baseline relative to the band top.
	HeaderBaseline float64
	// HeaderAdvance moves the cursor from the band top to the first row.
	HeaderAdvance float64
	RowPitch      float64
	HeaderFont    layout.Font
	CellFont      layout.Font
	// AlternateFill shades every second row when set.
	AlternateFill *layout.Color
	// Limit is the cursor position past which a row moves to a new page;
	// zero means the page threshold. Top is where that page starts.
	Limit float64
	Top   float64
}

// DefaultStyle returns the light gray header band used by priced item lists.
func DefaultStyle(font layout.Font) Style {
	return Style{
		HeaderFill:     layout.Gray(240),
		HeaderHeight:   8,
		HeaderBaseline: 5.5,
		HeaderAdvance:  10,
		RowPitch:       7,
		HeaderFont:     font.Bold(),
		CellFont:       font.Normal(),
	}
}
