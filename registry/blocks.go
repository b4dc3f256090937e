package registry

import (
	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
)

func regular(size float64) layout.Font { return layout.Font{Size: size} }

func bold(size float64) layout.Font { return layout.Font{Size: size, Style: layout.StyleBold} }

// centered places text on the page centre line.
func centered(text string, f layout.Font, after float64) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockTitle, Text: text, Font: f, After: after}
}

// line places text at the left margin.
func line(text string, f layout.Font, after float64) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockText, Text: text, Font: f, After: after}
}

func rightAt(x float64, text string, f layout.Font, after float64) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockText, Text: text, X: x, Align: layout.AlignRight, Font: f, After: after}
}

func para(text string, f layout.Font, after float64) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockParagraph, Text: text, Font: f, After: after}
}

func spacer(dy float64) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockSpacer, After: dy}
}

// signLine is the full-width signature rule.
func signLine(after float64) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockRule, Stroke: 0.2, After: after}
}

func rule(after float64) doctpl.Block {
	return doctpl.Block{Kind: doctpl.BlockRule, Stroke: 0.5, After: after}
}

func text(name, label string) doctpl.Field {
	return doctpl.Field{Name: name, Label: label, Kind: doctpl.FieldText}
}

func half(f doctpl.Field) doctpl.Field {
	f.Width = doctpl.WidthHalf
	return f
}

func third(f doctpl.Field) doctpl.Field {
	f.Width = doctpl.WidthThird
	return f
}

func number(name, label string) doctpl.Field {
	return doctpl.Field{Name: name, Label: label, Kind: doctpl.FieldNumber}
}

func date(name, label string) doctpl.Field {
	return doctpl.Field{Name: name, Label: label, Kind: doctpl.FieldDate}
}

func heading(label string) doctpl.Field {
	return doctpl.Field{Label: label, Kind: doctpl.FieldHeading}
}

// placeDate is "<city> - <UF>, <long date>." with blanks for a missing date.
func placeDate(cityFallback string) string {
	return `{{.Or "cidade" "` + cityFallback + `"}} - {{.Or "estado" "UF"}}, {{.LongDate "data" "___ de ____________ de ______"}}.`
}
