package pdfbackend

import (
	"sync"

	"github.com/go-pdf/fpdf"

	"github.com/anixcopiadora/docgen/layout"
)

// DefaultFamily is used when a layout.Font leaves Family empty.
const DefaultFamily = "Helvetica"

// Measurer measures strings with the core font metrics of the PDF encoder,
// so wrapping decisions match what Render draws. It is safe for concurrent
// use.
type Measurer struct {
	mu  sync.Mutex
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewMeasurer returns a Measurer backed by a scratch document.
func NewMeasurer() *Measurer {
	pdf := fpdf.New("P", "mm", "A4", "")
	return &Measurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// StringWidth implements layout.Measurer.
func (m *Measurer) StringWidth(s string, font layout.Font) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pdf.SetFont(family(font), font.Style, font.Size)
	return m.pdf.GetStringWidth(m.tr(s))
}

func family(f layout.Font) string {
	if f.Family == "" {
		return DefaultFamily
	}
	return f.Family
}
