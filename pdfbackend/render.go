// Package pdfbackend renders layout operation streams to PDF with
// github.com/go-pdf/fpdf.
//
// Text uses the core Helvetica faces with the cp1252 code page, which covers
// every Portuguese letter and the typographic marks used in the documents.
// Coordinates are millimetres on an A4 portrait page with text baselines at
// the given y, matching the layout package.
package pdfbackend

import (
	"bytes"
	"fmt"
	"time"

	"github.com/boombuler/barcode/qr"
	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/barcode"

	"github.com/anixcopiadora/docgen/layout"
)

const defaultLineWidth = 0.2

// printScript opens the print dialog when the document is displayed.
const printScript = "print({bUI: true, bSilent: false, bShrinkToFit: true});"

// Renderer implements layout.Renderer.
type Renderer struct {
	cfg config
}

// New returns a Renderer.
func New(opts ...Option) *Renderer {
	cfg := config{compress: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

// Render draws ops in order and returns the encoded document.
func (r *Renderer) Render(ops []layout.Op) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.cfg.compress)
	pdf.SetCatalogSort(true)
	created := r.cfg.created
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)
	r.setMetadata(pdf)
	if r.cfg.autoPrint {
		pdf.SetJavascript(printScript)
	}

	d := &drawer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.AddPage()
	pdf.SetFont(DefaultFamily, "", 12)
	for i, op := range ops {
		if err := d.draw(i, op); err != nil {
			return nil, fmt.Errorf("pdfbackend: op %d (%s): %w", i, op.Kind(), err)
		}
		if pdf.Err() {
			return nil, fmt.Errorf("pdfbackend: op %d (%s): %w", i, op.Kind(), pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdfbackend: output: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) setMetadata(pdf *fpdf.Fpdf) {
	m := r.cfg.meta
	if m.Title != "" {
		pdf.SetTitle(m.Title, true)
	}
	if m.Author != "" {
		pdf.SetAuthor(m.Author, true)
	}
	if m.Subject != "" {
		pdf.SetSubject(m.Subject, true)
	}
	if m.Creator != "" {
		pdf.SetCreator(m.Creator, true)
	}
	if m.Keywords != "" {
		pdf.SetKeywords(m.Keywords, true)
	}
}

type drawer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (d *drawer) draw(i int, op layout.Op) error {
	pdf := d.pdf
	switch o := op.(type) {
	case layout.PlaceText:
		d.setFont(o.Font)
		d.text(o.Text, o.X, o.Y, o.Align)
	case layout.PlaceWrappedText:
		d.setFont(o.Font)
		for n, line := range o.Lines {
			d.text(line, o.X, o.Y+float64(n)*o.LineHeight, layout.AlignLeft)
		}
	case layout.DrawLine:
		pdf.SetLineWidth(lineWidth(o.Width))
		pdf.SetDrawColor(o.Color.R, o.Color.G, o.Color.B)
		pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
	case layout.DrawRect:
		pdf.SetLineWidth(lineWidth(o.Width))
		pdf.SetDrawColor(o.Stroke.R, o.Stroke.G, o.Stroke.B)
		style := "D"
		if o.Filled {
			pdf.SetFillColor(o.Fill.R, o.Fill.G, o.Fill.B)
			style = "FD"
			if o.NoStroke {
				style = "F"
			}
		}
		pdf.Rect(o.X, o.Y, o.W, o.H, style)
	case layout.SetTextColor:
		pdf.SetTextColor(o.Color.R, o.Color.G, o.Color.B)
	case layout.AddPage:
		pdf.AddPage()
	case layout.PlaceImage:
		return d.image(i, o)
	case layout.PlaceBarcode:
		return d.barcode(o)
	default:
		return fmt.Errorf("unsupported operation %T", op)
	}
	return nil
}

func (d *drawer) setFont(f layout.Font) {
	d.pdf.SetFont(family(f), f.Style, f.Size)
}

// text draws s with its baseline at y, shifting x for the alignment.
func (d *drawer) text(s string, x, y float64, align layout.Align) {
	enc := d.tr(s)
	switch align {
	case layout.AlignCenter:
		x -= d.pdf.GetStringWidth(enc) / 2
	case layout.AlignRight:
		x -= d.pdf.GetStringWidth(enc)
	}
	d.pdf.Text(x, y, enc)
}

// image embeds o. Data that does not decode as a supported raster image
// leaves its box empty; the rest of the page is still drawn.
func (d *drawer) image(i int, o layout.PlaceImage) error {
	data, imageType, err := normalizeImage(o.Data)
	if err != nil {
		return nil
	}
	name := fmt.Sprintf("image-%d", i)
	opt := fpdf.ImageOptions{ImageType: imageType}
	d.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))
	d.pdf.ImageOptions(name, o.X, o.Y, o.W, o.H, false, opt, 0, "")
	return nil
}

func (d *drawer) barcode(o layout.PlaceBarcode) error {
	if o.Payload == "" {
		return fmt.Errorf("empty barcode payload")
	}
	switch o.Symbology {
	case "", layout.SymbologyQR:
		key := barcode.RegisterQR(d.pdf, o.Payload, qr.M, qr.Unicode)
		barcode.Barcode(d.pdf, key, o.X, o.Y, o.Size, o.Size, false)
	case layout.SymbologyPDF417:
		key := barcode.RegisterPdf417(d.pdf, o.Payload, 6, 2)
		barcode.Barcode(d.pdf, key, o.X, o.Y, o.Size, o.Size/3, false)
	default:
		return fmt.Errorf("unknown symbology %q", o.Symbology)
	}
	return nil
}

func lineWidth(w float64) float64 {
	if w <= 0 {
		return defaultLineWidth
	}
	return w
}
