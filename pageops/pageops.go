// Package pageops post-processes rendered PDF documents: stamping preview
// watermarks, numbering pages and joining documents.
//
// Pages are imported as templates into a fresh document through the gofpdi
// contrib package of fpdf and overlaid there; page counts come from pdfcpu.
package pageops

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrEmpty is returned for input that holds no pages.
var ErrEmpty = errors.New("pageops: document has no pages")

// Position specifies where to place an element on a page.
type Position int

const (
	BottomCenter Position = iota
	Center
	TopLeft
	TopCenter
	TopRight
	BottomLeft
	BottomRight
)

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// A4 in points, used when a page reports no media box.
const (
	a4Width  = 595.28
	a4Height = 841.89
)

// PageCount returns the number of pages of a PDF document.
func PageCount(src []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadContext(bytes.NewReader(src), conf)
	if err != nil {
		return 0, fmt.Errorf("pageops: reading document: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("pageops: counting pages: %w", err)
	}
	return ctx.PageCount, nil
}

// overlayFunc draws on top of imported page i (1-based) of n.
type overlayFunc func(pdf *fpdf.Fpdf, i, n int, w, h float64)

// importAll appends every page of src to pdf and calls overlay, if not
// nil, after each one.
func importAll(pdf *fpdf.Fpdf, src []byte, overlay overlayFunc) (err error) {
	n, err := PageCount(src)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEmpty
	}
	// gofpdi panics on streams it cannot parse.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pageops: importing pages: %v", r)
		}
	}()

	imp := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(src))
	for i := 1; i <= n; i++ {
		tplID := imp.ImportPageFromStream(pdf, &rs, i, "/MediaBox")
		w, h := a4Width, a4Height
		if mb, ok := imp.GetPageSizes()[i]["/MediaBox"]; ok && mb["w"] > 0 && mb["h"] > 0 {
			w, h = mb["w"], mb["h"]
		}
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, w, h)
		if overlay != nil {
			overlay(pdf, i, n, w, h)
		}
	}
	return pdf.Error()
}

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(false)
	return pdf
}

// transform imports src into a new document, applying overlay to each page.
func transform(src []byte, op string, overlay overlayFunc) ([]byte, error) {
	pdf := newDocument()
	if err := importAll(pdf, src, overlay); err != nil {
		return nil, fmt.Errorf("pageops: %s: %w", op, err)
	}
	return output(pdf, op)
}

func output(pdf *fpdf.Fpdf, op string) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pageops: %s: %w", op, err)
	}
	return buf.Bytes(), nil
}
