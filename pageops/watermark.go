package pageops

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// TextWatermark defines a text-based watermark.
type TextWatermark struct {
	Text     string   // watermark text
	FontSize float64  // font size in points (default: 60)
	Color    RGBColor // text color (default: light gray)
	Opacity  float64  // 0.0 to 1.0 (default: 0.3)
	Angle    float64  // rotation angle in degrees (default: 45)
}

// PreviewWatermark marks documents that are only meant for on-screen review.
var PreviewWatermark = TextWatermark{Text: "PRÉ-VISUALIZAÇÃO"}

// Watermark overlays wm diagonally across every page of src.
func Watermark(src []byte, wm TextWatermark) ([]byte, error) {
	if wm.Text == "" {
		return nil, fmt.Errorf("pageops: watermark: empty text")
	}
	if wm.FontSize == 0 {
		wm.FontSize = 60
	}
	if wm.Opacity == 0 {
		wm.Opacity = 0.3
	}
	if wm.Angle == 0 {
		wm.Angle = 45
	}
	if wm.Color == (RGBColor{}) {
		wm.Color = RGBColor{200, 200, 200}
	}
	return transform(src, "watermark", func(pdf *fpdf.Fpdf, _, _ int, w, h float64) {
		drawTextWatermark(pdf, wm, w, h)
	})
}

// drawTextWatermark renders the watermark text centered on the current page.
func drawTextWatermark(pdf *fpdf.Fpdf, wm TextWatermark, pageW, pageH float64) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := tr(wm.Text)

	pdf.SetFont("Helvetica", "B", wm.FontSize)
	pdf.SetTextColor(wm.Color.R, wm.Color.G, wm.Color.B)
	pdf.SetAlpha(wm.Opacity, "Normal")

	textW := pdf.GetStringWidth(text)
	cx, cy := pageW/2, pageH/2

	pdf.TransformBegin()
	pdf.TransformRotate(wm.Angle, cx, cy)
	// A third of the font size roughly centres the baseline.
	pdf.Text(cx-textW/2, cy+wm.FontSize/3, text)
	pdf.TransformEnd()

	pdf.SetAlpha(1.0, "Normal")
}

// PageNumberStyle defines the appearance and position of page numbers.
type PageNumberStyle struct {
	Format   string   // receives page number and total (default: "Página %d de %d")
	Position Position // where to place the number (default: BottomCenter)
	FontSize float64  // font size in points (default: 9)
	Color    RGBColor // text color (default: black)
	Margin   float64  // margin from page edge in points (default: 20)
}

// NumberPages prints "Página i de n" footers on every page of src.
func NumberPages(src []byte, style PageNumberStyle) ([]byte, error) {
	if style.Format == "" {
		style.Format = "Página %d de %d"
	}
	if style.FontSize == 0 {
		style.FontSize = 9
	}
	if style.Margin == 0 {
		style.Margin = 20
	}
	return transform(src, "page numbers", func(pdf *fpdf.Fpdf, i, n int, w, h float64) {
		tr := pdf.UnicodeTranslatorFromDescriptor("")
		text := tr(fmt.Sprintf(style.Format, i, n))
		pdf.SetFont("Helvetica", "", style.FontSize)
		pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)
		x, y := calculatePosition(style.Position, w, h, pdf.GetStringWidth(text), style.FontSize, style.Margin)
		pdf.Text(x, y, text)
	})
}

// calculatePosition returns x, y coordinates for text placement.
func calculatePosition(pos Position, pageW, pageH, textW, textH, margin float64) (x, y float64) {
	switch pos {
	case TopLeft:
		return margin, margin + textH
	case TopCenter:
		return (pageW - textW) / 2, margin + textH
	case TopRight:
		return pageW - textW - margin, margin + textH
	case BottomLeft:
		return margin, pageH - margin
	case BottomRight:
		return pageW - textW - margin, pageH - margin
	case Center:
		return (pageW - textW) / 2, pageH / 2
	default:
		return (pageW - textW) / 2, pageH - margin
	}
}
