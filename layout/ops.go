// Package layout turns document content into an ordered stream of drawing
// operations on fixed-size pages.
//
// The stream is consumed by a rendering backend in emission order: later
// operations may overlay earlier ones, and the vertical cursor lives only in
// the emitting Flow, never in the backend.
package layout

import "fmt"

// Align is a horizontal text alignment relative to the anchor x.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font style letters follow the usual core-font convention.
const (
	StyleNormal = ""
	StyleBold   = "B"
	StyleItalic = "I"
)

// Font selects a face for text operations. Family defaults to Helvetica.
type Font struct {
	Family string  `json:"family,omitempty" yaml:"family,omitempty"`
	Style  string  `json:"style,omitempty" yaml:"style,omitempty"`
	Size   float64 `json:"size" yaml:"size"`
}

// Bold returns a copy of f with the bold style.
func (f Font) Bold() Font {
	f.Style = StyleBold
	return f
}

// Normal returns a copy of f with the regular style.
func (f Font) Normal() Font {
	f.Style = StyleNormal
	return f
}

// Sized returns a copy of f at the given point size.
func (f Font) Sized(size float64) Font {
	f.Size = size
	return f
}

// Color is an RGB color with 0-255 components.
type Color struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// Gray returns the gray level v on all three channels.
func Gray(v int) Color { return Color{v, v, v} }

// Black is the default text and stroke color.
var Black = Color{}

// Op is a single drawing operation.
type Op interface {
	Kind() string
}

// PlaceText draws a single line with its baseline at Y.
type PlaceText struct {
	Text  string
	X, Y  float64
	Align Align
	Font  Font
}

// PlaceWrappedText draws already wrapped lines, the first baseline at Y and
// each following one LineHeight below.
type PlaceWrappedText struct {
	Lines      []string
	X, Y       float64
	MaxWidth   float64
	LineHeight float64
	Font       Font
}

// DrawLine strokes a segment.
type DrawLine struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          Color
}

// DrawRect draws a rectangle, stroked and optionally filled.
type DrawRect struct {
	X, Y, W, H float64
	Width      float64
	Filled     bool
	NoStroke   bool // fill only
	Fill       Color
	Stroke     Color
}

// SetTextColor changes the color of subsequent text operations.
type SetTextColor struct {
	Color Color
}

// AddPage starts a new page.
type AddPage struct{}

// PlaceImage draws an encoded image. Format is the image type as understood
// by the backend ("png", "jpg", "gif"); empty means sniff from Data.
type PlaceImage struct {
	Data       []byte
	Format     string
	X, Y, W, H float64
}

// Barcode symbologies understood by PlaceBarcode.
const (
	SymbologyQR     = "qr"
	SymbologyPDF417 = "pdf417"
)

// PlaceBarcode draws a barcode encoding Payload in a Size x Size box
// (Size x Size/3 for PDF417). Symbology defaults to QR.
type PlaceBarcode struct {
	Payload   string
	Symbology string
	X, Y      float64
	Size      float64
}

func (PlaceText) Kind() string        { return "text" }
func (PlaceWrappedText) Kind() string { return "wrapped_text" }
func (DrawLine) Kind() string         { return "line" }
func (DrawRect) Kind() string         { return "rect" }
func (SetTextColor) Kind() string     { return "text_color" }
func (AddPage) Kind() string          { return "page" }
func (PlaceImage) Kind() string       { return "image" }
func (PlaceBarcode) Kind() string     { return "barcode" }

// Describe renders op on one line for debugging and text dumps.
func Describe(op Op) string {
	switch o := op.(type) {
	case PlaceText:
		return fmt.Sprintf("text %.1f,%.1f %s %q", o.X, o.Y, o.Align, o.Text)
	case PlaceWrappedText:
		return fmt.Sprintf("wrapped %.1f,%.1f w=%.1f lines=%d", o.X, o.Y, o.MaxWidth, len(o.Lines))
	case DrawLine:
		return fmt.Sprintf("line %.1f,%.1f-%.1f,%.1f", o.X1, o.Y1, o.X2, o.Y2)
	case DrawRect:
		return fmt.Sprintf("rect %.1f,%.1f %.1fx%.1f filled=%t", o.X, o.Y, o.W, o.H, o.Filled)
	case SetTextColor:
		return fmt.Sprintf("color %d,%d,%d", o.Color.R, o.Color.G, o.Color.B)
	case AddPage:
		return "page"
	case PlaceImage:
		return fmt.Sprintf("image %.1f,%.1f %.1fx%.1f %d bytes", o.X, o.Y, o.W, o.H, len(o.Data))
	case PlaceBarcode:
		return fmt.Sprintf("barcode %.1f,%.1f %.1f", o.X, o.Y, o.Size)
	default:
		return op.Kind()
	}
}
