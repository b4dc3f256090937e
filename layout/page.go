package layout

// Page holds the fixed page geometry in millimetres.
type Page struct {
	Width  float64
	Height float64
	// Margin is applied on both sides.
	Margin float64
	// Top is where the cursor starts on every page.
	Top float64
	// Threshold is the look-ahead limit: a clause that would start below
	// it moves to a new page.
	Threshold  float64
	LineHeight float64
	// Gap separates consecutive blocks.
	Gap float64
}

// A4 is the portrait page every document uses.
var A4 = Page{
	Width:      210,
	Height:     297,
	Margin:     20,
	Top:        20,
	Threshold:  270,
	LineHeight: 5,
	Gap:        5,
}

// ContentWidth is the printable width between the side margins.
func (p Page) ContentWidth() float64 { return p.Width - 2*p.Margin }

// Center is the horizontal middle of the page.
func (p Page) Center() float64 { return p.Width / 2 }

// Right is the x of the right margin.
func (p Page) Right() float64 { return p.Width - p.Margin }
