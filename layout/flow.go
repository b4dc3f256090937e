package layout

// Flow is the flow cursor: it tracks the vertical position on the current
// page and records the operations placed so far.
type Flow struct {
	Page Page
	// Y is the baseline of the next placement.
	Y float64

	m     Measurer
	ops   []Op
	pages int
}

// NewFlow returns a Flow positioned at the top of the first page. The first
// page is implicit; no AddPage is emitted for it.
func NewFlow(p Page, m Measurer) *Flow {
	return &Flow{Page: p, Y: p.Top, m: m, pages: 1}
}

// Emit appends op as is. AddPage operations are counted.
func (f *Flow) Emit(op Op) {
	if _, ok := op.(AddPage); ok {
		f.pages++
	}
	f.ops = append(f.ops, op)
}

// Ops returns the operations emitted so far.
func (f *Flow) Ops() []Op { return f.ops }

// Pages reports how many pages the stream spans.
func (f *Flow) Pages() int { return f.pages }

// Measurer returns the measurer used for wrapping.
func (f *Flow) Measurer() Measurer { return f.m }

// Advance moves the cursor down by dy.
func (f *Flow) Advance(dy float64) { f.Y += dy }

// NewPage emits an AddPage and moves the cursor to top.
func (f *Flow) NewPage(top float64) {
	f.Emit(AddPage{})
	f.Y = top
}

// Ensure starts a new page, with the cursor at top, when the cursor is
// below limit. It reports whether a page was added.
func (f *Flow) Ensure(limit, top float64) bool {
	if f.Y <= limit {
		return false
	}
	f.NewPage(top)
	return true
}

// Text places a single line at the cursor shifted by dy, without advancing.
func (f *Flow) Text(s string, x, dy float64, align Align, font Font) {
	f.Emit(PlaceText{Text: s, X: x, Y: f.Y + dy, Align: align, Font: font})
}

// Para describes a wrapped paragraph. Zero X and Width mean the left margin
// and the content width; zero LineHeight means the page line height.
type Para struct {
	Text       string
	X          float64
	Width      float64
	Dy         float64
	LineHeight float64
	Font       Font
	// After is added to the natural height lines*LineHeight.
	After float64
	// MinAdvance is the least the cursor moves, whatever the line count.
	MinAdvance float64
}

// Paragraph wraps p to its width, places the lines at the cursor and
// advances by max(lines*LineHeight+After, MinAdvance). It returns the
// number of lines placed.
func (f *Flow) Paragraph(p Para) int {
	x, width, lh := p.X, p.Width, p.LineHeight
	if x == 0 {
		x = f.Page.Margin
	}
	if width == 0 {
		width = f.Page.Right() - x
	}
	if lh == 0 {
		lh = f.Page.LineHeight
	}
	lines := Wrap(p.Text, width, p.Font, f.m)
	f.Emit(PlaceWrappedText{
		Lines:      lines,
		X:          x,
		Y:          f.Y + p.Dy,
		MaxWidth:   width,
		LineHeight: lh,
		Font:       p.Font,
	})
	adv := float64(len(lines))*lh + p.After
	if adv < p.MinAdvance {
		adv = p.MinAdvance
	}
	f.Advance(adv)
	return len(lines)
}

// Clause places a titled body. Before the title it applies the look-ahead
// check: a cursor past the page threshold moves the whole clause to a new
// page. The body itself is never split, so a single very long body can
// still run past the bottom edge.
func (f *Flow) Clause(title string, titleFont Font, titleGap float64, body Para) int {
	f.Ensure(f.Page.Threshold, f.Page.Top)
	return f.Section(title, titleFont, titleGap, body)
}

// Section is Clause without the look-ahead check.
func (f *Flow) Section(title string, titleFont Font, titleGap float64, body Para) int {
	f.Text(title, f.Page.Margin, 0, AlignLeft, titleFont)
	f.Advance(titleGap)
	return f.Paragraph(body)
}

// Rule strokes a horizontal line across the content width at the cursor.
func (f *Flow) Rule(width float64, color Color) {
	f.Emit(DrawLine{
		X1: f.Page.Margin, Y1: f.Y,
		X2: f.Page.Right(), Y2: f.Y,
		Width: width, Color: color,
	})
}

// Columns lays out two independent columns starting at the current cursor.
// Each callback receives its own Flow sharing the page geometry; the
// operations are merged left then right and the cursor continues at the
// lower of the two. Columns that add pages are not supported: page breaks
// emitted inside a column are kept but the column cursors are not reconciled.
func (f *Flow) Columns(left, right func(*Flow)) {
	start := f.Y
	l := &Flow{Page: f.Page, Y: start, m: f.m}
	r := &Flow{Page: f.Page, Y: start, m: f.m}
	if left != nil {
		left(l)
	}
	if right != nil {
		right(r)
	}
	for _, op := range l.ops {
		f.Emit(op)
	}
	for _, op := range r.ops {
		f.Emit(op)
	}
	f.Y = max(l.Y, r.Y)
}
