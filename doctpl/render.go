package doctpl

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anixcopiadora/docgen/layout"
	"github.com/anixcopiadora/docgen/table"
)

// ErrUnavailable is returned when rendering a template that has no content
// yet.
var ErrUnavailable = errors.New("doctpl: template not available")

// Options controls a render.
type Options struct {
	// Page is the page geometry; zero means layout.A4.
	Page     layout.Page
	Measurer layout.Measurer
	// Now stamps authentication tokens; zero means time.Now.
	Now time.Time
	// Tokens generates authentication tokens; nil means RandomTokens.
	Tokens TokenSource
}

type renderState struct {
	now    time.Time
	tokens TokenSource
	tok    string
}

func (s *renderState) token() string {
	if s.tok == "" {
		src := s.tokens
		if src == nil {
			src = RandomTokens
		}
		s.tok = src.Token(s.now)
	}
	return s.tok
}

// Render lays the template out for values and returns the operation stream.
// Rendering is pure apart from the token source: the same values, options
// and token produce the same stream.
func Render(tpl *Template, values Values, opts Options) ([]layout.Op, error) {
	if !tpl.Available() {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, tpl.ID)
	}
	if opts.Measurer == nil {
		return nil, errors.New("doctpl: nil measurer")
	}
	if tpl.texts == nil {
		c := *tpl
		if err := Compile(&c); err != nil {
			return nil, err
		}
		tpl = &c
	}
	page := opts.Page
	if page == (layout.Page{}) {
		page = layout.A4
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	if values == nil {
		values = Values{}
	}

	r := &renderer{
		tpl:   tpl,
		state: &renderState{now: now, tokens: opts.Tokens},
		font:  tpl.Font,
	}
	if r.font.Size == 0 {
		r.font = layout.Font{Size: 12}
	}
	r.values = values

	f := layout.NewFlow(page, opts.Measurer)
	if err := r.blocks(f, r.view(values), tpl.Blocks); err != nil {
		return nil, fmt.Errorf("doctpl: %s: %w", tpl.ID, err)
	}
	return f.Ops(), nil
}

type renderer struct {
	tpl    *Template
	state  *renderState
	font   layout.Font
	values Values
}

func (r *renderer) view(v Values) View { return View{v: v, state: r.state} }

func (r *renderer) exec(src string, view View) (string, error) {
	if src == "" {
		return "", nil
	}
	t := r.tpl.texts[src]
	if t == nil {
		var err error
		if t, err = parseText(src); err != nil {
			return "", err
		}
	}
	var b strings.Builder
	if err := t.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *renderer) blocks(f *layout.Flow, view View, bs []Block) error {
	for i, b := range bs {
		if !b.When.Eval(view.v) {
			continue
		}
		if err := r.block(f, view, b); err != nil {
			return fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
	}
	return nil
}

func (r *renderer) fonts(b Block) (body, title layout.Font) {
	body = b.Font
	if body.Size == 0 {
		body = r.font
	}
	title = b.TitleFont
	if title.Size == 0 {
		title = body.Bold()
	}
	return body, title
}

func (r *renderer) block(f *layout.Flow, view View, b Block) error {
	font, titleFont := r.fonts(b)
	text, err := r.exec(b.Text, view)
	if err != nil {
		return err
	}
	if b.OmitEmpty && strings.TrimSpace(text) == "" {
		return nil
	}
	x := b.X
	if x == 0 {
		x = f.Page.Margin
	}

	// Text color applies to the text-bearing kinds only.
	if b.Color != nil && b.Kind != BlockRule && b.Kind != BlockStamp {
		f.Emit(layout.SetTextColor{Color: *b.Color})
		defer f.Emit(layout.SetTextColor{Color: layout.Black})
	}

	switch b.Kind {
	case BlockTitle:
		cx := b.X
		if cx == 0 {
			cx = f.Page.Center()
		}
		f.Text(text, cx, b.Dy, layout.AlignCenter, font)
		f.Advance(b.After)

	case BlockText:
		align := b.Align
		if align == "" {
			align = layout.AlignLeft
		}
		f.Text(text, x, b.Dy, align, font)
		f.Advance(b.After)

	case BlockParagraph:
		f.Paragraph(r.para(b, text, font))

	case BlockClause, BlockSection:
		title, err := r.exec(b.Title, view)
		if err != nil {
			return err
		}
		gap := b.TitleGap
		if gap == 0 {
			gap = f.Page.LineHeight
		}
		if b.Kind == BlockClause {
			f.Clause(title, titleFont, gap, r.para(b, text, font))
		} else {
			f.Section(title, titleFont, gap, r.para(b, text, font))
		}

	case BlockRule:
		color := layout.Black
		if b.Color != nil {
			color = *b.Color
		}
		f.Rule(strokeOr(b.Stroke, 0.5), color)
		f.Advance(b.After)

	case BlockSpacer:
		f.Advance(b.After)

	case BlockGroup:
		return r.blocks(f, view, b.Blocks)

	case BlockColumns:
		var lerr, rerr error
		f.Columns(
			func(l *layout.Flow) { lerr = r.blocks(l, view, b.Left) },
			func(rf *layout.Flow) { rerr = r.blocks(rf, view, b.Right) },
		)
		if err := errors.Join(lerr, rerr); err != nil {
			return err
		}
		f.Advance(b.After)

	case BlockSignature:
		return r.signature(f, view, b, font)

	case BlockTable:
		return r.table(f, view, b, font)

	case BlockLedger:
		return r.ledger(f, view, b, x, font)

	case BlockChecklist:
		return r.checklist(f, b, x, font)

	case BlockEntries:
		return r.entries(f, b, x, font, titleFont)

	case BlockBullets:
		return r.bullets(f, b, x, font)

	case BlockImage:
		r.image(f, view, b, x)

	case BlockPageBreak:
		f.NewPage(topOr(b.Top, f.Page))

	case BlockEnsure:
		limit := b.Limit
		if limit == 0 {
			limit = f.Page.Threshold
		}
		f.Ensure(limit, topOr(b.Top, f.Page))

	case BlockStamp:
		r.stamp(f, b, text, font)

	default:
		return fmt.Errorf("unknown block kind %q", b.Kind)
	}
	return nil
}

func (r *renderer) para(b Block, text string, font layout.Font) layout.Para {
	return layout.Para{
		Text:       text,
		X:          b.X,
		Width:      b.Width,
		Dy:         b.Dy,
		LineHeight: b.LineHeight,
		Font:       font,
		After:      b.After,
		MinAdvance: b.Min,
	}
}

// signature draws each slot line at the cursor, its label centred 5mm below
// and the optional note 10mm below, then advances by After.
func (r *renderer) signature(f *layout.Flow, view View, b Block, font layout.Font) error {
	y := f.Y
	for _, s := range b.Slots {
		w := s.Width
		if w == 0 {
			w = 80
		}
		sx := s.X
		if sx == 0 {
			sx = f.Page.Margin
		}
		f.Emit(layout.DrawLine{X1: sx, Y1: y, X2: sx + w, Y2: y, Width: strokeOr(b.Stroke, 0.5)})

		label, err := r.exec(s.Label, view)
		if err != nil {
			return err
		}
		lx, align := sx+w/2, layout.AlignCenter
		if s.Align == layout.AlignLeft {
			lx, align = sx, layout.AlignLeft
		}
		f.Text(label, lx, 5, align, font)

		note, err := r.exec(s.Note, view)
		if err != nil {
			return err
		}
		if strings.TrimSpace(note) != "" {
			f.Text(note, lx, 10, align, font)
		}
	}
	f.Advance(b.After)
	return nil
}

func (r *renderer) table(f *layout.Flow, view View, b Block, font layout.Font) error {
	cols := make([]table.Column, len(b.Columns))
	for i, c := range b.Columns {
		h, err := r.exec(c.Header, view)
		if err != nil {
			return err
		}
		cols[i] = table.Column{Header: h, X: c.X, Align: c.Align}
	}
	t := table.New().SetColumns(cols...).SetStyle(table.DefaultStyle(font))
	if b.Width > 0 {
		t.SetWidth(b.Width)
	}
	for _, item := range r.items(b) {
		row := t.AddRow()
		iv := r.view(item)
		for _, c := range b.Columns {
			cell, err := r.exec(c.Value, iv)
			if err != nil {
				return err
			}
			row.AddCell(cell)
		}
	}
	if err := t.Render(f); err != nil {
		return err
	}
	f.Advance(b.After)
	return nil
}

// ledger draws a box around rows placed 7mm apart, labels on the left and
// values right-aligned 5mm inside the box.
func (r *renderer) ledger(f *layout.Flow, view View, b Block, x float64, font layout.Font) error {
	const pitch = 7
	w := b.Width
	if w == 0 {
		w = f.Page.ContentWidth()
	}
	h := float64(len(b.Rows))*pitch + 2
	f.Emit(layout.DrawRect{X: x, Y: f.Y, W: w, H: h, Width: strokeOr(b.Stroke, 0.2)})
	for i, row := range b.Rows {
		label, err := r.exec(row.Label, view)
		if err != nil {
			return err
		}
		value, err := r.exec(row.Value, view)
		if err != nil {
			return err
		}
		rf := font
		if row.Bold {
			rf = font.Bold()
		}
		dy := float64(i+1) * pitch
		f.Text(label, x+5, dy, layout.AlignLeft, rf)
		f.Text(value, x+w-5, dy, layout.AlignRight, rf)
	}
	f.Advance(h + b.After)
	return nil
}

// items returns the records iterated by a block: the Source record list,
// else the Source plain list as {"item": s}, else Defaults.
func (r *renderer) items(b Block) []Values {
	if recs := r.values.Records(b.Source); len(recs) > 0 {
		return recs
	}
	list := r.values.List(b.Source)
	if len(list) == 0 {
		list = b.Defaults
	}
	out := make([]Values, len(list))
	for i, s := range list {
		out[i] = Values{"item": s}
	}
	return out
}

// checklist prints, per item, its label at x and Aside at x+AsideX, the
// optional Note one line below, then advances by Pitch.
func (r *renderer) checklist(f *layout.Flow, b Block, x float64, font layout.Font) error {
	lh := lineHeightOr(b.LineHeight, f.Page)
	for _, item := range r.items(b) {
		iv := r.view(item)
		label, err := r.exec(b.Item, iv)
		if err != nil {
			return err
		}
		aside, err := r.exec(b.Aside, iv)
		if err != nil {
			return err
		}
		note, err := r.exec(b.Note, iv)
		if err != nil {
			return err
		}
		f.Text(label, x, 0, layout.AlignLeft, font)
		if aside != "" {
			f.Text(aside, x+b.AsideX, 0, layout.AlignLeft, font)
		}
		if note != "" {
			f.Text(note, x, lh, layout.AlignLeft, font)
		}
		f.Advance(b.Pitch)
	}
	f.Advance(b.After)
	return nil
}

// entries prints, per record, Item in the title font, Note one line below
// and Detail two lines below when it is not empty. The cursor advances by
// Pitch, plus one line when Detail was printed.
func (r *renderer) entries(f *layout.Flow, b Block, x float64, font, titleFont layout.Font) error {
	lh := lineHeightOr(b.LineHeight, f.Page)
	for _, item := range r.items(b) {
		iv := r.view(item)
		title, err := r.exec(b.Item, iv)
		if err != nil {
			return err
		}
		sub, err := r.exec(b.Note, iv)
		if err != nil {
			return err
		}
		detail, err := r.exec(b.Detail, iv)
		if err != nil {
			return err
		}
		f.Text(title, x, 0, layout.AlignLeft, titleFont)
		f.Text(sub, x, lh, layout.AlignLeft, font)
		adv := b.Pitch
		if strings.TrimSpace(detail) != "" {
			f.Text(detail, x, 2*lh, layout.AlignLeft, font)
			adv += lh
		}
		f.Advance(adv)
	}
	f.Advance(b.After)
	return nil
}

func (r *renderer) bullets(f *layout.Flow, b Block, x float64, font layout.Font) error {
	pitch := b.Pitch
	if pitch == 0 {
		pitch = lineHeightOr(b.LineHeight, f.Page)
	}
	for _, item := range r.items(b) {
		line, err := r.exec(b.Item, r.view(item))
		if err != nil {
			return err
		}
		f.Text(line, x, 0, layout.AlignLeft, font)
		f.Advance(pitch)
	}
	f.Advance(b.After)
	return nil
}

// image places the picture held by Source. A missing value places nothing
// and does not move the cursor.
func (r *renderer) image(f *layout.Flow, view View, b Block, x float64) {
	data, mime := view.v.Bytes(b.Source)
	if len(data) == 0 {
		return
	}
	y := b.Y
	if y == 0 {
		y = f.Y + b.Dy
	}
	f.Emit(layout.PlaceImage{
		Data:   data,
		Format: strings.TrimPrefix(mime, "image/"),
		X:      x, Y: y, W: b.Width, H: b.Height,
	})
	f.Advance(b.After)
}

// stamp draws the authentication footer at an absolute position: a gray
// rule, one text line every 4mm and, with a symbology, a barcode of the
// token at the right margin. The cursor does not move.
func (r *renderer) stamp(f *layout.Flow, b Block, text string, font layout.Font) {
	y := b.Y
	if y == 0 {
		y = f.Page.Height - 17
	}
	f.Emit(layout.DrawLine{
		X1: f.Page.Margin, Y1: y, X2: f.Page.Right(), Y2: y,
		Width: strokeOr(b.Stroke, 0.5), Color: layout.Gray(200),
	})
	color := layout.Gray(100)
	if b.Color != nil {
		color = *b.Color
	}
	f.Emit(layout.SetTextColor{Color: color})
	for i, line := range strings.Split(text, "\n") {
		f.Emit(layout.PlaceText{Text: line, X: f.Page.Margin, Y: y + 5 + 4*float64(i), Align: layout.AlignLeft, Font: font})
	}
	f.Emit(layout.SetTextColor{Color: layout.Black})

	if b.Symbology != "" {
		size := b.Height
		if size == 0 {
			size = 14
		}
		f.Emit(layout.PlaceBarcode{
			Payload:   r.state.token(),
			Symbology: b.Symbology,
			X:         f.Page.Right() - size,
			Y:         y + 1,
			Size:      size,
		})
	}
}

func strokeOr(w, def float64) float64 {
	if w == 0 {
		return def
	}
	return w
}

func topOr(top float64, p layout.Page) float64 {
	if top == 0 {
		return p.Top
	}
	return top
}

func lineHeightOr(lh float64, p layout.Page) float64 {
	if lh == 0 {
		return p.LineHeight
	}
	return lh
}
