package layout

// Footers returns ops with one footer line centred at the bottom of every
// page. text receives the 1-based page number and the page count.
func Footers(ops []Op, p Page, font Font, text func(page, pages int) string) []Op {
	n := CountPages(ops)
	out := make([]Op, 0, len(ops)+n)
	page := 1
	footer := func() {
		out = append(out, PlaceText{Text: text(page, n), X: p.Center(), Y: p.Height - 4, Align: AlignCenter, Font: font})
	}
	for _, op := range ops {
		if _, ok := op.(AddPage); ok {
			footer()
			page++
		}
		out = append(out, op)
	}
	footer()
	return out
}
