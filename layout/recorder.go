package layout

import "strings"

// Renderer consumes an operation stream and produces a document artifact.
type Renderer interface {
	Render(ops []Op) ([]byte, error)
}

// Recorder is an in-memory Renderer. It keeps the last stream it was given
// and renders it as plain text, one line per text line placed, with a form
// feed between pages.
type Recorder struct {
	Ops []Op
}

// Render records ops and returns their text.
func (r *Recorder) Render(ops []Op) ([]byte, error) {
	r.Ops = append(r.Ops[:0], ops...)
	return []byte(Text(ops)), nil
}

// Text returns the text of the recorded stream.
func (r *Recorder) Text() string { return Text(r.Ops) }

// Contains reports whether the recorded text holds s, treating any run of
// whitespace, line breaks included, as a single space.
func (r *Recorder) Contains(s string) bool {
	return strings.Contains(squash(r.Text()), squash(s))
}

// Pages counts the pages of the recorded stream.
func (r *Recorder) Pages() int { return CountPages(r.Ops) }

// Text extracts the text of ops in emission order.
func Text(ops []Op) string {
	var b strings.Builder
	for _, op := range ops {
		switch o := op.(type) {
		case PlaceText:
			b.WriteString(o.Text)
			b.WriteByte('\n')
		case PlaceWrappedText:
			for _, l := range o.Lines {
				b.WriteString(l)
				b.WriteByte('\n')
			}
		case AddPage:
			b.WriteByte('\f')
		}
	}
	return b.String()
}

// CountPages returns 1 plus the number of AddPage operations.
func CountPages(ops []Op) int {
	n := 1
	for _, op := range ops {
		if _, ok := op.(AddPage); ok {
			n++
		}
	}
	return n
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
