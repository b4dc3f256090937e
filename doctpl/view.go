package doctpl

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/anixcopiadora/docgen/extenso"
)

// View is the dot of every block template. Each helper takes the field name
// and, where a value may be missing, the placeholder printed instead.
type View struct {
	v     Values
	state *renderState
}

// NewView returns a View over v without render state; Token is empty.
func NewView(v Values) View { return View{v: v} }

// Values exposes the underlying map.
func (w View) Values() Values { return w.v }

// Get returns the value as text, "" when missing.
func (w View) Get(name string) string { return w.v.String(name) }

// Or returns the value or fallback when it is empty.
func (w View) Or(name, fallback string) string {
	if s := w.v.String(name); s != "" {
		return s
	}
	return fallback
}

// Is reports whether the value equals want.
func (w View) Is(name, want string) bool { return w.v.String(name) == want }

// Has reports whether the value is filled in.
func (w View) Has(name string) bool { return w.v.Present(name) }

// Upper returns the value in capitals, or fallback.
func (w View) Upper(name, fallback string) string {
	if s := w.v.String(name); s != "" {
		return strings.ToUpper(s)
	}
	return fallback
}

// Words spells the amount held by the value, or returns fallback when it
// cannot be parsed.
func (w View) Words(name, fallback string) string {
	if s := extenso.Amount(w.v.String(name)); s != "" {
		return s
	}
	return fallback
}

// Date formats an ISO date as dd/mm/yyyy, or returns fallback.
func (w View) Date(name, fallback string) string {
	s := w.v.String(name)
	if s == "" {
		return fallback
	}
	return ShortDate(s)
}

// LongDate formats an ISO date as "2 de março de 2024", or returns fallback.
func (w View) LongDate(name, fallback string) string {
	if s := LongDate(w.v.String(name)); s != "" {
		return s
	}
	return fallback
}

// Number parses the value leniently.
func (w View) Number(name string) float64 { return w.v.Number(name) }

// Mark returns "X" when the value is option and "__" otherwise, for
// printed option boxes.
func (w View) Mark(name, option string) string {
	if w.v.String(name) == option {
		return "X"
	}
	return "__"
}

// Prefix returns the first n characters of the value, or fallback.
func (w View) Prefix(name string, n int, fallback string) string {
	r := []rune(w.v.String(name))
	if len(r) == 0 {
		return fallback
	}
	return string(r[:min(n, len(r))])
}

// Rest returns the value without its first n characters, or fallback when
// the value is empty.
func (w View) Rest(name string, n int, fallback string) string {
	r := []rune(w.v.String(name))
	if len(r) == 0 {
		return fallback
	}
	return string(r[min(n, len(r)):])
}

// Join concatenates a list value.
func (w View) Join(name, sep string) string { return strings.Join(w.v.List(name), sep) }

// Total sums quantity times unit price over a record list.
func (w View) Total(list, qty, price string) float64 {
	var total float64
	for _, r := range w.v.Records(list) {
		total += r.Number(qty) * r.Number(price)
	}
	return total
}

// Token returns the authentication token of the current render. It is
// generated on first use so documents without a stamp stay deterministic.
func (w View) Token() string {
	if w.state == nil {
		return ""
	}
	return w.state.token()
}

var funcs = template.FuncMap{
	// money formats with two decimals and a decimal comma.
	"money":  extenso.Decimal,
	"number": extenso.Number,
	"words": func(v float64, fallback string) string {
		if s := extenso.AmountFloat(v); s != "" {
			return s
		}
		return fallback
	},
	"mul": func(a, b float64) float64 { return a * b },
	"sub": func(a float64, bs ...float64) float64 {
		for _, b := range bs {
			a -= b
		}
		return a
	},
}

// Compile parses every text body of t so rendering never parses. It must be
// called before t is shared between goroutines.
func Compile(t *Template) error {
	texts := map[string]*template.Template{}
	var walk func([]Block) error
	add := func(src string) error {
		if src == "" || texts[src] != nil {
			return nil
		}
		tt, err := parseText(src)
		if err != nil {
			return fmt.Errorf("doctpl: template %s: %w", t.ID, err)
		}
		texts[src] = tt
		return nil
	}
	walk = func(bs []Block) error {
		for _, b := range bs {
			srcs := []string{b.Text, b.Title, b.Item, b.Detail, b.Aside, b.Note}
			for _, s := range b.Slots {
				srcs = append(srcs, s.Label, s.Note)
			}
			for _, r := range b.Rows {
				srcs = append(srcs, r.Label, r.Value)
			}
			for _, c := range b.Columns {
				srcs = append(srcs, c.Header, c.Value)
			}
			for _, s := range srcs {
				if err := add(s); err != nil {
					return err
				}
			}
			for _, children := range [][]Block{b.Blocks, b.Left, b.Right} {
				if err := walk(children); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(t.Blocks); err != nil {
		return err
	}
	t.texts = texts
	return nil
}

// MustCompile is Compile for statically defined templates.
func MustCompile(t *Template) *Template {
	if err := Compile(t); err != nil {
		panic(err)
	}
	return t
}

func parseText(src string) (*template.Template, error) {
	return template.New("").Funcs(funcs).Option("missingkey=error").Parse(src)
}
