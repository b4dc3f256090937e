package layout

import "strings"

// Measurer reports the rendered width of s in font, in page units.
// It is supplied by the rendering backend.
type Measurer interface {
	StringWidth(s string, font Font) float64
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(s string, font Font) float64

func (f MeasurerFunc) StringWidth(s string, font Font) float64 { return f(s, font) }

// Wrap splits text into lines no wider than width. Explicit newlines always
// break, blank lines are kept, words are packed greedily and a single word
// wider than the line is broken between runes.
func Wrap(text string, width float64, font Font, m Measurer) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		out = append(out, wrapParagraph(para, width, font, m)...)
	}
	return out
}

func wrapParagraph(para string, width float64, font Font, m Measurer) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		cur   string
	)
	for _, w := range words {
		if cur == "" {
			cur = w
		} else if cand := cur + " " + w; m.StringWidth(cand, font) <= width {
			cur = cand
			continue
		} else {
			lines = append(lines, cur)
			cur = w
		}
		for m.StringWidth(cur, font) > width {
			head, tail := breakWord(cur, width, font, m)
			if tail == "" {
				break
			}
			lines = append(lines, head)
			cur = tail
		}
	}
	return append(lines, cur)
}

// breakWord returns the longest prefix of w that fits, at least one rune.
func breakWord(w string, width float64, font Font, m Measurer) (string, string) {
	runes := []rune(w)
	n := 1
	for n < len(runes) && m.StringWidth(string(runes[:n+1]), font) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
