package docgen

import (
	"time"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/layout"
	"github.com/anixcopiadora/docgen/pageops"
	"github.com/anixcopiadora/docgen/pdfbackend"
	"github.com/anixcopiadora/docgen/registry"
)

// Option is a functional option for configuring a Generator via New.
type Option func(*config)

type config struct {
	registry  *registry.Registry
	measurer  layout.Measurer
	backend   []pdfbackend.Option
	clock     func() time.Time
	tokens    doctpl.TokenSource
	author    string
	watermark *pageops.TextWatermark
	numbers   string
}

// WithRegistry replaces the built-in template catalogue.
func WithRegistry(r *registry.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithMeasurer replaces the font metrics used for line wrapping.
func WithMeasurer(m layout.Measurer) Option {
	return func(c *config) {
		c.measurer = m
	}
}

// WithBackendOptions passes extra options to the PDF renderer, after the
// ones the Generator sets itself.
func WithBackendOptions(opts ...pdfbackend.Option) Option {
	return func(c *config) {
		c.backend = append(c.backend, opts...)
	}
}

// WithClock sets the time source for creation dates and authentication
// tokens. A fixed clock together with a fixed token source makes output
// reproducible byte for byte.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.clock = now
	}
}

// WithTokenSource sets the generator of authentication stamp codes.
func WithTokenSource(ts doctpl.TokenSource) Option {
	return func(c *config) {
		c.tokens = ts
	}
}

// WithAuthor sets the author written to the document information.
func WithAuthor(author string) Option {
	return func(c *config) {
		c.author = author
	}
}

// WithWatermark stamps previews with wm.
func WithWatermark(wm pageops.TextWatermark) Option {
	return func(c *config) {
		c.watermark = &wm
	}
}

// WithPageNumbers adds a footer to every page. format receives the page
// number and the page count; empty means "Página %d de %d".
func WithPageNumbers(format string) Option {
	return func(c *config) {
		if format == "" {
			format = PageNumberFormat
		}
		c.numbers = format
	}
}
