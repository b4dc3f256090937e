package pdfbackend

import "time"

// Metadata is written to the document information dictionary.
type Metadata struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Subject  string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Creator  string `json:"creator,omitempty" yaml:"creator,omitempty"`
	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	meta      Metadata
	created   time.Time
	autoPrint bool
	compress  bool
}

// WithMetadata sets the document information.
func WithMetadata(m Metadata) Option {
	return func(c *config) {
		c.meta = m
	}
}

// WithCreationDate fixes the creation date. Together with sorted catalog
// output it makes rendering byte-for-byte reproducible.
func WithCreationDate(t time.Time) Option {
	return func(c *config) {
		c.created = t
	}
}

// WithAutoPrint makes viewers open the print dialog when the document is
// opened.
func WithAutoPrint(on bool) Option {
	return func(c *config) {
		c.autoPrint = on
	}
}

// WithCompression toggles content stream compression (default on).
func WithCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}
