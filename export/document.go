// Package export holds rendered documents and the ways they leave the
// program: saved files, data URLs for embedding and sharing.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/anixcopiadora/docgen/pageops"
)

// MIMEType is the media type of every exported document.
const MIMEType = "application/pdf"

// Document is a finished PDF. It is immutable; the accessors never copy
// Data, so callers must not modify the returned slice.
type Document struct {
	// Name is the template id; the file name is Name + ".pdf".
	Name  string
	Title string
	Data  []byte
}

// FileName returns the name the document is saved and shared under.
func (d *Document) FileName() string { return d.Name + ".pdf" }

// Bytes returns the PDF content.
func (d *Document) Bytes() []byte { return d.Data }

// Size returns the PDF length in bytes.
func (d *Document) Size() int { return len(d.Data) }

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Data)
	return int64(n), err
}

// Save writes the document to dir and returns the path written.
func (d *Document) Save(dir string) (string, error) {
	if d.Name == "" {
		return "", fmt.Errorf("export: document has no name")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, d.FileName())
	if err := os.WriteFile(path, d.Data, 0o644); err != nil {
		return "", fmt.Errorf("export: writing %s: %w", path, err)
	}
	return path, nil
}

// DataURL returns the document as a base64 data URL.
func (d *Document) DataURL() string {
	return "data:" + MIMEType + ";base64," + base64.StdEncoding.EncodeToString(d.Data)
}

// PreviewURL is DataURL with the viewer toolbar hidden.
func (d *Document) PreviewURL() string { return d.DataURL() + "#toolbar=0" }

// PageCount parses the document and returns its number of pages.
func (d *Document) PageCount() (int, error) { return pageops.PageCount(d.Data) }

// Text extracts the plain text of the document, page by page.
func (d *Document) Text() (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(d.Data), int64(len(d.Data)))
	if err != nil {
		return "", fmt.Errorf("export: reading %s: %w", d.FileName(), err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("export: page %d: %w", i, err)
		}
		if i > 1 {
			b.WriteByte('\f')
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
