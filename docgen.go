// Package docgen turns a template id and a set of form values into a PDF
// document. It ties together the template catalogue, the layout engine and
// the PDF backend, and applies the optional post-processing steps.
//
// Example:
//
//	g := docgen.New(docgen.WithAuthor("Anix Copiadora"))
//	doc, err := g.Render(ctx, "recibo_aluguel", doctpl.Values{
//	    "locatario_nome": "Maria",
//	    "valor_aluguel":  "1500,00",
//	})
//	if err != nil {
//	    return err
//	}
//	_, err = doc.Save("out")
package docgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/export"
	"github.com/anixcopiadora/docgen/layout"
	"github.com/anixcopiadora/docgen/pageops"
	"github.com/anixcopiadora/docgen/pdfbackend"
	"github.com/anixcopiadora/docgen/registry"
)

// Creator is written to the document information of every PDF.
const Creator = "Gerador de Documentos Diversos - Anix Copiadora"

// PageNumberFormat is the default page footer.
const PageNumberFormat = "Página %d de %d"

// Generator renders documents. It holds no per-document state and is safe
// for concurrent use.
type Generator struct {
	cfg config
}

// New returns a Generator. Without options it uses the built-in catalogue,
// core font metrics and the wall clock.
func New(opts ...Option) *Generator {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = registry.Default()
	}
	if cfg.measurer == nil {
		cfg.measurer = pdfbackend.NewMeasurer()
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}
	if cfg.tokens == nil {
		cfg.tokens = doctpl.RandomTokens
	}
	return &Generator{cfg: cfg}
}

// Registry returns the template catalogue in use.
func (g *Generator) Registry() *registry.Registry { return g.cfg.registry }

// Template looks a template up by id.
func (g *Generator) Template(id string) (*doctpl.Template, error) {
	tpl, ok := g.cfg.registry.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return tpl, nil
}

// Ops lays the document out and returns the operation stream without
// encoding it.
func (g *Generator) Ops(id string, values doctpl.Values) ([]layout.Op, error) {
	ops, _, err := g.layout(id, values, g.cfg.clock())
	if err != nil {
		return nil, newDocError("Ops", id, err)
	}
	return ops, nil
}

// Render produces the final document.
func (g *Generator) Render(ctx context.Context, id string, values doctpl.Values) (*export.Document, error) {
	doc, err := g.produce(ctx, id, values, false)
	if err != nil {
		return nil, newDocError("Render", id, err)
	}
	return doc, nil
}

// Print produces a document that opens the print dialog when displayed.
func (g *Generator) Print(ctx context.Context, id string, values doctpl.Values) (*export.Document, error) {
	doc, err := g.produce(ctx, id, values, true)
	if err != nil {
		return nil, newDocError("Print", id, err)
	}
	return doc, nil
}

// Preview produces the on-screen rendition, watermarked when configured.
// Templates that cannot render yet have no preview: the result is nil
// without an error.
func (g *Generator) Preview(ctx context.Context, id string, values doctpl.Values) (*export.Document, error) {
	doc, err := g.produce(ctx, id, values, false)
	if errors.Is(err, ErrUnavailable) {
		return nil, nil
	}
	if err != nil {
		return nil, newDocError("Preview", id, err)
	}
	if g.cfg.watermark == nil {
		return doc, nil
	}
	data, err := pageops.Watermark(doc.Data, *g.cfg.watermark)
	if err != nil {
		return nil, newDocError("Preview", id, err)
	}
	doc.Data = data
	return doc, nil
}

func (g *Generator) layout(id string, values doctpl.Values, now time.Time) ([]layout.Op, *doctpl.Template, error) {
	tpl, err := g.Template(id)
	if err != nil {
		return nil, nil, err
	}
	ops, err := doctpl.Render(tpl, values, doctpl.Options{
		Measurer: g.cfg.measurer,
		Now:      now,
		Tokens:   g.cfg.tokens,
	})
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, tpl, err
		}
		return nil, tpl, fmt.Errorf("%w: %w", ErrRender, err)
	}
	if g.cfg.numbers != "" {
		ops = layout.Footers(ops, layout.A4, layout.Font{Size: 8}, func(i, n int) string {
			return fmt.Sprintf(g.cfg.numbers, i, n)
		})
	}
	return ops, tpl, nil
}

func (g *Generator) produce(ctx context.Context, id string, values doctpl.Values, autoPrint bool) (*export.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := g.cfg.clock()
	ops, tpl, err := g.layout(id, values, now)
	if err != nil {
		return nil, err
	}

	opts := []pdfbackend.Option{
		pdfbackend.WithCreationDate(now),
		pdfbackend.WithMetadata(pdfbackend.Metadata{
			Title:   tpl.Title,
			Author:  g.cfg.author,
			Subject: tpl.Description,
			Creator: Creator,
		}),
		pdfbackend.WithAutoPrint(autoPrint),
	}
	data, err := pdfbackend.New(append(opts, g.cfg.backend...)...).Render(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return &export.Document{Name: tpl.ID, Title: tpl.Title, Data: data}, nil
}
