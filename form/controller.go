package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/export"
	"github.com/anixcopiadora/docgen/preview"
	"github.com/anixcopiadora/docgen/registry"
)

// Renderer produces documents; *docgen.Generator implements it.
type Renderer interface {
	Render(ctx context.Context, id string, values doctpl.Values) (*export.Document, error)
	Preview(ctx context.Context, id string, values doctpl.Values) (*export.Document, error)
	Print(ctx context.Context, id string, values doctpl.Values) (*export.Document, error)
}

// NoticeLevel grades a user-facing notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeError
)

// Notice is a message for the user. Failed exports surface as notices and
// leave the session untouched.
type Notice struct {
	Level   NoticeLevel
	Message string
	Err     error
}

// UnavailableNotice is shown for templates that cannot render yet.
const UnavailableNotice = "Este modelo estará disponível em breve."

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithPreviewDelay sets the quiet period before the preview is regenerated.
func WithPreviewDelay(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.delay = d
	}
}

// WithSharer sets the platform share target. Without one, Share reports
// that sharing is unsupported.
func WithSharer(s export.Sharer) ControllerOption {
	return func(c *Controller) {
		c.sharer = s
	}
}

// OnPreview registers fn to receive every regenerated preview. It is
// called from the debouncer goroutine, or from Refresh.
func OnPreview(fn func(*export.Document)) ControllerOption {
	return func(c *Controller) {
		c.onPreview = fn
	}
}

// OnNotice registers fn to receive notices.
func OnNotice(fn func(Notice)) ControllerOption {
	return func(c *Controller) {
		c.onNotice = fn
	}
}

// Controller drives one editing session at a time: selecting a template
// discards the previous session, every edit reschedules the preview and the
// export actions render the current values on demand. It is safe for
// concurrent use.
type Controller struct {
	reg       *registry.Registry
	gen       Renderer
	sharer    export.Sharer
	delay     time.Duration
	onPreview func(*export.Document)
	onNotice  func(Notice)

	mu        sync.Mutex
	session   *Session
	// epoch identifies the session a pending preview was scheduled for.
	epoch     uint64
	preview   *export.Document
	debouncer *preview.Debouncer
}

// NewController returns a Controller with no template selected.
func NewController(reg *registry.Registry, gen Renderer, opts ...ControllerOption) *Controller {
	c := &Controller{reg: reg, gen: gen}
	for _, opt := range opts {
		opt(c)
	}
	c.debouncer = preview.New(c.delay, c.refresh)
	return c
}

// Templates lists the catalogue.
func (c *Controller) Templates() []*doctpl.Template { return c.reg.List() }

// Select starts a fresh session for template id. Values, advisories, the
// preview and the active tab of the previous session are discarded.
func (c *Controller) Select(id string) error {
	tpl, ok := c.reg.Find(id)
	if !ok {
		return fmt.Errorf("form: unknown template %q", id)
	}
	c.debouncer.Cancel()
	c.mu.Lock()
	c.session = NewSession(tpl)
	c.epoch++
	c.preview = nil
	c.mu.Unlock()

	if !tpl.Available() {
		c.notify(Notice{Level: NoticeInfo, Message: UnavailableNotice})
		return nil
	}
	c.debouncer.Trigger()
	return nil
}

// Selected returns the current template, or nil.
func (c *Controller) Selected() *doctpl.Template {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	return c.session.Template()
}

// Set stores a value in the current session and returns its advisory.
func (c *Controller) Set(name string, value any) (string, error) {
	var advisory string
	err := c.Update(func(s *Session) error {
		advisory = s.Set(name, value)
		return nil
	})
	return advisory, err
}

// Update runs fn on the current session and reschedules the preview.
func (c *Controller) Update(fn func(*Session) error) error {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return ErrNoTemplate
	}
	err := fn(c.session)
	available := c.session.Template().Available()
	c.mu.Unlock()
	if available {
		c.debouncer.Trigger()
	}
	return err
}

// View runs fn on the current session without rescheduling the preview.
func (c *Controller) View(fn func(*Session)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ErrNoTemplate
	}
	fn(c.session)
	return nil
}

// Preview returns the latest preview, nil before the first one.
func (c *Controller) Preview() *export.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preview
}

// Refresh regenerates a pending preview immediately and reports whether
// one was pending.
func (c *Controller) Refresh() bool { return c.debouncer.Flush() }

func (c *Controller) refresh() {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return
	}
	epoch, id, values := c.epoch, c.session.Template().ID, c.session.Values()
	c.mu.Unlock()

	doc, err := c.gen.Preview(context.Background(), id, values)
	if err != nil {
		c.notify(Notice{Level: NoticeError, Message: "Erro ao gerar a pré-visualização.", Err: err})
		return
	}

	c.mu.Lock()
	if epoch != c.epoch {
		// The template changed while rendering.
		c.mu.Unlock()
		return
	}
	c.preview = doc
	c.mu.Unlock()
	if c.onPreview != nil {
		c.onPreview(doc)
	}
}

func (c *Controller) snapshot() (string, doctpl.Values, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return "", nil, ErrNoTemplate
	}
	return c.session.Template().ID, c.session.Values(), nil
}

// Download renders the current values and saves <id>.pdf in dir.
func (c *Controller) Download(ctx context.Context, dir string) (string, error) {
	id, values, err := c.snapshot()
	if err != nil {
		return "", err
	}
	doc, err := c.gen.Render(ctx, id, values)
	if err != nil {
		return "", c.fail("Erro ao gerar o documento.", err)
	}
	path, err := doc.Save(dir)
	if err != nil {
		return "", c.fail("Erro ao salvar o documento.", err)
	}
	return path, nil
}

// Print renders the current values as a document that opens the print
// dialog.
func (c *Controller) Print(ctx context.Context) (*export.Document, error) {
	id, values, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	doc, err := c.gen.Print(ctx, id, values)
	if err != nil {
		return nil, c.fail("Erro ao gerar o documento.", err)
	}
	return doc, nil
}

// Share renders the current values and hands the file to the share target.
func (c *Controller) Share(ctx context.Context) error {
	id, values, err := c.snapshot()
	if err != nil {
		return err
	}
	doc, err := c.gen.Render(ctx, id, values)
	if err != nil {
		return c.fail("Erro ao gerar o documento.", err)
	}
	err = export.Share(ctx, doc, c.sharer)
	switch {
	case errors.Is(err, export.ErrShareUnsupported):
		c.notify(Notice{Level: NoticeInfo, Message: err.Error(), Err: err})
		return err
	case err != nil:
		return c.fail("Erro ao compartilhar.", err)
	}
	return nil
}

// Close stops the preview scheduling.
func (c *Controller) Close() { c.debouncer.Stop() }

func (c *Controller) fail(msg string, err error) error {
	c.notify(Notice{Level: NoticeError, Message: msg, Err: err})
	return err
}

func (c *Controller) notify(n Notice) {
	if c.onNotice != nil {
		c.onNotice(n)
	}
}
