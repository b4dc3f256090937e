package form

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/anixcopiadora/docgen/doctpl"
	"github.com/anixcopiadora/docgen/export"
	"github.com/anixcopiadora/docgen/registry"
)

// fakeRenderer records the values of every call.
type fakeRenderer struct {
	mu      sync.Mutex
	calls   []string
	last    doctpl.Values
	failure error
}

func (f *fakeRenderer) record(kind, id string, v doctpl.Values) (*export.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kind+":"+id)
	f.last = v
	if f.failure != nil {
		return nil, f.failure
	}
	return &export.Document{Name: id, Title: id, Data: []byte("%PDF-" + kind)}, nil
}

func (f *fakeRenderer) Render(_ context.Context, id string, v doctpl.Values) (*export.Document, error) {
	return f.record("render", id, v)
}

func (f *fakeRenderer) Preview(_ context.Context, id string, v doctpl.Values) (*export.Document, error) {
	return f.record("preview", id, v)
}

func (f *fakeRenderer) Print(_ context.Context, id string, v doctpl.Values) (*export.Document, error) {
	return f.record("print", id, v)
}

func (f *fakeRenderer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newController(f *fakeRenderer, opts ...ControllerOption) *Controller {
	return NewController(registry.Default(), f, append([]ControllerOption{WithPreviewDelay(time.Hour)}, opts...)...)
}

func TestSelectDiscardsState(t *testing.T) {
	f := &fakeRenderer{}
	c := newController(f)
	defer c.Close()

	if _, err := c.Set("nome", "x"); !errors.Is(err, ErrNoTemplate) {
		t.Errorf("Set without template: %v", err)
	}
	if err := c.Select("nope"); err == nil {
		t.Error("unknown template selected")
	}

	if err := c.Select("viagem_menor"); err != nil {
		t.Fatal(err)
	}
	c.Set("tipo_viagem", "Acompanhado")
	c.Set("resp_cpf", "1")
	c.Update(func(s *Session) error { return s.SelectGroup(len(s.Template().Groups) - 1) })
	c.Refresh()
	if c.Preview() == nil {
		t.Fatal("no preview after refresh")
	}

	if err := c.Select("recibo"); err != nil {
		t.Fatal(err)
	}
	if c.Preview() != nil {
		t.Error("preview kept across selection")
	}
	c.View(func(s *Session) {
		if len(s.Values()) != 0 || len(s.Errors()) != 0 || s.ActiveGroup() != 0 {
			t.Errorf("state kept: %v %v %d", s.Values(), s.Errors(), s.ActiveGroup())
		}
	})
}

func TestPreviewDebounced(t *testing.T) {
	f := &fakeRenderer{}
	got := make(chan *export.Document, 4)
	c := NewController(registry.Default(), f,
		WithPreviewDelay(20*time.Millisecond),
		OnPreview(func(d *export.Document) { got <- d }),
	)
	defer c.Close()

	c.Select("recibo")
	for _, v := range []string{"1", "10", "100"} {
		c.Set("valor", v)
	}
	select {
	case d := <-got:
		if d.Name != "recibo" {
			t.Errorf("preview of %q", d.Name)
		}
	case <-time.After(time.Second):
		t.Fatal("no preview")
	}
	time.Sleep(60 * time.Millisecond)
	if n := f.count(); n != 1 {
		t.Errorf("renders = %d, want 1", n)
	}
	f.mu.Lock()
	if f.last.String("valor") != "100" {
		t.Errorf("preview used %v", f.last)
	}
	f.mu.Unlock()
}

func TestUnavailableTemplate(t *testing.T) {
	f := &fakeRenderer{}
	var notices []Notice
	c := newController(f, OnNotice(func(n Notice) { notices = append(notices, n) }))
	defer c.Close()

	if err := c.Select("vistoria"); err != nil {
		t.Fatal(err)
	}
	if len(notices) != 1 || notices[0].Message != UnavailableNotice {
		t.Errorf("notices = %v", notices)
	}
	if c.Refresh() {
		t.Error("preview scheduled for an unavailable template")
	}
}

func TestExports(t *testing.T) {
	f := &fakeRenderer{}
	var shared export.ShareRequest
	c := newController(f, WithSharer(export.SharerFunc(func(_ context.Context, r export.ShareRequest) error {
		shared = r
		return nil
	})))
	defer c.Close()
	c.Select("recibo")
	ctx := context.Background()

	path, err := c.Download(ctx, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if want := "recibo.pdf"; len(path) < len(want) || path[len(path)-len(want):] != want {
		t.Errorf("path = %q", path)
	}
	doc, err := c.Print(ctx)
	if err != nil || string(doc.Data) != "%PDF-print" {
		t.Errorf("Print = %v, %v", doc, err)
	}
	if err := c.Share(ctx); err != nil {
		t.Fatal(err)
	}
	if shared.FileName != "recibo.pdf" || shared.Text != export.ShareText {
		t.Errorf("shared %+v", shared)
	}
}

func TestShareUnsupported(t *testing.T) {
	f := &fakeRenderer{}
	var notices []Notice
	c := newController(f, OnNotice(func(n Notice) { notices = append(notices, n) }))
	defer c.Close()
	c.Select("recibo")

	err := c.Share(context.Background())
	if !errors.Is(err, export.ErrShareUnsupported) {
		t.Fatalf("err = %v", err)
	}
	if len(notices) != 1 || notices[0].Message != export.ErrShareUnsupported.Error() {
		t.Errorf("notices = %v", notices)
	}
}

func TestFailuresAreNotices(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeRenderer{failure: boom}
	var notices []Notice
	c := newController(f, OnNotice(func(n Notice) { notices = append(notices, n) }))
	defer c.Close()
	c.Select("recibo")

	if _, err := c.Download(context.Background(), t.TempDir()); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if len(notices) != 1 || notices[0].Level != NoticeError {
		t.Errorf("notices = %v", notices)
	}
	// The session survives.
	if _, err := c.Set("valor", "5"); err != nil {
		t.Errorf("session lost: %v", err)
	}
}
