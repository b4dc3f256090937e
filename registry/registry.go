// Package registry holds the fixed, ordered catalogue of document
// templates. The catalogue is built and compiled once and is read-only
// afterwards, so it may be shared freely between goroutines.
package registry

import (
	"fmt"
	"sync"

	"github.com/anixcopiadora/docgen/doctpl"
)

// Registry is an ordered set of compiled templates.
type Registry struct {
	list []*doctpl.Template
	byID map[string]*doctpl.Template
}

// New compiles tpls and indexes them by ID, keeping their order.
func New(tpls ...*doctpl.Template) (*Registry, error) {
	r := &Registry{byID: make(map[string]*doctpl.Template, len(tpls))}
	for _, t := range tpls {
		if t.ID == "" {
			return nil, fmt.Errorf("registry: template %q has no id", t.Title)
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate template id %q", t.ID)
		}
		if err := doctpl.Compile(t); err != nil {
			return nil, err
		}
		r.byID[t.ID] = t
		r.list = append(r.list, t)
	}
	return r, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the built-in catalogue.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(
			recibo(),
			reciboAluguel(),
			declaracaoResidencia(),
			contratoLocacao(),
			curriculo(),
			vistoria(),
			orcamento(),
			procuracao(),
			uniaoEstavel(),
			viagemMenor(),
			hipossuficiencia(),
			rpa(),
		)
		if err != nil {
			panic(err)
		}
		defaultReg = r
	})
	return defaultReg
}

// Find looks a template up by id.
func (r *Registry) Find(id string) (*doctpl.Template, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// List returns the templates in catalogue order. The slice must not be
// modified.
func (r *Registry) List() []*doctpl.Template { return r.list }

// Len reports the number of templates.
func (r *Registry) Len() int { return len(r.list) }
