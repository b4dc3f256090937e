// Package form holds the editing state of one document: the values typed so
// far, the advisory validation messages and the active tab. A Controller
// ties a Session to the template catalogue, the debounced preview and the
// export actions.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anixcopiadora/docgen/brdoc"
	"github.com/anixcopiadora/docgen/doctpl"
)

// Advisory messages. They never block generation.
const (
	AdvisoryNationalID = "CPF/CNPJ inválido"
	AdvisoryEmail      = "E-mail inválido"
)

var (
	ErrNoField    = errors.New("form: no such field")
	ErrIndex      = errors.New("form: index out of range")
	ErrHiddenTab  = errors.New("form: tab is not visible")
	ErrNotAList   = errors.New("form: field is not a list")
	ErrNoTemplate = errors.New("form: no template selected")
)

// Session is the editing state of one template. It starts empty and is
// discarded when another template is selected. A Session is not safe for
// concurrent use; Controller serialises access to its own.
type Session struct {
	tpl    *doctpl.Template
	values doctpl.Values
	errors map[string]string
	active int
}

// NewSession returns an empty session for tpl.
func NewSession(tpl *doctpl.Template) *Session {
	s := &Session{tpl: tpl, values: doctpl.Values{}, errors: map[string]string{}}
	s.sync()
	return s
}

// Template returns the template being filled in.
func (s *Session) Template() *doctpl.Template { return s.tpl }

// Set stores value under name and returns the advisory for it, "" when the
// value looks fine. A nil value clears the field.
func (s *Session) Set(name string, value any) string {
	s.store(name, value)
	s.check(name)
	return s.errors[name]
}

// Value returns the raw value of name.
func (s *Session) Value(name string) any { return s.values[name] }

// Values returns a deep copy of the current values.
func (s *Session) Values() doctpl.Values { return s.values.Clone() }

// Errors returns a copy of the advisory messages keyed by field name.
func (s *Session) Errors() map[string]string {
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Advisory returns the advisory message of name, "" when there is none.
func (s *Session) Advisory(name string) string { return s.errors[name] }

// VisibleGroups returns the indexes of the tabs visible for the current
// values.
func (s *Session) VisibleGroups() []int { return s.tpl.VisibleGroups(s.values) }

// ActiveGroup returns the index of the active tab.
func (s *Session) ActiveGroup() int { return s.active }

// SelectGroup makes tab i active.
func (s *Session) SelectGroup(i int) error {
	if i < 0 || i >= len(s.tpl.Groups) {
		return fmt.Errorf("%w: tab %d", ErrIndex, i)
	}
	if !s.tpl.Groups[i].Visible.Eval(s.values) {
		return fmt.Errorf("%w: %q", ErrHiddenTab, s.tpl.Groups[i].Tab)
	}
	s.active = i
	return nil
}

// VisibleFields returns the visible fields of the active tab.
func (s *Session) VisibleFields() []doctpl.Field {
	if len(s.tpl.Groups) == 0 {
		return nil
	}
	return doctpl.VisibleFields(s.tpl.Groups[s.active], s.values)
}

// store writes a value and re-evaluates the active tab in the same update.
func (s *Session) store(name string, value any) {
	if value == nil {
		delete(s.values, name)
	} else {
		s.values[name] = value
	}
	s.sync()
}

// sync moves to the first visible tab when the active one became hidden.
func (s *Session) sync() {
	if len(s.tpl.Groups) == 0 || s.tpl.Groups[s.active].Visible.Eval(s.values) {
		return
	}
	s.active = 0
	if vis := s.tpl.VisibleGroups(s.values); len(vis) > 0 {
		s.active = vis[0]
	}
}

// check recomputes the advisory of one field.
func (s *Session) check(name string) {
	delete(s.errors, name)
	value := s.values.String(name)
	if value == "" {
		return
	}
	f, _ := s.tpl.Field(name)
	switch {
	case (name == "email" || f.Check == doctpl.CheckEmail) && !brdoc.ValidEmail(value):
		s.errors[name] = AdvisoryEmail
	case (nationalIDName(name) || f.Check == doctpl.CheckNationalID) && !brdoc.ValidNationalID(value):
		s.errors[name] = AdvisoryNationalID
	}
}

// revalidate recomputes every advisory after a bulk change.
func (s *Session) revalidate() {
	clear(s.errors)
	for name := range s.values {
		s.check(name)
	}
}

func nationalIDName(name string) bool {
	return strings.Contains(name, "cpf") || strings.Contains(name, "cnpj")
}
