package form

import (
	"fmt"
	"slices"

	"github.com/anixcopiadora/docgen/doctpl"
)

// ListItems returns the working copy of a dynamic list: the edited list, or
// the template defaults while the list has not been touched.
func (s *Session) ListItems(name string) []string {
	if _, ok := s.values[name]; ok {
		return slices.Clone(s.values.List(name))
	}
	f, _ := s.tpl.Field(name)
	return slices.Clone(f.Defaults)
}

// SetListItem replaces item i of a dynamic list.
func (s *Session) SetListItem(name string, i int, value string) error {
	items := s.ListItems(name)
	if i < 0 || i >= len(items) {
		return fmt.Errorf("%w: %s[%d]", ErrIndex, name, i)
	}
	items[i] = value
	s.store(name, items)
	return nil
}

// AppendListItem adds an item at the end of a dynamic list.
func (s *Session) AppendListItem(name, value string) {
	s.store(name, append(s.ListItems(name), value))
}

// RemoveListItem deletes item i of a dynamic list.
func (s *Session) RemoveListItem(name string, i int) error {
	items := s.ListItems(name)
	if i < 0 || i >= len(items) {
		return fmt.Errorf("%w: %s[%d]", ErrIndex, name, i)
	}
	s.store(name, slices.Delete(items, i, i+1))
	return nil
}

// Toggle adds option to a multi-select value, or removes it when already
// selected. It reports whether the option is selected afterwards.
func (s *Session) Toggle(name, option string) bool {
	items := slices.Clone(s.values.List(name))
	if i := slices.Index(items, option); i >= 0 {
		s.store(name, slices.Delete(items, i, i+1))
		return false
	}
	s.store(name, append(items, option))
	return true
}

// Records returns a copy of a record list.
func (s *Session) Records(name string) []doctpl.Values {
	recs := s.values.Records(name)
	out := make([]doctpl.Values, len(recs))
	for i, r := range recs {
		out[i] = r.Clone()
	}
	return out
}

// AppendRecord adds a record seeded with the sub-field defaults and returns
// its index.
func (s *Session) AppendRecord(name string) (int, error) {
	f, ok := s.tpl.Field(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoField, name)
	}
	if f.Kind != doctpl.FieldRecordList {
		return 0, fmt.Errorf("%w: %s", ErrNotAList, name)
	}
	rec := doctpl.Values{}
	for _, sub := range f.Fields {
		rec[sub.Name] = sub.Default
	}
	recs := append(s.Records(name), rec)
	s.store(name, recs)
	return len(recs) - 1, nil
}

// UpdateRecord sets one sub-field of record i.
func (s *Session) UpdateRecord(name string, i int, field string, value any) error {
	recs := s.Records(name)
	if i < 0 || i >= len(recs) {
		return fmt.Errorf("%w: %s[%d]", ErrIndex, name, i)
	}
	recs[i][field] = value
	s.store(name, recs)
	return nil
}

// RemoveRecord deletes record i.
func (s *Session) RemoveRecord(name string, i int) error {
	recs := s.Records(name)
	if i < 0 || i >= len(recs) {
		return fmt.Errorf("%w: %s[%d]", ErrIndex, name, i)
	}
	s.store(name, slices.Delete(recs, i, i+1))
	return nil
}

// UpsertRecord replaces the fields of the record whose key matches rec's,
// or appends rec when there is none. It is how a language is given a level.
func (s *Session) UpsertRecord(name, key string, rec doctpl.Values) {
	recs := s.Records(name)
	want := rec.String(key)
	for _, r := range recs {
		if r.String(key) == want {
			for k, v := range rec {
				r[k] = v
			}
			s.store(name, recs)
			return
		}
	}
	s.store(name, append(recs, rec.Clone()))
}

// RemoveRecordWhere deletes the records whose key equals value.
func (s *Session) RemoveRecordWhere(name, key, value string) {
	recs := slices.DeleteFunc(s.Records(name), func(r doctpl.Values) bool {
		return r.String(key) == value
	})
	s.store(name, recs)
}
