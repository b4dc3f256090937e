package doctpl

// Schema is the serialisable form of a template as seen with a given set of
// values: only visible groups and fields are listed.
type Schema struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Icon        string        `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string        `json:"description" yaml:"description"`
	Available   bool          `json:"available" yaml:"available"`
	Groups      []GroupSchema `json:"groups,omitempty" yaml:"groups,omitempty"`
}

type GroupSchema struct {
	Tab    string        `json:"tab" yaml:"tab"`
	Fields []FieldSchema `json:"fields" yaml:"fields"`
}

type FieldSchema struct {
	Name        string        `json:"name,omitempty" yaml:"name,omitempty"`
	Label       string        `json:"label" yaml:"label"`
	Kind        FieldKind     `json:"kind" yaml:"kind"`
	Placeholder string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []string      `json:"options,omitempty" yaml:"options,omitempty"`
	Default     string        `json:"default,omitempty" yaml:"default,omitempty"`
	Defaults    []string      `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Width       Width         `json:"width,omitempty" yaml:"width,omitempty"`
	Fields      []FieldSchema `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Describe returns the schema of t for the current values.
func Describe(t *Template, v Values) Schema {
	s := Schema{
		ID:          t.ID,
		Title:       t.Title,
		Icon:        t.Icon,
		Description: t.Description,
		Available:   t.Available(),
	}
	for _, i := range t.VisibleGroups(v) {
		g := t.Groups[i]
		s.Groups = append(s.Groups, GroupSchema{
			Tab:    g.Tab,
			Fields: describeFields(VisibleFields(g, v)),
		})
	}
	return s
}

func describeFields(fs []Field) []FieldSchema {
	if len(fs) == 0 {
		return nil
	}
	out := make([]FieldSchema, len(fs))
	for i, f := range fs {
		out[i] = FieldSchema{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        f.Kind,
			Placeholder: f.Placeholder,
			Options:     f.Options,
			Default:     f.Default,
			Defaults:    f.Defaults,
			Width:       f.Width,
			Fields:      describeFields(f.Fields),
		}
	}
	return out
}
