package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/anixcopiadora/docgen/doctpl"
)

// Operation is one RFC 6902 patch operation.
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	From  string `json:"from,omitempty"`
	Value any    `json:"value"`
}

// MarshalJSON encodes the current values.
func (s *Session) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(s.values)
}

// LoadJSON replaces the values with a JSON object.
func (s *Session) LoadJSON(data []byte) error {
	var m map[string]any
	if err := sonic.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("form: decoding values: %w", err)
	}
	s.replace(m)
	return nil
}

// Load replaces the values with v, as decoded from a values file.
func (s *Session) Load(v map[string]any) {
	s.replace(doctpl.Values(v).Clone())
}

// ApplyPatch applies RFC 6902 operations to the values. A replace of a
// missing path becomes an add, and a remove of a missing path is dropped,
// so patches written against a partly filled form still apply. Each
// operation sees the result of the ones before it. On error the values are
// left unchanged.
func (s *Session) ApplyPatch(ops []Operation) error {
	if len(ops) == 0 {
		return nil
	}
	current, err := sonic.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("form: encoding values: %w", err)
	}
	for i, op := range ops {
		var doc any
		if err := sonic.Unmarshal(current, &doc); err != nil {
			return fmt.Errorf("form: decoding values: %w", err)
		}
		op, keep := fixOperation(doc, op)
		if !keep {
			continue
		}
		patchJSON, err := sonic.Marshal([]Operation{op})
		if err != nil {
			return fmt.Errorf("form: encoding patch: %w", err)
		}
		patch, err := jsonpatch.DecodePatch(patchJSON)
		if err != nil {
			return fmt.Errorf("form: decoding patch: %w", err)
		}
		if current, err = patch.Apply(current); err != nil {
			return fmt.Errorf("form: applying operation %d (%s %s): %w", i, op.Op, op.Path, err)
		}
	}
	var m map[string]any
	if err := sonic.Unmarshal(current, &m); err != nil {
		return fmt.Errorf("form: patch result is not an object: %w", err)
	}
	s.replace(m)
	return nil
}

func (s *Session) replace(m map[string]any) {
	s.values = doctpl.Values{}
	for k, v := range m {
		if v != nil {
			s.values[k] = normalize(v)
		}
	}
	s.revalidate()
	s.sync()
}

// normalize turns decoded JSON lists into the shapes the session edits:
// string lists and record lists.
func normalize(v any) any {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return v
	}
	switch list[0].(type) {
	case string:
		out := make([]string, 0, len(list))
		for _, e := range list {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case map[string]any:
		out := make([]doctpl.Values, 0, len(list))
		for _, e := range list {
			if m, ok := e.(map[string]any); ok {
				out = append(out, doctpl.Values(m))
			}
		}
		return out
	}
	return v
}

// fixOperation adapts op to doc, the values as left by the previous
// operations. It reports false when op should be dropped.
func fixOperation(doc any, op Operation) (Operation, bool) {
	switch op.Op {
	case "replace":
		if !pathExists(doc, op.Path) {
			op.Op = "add"
		}
	case "remove":
		return op, pathExists(doc, op.Path)
	}
	return op, true
}

func pathExists(doc any, path string) bool {
	if path == "" {
		return true
	}
	if !strings.HasPrefix(path, "/") {
		return false
	}
	cur := doc
	for _, token := range strings.Split(path[1:], "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")
		switch node := cur.(type) {
		case map[string]any:
			value, ok := node[token]
			if !ok {
				return false
			}
			cur = value
		case []any:
			index, err := strconv.Atoi(token)
			if err != nil || index < 0 || index >= len(node) {
				return false
			}
			cur = node[index]
		default:
			return false
		}
	}
	return true
}
