package doctpl

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/anixcopiadora/docgen/extenso"
)

// Values maps field names to their current values. Accessors accept the
// shapes produced by form edits as well as by JSON or YAML decoding:
// strings, booleans, numbers, []string, []any and nested maps.
type Values map[string]any

// String returns the value as text. Numbers are formatted without trailing
// zeros; lists, records and missing values yield "".
func (v Values) String(name string) string {
	switch x := v[name].(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		if x {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// Bool reports whether a checkbox-like value is set.
func (v Values) Bool(name string) bool {
	switch x := v[name].(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "false", "0", "off", "no", "não", "nao":
			return false
		}
		return true
	default:
		return v.Present(name)
	}
}

// Number parses the value leniently; unparseable input is 0.
func (v Values) Number(name string) float64 {
	switch x := v[name].(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		f, _ := x.Float64()
		return f
	case string:
		f, _ := extenso.ParseDecimal(x)
		return f
	default:
		return 0
	}
}

// List returns a plain string list.
func (v Values) List(name string) []string {
	switch x := v[name].(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Records returns a list of structured sub-records.
func (v Values) Records(name string) []Values {
	switch x := v[name].(type) {
	case []Values:
		return x
	case []map[string]any:
		out := make([]Values, len(x))
		for i, m := range x {
			out[i] = Values(m)
		}
		return out
	case []any:
		out := make([]Values, 0, len(x))
		for _, e := range x {
			switch m := e.(type) {
			case map[string]any:
				out = append(out, Values(m))
			case Values:
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// Bytes returns binary content: a []byte value as is, or the payload of a
// base64 data URL.
func (v Values) Bytes(name string) ([]byte, string) {
	switch x := v[name].(type) {
	case []byte:
		return x, ""
	case string:
		data, mime, ok := DecodeDataURL(x)
		if ok {
			return data, mime
		}
	}
	return nil, ""
}

// Present reports whether a value is filled in: a non-empty string or list,
// a true boolean or a non-zero number.
func (v Values) Present(name string) bool {
	switch x := v[name].(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case []string:
		return len(x) > 0
	case []any:
		return len(x) > 0
	case []Values:
		return len(x) > 0
	case []map[string]any:
		return len(x) > 0
	case []byte:
		return len(x) > 0
	case float64:
		return x != 0
	case int:
		return x != 0
	default:
		return true
	}
}

// Clone returns a deep copy; lists and records are copied so later edits
// to either side do not leak.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = cloneValue(val)
	}
	return out
}

func cloneValue(val any) any {
	switch x := val.(type) {
	case []string:
		return append([]string(nil), x...)
	case []byte:
		return append([]byte(nil), x...)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	case []Values:
		out := make([]Values, len(x))
		for i, e := range x {
			out[i] = e.Clone()
		}
		return out
	case []map[string]any:
		out := make([]Values, len(x))
		for i, e := range x {
			out[i] = Values(e).Clone()
		}
		return out
	case map[string]any:
		return map[string]any(Values(x).Clone())
	case Values:
		return x.Clone()
	default:
		return val
	}
}

// DecodeDataURL splits a base64 data URL into its payload and media type.
func DecodeDataURL(s string) (data []byte, mime string, ok bool) {
	rest, found := strings.CutPrefix(s, "data:")
	if !found {
		return nil, "", false
	}
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return nil, "", false
	}
	mime, isB64 := strings.CutSuffix(meta, ";base64")
	if !isB64 {
		return nil, "", false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	return data, mime, true
}
