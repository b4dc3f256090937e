package doctpl

// Predicate decides visibility or inclusion from the whole value map. A nil
// Predicate always holds.
type Predicate func(Values) bool

// Eval evaluates p, treating nil as true.
func (p Predicate) Eval(v Values) bool {
	return p == nil || p(v)
}

// Equals holds when the named value is exactly want.
func Equals(name, want string) Predicate {
	return func(v Values) bool { return v.String(name) == want }
}

// Checked holds when the named checkbox is set.
func Checked(name string) Predicate {
	return func(v Values) bool { return v.Bool(name) }
}

// Present holds when the named value is filled in.
func Present(name string) Predicate {
	return func(v Values) bool { return v.Present(name) }
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(v Values) bool { return !p.Eval(v) }
}

// All holds when every predicate holds.
func All(ps ...Predicate) Predicate {
	return func(v Values) bool {
		for _, p := range ps {
			if !p.Eval(v) {
				return false
			}
		}
		return true
	}
}

// Any holds when at least one predicate holds.
func Any(ps ...Predicate) Predicate {
	return func(v Values) bool {
		for _, p := range ps {
			if p.Eval(v) {
				return true
			}
		}
		return false
	}
}

// VisibleGroups returns the indexes of the groups visible for v, in
// declaration order.
func (t *Template) VisibleGroups(v Values) []int {
	var out []int
	for i, g := range t.Groups {
		if g.Visible.Eval(v) {
			out = append(out, i)
		}
	}
	return out
}

// VisibleFields returns the fields of g visible for v.
func VisibleFields(g Group, v Values) []Field {
	out := make([]Field, 0, len(g.Fields))
	for _, f := range g.Fields {
		if f.Visible.Eval(v) {
			out = append(out, f)
		}
	}
	return out
}
