package style

import "sort"

// Props is the prop set handed to a component for one render.
// A key holding Undefined is indistinguishable from an absent key.
type Props map[string]Value

// Get returns the value for name, treating Undefined as absent.
func (p Props) Get(name string) (Value, bool) {
	v, ok := p[name]
	if !ok || v.IsUndefined() {
		return Value{}, false
	}
	return v, true
}

// Has reports whether name holds a defined value.
func (p Props) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Clone returns a copy of p.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Keys returns the defined prop names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if v.IsUndefined() {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeProps overlays overrides onto defaults in a new map. An Undefined
// override hides the default, matching object-spread semantics.
func MergeProps(defaults, overrides Props) Props {
	out := make(Props, len(defaults)+len(overrides))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Set is a membership table of prop or style names.
type Set map[string]struct{}

// NewSet builds a Set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports membership. A nil Set contains nothing.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Union returns a new Set holding the members of s and every other set.
func (s Set) Union(others ...Set) Set {
	out := make(Set, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	for _, o := range others {
		for k := range o {
			out[k] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in sorted order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
