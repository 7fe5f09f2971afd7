package style

import "sort"

// Fragment is a flat set of style properties contributed by one rule.
// A nil Fragment means "no contribution".
type Fragment map[string]Value

// Merge folds fragments left to right into a freshly allocated Fragment.
// Later keys overwrite earlier ones; nil fragments are skipped.
func Merge(fragments ...Fragment) Fragment {
	size := 0
	for _, f := range fragments {
		size += len(f)
	}
	out := make(Fragment, size)
	for _, f := range fragments {
		for k, v := range f {
			out[k] = v
		}
	}
	return out
}

// Clone returns a shallow copy. Values are immutable, so the copy shares nothing mutable.
func (f Fragment) Clone() Fragment {
	if f == nil {
		return nil
	}
	out := make(Fragment, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Flatten drops null and undefined entries, producing the form handed to a renderer.
func (f Fragment) Flatten() Fragment {
	out := make(Fragment, len(f))
	for k, v := range f {
		if v.IsNull() || v.IsUndefined() {
			continue
		}
		out[k] = v
	}
	return out
}

// Keys returns the property names in sorted order.
func (f Fragment) Keys() []string {
	return sortedKeys(f)
}

// Equal reports whether both fragments hold the same keys and values.
func (f Fragment) Equal(other Fragment) bool {
	if len(f) != len(other) {
		return false
	}
	for k, v := range f {
		o, ok := other[k]
		if !ok || !v.Equal(o) {
			return false
		}
	}
	return true
}

// Plain converts the fragment to a map of plain Go values for encoders.
func (f Fragment) Plain() map[string]any {
	out := make(map[string]any, len(f))
	for k, v := range f {
		out[k] = v.Interface()
	}
	return out
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
