package resolver

import "github.com/alexisbeaulieu97/variantkit/internal/style"

// DeoptGuard decides which props stay live on the component instead of
// being flattened into the static style.
type DeoptGuard struct {
	names style.Set
}

// NewDeoptGuard builds a guard over names.
func NewDeoptGuard(names ...string) DeoptGuard {
	return DeoptGuard{names: style.NewSet(names...)}
}

// Retain reports whether name must be forwarded live.
func (g DeoptGuard) Retain(name string) bool {
	return g.names.Has(name)
}

// Names returns the guarded names, sorted.
func (g DeoptGuard) Names() []string {
	return g.names.Sorted()
}

// Empty reports whether the guard retains nothing.
func (g DeoptGuard) Empty() bool {
	return len(g.names) == 0
}
