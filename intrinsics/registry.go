package intrinsics

import (
	"sort"

	"github.com/yernsun/prepack/value"
)

// MapRegistry is a simple map-backed Registry, the shape every real
// built-in library implementation (out of scope for this engine) is
// expected to populate at realm construction time.
type MapRegistry struct {
	entries map[string]value.Value
}

var _ Registry = (*MapRegistry)(nil)

// NewMapRegistry returns an empty registry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{entries: make(map[string]value.Value)}
}

// Register installs a value at the given well-known path.
func (r *MapRegistry) Register(path string, v value.Value) {
	r.entries[path] = v
}

// Lookup implements Registry.
func (r *MapRegistry) Lookup(path string) (value.Value, bool) {
	v, ok := r.entries[path]
	return v, ok
}

// Paths implements Registry, returning paths in sorted order so prelude
// generation is deterministic.
func (r *MapRegistry) Paths() []string {
	out := make([]string, 0, len(r.entries))
	for p := range r.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
