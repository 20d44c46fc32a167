package envrec

import "github.com/yernsun/prepack/value"

// Environment is a lexical environment: an environment Record plus an
// optional parent. Environment implements value.LexicalEnvironment so
// a *value.Function can capture one without an import cycle. Parent links
// are pure non-owning relations: ownership flows from the active
// execution-context stack downward, never along these links.
type Environment struct {
	Record Record
	Parent *Environment
}

var _ value.LexicalEnvironment = (*Environment)(nil)

// NewEnvironment chains a record onto an optional parent.
func NewEnvironment(rec Record, parent *Environment) *Environment {
	return &Environment{Record: rec, Parent: parent}
}

// EnvKind reports the innermost record's kind, for debugging.
func (e *Environment) EnvKind() string { return e.Record.EnvKind() }

// ResolveBinding walks outward from e looking for a record that HasBinding
// the given name, per the Standard's ResolveBinding. Returns nil if no
// environment in the chain declares it.
func ResolveBinding(e *Environment, name string) *Environment {
	for cur := e; cur != nil; cur = cur.Parent {
		if cur.Record.HasBinding(name) {
			return cur
		}
	}
	return nil
}

// GetThisEnvironment walks outward from e to find the nearest record with a
// this binding, per the Standard's GetThisEnvironment. Every environment
// chain is expected to terminate in the global record, which always has a
// this binding, so this never returns nil for a well-formed chain.
func GetThisEnvironment(e *Environment) *Environment {
	for cur := e; cur != nil; cur = cur.Parent {
		if cur.Record.HasThisBinding() {
			return cur
		}
	}
	return nil
}

// ResolveThisBinding returns the this-value visible from e.
func ResolveThisBinding(e *Environment) (value.Value, error) {
	env := GetThisEnvironment(e)
	if env == nil {
		return nil, referenceError("this", "no this-binding environment in chain")
	}
	return env.Record.GetThisBinding()
}

// ResolveSuperBase finds the nearest function environment record with a
// super binding and returns its super base object.
func ResolveSuperBase(e *Environment) (value.Value, bool) {
	for cur := e; cur != nil; cur = cur.Parent {
		if fn, ok := cur.Record.(*Function); ok && fn.HasSuperBinding() {
			return fn.GetSuperBase()
		}
	}
	return nil, false
}
