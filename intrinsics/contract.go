// Package intrinsics defines the interface surface that the built-in
// library (about two hundred implementations, out of scope for this
// engine) must satisfy to plug into the evaluator. Grounded on the trait-capability
// pattern visible in cel-go's common/types/types.go (each runtime Type
// carries a `traitMask` built from bits like traits.AdderType,
// traits.ComparerType, traits.SizerType — capabilities a value may or may
// not support), generalized here into explicit Go interfaces since the
// upstream traits package itself was not present in the retrieved pack.
package intrinsics

import "github.com/yernsun/prepack/value"

// Callable is implemented by anything that can be invoked as a function,
// whether backed by an AST body or a native handler.
type Callable interface {
	// Call invokes the receiver with the given this-value and argument
	// values, returning the resulting value or a thrown error value. The
	// realm is passed as `any` to avoid an intrinsics<->realm import cycle;
	// implementations type-assert to their concrete realm type.
	Call(realm any, thisValue value.Value, args []value.Value) (value.Value, error)
}

// Gettable is implemented by objects whose reads may need to consult
// semantics beyond OrdinaryGet (proxies, exotic objects). Plain Objects
// satisfy this trivially via value.Get; intrinsics that back exotic
// built-ins (e.g. arguments objects, typed arrays) implement it directly.
type Gettable interface {
	Get(realm any, key value.PropertyKey) (value.Value, error)
}

// Settable mirrors Gettable for writes.
type Settable interface {
	Set(realm any, key value.PropertyKey, v value.Value) error
}

// Deletable mirrors Gettable for property deletion.
type Deletable interface {
	Delete(realm any, key value.PropertyKey) (bool, error)
}

// Enumerable is implemented by objects with a custom enumeration order or
// filter beyond own-enumerable-string-keys (e.g. an exotic arguments
// object). Most built-ins rely on the default Object behavior instead.
type Enumerable interface {
	EnumerateOwnKeys(realm any) ([]value.PropertyKey, error)
}

// Coercible exposes the Standard's abstract ToPrimitive/ToNumber/ToString
// family for a built-in that needs to customize coercion (e.g. Date).
type Coercible interface {
	ToPrimitive(realm any, hint string) (value.Value, error)
}

// Registry is the contract the engine uses to look up an intrinsic by its
// well-known slot name (e.g. "Object.prototype", "Array.prototype.push"),
// mirroring cel-go's ref.TypeProvider.FindIdent/NewValue split between
// identifier resolution and value construction.
type Registry interface {
	// Lookup resolves a well-known intrinsic path (dot-separated) to its
	// backing value, or reports it is not present in this build.
	Lookup(path string) (value.Value, bool)
	// Paths returns every registered path, for the prelude generator's
	// reachability bookkeeping.
	Paths() []string
}
