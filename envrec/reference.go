package envrec

import "github.com/yernsun/prepack/value"

// ReferenceBaseKind discriminates Reference's base: undefined, Object,
// primitive-wrapper candidate, Environment record, or abstract value.
type ReferenceBaseKind int

const (
	// BaseUndefined marks an unresolvable reference (e.g. typeof of an
	// undeclared name).
	BaseUndefined ReferenceBaseKind = iota
	// BaseObject marks a property reference on a concrete Object.
	BaseObject
	// BasePrimitive marks a property reference on a primitive-wrapper
	// candidate (e.g. "abc".length).
	BasePrimitive
	// BaseEnvironment marks an identifier reference resolved to an
	// environment record.
	BaseEnvironment
	// BaseAbstract marks a reference whose base could not be resolved to a
	// concrete value (partial interpretation).
	BaseAbstract
)

// Reference models the Standard's Reference Record.
type Reference struct {
	BaseKind ReferenceBaseKind

	ObjectBase  *value.Object
	PrimitiveBase value.Value
	EnvBase     *Environment
	AbstractBase *value.Abstract

	// Name is either a string key or a symbol key; use NameKey.IsSymbol.
	NameKey value.PropertyKey
	// AbstractName holds a symbolic string name when the key itself is
	// unknown at build time (e.g. `obj[k]` where k is abstract).
	AbstractName *value.Abstract

	Strict bool
	// ThisValue is set only for super references.
	ThisValue value.Value
	HasThis   bool
}

// IsUnresolvable reports whether the reference's base could not be
// determined; uninitialized bindings fail reads.
func (r *Reference) IsUnresolvable() bool {
	return r.BaseKind == BaseUndefined
}

// IsPropertyReference reports whether the base is an Object or primitive
// wrapper candidate, per the Standard's IsPropertyReference.
func (r *Reference) IsPropertyReference() bool {
	return r.BaseKind == BaseObject || r.BaseKind == BasePrimitive
}

// IsSuperReference reports whether a this-value override is carried.
func (r *Reference) IsSuperReference() bool {
	return r.HasThis
}
