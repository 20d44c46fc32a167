package realm

import (
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/value"
)

// CreateAbstract mints a fresh Abstract value and records its declaring
// entry on the realm's active effect generator. args
// are the values the new Abstract's origin template depends on; they must
// already have been minted on this realm (or be concrete), preserving the
// acyclic-dependency-DAG invariant value.Abstract relies on.
func (r *Realm) CreateAbstract(types value.TypeSet, values value.ValueSet, origin value.OriginTemplate, patternKind value.OriginKind, args []value.Value, pure bool, build generator.BuildNode) *value.Abstract {
	return r.ActiveGenerator().Derive(types, values, origin, args, generator.DeriveOptions{
		PatternKind: patternKind,
		IsPure:      pure,
	}, build)
}

// CreateAbstractObject mints a fresh AbstractObject the same way
// CreateAbstract mints a plain Abstract, additionally carrying the finite-
// or-unknown set of concrete Object candidates the value might alias.
func (r *Realm) CreateAbstractObject(values value.ValueSet, origin value.OriginTemplate, patternKind value.OriginKind, args []value.Value, candidates []*value.Object, candidatesKnown bool, pure bool, build generator.BuildNode) *value.AbstractObject {
	return r.ActiveGenerator().DeriveObject(values, origin, args, candidates, candidatesKnown, generator.DeriveOptions{
		PatternKind: patternKind,
		IsPure:      pure,
	}, build)
}

// RecordModifiedBinding appends a binding delta to the realm's modification
// log ahead of a write so a later rollback can
// restore prior, which is the binding's value before the write being
// recorded (hadPrior false means the binding was uninitialized).
func (r *Realm) RecordModifiedBinding(rec *envrec.Declarative, name string, prior value.Value, hadPrior bool) {
	r.modLog.RecordBindingWrite(rec, name, prior, hadPrior)
}

// WireRollbackHooks installs rec's OnWrite hook so every mutation performed
// through rec is automatically appended to this realm's modification log,
// without every call site at the binding-write level needing to remember to
// call RecordModifiedBinding itself.
func (r *Realm) WireRollbackHooks(rec *envrec.Declarative) {
	rec.OnWrite = func(name string, prior value.Value) {
		hadPrior := prior != nil
		r.RecordModifiedBinding(rec, name, prior, hadPrior)
	}
}
