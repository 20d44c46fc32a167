package evaluator

import (
	"strings"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/diagnostics"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

func evalAssignment(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	a := n.AsAssignment()
	if a.Operator == "=" {
		valC := r.EvaluatePartial(a.Value, env)
		if completion.ReturnIfAbrupt(valC) {
			return valC
		}
		return assignTo(r, n, a.Target, valC.Value(), env)
	}
	op := strings.TrimSuffix(a.Operator, "=")
	curC := r.EvaluatePartial(a.Target, env)
	if completion.ReturnIfAbrupt(curC) {
		return curC
	}
	rhsC := r.EvaluatePartial(a.Value, env)
	if completion.ReturnIfAbrupt(rhsC) {
		return rhsC
	}
	resC := applyBinaryOp(r, n, op, curC.Value(), rhsC.Value())
	if completion.ReturnIfAbrupt(resC) {
		return resC
	}
	return assignTo(r, n, a.Target, resC.Value(), env)
}

// assignTo implements the Standard's PutValue for the two reference shapes
// this engine's grammar produces: a bare identifier or a member expression.
func assignTo(r *realm.Realm, n ast.Node, target ast.Node, v value.Value, env *envrec.Environment) *completion.Completion {
	switch target.Kind() {
	case ast.IdentifierKind:
		return assignIdentifier(r, n, target.AsIdentifier().Name, v, env)
	case ast.MemberKind:
		return evalMemberAssignment(r, n, target.AsMember(), v, env)
	}
	return throwError(r, n, "SyntaxError", "invalid assignment target")
}

func assignIdentifier(r *realm.Realm, n ast.Node, name string, v value.Value, env *envrec.Environment) *completion.Completion {
	target := envrec.ResolveBinding(env, name)
	if target == nil {
		target = outermostEnvironment(env)
	}
	if err := target.Record.SetMutableBinding(name, v, false); err != nil {
		return throwError(r, n, "ReferenceError", err.Error())
	}
	if target.Record.EnvKind() == "global" {
		r.ActiveGenerator().EmitGlobalAssignment(name, v)
	}
	return completion.NewNormal(v)
}

func outermostEnvironment(env *envrec.Environment) *envrec.Environment {
	cur := env
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

func evalMemberAssignment(r *realm.Realm, n ast.Node, m ast.MemberNode, v value.Value, env *envrec.Environment) *completion.Completion {
	baseC := r.EvaluatePartial(m.Object, env)
	if completion.ReturnIfAbrupt(baseC) {
		return baseC
	}
	base := baseC.Value()
	if m.Computed {
		keyC := r.EvaluatePartial(m.Property, env)
		if completion.ReturnIfAbrupt(keyC) {
			return keyC
		}
		return setProperty(r, n, base, keyC.Value(), true, v)
	}
	name := m.Property.AsIdentifier().Name
	return setProperty(r, n, base, value.NewString(r.ID(), name), false, v)
}

// setProperty implements the Standard's OrdinarySet for the concrete case,
// and falls back to either a dynamic residual write (abstract key, known
// object) or an introspection fault (abstract/unsound base) otherwise.
func setProperty(r *realm.Realm, n ast.Node, base, keyVal value.Value, computed bool, v value.Value) *completion.Completion {
	obj, ok := objectOf(base)
	if !ok {
		if absObj, isAbs := base.(*value.AbstractObject); isAbs {
			_ = absObj
			raiseUnsoundPropertyAccess(r, n, "property write on an abstract object whose identity is not known")
		}
		return throwError(r, n, "TypeError", "cannot set property of a non-object value")
	}
	keyStr, keyKnown := ToStringValue(keyVal)
	if !keyKnown {
		if sym, isSym := keyVal.(value.Symbol); isSym {
			setConcreteProperty(r, obj, value.SymbolKey(sym), v)
			return completion.NewNormal(v)
		}
		if !obj.Simple || obj.Partial {
			raiseUnsoundPropertyAccess(r, n, "dynamic property write with an unresolved key on a non-simple object")
		}
		r.ActiveGenerator().EmitDynamicPropertyAssignment(obj, keyVal, v)
		return completion.NewNormal(v)
	}
	key := value.StringKey(value.NewString(r.ID(), keyStr))
	setConcreteProperty(r, obj, key, v)
	if obj.Simple {
		r.ActiveGenerator().EmitOrFoldPropertyAssignment(obj, keyStr, computed, v)
	}
	return completion.NewNormal(v)
}

// setConcreteProperty performs the actual heap mutation for a literal key,
// recording the prior descriptor to the modification log first so a
// discarded speculative frame can restore it.
func setConcreteProperty(r *realm.Realm, obj *value.Object, key value.PropertyKey, v value.Value) {
	existing, hadPrior := obj.OwnProperty(key)
	if hadPrior && existing.IsAccessor() {
		if setter, ok := existing.Set.(*value.Function); ok {
			invokeFunction(r, setter, obj, []value.Value{v})
			return
		}
		return
	}
	r.ModLog().RecordPropertyWrite(obj, key, existing, hadPrior)
	writable := !hadPrior || existing.Writable
	if !writable {
		return
	}
	obj.DefineOwnProperty(key, value.NewDataDescriptor(v, true, true, true))
}

// raiseUnsoundPropertyAccess reports and unwinds via the engine-fault
// sentinel channel, distinct from an ordinary program-level TypeError,
// because the condition reflects a limit of this engine's static soundness
// guarantee rather than anything the interpreted program itself raised.
func raiseUnsoundPropertyAccess(r *realm.Realm, n ast.Node, detail string) {
	panic(diagnostics.NewSentinel(r.Diagnostics(), &diagnostics.Diagnostic{
		Message:  detail,
		Location: toDiagLocation(n),
		Code:     diagnostics.CodeUnsoundPropertyAccess,
		Severity: diagnostics.RecoverableError,
	}))
}

func evalDelete(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	arg := n.AsUnary().Argument
	if arg.Kind() != ast.MemberKind {
		return completion.NewNormal(value.NewBoolean(r.ID(), true))
	}
	m := arg.AsMember()
	baseC := r.EvaluatePartial(m.Object, env)
	if completion.ReturnIfAbrupt(baseC) {
		return baseC
	}
	obj, ok := objectOf(baseC.Value())
	if !ok {
		return completion.NewNormal(value.NewBoolean(r.ID(), true))
	}
	var keyStr string
	if m.Computed {
		keyC := r.EvaluatePartial(m.Property, env)
		if completion.ReturnIfAbrupt(keyC) {
			return keyC
		}
		s, known := ToStringValue(keyC.Value())
		if !known {
			raiseUnsoundPropertyAccess(r, n, "dynamic delete with an unresolved key")
		}
		keyStr = s
	} else {
		keyStr = m.Property.AsIdentifier().Name
	}
	key := value.StringKey(value.NewString(r.ID(), keyStr))
	existing, hadPrior := obj.OwnProperty(key)
	if hadPrior {
		r.ModLog().RecordPropertyWrite(obj, key, existing, hadPrior)
	}
	removed := obj.DeleteOwnProperty(key)
	if removed && obj.Simple {
		r.ActiveGenerator().EmitPropertyDelete(obj, keyStr, m.Computed)
	}
	return completion.NewNormal(value.NewBoolean(r.ID(), removed))
}
