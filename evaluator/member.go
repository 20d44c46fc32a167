package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

// evalMember implements the Standard's property-reference evaluation for
// both dot and bracket member expressions.
func evalMember(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	m := n.AsMember()
	baseC := r.EvaluatePartial(m.Object, env)
	if completion.ReturnIfAbrupt(baseC) {
		return baseC
	}
	key, abstractKey, abrupt := resolveMemberKey(r, m.Property, m.Computed, env)
	if abrupt != nil {
		return abrupt
	}
	return getProperty(r, n, baseC.Value(), key, abstractKey)
}

// resolveMemberKey resolves a member expression's property node to either a
// concrete PropertyKey, or — when the key is computed and evaluates to an
// unresolved value — the abstract value standing for that key, so a member
// read (unlike a write, see setProperty) can still derive an abstract
// result rather than fail outright.
func resolveMemberKey(r *realm.Realm, keyNode ast.Node, computed bool, env *envrec.Environment) (value.PropertyKey, value.Value, *completion.Completion) {
	if !computed {
		switch keyNode.Kind() {
		case ast.IdentifierKind:
			return value.StringKey(value.NewString(r.ID(), keyNode.AsIdentifier().Name)), nil, nil
		case ast.LiteralKind:
			lit := keyNode.AsLiteral().Value
			if s, ok := lit.(value.String); ok {
				return value.StringKey(s), nil, nil
			}
			if s, ok := ToStringValue(lit); ok {
				return value.StringKey(value.NewString(r.ID(), s)), nil, nil
			}
		}
	}
	c := r.EvaluatePartial(keyNode, env)
	if completion.ReturnIfAbrupt(c) {
		return value.PropertyKey{}, nil, c
	}
	if sym, ok := c.Value().(value.Symbol); ok {
		return value.SymbolKey(sym), nil, nil
	}
	if s, ok := ToStringValue(c.Value()); ok {
		return value.StringKey(value.NewString(r.ID(), s)), nil, nil
	}
	return value.PropertyKey{}, c.Value(), nil
}

// getProperty implements the Standard's [[Get]], dispatching to an
// accessor's getter via invokeFunction when the resolved descriptor is an
// accessor rather than a data property (value.Get never invokes getters
// itself — that is always the caller's responsibility, per value/lookup.go).
func getProperty(r *realm.Realm, n ast.Node, base value.Value, key value.PropertyKey, abstractKey value.Value) *completion.Completion {
	obj, ok := objectOf(base)
	if !ok {
		if absObj, isAbsObj := base.(*value.AbstractObject); isAbsObj {
			return completion.NewNormal(deriveMemberAbstract(r, n, absObj, key, abstractKey))
		}
		if abs, isAbs := base.(*value.Abstract); isAbs {
			return completion.NewNormal(deriveMemberAbstract(r, n, abs, key, abstractKey))
		}
		if base == nil || base.Kind() == value.KindUndefined {
			return throwError(r, n, "TypeError", "cannot read properties of undefined")
		}
		if base.Kind() == value.KindNull {
			return throwError(r, n, "TypeError", "cannot read properties of null")
		}
		return throwError(r, n, "TypeError", "value is not an object")
	}
	if abstractKey != nil {
		if !obj.Simple || obj.Partial {
			raiseUnsoundPropertyAccess(r, n, "computed member read with an unresolved key on a non-simple object")
		}
		return completion.NewNormal(deriveMemberAbstractKey(r, n, obj, abstractKey))
	}
	d, _, found := value.Get(obj, key)
	if !found {
		if obj.Partial && !obj.Simple {
			raiseUnsoundPropertyAccess(r, n, "property read on a partial object found no own or inherited descriptor")
		}
		return completion.NewNormal(value.NewUndefined(r.ID()))
	}
	if d.IsAccessor() {
		getter, isFn := d.Get.(*value.Function)
		if !isFn {
			return completion.NewNormal(value.NewUndefined(r.ID()))
		}
		return invokeFunction(r, getter, base, nil)
	}
	return completion.NewNormal(d.Value)
}

// deriveMemberAbstract mints an Abstract standing for a property read off an
// unresolved base value. When abstractKey is non-nil the read used a
// computed key this engine could not resolve to a concrete PropertyKey
// either; both the base and the key (if abstract) become the minted value's
// Args.
func deriveMemberAbstract(r *realm.Realm, n ast.Node, base value.Value, key value.PropertyKey, abstractKey value.Value) *value.Abstract {
	args := []value.Value{base}
	var keyExprIdx int
	if abstractKey != nil {
		args = append(args, abstractKey)
		keyExprIdx = 1
	}
	origin := value.NewOriginTemplate("", "")
	return r.CreateAbstract(value.AnyType, value.AnyValueSet, origin, value.OriginSentinelMember, args, true,
		func(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
			if abstractKey != nil {
				return ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{
					Object: argExprs[0], Property: argExprs[keyExprIdx], Computed: true,
				})
			}
			prop := ctx.Factory.NewIdentifier(ctx.NextID(), ast.SourceLocation{}, propertyKeyName(key))
			return ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{
				Object: argExprs[0], Property: prop, Computed: false,
			})
		})
}

// deriveMemberAbstractKey mints an Abstract standing for a computed member
// read on a concrete object whose key could not be resolved to a literal
// PropertyKey (the for-in sentinel-member pattern: `obj[k]` where k is
// itself abstract).
func deriveMemberAbstractKey(r *realm.Realm, n ast.Node, obj *value.Object, abstractKey value.Value) *value.Abstract {
	origin := value.NewOriginTemplate("", "[", "]")
	return r.CreateAbstract(value.AnyType, value.AnyValueSet, origin, value.OriginSentinelMember, []value.Value{obj, abstractKey}, true,
		func(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
			return ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{
				Object: argExprs[0], Property: argExprs[1], Computed: true,
			})
		})
}

// propertyKeyName returns key's textual name for a non-computed member
// rebuild; symbol keys have no literal spelling, so they fall back to their
// description (best-effort — full symbol-keyed residualization is out of
// scope per the engine's literal-property-name requirement).
func propertyKeyName(key value.PropertyKey) string {
	if key.IsSymbol() {
		return key.AsSymbol().Description
	}
	return key.AsString().Value
}
