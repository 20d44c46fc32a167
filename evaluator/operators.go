package evaluator

import (
	"math"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/diagnostics"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

func evalUnary(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	u := n.AsUnary()
	if u.Operator == "delete" {
		return evalDelete(r, n, env)
	}
	if u.Operator == "typeof" && u.Argument.Kind() == ast.IdentifierKind {
		// typeof on an unresolvable identifier yields "undefined" rather than
		// throwing a ReferenceError, per the Standard's typeof special case.
		name := u.Argument.AsIdentifier().Name
		if envrec.ResolveBinding(env, name) == nil {
			return completion.NewNormal(value.NewString(r.ID(), "undefined"))
		}
	}
	argC := r.EvaluatePartial(u.Argument, env)
	if completion.ReturnIfAbrupt(argC) {
		return argC
	}
	arg := argC.Value()
	switch u.Operator {
	case "typeof":
		if s, ok := Typeof(arg); ok {
			return completion.NewNormal(value.NewString(r.ID(), s))
		}
		return completion.NewNormal(deriveUnaryAbstract(r, n, "typeof", arg, value.NewTypeSet(value.KindString)))
	case "void":
		return completion.NewNormal(value.NewUndefined(r.ID()))
	case "!":
		if b, ok := ToBoolean(arg); ok {
			return completion.NewNormal(value.NewBoolean(r.ID(), !b))
		}
		return completion.NewNormal(deriveUnaryAbstract(r, n, "!", arg, value.NewTypeSet(value.KindBoolean)))
	case "-":
		if f, ok := ToNumber(arg); ok {
			return completion.NewNormal(value.NewNumber(r.ID(), -f))
		}
		return completion.NewNormal(deriveUnaryAbstract(r, n, "-", arg, value.NewTypeSet(value.KindNumber)))
	case "+":
		if f, ok := ToNumber(arg); ok {
			return completion.NewNormal(value.NewNumber(r.ID(), f))
		}
		return completion.NewNormal(deriveUnaryAbstract(r, n, "+", arg, value.NewTypeSet(value.KindNumber)))
	case "~":
		if f, ok := ToNumber(arg); ok {
			return completion.NewNormal(value.NewNumber(r.ID(), float64(^toInt32(f))))
		}
		return completion.NewNormal(deriveUnaryAbstract(r, n, "~", arg, value.NewTypeSet(value.KindNumber)))
	}
	diagnostics.InvariantViolation("unary-operator", "unsupported operator "+u.Operator)
	return nil
}

// deriveUnaryAbstract mints an Abstract value standing for an unresolvable
// unary application, recording its declaring entry on the active generator.
func deriveUnaryAbstract(r *realm.Realm, n ast.Node, op string, arg value.Value, types value.TypeSet) *value.Abstract {
	origin := value.NewOriginTemplate(op, "")
	return r.CreateAbstract(types, value.AnyValueSet, origin, value.OriginGeneric, []value.Value{arg}, true,
		func(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
			return ctx.Factory.NewUnary(ctx.NextID(), ast.SourceLocation{}, ast.UnaryNode{Operator: op, Argument: argExprs[0], Prefix: true})
		})
}

func evalBinary(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	b := n.AsBinary()
	leftC := r.EvaluatePartial(b.Left, env)
	if completion.ReturnIfAbrupt(leftC) {
		return leftC
	}
	rightC := r.EvaluatePartial(b.Right, env)
	if completion.ReturnIfAbrupt(rightC) {
		return rightC
	}
	return applyBinaryOp(r, n, b.Operator, leftC.Value(), rightC.Value())
}

func applyBinaryOp(r *realm.Realm, n ast.Node, op string, l, v value.Value) *completion.Completion {
	switch op {
	case "+":
		ls, lok := l.(value.String)
		rs, rok := v.(value.String)
		if lok || rok {
			if lok && rok {
				return completion.NewNormal(value.NewString(r.ID(), ls.Value+rs.Value))
			}
			if IsResolved(l) && IsResolved(v) {
				a, _ := ToStringValue(l)
				b, _ := ToStringValue(v)
				return completion.NewNormal(value.NewString(r.ID(), a+b))
			}
			return completion.NewNormal(deriveBinaryAbstract(r, n, op, l, v, value.NewTypeSet(value.KindString)))
		}
		return arithResult(r, n, op, l, v, func(a, b float64) float64 { return a + b })
	case "-":
		return arithResult(r, n, op, l, v, func(a, b float64) float64 { return a - b })
	case "*":
		return arithResult(r, n, op, l, v, func(a, b float64) float64 { return a * b })
	case "/":
		return arithResult(r, n, op, l, v, func(a, b float64) float64 { return a / b })
	case "%":
		return arithResult(r, n, op, l, v, math.Mod)
	case "&":
		return bitResult(r, n, op, l, v, func(a, b int32) int32 { return a & b })
	case "|":
		return bitResult(r, n, op, l, v, func(a, b int32) int32 { return a | b })
	case "^":
		return bitResult(r, n, op, l, v, func(a, b int32) int32 { return a ^ b })
	case "<<":
		return bitResult(r, n, op, l, v, func(a, b int32) int32 { return a << (uint32(b) & 31) })
	case ">>":
		return bitResult(r, n, op, l, v, func(a, b int32) int32 { return a >> (uint32(b) & 31) })
	case ">>>":
		lf, lok := ToNumber(l)
		rf, rok := ToNumber(v)
		if lok && rok {
			return completion.NewNormal(value.NewNumber(r.ID(), float64(toUint32(lf)>>(toUint32(rf)&31))))
		}
		return completion.NewNormal(deriveBinaryAbstract(r, n, op, l, v, value.NewTypeSet(value.KindNumber)))
	case "<", ">", "<=", ">=":
		return relResult(r, n, op, l, v)
	case "==":
		return looseEquals(r, n, l, v, false)
	case "!=":
		return looseEquals(r, n, l, v, true)
	case "===":
		if eq, ok := StrictEquals(l, v); ok {
			return completion.NewNormal(value.NewBoolean(r.ID(), eq))
		}
		return completion.NewNormal(deriveBinaryAbstract(r, n, op, l, v, value.NewTypeSet(value.KindBoolean)))
	case "!==":
		if eq, ok := StrictEquals(l, v); ok {
			return completion.NewNormal(value.NewBoolean(r.ID(), !eq))
		}
		return completion.NewNormal(deriveBinaryAbstract(r, n, op, l, v, value.NewTypeSet(value.KindBoolean)))
	case "instanceof":
		return evalInstanceof(r, n, l, v)
	case "in":
		return evalIn(r, n, l, v)
	}
	diagnostics.InvariantViolation("binary-operator", "unsupported operator "+op)
	return nil
}

func arithResult(r *realm.Realm, n ast.Node, op string, l, v value.Value, fn func(a, b float64) float64) *completion.Completion {
	lf, lok := ToNumber(l)
	rf, rok := ToNumber(v)
	if lok && rok {
		return completion.NewNormal(value.NewNumber(r.ID(), fn(lf, rf)))
	}
	return completion.NewNormal(deriveBinaryAbstract(r, n, op, l, v, value.NewTypeSet(value.KindNumber)))
}

func bitResult(r *realm.Realm, n ast.Node, op string, l, v value.Value, fn func(a, b int32) int32) *completion.Completion {
	lf, lok := ToNumber(l)
	rf, rok := ToNumber(v)
	if lok && rok {
		return completion.NewNormal(value.NewNumber(r.ID(), float64(fn(toInt32(lf), toInt32(rf)))))
	}
	return completion.NewNormal(deriveBinaryAbstract(r, n, op, l, v, value.NewTypeSet(value.KindNumber)))
}

func relResult(r *realm.Realm, n ast.Node, op string, l, v value.Value) *completion.Completion {
	ls, lIsStr := l.(value.String)
	rs, rIsStr := v.(value.String)
	if lIsStr && rIsStr {
		return completion.NewNormal(value.NewBoolean(r.ID(), stringRel(op, ls.Value, rs.Value)))
	}
	lf, lok := ToNumber(l)
	rf, rok := ToNumber(v)
	if lok && rok {
		if math.IsNaN(lf) || math.IsNaN(rf) {
			return completion.NewNormal(value.NewBoolean(r.ID(), false))
		}
		return completion.NewNormal(value.NewBoolean(r.ID(), numRel(op, lf, rf)))
	}
	return completion.NewNormal(deriveBinaryAbstract(r, n, op, l, v, value.NewTypeSet(value.KindBoolean)))
}

func stringRel(op, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}

func numRel(op string, a, b float64) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}

// looseEquals implements the Standard's Abstract Equality Comparison for
// the concrete arms this engine models: same-kind operands defer to strict
// equality; null/undefined are mutually loosely equal; a number/string pair
// coerces the string side (full ToPrimitive-driven coercion chain for
// objects is out of scope).
func looseEquals(r *realm.Realm, n ast.Node, l, v value.Value, negate bool) *completion.Completion {
	result := func(b bool) *completion.Completion {
		if negate {
			b = !b
		}
		return completion.NewNormal(value.NewBoolean(r.ID(), b))
	}
	_, lUndef := l.(value.Undefined)
	_, lNull := l.(value.Null)
	_, rUndef := v.(value.Undefined)
	_, rNull := v.(value.Null)
	if (lUndef || lNull) && (rUndef || rNull) {
		return result(true)
	}
	if lUndef || lNull || rUndef || rNull {
		return result(false)
	}
	if l.Kind() == v.Kind() {
		if eq, ok := StrictEquals(l, v); ok {
			return result(eq)
		}
		return completion.NewNormal(deriveBinaryAbstract(r, n, "==", l, v, value.NewTypeSet(value.KindBoolean)))
	}
	lf, lok := ToNumber(l)
	rf, rok := ToNumber(v)
	if lok && rok {
		return result(!math.IsNaN(lf) && !math.IsNaN(rf) && lf == rf)
	}
	return completion.NewNormal(deriveBinaryAbstract(r, n, "==", l, v, value.NewTypeSet(value.KindBoolean)))
}

func evalInstanceof(r *realm.Realm, n ast.Node, l, v value.Value) *completion.Completion {
	ctor, ok := v.(*value.Function)
	if !ok {
		return throwError(r, n, "TypeError", "right-hand side of 'instanceof' is not callable")
	}
	protoDesc, _, found := value.Get(&ctor.Object, value.StringKey(value.NewString(r.ID(), "prototype")))
	if !found {
		return completion.NewNormal(value.NewBoolean(r.ID(), false))
	}
	proto, ok := protoDesc.Value.(*value.Object)
	if !ok {
		return completion.NewNormal(value.NewBoolean(r.ID(), false))
	}
	obj, ok := l.(*value.Object)
	if !ok {
		if fn, isFn := l.(*value.Function); isFn {
			obj = &fn.Object
		} else {
			return completion.NewNormal(value.NewBoolean(r.ID(), false))
		}
	}
	cur := obj.Prototype
	for {
		curObj, ok := cur.(*value.Object)
		if !ok {
			if fn, isFn := cur.(*value.Function); isFn {
				curObj = &fn.Object
			} else {
				return completion.NewNormal(value.NewBoolean(r.ID(), false))
			}
		}
		if curObj == proto {
			return completion.NewNormal(value.NewBoolean(r.ID(), true))
		}
		cur = curObj.Prototype
	}
}

func evalIn(r *realm.Realm, n ast.Node, l, v value.Value) *completion.Completion {
	key, ok := propertyKeyOf(r, l)
	if !ok {
		return throwError(r, n, "TypeError", "left-hand side of 'in' could not be coerced to a property key")
	}
	obj, ok := objectOf(v)
	if !ok {
		return throwError(r, n, "TypeError", "right-hand side of 'in' is not an object")
	}
	_, _, found := value.Get(obj, key)
	return completion.NewNormal(value.NewBoolean(r.ID(), found))
}

func propertyKeyOf(r *realm.Realm, v value.Value) (value.PropertyKey, bool) {
	if sym, ok := v.(value.Symbol); ok {
		return value.SymbolKey(sym), true
	}
	s, ok := ToStringValue(v)
	if !ok {
		return value.PropertyKey{}, false
	}
	return value.StringKey(value.NewString(r.ID(), s)), true
}

func objectOf(v value.Value) (*value.Object, bool) {
	switch t := v.(type) {
	case *value.Object:
		return t, true
	case *value.Function:
		return &t.Object, true
	}
	return nil, false
}

// deriveBinaryAbstract mints an Abstract value standing for an unresolvable
// binary application.
func deriveBinaryAbstract(r *realm.Realm, n ast.Node, op string, l, v value.Value, types value.TypeSet) *value.Abstract {
	origin := value.NewOriginTemplate("", op, "")
	return r.CreateAbstract(types, value.AnyValueSet, origin, value.OriginGeneric, []value.Value{l, v}, true,
		func(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
			return ctx.Factory.NewBinary(ctx.NextID(), ast.SourceLocation{}, ast.BinaryNode{Operator: op, Left: argExprs[0], Right: argExprs[1]})
		})
}

func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int32(uint32(int64(f)))
}

func toUint32(f float64) uint32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return uint32(int64(f))
}
