// Package evaluator implements the AST-node-kind to evaluator-function
// dispatch table and the evaluation routines themselves. Grounded
// on interpreter/planner.go's `switch expr.Kind()` construction of one
// Interpretable per expression node, and interpreter/decorators.go's
// decorator pipeline for the idea of an evaluator step that can fold a
// constant sub-expression away — mirrored here as the concrete/abstract
// join logic rather than a constant-folding optimizer pass, since our
// "constant folding" runs unconditionally as whole-program evaluation
// rather than as an opt-in decorator.
package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/yernsun/prepack/value"
)

// ToBoolean implements the Standard's ToBoolean abstract operation for the
// arms this engine models concretely. An Abstract value's truthiness is
// unknown unless its values domain collapses to a single concrete value,
// in which case that value's truthiness is authoritative.
func ToBoolean(v value.Value) (b bool, known bool) {
	switch t := v.(type) {
	case value.Undefined:
		return false, true
	case value.Null:
		return false, true
	case value.Boolean:
		return t.Value, true
	case value.Number:
		return t.Value != 0 && !math.IsNaN(t.Value), true
	case value.String:
		return t.Value != "", true
	case value.Symbol:
		return true, true
	case *value.Object:
		return true, true
	case *value.Function:
		return true, true
	case *value.Abstract:
		if single, ok := singleCandidate(t); ok {
			return ToBoolean(single)
		}
		return false, false
	case *value.AbstractObject:
		return true, true
	}
	return false, false
}

// singleCandidate returns the abstract value's sole concrete candidate when
// its values domain is a finite singleton.
func singleCandidate(a *value.Abstract) (value.Value, bool) {
	if a.Values.IsTop() {
		return nil, false
	}
	cands := a.Values.Candidates()
	if len(cands) == 1 {
		return cands[0], true
	}
	return nil, false
}

// ToNumber implements a representative subset of the Standard's ToNumber:
// concrete primitives convert per the Standard; objects are out of scope
// for this engine's arithmetic coercion (full host-object coercion via
// reflective escape is not modeled) and yield NaN.
func ToNumber(v value.Value) (n float64, known bool) {
	switch t := v.(type) {
	case value.Undefined:
		return math.NaN(), true
	case value.Null:
		return 0, true
	case value.Boolean:
		if t.Value {
			return 1, true
		}
		return 0, true
	case value.Number:
		return t.Value, true
	case value.String:
		return stringToNumber(t.Value), true
	case *value.Abstract:
		if single, ok := singleCandidate(t); ok {
			return ToNumber(single)
		}
		return math.NaN(), false
	}
	return math.NaN(), false
}

func stringToNumber(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ToStringValue implements a representative subset of the Standard's
// ToString abstract operation.
func ToStringValue(v value.Value) (s string, known bool) {
	switch t := v.(type) {
	case value.Undefined:
		return "undefined", true
	case value.Null:
		return "null", true
	case value.Boolean:
		if t.Value {
			return "true", true
		}
		return "false", true
	case value.Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64), true
	case value.String:
		return t.Value, true
	case *value.Abstract:
		if single, ok := singleCandidate(t); ok {
			return ToStringValue(single)
		}
		return "", false
	}
	return "", false
}

// Typeof implements the Standard's `typeof` operator over the arms this
// engine can resolve concretely; returns ok=false for an Abstract value
// whose types domain has not collapsed to a single kind.
func Typeof(v value.Value) (s string, known bool) {
	switch t := v.(type) {
	case value.Undefined:
		return "undefined", true
	case value.Null:
		return "object", true // the Standard's well-known `typeof null === "object"` quirk.
	case value.Boolean:
		return "boolean", true
	case value.Number:
		return "number", true
	case value.String:
		return "string", true
	case value.Symbol:
		return "symbol", true
	case *value.Function:
		return "function", true
	case *value.Object:
		return "object", true
	case *value.AbstractObject:
		return "object", true
	case *value.Abstract:
		if k, ok := t.Types.Single(); ok {
			return typeofKind(k)
		}
		return "", false
	}
	return "", false
}

func typeofKind(k value.Kind) (string, bool) {
	switch k {
	case value.KindUndefined:
		return "undefined", true
	case value.KindNull:
		return "object", true
	case value.KindBoolean:
		return "boolean", true
	case value.KindNumber:
		return "number", true
	case value.KindString:
		return "string", true
	case value.KindSymbol:
		return "symbol", true
	case value.KindObject:
		return "object", true
	default:
		return "", false
	}
}

// StrictEquals implements the Standard's `===` for concrete operands.
// known is false whenever either side is an unresolved Abstract value.
func StrictEquals(a, b value.Value) (eq bool, known bool) {
	an, aok := concreteTag(a)
	bn, bok := concreteTag(b)
	if !aok || !bok {
		return false, false
	}
	if an.Kind() != bn.Kind() {
		return false, true
	}
	switch x := an.(type) {
	case value.Undefined:
		return true, true
	case value.Null:
		return true, true
	case value.Boolean:
		return x.Value == bn.(value.Boolean).Value, true
	case value.Number:
		y := bn.(value.Number).Value
		if math.IsNaN(x.Value) || math.IsNaN(y) {
			return false, true
		}
		return x.Value == y, true
	case value.String:
		return x.Value == bn.(value.String).Value, true
	case value.Symbol:
		return x.ID() == bn.(value.Symbol).ID(), true
	case *value.Object:
		return x == bn.(*value.Object), true
	case *value.Function:
		return x == bn.(*value.Function), true
	}
	return false, true
}

// concreteTag resolves an Abstract value down to its sole concrete
// candidate, if any, so equality/arithmetic can operate uniformly.
func concreteTag(v value.Value) (value.Value, bool) {
	if ao, ok := v.(*value.AbstractObject); ok {
		v = &ao.Abstract
	}
	if a, ok := v.(*value.Abstract); ok {
		if single, ok := singleCandidate(a); ok {
			return concreteTag(single)
		}
		return nil, false
	}
	return v, true
}

// IsResolved reports whether v is a value this engine can read through
// arithmetically/structurally, as opposed to a genuinely unknown Abstract.
func IsResolved(v value.Value) bool {
	_, ok := concreteTag(v)
	return ok
}
