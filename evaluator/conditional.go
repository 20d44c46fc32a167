package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

func evalConditional(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	c := n.AsConditional()
	testC := r.EvaluatePartial(c.Test, env)
	if completion.ReturnIfAbrupt(testC) {
		return testC
	}
	return joinOnCondition(r, n, env, testC.Value(),
		func() *completion.Completion { return r.EvaluatePartial(c.Consequent, env) },
		func() *completion.Completion { return r.EvaluatePartial(c.Alternate, env) })
}

func evalLogical(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	l := n.AsLogical()
	leftC := r.EvaluatePartial(l.Left, env)
	if completion.ReturnIfAbrupt(leftC) {
		return leftC
	}
	leftVal := leftC.Value()
	rightFn := func() *completion.Completion { return r.EvaluatePartial(l.Right, env) }
	leftFn := func() *completion.Completion { return completion.NewNormal(leftVal) }
	if b, known := ToBoolean(leftVal); known {
		if l.Operator == "&&" {
			if !b {
				return leftC
			}
			return rightFn()
		}
		if b {
			return leftC
		}
		return rightFn()
	}
	if l.Operator == "&&" {
		return joinOnCondition(r, n, env, leftVal, rightFn, leftFn)
	}
	return joinOnCondition(r, n, env, leftVal, leftFn, rightFn)
}

func evalIf(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	i := n.AsIf()
	testC := r.EvaluatePartial(i.Test, env)
	if completion.ReturnIfAbrupt(testC) {
		return testC
	}
	altFn := func() *completion.Completion {
		if i.Alternate == nil {
			return completion.NewNormal(nil)
		}
		return r.EvaluatePartial(i.Alternate, env)
	}
	return joinOnCondition(r, n, env, testC.Value(),
		func() *completion.Completion { return r.EvaluatePartial(i.Consequent, env) },
		altFn)
}

// joinOnCondition joins two branches evaluated under a condition: when
// testVal's truthiness is known, it simply evaluates the corresponding branch;
// otherwise it speculatively evaluates both branches (rolling back whatever
// heap/environment state each one touched, since at most one of them
// reflects reality) and folds their completions — either into one joined
// abstract value (both branches normal) or into a Joined/PossiblyNormal
// completion (completion.JoinCompletions), residualizing both branches'
// recorded effects as a single `if` statement on the active generator.
func joinOnCondition(r *realm.Realm, n ast.Node, env *envrec.Environment, testVal value.Value, runConsequent, runAlternate func() *completion.Completion) *completion.Completion {
	if b, known := ToBoolean(testVal); known {
		if b {
			return runConsequent()
		}
		return runAlternate()
	}

	consC, consGen, consMark := r.EvaluateNodeForEffects(env, func(*envrec.Environment) *completion.Completion { return runConsequent() })
	r.DiscardSpeculativeFrame(consMark)
	altC, altGen, altMark := r.EvaluateNodeForEffects(env, func(*envrec.Environment) *completion.Completion { return runAlternate() })
	r.DiscardSpeculativeFrame(altMark)

	if len(consGen.Entries()) > 0 || len(altGen.Entries()) > 0 {
		r.ActiveGenerator().EmitConditionalEffects(testVal, consGen, altGen)
	}

	if !consC.Kind().IsAbrupt() && !altC.Kind().IsAbrupt() {
		return completion.NewNormal(joinValues(r, testVal, consC.Value(), altC.Value()))
	}
	joined, ok := completion.JoinCompletions(testVal, consC, altC, sameThrowKind(r))
	if !ok {
		raiseIntrospectionError(r, n, "branches under an abstract condition complete abruptly in incompatible ways")
	}
	return joined
}

// joinValues folds two concrete-or-abstract branch values reached under an
// unresolved condition into one Abstract value standing for `cond ? a : b`,
// short-circuiting to a itself when both branches are provably identical.
func joinValues(r *realm.Realm, cond, a, b value.Value) value.Value {
	if a == nil && b == nil {
		return nil
	}
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if eq, known := StrictEquals(a, b); known && eq {
		return a
	}
	types := kindSetOf(a).Union(kindSetOf(b))
	origin := value.NewOriginTemplate("", " ? ", " : ")
	return r.CreateAbstract(types, value.AnyValueSet, origin, value.OriginGeneric, []value.Value{cond, a, b}, true,
		func(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
			return ctx.Factory.NewConditional(ctx.NextID(), ast.SourceLocation{}, ast.ConditionalNode{
				Test: argExprs[0], Consequent: argExprs[1], Alternate: argExprs[2],
			})
		})
}

func kindSetOf(v value.Value) value.TypeSet {
	if abs, ok := v.(*value.Abstract); ok {
		return abs.Types
	}
	return value.NewTypeSet(v.Kind())
}

// sameThrowKind compares two Throw completions' thrown error objects by
// their "name" property, the best concrete proxy this engine has for "error
// kind": a join of two throwing branches succeeds only when both throw the
// same error kind.
func sameThrowKind(r *realm.Realm) func(a, b *completion.Completion) bool {
	return func(a, b *completion.Completion) bool {
		ak, aok := errorKindOf(a.Value())
		bk, bok := errorKindOf(b.Value())
		return aok && bok && ak == bk
	}
}

func errorKindOf(v value.Value) (string, bool) {
	obj, ok := objectOf(v)
	if !ok {
		return "", false
	}
	d, _, found := value.Get(obj, value.StringKey(value.NewString(v.Realm(), "name")))
	if !found {
		return "", false
	}
	s, ok := d.Value.(value.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}
