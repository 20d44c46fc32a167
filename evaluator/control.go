package evaluator

import (
	"time"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

// collectLabels unwraps nested label wrappers (`outer: inner: for (...) {}`)
// down to the first non-Labeled statement, per the Standard's
// LabelledEvaluation threading a growing label set down to whatever
// statement it ultimately governs.
func collectLabels(n ast.Node) ([]string, ast.Node) {
	var labels []string
	cur := n
	for cur.Kind() == ast.LabeledKind {
		l := cur.AsLabeled()
		labels = append(labels, l.Label)
		cur = l.Statement
	}
	return labels, cur
}

func containsLabel(labels []string, lbl string) bool {
	for _, l := range labels {
		if l == lbl {
			return true
		}
	}
	return false
}

// evalLabeled dispatches a labeled statement directly to the loop-aware
// variant of its governed statement when that statement is iterable, so an
// unlabeled-looking `continue outer;` deep in the loop body can still be
// recognized as targeting this very loop, per the Standard's
// LabelledEvaluation; a bare `break outer;` reaching here unresolved becomes
// this statement's Normal completion, per the Standard's BreakCompletion
// handling.
func evalLabeled(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	labels, inner := collectLabels(n)
	c := evalStatementWithLabels(r, inner, env, labels)
	if c.Kind() == completion.Break {
		if lbl, has := c.Label(); has && containsLabel(labels, lbl) {
			return completion.NewNormal(c.Value())
		}
	}
	return c
}

func evalStatementWithLabels(r *realm.Realm, n ast.Node, env *envrec.Environment, labels []string) *completion.Completion {
	switch n.Kind() {
	case ast.ForKind:
		return evalForLabeled(r, n, env, labels)
	case ast.WhileKind:
		return evalWhileLabeled(r, n, env, labels)
	case ast.DoWhileKind:
		return evalDoWhileLabeled(r, n, env, labels)
	case ast.ForInKind:
		return evalForInLabeled(r, n, env, labels)
	default:
		return r.EvaluatePartial(n, env)
	}
}

func labelMatches(c *completion.Completion, labels []string) bool {
	lbl, has := c.Label()
	if !has {
		return true
	}
	return containsLabel(labels, lbl)
}

func matchesBreak(c *completion.Completion, labels []string) bool { return labelMatches(c, labels) }
func matchesContinue(c *completion.Completion, labels []string) bool { return labelMatches(c, labels) }

// evalLoopBody runs one iteration's body and classifies the outcome: a
// matching break/continue is absorbed (brk/cont), anything else (Normal,
// Return, Throw, or an unmatched labeled break/continue bound for an outer
// statement) is returned as-is for the caller to either fold into the
// running loop value or propagate.
func evalLoopBody(r *realm.Realm, body ast.Node, env *envrec.Environment, labels []string) (res *completion.Completion, brk, cont bool) {
	c := r.EvaluatePartial(body, env)
	switch c.Kind() {
	case completion.Break:
		if matchesBreak(c, labels) {
			return nil, true, false
		}
		return c, false, false
	case completion.Continue:
		if matchesContinue(c, labels) {
			return nil, false, true
		}
		return c, false, false
	default:
		return c, false, false
	}
}

func checkLoopDeadline(r *realm.Realm, n ast.Node) {
	if s := r.CheckDeadline(time.Now, toDiagLocation(n)); s != nil {
		panic(s)
	}
}

func evalFor(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return evalForLabeled(r, n, env, nil)
}

// evalForLabeled implements the Standard's ForBodyEvaluation. This engine
// does not residualize a loop whose guard condition is itself unresolved —
// the for-in copy-loop special case below is the one loop shape this engine
// does partially evaluate under abstraction — such a guard raises an
// introspection fault rather than attempting an unbounded speculative
// unrolling.
func evalForLabeled(r *realm.Realm, n ast.Node, env *envrec.Environment, labels []string) *completion.Completion {
	f := n.AsFor()
	if f.Init != nil {
		c := r.EvaluatePartial(f.Init, env)
		if completion.ReturnIfAbrupt(c) {
			return c
		}
	}
	var last value.Value
	for {
		checkLoopDeadline(r, n)
		if f.Test != nil {
			testC := r.EvaluatePartial(f.Test, env)
			if completion.ReturnIfAbrupt(testC) {
				return testC
			}
			b, known := ToBoolean(testC.Value())
			if !known {
				raiseIntrospectionError(r, n, "for-loop guard condition is not known statically")
			}
			if !b {
				break
			}
		}
		res, brk, cont := evalLoopBody(r, f.Body, env, labels)
		if brk {
			break
		}
		if !cont && res != nil {
			if completion.ReturnIfAbrupt(res) {
				return res
			}
			if res.Value() != nil {
				last = res.Value()
			}
		}
		if f.Update != nil {
			c := r.EvaluatePartial(f.Update, env)
			if completion.ReturnIfAbrupt(c) {
				return c
			}
		}
	}
	return completion.NewNormal(last)
}

func evalWhile(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return evalWhileLabeled(r, n, env, nil)
}

func evalWhileLabeled(r *realm.Realm, n ast.Node, env *envrec.Environment, labels []string) *completion.Completion {
	w := n.AsWhile()
	var last value.Value
	for {
		checkLoopDeadline(r, n)
		testC := r.EvaluatePartial(w.Test, env)
		if completion.ReturnIfAbrupt(testC) {
			return testC
		}
		b, known := ToBoolean(testC.Value())
		if !known {
			raiseIntrospectionError(r, n, "while-loop guard condition is not known statically")
		}
		if !b {
			break
		}
		res, brk, cont := evalLoopBody(r, w.Body, env, labels)
		if brk {
			break
		}
		if !cont {
			if completion.ReturnIfAbrupt(res) {
				return res
			}
			if res.Value() != nil {
				last = res.Value()
			}
		}
	}
	return completion.NewNormal(last)
}

func evalDoWhile(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return evalDoWhileLabeled(r, n, env, nil)
}

func evalDoWhileLabeled(r *realm.Realm, n ast.Node, env *envrec.Environment, labels []string) *completion.Completion {
	w := n.AsDoWhile()
	var last value.Value
	for {
		checkLoopDeadline(r, n)
		res, brk, cont := evalLoopBody(r, w.Body, env, labels)
		if brk {
			break
		}
		if !cont {
			if completion.ReturnIfAbrupt(res) {
				return res
			}
			if res.Value() != nil {
				last = res.Value()
			}
		}
		testC := r.EvaluatePartial(w.Test, env)
		if completion.ReturnIfAbrupt(testC) {
			return testC
		}
		b, known := ToBoolean(testC.Value())
		if !known {
			raiseIntrospectionError(r, n, "do-while guard condition is not known statically")
		}
		if !b {
			break
		}
	}
	return completion.NewNormal(last)
}

func evalForIn(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return evalForInLabeled(r, n, env, nil)
}

// evalForInLabeled implements for-in over a concrete object, visiting its
// own enumerable string keys exactly once in insertion order, and, when the
// source is partial/abstract, falls back to recognizing and residualizing
// the one structural copy-loop shape this engine supports (anything else
// raises CodeUnsupportedForIn).
func evalForInLabeled(r *realm.Realm, n ast.Node, env *envrec.Environment, labels []string) *completion.Completion {
	fi := n.AsForIn()
	rightC := r.EvaluatePartial(fi.Right, env)
	if completion.ReturnIfAbrupt(rightC) {
		return rightC
	}
	source := rightC.Value()

	if obj, ok := objectOf(source); ok {
		if obj.Partial && !obj.Simple {
			return forInAbstract(r, n, env, fi, source, labels)
		}
		return forInConcrete(r, n, env, fi, obj, labels)
	}
	switch source.Kind() {
	case value.KindUndefined, value.KindNull:
		return completion.NewNormal(nil)
	case value.KindAbstract:
		return forInAbstract(r, n, env, fi, source, labels)
	default:
		// Primitive sources (string/number/boolean/symbol) have no own
		// enumerable string keys worth visiting under this engine's object
		// model; treated as an empty iteration (full ToObject wrapper-object
		// semantics for primitive for-in is out of scope).
		return completion.NewNormal(nil)
	}
}

func forInConcrete(r *realm.Realm, n ast.Node, env *envrec.Environment, fi ast.ForInNode, obj *value.Object, labels []string) *completion.Completion {
	keys := obj.OwnEnumerableStringKeys()
	var last value.Value
	for _, k := range keys {
		checkLoopDeadline(r, n)
		if c := bindForInVariable(r, n, env, fi, k); completion.ReturnIfAbrupt(c) {
			return c
		}
		res, brk, cont := evalLoopBody(r, fi.Body, env, labels)
		if brk {
			break
		}
		if !cont {
			if completion.ReturnIfAbrupt(res) {
				return res
			}
			if res.Value() != nil {
				last = res.Value()
			}
		}
	}
	return completion.NewNormal(last)
}

func bindForInVariable(r *realm.Realm, n ast.Node, env *envrec.Environment, fi ast.ForInNode, k value.String) *completion.Completion {
	if fi.DeclaresBinding {
		if !env.Record.HasBinding(fi.BindingName) {
			if err := env.Record.CreateMutableBinding(fi.BindingName, false); err != nil {
				return throwError(r, n, "SyntaxError", err.Error())
			}
			if err := env.Record.InitializeBinding(fi.BindingName, k); err != nil {
				return throwError(r, n, "TypeError", err.Error())
			}
			return completion.NewNormal(nil)
		}
		if err := env.Record.SetMutableBinding(fi.BindingName, k, false); err != nil {
			return throwError(r, n, "TypeError", err.Error())
		}
		return completion.NewNormal(nil)
	}
	return assignTo(r, n, fi.Target, k, env)
}

// copyShape is the one structural for-in-over-abstract pattern this engine
// recognizes and residualizes: `for (const k in source) { target[k] =
// source[k]; }`, both sides a bare identifier reference to the loop
// variable and to a single fixed object each.
type copyShape struct {
	targetName string
}

func isIdentifierNamed(n ast.Node, name string) bool {
	return n.Kind() == ast.IdentifierKind && n.AsIdentifier().Name == name
}

// matchForInCopyShape structurally matches fi.Body against the copy-loop
// shape, requiring the read side to reference the same bare identifier as
// fi.Right (the loop's own source expression) so the match is more than
// coincidental property-name reuse.
func matchForInCopyShape(fi ast.ForInNode) (copyShape, bool) {
	loopVar := fi.BindingName
	body := fi.Body
	var stmt ast.Node
	if body.Kind() == ast.BlockKind {
		stmts := body.AsBlock().Statements
		if len(stmts) != 1 {
			return copyShape{}, false
		}
		stmt = stmts[0]
	} else {
		stmt = body
	}
	if stmt.Kind() != ast.ExpressionStatementKind {
		return copyShape{}, false
	}
	expr := stmt.AsExpressionStatement()
	if expr == nil || expr.Kind() != ast.AssignmentKind {
		return copyShape{}, false
	}
	a := expr.AsAssignment()
	if a.Operator != "=" {
		return copyShape{}, false
	}
	if a.Target.Kind() != ast.MemberKind {
		return copyShape{}, false
	}
	tm := a.Target.AsMember()
	if !tm.Computed || !isIdentifierNamed(tm.Property, loopVar) || tm.Object.Kind() != ast.IdentifierKind {
		return copyShape{}, false
	}
	if a.Value.Kind() != ast.MemberKind {
		return copyShape{}, false
	}
	vm := a.Value.AsMember()
	if !vm.Computed || !isIdentifierNamed(vm.Property, loopVar) || !isIdentifierNamed(vm.Object, fi.Right.AsIdentifier().Name) {
		return copyShape{}, false
	}
	if fi.Right.Kind() != ast.IdentifierKind {
		return copyShape{}, false
	}
	return copyShape{targetName: tm.Object.AsIdentifier().Name}, true
}

// forInAbstract recognizes the copy-loop shape and residualizes it via
// EmitForIn; anything else over a partial/abstract source is an engine
// fault, since this engine cannot soundly enumerate an unknown object's
// keys at partial-evaluation time.
func forInAbstract(r *realm.Realm, n ast.Node, env *envrec.Environment, fi ast.ForInNode, source value.Value, labels []string) *completion.Completion {
	if !fi.DeclaresBinding {
		raiseUnsupportedForIn(r, n, "for-in over an unresolved source must declare its own loop variable")
	}
	shape, ok := matchForInCopyShape(fi)
	if !ok {
		raiseUnsupportedForIn(r, n, "for-in over an unresolved source must match the target[k] = source[k] copy-loop shape")
	}
	target := envrec.ResolveBinding(env, shape.targetName)
	if target == nil {
		raiseUnsupportedForIn(r, n, "copy-loop target is not a resolvable binding")
	}
	targetVal, err := target.Record.GetBindingValue(shape.targetName, false)
	if err != nil {
		raiseUnsupportedForIn(r, n, "copy-loop target binding is not initialized")
	}
	r.ActiveGenerator().EmitForIn(source, targetVal, fi.BindingName)
	return completion.NewNormal(nil)
}

func evalBreak(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	ref := n.AsBreak()
	return completion.NewBreak(ref.Label, ref.HasLabel, nil)
}

func evalContinue(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	ref := n.AsContinue()
	return completion.NewContinue(ref.Label, ref.HasLabel, nil)
}

func evalReturn(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	arg := n.AsReturn()
	if arg == nil {
		return completion.NewReturn(value.NewUndefined(r.ID()))
	}
	c := r.EvaluatePartial(arg, env)
	if completion.ReturnIfAbrupt(c) {
		return c
	}
	return completion.NewReturn(c.Value())
}

func evalThrow(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	arg := n.AsThrow()
	c := r.EvaluatePartial(arg, env)
	if completion.ReturnIfAbrupt(c) {
		return c
	}
	return completion.NewThrow(c.Value(), loc(n))
}

// evalTry implements the Standard's TryStatement evaluation: a thrown
// completion from the block routes into the handler (binding the thrown
// value to its catch parameter, if any, in a fresh declarative scope); a
// finally clause's own abrupt completion always overrides whatever the
// try/catch produced.
func evalTry(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	t := n.AsTry()
	result := r.EvaluatePartial(t.Block, env)
	if result.Kind() == completion.Throw && t.Handler != nil {
		catchEnv := env
		if t.Handler.HasParam {
			rec := envrec.NewDeclarative()
			catchEnv = envrec.NewEnvironment(rec, env)
			rec.CreateMutableBinding(t.Handler.Param, true)
			rec.InitializeBinding(t.Handler.Param, result.Value())
		}
		result = r.EvaluatePartial(t.Handler.Body, catchEnv)
	}
	if t.Finally != nil {
		finC := r.EvaluatePartial(t.Finally, env)
		if completion.ReturnIfAbrupt(finC) {
			return finC
		}
	}
	return result
}
