package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

// evalProgram and evalBlock share the same BlockNode payload: a program
// is just its top-level statement list; neither introduces its own lexical
// environment here, since this engine's simplified binding model hoists
// block-scoped declarations eagerly at the declaring statement rather than
// pre-scanning a block for its lexical names (documented in DESIGN.md
// alongside the envrec.Reference non-use).
func evalProgram(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return evalStatementList(r, n.AsProgram().Statements, env)
}

func evalBlock(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	return evalStatementList(r, n.AsBlock().Statements, env)
}

// evalStatementList implements the Standard's StatementList evaluation:
// each statement's completion updates the running value via UpdateEmpty, and
// the first abrupt completion short-circuits the remainder.
func evalStatementList(r *realm.Realm, stmts []ast.Node, env *envrec.Environment) *completion.Completion {
	var last *completion.Completion = completion.NewNormal(nil)
	for _, s := range stmts {
		c := r.EvaluatePartial(s, env)
		last = completion.UpdateEmpty(c, last.Value())
		if completion.ReturnIfAbrupt(last) {
			return last
		}
	}
	return last
}

// evalVariableDeclaration implements var/let/const declaration + initializer
// evaluation. var declarations install on the nearest var-scope
// (approximated here as the current environment itself — full var hoisting
// to the enclosing function/global scope is a documented simplification);
// let/const install as a fresh mutable/immutable binding on the current
// environment.
func evalVariableDeclaration(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	v := n.AsVariableDeclaration()
	for _, d := range v.Declarators {
		var initVal value.Value = value.NewUndefined(r.ID())
		if d.Init != nil {
			c := r.EvaluatePartial(d.Init, env)
			if completion.ReturnIfAbrupt(c) {
				return c
			}
			initVal = c.Value()
		}
		if c := declareVariable(r, n, v.Kind, d.Name, initVal, env); completion.ReturnIfAbrupt(c) {
			return c
		}
	}
	return completion.NewNormal(nil)
}

func declareVariable(r *realm.Realm, n ast.Node, kind, name string, v value.Value, env *envrec.Environment) *completion.Completion {
	if env.Record.HasBinding(name) {
		if err := env.Record.SetMutableBinding(name, v, false); err != nil {
			return throwError(r, n, "TypeError", err.Error())
		}
		if env.Record.EnvKind() == "global" {
			r.ActiveGenerator().EmitGlobalAssignment(name, v)
		}
		return completion.NewNormal(nil)
	}
	var err error
	if kind == "const" {
		err = env.Record.CreateImmutableBinding(name)
	} else {
		err = env.Record.CreateMutableBinding(name, false)
	}
	if err != nil {
		return throwError(r, n, "SyntaxError", err.Error())
	}
	if err := env.Record.InitializeBinding(name, v); err != nil {
		return throwError(r, n, "TypeError", err.Error())
	}
	if env.Record.EnvKind() == "global" {
		r.ActiveGenerator().EmitGlobalAssignment(name, v)
	}
	return completion.NewNormal(nil)
}

func evalExpressionStatement(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	expr := n.AsExpressionStatement()
	if expr == nil {
		return completion.NewNormal(nil)
	}
	return r.EvaluatePartial(expr, env)
}

// evalFunctionDeclaration binds the declared function's name in the current
// environment eagerly, per the Standard's InstantiateFunctionObject +
// hoisted FunctionDeclarationInstantiation (simplified here to bind at the
// declaration site rather than pre-scanning the enclosing scope, consistent
// with evalVariableDeclaration's simplification above).
func evalFunctionDeclaration(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	fn := n.AsFunctionDeclaration()
	id := r.NextObjectID()
	f := value.NewUserFunction(r.ID(), id, prototypeOf(r, "Function.prototype"), fn.Name, fn.Params, fn.Body, env, fn.IsStrict)
	r.Heap().Register(&f.Object)
	return bindFunctionName(r, n, fn.Name, f, env)
}

func bindFunctionName(r *realm.Realm, n ast.Node, name string, f *value.Function, env *envrec.Environment) *completion.Completion {
	if !env.Record.HasBinding(name) {
		if err := env.Record.CreateMutableBinding(name, false); err != nil {
			return throwError(r, n, "SyntaxError", err.Error())
		}
	}
	if err := env.Record.InitializeBinding(name, f); err != nil {
		return throwError(r, n, "TypeError", err.Error())
	}
	if env.Record.EnvKind() == "global" {
		r.ActiveGenerator().EmitGlobalAssignment(name, f)
	}
	return completion.NewNormal(nil)
}
