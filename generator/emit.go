package generator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/value"
)

func exprStmt(ctx *EmitContext, expr ast.Node) ast.Node {
	return ctx.Factory.NewExpressionStatement(ctx.NextID(), ast.SourceLocation{}, expr)
}

func assign(ctx *EmitContext, target, val ast.Node) ast.Node {
	return ctx.Factory.NewAssignment(ctx.NextID(), ast.SourceLocation{}, ast.AssignmentNode{
		Operator: "=", Target: target, Value: val,
	})
}

func memberOf(ctx *EmitContext, obj ast.Node, key string, computed bool) ast.Node {
	var prop ast.Node
	if computed {
		prop = ctx.Factory.NewLiteral(ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: value.String{Value: key}})
	} else {
		prop = declIdent(ctx, key)
	}
	return ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{Object: obj, Property: prop, Computed: computed})
}

// EmitGlobalAssignment records `name = v` at the top level.
func (g *Generator) EmitGlobalAssignment(name string, v value.Value) *Entry {
	return g.Append(&Entry{
		Args: []value.Value{v},
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			return exprStmt(ctx, assign(ctx, declIdent(ctx, name), argExprs[0]))
		},
	})
}

// EmitGlobalDelete records `delete globalThis.name`.
func (g *Generator) EmitGlobalDelete(name string) *Entry {
	return g.Append(&Entry{
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			target := memberOf(ctx, declIdent(ctx, "globalThis"), name, false)
			return exprStmt(ctx, ctx.Factory.NewUnary(ctx.NextID(), ast.SourceLocation{}, ast.UnaryNode{
				Operator: "delete", Argument: target, Prefix: true,
			}))
		},
	})
}

// EmitPropertyAssignment records `base[key] = v` / `base.key = v`. computed
// selects bracket vs. dot notation in the residual source.
func (g *Generator) EmitPropertyAssignment(base value.Value, key string, computed bool, v value.Value) *Entry {
	return g.Append(&Entry{
		Args: []value.Value{base, v},
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			target := memberOf(ctx, argExprs[0], key, computed)
			return exprStmt(ctx, assign(ctx, target, argExprs[1]))
		},
	})
}

// EmitDefineProperty records an `Object.defineProperty(base, key, descriptor)`
// call, used when a property's attributes (writable/enumerable/
// configurable, or an accessor pair) cannot be expressed by plain
// assignment.
func (g *Generator) EmitDefineProperty(base value.Value, key string, descriptorArgs []value.Value, buildDescriptor func(descExprs []ast.Node, ctx *EmitContext) ast.Node) *Entry {
	args := append([]value.Value{base}, descriptorArgs...)
	return g.Append(&Entry{
		Args: args,
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			callee := memberOf(ctx, declIdent(ctx, "Object"), "defineProperty", false)
			keyLit := ctx.Factory.NewLiteral(ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: value.String{Value: key}})
			descriptor := buildDescriptor(argExprs[1:], ctx)
			return exprStmt(ctx, ctx.Factory.NewCall(ctx.NextID(), ast.SourceLocation{}, ast.CallNode{
				Callee:    callee,
				Arguments: []ast.Node{argExprs[0], keyLit, descriptor},
			}))
		},
	})
}

// EmitOrFoldPropertyAssignment records `base[key] = v` / `base.key = v`
// like EmitPropertyAssignment, but when the immediately preceding entry on g
// was itself the last recorded write to this exact (base, key) pair — and
// nothing has been appended since — it replaces that entry in place instead
// of appending a second one, eliminating the dead earlier write from the
// residual program entirely. Only a concrete
// base with a literal (non-computed) or literal-computed key participates;
// callers with a dynamic key should use EmitDynamicPropertyAssignment
// instead, which never folds.
func (g *Generator) EmitOrFoldPropertyAssignment(base *value.Object, key string, computed bool, v value.Value) *Entry {
	wk := writeKey{obj: base, key: key}
	if g.lastWrite == nil {
		g.lastWrite = map[writeKey]*Entry{}
	}
	if prev, ok := g.lastWrite[wk]; ok && len(g.entries) > 0 && g.entries[len(g.entries)-1] == prev {
		prev.Args = []value.Value{base, v}
		prev.Build = func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			target := memberOf(ctx, argExprs[0], key, computed)
			return exprStmt(ctx, assign(ctx, target, argExprs[1]))
		}
		return prev
	}
	e := g.EmitPropertyAssignment(base, key, computed, v)
	g.lastWrite[wk] = e
	return e
}

// EmitDynamicPropertyAssignment records `base[keyExpr] = v` where the
// property key is itself an abstract value rather than a compile-time
// literal string. keyVal is
// serialized as the second argument expression, with the target always
// rendered in computed (bracket) form.
func (g *Generator) EmitDynamicPropertyAssignment(base, keyVal, v value.Value) *Entry {
	return g.Append(&Entry{
		Args: []value.Value{base, keyVal, v},
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			target := ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{
				Object: argExprs[0], Property: argExprs[1], Computed: true,
			})
			return exprStmt(ctx, assign(ctx, target, argExprs[2]))
		},
	})
}

// EmitConditionalEffects records a residual `if (condExpr) { ... } else {
// ... }` whose two branch bodies are the effects recorded by two
// speculatively-evaluated child generators, joined under the branch
// condition. The caller is responsible for having already rolled
// back whatever heap/environment mutations each speculative branch
// performed — these children exist purely to be replayed as residual
// source, not to leave live state behind.
func (g *Generator) EmitConditionalEffects(cond value.Value, consequent, alternate *Generator) *Entry {
	e := &Entry{
		Args:     []value.Value{cond},
		Children: []*Generator{consequent, alternate},
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			blocks := ctx.ChildBlocks
			consBlock := ctx.Factory.NewBlock(ctx.NextID(), ast.SourceLocation{}, blocks[0])
			altBlock := ctx.Factory.NewBlock(ctx.NextID(), ast.SourceLocation{}, blocks[1])
			return ctx.Factory.NewIf(ctx.NextID(), ast.SourceLocation{}, ast.IfNode{
				Test: argExprs[0], Consequent: consBlock, Alternate: altBlock,
			})
		},
	}
	return g.Append(e)
}

// EmitForIn records a residual `for (var loopVar in source) { target[loopVar]
// = source[loopVar]; }` copy loop — the one for-in-over-abstract shape this
// engine residualizes structurally rather than evaluating concretely.
// loopVarHint seeds the minted loop variable's debug name.
func (g *Generator) EmitForIn(source, target value.Value, loopVarHint string) *Entry {
	return g.Append(&Entry{
		Args: []value.Value{source, target},
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			loopVar := ctx.FreshLoopVar(loopVarHint)
			srcExpr, tgtExpr := argExprs[0], argExprs[1]
			keyRef := func() ast.Node { return declIdent(ctx, loopVar) }
			assignStmt := exprStmt(ctx, assign(ctx,
				ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{Object: tgtExpr, Property: keyRef(), Computed: true}),
				ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{Object: srcExpr, Property: keyRef(), Computed: true}),
			))
			body := ctx.Factory.NewBlock(ctx.NextID(), ast.SourceLocation{}, []ast.Node{assignStmt})
			return ctx.Factory.NewForIn(ctx.NextID(), ast.SourceLocation{}, ast.ForInNode{
				DeclaresBinding: true,
				BindingName:     loopVar,
				Right:           srcExpr,
				Body:            body,
			})
		},
	})
}

// EmitPropertyDelete records `delete base[key]` / `delete base.key`.
func (g *Generator) EmitPropertyDelete(base value.Value, key string, computed bool) *Entry {
	return g.Append(&Entry{
		Args: []value.Value{base},
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			target := memberOf(ctx, argExprs[0], key, computed)
			return exprStmt(ctx, ctx.Factory.NewUnary(ctx.NextID(), ast.SourceLocation{}, ast.UnaryNode{
				Operator: "delete", Argument: target, Prefix: true,
			}))
		},
	})
}

// EmitCall records a bare call statement `callee(args...)` evaluated for its
// side effects. EmitCall always drops the result; a call whose result is
// used is recorded through Derive instead.
func (g *Generator) EmitCall(callee value.Value, args []value.Value) *Entry {
	all := append([]value.Value{callee}, args...)
	return g.Append(&Entry{
		Args: all,
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			return exprStmt(ctx, ctx.Factory.NewCall(ctx.NextID(), ast.SourceLocation{}, ast.CallNode{
				Callee:    argExprs[0],
				Arguments: argExprs[1:],
			}))
		},
	})
}

// EmitVoidExpression records a bare expression statement kept purely for its
// side effects, e.g. a residualized condition of a loop whose body was
// proven dead.
func (g *Generator) EmitVoidExpression(v value.Value) *Entry {
	return g.Append(&Entry{
		Args: []value.Value{v},
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			return exprStmt(ctx, argExprs[0])
		},
	})
}

// EmitConsoleLog records a `console.log(args...)` call statement. No
// evaluator path calls it.
func (g *Generator) EmitConsoleLog(args []value.Value) *Entry {
	return g.Append(&Entry{
		Args: args,
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			callee := memberOf(ctx, declIdent(ctx, "console"), "log", false)
			return exprStmt(ctx, ctx.Factory.NewCall(ctx.NextID(), ast.SourceLocation{}, ast.CallNode{
				Callee:    callee,
				Arguments: argExprs,
			}))
		},
	})
}

// EmitInvariant records `if (!(condition)) throw new Error(message)` — the
// residual guard standing in for an invariant the evaluator assumed but
// could not prove at partial-evaluation time. conditionArgs are the values
// the condition expression reads; buildCondition renders the boolean test
// from their serialized expressions.
func (g *Generator) EmitInvariant(conditionArgs []value.Value, message string, buildCondition func(condExprs []ast.Node, ctx *EmitContext) ast.Node) *Entry {
	return g.Append(&Entry{
		Args: conditionArgs,
		Build: func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
			cond := buildCondition(argExprs, ctx)
			negated := ctx.Factory.NewUnary(ctx.NextID(), ast.SourceLocation{}, ast.UnaryNode{
				Operator: "!", Argument: cond, Prefix: true,
			})
			errCallee := declIdent(ctx, "Error")
			msgLit := ctx.Factory.NewLiteral(ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: value.String{Value: message}})
			newErr := ctx.Factory.NewNew(ctx.NextID(), ast.SourceLocation{}, ast.CallNode{
				Callee: errCallee, Arguments: []ast.Node{msgLit},
			})
			throwStmt := ctx.Factory.NewThrow(ctx.NextID(), ast.SourceLocation{}, newErr)
			consequent := ctx.Factory.NewBlock(ctx.NextID(), ast.SourceLocation{}, []ast.Node{throwStmt})
			return ctx.Factory.NewIf(ctx.NextID(), ast.SourceLocation{}, ast.IfNode{
				Test: negated, Consequent: consequent,
			})
		},
	})
}
