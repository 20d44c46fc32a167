// Package residualizer turns a realm's root effect
// generator into the residual program's AST, in two passes. Pass 1
// (reachability.go) walks the recorded entry tree to decide which Pure
// Derive entries are never actually needed and can be dropped outright.
// Pass 2 (this file and serialize.go) walks the surviving entries in record
// order, serializing each entry's Args into expressions and invoking its
// Build closure to render the residual statement.
//
// Grounded on generator/generator.go's Entry/Generator contract and
// cel/program.go's plan-then-evaluate split, generalized here into
// plan-then-print: the effect generator is the plan, this package is the
// printer.
package residualizer

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/realm"
)

// Residualize turns r's recorded effects into a complete residual program.
// The returned Node is always a ProgramKind node whose statements
// are, in order: the realm's prelude declarations (built-ins referenced
// while serializing leaked intrinsic values) followed by the root
// generator's own emitted statements.
func Residualize(r *realm.Realm) ast.Node {
	root := r.RootGenerator()

	rc := newReachability()
	rc.index(root.Entries())
	rc.run(root.Entries())

	ctx := generator.NewEmitContext(0, r.Names())
	st := newEmitState(ctx, r.Prelude(), r.Intrinsics())

	stmts := emitEntries(root.Entries(), st)
	preamble := r.Prelude().Declarations(ctx)

	all := make([]ast.Node, 0, len(preamble)+len(stmts))
	all = append(all, preamble...)
	all = append(all, stmts...)
	return ctx.Factory.NewProgram(ctx.NextID(), ast.SourceLocation{}, all)
}

// emitEntries renders every entry in entries, in record order, concatenating
// each entry's rendered statement(s): effects appear
// in the exact order recorded.
func emitEntries(entries []*generator.Entry, st *emitState) []ast.Node {
	var out []ast.Node
	for _, e := range entries {
		out = append(out, emitEntry(e, st)...)
	}
	return out
}

// emitEntry renders one surviving entry. An omittable entry —
// Pure, declaring, and never marked required by Pass 1 — contributes
// nothing. Otherwise its Args are serialized (possibly appending object/
// symbol/function shell statements ahead of the entry's own statement), any
// Children generators are rendered into ctx.ChildBlocks immediately before
// Build runs, and — for a Derive entry — the expression Build returns is
// wrapped in a `var name = expr;` declaration naming the entry's declared
// Abstract value.
func emitEntry(e *generator.Entry, st *emitState) []ast.Node {
	if e.IsOmittable() {
		return nil
	}

	var out []ast.Node
	argExprs := make([]ast.Node, len(e.Args))
	for i, a := range e.Args {
		argExprs[i] = serializeValue(st, a, &out)
	}

	var savedBlocks [][]ast.Node
	if len(e.Children) > 0 {
		savedBlocks = st.ctx.ChildBlocks
		blocks := make([][]ast.Node, len(e.Children))
		for i, child := range e.Children {
			blocks[i] = emitEntries(child.Entries(), st)
		}
		st.ctx.ChildBlocks = blocks
	}

	rendered := e.Build(argExprs, st.ctx)

	if len(e.Children) > 0 {
		st.ctx.ChildBlocks = savedBlocks
	}

	if e.DeclaresValue() {
		name := st.ctx.NameFor(e.Declared, originHint(e.Declared))
		decl := st.ctx.Factory.NewVariableDeclaration(st.ctx.NextID(), ast.SourceLocation{}, ast.VariableDeclarationNode{
			Kind:        "var",
			Declarators: []ast.VariableDeclaratorNode{{Name: name, Init: rendered}},
		})
		out = append(out, decl)
		return out
	}

	out = append(out, rendered)
	return out
}
