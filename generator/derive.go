package generator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/value"
)

// DeriveOptions controls how Derive mints a fresh Abstract and records the
// entry that declares it.
type DeriveOptions struct {
	PatternKind value.OriginKind
	// IsPure marks the entry as droppable when the declared value turns out
	// unused by anything residualized.
	IsPure bool
}

// Derive mints a fresh Abstract value with the given types/values domains
// and origin template, records an entry on g declaring it, and returns the
// new value. build renders the declaring statement (typically a `var`
// declaration initialized from the template) once argExprs have been
// serialized for each entry in args during residualization.
func (g *Generator) Derive(types value.TypeSet, values value.ValueSet, origin value.OriginTemplate, args []value.Value, opts DeriveOptions, build BuildNode) *value.Abstract {
	id := g.alloc.NextObjectID()
	abs := value.NewAbstract(g.alloc.RealmID(), id, types, values, origin, opts.PatternKind, args)
	g.Append(&Entry{
		Args:     args,
		Build:    build,
		Declared: abs,
		declares: true,
		Pure:     opts.IsPure,
	})
	return abs
}

// DeriveObject mints a fresh AbstractObject and records its declaring entry,
// mirroring Derive for the object-typed arm of the abstract domain.
func (g *Generator) DeriveObject(values value.ValueSet, origin value.OriginTemplate, args []value.Value, candidates []*value.Object, candidatesKnown bool, opts DeriveOptions, build BuildNode) *value.AbstractObject {
	id := g.alloc.NextObjectID()
	abs := value.NewAbstractObject(g.alloc.RealmID(), id, values, origin, opts.PatternKind, args, candidates, candidatesKnown)
	g.Append(&Entry{
		Args:     args,
		Build:    build,
		Declared: &abs.Abstract,
		declares: true,
		Pure:     opts.IsPure,
	})
	return abs
}

// declIdent is a small helper shared by the emit* constructors: most entries
// reference their first argument via a plain identifier/member expression
// built from the residualizer's per-value name table, which Build receives
// pre-rendered as argExprs — so the closures below only need to decide
// which ast.Factory call assembles the statement shape, not how names are
// chosen.
func declIdent(ctx *EmitContext, name string) ast.Node {
	return ctx.Factory.NewIdentifier(ctx.NextID(), ast.SourceLocation{}, name)
}
