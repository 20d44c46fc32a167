package generator

import (
	"testing"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/value"
)

type fakeAlloc struct {
	next  uint64
	realm value.RealmID
}

func (f *fakeAlloc) NextObjectID() value.ObjectID {
	f.next++
	return value.ObjectID(f.next)
}

func (f *fakeAlloc) RealmID() value.RealmID { return f.realm }

func TestDeriveAppendsDeclaringEntryMarkedPure(t *testing.T) {
	g := New(&fakeAlloc{realm: 1})
	abs := g.Derive(value.NewTypeSet(value.KindNumber), value.AnyValueSet, value.NewOriginTemplate("", ""), nil, DeriveOptions{IsPure: true}, func(argExprs []ast.Node, ctx *EmitContext) ast.Node {
		return ctx.Factory.NewEmpty(ctx.NextID(), ast.SourceLocation{})
	})

	entries := g.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if !e.DeclaresValue() || e.Declared != abs {
		t.Fatalf("entry does not declare the returned abstract value")
	}
	if !e.IsOmittable() {
		t.Fatalf("pure, never-required entry should be omittable")
	}
	e.MarkRequired()
	if e.IsOmittable() {
		t.Fatalf("entry marked required must not be omittable")
	}
}

func TestEmitGlobalAssignmentBuildsAssignmentStatement(t *testing.T) {
	g := New(&fakeAlloc{realm: 1})
	g.EmitGlobalAssignment("x", value.Number{Value: 1})

	entries := g.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := NewEmitContext(0, NewNameGenerator("", nil))
	valueExpr := ctx.Factory.NewLiteral(ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: value.Number{Value: 1}})
	stmt := entries[0].Build([]ast.Node{valueExpr}, ctx)
	if stmt.Kind() != ast.ExpressionStatementKind {
		t.Fatalf("expected an expression statement, got %v", stmt.Kind())
	}
	assignExpr := stmt.AsExpressionStatement()
	if assignExpr.Kind() != ast.AssignmentKind {
		t.Fatalf("expected assignment expression, got %v", assignExpr.Kind())
	}
	if assignExpr.AsAssignment().Target.AsIdentifier().Name != "x" {
		t.Fatalf("unexpected assignment target")
	}
}

func TestNameGeneratorNeverRepeatsAndHonorsForbidden(t *testing.T) {
	ng := NewNameGenerator("t1", []string{"_1_t1"})
	first := ng.Fresh()
	second := ng.Fresh()
	if first == second {
		t.Fatalf("expected distinct names, got %q twice", first)
	}
	if first == "_1_t1" {
		t.Fatalf("forbidden name was minted")
	}
}

func TestPreludeGeneratorMemoizesReference(t *testing.T) {
	ng := NewNameGenerator("", nil)
	pg := NewPreludeGenerator(ng)
	a := pg.Reference("Object.defineProperty")
	b := pg.Reference("Object.defineProperty")
	if a != b {
		t.Fatalf("expected memoized reference, got %q then %q", a, b)
	}
	ctx := NewEmitContext(0, NewNameGenerator("", nil))
	decls := pg.Declarations(ctx)
	if len(decls) != 1 {
		t.Fatalf("expected exactly one declaration, got %d", len(decls))
	}
}
