package residualizer

import (
	"testing"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/intrinsics"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

func newTestRealm() *realm.Realm {
	return realm.New(value.RealmID(1), intrinsics.NewMapRegistry(), "t", nil, nil, realm.DefaultFlags())
}

func numberAbstractBuild(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
	return ctx.Factory.NewLiteral(ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: value.Number{Value: 1}})
}

func TestResidualizeEmitsGlobalAssignment(t *testing.T) {
	r := newTestRealm()
	r.RootGenerator().EmitGlobalAssignment("x", value.NewNumber(r.ID(), 1))

	program := Residualize(r)
	stmts := program.AsProgram().Statements
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if stmts[0].Kind() != ast.ExpressionStatementKind {
		t.Fatalf("expected an expression statement, got %v", stmts[0].Kind())
	}
}

func TestResidualizeDropsUnreferencedPureDerive(t *testing.T) {
	r := newTestRealm()
	r.CreateAbstract(value.AnyType, value.AnyValueSet, value.NewOriginTemplate("", ""), value.OriginGeneric, nil, true, numberAbstractBuild)

	program := Residualize(r)
	stmts := program.AsProgram().Statements
	if len(stmts) != 0 {
		t.Fatalf("expected the unreferenced Pure entry to be dropped, got %d statements", len(stmts))
	}
}

func TestResidualizeKeepsReferencedDerive(t *testing.T) {
	r := newTestRealm()
	abs := r.CreateAbstract(value.AnyType, value.AnyValueSet, value.NewOriginTemplate("", ""), value.OriginGeneric, nil, true, numberAbstractBuild)
	r.RootGenerator().EmitGlobalAssignment("x", abs)

	program := Residualize(r)
	stmts := program.AsProgram().Statements
	if len(stmts) != 2 {
		t.Fatalf("expected the derive entry's var declaration plus the assignment, got %d statements", len(stmts))
	}
	if stmts[0].Kind() != ast.VariableDeclarationKind {
		t.Fatalf("expected the derive entry to render first as a var declaration, got %v", stmts[0].Kind())
	}
}

func TestResidualizeReconstructsConcreteObject(t *testing.T) {
	r := newTestRealm()
	obj := value.NewObject(r.ID(), r.NextObjectID(), value.NewNull(r.ID()))
	obj.DefineOwnProperty(value.StringKey(value.NewString(r.ID(), "a")), value.NewDataDescriptor(value.NewNumber(r.ID(), 1), true, true, true))
	r.Heap().Register(obj)
	r.RootGenerator().EmitGlobalAssignment("x", obj)

	program := Residualize(r)
	stmts := program.AsProgram().Statements
	if len(stmts) != 3 {
		t.Fatalf("expected shell decl, one property assignment, and the global assignment, got %d statements", len(stmts))
	}
	if stmts[0].Kind() != ast.VariableDeclarationKind {
		t.Fatalf("expected the object shell to render first, got %v", stmts[0].Kind())
	}
}
