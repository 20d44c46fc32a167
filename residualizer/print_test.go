package residualizer

import (
	"strings"
	"testing"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/value"
)

func TestPrintRendersVariableDeclarationAndExpression(t *testing.T) {
	f := ast.NewFactory()
	decl := f.NewVariableDeclaration(0, ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind: "var",
		Declarators: []ast.VariableDeclaratorNode{
			{Name: "x", Init: f.NewBinary(0, ast.SourceLocation{}, ast.BinaryNode{
				Operator: "+",
				Left:     f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.Number{Value: 1}}),
				Right:    f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.Number{Value: 2}}),
			})},
		},
	})
	tail := f.NewExpressionStatement(0, ast.SourceLocation{}, f.NewIdentifier(0, ast.SourceLocation{}, "x"))
	program := f.NewProgram(0, ast.SourceLocation{}, []ast.Node{decl, tail})

	out := Print(program)

	for _, want := range []string{"var x", "1", "2", "x"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected printed output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintRendersIfElseBranches(t *testing.T) {
	f := ast.NewFactory()
	ifStmt := f.NewIf(0, ast.SourceLocation{}, ast.IfNode{
		Test:       f.NewIdentifier(0, ast.SourceLocation{}, "cond"),
		Consequent: f.NewBlock(0, ast.SourceLocation{}, []ast.Node{f.NewExpressionStatement(0, ast.SourceLocation{}, f.NewIdentifier(0, ast.SourceLocation{}, "a"))}),
		Alternate:  f.NewBlock(0, ast.SourceLocation{}, []ast.Node{f.NewExpressionStatement(0, ast.SourceLocation{}, f.NewIdentifier(0, ast.SourceLocation{}, "b"))}),
	})
	program := f.NewProgram(0, ast.SourceLocation{}, []ast.Node{ifStmt})

	out := Print(program)

	if !strings.Contains(out, "if") || !strings.Contains(out, "else") {
		t.Fatalf("expected an if/else rendering, got:\n%s", out)
	}
	if !strings.Contains(out, "cond") || !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Fatalf("expected both branches and the test to appear, got:\n%s", out)
	}
}

func TestPrintRendersCallExpression(t *testing.T) {
	f := ast.NewFactory()
	call := f.NewCall(0, ast.SourceLocation{}, ast.CallNode{
		Callee:    f.NewIdentifier(0, ast.SourceLocation{}, "add"),
		Arguments: []ast.Node{f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.Number{Value: 2}})},
	})
	program := f.NewProgram(0, ast.SourceLocation{}, []ast.Node{f.NewExpressionStatement(0, ast.SourceLocation{}, call)})

	out := Print(program)
	if !strings.Contains(out, "add(") {
		t.Fatalf("expected a call rendering like add(...), got:\n%s", out)
	}
}
