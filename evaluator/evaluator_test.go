package evaluator

import (
	"testing"
	"time"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/intrinsics"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

// newTestRealm mirrors realm_test.go's own helper, registering the
// evaluator dispatch tables this package is responsible for installing.
func newTestRealm() *realm.Realm {
	r := realm.New(1, intrinsics.NewMapRegistry(), "t", nil, nil, realm.DefaultFlags())
	Register(r)
	return r
}

func newTestEnv() *envrec.Environment {
	return envrec.NewEnvironment(envrec.NewDeclarative(), nil)
}

func num(f *ast.Factory, v float64) ast.Node {
	return f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.Number{Value: v}})
}

func ident(f *ast.Factory, name string) ast.Node {
	return f.NewIdentifier(0, ast.SourceLocation{}, name)
}

func runProgram(t *testing.T, r *realm.Realm, stmts []ast.Node) *completion.Completion {
	t.Helper()
	f := ast.NewFactory()
	program := f.NewProgram(0, ast.SourceLocation{}, stmts)
	c, err := RunProgram(r, program, newTestEnv())
	if err != nil {
		t.Fatalf("RunProgram returned an error: %v", err)
	}
	return c
}

func TestRunProgramVariableDeclarationAndArithmetic(t *testing.T) {
	r := newTestRealm()
	f := ast.NewFactory()

	decl := f.NewVariableDeclaration(0, ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind: "var",
		Declarators: []ast.VariableDeclaratorNode{
			{Name: "x", Init: f.NewBinary(0, ast.SourceLocation{}, ast.BinaryNode{Operator: "+", Left: num(f, 2), Right: num(f, 3)})},
		},
	})
	tail := f.NewExpressionStatement(0, ast.SourceLocation{}, ident(f, "x"))

	c := runProgram(t, r, []ast.Node{decl, tail})
	if c.Kind() != completion.Normal {
		t.Fatalf("expected a Normal completion, got %v", c.Kind())
	}
	n, ok := c.Value().(value.Number)
	if !ok || n.Value != 5 {
		t.Fatalf("expected 5, got %#v", c.Value())
	}
}

func TestRunProgramIfElseTakesConsequent(t *testing.T) {
	r := newTestRealm()
	f := ast.NewFactory()

	ifStmt := f.NewIf(0, ast.SourceLocation{}, ast.IfNode{
		Test: f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.Boolean{Value: true}}),
		Consequent: f.NewExpressionStatement(0, ast.SourceLocation{}, num(f, 1)),
		Alternate:  f.NewExpressionStatement(0, ast.SourceLocation{}, num(f, 2)),
	})

	c := runProgram(t, r, []ast.Node{ifStmt})
	n, ok := c.Value().(value.Number)
	if !ok || n.Value != 1 {
		t.Fatalf("expected the consequent's value 1, got %#v", c.Value())
	}
}

func TestRunProgramWhileLoopAccumulates(t *testing.T) {
	r := newTestRealm()
	f := ast.NewFactory()

	// var i = 0; var sum = 0; while (i < 3) { sum = sum + i; i = i + 1; }
	declI := f.NewVariableDeclaration(0, ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind:        "var",
		Declarators: []ast.VariableDeclaratorNode{{Name: "i", Init: num(f, 0)}},
	})
	declSum := f.NewVariableDeclaration(0, ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind:        "var",
		Declarators: []ast.VariableDeclaratorNode{{Name: "sum", Init: num(f, 0)}},
	})
	body := f.NewBlock(0, ast.SourceLocation{}, []ast.Node{
		f.NewExpressionStatement(0, ast.SourceLocation{}, f.NewAssignment(0, ast.SourceLocation{}, ast.AssignmentNode{
			Operator: "=", Target: ident(f, "sum"),
			Value: f.NewBinary(0, ast.SourceLocation{}, ast.BinaryNode{Operator: "+", Left: ident(f, "sum"), Right: ident(f, "i")}),
		})),
		f.NewExpressionStatement(0, ast.SourceLocation{}, f.NewAssignment(0, ast.SourceLocation{}, ast.AssignmentNode{
			Operator: "=", Target: ident(f, "i"),
			Value: f.NewBinary(0, ast.SourceLocation{}, ast.BinaryNode{Operator: "+", Left: ident(f, "i"), Right: num(f, 1)}),
		})),
	})
	whileStmt := f.NewWhile(0, ast.SourceLocation{}, ast.WhileNode{
		Test: f.NewBinary(0, ast.SourceLocation{}, ast.BinaryNode{Operator: "<", Left: ident(f, "i"), Right: num(f, 3)}),
		Body: body,
	})
	tail := f.NewExpressionStatement(0, ast.SourceLocation{}, ident(f, "sum"))

	c := runProgram(t, r, []ast.Node{declI, declSum, whileStmt, tail})
	n, ok := c.Value().(value.Number)
	if !ok || n.Value != 3 { // 0+1+2
		t.Fatalf("expected sum 3, got %#v", c.Value())
	}
}

func TestRunProgramLabeledBreakExitsOuterLoop(t *testing.T) {
	r := newTestRealm()
	f := ast.NewFactory()

	// outer: while (true) { break outer; }
	inner := f.NewBlock(0, ast.SourceLocation{}, []ast.Node{
		f.NewBreak(0, ast.SourceLocation{}, ast.LabelRef{Label: "outer", HasLabel: true}),
	})
	whileStmt := f.NewWhile(0, ast.SourceLocation{}, ast.WhileNode{
		Test: f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.Boolean{Value: true}}),
		Body: inner,
	})
	labeled := f.NewLabeled(0, ast.SourceLocation{}, ast.LabeledNode{Label: "outer", Statement: whileStmt})
	tail := f.NewExpressionStatement(0, ast.SourceLocation{}, num(f, 42))

	c := runProgram(t, r, []ast.Node{labeled, tail})
	if c.Kind() != completion.Normal {
		t.Fatalf("expected the labeled break to be absorbed, got %v", c.Kind())
	}
	n, ok := c.Value().(value.Number)
	if !ok || n.Value != 42 {
		t.Fatalf("expected the program to continue past the loop to 42, got %#v", c.Value())
	}
}

func TestRunProgramFunctionCallInlinesBody(t *testing.T) {
	r := newTestRealm()
	f := ast.NewFactory()

	// function add(a, b) { return a + b; } var x = add(2, 3);
	addBody := f.NewBlock(0, ast.SourceLocation{}, []ast.Node{
		f.NewReturn(0, ast.SourceLocation{}, f.NewBinary(0, ast.SourceLocation{}, ast.BinaryNode{Operator: "+", Left: ident(f, "a"), Right: ident(f, "b")})),
	})
	addDecl := f.NewFunctionDeclaration(0, ast.SourceLocation{}, ast.FunctionNode{
		Name: "add", HasName: true, Params: []string{"a", "b"}, Body: addBody,
	})
	call := f.NewCall(0, ast.SourceLocation{}, ast.CallNode{Callee: ident(f, "add"), Arguments: []ast.Node{num(f, 2), num(f, 3)}})
	decl := f.NewVariableDeclaration(0, ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind:        "var",
		Declarators: []ast.VariableDeclaratorNode{{Name: "x", Init: call}},
	})
	tail := f.NewExpressionStatement(0, ast.SourceLocation{}, ident(f, "x"))

	c := runProgram(t, r, []ast.Node{addDecl, decl, tail})
	n, ok := c.Value().(value.Number)
	if !ok || n.Value != 5 {
		t.Fatalf("expected the inlined call to produce 5, got %#v", c.Value())
	}
}

func TestRunProgramMemberAccessReadsProperty(t *testing.T) {
	r := newTestRealm()
	f := ast.NewFactory()

	objLit := f.NewObjectLiteral(0, ast.SourceLocation{}, []ast.ObjectPropertyNode{
		{Key: f.NewIdentifier(0, ast.SourceLocation{}, "a"), Value: num(f, 7)},
	})
	decl := f.NewVariableDeclaration(0, ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind:        "var",
		Declarators: []ast.VariableDeclaratorNode{{Name: "obj", Init: objLit}},
	})
	member := f.NewMember(0, ast.SourceLocation{}, ast.MemberNode{Object: ident(f, "obj"), Property: ident(f, "a"), Computed: false})
	tail := f.NewExpressionStatement(0, ast.SourceLocation{}, member)

	c := runProgram(t, r, []ast.Node{decl, tail})
	n, ok := c.Value().(value.Number)
	if !ok || n.Value != 7 {
		t.Fatalf("expected member access to read 7, got %#v", c.Value())
	}
}

func TestRunProgramThrowPropagatesAsThrowCompletion(t *testing.T) {
	r := newTestRealm()
	f := ast.NewFactory()

	throwStmt := f.NewThrow(0, ast.SourceLocation{}, f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.String{Value: "boom"}}))

	c := runProgram(t, r, []ast.Node{throwStmt})
	if c.Kind() != completion.Throw {
		t.Fatalf("expected a Throw completion, got %v", c.Kind())
	}
	s, ok := c.Value().(value.String)
	if !ok || s.Value != "boom" {
		t.Fatalf("expected the thrown value to survive, got %#v", c.Value())
	}
}

func TestRunProgramRecoversDeadlineSentinelAsError(t *testing.T) {
	r := newTestRealm()
	r.DeadlineTracker().SetDeadline(time.Now().Add(-time.Hour))
	f := ast.NewFactory()

	// An already-exceeded deadline should surface as an error from
	// RunProgram rather than a panic escaping to the caller, exercising the
	// one engine-fault-vs-invariant-violation boundary RunProgram owns.
	loop := f.NewWhile(0, ast.SourceLocation{}, ast.WhileNode{
		Test: f.NewLiteral(0, ast.SourceLocation{}, ast.LiteralNode{Value: value.Boolean{Value: true}}),
		Body: f.NewBlock(0, ast.SourceLocation{}, nil),
	})
	program := f.NewProgram(0, ast.SourceLocation{}, []ast.Node{loop})

	_, err := RunProgram(r, program, newTestEnv())
	if err == nil {
		t.Fatalf("expected the deadline sentinel to surface as an error")
	}
}
