// Package ast defines the minimal AST node-kind surface the evaluator
// dispatcher switches on. The parser itself — turning source text into
// these nodes — is an out-of-scope external collaborator; this package
// specifies only the shape its output must have. Grounded on cel-go's
// common/ast/expr.go (a closed ExprKind enum plus an Expr interface with
// As<Kind> accessors) and common/ast/factory.go (a factory interface for
// constructing nodes), adapted from CEL's expression-only grammar to a
// full statement/expression grammar.
package ast

// NodeKind enumerates every syntactic form the evaluator dispatcher has an
// entry for: one per recognized syntactic form.
type NodeKind int

const (
	// UnspecifiedKind marks an unset node; never produced by a conformant
	// parser, present only as a zero value guard.
	UnspecifiedKind NodeKind = iota

	// Expressions.
	LiteralKind
	IdentifierKind
	ArrayLiteralKind
	ObjectLiteralKind
	FunctionExpressionKind
	UnaryKind
	BinaryKind
	LogicalKind
	AssignmentKind
	ConditionalKind // ternary `a ? b : c`
	CallKind
	NewKind
	MemberKind // `a.b` / `a[b]`
	SequenceKind

	// Statements.
	ProgramKind
	BlockKind
	VariableDeclarationKind
	ExpressionStatementKind
	IfKind
	ForKind
	ForInKind
	WhileKind
	DoWhileKind
	BreakKind
	ContinueKind
	ReturnKind
	ThrowKind
	TryKind
	FunctionDeclarationKind
	LabeledKind
	EmptyKind
)

func (k NodeKind) String() string {
	names := map[NodeKind]string{
		UnspecifiedKind:         "unspecified",
		LiteralKind:             "literal",
		IdentifierKind:          "identifier",
		ArrayLiteralKind:        "array-literal",
		ObjectLiteralKind:       "object-literal",
		FunctionExpressionKind:  "function-expression",
		UnaryKind:               "unary",
		BinaryKind:              "binary",
		LogicalKind:             "logical",
		AssignmentKind:          "assignment",
		ConditionalKind:         "conditional",
		CallKind:                "call",
		NewKind:                 "new",
		MemberKind:              "member",
		SequenceKind:            "sequence",
		ProgramKind:             "program",
		BlockKind:               "block",
		VariableDeclarationKind: "variable-declaration",
		ExpressionStatementKind: "expression-statement",
		IfKind:                  "if",
		ForKind:                 "for",
		ForInKind:               "for-in",
		WhileKind:               "while",
		DoWhileKind:             "do-while",
		BreakKind:               "break",
		ContinueKind:            "continue",
		ReturnKind:              "return",
		ThrowKind:               "throw",
		TryKind:                 "try",
		FunctionDeclarationKind: "function-declaration",
		LabeledKind:             "labeled",
		EmptyKind:               "empty",
	}
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}

// SourceLocation carries a node's position: an AST whose nodes carry a
// location {start, end, source}.
type SourceLocation struct {
	Source     string
	StartLine  int
	StartCol   int
	EndLine    int
	EndCol     int
}

// Node is the base type every AST node satisfies. Concrete shapes for
// each NodeKind live in nodes.go and are reached via the As* methods
// below, mirroring cel-go's Expr.AsCall()/AsSelect()/... accessor pattern.
type Node interface {
	ID() int64
	Kind() NodeKind
	Location() SourceLocation

	AsLiteral() LiteralNode
	AsIdentifier() IdentifierNode
	AsArrayLiteral() ArrayLiteralNode
	AsObjectLiteral() ObjectLiteralNode
	AsFunctionExpression() FunctionNode
	AsUnary() UnaryNode
	AsBinary() BinaryNode
	AsLogical() LogicalNode
	AsAssignment() AssignmentNode
	AsConditional() ConditionalNode
	AsCall() CallNode
	AsNew() CallNode
	AsMember() MemberNode
	AsSequence() SequenceNode

	AsProgram() BlockNode
	AsBlock() BlockNode
	AsVariableDeclaration() VariableDeclarationNode
	AsExpressionStatement() Node
	AsIf() IfNode
	AsFor() ForNode
	AsForIn() ForInNode
	AsWhile() WhileNode
	AsDoWhile() WhileNode
	AsBreak() LabelRef
	AsContinue() LabelRef
	AsReturn() Node
	AsThrow() Node
	AsTry() TryNode
	AsFunctionDeclaration() FunctionNode
	AsLabeled() LabeledNode

	isNode()
}
