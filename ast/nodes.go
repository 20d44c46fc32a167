package ast

import "github.com/yernsun/prepack/value"

// LiteralNode is a primitive scalar literal (one of the concrete primitive
// value kinds).
type LiteralNode struct {
	Value value.Value
}

// IdentifierNode is a simple variable/constant reference.
type IdentifierNode struct {
	Name string
}

// ArrayLiteralNode is an array literal expression; nil elements represent
// elisions (sparse array holes).
type ArrayLiteralNode struct {
	Elements []Node
}

// ObjectPropertyNode is a single object-literal entry.
type ObjectPropertyNode struct {
	Key      Node // IdentifierNode or LiteralNode(string)
	Value    Node
	Computed bool
	IsGetter bool
	IsSetter bool
}

// ObjectLiteralNode is an object literal expression.
type ObjectLiteralNode struct {
	Properties []ObjectPropertyNode
}

// FunctionNode is a function expression or declaration.
type FunctionNode struct {
	Name     string
	HasName  bool
	Params   []string
	Body     Node // BlockKind
	IsArrow  bool
	IsStrict bool
}

// UnaryNode is a prefix unary operator application.
type UnaryNode struct {
	Operator string
	Argument Node
	Prefix   bool
}

// BinaryNode is an infix binary operator application (arithmetic,
// relational, bitwise).
type BinaryNode struct {
	Operator string
	Left     Node
	Right    Node
}

// LogicalNode is `&&`/`||`, kept distinct from BinaryNode since its
// operands must short-circuit.
type LogicalNode struct {
	Operator string // "&&" or "||"
	Left     Node
	Right    Node
}

// AssignmentNode is `target op= value`; Operator is "=" for plain
// assignment.
type AssignmentNode struct {
	Operator string
	Target   Node
	Value    Node
}

// ConditionalNode is the ternary `test ? consequent : alternate`.
type ConditionalNode struct {
	Test       Node
	Consequent Node
	Alternate  Node
}

// CallNode is a function call or `new` expression.
type CallNode struct {
	Callee    Node
	Arguments []Node
}

// MemberNode is `object.property` or `object[property]`.
type MemberNode struct {
	Object   Node
	Property Node
	Computed bool
}

// SequenceNode is the comma operator `a, b, c`.
type SequenceNode struct {
	Expressions []Node
}

// BlockNode is a statement list (also used for Program, the top level).
type BlockNode struct {
	Statements []Node
}

// VariableDeclaratorNode is one `name = init` entry of a declaration.
type VariableDeclaratorNode struct {
	Name string
	Init Node // nil if uninitialized
}

// VariableDeclarationNode is `var`/`let`/`const` followed by declarators.
type VariableDeclarationNode struct {
	Kind        string // "var", "let", "const"
	Declarators []VariableDeclaratorNode
}

// IfNode is an `if`/`else` statement.
type IfNode struct {
	Test       Node
	Consequent Node
	Alternate  Node // nil if no else branch
}

// ForNode is a classic three-clause `for` loop.
type ForNode struct {
	Init   Node // may be nil, an expression, or a VariableDeclarationKind
	Test   Node // may be nil
	Update Node // may be nil
	Body   Node
}

// ForInNode is `for (lhs in rhs) body`.
type ForInNode struct {
	DeclaresBinding bool // true when lhs is `var x` rather than an existing reference
	BindingName     string
	Target          Node // used when !DeclaresBinding
	Right           Node
	Body            Node
}

// WhileNode covers both `while` and `do...while`.
type WhileNode struct {
	Test Node
	Body Node
}

// LabelRef is the optional label carried by `break`/`continue`.
type LabelRef struct {
	Label    string
	HasLabel bool
}

// CatchClauseNode is a `catch (param) { body }` clause.
type CatchClauseNode struct {
	HasParam bool
	Param    string
	Body     Node
}

// TryNode is a `try { } catch { } finally { }` statement.
type TryNode struct {
	Block   Node
	Handler *CatchClauseNode // nil if no catch
	Finally Node             // nil if no finally
}

// LabeledNode is `label: statement`.
type LabeledNode struct {
	Label     string
	Statement Node
}
