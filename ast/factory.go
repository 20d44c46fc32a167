package ast

// baseNode is the sole concrete implementation of Node, holding one
// populated payload field selected by kind; every As* accessor returns the
// zero value when the kind doesn't match, mirroring cel-go's
// baseCallExpr/baseListExpr-per-kind split collapsed into one struct for a
// grammar this much larger than CEL's.
type baseNode struct {
	id   int64
	kind NodeKind
	loc  SourceLocation

	literal     LiteralNode
	identifier  IdentifierNode
	arrayLit    ArrayLiteralNode
	objectLit   ObjectLiteralNode
	function    FunctionNode
	unary       UnaryNode
	binary      BinaryNode
	logical     LogicalNode
	assignment  AssignmentNode
	conditional ConditionalNode
	call        CallNode
	member      MemberNode
	sequence    SequenceNode

	block       BlockNode
	varDecl     VariableDeclarationNode
	exprStmt    Node
	ifStmt      IfNode
	forStmt     ForNode
	forIn       ForInNode
	while       WhileNode
	labelRef    LabelRef
	returnArg   Node
	throwArg    Node
	tryStmt     TryNode
	labeled     LabeledNode
}

var _ Node = (*baseNode)(nil)

func (n *baseNode) ID() int64             { return n.id }
func (n *baseNode) Kind() NodeKind        { return n.kind }
func (n *baseNode) Location() SourceLocation { return n.loc }
func (*baseNode) isNode()                 {}

func (n *baseNode) AsLiteral() LiteralNode                     { return n.literal }
func (n *baseNode) AsIdentifier() IdentifierNode               { return n.identifier }
func (n *baseNode) AsArrayLiteral() ArrayLiteralNode           { return n.arrayLit }
func (n *baseNode) AsObjectLiteral() ObjectLiteralNode         { return n.objectLit }
func (n *baseNode) AsFunctionExpression() FunctionNode         { return n.function }
func (n *baseNode) AsUnary() UnaryNode                         { return n.unary }
func (n *baseNode) AsBinary() BinaryNode                       { return n.binary }
func (n *baseNode) AsLogical() LogicalNode                     { return n.logical }
func (n *baseNode) AsAssignment() AssignmentNode               { return n.assignment }
func (n *baseNode) AsConditional() ConditionalNode             { return n.conditional }
func (n *baseNode) AsCall() CallNode                           { return n.call }
func (n *baseNode) AsNew() CallNode                             { return n.call }
func (n *baseNode) AsMember() MemberNode                       { return n.member }
func (n *baseNode) AsSequence() SequenceNode                   { return n.sequence }

func (n *baseNode) AsProgram() BlockNode                       { return n.block }
func (n *baseNode) AsBlock() BlockNode                         { return n.block }
func (n *baseNode) AsVariableDeclaration() VariableDeclarationNode { return n.varDecl }
func (n *baseNode) AsExpressionStatement() Node                { return n.exprStmt }
func (n *baseNode) AsIf() IfNode                               { return n.ifStmt }
func (n *baseNode) AsFor() ForNode                              { return n.forStmt }
func (n *baseNode) AsForIn() ForInNode                          { return n.forIn }
func (n *baseNode) AsWhile() WhileNode                          { return n.while }
func (n *baseNode) AsDoWhile() WhileNode                        { return n.while }
func (n *baseNode) AsBreak() LabelRef                           { return n.labelRef }
func (n *baseNode) AsContinue() LabelRef                        { return n.labelRef }
func (n *baseNode) AsReturn() Node                              { return n.returnArg }
func (n *baseNode) AsThrow() Node                               { return n.throwArg }
func (n *baseNode) AsTry() TryNode                              { return n.tryStmt }
func (n *baseNode) AsFunctionDeclaration() FunctionNode         { return n.function }
func (n *baseNode) AsLabeled() LabeledNode                      { return n.labeled }

// Factory builds Node values. A conformant parser adapter (out of scope for
// this module) is expected to hold one Factory and call exactly one New*
// method per AST node it produces.
type Factory struct{}

// NewFactory returns a Factory.
func NewFactory() *Factory { return &Factory{} }

func (f *Factory) NewLiteral(id int64, loc SourceLocation, l LiteralNode) Node {
	return &baseNode{id: id, kind: LiteralKind, loc: loc, literal: l}
}

func (f *Factory) NewIdentifier(id int64, loc SourceLocation, name string) Node {
	return &baseNode{id: id, kind: IdentifierKind, loc: loc, identifier: IdentifierNode{Name: name}}
}

func (f *Factory) NewArrayLiteral(id int64, loc SourceLocation, elems []Node) Node {
	return &baseNode{id: id, kind: ArrayLiteralKind, loc: loc, arrayLit: ArrayLiteralNode{Elements: elems}}
}

func (f *Factory) NewObjectLiteral(id int64, loc SourceLocation, props []ObjectPropertyNode) Node {
	return &baseNode{id: id, kind: ObjectLiteralKind, loc: loc, objectLit: ObjectLiteralNode{Properties: props}}
}

func (f *Factory) NewFunctionExpression(id int64, loc SourceLocation, fn FunctionNode) Node {
	return &baseNode{id: id, kind: FunctionExpressionKind, loc: loc, function: fn}
}

func (f *Factory) NewFunctionDeclaration(id int64, loc SourceLocation, fn FunctionNode) Node {
	return &baseNode{id: id, kind: FunctionDeclarationKind, loc: loc, function: fn}
}

func (f *Factory) NewUnary(id int64, loc SourceLocation, u UnaryNode) Node {
	return &baseNode{id: id, kind: UnaryKind, loc: loc, unary: u}
}

func (f *Factory) NewBinary(id int64, loc SourceLocation, b BinaryNode) Node {
	return &baseNode{id: id, kind: BinaryKind, loc: loc, binary: b}
}

func (f *Factory) NewLogical(id int64, loc SourceLocation, l LogicalNode) Node {
	return &baseNode{id: id, kind: LogicalKind, loc: loc, logical: l}
}

func (f *Factory) NewAssignment(id int64, loc SourceLocation, a AssignmentNode) Node {
	return &baseNode{id: id, kind: AssignmentKind, loc: loc, assignment: a}
}

func (f *Factory) NewConditional(id int64, loc SourceLocation, c ConditionalNode) Node {
	return &baseNode{id: id, kind: ConditionalKind, loc: loc, conditional: c}
}

func (f *Factory) NewCall(id int64, loc SourceLocation, c CallNode) Node {
	return &baseNode{id: id, kind: CallKind, loc: loc, call: c}
}

func (f *Factory) NewNew(id int64, loc SourceLocation, c CallNode) Node {
	return &baseNode{id: id, kind: NewKind, loc: loc, call: c}
}

func (f *Factory) NewMember(id int64, loc SourceLocation, m MemberNode) Node {
	return &baseNode{id: id, kind: MemberKind, loc: loc, member: m}
}

func (f *Factory) NewSequence(id int64, loc SourceLocation, exprs []Node) Node {
	return &baseNode{id: id, kind: SequenceKind, loc: loc, sequence: SequenceNode{Expressions: exprs}}
}

func (f *Factory) NewProgram(id int64, loc SourceLocation, stmts []Node) Node {
	return &baseNode{id: id, kind: ProgramKind, loc: loc, block: BlockNode{Statements: stmts}}
}

func (f *Factory) NewBlock(id int64, loc SourceLocation, stmts []Node) Node {
	return &baseNode{id: id, kind: BlockKind, loc: loc, block: BlockNode{Statements: stmts}}
}

func (f *Factory) NewVariableDeclaration(id int64, loc SourceLocation, v VariableDeclarationNode) Node {
	return &baseNode{id: id, kind: VariableDeclarationKind, loc: loc, varDecl: v}
}

func (f *Factory) NewExpressionStatement(id int64, loc SourceLocation, expr Node) Node {
	return &baseNode{id: id, kind: ExpressionStatementKind, loc: loc, exprStmt: expr}
}

func (f *Factory) NewIf(id int64, loc SourceLocation, n IfNode) Node {
	return &baseNode{id: id, kind: IfKind, loc: loc, ifStmt: n}
}

func (f *Factory) NewFor(id int64, loc SourceLocation, n ForNode) Node {
	return &baseNode{id: id, kind: ForKind, loc: loc, forStmt: n}
}

func (f *Factory) NewForIn(id int64, loc SourceLocation, n ForInNode) Node {
	return &baseNode{id: id, kind: ForInKind, loc: loc, forIn: n}
}

func (f *Factory) NewWhile(id int64, loc SourceLocation, n WhileNode) Node {
	return &baseNode{id: id, kind: WhileKind, loc: loc, while: n}
}

func (f *Factory) NewDoWhile(id int64, loc SourceLocation, n WhileNode) Node {
	return &baseNode{id: id, kind: DoWhileKind, loc: loc, while: n}
}

func (f *Factory) NewBreak(id int64, loc SourceLocation, ref LabelRef) Node {
	return &baseNode{id: id, kind: BreakKind, loc: loc, labelRef: ref}
}

func (f *Factory) NewContinue(id int64, loc SourceLocation, ref LabelRef) Node {
	return &baseNode{id: id, kind: ContinueKind, loc: loc, labelRef: ref}
}

func (f *Factory) NewReturn(id int64, loc SourceLocation, arg Node) Node {
	return &baseNode{id: id, kind: ReturnKind, loc: loc, returnArg: arg}
}

func (f *Factory) NewThrow(id int64, loc SourceLocation, arg Node) Node {
	return &baseNode{id: id, kind: ThrowKind, loc: loc, throwArg: arg}
}

func (f *Factory) NewTry(id int64, loc SourceLocation, n TryNode) Node {
	return &baseNode{id: id, kind: TryKind, loc: loc, tryStmt: n}
}

func (f *Factory) NewLabeled(id int64, loc SourceLocation, n LabeledNode) Node {
	return &baseNode{id: id, kind: LabeledKind, loc: loc, labeled: n}
}

func (f *Factory) NewEmpty(id int64, loc SourceLocation) Node {
	return &baseNode{id: id, kind: EmptyKind, loc: loc}
}
