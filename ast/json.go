package ast

import (
	"encoding/json"
	"fmt"

	"github.com/yernsun/prepack/value"
)

// This file implements the JSON interchange format the command-line driver
// (cmd/prepack) reads its input program from and writes a residual program
// back out as. It is deliberately NOT a parser: it decodes this module's
// own already-structured node tree rather than turning raw source text of
// the language's grammar into one. Grounded
// on tools/compiler.go's pattern of accepting an already-serialized,
// already-structured representation (textproto/binarypb/yaml) of a checked
// expression rather than re-implementing a grammar, adapted here to JSON
// since no pack example ships a binary AST format for this language.
//
// encoding/json is used directly rather than a third-party codec: this is a
// private, single-consumer wire shape with no schema-evolution or
// cross-language concerns, the case the standard library's own encoder is
// built for.

// jsonNode mirrors Node structurally: one JSON object tagged with a "kind"
// discriminator and the subset of fields that kind's payload actually uses.
type jsonNode struct {
	Kind string `json:"kind"`

	// Literal.
	Literal *jsonLiteral `json:"literal,omitempty"`

	// Identifier / function name / forIn binding name.
	Name     string `json:"name,omitempty"`
	HasName  bool   `json:"hasName,omitempty"`
	HasLabel bool   `json:"hasLabel,omitempty"`

	// Array literal.
	Elements []*jsonNode `json:"elements,omitempty"`

	// Object literal.
	Properties []*jsonProperty `json:"properties,omitempty"`

	// Function expression/declaration.
	Params   []string  `json:"params,omitempty"`
	IsArrow  bool      `json:"isArrow,omitempty"`
	IsStrict bool      `json:"isStrict,omitempty"`
	Body     *jsonNode `json:"body,omitempty"`

	// Unary/binary/logical/assignment.
	Operator string    `json:"operator,omitempty"`
	Argument *jsonNode `json:"argument,omitempty"`
	Prefix   bool      `json:"prefix,omitempty"`
	Left     *jsonNode `json:"left,omitempty"`
	Right    *jsonNode `json:"right,omitempty"`
	Target   *jsonNode `json:"target,omitempty"`
	Value    *jsonNode `json:"valueExpr,omitempty"`

	// Conditional/if.
	Test       *jsonNode `json:"test,omitempty"`
	Consequent *jsonNode `json:"consequent,omitempty"`
	Alternate  *jsonNode `json:"alternate,omitempty"`

	// Call/new.
	Callee    *jsonNode   `json:"callee,omitempty"`
	Arguments []*jsonNode `json:"arguments,omitempty"`

	// Member.
	Object   *jsonNode `json:"object,omitempty"`
	Property *jsonNode `json:"property,omitempty"`
	Computed bool      `json:"computed,omitempty"`

	// Sequence / program / block.
	Expressions []*jsonNode `json:"expressions,omitempty"`
	Statements  []*jsonNode `json:"statements,omitempty"`

	// Variable declaration.
	DeclKind    string             `json:"declKind,omitempty"`
	Declarators []*jsonDeclarator  `json:"declarators,omitempty"`

	// Expression statement.
	Expr *jsonNode `json:"expr,omitempty"`

	// For.
	Init   *jsonNode `json:"init,omitempty"`
	Update *jsonNode `json:"update,omitempty"`

	// For-in.
	DeclaresBinding bool `json:"declaresBinding,omitempty"`

	// Break/continue/labeled.
	Label string `json:"label,omitempty"`

	// Try.
	Block   *jsonNode  `json:"block,omitempty"`
	Handler *jsonCatch `json:"handler,omitempty"`
	Finally *jsonNode  `json:"finally,omitempty"`
}

type jsonProperty struct {
	Key      *jsonNode `json:"key"`
	Value    *jsonNode `json:"value"`
	Computed bool      `json:"computed,omitempty"`
	IsGetter bool      `json:"isGetter,omitempty"`
	IsSetter bool      `json:"isSetter,omitempty"`
}

type jsonDeclarator struct {
	Name string    `json:"name"`
	Init *jsonNode `json:"init,omitempty"`
}

type jsonCatch struct {
	HasParam bool      `json:"hasParam,omitempty"`
	Param    string    `json:"param,omitempty"`
	Body     *jsonNode `json:"body"`
}

// jsonLiteral holds one of the five concrete primitive kinds a Literal node
// may carry; Object/Function/Abstract never appear in parsed source.
type jsonLiteral struct {
	Type  string  `json:"type"`
	Bool  bool    `json:"bool,omitempty"`
	Num   float64 `json:"num,omitempty"`
	Str   string  `json:"str,omitempty"`
}

// DecodeProgram parses data as a jsonNode tree and rebuilds it through f,
// minting literal primitive values under realm. The returned Node is always
// a fresh tree with IDs assigned by f's caller-visible New* calls in this
// function's own traversal order (a conformant parser adapter mints its own
// IDs the same way per the Factory contract).
func DecodeProgram(data []byte, f *Factory, realm value.RealmID, nextID func() int64) (Node, error) {
	var root jsonNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("ast: decoding program JSON: %w", err)
	}
	d := &decoder{f: f, realm: realm, nextID: nextID}
	return d.node(&root)
}

type decoder struct {
	f      *Factory
	realm  value.RealmID
	nextID func() int64
}

func (d *decoder) node(n *jsonNode) (Node, error) {
	if n == nil {
		return nil, nil
	}
	loc := SourceLocation{}
	id := d.nextID()
	switch n.Kind {
	case "literal":
		v, err := d.literal(n.Literal)
		if err != nil {
			return nil, err
		}
		return d.f.NewLiteral(id, loc, LiteralNode{Value: v}), nil
	case "identifier":
		return d.f.NewIdentifier(id, loc, n.Name), nil
	case "array-literal":
		elems, err := d.nodeSlice(n.Elements)
		if err != nil {
			return nil, err
		}
		return d.f.NewArrayLiteral(id, loc, elems), nil
	case "object-literal":
		props, err := d.properties(n.Properties)
		if err != nil {
			return nil, err
		}
		return d.f.NewObjectLiteral(id, loc, props), nil
	case "function-expression", "function-declaration":
		body, err := d.node(n.Body)
		if err != nil {
			return nil, err
		}
		fn := FunctionNode{Name: n.Name, HasName: n.HasName, Params: n.Params, Body: body, IsArrow: n.IsArrow, IsStrict: n.IsStrict}
		if n.Kind == "function-expression" {
			return d.f.NewFunctionExpression(id, loc, fn), nil
		}
		return d.f.NewFunctionDeclaration(id, loc, fn), nil
	case "unary":
		arg, err := d.node(n.Argument)
		if err != nil {
			return nil, err
		}
		return d.f.NewUnary(id, loc, UnaryNode{Operator: n.Operator, Argument: arg, Prefix: n.Prefix}), nil
	case "binary":
		left, right, err := d.pair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return d.f.NewBinary(id, loc, BinaryNode{Operator: n.Operator, Left: left, Right: right}), nil
	case "logical":
		left, right, err := d.pair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return d.f.NewLogical(id, loc, LogicalNode{Operator: n.Operator, Left: left, Right: right}), nil
	case "assignment":
		target, err := d.node(n.Target)
		if err != nil {
			return nil, err
		}
		val, err := d.node(n.Value)
		if err != nil {
			return nil, err
		}
		return d.f.NewAssignment(id, loc, AssignmentNode{Operator: n.Operator, Target: target, Value: val}), nil
	case "conditional":
		test, err := d.node(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := d.node(n.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := d.node(n.Alternate)
		if err != nil {
			return nil, err
		}
		return d.f.NewConditional(id, loc, ConditionalNode{Test: test, Consequent: cons, Alternate: alt}), nil
	case "call", "new":
		callee, err := d.node(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := d.nodeSlice(n.Arguments)
		if err != nil {
			return nil, err
		}
		if n.Kind == "call" {
			return d.f.NewCall(id, loc, CallNode{Callee: callee, Arguments: args}), nil
		}
		return d.f.NewNew(id, loc, CallNode{Callee: callee, Arguments: args}), nil
	case "member":
		obj, err := d.node(n.Object)
		if err != nil {
			return nil, err
		}
		prop, err := d.node(n.Property)
		if err != nil {
			return nil, err
		}
		return d.f.NewMember(id, loc, MemberNode{Object: obj, Property: prop, Computed: n.Computed}), nil
	case "sequence":
		exprs, err := d.nodeSlice(n.Expressions)
		if err != nil {
			return nil, err
		}
		return d.f.NewSequence(id, loc, exprs), nil
	case "program":
		stmts, err := d.nodeSlice(n.Statements)
		if err != nil {
			return nil, err
		}
		return d.f.NewProgram(id, loc, stmts), nil
	case "block":
		stmts, err := d.nodeSlice(n.Statements)
		if err != nil {
			return nil, err
		}
		return d.f.NewBlock(id, loc, stmts), nil
	case "variable-declaration":
		decls, err := d.declarators(n.Declarators)
		if err != nil {
			return nil, err
		}
		return d.f.NewVariableDeclaration(id, loc, VariableDeclarationNode{Kind: n.DeclKind, Declarators: decls}), nil
	case "expression-statement":
		expr, err := d.node(n.Expr)
		if err != nil {
			return nil, err
		}
		return d.f.NewExpressionStatement(id, loc, expr), nil
	case "if":
		test, err := d.node(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := d.node(n.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := d.node(n.Alternate)
		if err != nil {
			return nil, err
		}
		return d.f.NewIf(id, loc, IfNode{Test: test, Consequent: cons, Alternate: alt}), nil
	case "for":
		init, err := d.node(n.Init)
		if err != nil {
			return nil, err
		}
		test, err := d.node(n.Test)
		if err != nil {
			return nil, err
		}
		update, err := d.node(n.Update)
		if err != nil {
			return nil, err
		}
		body, err := d.node(n.Body)
		if err != nil {
			return nil, err
		}
		return d.f.NewFor(id, loc, ForNode{Init: init, Test: test, Update: update, Body: body}), nil
	case "for-in":
		target, err := d.node(n.Target)
		if err != nil {
			return nil, err
		}
		right, err := d.node(n.Right)
		if err != nil {
			return nil, err
		}
		body, err := d.node(n.Body)
		if err != nil {
			return nil, err
		}
		return d.f.NewForIn(id, loc, ForInNode{DeclaresBinding: n.DeclaresBinding, BindingName: n.Name, Target: target, Right: right, Body: body}), nil
	case "while":
		test, err := d.node(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := d.node(n.Body)
		if err != nil {
			return nil, err
		}
		return d.f.NewWhile(id, loc, WhileNode{Test: test, Body: body}), nil
	case "do-while":
		test, err := d.node(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := d.node(n.Body)
		if err != nil {
			return nil, err
		}
		return d.f.NewDoWhile(id, loc, WhileNode{Test: test, Body: body}), nil
	case "break":
		return d.f.NewBreak(id, loc, LabelRef{Label: n.Label, HasLabel: n.HasLabel}), nil
	case "continue":
		return d.f.NewContinue(id, loc, LabelRef{Label: n.Label, HasLabel: n.HasLabel}), nil
	case "return":
		arg, err := d.node(n.Argument)
		if err != nil {
			return nil, err
		}
		return d.f.NewReturn(id, loc, arg), nil
	case "throw":
		arg, err := d.node(n.Argument)
		if err != nil {
			return nil, err
		}
		return d.f.NewThrow(id, loc, arg), nil
	case "try":
		block, err := d.node(n.Block)
		if err != nil {
			return nil, err
		}
		handler, err := d.catchClause(n.Handler)
		if err != nil {
			return nil, err
		}
		fin, err := d.node(n.Finally)
		if err != nil {
			return nil, err
		}
		return d.f.NewTry(id, loc, TryNode{Block: block, Handler: handler, Finally: fin}), nil
	case "labeled":
		stmt, err := d.node(n.Body)
		if err != nil {
			return nil, err
		}
		return d.f.NewLabeled(id, loc, LabeledNode{Label: n.Label, Statement: stmt}), nil
	case "empty":
		return d.f.NewEmpty(id, loc), nil
	default:
		return nil, fmt.Errorf("ast: unknown node kind %q", n.Kind)
	}
}

func (d *decoder) pair(left, right *jsonNode) (Node, Node, error) {
	l, err := d.node(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := d.node(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func (d *decoder) nodeSlice(ns []*jsonNode) ([]Node, error) {
	if ns == nil {
		return nil, nil
	}
	out := make([]Node, len(ns))
	for i, n := range ns {
		v, err := d.node(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (d *decoder) properties(ps []*jsonProperty) ([]ObjectPropertyNode, error) {
	out := make([]ObjectPropertyNode, len(ps))
	for i, p := range ps {
		key, err := d.node(p.Key)
		if err != nil {
			return nil, err
		}
		val, err := d.node(p.Value)
		if err != nil {
			return nil, err
		}
		out[i] = ObjectPropertyNode{Key: key, Value: val, Computed: p.Computed, IsGetter: p.IsGetter, IsSetter: p.IsSetter}
	}
	return out, nil
}

func (d *decoder) declarators(ds []*jsonDeclarator) ([]VariableDeclaratorNode, error) {
	out := make([]VariableDeclaratorNode, len(ds))
	for i, decl := range ds {
		init, err := d.node(decl.Init)
		if err != nil {
			return nil, err
		}
		out[i] = VariableDeclaratorNode{Name: decl.Name, Init: init}
	}
	return out, nil
}

func (d *decoder) catchClause(c *jsonCatch) (*CatchClauseNode, error) {
	if c == nil {
		return nil, nil
	}
	body, err := d.node(c.Body)
	if err != nil {
		return nil, err
	}
	return &CatchClauseNode{HasParam: c.HasParam, Param: c.Param, Body: body}, nil
}

// EncodeNode renders n (typically the output of residualizer.Residualize)
// back into this same JSON shape, the form cmd/prepack writes to its output
// file. Residual programs never contain a concrete Object/Function literal
// directly under a LiteralNode (those are always reconstructed through
// statements by the residualizer), so encodeLiteral only needs to
// handle the five primitive kinds, matching decoder.literal.
func EncodeNode(n Node) ([]byte, error) {
	j, err := encodeNode(n)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(j, "", "  ")
}

func encodeNode(n Node) (*jsonNode, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind() {
	case LiteralKind:
		lit, err := encodeLiteral(n.AsLiteral().Value)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "literal", Literal: lit}, nil
	case IdentifierKind:
		return &jsonNode{Kind: "identifier", Name: n.AsIdentifier().Name}, nil
	case ArrayLiteralKind:
		elems, err := encodeNodeSlice(n.AsArrayLiteral().Elements)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "array-literal", Elements: elems}, nil
	case ObjectLiteralKind:
		props, err := encodeProperties(n.AsObjectLiteral().Properties)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "object-literal", Properties: props}, nil
	case FunctionExpressionKind, FunctionDeclarationKind:
		fn := n.AsFunctionExpression()
		if n.Kind() == FunctionDeclarationKind {
			fn = n.AsFunctionDeclaration()
		}
		body, err := encodeNode(fn.Body)
		if err != nil {
			return nil, err
		}
		kind := "function-expression"
		if n.Kind() == FunctionDeclarationKind {
			kind = "function-declaration"
		}
		return &jsonNode{Kind: kind, Name: fn.Name, HasName: fn.HasName, Params: fn.Params, Body: body, IsArrow: fn.IsArrow, IsStrict: fn.IsStrict}, nil
	case UnaryKind:
		x := n.AsUnary()
		arg, err := encodeNode(x.Argument)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "unary", Operator: x.Operator, Argument: arg, Prefix: x.Prefix}, nil
	case BinaryKind:
		x := n.AsBinary()
		left, right, err := encodePair(x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "binary", Operator: x.Operator, Left: left, Right: right}, nil
	case LogicalKind:
		x := n.AsLogical()
		left, right, err := encodePair(x.Left, x.Right)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "logical", Operator: x.Operator, Left: left, Right: right}, nil
	case AssignmentKind:
		x := n.AsAssignment()
		target, err := encodeNode(x.Target)
		if err != nil {
			return nil, err
		}
		val, err := encodeNode(x.Value)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "assignment", Operator: x.Operator, Target: target, Value: val}, nil
	case ConditionalKind:
		x := n.AsConditional()
		test, err := encodeNode(x.Test)
		if err != nil {
			return nil, err
		}
		cons, err := encodeNode(x.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := encodeNode(x.Alternate)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "conditional", Test: test, Consequent: cons, Alternate: alt}, nil
	case CallKind, NewKind:
		x := n.AsCall()
		if n.Kind() == NewKind {
			x = n.AsNew()
		}
		callee, err := encodeNode(x.Callee)
		if err != nil {
			return nil, err
		}
		args, err := encodeNodeSlice(x.Arguments)
		if err != nil {
			return nil, err
		}
		kind := "call"
		if n.Kind() == NewKind {
			kind = "new"
		}
		return &jsonNode{Kind: kind, Callee: callee, Arguments: args}, nil
	case MemberKind:
		x := n.AsMember()
		obj, err := encodeNode(x.Object)
		if err != nil {
			return nil, err
		}
		prop, err := encodeNode(x.Property)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "member", Object: obj, Property: prop, Computed: x.Computed}, nil
	case SequenceKind:
		exprs, err := encodeNodeSlice(n.AsSequence().Expressions)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "sequence", Expressions: exprs}, nil
	case ProgramKind:
		stmts, err := encodeNodeSlice(n.AsProgram().Statements)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "program", Statements: stmts}, nil
	case BlockKind:
		stmts, err := encodeNodeSlice(n.AsBlock().Statements)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "block", Statements: stmts}, nil
	case VariableDeclarationKind:
		x := n.AsVariableDeclaration()
		decls, err := encodeDeclarators(x.Declarators)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "variable-declaration", DeclKind: x.Kind, Declarators: decls}, nil
	case ExpressionStatementKind:
		expr, err := encodeNode(n.AsExpressionStatement())
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "expression-statement", Expr: expr}, nil
	case IfKind:
		x := n.AsIf()
		test, err := encodeNode(x.Test)
		if err != nil {
			return nil, err
		}
		cons, err := encodeNode(x.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := encodeNode(x.Alternate)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "if", Test: test, Consequent: cons, Alternate: alt}, nil
	case ForKind:
		x := n.AsFor()
		init, err := encodeNode(x.Init)
		if err != nil {
			return nil, err
		}
		test, err := encodeNode(x.Test)
		if err != nil {
			return nil, err
		}
		update, err := encodeNode(x.Update)
		if err != nil {
			return nil, err
		}
		body, err := encodeNode(x.Body)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "for", Init: init, Test: test, Update: update, Body: body}, nil
	case ForInKind:
		x := n.AsForIn()
		target, err := encodeNode(x.Target)
		if err != nil {
			return nil, err
		}
		right, err := encodeNode(x.Right)
		if err != nil {
			return nil, err
		}
		body, err := encodeNode(x.Body)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "for-in", DeclaresBinding: x.DeclaresBinding, Name: x.BindingName, Target: target, Right: right, Body: body}, nil
	case WhileKind, DoWhileKind:
		x := n.AsWhile()
		if n.Kind() == DoWhileKind {
			x = n.AsDoWhile()
		}
		test, err := encodeNode(x.Test)
		if err != nil {
			return nil, err
		}
		body, err := encodeNode(x.Body)
		if err != nil {
			return nil, err
		}
		kind := "while"
		if n.Kind() == DoWhileKind {
			kind = "do-while"
		}
		return &jsonNode{Kind: kind, Test: test, Body: body}, nil
	case BreakKind:
		l := n.AsBreak()
		return &jsonNode{Kind: "break", Label: l.Label, HasLabel: l.HasLabel}, nil
	case ContinueKind:
		l := n.AsContinue()
		return &jsonNode{Kind: "continue", Label: l.Label, HasLabel: l.HasLabel}, nil
	case ReturnKind:
		arg, err := encodeNode(n.AsReturn())
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "return", Argument: arg}, nil
	case ThrowKind:
		arg, err := encodeNode(n.AsThrow())
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "throw", Argument: arg}, nil
	case TryKind:
		x := n.AsTry()
		block, err := encodeNode(x.Block)
		if err != nil {
			return nil, err
		}
		handler, err := encodeCatch(x.Handler)
		if err != nil {
			return nil, err
		}
		fin, err := encodeNode(x.Finally)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "try", Block: block, Handler: handler, Finally: fin}, nil
	case LabeledKind:
		x := n.AsLabeled()
		stmt, err := encodeNode(x.Statement)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "labeled", Label: x.Label, Body: stmt}, nil
	case EmptyKind:
		return &jsonNode{Kind: "empty"}, nil
	default:
		return nil, fmt.Errorf("ast: cannot encode node kind %q", n.Kind())
	}
}

func encodePair(left, right Node) (*jsonNode, *jsonNode, error) {
	l, err := encodeNode(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := encodeNode(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func encodeNodeSlice(ns []Node) ([]*jsonNode, error) {
	if ns == nil {
		return nil, nil
	}
	out := make([]*jsonNode, len(ns))
	for i, n := range ns {
		v, err := encodeNode(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func encodeProperties(ps []ObjectPropertyNode) ([]*jsonProperty, error) {
	if ps == nil {
		return nil, nil
	}
	out := make([]*jsonProperty, len(ps))
	for i, p := range ps {
		key, err := encodeNode(p.Key)
		if err != nil {
			return nil, err
		}
		val, err := encodeNode(p.Value)
		if err != nil {
			return nil, err
		}
		out[i] = &jsonProperty{Key: key, Value: val, Computed: p.Computed, IsGetter: p.IsGetter, IsSetter: p.IsSetter}
	}
	return out, nil
}

func encodeDeclarators(ds []VariableDeclaratorNode) ([]*jsonDeclarator, error) {
	out := make([]*jsonDeclarator, len(ds))
	for i, decl := range ds {
		init, err := encodeNode(decl.Init)
		if err != nil {
			return nil, err
		}
		out[i] = &jsonDeclarator{Name: decl.Name, Init: init}
	}
	return out, nil
}

func encodeCatch(c *CatchClauseNode) (*jsonCatch, error) {
	if c == nil {
		return nil, nil
	}
	body, err := encodeNode(c.Body)
	if err != nil {
		return nil, err
	}
	return &jsonCatch{HasParam: c.HasParam, Param: c.Param, Body: body}, nil
}

func encodeLiteral(v value.Value) (*jsonLiteral, error) {
	switch x := v.(type) {
	case value.Undefined, nil:
		return &jsonLiteral{Type: "undefined"}, nil
	case value.Null:
		return &jsonLiteral{Type: "null"}, nil
	case value.Boolean:
		return &jsonLiteral{Type: "boolean", Bool: x.Value}, nil
	case value.String:
		return &jsonLiteral{Type: "string", Str: x.Value}, nil
	case value.Number:
		return &jsonLiteral{Type: "number", Num: x.Value}, nil
	default:
		return nil, fmt.Errorf("ast: cannot encode literal value of type %T", v)
	}
}

func (d *decoder) literal(l *jsonLiteral) (value.Value, error) {
	if l == nil {
		return value.NewUndefined(d.realm), nil
	}
	switch l.Type {
	case "undefined":
		return value.NewUndefined(d.realm), nil
	case "null":
		return value.NewNull(d.realm), nil
	case "boolean":
		return value.NewBoolean(d.realm, l.Bool), nil
	case "number":
		return value.NewNumber(d.realm, l.Num), nil
	case "string":
		return value.NewString(d.realm, l.Str), nil
	default:
		return nil, fmt.Errorf("ast: unknown literal type %q", l.Type)
	}
}
