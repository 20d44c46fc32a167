package residualizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/value"
)

// Print renders a residual AST (as returned by Residualize) as source text.
// Grounded on checker/printer.go's traversal-and-render shape, generalized
// from an expression-only debug adorner to a full statement/expression
// printer since the residual program is meant to be read, diffed, and
// re-parsed rather than merely annotated for debugging.
func Print(n ast.Node) string {
	p := &printer{}
	p.statement(n, 0)
	return p.buf.String()
}

type printer struct {
	buf        strings.Builder
	skipIndent bool
}

func (p *printer) indent(depth int) {
	if p.skipIndent {
		p.skipIndent = false
		return
	}
	p.buf.WriteString(strings.Repeat("  ", depth))
}

func (p *printer) statement(n ast.Node, depth int) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case ast.ProgramKind:
		for _, s := range n.AsProgram().Statements {
			p.statement(s, depth)
		}
	case ast.BlockKind:
		p.indent(depth)
		p.buf.WriteString("{\n")
		for _, s := range n.AsBlock().Statements {
			p.statement(s, depth+1)
		}
		p.indent(depth)
		p.buf.WriteString("}\n")
	case ast.VariableDeclarationKind:
		d := n.AsVariableDeclaration()
		p.indent(depth)
		p.buf.WriteString(d.Kind)
		p.buf.WriteByte(' ')
		for i, decl := range d.Declarators {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.buf.WriteString(decl.Name)
			if decl.Init != nil {
				p.buf.WriteString(" = ")
				p.expr(decl.Init)
			}
		}
		p.buf.WriteString(";\n")
	case ast.ExpressionStatementKind:
		p.indent(depth)
		p.expr(n.AsExpressionStatement())
		p.buf.WriteString(";\n")
	case ast.IfKind:
		x := n.AsIf()
		p.indent(depth)
		p.buf.WriteString("if (")
		p.expr(x.Test)
		p.buf.WriteString(") ")
		p.branch(x.Consequent, depth)
		if x.Alternate != nil {
			p.indent(depth)
			p.buf.WriteString("else ")
			p.branch(x.Alternate, depth)
		}
	case ast.ForKind:
		x := n.AsFor()
		p.indent(depth)
		p.buf.WriteString("for (")
		p.forClause(x.Init)
		p.buf.WriteString("; ")
		if x.Test != nil {
			p.expr(x.Test)
		}
		p.buf.WriteString("; ")
		if x.Update != nil {
			p.expr(x.Update)
		}
		p.buf.WriteString(") ")
		p.branch(x.Body, depth)
	case ast.ForInKind:
		x := n.AsForIn()
		p.indent(depth)
		p.buf.WriteString("for (")
		if x.DeclaresBinding {
			p.buf.WriteString("var ")
			p.buf.WriteString(x.BindingName)
		} else {
			p.expr(x.Target)
		}
		p.buf.WriteString(" in ")
		p.expr(x.Right)
		p.buf.WriteString(") ")
		p.branch(x.Body, depth)
	case ast.WhileKind:
		x := n.AsWhile()
		p.indent(depth)
		p.buf.WriteString("while (")
		p.expr(x.Test)
		p.buf.WriteString(") ")
		p.branch(x.Body, depth)
	case ast.DoWhileKind:
		x := n.AsDoWhile()
		p.indent(depth)
		p.buf.WriteString("do ")
		p.branch(x.Body, depth)
		p.indent(depth)
		p.buf.WriteString("while (")
		p.expr(x.Test)
		p.buf.WriteString(");\n")
	case ast.BreakKind:
		p.indent(depth)
		p.buf.WriteString("break")
		p.labelRef(n.AsBreak())
		p.buf.WriteString(";\n")
	case ast.ContinueKind:
		p.indent(depth)
		p.buf.WriteString("continue")
		p.labelRef(n.AsContinue())
		p.buf.WriteString(";\n")
	case ast.ReturnKind:
		p.indent(depth)
		p.buf.WriteString("return")
		if arg := n.AsReturn(); arg != nil {
			p.buf.WriteByte(' ')
			p.expr(arg)
		}
		p.buf.WriteString(";\n")
	case ast.ThrowKind:
		p.indent(depth)
		p.buf.WriteString("throw ")
		p.expr(n.AsThrow())
		p.buf.WriteString(";\n")
	case ast.TryKind:
		x := n.AsTry()
		p.indent(depth)
		p.buf.WriteString("try ")
		p.branch(x.Block, depth)
		if x.Handler != nil {
			p.indent(depth)
			if x.Handler.HasParam {
				p.buf.WriteString(fmt.Sprintf("catch (%s) ", x.Handler.Param))
			} else {
				p.buf.WriteString("catch ")
			}
			p.branch(x.Handler.Body, depth)
		}
		if x.Finally != nil {
			p.indent(depth)
			p.buf.WriteString("finally ")
			p.branch(x.Finally, depth)
		}
	case ast.FunctionDeclarationKind:
		p.indent(depth)
		p.functionHeader(n.AsFunctionDeclaration())
		p.buf.WriteByte(' ')
		p.statement(n.AsFunctionDeclaration().Body, depth)
	case ast.LabeledKind:
		x := n.AsLabeled()
		p.indent(depth)
		p.buf.WriteString(x.Label)
		p.buf.WriteString(": ")
		p.skipIndent = true
		p.statement(x.Statement, depth)
	case ast.EmptyKind:
		p.indent(depth)
		p.buf.WriteString(";\n")
	default:
		p.indent(depth)
		p.expr(n)
		p.buf.WriteString(";\n")
	}
}

// branch renders a statement used as an if/for/while/try body: a Block
// prints inline after the already-written "... ) "; any other single
// statement gets its own indented line.
func (p *printer) branch(n ast.Node, depth int) {
	if n != nil && n.Kind() == ast.BlockKind {
		p.buf.WriteString("{\n")
		for _, s := range n.AsBlock().Statements {
			p.statement(s, depth+1)
		}
		p.indent(depth)
		p.buf.WriteString("}\n")
		return
	}
	p.buf.WriteByte('\n')
	p.statement(n, depth+1)
}

func (p *printer) forClause(n ast.Node) {
	if n == nil {
		return
	}
	if n.Kind() == ast.VariableDeclarationKind {
		d := n.AsVariableDeclaration()
		p.buf.WriteString(d.Kind)
		p.buf.WriteByte(' ')
		for i, decl := range d.Declarators {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.buf.WriteString(decl.Name)
			if decl.Init != nil {
				p.buf.WriteString(" = ")
				p.expr(decl.Init)
			}
		}
		return
	}
	p.expr(n)
}

func (p *printer) labelRef(l ast.LabelRef) {
	if l.HasLabel {
		p.buf.WriteByte(' ')
		p.buf.WriteString(l.Label)
	}
}

func (p *printer) functionHeader(f ast.FunctionNode) {
	p.buf.WriteString("function")
	if f.HasName {
		p.buf.WriteByte(' ')
		p.buf.WriteString(f.Name)
	}
	p.buf.WriteByte('(')
	p.buf.WriteString(strings.Join(f.Params, ", "))
	p.buf.WriteByte(')')
}

func (p *printer) expr(n ast.Node) {
	if n == nil {
		p.buf.WriteString("undefined")
		return
	}
	switch n.Kind() {
	case ast.LiteralKind:
		p.buf.WriteString(literalText(n.AsLiteral().Value))
	case ast.IdentifierKind:
		p.buf.WriteString(n.AsIdentifier().Name)
	case ast.ArrayLiteralKind:
		p.buf.WriteByte('[')
		for i, el := range n.AsArrayLiteral().Elements {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			if el == nil {
				continue
			}
			p.expr(el)
		}
		p.buf.WriteByte(']')
	case ast.ObjectLiteralKind:
		p.buf.WriteByte('{')
		for i, prop := range n.AsObjectLiteral().Properties {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.objectProperty(prop)
		}
		p.buf.WriteByte('}')
	case ast.FunctionExpressionKind:
		p.buf.WriteByte('(')
		p.functionHeader(n.AsFunctionExpression())
		p.buf.WriteString(" ")
		p.statement(n.AsFunctionExpression().Body, 0)
		p.buf.WriteByte(')')
	case ast.UnaryKind:
		x := n.AsUnary()
		if x.Prefix {
			p.buf.WriteString(x.Operator)
			p.parenExpr(x.Argument)
		} else {
			p.parenExpr(x.Argument)
			p.buf.WriteString(x.Operator)
		}
	case ast.BinaryKind:
		x := n.AsBinary()
		p.parenExpr(x.Left)
		p.buf.WriteByte(' ')
		p.buf.WriteString(x.Operator)
		p.buf.WriteByte(' ')
		p.parenExpr(x.Right)
	case ast.LogicalKind:
		x := n.AsLogical()
		p.parenExpr(x.Left)
		p.buf.WriteByte(' ')
		p.buf.WriteString(x.Operator)
		p.buf.WriteByte(' ')
		p.parenExpr(x.Right)
	case ast.AssignmentKind:
		x := n.AsAssignment()
		p.expr(x.Target)
		p.buf.WriteByte(' ')
		p.buf.WriteString(x.Operator)
		p.buf.WriteByte(' ')
		p.expr(x.Value)
	case ast.ConditionalKind:
		x := n.AsConditional()
		p.parenExpr(x.Test)
		p.buf.WriteString(" ? ")
		p.expr(x.Consequent)
		p.buf.WriteString(" : ")
		p.expr(x.Alternate)
	case ast.CallKind:
		x := n.AsCall()
		p.parenExpr(x.Callee)
		p.args(x.Arguments)
	case ast.NewKind:
		x := n.AsNew()
		p.buf.WriteString("new ")
		p.parenExpr(x.Callee)
		p.args(x.Arguments)
	case ast.MemberKind:
		x := n.AsMember()
		p.parenExpr(x.Object)
		if x.Computed {
			p.buf.WriteByte('[')
			p.expr(x.Property)
			p.buf.WriteByte(']')
		} else {
			p.buf.WriteByte('.')
			p.buf.WriteString(x.Property.AsIdentifier().Name)
		}
	case ast.SequenceKind:
		for i, e := range n.AsSequence().Expressions {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.expr(e)
		}
	default:
		p.buf.WriteString("undefined")
	}
}

// parenExpr wraps a sub-expression in parentheses whenever it is anything
// other than a literal/identifier/call/member/array literal/new expression,
// a conservative rule that
// always round-trips even though it over-parenthesizes some cases.
func (p *printer) parenExpr(n ast.Node) {
	if n == nil {
		p.buf.WriteString("undefined")
		return
	}
	switch n.Kind() {
	case ast.LiteralKind, ast.IdentifierKind, ast.CallKind, ast.MemberKind, ast.ArrayLiteralKind, ast.NewKind:
		p.expr(n)
	default:
		p.buf.WriteByte('(')
		p.expr(n)
		p.buf.WriteByte(')')
	}
}

func (p *printer) args(args []ast.Node) {
	p.buf.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.expr(a)
	}
	p.buf.WriteByte(')')
}

func (p *printer) objectProperty(prop ast.ObjectPropertyNode) {
	if prop.Computed {
		p.buf.WriteByte('[')
		p.expr(prop.Key)
		p.buf.WriteByte(']')
	} else if prop.Key.Kind() == ast.IdentifierKind {
		p.buf.WriteString(prop.Key.AsIdentifier().Name)
	} else {
		p.buf.WriteString(literalText(prop.Key.AsLiteral().Value))
	}
	if prop.IsGetter {
		p.buf.WriteString(": /* getter */ ")
	} else if prop.IsSetter {
		p.buf.WriteString(": /* setter */ ")
	} else {
		p.buf.WriteString(": ")
	}
	p.expr(prop.Value)
}

func literalText(v value.Value) string {
	switch x := v.(type) {
	case value.Undefined:
		return "undefined"
	case value.Null:
		return "null"
	case value.Boolean:
		if x.Value {
			return "true"
		}
		return "false"
	case value.Number:
		return strconv.FormatFloat(x.Value, 'g', -1, 64)
	case value.String:
		return strconv.Quote(x.Value)
	default:
		return "undefined"
	}
}
