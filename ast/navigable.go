package ast

// Children returns n's immediate child nodes, skipping nils, in evaluation
// order. Grounded on cel-go's common/ast/navigable.go NavigableExpr.Children,
// generalized from CEL's expression-only tree to the full statement grammar.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n.Kind() {
	case ArrayLiteralKind:
		for _, e := range n.AsArrayLiteral().Elements {
			add(e)
		}
	case ObjectLiteralKind:
		for _, p := range n.AsObjectLiteral().Properties {
			add(p.Key)
			add(p.Value)
		}
	case FunctionExpressionKind, FunctionDeclarationKind:
		add(n.AsFunctionExpression().Body)
	case UnaryKind:
		add(n.AsUnary().Argument)
	case BinaryKind:
		b := n.AsBinary()
		add(b.Left)
		add(b.Right)
	case LogicalKind:
		l := n.AsLogical()
		add(l.Left)
		add(l.Right)
	case AssignmentKind:
		a := n.AsAssignment()
		add(a.Target)
		add(a.Value)
	case ConditionalKind:
		c := n.AsConditional()
		add(c.Test)
		add(c.Consequent)
		add(c.Alternate)
	case CallKind, NewKind:
		c := n.AsCall()
		add(c.Callee)
		for _, arg := range c.Arguments {
			add(arg)
		}
	case MemberKind:
		m := n.AsMember()
		add(m.Object)
		add(m.Property)
	case SequenceKind:
		for _, e := range n.AsSequence().Expressions {
			add(e)
		}
	case ProgramKind, BlockKind:
		for _, s := range n.AsBlock().Statements {
			add(s)
		}
	case VariableDeclarationKind:
		for _, d := range n.AsVariableDeclaration().Declarators {
			add(d.Init)
		}
	case ExpressionStatementKind:
		add(n.AsExpressionStatement())
	case IfKind:
		i := n.AsIf()
		add(i.Test)
		add(i.Consequent)
		add(i.Alternate)
	case ForKind:
		f := n.AsFor()
		add(f.Init)
		add(f.Test)
		add(f.Update)
		add(f.Body)
	case ForInKind:
		fi := n.AsForIn()
		add(fi.Target)
		add(fi.Right)
		add(fi.Body)
	case WhileKind, DoWhileKind:
		w := n.AsWhile()
		add(w.Test)
		add(w.Body)
	case ReturnKind:
		add(n.AsReturn())
	case ThrowKind:
		add(n.AsThrow())
	case TryKind:
		tr := n.AsTry()
		add(tr.Block)
		if tr.Handler != nil {
			add(tr.Handler.Body)
		}
		add(tr.Finally)
	case LabeledKind:
		add(n.AsLabeled().Statement)
	}
	return out
}

// Walk visits n and every descendant depth-first, calling visit on each.
func Walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}
