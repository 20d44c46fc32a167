package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/realm"
)

// Register installs every node-kind evaluator into r: for every Standard
// syntactic form there is one entry in the dispatch table. Every entry is
// registered identically as both the full and the partial
// evaluator: this engine performs whole-program partial evaluation
// unconditionally rather than offering a separate purely-concrete mode, so
// the two dispatch tables realm.Realm carries would otherwise only ever be
// populated with duplicate functions. Kept as two tables (rather than
// collapsing realm.Evaluate/EvaluatePartial into one method) because that
// split is the realm package's contract, not this package's to change.
func Register(r *realm.Realm) {
	entries := map[ast.NodeKind]realm.Evaluator{
		ast.LiteralKind:             evalLiteral,
		ast.IdentifierKind:          evalIdentifier,
		ast.ArrayLiteralKind:        evalArrayLiteral,
		ast.ObjectLiteralKind:       evalObjectLiteral,
		ast.FunctionExpressionKind:  evalFunctionExpression,
		ast.UnaryKind:               evalUnary,
		ast.BinaryKind:              evalBinary,
		ast.LogicalKind:             evalLogical,
		ast.AssignmentKind:          evalAssignment,
		ast.ConditionalKind:         evalConditional,
		ast.CallKind:                evalCallOrNew,
		ast.NewKind:                 evalCallOrNew,
		ast.MemberKind:              evalMember,
		ast.SequenceKind:            evalSequence,
		ast.ProgramKind:             evalProgram,
		ast.BlockKind:               evalBlock,
		ast.VariableDeclarationKind: evalVariableDeclaration,
		ast.ExpressionStatementKind: evalExpressionStatement,
		ast.IfKind:                  evalIf,
		ast.ForKind:                 evalFor,
		ast.ForInKind:               evalForIn,
		ast.WhileKind:               evalWhile,
		ast.DoWhileKind:             evalDoWhile,
		ast.BreakKind:               evalBreak,
		ast.ContinueKind:            evalContinue,
		ast.ReturnKind:              evalReturn,
		ast.ThrowKind:               evalThrow,
		ast.TryKind:                 evalTry,
		ast.FunctionDeclarationKind: evalFunctionDeclaration,
		ast.LabeledKind:             evalLabeled,
		ast.EmptyKind:               evalEmpty,
	}
	for k, fn := range entries {
		r.RegisterEvaluator(k, fn)
		r.RegisterPartialEvaluator(k, realm.PartialEvaluator(fn))
	}
}
