package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/diagnostics"
	"github.com/yernsun/prepack/realm"
)

// toDiagLocation adapts an ast.SourceLocation to the diagnostics package's
// Location interface.
func toDiagLocation(n ast.Node) diagnostics.Location {
	l := n.Location()
	return diagnostics.NewLocation(l.Source, l.StartLine, l.StartCol)
}

// raiseIntrospectionError unwinds via the engine-fault sentinel channel for
// a construct that cannot be evaluated soundly: two differently-abrupt
// branches under an abstract guard condition, or a for/while/do-while loop
// whose guard condition is not known statically.
func raiseIntrospectionError(r *realm.Realm, n ast.Node, detail string) {
	panic(diagnostics.NewSentinel(r.Diagnostics(), &diagnostics.Diagnostic{
		Message:  detail,
		Location: toDiagLocation(n),
		Code:     diagnostics.CodeIntrospectionJoin,
		Severity: diagnostics.RecoverableError,
	}))
}

// raiseUnsupportedForIn unwinds via the engine-fault sentinel channel when a
// for-in loop over a partial/abstract source cannot be structurally
// recognized as the one copy-loop shape this engine residualizes.
func raiseUnsupportedForIn(r *realm.Realm, n ast.Node, detail string) {
	panic(diagnostics.NewSentinel(r.Diagnostics(), &diagnostics.Diagnostic{
		Message:  detail,
		Location: toDiagLocation(n),
		Code:     diagnostics.CodeUnsupportedForIn,
		Severity: diagnostics.RecoverableError,
	}))
}
