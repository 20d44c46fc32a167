package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/diagnostics"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/realm"
)

// RunProgram is the one place an engine fault's unwinding sentinel is
// recovered: the engine signals a fault by throwing a sentinel that the
// top-level driver must intercept. An InvariantViolation panic (a plain
// string, not a *diagnostics.Sentinel) is deliberately left unrecovered: it
// signals a bug in this engine itself, not a condition the caller can act
// on, and is expected to crash the process.
func RunProgram(r *realm.Realm, program ast.Node, env *envrec.Environment) (result *completion.Completion, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if sentinel, ok := rec.(*diagnostics.Sentinel); ok {
				err = sentinel
				return
			}
			panic(rec)
		}
	}()
	result = r.EvaluatePartial(program, env)
	return result, nil
}
