package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

// newErrorValue builds a minimal Error-shaped object: own "name" and
// "message" string properties, no prototype chain (the Error.prototype
// intrinsic's own body is out of scope — the built-in library's contract,
// not its implementation, is this engine's concern). Good enough for
// completion values and for the residualizer to later print
// `new Error("...")` shaped output.
func newErrorValue(r *realm.Realm, kind, message string) value.Value {
	id := r.NextObjectID()
	obj := value.NewObject(r.ID(), id, value.NewNull(r.ID()))
	obj.DefineOwnProperty(value.StringKey(value.NewString(r.ID(), "name")),
		value.NewDataDescriptor(value.NewString(r.ID(), kind), true, false, true))
	obj.DefineOwnProperty(value.StringKey(value.NewString(r.ID(), "message")),
		value.NewDataDescriptor(value.NewString(r.ID(), message), true, false, true))
	r.Heap().Register(obj)
	return obj
}

func loc(n ast.Node) completion.Location {
	l := n.Location()
	return completion.Location{Source: l.Source, Line: l.StartLine, Column: l.StartCol}
}

func throwError(r *realm.Realm, n ast.Node, kind, message string) *completion.Completion {
	return completion.NewThrow(newErrorValue(r, kind, message), loc(n))
}
