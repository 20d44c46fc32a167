package realm

import (
	"github.com/golang/glog"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
)

// EvaluateNodeForEffects runs fn (typically a closure wrapping
// r.EvaluatePartial for a sub-tree) inside a fresh speculative frame: a
// child effect generator and a modification-log checkpoint. The caller decides
// whether to keep the frame (linking the child generator into a parent
// entry's Children and leaving the modification log alone) or to discard
// it (rolling the log back to the checkpoint and dropping the child
// generator on the floor).
//
// EvaluateNodeForEffects itself never decides commit vs. discard — that
// policy lives in the evaluator package, which knows whether the
// instigating construct (an abstract conditional's branch, a for-in body
// probe) ultimately took this path.
func (r *Realm) EvaluateNodeForEffects(env *envrec.Environment, fn func(env *envrec.Environment) *completion.Completion) (*completion.Completion, *generator.Generator, int) {
	child := r.ActiveGenerator().NewChild()
	mark := r.modLog.Mark()

	r.genStack = append(r.genStack, child)
	c := fn(env)
	r.genStack = r.genStack[:len(r.genStack)-1]

	return c, child, mark
}

// CommitSpeculativeFrame links child into parentEntry's Children so its
// recorded effects appear in the residual program at that entry's position,
// preserving evaluation order, and keeps every modification-log delta recorded
// since mark.
func (r *Realm) CommitSpeculativeFrame(parentEntry *generator.Entry, child *generator.Generator) {
	parentEntry.Children = append(parentEntry.Children, child)
}

// DiscardSpeculativeFrame rolls the modification log back to mark,
// restoring heap and environment state exactly,
// and simply drops child without linking it anywhere.
func (r *Realm) DiscardSpeculativeFrame(mark int) {
	rolledBack := r.modLog.Mark() - mark
	r.modLog.RollbackTo(mark, r.heap)
	glog.V(1).Infof("discarded speculative frame: rolled back %d modification(s)", rolledBack)
}

// NodeKindRequiresEffectFrame reports whether evaluating a node of kind k
// could possibly record any residual effect at all (false only for a bare
// identifier reference or a literal). Nothing in this module calls it; the
// evaluator opens a speculative frame for every branch it joins.
func NodeKindRequiresEffectFrame(k ast.NodeKind) bool {
	switch k {
	case ast.LiteralKind, ast.IdentifierKind:
		return false
	default:
		return true
	}
}
