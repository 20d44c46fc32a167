package completion

import "github.com/yernsun/prepack/value"

// ReturnIfAbrupt is this engine's `?`-style shortcut, propagated by
// result-returning checks in every evaluator: it reports whether c is
// abrupt, so a dispatcher can early-return it without further processing.
func ReturnIfAbrupt(c *Completion) bool {
	return c.Kind().IsAbrupt()
}

// SameAbruptKind reports whether two abrupt completions share both Kind and
// (if present) Label — the condition under which a join-time merge of two
// differently-abrupt branches is sound without degrading to an
// introspection error. An abstract guard over two branches that both
// abruptly throw can only join soundly if both branches throw the same
// error kind.
func SameAbruptKind(a, b *Completion) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if a.Kind() == Break || a.Kind() == Continue {
		al, aok := a.Label()
		bl, bok := b.Label()
		return aok == bok && al == bl
	}
	return true
}

// JoinCompletions merges two branch completions produced under an abstract
// guard value. The caller supplies sameThrowKind, used only when both
// branches are Throw, to decide whether the thrown values share an error
// kind — this package has no notion of error object shape, so it defers
// that judgment to the evaluator.
//
// Returns ok=false when the join cannot be performed soundly: a join-time
// attempt to combine two differently abrupt completions when the branch
// condition is abstract cannot be resolved here; the caller is expected to
// report that as an introspection error rather than inspect the returned
// nil.
func JoinCompletions(condition value.Value, consequent, alternate *Completion, sameThrowKind func(a, b *Completion) bool) (*Completion, bool) {
	cKind, aKind := consequent.Kind(), alternate.Kind()

	switch {
	case !cKind.IsAbrupt() && !aKind.IsAbrupt():
		// Both normal: not this function's concern — the caller folds the
		// two normal values into one abstract value instead of calling
		// JoinCompletions at all.
		return consequent, true
	case cKind.IsAbrupt() != aKind.IsAbrupt():
		return NewPossiblyNormal(condition, pickNormal(consequent, alternate), pickAbrupt(consequent, alternate)), true
	case cKind == Throw && aKind == Throw:
		if sameThrowKind == nil || !sameThrowKind(consequent, alternate) {
			return nil, false
		}
		return NewJoined(condition, consequent, alternate), true
	case SameAbruptKind(consequent, alternate):
		return NewJoined(condition, consequent, alternate), true
	default:
		return nil, false
	}
}

func pickNormal(a, b *Completion) *Completion {
	if !a.Kind().IsAbrupt() {
		return a
	}
	return b
}

func pickAbrupt(a, b *Completion) *Completion {
	if a.Kind().IsAbrupt() {
		return a
	}
	return b
}
