// Package completion implements the algebraic Completion type and its
// composition/join rules: every statement and expression evaluation
// produces a Completion carrying a Kind (Normal, Break, Continue, Return,
// Throw, or a Joined/PossiblyNormal combination of several) plus the value
// and label information relevant to that Kind. Completions compose with a
// Kind discriminant and accessor methods guarded by that Kind, dispatched
// with type switches rather than a visitor interface.
package completion

import "github.com/yernsun/prepack/value"

// Kind discriminates the arms of the Completion sum type.
type Kind uint8

const (
	// Normal completion, carrying a value (possibly Undefined).
	Normal Kind = iota
	// Throw completion, carrying the thrown value and its source location.
	Throw
	// Break completion, carrying an optional label and value.
	Break
	// Continue completion, carrying an optional label and value.
	Continue
	// Return completion, carrying the returned value.
	Return
	// Joined is a join of two completions that are both abrupt, guarded by
	// a runtime condition that could not be resolved at build time.
	Joined
	// PossiblyNormal is a join where one branch is Normal and the other is
	// abrupt, again guarded by an unresolved condition.
	PossiblyNormal
)

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Throw:
		return "throw"
	case Break:
		return "break"
	case Continue:
		return "continue"
	case Return:
		return "return"
	case Joined:
		return "joined"
	case PossiblyNormal:
		return "possibly-normal"
	default:
		return "unknown"
	}
}

// IsAbrupt reports whether a completion kind is not Normal (the Standard's
// "abrupt completion").
func (k Kind) IsAbrupt() bool { return k != Normal }

// Location is the minimal position info attached to a Throw completion;
// kept separate from diagnostics.Location to avoid that import here, since
// diagnostics already depends on nothing completion needs.
type Location struct {
	Source string
	Line   int
	Column int
}

// Completion is the structured outcome of evaluating an expression or
// statement.
type Completion struct {
	kind  Kind
	value value.Value

	label    string
	hasLabel bool

	throwLoc Location

	// Joined/PossiblyNormal arms.
	condition  value.Value // the abstract guard value
	consequent *Completion
	alternate  *Completion
}

// NewNormal builds a Normal(value) completion.
func NewNormal(v value.Value) *Completion {
	return &Completion{kind: Normal, value: v}
}

// NewThrow builds a Throw(value, location) completion.
func NewThrow(v value.Value, loc Location) *Completion {
	return &Completion{kind: Throw, value: v, throwLoc: loc}
}

// NewBreak builds a Break(label?, value) completion.
func NewBreak(label string, hasLabel bool, v value.Value) *Completion {
	return &Completion{kind: Break, value: v, label: label, hasLabel: hasLabel}
}

// NewContinue builds a Continue(label?, value) completion.
func NewContinue(label string, hasLabel bool, v value.Value) *Completion {
	return &Completion{kind: Continue, value: v, label: label, hasLabel: hasLabel}
}

// NewReturn builds a Return(value) completion.
func NewReturn(v value.Value) *Completion {
	return &Completion{kind: Return, value: v}
}

// NewJoined builds a Joined completion over a runtime condition, where both
// branches are themselves abrupt.
func NewJoined(condition value.Value, consequent, alternate *Completion) *Completion {
	return &Completion{kind: Joined, condition: condition, consequent: consequent, alternate: alternate}
}

// NewPossiblyNormal builds a PossiblyNormal completion, used when a
// control-flow join leaves one side normal.
func NewPossiblyNormal(condition value.Value, normalBranch, abruptBranch *Completion) *Completion {
	return &Completion{kind: PossiblyNormal, condition: condition, consequent: normalBranch, alternate: abruptBranch}
}

// Kind reports which arm this completion occupies.
func (c *Completion) Kind() Kind { return c.kind }

// Value returns the carried value; valid for Normal/Throw/Break/Continue/Return.
func (c *Completion) Value() value.Value { return c.value }

// Label returns the carried label and whether one is present; valid for
// Break/Continue.
func (c *Completion) Label() (string, bool) { return c.label, c.hasLabel }

// ThrowLocation returns the source location of a Throw completion.
func (c *Completion) ThrowLocation() Location { return c.throwLoc }

// Condition, Consequent, Alternate expose a Joined/PossiblyNormal
// completion's branches.
func (c *Completion) Condition() value.Value   { return c.condition }
func (c *Completion) Consequent() *Completion  { return c.consequent }
func (c *Completion) Alternate() *Completion   { return c.alternate }

// UpdateEmpty implements the Standard's UpdateEmpty: if c's value is absent
// (nil), substitutes v; otherwise returns c unchanged. Used after
// statement-list evaluation where an abrupt completion with no value (e.g.
// a bare `break;`) should inherit the last normally-completed value.
func UpdateEmpty(c *Completion, v value.Value) *Completion {
	if c.value != nil {
		return c
	}
	cp := *c
	cp.value = v
	return &cp
}
