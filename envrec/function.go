package envrec

import "github.com/yernsun/prepack/value"

// ThisBindingState is the function environment record's this-binding-state:
// lexical, uninitialized, or initialized.
type ThisBindingState int

const (
	// ThisLexical means this is inherited from an enclosing scope (arrow
	// functions never bind their own this).
	ThisLexical ThisBindingState = iota
	// ThisUninitialized means a derived-constructor-style this has not yet
	// been bound via a super call.
	ThisUninitialized
	// ThisInitialized means this has a concrete bound value.
	ThisInitialized
)

// Function is the function environment record variant: declarative plus
// this-binding-state, this-value, home-object, function-object.
type Function struct {
	Declarative

	ThisState  ThisBindingState
	ThisValue  value.Value
	HomeObject *value.Object // for super property lookups; nil if none
	FnObject   *value.Function
	newTarget  value.Value // Undefined when not a [[Construct]] invocation
}

var _ Record = (*Function)(nil)

// NewFunctionRecord builds a function environment record bound to fn.
// thisState/thisValue follow the Standard's OrdinaryCallBindThis outcome,
// computed by the caller (the evaluator, which knows whether fn is an arrow
// function and whether strict mode applies).
func NewFunctionRecord(fn *value.Function, thisState ThisBindingState, thisValue value.Value, homeObject *value.Object, newTarget value.Value) *Function {
	return &Function{
		Declarative: *NewDeclarative(),
		ThisState:   thisState,
		ThisValue:   thisValue,
		HomeObject:  homeObject,
		FnObject:    fn,
		newTarget:   newTarget,
	}
}

func (f *Function) HasThisBinding() bool {
	return f.ThisState != ThisLexical
}

func (f *Function) GetThisBinding() (value.Value, error) {
	if f.ThisState == ThisLexical {
		return nil, referenceError("this", "lexical function has no own this binding")
	}
	if f.ThisState == ThisUninitialized {
		return nil, referenceError("this", "must call super constructor before accessing 'this'")
	}
	return f.ThisValue, nil
}

// BindThisValue initializes an uninitialized this-binding, per the
// Standard's BindThisValue operation (used after a super() call completes).
func (f *Function) BindThisValue(v value.Value) error {
	if f.ThisState == ThisLexical {
		return referenceError("this", "lexical function cannot bind this")
	}
	if f.ThisState == ThisInitialized {
		return referenceError("this", "super constructor may only be called once")
	}
	f.ThisValue = v
	f.ThisState = ThisInitialized
	return nil
}

func (f *Function) HasSuperBinding() bool {
	return f.HomeObject != nil
}

// GetSuperBase returns the object whose prototype super property lookups
// should start from, per the Standard's GetSuperBase.
func (f *Function) GetSuperBase() (value.Value, bool) {
	if f.HomeObject == nil {
		return nil, false
	}
	return f.HomeObject.Prototype, true
}

// NewTarget returns the [[NewTarget]] value for this invocation (Undefined
// when this is a plain call, not a construct).
func (f *Function) NewTarget() value.Value { return f.newTarget }

func (f *Function) EnvKind() string { return "function" }
