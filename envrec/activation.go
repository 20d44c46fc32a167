// Package envrec implements environments: the four environment-record
// variants plus Reference, grounded on cel-go's interpreter/activation.go
// (Activation/MapActivation/HierarchicalActivation/ExtendActivation) —
// generalized from CEL's read-only resolution-by-name into a full mutable
// binding-record algebra (HasBinding, CreateMutableBinding,
// InitializeBinding, SetMutableBinding, GetBindingValue, DeleteBinding).
package envrec

import (
	"fmt"

	"github.com/yernsun/prepack/value"
)

// Record is the common interface every environment-record variant
// implements.
type Record interface {
	HasBinding(name string) bool
	CreateMutableBinding(name string, deletable bool) error
	CreateImmutableBinding(name string) error
	InitializeBinding(name string, v value.Value) error
	SetMutableBinding(name string, v value.Value, strict bool) error
	GetBindingValue(name string, strict bool) (value.Value, error)
	DeleteBinding(name string) (bool, error)
	HasThisBinding() bool
	GetThisBinding() (value.Value, error)
	HasSuperBinding() bool
	WithBaseObject() (*value.Object, bool)
	EnvKind() string
}

// bindingFlags is a binding record's mutability state: initialized/mutable/strict/deletable.
type bindingFlags struct {
	initialized bool
	mutable     bool
	strict      bool
	deletable   bool
}

// BindingError reports a failed binding operation, distinguishing reference
// errors that model errors in the interpreted program from engine misuse.
type BindingError struct {
	Name    string
	Message string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func referenceError(name, msg string) error {
	return &BindingError{Name: name, Message: msg}
}
