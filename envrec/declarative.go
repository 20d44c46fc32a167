package envrec

import "github.com/yernsun/prepack/value"

type binding struct {
	flags bindingFlags
	value value.Value
}

// Declarative is the declarative environment record variant: name -> binding
// record with initialized/mutable/strict/deletable flags.
type Declarative struct {
	bindings map[string]*binding

	// OnWrite, if set, is invoked before a binding's stored value changes,
	// letting the realm append a (binding, prior snapshot) entry to its
	// modification log so speculative writes can be rolled back. Parameters:
	// name and the binding's previous value.
	OnWrite func(name string, prior value.Value)
}

var _ Record = (*Declarative)(nil)

// NewDeclarative returns an empty declarative environment record.
func NewDeclarative() *Declarative {
	return &Declarative{bindings: make(map[string]*binding)}
}

func (d *Declarative) HasBinding(name string) bool {
	_, ok := d.bindings[name]
	return ok
}

func (d *Declarative) CreateMutableBinding(name string, deletable bool) error {
	if d.HasBinding(name) {
		return referenceError(name, "binding already exists")
	}
	d.bindings[name] = &binding{flags: bindingFlags{mutable: true, deletable: deletable}}
	return nil
}

func (d *Declarative) CreateImmutableBinding(name string) error {
	if d.HasBinding(name) {
		return referenceError(name, "binding already exists")
	}
	d.bindings[name] = &binding{flags: bindingFlags{mutable: false}}
	return nil
}

func (d *Declarative) InitializeBinding(name string, v value.Value) error {
	b, ok := d.bindings[name]
	if !ok {
		return referenceError(name, "binding does not exist")
	}
	if d.OnWrite != nil {
		d.OnWrite(name, nil)
	}
	b.value = v
	b.flags.initialized = true
	return nil
}

func (d *Declarative) SetMutableBinding(name string, v value.Value, strict bool) error {
	b, ok := d.bindings[name]
	if !ok {
		if strict {
			return referenceError(name, "assignment to undeclared variable")
		}
		// Non-strict: create and initialize implicitly (caller normally
		// routes this to the global record instead; kept here for
		// environments that are themselves used as a fallback target).
		d.bindings[name] = &binding{flags: bindingFlags{mutable: true, initialized: true}, value: v}
		return nil
	}
	if !b.flags.initialized {
		return referenceError(name, "cannot set an uninitialized binding")
	}
	if !b.flags.mutable {
		if strict {
			return referenceError(name, "assignment to constant variable")
		}
		return nil
	}
	if d.OnWrite != nil {
		d.OnWrite(name, b.value)
	}
	b.value = v
	return nil
}

func (d *Declarative) GetBindingValue(name string, strict bool) (value.Value, error) {
	b, ok := d.bindings[name]
	if !ok {
		return nil, referenceError(name, "binding does not exist")
	}
	if !b.flags.initialized {
		return nil, referenceError(name, "binding is not initialized")
	}
	return b.value, nil
}

func (d *Declarative) DeleteBinding(name string) (bool, error) {
	b, ok := d.bindings[name]
	if !ok {
		return true, nil
	}
	if !b.flags.deletable {
		return false, nil
	}
	delete(d.bindings, name)
	return true, nil
}

func (d *Declarative) HasThisBinding() bool                       { return false }
func (d *Declarative) GetThisBinding() (value.Value, error)       { return nil, referenceError("this", "no this binding") }
func (d *Declarative) HasSuperBinding() bool                      { return false }
func (d *Declarative) WithBaseObject() (*value.Object, bool)      { return nil, false }
func (d *Declarative) EnvKind() string                            { return "declarative" }

// SnapshotValue returns the raw stored value, used by the realm's
// modification-log rollback to restore exact prior state without going
// through SetMutableBinding's strict-mode checks.
func (d *Declarative) SnapshotValue(name string) (value.Value, bool) {
	b, ok := d.bindings[name]
	if !ok {
		return nil, false
	}
	return b.value, true
}

// RestoreValue force-sets a binding's stored value, bypassing mutability
// checks; used only by rollback.
func (d *Declarative) RestoreValue(name string, v value.Value) {
	if b, ok := d.bindings[name]; ok {
		b.value = v
	}
}
