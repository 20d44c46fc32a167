package envrec

import "github.com/yernsun/prepack/value"

// Global is the global environment record variant: a composite of a
// declarative record (for let/const/class bindings), an object-backed
// record (for var declarations and built-in globals), a name list tracking
// var declarations, and a global-this value.
type Global struct {
	DeclRecord   *Declarative
	ObjRecord    *ObjectBacked
	VarNames     map[string]bool
	GlobalThis   value.Value
}

var _ Record = (*Global)(nil)

// NewGlobal builds a global environment record over the given global object.
func NewGlobal(globalObject *value.Object, globalThis value.Value) *Global {
	return &Global{
		DeclRecord: NewDeclarative(),
		ObjRecord:  NewObjectBacked(globalObject, false),
		VarNames:   make(map[string]bool),
		GlobalThis: globalThis,
	}
}

func (g *Global) HasBinding(name string) bool {
	return g.DeclRecord.HasBinding(name) || g.ObjRecord.HasBinding(name)
}

func (g *Global) CreateMutableBinding(name string, deletable bool) error {
	if g.DeclRecord.HasBinding(name) {
		return referenceError(name, "binding already exists")
	}
	return g.DeclRecord.CreateMutableBinding(name, deletable)
}

func (g *Global) CreateImmutableBinding(name string) error {
	if g.DeclRecord.HasBinding(name) {
		return referenceError(name, "binding already exists")
	}
	return g.DeclRecord.CreateImmutableBinding(name)
}

// CreateGlobalVarBinding implements the Standard's CreateGlobalVarBinding:
// installs name on the object record and marks it as a var declaration.
func (g *Global) CreateGlobalVarBinding(name string, deletable bool) error {
	if !g.ObjRecord.HasBinding(name) {
		if err := g.ObjRecord.CreateMutableBinding(name, deletable); err != nil {
			return err
		}
		if err := g.ObjRecord.InitializeBinding(name, value.NewUndefined(g.GlobalThis.Realm())); err != nil {
			return err
		}
	}
	g.VarNames[name] = true
	return nil
}

func (g *Global) InitializeBinding(name string, v value.Value) error {
	if g.DeclRecord.HasBinding(name) {
		return g.DeclRecord.InitializeBinding(name, v)
	}
	return g.ObjRecord.InitializeBinding(name, v)
}

func (g *Global) SetMutableBinding(name string, v value.Value, strict bool) error {
	if g.DeclRecord.HasBinding(name) {
		return g.DeclRecord.SetMutableBinding(name, v, strict)
	}
	return g.ObjRecord.SetMutableBinding(name, v, strict)
}

func (g *Global) GetBindingValue(name string, strict bool) (value.Value, error) {
	if g.DeclRecord.HasBinding(name) {
		return g.DeclRecord.GetBindingValue(name, strict)
	}
	return g.ObjRecord.GetBindingValue(name, strict)
}

func (g *Global) DeleteBinding(name string) (bool, error) {
	if g.DeclRecord.HasBinding(name) {
		return g.DeclRecord.DeleteBinding(name)
	}
	ok, err := g.ObjRecord.DeleteBinding(name)
	if err == nil && ok {
		delete(g.VarNames, name)
	}
	return ok, err
}

func (g *Global) HasThisBinding() bool                  { return true }
func (g *Global) GetThisBinding() (value.Value, error)  { return g.GlobalThis, nil }
func (g *Global) HasSuperBinding() bool                 { return false }
func (g *Global) WithBaseObject() (*value.Object, bool) { return nil, false }
func (g *Global) EnvKind() string                       { return "global" }

// HasVarDeclaration reports whether name was declared via `var` (tracked
// separately from ordinary object-record bindings so that, e.g., a residual
// program can distinguish hoisted vars from runtime-added globals).
func (g *Global) HasVarDeclaration(name string) bool {
	return g.VarNames[name]
}
