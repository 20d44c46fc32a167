package envrec

import "github.com/yernsun/prepack/value"

// ObjectBacked delegates bindings to a backing Object, optionally honoring
// an unscopables symbol when WithFlag is set.
type ObjectBacked struct {
	Base    *value.Object
	WithFlag bool

	// Unscopables, when WithFlag is set, names the symbol key on Base whose
	// own value (if an object) lists property names excluded from binding
	// resolution, per the Standard's `with` statement semantics.
	Unscopables value.Symbol
	hasUnscopables bool
}

var _ Record = (*ObjectBacked)(nil)

// NewObjectBacked wraps an Object as an environment record.
func NewObjectBacked(base *value.Object, withFlag bool) *ObjectBacked {
	return &ObjectBacked{Base: base, WithFlag: withFlag}
}

// SetUnscopablesSymbol configures the unscopables lookup key for `with`
// semantics.
func (o *ObjectBacked) SetUnscopablesSymbol(sym value.Symbol) {
	o.Unscopables = sym
	o.hasUnscopables = true
}

func (o *ObjectBacked) unscoped(name string) bool {
	if !o.WithFlag || !o.hasUnscopables {
		return false
	}
	unscopablesDesc, owner, found := value.Get(o.Base, value.SymbolKey(o.Unscopables))
	if !found || owner == nil {
		return false
	}
	blocklist, ok := unscopablesDesc.Value.(*value.Object)
	if !ok {
		return false
	}
	d, ok := blocklist.OwnProperty(value.StringKey(value.NewString(o.Base.Realm(), name)))
	if !ok {
		return false
	}
	b, ok := d.Value.(value.Boolean)
	return ok && b.Value
}

func (o *ObjectBacked) HasBinding(name string) bool {
	if o.unscoped(name) {
		return false
	}
	_, _, found := value.Get(o.Base, value.StringKey(value.NewString(o.Base.Realm(), name)))
	return found
}

func (o *ObjectBacked) CreateMutableBinding(name string, deletable bool) error {
	o.Base.DefineOwnProperty(
		value.StringKey(value.NewString(o.Base.Realm(), name)),
		value.NewDataDescriptor(value.NewUndefined(o.Base.Realm()), true, true, deletable),
	)
	return nil
}

func (o *ObjectBacked) CreateImmutableBinding(name string) error {
	o.Base.DefineOwnProperty(
		value.StringKey(value.NewString(o.Base.Realm(), name)),
		value.NewDataDescriptor(value.NewUndefined(o.Base.Realm()), false, true, false),
	)
	return nil
}

func (o *ObjectBacked) InitializeBinding(name string, v value.Value) error {
	return o.SetMutableBinding(name, v, false)
}

func (o *ObjectBacked) SetMutableBinding(name string, v value.Value, strict bool) error {
	key := value.StringKey(value.NewString(o.Base.Realm(), name))
	_, owner, found := value.Get(o.Base, key)
	if !found {
		if strict {
			return referenceError(name, "assignment to undeclared variable")
		}
		o.Base.DefineOwnProperty(key, value.NewDataDescriptor(v, true, true, true))
		return nil
	}
	owner.DefineOwnProperty(key, value.NewDataDescriptor(v, true, true, true))
	return nil
}

func (o *ObjectBacked) GetBindingValue(name string, strict bool) (value.Value, error) {
	key := value.StringKey(value.NewString(o.Base.Realm(), name))
	d, _, found := value.Get(o.Base, key)
	if !found {
		if strict {
			return nil, referenceError(name, "undeclared variable")
		}
		return value.NewUndefined(o.Base.Realm()), nil
	}
	return d.Value, nil
}

func (o *ObjectBacked) DeleteBinding(name string) (bool, error) {
	return o.Base.DeleteOwnProperty(value.StringKey(value.NewString(o.Base.Realm(), name))), nil
}

func (o *ObjectBacked) HasThisBinding() bool                  { return false }
func (o *ObjectBacked) GetThisBinding() (value.Value, error)  { return nil, referenceError("this", "no this binding") }
func (o *ObjectBacked) HasSuperBinding() bool                 { return false }
func (o *ObjectBacked) WithBaseObject() (*value.Object, bool) {
	if o.WithFlag {
		return o.Base, true
	}
	return nil, false
}
func (o *ObjectBacked) EnvKind() string { return "object-backed" }
