package value

// ObjectID uniquely identifies an Object within its realm's heap; it is the
// key the heap package indexes objects by. References between objects —
// prototype links, property values, cyclic property graphs — are ordinary
// Go pointers held in Values, not ObjectIDs.
type ObjectID uint64

// SlotKey names an internal slot keyed by a symbolic name, e.g.
// "[[Prototype]]" or "[[ParameterMap]]".
type SlotKey string

// Object is a mutable record with identity. Functions embed an Object.
type Object struct {
	realm RealmID
	id    ObjectID

	properties map[any]propEntry // key is PropertyKey.Comparable()
	order      []PropertyKey     // insertion order, for enumeration: own keys come out in insertion order

	// Prototype is either an Object (wrapped as Value) or Null. A nil
	// Prototype is invalid; use NewNull to terminate a chain.
	Prototype Value

	Extensible bool

	slots map[SlotKey]Value

	// Partial: reads of unknown keys may yield an Abstract value.
	Partial bool
	// Simple: no getters/setters/proxies/prototype side effects; enumeration
	// is over own keys only. Monotone: once cleared, never set again.
	Simple bool
}

type propEntry struct {
	key  PropertyKey
	desc Descriptor
}

// NewObject allocates a fresh, empty, extensible, simple, non-partial Object
// with the given prototype (pass a Null value to terminate the chain).
func NewObject(r RealmID, id ObjectID, prototype Value) *Object {
	return &Object{
		realm:      r,
		id:         id,
		properties: make(map[any]propEntry),
		Prototype:  prototype,
		Extensible: true,
		slots:      make(map[SlotKey]Value),
		Partial:    false,
		Simple:     true,
	}
}

func (o *Object) Kind() Kind       { return KindObject }
func (o *Object) Realm() RealmID   { return o.realm }
func (*Object) isValue()           {}

// ID returns the object's realm-unique identity.
func (o *Object) ID() ObjectID { return o.id }

// OwnProperty returns the descriptor stored directly on this object (not
// following the prototype chain), and whether one exists.
func (o *Object) OwnProperty(key PropertyKey) (Descriptor, bool) {
	e, ok := o.properties[key.Comparable()]
	if !ok {
		return Descriptor{}, false
	}
	return e.desc, true
}

// DefineOwnProperty installs or replaces a descriptor directly on this
// object, tracking insertion order for enumeration. Clearing Simple is the
// caller's responsibility when the write itself is what disqualifies the
// object (e.g. installing an accessor clears Simple — see ClearSimple).
func (o *Object) DefineOwnProperty(key PropertyKey, d Descriptor) {
	ck := key.Comparable()
	if _, existed := o.properties[ck]; !existed {
		o.order = append(o.order, key)
	}
	o.properties[ck] = propEntry{key: key, desc: d}
}

// DeleteOwnProperty removes a directly-owned property, if present, and
// reports whether it was removed.
func (o *Object) DeleteOwnProperty(key PropertyKey) bool {
	ck := key.Comparable()
	if _, ok := o.properties[ck]; !ok {
		return false
	}
	delete(o.properties, ck)
	for i, k := range o.order {
		if k.Comparable() == ck {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// OwnKeys returns the own property keys in insertion order: for-in over a
// concrete object yields each own enumerable string key exactly once in
// insertion order.
func (o *Object) OwnKeys() []PropertyKey {
	out := make([]PropertyKey, len(o.order))
	copy(out, o.order)
	return out
}

// OwnEnumerableStringKeys returns own enumerable string-valued keys only, in
// insertion order, matching for-in semantics.
func (o *Object) OwnEnumerableStringKeys() []String {
	var out []String
	for _, k := range o.order {
		if k.IsSymbol() {
			continue
		}
		e := o.properties[k.Comparable()]
		if e.desc.Enumerable {
			out = append(out, k.AsString())
		}
	}
	return out
}

// Slot returns an internal slot's value and whether it is set.
func (o *Object) Slot(key SlotKey) (Value, bool) {
	v, ok := o.slots[key]
	return v, ok
}

// SetSlot installs an internal slot value.
func (o *Object) SetSlot(key SlotKey, v Value) {
	o.slots[key] = v
}

// ClearSimple permanently clears the Simple bit; this is monotone and never
// reverses. Called when an accessor, proxy-like slot, or non-default
// prototype behavior is installed.
func (o *Object) ClearSimple() {
	o.Simple = false
}

// IsPlainObject always reports true, including for the Object embedded in a
// Function: an Object holds no link back to a Function embedding it, so it
// cannot tell the two apart.
func (o *Object) IsPlainObject() bool { return true }
