package value

// Value is the sealed interface implemented by every arm of the value
// hierarchy: the concrete primitives, *Object (and its *Function subtype),
// and *Abstract (and its *AbstractObject subtype). Grounded on cel-go's
// ref.Val: a single narrow interface (there, Type()/Value(); here, Kind()
// plus the realm each value belongs to) that every concrete representation
// implements, with type switches doing the dispatch instead of a visitor.
type Value interface {
	// Kind reports which arm of the sum type this value occupies.
	Kind() Kind
	// Realm reports the identity of the realm that owns this value. Every
	// value belongs to exactly one process-wide realm.
	Realm() RealmID
	isValue()
}

// RealmID identifies the owning realm of a value without importing the
// realm package (which in turn depends on value), avoiding an import cycle.
type RealmID uint32

// Undefined is the Undefined primitive. It carries no data beyond its realm.
type Undefined struct{ realm RealmID }

// NewUndefined constructs the Undefined value for a realm.
func NewUndefined(r RealmID) Undefined { return Undefined{realm: r} }

func (Undefined) Kind() Kind        { return KindUndefined }
func (u Undefined) Realm() RealmID  { return u.realm }
func (Undefined) isValue()          {}
func (Undefined) String() string    { return "undefined" }

// Null is the Null primitive.
type Null struct{ realm RealmID }

// NewNull constructs the Null value for a realm.
func NewNull(r RealmID) Null { return Null{realm: r} }

func (Null) Kind() Kind       { return KindNull }
func (n Null) Realm() RealmID { return n.realm }
func (Null) isValue()         {}
func (Null) String() string   { return "null" }

// Boolean is the Boolean primitive.
type Boolean struct {
	realm RealmID
	Value bool
}

// NewBoolean constructs a Boolean value.
func NewBoolean(r RealmID, v bool) Boolean { return Boolean{realm: r, Value: v} }

func (Boolean) Kind() Kind       { return KindBoolean }
func (b Boolean) Realm() RealmID { return b.realm }
func (Boolean) isValue()         {}

// Number is the Number primitive, an IEEE-754 double.
type Number struct {
	realm RealmID
	Value float64
}

// NewNumber constructs a Number value.
func NewNumber(r RealmID, v float64) Number { return Number{realm: r, Value: v} }

func (Number) Kind() Kind       { return KindNumber }
func (n Number) Realm() RealmID { return n.realm }
func (Number) isValue()         {}

// String is the immutable String primitive.
type String struct {
	realm RealmID
	Value string
}

// NewString constructs a String value.
func NewString(r RealmID, v string) String { return String{realm: r, Value: v} }

func (String) Kind() Kind       { return KindString }
func (s String) Realm() RealmID { return s.realm }
func (String) isValue()         {}

// SymbolID distinguishes Symbol values by identity rather than content;
// two Symbols with the same description are never equal.
type SymbolID uint64

// Symbol is the identity-unique Symbol primitive, with an optional
// human-readable description.
type Symbol struct {
	realm       RealmID
	id          SymbolID
	Description string
	hasDesc     bool
}

// NewSymbol constructs a fresh Symbol with the given identity and optional
// description.
func NewSymbol(r RealmID, id SymbolID, description string, hasDescription bool) Symbol {
	return Symbol{realm: r, id: id, Description: description, hasDesc: hasDescription}
}

func (Symbol) Kind() Kind       { return KindSymbol }
func (s Symbol) Realm() RealmID { return s.realm }
func (Symbol) isValue()         {}

// ID returns the identity token distinguishing this symbol from any other.
func (s Symbol) ID() SymbolID { return s.id }

// HasDescription reports whether Description is meaningful.
func (s Symbol) HasDescription() bool { return s.hasDesc }

// PropertyKey is either a String or a Symbol, the two arms allowed as
// object property keys.
type PropertyKey struct {
	str    String
	sym    Symbol
	isSym  bool
}

// StringKey builds a PropertyKey from a String.
func StringKey(s String) PropertyKey { return PropertyKey{str: s} }

// SymbolKey builds a PropertyKey from a Symbol.
func SymbolKey(s Symbol) PropertyKey { return PropertyKey{sym: s, isSym: true} }

// IsSymbol reports whether the key is a Symbol rather than a String.
func (k PropertyKey) IsSymbol() bool { return k.isSym }

// AsString returns the String arm; valid only when !IsSymbol().
func (k PropertyKey) AsString() String { return k.str }

// AsSymbol returns the Symbol arm; valid only when IsSymbol().
func (k PropertyKey) AsSymbol() Symbol { return k.sym }

// comparableKey is what PropertyKey hashes to for use as a Go map key: the
// Symbol arm compares by identity (its SymbolID), the String arm by content.
type comparableKey struct {
	isSym bool
	str   string
	sym   SymbolID
}

// Comparable returns the Go-map-safe projection of this key.
func (k PropertyKey) Comparable() any {
	if k.isSym {
		return comparableKey{isSym: true, sym: k.sym.id}
	}
	return comparableKey{str: k.str.Value}
}
