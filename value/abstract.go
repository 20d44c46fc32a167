package value

// OriginKind tags a recognizable shape of an Abstract value's origin
// expression, letting the evaluator recognize and simplify known patterns
// without re-deriving them from the template text.
type OriginKind string

const (
	// OriginGeneric marks an abstract value with no recognized pattern.
	OriginGeneric OriginKind = ""
	// OriginPropertyNameCondition marks a template for a property-name
	// condition, e.g. the guard of a for-in loop body shape check.
	OriginPropertyNameCondition OriginKind = "property-name-condition"
	// OriginSentinelMember marks a sentinel member expression, used
	// to recognize `a[k]`/`a.k` shapes produced during for-in residualization.
	OriginSentinelMember OriginKind = "sentinel-member"
	// OriginKnownPropertyCheck marks a check for a known property.
	OriginKnownPropertyCheck OriginKind = "known-property-check"
)

// OriginTemplate is a source-fragment template with holes for argument
// values. It is opaque to the interpreter and consumed only by the
// residualizer when it prints the abstract value's declaring statement.
type OriginTemplate struct {
	// Fragments are joined with the rendered argument expressions
	// interleaved: Fragments[0] + arg[0] + Fragments[1] + arg[1] + ... .
	// len(Fragments) == len(args)+1.
	Fragments []string
}

// NewOriginTemplate builds a template from literal text fragments.
func NewOriginTemplate(fragments ...string) OriginTemplate {
	return OriginTemplate{Fragments: fragments}
}

// ValueSet is a finite-or-top set of concrete candidate values. The empty,
// non-top ValueSet denotes no known candidates.
type ValueSet struct {
	top       bool
	candidates []Value
}

// AnyValueSet is the ⊤ values domain.
var AnyValueSet = ValueSet{top: true}

// NewValueSet builds a finite candidate set.
func NewValueSet(candidates ...Value) ValueSet {
	return ValueSet{candidates: candidates}
}

// IsTop reports whether the domain is ⊤.
func (v ValueSet) IsTop() bool { return v.top }

// Candidates returns the finite candidate list; meaningless when IsTop().
func (v ValueSet) Candidates() []Value { return v.candidates }

// Abstract represents unknown data. It is immutable after
// construction and its argument values form an acyclic dependency DAG,
// since each Abstract can only reference values minted strictly before it.
type Abstract struct {
	realm RealmID
	id    ObjectID // identity for dependency tracking / declaration naming

	Types  TypeSet
	Values ValueSet

	Origin OriginTemplate
	// PatternKind is the kind tag recognizing known origin shapes; not
	// to be confused with Kind(), the Value-interface sum-type discriminant.
	PatternKind OriginKind
	Args        []Value // ordered argument values filling the template's holes
}

// NewAbstract mints an Abstract value. It stores args as given, without a
// defensive copy, and neither realm.Realm.CreateAbstract nor
// generator.Generator.Derive copies the slice before passing it in; no field
// of an Abstract is mutated post-construction.
func NewAbstract(r RealmID, id ObjectID, types TypeSet, values ValueSet, origin OriginTemplate, patternKind OriginKind, args []Value) *Abstract {
	return &Abstract{
		realm:       r,
		id:          id,
		Types:       types,
		Values:      values,
		Origin:      origin,
		PatternKind: patternKind,
		Args:        args,
	}
}

func (a *Abstract) Kind() Kind      { return KindAbstract }
func (a *Abstract) Realm() RealmID { return a.realm }
func (*Abstract) isValue()         {}

// ID is the identity used to order Abstract declarations during
// residualization and to detect self-reference cycles (which cannot
// occur by construction, since Args may only name already-minted values).
func (a *Abstract) ID() ObjectID { return a.id }

// MightBe reports whether k is in the Abstract's types domain.
func (a *Abstract) MightBe(k Kind) bool { return a.Types.Contains(k) }

// IsDefinitely reports whether the types domain is the finite singleton {k}.
func (a *Abstract) IsDefinitely(k Kind) bool {
	single, ok := a.Types.Single()
	return ok && single == k
}

// AbstractObject is an Abstract value whose types domain is exactly
// {KindObject}, additionally carrying a finite-or-top set of concrete
// Object candidates.
type AbstractObject struct {
	Abstract
	ObjectCandidates []*Object // nil means unknown/unbounded, not necessarily ⊤
	CandidatesKnown  bool
}

// NewAbstractObject mints an AbstractObject. The types domain is forced to
// {KindObject} regardless of what the caller passes, since that is the
// defining property of this arm.
func NewAbstractObject(r RealmID, id ObjectID, values ValueSet, origin OriginTemplate, patternKind OriginKind, args []Value, candidates []*Object, candidatesKnown bool) *AbstractObject {
	return &AbstractObject{
		Abstract:         *NewAbstract(r, id, NewTypeSet(KindObject), values, origin, patternKind, args),
		ObjectCandidates: candidates,
		CandidatesKnown:  candidatesKnown,
	}
}
