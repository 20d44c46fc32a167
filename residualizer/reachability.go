package residualizer

import (
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/value"
)

// reachability implements the residualizer's first pass: before anything is
// printed, walk
// forward from every entry that will certainly be emitted (every
// non-declaring effect entry, since those exist purely for their side
// effects) and mark every declaring entry that entry's arguments transitively
// depend on as required. A Pure declaring entry nothing ever marks required
// is dropped wholesale in the second pass.
//
// Grounded on generator/generator.go's Entry.Pure/IsOmittable machinery
// (mirrored on interpreter/decorators.go's constant-folding decorator
// pipeline) and cel-go's checker reference-graph pattern of resolving
// identifiers back to their declaring AST node before code generation.
type reachability struct {
	declaredBy map[*value.Abstract]*generator.Entry
}

func newReachability() *reachability {
	return &reachability{declaredBy: map[*value.Abstract]*generator.Entry{}}
}

// index records every declaring entry reachable under entries (including
// nested child generators), so requireValue can resolve an Abstract back to
// the entry that introduced it regardless of which generator recorded it.
func (rc *reachability) index(entries []*generator.Entry) {
	for _, e := range entries {
		if e.DeclaresValue() {
			rc.declaredBy[e.Declared] = e
		}
		for _, child := range e.Children {
			rc.index(child.Entries())
		}
	}
}

// requireEntry marks e (and everything e's own Args transitively depend on)
// required. visited guards against re-walking an entry already processed;
// the dependency graph is acyclic by construction (value.Abstract Args may
// only name already-minted values), so this always terminates. Children are
// deliberately not walked here: every entry nested under Children is either
// itself non-declaring (seeded independently by seed, since an if/else
// branch's own effects are unconditionally rendered once its parent entry
// is) or a Derive entry whose requiredness is governed solely by whether
// something reachable names it as an Arg.
func (rc *reachability) requireEntry(e *generator.Entry, visited map[*generator.Entry]bool) {
	if e == nil || visited[e] {
		return
	}
	visited[e] = true
	e.MarkRequired()
	for _, arg := range e.Args {
		rc.requireValue(arg, visited)
	}
}

// requireValue marks whatever declaring entry (if any) backs v as required,
// recursing into a concrete Object's own property graph since a plain object
// leaked as an argument may itself hold Abstract values in its properties.
func (rc *reachability) requireValue(v value.Value, visited map[*generator.Entry]bool) {
	rc.requireValueSeen(v, visited, map[*value.Object]bool{})
}

func (rc *reachability) requireValueSeen(v value.Value, visited map[*generator.Entry]bool, seenObjects map[*value.Object]bool) {
	switch x := v.(type) {
	case *value.AbstractObject:
		rc.requireEntry(rc.declaredBy[&x.Abstract], visited)
	case *value.Abstract:
		rc.requireEntry(rc.declaredBy[x], visited)
	case *value.Function:
		rc.requireObjectProperties(&x.Object, visited, seenObjects)
	case *value.Object:
		rc.requireObjectProperties(x, visited, seenObjects)
	}
}

func (rc *reachability) requireObjectProperties(obj *value.Object, visited map[*generator.Entry]bool, seenObjects map[*value.Object]bool) {
	if obj == nil || seenObjects[obj] {
		return
	}
	seenObjects[obj] = true
	for _, key := range obj.OwnKeys() {
		d, _ := obj.OwnProperty(key)
		if d.IsAccessor() {
			rc.requireValueSeen(d.Get, visited, seenObjects)
			rc.requireValueSeen(d.Set, visited, seenObjects)
			continue
		}
		rc.requireValueSeen(d.Value, visited, seenObjects)
	}
}

// run seeds requiredness from entries (typically the root generator's own
// entry list) and every effect nested under a Children generator, then lets
// requireEntry/requireValue propagate outward from there through the
// dependency DAG.
func (rc *reachability) run(entries []*generator.Entry) {
	visited := map[*generator.Entry]bool{}
	rc.seed(entries, visited)
}

// seed marks every non-declaring entry required — an emit* entry exists
// purely for a side effect, so it is never omittable — and recurses into
// any nested Children generators, since a rendered if/else branch's own
// effects are unconditionally printed once its parent entry is. Declaring (Derive/DeriveObject) entries are left alone here;
// they only become required when requireValue finds something reachable
// naming them as an Arg.
func (rc *reachability) seed(entries []*generator.Entry, visited map[*generator.Entry]bool) {
	for _, e := range entries {
		if !e.DeclaresValue() {
			rc.requireEntry(e, visited)
		}
		for _, child := range e.Children {
			rc.seed(child.Entries(), visited)
		}
	}
}
