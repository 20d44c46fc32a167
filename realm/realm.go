// Package realm implements the Realm container that owns every
// piece of process-wide state a partial evaluation run needs — intrinsic
// singletons, the modification log, the active execution-context stack,
// the root effect generator, name allocation, the node-kind evaluator
// dispatch tables, the diagnostic handler, and the abstract-interpretation
// flags. Grounded on cel/env.go's Env (a long-lived configuration
// container built once via a functional-options constructor and threaded
// through every later operation) and checker/env.go's Env (a smaller
// sibling container owning its own declaration scope stack) — Realm plays
// the same role for evaluation that those play for checking/planning.
package realm

import (
	"github.com/golang/glog"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/diagnostics"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/heap"
	"github.com/yernsun/prepack/intrinsics"
	"github.com/yernsun/prepack/value"
)

// Evaluator fully (concretely) evaluates n in env, returning the resulting
// completion. Populated by the evaluator package via RegisterEvaluator to
// avoid realm importing evaluator (evaluator imports realm, not the
// reverse).
type Evaluator func(r *Realm, n ast.Node, env *envrec.Environment) *completion.Completion

// PartialEvaluator evaluates n in env under partial/abstract interpretation,
// returning a completion that may carry an Abstract value and
// having recorded any residual effects on the realm's active generator.
type PartialEvaluator func(r *Realm, n ast.Node, env *envrec.Environment) *completion.Completion

// Realm is the single process-wide container backing a partial-evaluation run.
type Realm struct {
	id    value.RealmID
	heap  *heap.Heap
	modLog *heap.Log

	intrinsics intrinsics.Registry

	names    *generator.NameGenerator
	prelude  *generator.PreludeGenerator
	rootGen  *generator.Generator
	genStack []*generator.Generator

	fullEvaluators    map[ast.NodeKind]Evaluator
	partialEvaluators map[ast.NodeKind]PartialEvaluator

	diagnostics diagnostics.Handler

	contexts []*ExecutionContext

	flags Flags

	nextObjectID uint64

	deadline *DeadlineTracker
}

// Flags are the abstract-interpretation toggles exposed to callers.
type Flags struct {
	// InvariantGuards is set from the config file or the CLI and logged at
	// realm creation. No evaluation path reads it, and no residual invariant
	// check (generator.EmitInvariant) is emitted whatever its value.
	InvariantGuards bool
	// MaxJoinDepth is set from the config file and logged at realm
	// creation. No evaluation path reads it, so it places no bound on the
	// nesting of conditional joins.
	MaxJoinDepth int
}

// DefaultFlags mirrors the conservative defaults a first run should use:
// guards on, unbounded-looking but finite join depth.
func DefaultFlags() Flags {
	return Flags{InvariantGuards: true, MaxJoinDepth: 64}
}

// New constructs a Realm for the given id, wiring its intrinsic registry,
// a fresh heap and modification log, and name/prelude generators tagged
// with uniqueSuffix so identifiers stay unique across a run.
func New(id value.RealmID, reg intrinsics.Registry, uniqueSuffix string, forbiddenNames []string, handler diagnostics.Handler, flags Flags) *Realm {
	if handler == nil {
		handler = diagnostics.DiscardHandler
	}
	names := generator.NewNameGenerator(uniqueSuffix, forbiddenNames)
	r := &Realm{
		id:                id,
		heap:              heap.New(),
		modLog:            heap.NewLog(),
		intrinsics:        reg,
		names:             names,
		diagnostics:       handler,
		fullEvaluators:    map[ast.NodeKind]Evaluator{},
		partialEvaluators: map[ast.NodeKind]PartialEvaluator{},
		flags:             flags,
	}
	r.rootGen = generator.New(r)
	r.prelude = generator.NewPreludeGenerator(names)
	r.genStack = []*generator.Generator{r.rootGen}
	glog.V(1).Infof("realm %v created: uniqueSuffix=%q invariantGuards=%v maxJoinDepth=%d", id, uniqueSuffix, flags.InvariantGuards, flags.MaxJoinDepth)
	return r
}

// ID returns this realm's identity tag.
func (r *Realm) ID() value.RealmID { return r.id }

// NextObjectID implements generator.IDAllocator: mints a fresh, never-reused
// object identity scoped to this realm.
func (r *Realm) NextObjectID() value.ObjectID {
	r.nextObjectID++
	return value.ObjectID(r.nextObjectID)
}

// RealmID implements generator.IDAllocator.
func (r *Realm) RealmID() value.RealmID { return r.id }

// Heap returns the realm's object heap.
func (r *Realm) Heap() *heap.Heap { return r.heap }

// ModLog returns the realm's modification log, used to snapshot and roll
// back speculative evaluation.
func (r *Realm) ModLog() *heap.Log { return r.modLog }

// Intrinsics returns the realm's built-in registry.
func (r *Realm) Intrinsics() intrinsics.Registry { return r.intrinsics }

// Names returns the realm's identifier generator.
func (r *Realm) Names() *generator.NameGenerator { return r.names }

// Prelude returns the realm's memoized built-in reference table.
func (r *Realm) Prelude() *generator.PreludeGenerator { return r.prelude }

// RootGenerator returns the top-level effect generator effects land on when
// no speculative frame is active.
func (r *Realm) RootGenerator() *generator.Generator { return r.rootGen }

// ActiveGenerator returns the generator effects should be recorded to right
// now: the top of the speculative-frame stack, or the root generator.
func (r *Realm) ActiveGenerator() *generator.Generator {
	return r.genStack[len(r.genStack)-1]
}

// Diagnostics returns the realm's configured diagnostic handler.
func (r *Realm) Diagnostics() diagnostics.Handler { return r.diagnostics }

// Flags returns the realm's abstract-interpretation toggles.
func (r *Realm) Flags() Flags { return r.flags }

// RegisterEvaluator installs the full evaluator for a node kind. Called
// once per kind during evaluator package initialization.
func (r *Realm) RegisterEvaluator(k ast.NodeKind, fn Evaluator) {
	r.fullEvaluators[k] = fn
}

// RegisterPartialEvaluator installs the partial evaluator for a node kind.
func (r *Realm) RegisterPartialEvaluator(k ast.NodeKind, fn PartialEvaluator) {
	r.partialEvaluators[k] = fn
}

// Evaluate dispatches n to its registered full evaluator.
// It panics with an InvariantViolation if no evaluator was registered for
// n.Kind(), since every node kind the parser-contract layer produces must
// have one wired before any evaluation begins.
func (r *Realm) Evaluate(n ast.Node, env *envrec.Environment) *completion.Completion {
	fn, ok := r.fullEvaluators[n.Kind()]
	if !ok {
		diagnostics.InvariantViolation("evaluator-dispatch", "no full evaluator registered for node kind "+n.Kind().String())
	}
	return fn(r, n, env)
}

// EvaluatePartial dispatches n to its registered partial evaluator, falling
// back to the full evaluator when no partial arm was registered for this
// kind (a node whose evaluation can never itself observe an abstract value
// doesn't need a partial variant, e.g. a bare literal).
func (r *Realm) EvaluatePartial(n ast.Node, env *envrec.Environment) *completion.Completion {
	if fn, ok := r.partialEvaluators[n.Kind()]; ok {
		return fn(r, n, env)
	}
	return r.Evaluate(n, env)
}
