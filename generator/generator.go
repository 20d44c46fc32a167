// Package generator implements the effect generator: the tree of recorded
// residual effects, the Derive/Emit* operations the interpreter calls into,
// and the NameGenerator/PreludeGenerator identifier machinery. Grounded on
// interpreter/decorators.go's constant-folding decorator pipeline (the
// model for "pure entries may be dropped", mirrored here in
// Entry.Pure/IsOmittable) and interpreter/evalstate.go's mutable
// per-evaluation bookkeeping.
package generator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/value"
)

// IDAllocator is the narrow capability Generator needs from its owning
// realm: fresh object identity for derived Abstract values, and the realm
// tag every minted value must carry. Defined here (not in realm) so
// generator never imports realm, keeping the dependency one-directional.
type IDAllocator interface {
	NextObjectID() value.ObjectID
	RealmID() value.RealmID
}

// BuildNode renders one entry's recorded effect into a residual statement,
// given the already-serialized argument expressions and the active emit
// context (identifier allocation during emission).
type BuildNode func(argExprs []ast.Node, ctx *EmitContext) ast.Node

// EmitContext is threaded through the residualizer's emission pass so a
// BuildNode closure can mint fresh node ids consistently with the rest of
// the emitted program, and so it can mint or recall the identifier standing
// in for a declared Abstract value or a residual loop variable.
type EmitContext struct {
	Factory *ast.Factory
	Names   *NameGenerator
	nextID  int64

	identFor map[*value.Abstract]string

	// ChildBlocks carries the already-rendered statement lists for an
	// entry's Children, set by the residualizer immediately before it calls
	// that entry's Build closure and restored afterward: the
	// one channel through which a fixed-signature BuildNode can receive a
	// nested generator's emitted statements, since Args/argExprs only carry
	// single expressions, never statement lists.
	ChildBlocks [][]ast.Node
}

// NewEmitContext returns an EmitContext starting node ids at startID and
// drawing fresh identifiers from names.
func NewEmitContext(startID int64, names *NameGenerator) *EmitContext {
	return &EmitContext{Factory: ast.NewFactory(), Names: names, nextID: startID, identFor: map[*value.Abstract]string{}}
}

// NextID returns a fresh node id, monotone within this context.
func (c *EmitContext) NextID() int64 {
	c.nextID++
	return c.nextID
}

// NameFor returns the identifier standing in for abs, minting one with the
// given provenance hint on first reference and reusing it thereafter so
// every occurrence of the same Abstract prints the same name: the cached
// identifier is returned for subsequent uses.
func (c *EmitContext) NameFor(abs *value.Abstract, hint string) string {
	if n, ok := c.identFor[abs]; ok {
		return n
	}
	n := c.Names.FreshWithHint(hint)
	c.identFor[abs] = n
	return n
}

// IdentifierFor returns an identifier Node referencing abs's residual name.
func (c *EmitContext) IdentifierFor(abs *value.Abstract, hint string) ast.Node {
	return declIdent(c, c.NameFor(abs, hint))
}

// FreshLoopVar mints a fresh identifier with no associated Abstract value,
// used for residual for-in loop variables.
func (c *EmitContext) FreshLoopVar(hint string) string {
	return c.Names.FreshWithHint(hint)
}

// Entry is one recorded residual effect.
type Entry struct {
	// Args are the data dependencies: values read by this entry, in the
	// order the emitted statement's sub-expressions will reference them.
	Args []value.Value

	Build BuildNode

	// Declared is the Abstract value this entry introduces a binding for,
	// if any (derive() entries only; emit* entries have none).
	Declared  *value.Abstract
	declares  bool

	// Children holds nested generators for conditionals/loops/try-catch,
	// expanded inline at this entry's position during emission.
	Children []*Generator

	Pure bool

	// foldKey/hasFoldKey are never set or read: the fold-in-place tracking
	// of Generator.EmitOrFoldPropertyAssignment lives in Generator.lastWrite.
	foldKey  writeKey
	hasFoldKey bool

	// required is flipped true during the residualizer's reachability pass
	// when something reachable demands this entry's declared value; a Pure
	// entry whose required bit never flips is dropped entirely, since its
	// declared value is not needed.
	required bool
}

// DeclaresValue reports whether this entry binds an Abstract value.
func (e *Entry) DeclaresValue() bool { return e.declares }

// MarkRequired flips the entry's required bit; idempotent.
func (e *Entry) MarkRequired() { e.required = true }

// IsOmittable reports whether this entry may be dropped from the residual
// program: it is Pure and nothing visited during the reachability pass
// required its declared value.
func (e *Entry) IsOmittable() bool {
	return e.Pure && e.declares && !e.required
}

// Generator is a node in the effect-generator tree. Each realm owns
// one root Generator; entering a speculative frame creates a child whose
// entries may be discarded wholesale by simply not linking it into its
// parent's Children.
type Generator struct {
	alloc   IDAllocator
	entries []*Entry

	// lastWrite indexes the most recent still-live property-assignment entry
	// per (object, key), so EmitOrFoldPropertyAssignment can replace a
	// superseded write in place rather than emitting both: redundant-write
	// elimination.
	lastWrite map[writeKey]*Entry
}

// writeKey identifies a property-assignment target for fold-in-place
// tracking. Only concrete (object, literal-key) targets participate —
// dynamic computed keys always append a fresh entry, since a later write to
// an unrelated key cannot be proven not to alias an earlier dynamic one.
type writeKey struct {
	obj *value.Object
	key string
}

// New returns an empty Generator rooted at no parent, using alloc to mint
// fresh identity for derived Abstract values.
func New(alloc IDAllocator) *Generator {
	return &Generator{alloc: alloc}
}

// NewChild returns a fresh, empty Generator sharing the same ID allocator —
// a new effect-capture frame for speculative evaluation. The caller decides
// whether to link it into a parent entry's
// Children (commit) or discard it outright (rollback).
func (g *Generator) NewChild() *Generator {
	return &Generator{alloc: g.alloc}
}

// Entries returns every entry recorded on this generator, in record order:
// effects appear in the exact order they were recorded on the root
// generator.
func (g *Generator) Entries() []*Entry {
	return g.entries
}

// Append records a raw entry. Exposed for the emit*/derive helpers in this
// package; interpreter code should prefer those named helpers over calling
// Append directly.
func (g *Generator) Append(e *Entry) *Entry {
	g.entries = append(g.entries, e)
	return e
}

// Mark returns a checkpoint usable with TruncateTo, mirroring heap.Log's
// Mark/RollbackTo shape so a discarded speculative frame can also trim any
// entries it accidentally appended to a generator it was handed by
// reference rather than a fresh child.
func (g *Generator) Mark() int { return len(g.entries) }

// TruncateTo drops every entry recorded since mark.
func (g *Generator) TruncateTo(mark int) {
	g.entries = g.entries[:mark]
}
