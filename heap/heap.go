// Package heap implements the object store and modification log: the arena
// of Objects a realm owns, plus the transactional delta log that lets a
// speculative evaluation frame roll back wholesale. Grounded on
// interpreter/evalstate.go's mutable eval-state bookkeeping and the
// register/rollback shape implicit in the old program-counter evaluator of
// interpreter/interpreter.go, generalized from "per-instruction result
// cache" to "arena + reversible delta log".
package heap

import (
	"github.com/yernsun/prepack/value"
)

// Heap owns every Object allocated within a realm, indexed by ObjectID.
// The objects themselves refer to one another (prototypes, property values)
// through ordinary Go pointers; the ID index is what Lookup, All and Forget
// work on.
type Heap struct {
	objects map[value.ObjectID]*value.Object
	nextID  value.ObjectID
}

// New returns an empty heap.
func New() *Heap {
	return &Heap{objects: make(map[value.ObjectID]*value.Object)}
}

// Allocate reserves a fresh ObjectID; it registers nothing. The caller
// constructs the object with this ID (value.NewObject takes an explicit ID)
// and stores it with Register, since
// Go has no way to learn an object's own address-derived identity cheaply.
func (h *Heap) Allocate() value.ObjectID {
	h.nextID++
	return h.nextID
}

// Register stores obj in the heap under its own ID. Panics (an invariant
// violation) if the ID is already registered, since object identity must be
// unique within a realm.
func (h *Heap) Register(obj *value.Object) {
	if _, exists := h.objects[obj.ID()]; exists {
		panic("invariant violated: duplicate object id registered in heap")
	}
	h.objects[obj.ID()] = obj
}

// Lookup returns the object for id, if allocated.
func (h *Heap) Lookup(id value.ObjectID) (*value.Object, bool) {
	o, ok := h.objects[id]
	return o, ok
}

// All returns every currently-registered object. Order is unspecified;
// callers requiring determinism (the residualizer) impose their own order
// via reachability traversal, not iteration of this map.
func (h *Heap) All() []*value.Object {
	out := make([]*value.Object, 0, len(h.objects))
	for _, o := range h.objects {
		out = append(out, o)
	}
	return out
}

// Forget removes an object from the heap. Used only when rolling back an
// object-creation delta: an object created inside a discarded speculative
// frame must not remain reachable afterward.
func (h *Heap) Forget(id value.ObjectID) {
	delete(h.objects, id)
}
