package heap

import (
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/value"
)

// deltaKind discriminates the three delta shapes the Standard-level
// operations this engine models can produce: a binding write, a property
// write, or an object creation.
type deltaKind int

const (
	bindingDelta deltaKind = iota
	propertyDelta
	objectCreationDelta
)

type delta struct {
	kind deltaKind

	// bindingDelta
	rec      *envrec.Declarative
	name     string
	priorVal value.Value
	hadPrior bool

	// propertyDelta
	obj      *value.Object
	key      value.PropertyKey
	priorDesc value.Descriptor
	hadDesc  bool

	// objectCreationDelta
	createdID value.ObjectID
}

// Log is a stack of reversible (binding | property | object-creation)
// deltas that can be replayed in reverse. Every
// mutation a speculative evaluation performs is first recorded here, so
// discarding the frame means truncating the stack and replaying it
// backwards.
type Log struct {
	entries []delta
}

// NewLog returns an empty modification log.
func NewLog() *Log {
	return &Log{}
}

// Mark returns a checkpoint usable with RollbackTo or Commit.
func (l *Log) Mark() int { return len(l.entries) }

// RecordBindingWrite appends a binding delta. priorVal/hadPrior capture the
// binding's value immediately before the write being recorded; hadPrior is
// false when the binding was uninitialized.
func (l *Log) RecordBindingWrite(rec *envrec.Declarative, name string, priorVal value.Value, hadPrior bool) {
	l.entries = append(l.entries, delta{
		kind: bindingDelta, rec: rec, name: name, priorVal: priorVal, hadPrior: hadPrior,
	})
}

// RecordPropertyWrite appends a property delta capturing the descriptor
// that occupied key on obj immediately before the write (hadDesc is false
// when the property did not previously exist, meaning rollback should
// delete it rather than restore a descriptor).
func (l *Log) RecordPropertyWrite(obj *value.Object, key value.PropertyKey, priorDesc value.Descriptor, hadDesc bool) {
	l.entries = append(l.entries, delta{
		kind: propertyDelta, obj: obj, key: key, priorDesc: priorDesc, hadDesc: hadDesc,
	})
}

// RecordObjectCreation appends an object-creation delta: rolling back past
// this point removes the object from the heap entirely, since nothing
// outside the discarded frame may observe it.
func (l *Log) RecordObjectCreation(id value.ObjectID) {
	l.entries = append(l.entries, delta{kind: objectCreationDelta, createdID: id})
}

// RollbackTo replays every delta recorded since mark, in reverse order,
// restoring bit-identical heap and environment state, then truncates the
// log to mark.
func (l *Log) RollbackTo(mark int, h *Heap) {
	for i := len(l.entries) - 1; i >= mark; i-- {
		d := l.entries[i]
		switch d.kind {
		case bindingDelta:
			if d.hadPrior {
				d.rec.RestoreValue(d.name, d.priorVal)
			}
		case propertyDelta:
			if d.hadDesc {
				d.obj.DefineOwnProperty(d.key, d.priorDesc)
			} else {
				d.obj.DeleteOwnProperty(d.key)
			}
		case objectCreationDelta:
			h.Forget(d.createdID)
		}
	}
	l.entries = l.entries[:mark]
}

// Commit merges the deltas recorded since mark into the enclosing frame by
// simply keeping them — the Log is shared across a realm's active
// execution-context stack, so committing a speculative frame is a no-op
// over the log itself; it exists as a named counterpart to RollbackTo so
// call sites read symmetrically.
func (l *Log) Commit(mark int) {
	_ = mark // nothing to discard; entries remain part of the shared log.
}

// Len reports how many deltas are currently recorded, for diagnostics.
func (l *Log) Len() int { return len(l.entries) }
