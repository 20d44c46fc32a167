package realm

import (
	"testing"
	"time"

	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/intrinsics"
	"github.com/yernsun/prepack/value"
)

func newTestRealm() *Realm {
	return New(1, intrinsics.NewMapRegistry(), "t", nil, nil, DefaultFlags())
}

func TestNewRealmWiresGeneratorAndAllocator(t *testing.T) {
	r := newTestRealm()
	if r.RootGenerator() != r.ActiveGenerator() {
		t.Fatalf("expected root generator to be active before any context is pushed")
	}
	id1 := r.NextObjectID()
	id2 := r.NextObjectID()
	if id1 == id2 {
		t.Fatalf("expected distinct object ids")
	}
}

func TestCreateAbstractRecordsDeclaringEntry(t *testing.T) {
	r := newTestRealm()
	abs := r.CreateAbstract(value.NewTypeSet(value.KindNumber), value.AnyValueSet, value.NewOriginTemplate("", ""), value.OriginGeneric, nil, true, func(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
		return nil
	})
	if abs == nil {
		t.Fatalf("expected a minted abstract value")
	}
	entries := r.RootGenerator().Entries()
	if len(entries) != 1 || entries[0].Declared != abs {
		t.Fatalf("expected the root generator to record the declaring entry")
	}
}

func TestPushContextSwitchesActiveGenerator(t *testing.T) {
	r := newTestRealm()
	global := envrec.NewEnvironment(envrec.NewDeclarative(), nil)
	child := r.RootGenerator().NewChild()
	pop := r.PushContext(&ExecutionContext{LexicalEnv: global, VariableEnv: global, Gen: child})
	if r.ActiveGenerator() != child {
		t.Fatalf("expected pushed context's generator to become active")
	}
	pop()
	if r.ActiveGenerator() != r.RootGenerator() {
		t.Fatalf("expected popping the context to restore the root generator")
	}
}

func TestEvaluateNodeForEffectsRollsBackOnDiscard(t *testing.T) {
	r := newTestRealm()
	env := envrec.NewEnvironment(envrec.NewDeclarative(), nil)
	rec := env.Record.(*envrec.Declarative)
	r.WireRollbackHooks(rec)
	_ = rec.CreateMutableBinding("x", false)
	_ = rec.InitializeBinding("x", value.NewNumber(1, 1))

	mark := r.ModLog().Mark()
	_, _, innerMark := r.EvaluateNodeForEffects(env, func(env *envrec.Environment) *completion.Completion {
		_ = rec.SetMutableBinding("x", value.NewNumber(1, 2), true)
		return completion.NewNormal(nil)
	})
	v, _ := rec.GetBindingValue("x", true)
	if v.(value.Number).Value != 2 {
		t.Fatalf("expected speculative write to be visible before rollback")
	}
	r.DiscardSpeculativeFrame(innerMark)
	v, _ = rec.GetBindingValue("x", true)
	if v.(value.Number).Value != 1 {
		t.Fatalf("expected rollback to restore the prior binding value, got %v", v)
	}
	if r.ModLog().Mark() != mark {
		t.Fatalf("expected modification log to be truncated back to the outer mark")
	}
}

func TestDeadlineTrackerExceeded(t *testing.T) {
	dt := NewDeadlineTracker(1)
	dt.SetDeadline(time.Unix(0, 0))
	if !dt.Poll(func() time.Time { return time.Unix(1, 0) }) {
		t.Fatalf("expected a past deadline to be reported exceeded")
	}
}
