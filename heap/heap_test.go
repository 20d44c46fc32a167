package heap

import (
	"testing"

	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/value"
)

func TestRollbackRestoresPropertyWrite(t *testing.T) {
	h := New()
	id := h.Allocate()
	obj := value.NewObject(1, id, value.NewNull(1))
	h.Register(obj)
	key := value.StringKey(value.NewString(1, "x"))
	obj.DefineOwnProperty(key, value.NewDataDescriptor(value.NewNumber(1, 1), true, true, true))

	log := NewLog()
	mark := log.Mark()
	priorDesc, hadPrior := obj.OwnProperty(key)
	log.RecordPropertyWrite(obj, key, priorDesc, hadPrior)
	obj.DefineOwnProperty(key, value.NewDataDescriptor(value.NewNumber(1, 2), true, true, true))

	got, _ := obj.OwnProperty(key)
	if got.Value.(value.Number).Value != 2 {
		t.Fatalf("expected speculative write visible before rollback, got %v", got.Value)
	}

	log.RollbackTo(mark, h)

	restored, _ := obj.OwnProperty(key)
	if restored.Value.(value.Number).Value != 1 {
		t.Fatalf("expected rollback to restore 1, got %v", restored.Value)
	}
}

func TestRollbackRemovesCreatedObject(t *testing.T) {
	h := New()
	log := NewLog()
	mark := log.Mark()

	id := h.Allocate()
	obj := value.NewObject(1, id, value.NewNull(1))
	h.Register(obj)
	log.RecordObjectCreation(id)

	if _, ok := h.Lookup(id); !ok {
		t.Fatal("expected object to be registered before rollback")
	}
	log.RollbackTo(mark, h)
	if _, ok := h.Lookup(id); ok {
		t.Fatal("expected object to be forgotten after rollback")
	}
}

func TestRollbackRestoresBindingWrite(t *testing.T) {
	rec := envrec.NewDeclarative()
	rec.CreateMutableBinding("x", false)
	rec.InitializeBinding("x", value.NewNumber(1, 10))

	log := NewLog()
	mark := log.Mark()

	prior, hadPrior := rec.SnapshotValue("x")
	log.RecordBindingWrite(rec, "x", prior, hadPrior)
	rec.SetMutableBinding("x", value.NewNumber(1, 20), true)

	v, _ := rec.GetBindingValue("x", true)
	if v.(value.Number).Value != 20 {
		t.Fatalf("expected speculative value 20, got %v", v)
	}

	h := New()
	log.RollbackTo(mark, h)

	v, _ = rec.GetBindingValue("x", true)
	if v.(value.Number).Value != 10 {
		t.Fatalf("expected rollback to restore 10, got %v", v)
	}
}

func TestRollbackOfRepeatedWritesRestoresPreFrameAbsence(t *testing.T) {
	h := New()
	id := h.Allocate()
	obj := value.NewObject(1, id, value.NewNull(1))
	h.Register(obj)
	key := value.StringKey(value.NewString(1, "a"))

	log := NewLog()
	mark := log.Mark()
	for i := 1; i <= 3; i++ {
		priorDesc, hadPrior := obj.OwnProperty(key)
		log.RecordPropertyWrite(obj, key, priorDesc, hadPrior)
		obj.DefineOwnProperty(key, value.NewDataDescriptor(value.NewNumber(1, float64(i)), true, true, true))
	}
	log.RollbackTo(mark, h)
	if _, ok := obj.OwnProperty(key); ok {
		t.Fatal("expected property to be entirely absent after rolling back all writes")
	}
}
