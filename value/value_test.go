package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectOwnKeysInsertionOrder(t *testing.T) {
	o := NewObject(1, 1, NewNull(1))
	keys := []string{"z", "a", "m"}
	for i, k := range keys {
		o.DefineOwnProperty(StringKey(NewString(1, k)), NewDataDescriptor(NewNumber(1, float64(i)), true, true, true))
	}
	var got []string
	for _, k := range o.OwnKeys() {
		got = append(got, k.AsString().Value)
	}
	if diff := cmp.Diff(keys, got); diff != "" {
		t.Errorf("OwnKeys() order mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectOverwriteDoesNotReorder(t *testing.T) {
	o := NewObject(1, 1, NewNull(1))
	o.DefineOwnProperty(StringKey(NewString(1, "a")), NewDataDescriptor(NewNumber(1, 1), true, true, true))
	o.DefineOwnProperty(StringKey(NewString(1, "b")), NewDataDescriptor(NewNumber(1, 2), true, true, true))
	o.DefineOwnProperty(StringKey(NewString(1, "a")), NewDataDescriptor(NewNumber(1, 99), true, true, true))

	d, ok := o.OwnProperty(StringKey(NewString(1, "a")))
	if !ok || d.Value.(Number).Value != 99 {
		t.Fatalf("expected a=99, got %v ok=%v", d, ok)
	}
	var got []string
	for _, k := range o.OwnKeys() {
		got = append(got, k.AsString().Value)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("order changed on overwrite (-want +got):\n%s", diff)
	}
}

func TestDeleteOwnProperty(t *testing.T) {
	o := NewObject(1, 1, NewNull(1))
	key := StringKey(NewString(1, "x"))
	o.DefineOwnProperty(key, NewDataDescriptor(NewBoolean(1, true), true, true, true))
	if !o.DeleteOwnProperty(key) {
		t.Fatal("expected delete to succeed")
	}
	if HasOwn(o, key) {
		t.Fatal("expected property to be gone")
	}
	if o.DeleteOwnProperty(key) {
		t.Fatal("expected second delete to report false")
	}
}

func TestGetWalksPrototypeChain(t *testing.T) {
	proto := NewObject(1, 1, NewNull(1))
	proto.DefineOwnProperty(StringKey(NewString(1, "inherited")), NewDataDescriptor(NewString(1, "from-proto"), true, true, true))
	child := NewObject(1, 2, proto)

	d, owner, found := Get(child, StringKey(NewString(1, "inherited")))
	if !found {
		t.Fatal("expected to find inherited property")
	}
	if owner != proto {
		t.Errorf("expected owner to be proto, got %v", owner)
	}
	if d.Value.(String).Value != "from-proto" {
		t.Errorf("unexpected value %v", d.Value)
	}
}

func TestTypeSetUnionAndSingle(t *testing.T) {
	ts := NewTypeSet(KindNumber, KindString)
	if ts.IsTop() {
		t.Fatal("finite set should not be top")
	}
	if !ts.Contains(KindNumber) || !ts.Contains(KindString) {
		t.Fatal("expected both kinds present")
	}
	if ts.Contains(KindBoolean) {
		t.Fatal("did not expect boolean")
	}
	joined := ts.Union(AnyType)
	if !joined.IsTop() {
		t.Fatal("joining with top should produce top")
	}
	single := NewTypeSet(KindBoolean)
	k, ok := single.Single()
	if !ok || k != KindBoolean {
		t.Fatalf("expected singleton boolean, got %v ok=%v", k, ok)
	}
	if _, ok := ts.Single(); ok {
		t.Fatal("two-member set should not report a single kind")
	}
}

func TestNewAbstractStoresArgsAndTypeDomain(t *testing.T) {
	arg := NewNumber(1, 42)
	a := NewAbstract(1, 10, NewTypeSet(KindNumber), AnyValueSet, NewOriginTemplate("f(", ")"), OriginGeneric, []Value{arg})
	if len(a.Args) != 1 || a.Args[0].(Number).Value != 42 {
		t.Errorf("Args mismatch: got %v", a.Args)
	}
	if !a.IsDefinitely(KindNumber) {
		t.Fatal("expected definite number type")
	}
	if a.MightBe(KindString) {
		t.Fatal("did not expect string to be possible")
	}
}
