package envrec

import "testing"

import "github.com/yernsun/prepack/value"

func TestDeclarativeMutableBindingLifecycle(t *testing.T) {
	d := NewDeclarative()
	if err := d.CreateMutableBinding("x", true); err != nil {
		t.Fatal(err)
	}
	if _, err := d.GetBindingValue("x", true); err == nil {
		t.Fatal("expected reference error reading uninitialized binding")
	}
	if err := d.InitializeBinding("x", value.NewNumber(1, 3)); err != nil {
		t.Fatal(err)
	}
	v, err := d.GetBindingValue("x", true)
	if err != nil || v.(value.Number).Value != 3 {
		t.Fatalf("got %v, %v", v, err)
	}
	if err := d.SetMutableBinding("x", value.NewNumber(1, 7), true); err != nil {
		t.Fatal(err)
	}
	v, _ = d.GetBindingValue("x", true)
	if v.(value.Number).Value != 7 {
		t.Fatalf("expected 7, got %v", v)
	}
	ok, err := d.DeleteBinding("x")
	if err != nil || !ok {
		t.Fatalf("expected delete to succeed, got ok=%v err=%v", ok, err)
	}
}

func TestStrictAssignmentToUndeclaredFails(t *testing.T) {
	d := NewDeclarative()
	if err := d.SetMutableBinding("y", value.NewNumber(1, 1), true); err == nil {
		t.Fatal("expected strict-mode reference error on undeclared assignment")
	}
}

func TestNonStrictAssignmentToUndeclaredCreates(t *testing.T) {
	d := NewDeclarative()
	if err := d.SetMutableBinding("y", value.NewNumber(1, 1), false); err != nil {
		t.Fatal(err)
	}
	v, err := d.GetBindingValue("y", false)
	if err != nil || v.(value.Number).Value != 1 {
		t.Fatalf("expected implicit global create, got %v %v", v, err)
	}
}

func TestResolveBindingWalksParentChain(t *testing.T) {
	outer := NewDeclarative()
	outer.CreateMutableBinding("a", false)
	outer.InitializeBinding("a", value.NewBoolean(1, true))
	outerEnv := NewEnvironment(outer, nil)

	inner := NewDeclarative()
	innerEnv := NewEnvironment(inner, outerEnv)

	found := ResolveBinding(innerEnv, "a")
	if found != outerEnv {
		t.Fatalf("expected resolution in outer env, got %v", found)
	}
	if ResolveBinding(innerEnv, "missing") != nil {
		t.Fatal("expected nil for undeclared name")
	}
}

func TestGlobalRecordVarVsLet(t *testing.T) {
	g := NewGlobal(value.NewObject(1, 1, value.NewNull(1)), value.NewNumber(1, 0))
	if err := g.CreateGlobalVarBinding("v", false); err != nil {
		t.Fatal(err)
	}
	if !g.HasVarDeclaration("v") {
		t.Fatal("expected v tracked as var")
	}
	if err := g.CreateImmutableBinding("c"); err != nil {
		t.Fatal(err)
	}
	if g.HasVarDeclaration("c") {
		t.Fatal("let/const binding should not be tracked as var")
	}
}

func TestFunctionRecordThisBindingStates(t *testing.T) {
	fn := value.NewUserFunction(1, 1, value.NewNull(1), "f", nil, nil, nil, true)
	rec := NewFunctionRecord(fn, ThisUninitialized, nil, nil, value.NewUndefined(1))
	if _, err := rec.GetThisBinding(); err == nil {
		t.Fatal("expected error reading uninitialized this")
	}
	if err := rec.BindThisValue(value.NewNumber(1, 5)); err != nil {
		t.Fatal(err)
	}
	v, err := rec.GetThisBinding()
	if err != nil || v.(value.Number).Value != 5 {
		t.Fatalf("got %v %v", v, err)
	}
	if err := rec.BindThisValue(value.NewNumber(1, 6)); err == nil {
		t.Fatal("expected error on double-bind of this")
	}
}
