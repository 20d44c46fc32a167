package completion

import (
	"testing"

	"github.com/yernsun/prepack/value"
)

func TestUpdateEmptyFillsMissingValue(t *testing.T) {
	c := NewBreak("loop", true, nil)
	updated := UpdateEmpty(c, value.NewNumber(1, 5))
	if updated.Value().(value.Number).Value != 5 {
		t.Fatalf("expected filled value 5, got %v", updated.Value())
	}

	already := NewBreak("loop", true, value.NewNumber(1, 1))
	unchanged := UpdateEmpty(already, value.NewNumber(1, 99))
	if unchanged.Value().(value.Number).Value != 1 {
		t.Fatalf("expected original value preserved, got %v", unchanged.Value())
	}
}

func TestJoinBothNormalReturnsConsequent(t *testing.T) {
	a := NewNormal(value.NewNumber(1, 1))
	b := NewNormal(value.NewNumber(1, 2))
	got, ok := JoinCompletions(value.NewBoolean(1, true), a, b, nil)
	if !ok || got != a {
		t.Fatalf("expected consequent passthrough, got %v ok=%v", got, ok)
	}
}

func TestJoinNormalAndAbruptYieldsPossiblyNormal(t *testing.T) {
	normal := NewNormal(value.NewNumber(1, 1))
	ret := NewReturn(value.NewNumber(1, 2))
	got, ok := JoinCompletions(value.NewBoolean(1, true), normal, ret, nil)
	if !ok || got.Kind() != PossiblyNormal {
		t.Fatalf("expected PossiblyNormal, got %v ok=%v", got, ok)
	}
}

func TestJoinTwoThrowsSameKindSucceeds(t *testing.T) {
	t1 := NewThrow(value.NewString(1, "TypeError"), Location{})
	t2 := NewThrow(value.NewString(1, "TypeError"), Location{})
	got, ok := JoinCompletions(value.NewBoolean(1, true), t1, t2, func(a, b *Completion) bool {
		return a.Value().(value.String).Value == b.Value().(value.String).Value
	})
	if !ok || got.Kind() != Joined {
		t.Fatalf("expected Joined, got %v ok=%v", got, ok)
	}
}

func TestJoinTwoThrowsDifferentKindFails(t *testing.T) {
	t1 := NewThrow(value.NewString(1, "TypeError"), Location{})
	t2 := NewThrow(value.NewString(1, "RangeError"), Location{})
	_, ok := JoinCompletions(value.NewBoolean(1, true), t1, t2, func(a, b *Completion) bool {
		return a.Value().(value.String).Value == b.Value().(value.String).Value
	})
	if ok {
		t.Fatal("expected join to fail for differently-kinded throws")
	}
}

func TestJoinBreakDifferentLabelsFails(t *testing.T) {
	b1 := NewBreak("outer", true, nil)
	b2 := NewBreak("inner", true, nil)
	_, ok := JoinCompletions(value.NewBoolean(1, true), b1, b2, nil)
	if ok {
		t.Fatal("expected join to fail for differently-labeled breaks")
	}
}
