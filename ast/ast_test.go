package ast

import "testing"

func TestChildrenOfBinaryExpression(t *testing.T) {
	f := NewFactory()
	left := f.NewIdentifier(1, SourceLocation{}, "a")
	right := f.NewIdentifier(2, SourceLocation{}, "b")
	bin := f.NewBinary(3, SourceLocation{}, BinaryNode{Operator: "+", Left: left, Right: right})

	kids := Children(bin)
	if len(kids) != 2 || kids[0] != left || kids[1] != right {
		t.Fatalf("unexpected children: %v", kids)
	}
}

func TestWalkVisitsEveryNode(t *testing.T) {
	f := NewFactory()
	a := f.NewIdentifier(1, SourceLocation{}, "a")
	b := f.NewIdentifier(2, SourceLocation{}, "b")
	bin := f.NewBinary(3, SourceLocation{}, BinaryNode{Operator: "+", Left: a, Right: b})
	stmt := f.NewExpressionStatement(4, SourceLocation{}, bin)
	program := f.NewProgram(5, SourceLocation{}, []Node{stmt})

	var ids []int64
	Walk(program, func(n Node) { ids = append(ids, n.ID()) })
	want := []int64{5, 4, 3, 1, 2}
	if len(ids) != len(want) {
		t.Fatalf("got %v want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got %v want %v", ids, want)
		}
	}
}

func TestMemberAndCallChildren(t *testing.T) {
	f := NewFactory()
	obj := f.NewIdentifier(1, SourceLocation{}, "console")
	prop := f.NewIdentifier(2, SourceLocation{}, "log")
	member := f.NewMember(3, SourceLocation{}, MemberNode{Object: obj, Property: prop, Computed: false})
	arg := f.NewIdentifier(4, SourceLocation{}, "x")
	call := f.NewCall(5, SourceLocation{}, CallNode{Callee: member, Arguments: []Node{arg}})

	kids := Children(call)
	if len(kids) != 2 || kids[0] != member || kids[1] != arg {
		t.Fatalf("unexpected call children: %v", kids)
	}
	memberKids := Children(member)
	if len(memberKids) != 2 || memberKids[0] != obj || memberKids[1] != prop {
		t.Fatalf("unexpected member children: %v", memberKids)
	}
}
