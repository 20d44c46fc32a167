package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yernsun/prepack/value"
)

func idAllocator() func() int64 {
	var next int64
	return func() int64 {
		next++
		return next
	}
}

func TestDecodeProgramRoundTripsThroughEncode(t *testing.T) {
	f := NewFactory()
	original := f.NewProgram(0, SourceLocation{}, []Node{
		f.NewVariableDeclaration(0, SourceLocation{}, VariableDeclarationNode{
			Kind: "var",
			Declarators: []VariableDeclaratorNode{
				{Name: "x", Init: f.NewBinary(0, SourceLocation{}, BinaryNode{
					Operator: "+",
					Left:     f.NewLiteral(0, SourceLocation{}, LiteralNode{Value: value.Number{Value: 1}}),
					Right:    f.NewLiteral(0, SourceLocation{}, LiteralNode{Value: value.Number{Value: 2}}),
				})},
			},
		}),
		f.NewIf(0, SourceLocation{}, IfNode{
			Test:       f.NewIdentifier(0, SourceLocation{}, "x"),
			Consequent: f.NewExpressionStatement(0, SourceLocation{}, f.NewIdentifier(0, SourceLocation{}, "x")),
		}),
	})

	data, err := EncodeNode(original)
	if err != nil {
		t.Fatalf("EncodeNode: %v", err)
	}

	decoded, err := DecodeProgram(data, NewFactory(), value.RealmID(1), idAllocator())
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}

	reencoded, err := EncodeNode(decoded)
	if err != nil {
		t.Fatalf("re-EncodeNode: %v", err)
	}

	if diff := cmp.Diff(string(data), string(reencoded)); diff != "" {
		t.Fatalf("round trip changed the encoded shape (-want +got):\n%s", diff)
	}
}

func TestDecodeProgramLiteralKinds(t *testing.T) {
	input := []byte(`{"kind":"program","statements":[
		{"kind":"expression-statement","expr":{"kind":"literal","literal":{"type":"number","num":3}}},
		{"kind":"expression-statement","expr":{"kind":"literal","literal":{"type":"string","str":"hi"}}},
		{"kind":"expression-statement","expr":{"kind":"literal","literal":{"type":"boolean","bool":true}}},
		{"kind":"expression-statement","expr":{"kind":"literal","literal":{"type":"null"}}},
		{"kind":"expression-statement","expr":{"kind":"literal","literal":{"type":"undefined"}}}
	]}`)

	program, err := DecodeProgram(input, NewFactory(), value.RealmID(1), idAllocator())
	if err != nil {
		t.Fatalf("DecodeProgram: %v", err)
	}
	stmts := program.AsProgram().Statements
	if len(stmts) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(stmts))
	}

	num := stmts[0].AsExpressionStatement().AsLiteral().Value.(value.Number)
	if num.Value != 3 {
		t.Fatalf("expected number literal 3, got %v", num)
	}
	str := stmts[1].AsExpressionStatement().AsLiteral().Value.(value.String)
	if str.Value != "hi" {
		t.Fatalf("expected string literal \"hi\", got %v", str)
	}
	b := stmts[2].AsExpressionStatement().AsLiteral().Value.(value.Boolean)
	if !b.Value {
		t.Fatalf("expected boolean literal true, got %v", b)
	}
	if _, ok := stmts[3].AsExpressionStatement().AsLiteral().Value.(value.Null); !ok {
		t.Fatalf("expected a null literal")
	}
	if _, ok := stmts[4].AsExpressionStatement().AsLiteral().Value.(value.Undefined); !ok {
		t.Fatalf("expected an undefined literal")
	}
}

func TestDecodeProgramRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeProgram([]byte(`{not json`), NewFactory(), value.RealmID(1), idAllocator())
	if err == nil {
		t.Fatalf("expected an error for malformed JSON input")
	}
}
