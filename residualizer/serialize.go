package residualizer

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/intrinsics"
	"github.com/yernsun/prepack/value"
)

// emitState is the per-residualization scratch state threaded through every
// call to serializeValue: the shared emit context, the
// intrinsic-value reverse index used to recognize a leaked built-in, and the
// memo table of concrete objects already given a residual name.
type emitState struct {
	ctx *generator.EmitContext

	// builtinNames maps an intrinsic registry value back to its well-known
	// path, so a concrete Object/Function that happens to be a built-in
	// leaks out as a prelude reference instead of being reconstructed as a
	// fresh object literal — see PreludeGenerator.
	builtinNames map[value.Value]string
	prelude      *generator.PreludeGenerator

	// objectNames memoizes the residual identifier minted for a concrete
	// Object the first time it is serialized, so a second reference to the
	// same object (or a cycle back to it through its own properties) prints
	// the same name instead of reconstructing it twice.
	objectNames map[*value.Object]string
}

func newEmitState(ctx *generator.EmitContext, prelude *generator.PreludeGenerator, reg intrinsics.Registry) *emitState {
	st := &emitState{
		ctx:          ctx,
		prelude:      prelude,
		builtinNames: map[value.Value]string{},
		objectNames:  map[*value.Object]string{},
	}
	for _, path := range reg.Paths() {
		if v, ok := reg.Lookup(path); ok {
			st.builtinNames[v] = path
		}
	}
	return st
}

func identifierNode(ctx *generator.EmitContext, name string) ast.Node {
	return ctx.Factory.NewIdentifier(ctx.NextID(), ast.SourceLocation{}, name)
}

func memberNode(ctx *generator.EmitContext, obj ast.Node, key value.PropertyKey, computed bool) ast.Node {
	var prop ast.Node
	if computed || key.IsSymbol() {
		prop = ctx.Factory.NewLiteral(ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: propertyKeyAsString(key)})
		return ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{Object: obj, Property: prop, Computed: true})
	}
	prop = identifierNode(ctx, key.AsString().Value)
	return ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{Object: obj, Property: prop, Computed: false})
}

func propertyKeyAsString(key value.PropertyKey) value.String {
	if key.IsSymbol() {
		return value.String{Value: key.AsSymbol().Description}
	}
	return key.AsString()
}

func assignStmt(ctx *generator.EmitContext, target, val ast.Node) ast.Node {
	expr := ctx.Factory.NewAssignment(ctx.NextID(), ast.SourceLocation{}, ast.AssignmentNode{Operator: "=", Target: target, Value: val})
	return ctx.Factory.NewExpressionStatement(ctx.NextID(), ast.SourceLocation{}, expr)
}

// serializeValue renders v as the expression a residual statement should
// read, appending any statements a concrete object/function's first
// appearance requires (its shell declaration and property assignments) to
// out before the expression referencing it is used.
func serializeValue(st *emitState, v value.Value, out *[]ast.Node) ast.Node {
	if name, ok := st.builtinNames[v]; ok {
		return identifierNode(st.ctx, st.prelude.Reference(name))
	}
	switch x := v.(type) {
	case nil:
		return identifierNode(st.ctx, "undefined")
	case value.Undefined:
		return identifierNode(st.ctx, "undefined")
	case value.Null, value.Boolean, value.Number, value.String:
		return st.ctx.Factory.NewLiteral(st.ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: v})
	case value.Symbol:
		return serializeSymbol(st, x, out)
	case *value.AbstractObject:
		return st.ctx.IdentifierFor(&x.Abstract, originHint(&x.Abstract))
	case *value.Abstract:
		return st.ctx.IdentifierFor(x, originHint(x))
	case *value.Function:
		return serializeFunction(st, x, out)
	case *value.Object:
		return serializeObject(st, x, out)
	default:
		return identifierNode(st.ctx, "undefined")
	}
}

// originHint extracts a debug-friendly hint for an Abstract's minted
// identifier from its origin template's leading text fragment, falling back
// to its pattern kind.
func originHint(a *value.Abstract) string {
	if len(a.Origin.Fragments) > 0 && a.Origin.Fragments[0] != "" {
		return a.Origin.Fragments[0]
	}
	return string(a.PatternKind)
}

// serializeSymbol mints a fresh residual binding for a concrete Symbol value
// leaked into residual code, e.g. `var name = Symbol("description");`
// (symbols have no literal syntax of their own).
func serializeSymbol(st *emitState, s value.Symbol, out *[]ast.Node) ast.Node {
	name := st.ctx.Names.FreshWithHint("sym")
	desc := ""
	if s.HasDescription() {
		desc = s.Description
	}
	callee := identifierNode(st.ctx, "Symbol")
	var args []ast.Node
	if s.HasDescription() {
		args = []ast.Node{st.ctx.Factory.NewLiteral(st.ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: value.String{Value: desc}})}
	}
	init := st.ctx.Factory.NewCall(st.ctx.NextID(), ast.SourceLocation{}, ast.CallNode{Callee: callee, Arguments: args})
	decl := st.ctx.Factory.NewVariableDeclaration(st.ctx.NextID(), ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind:        "var",
		Declarators: []ast.VariableDeclaratorNode{{Name: name, Init: init}},
	})
	*out = append(*out, decl)
	return identifierNode(st.ctx, name)
}

// serializeFunction renders a concrete, non-intrinsic user function as a
// function expression bound to a fresh name, reusing its own recorded
// AST body/params — a function value that escaped into residual data this
// way was never itself invoked abstractly, so its body can simply be
// reprinted verbatim: functions are only ever
// evaluated by inlining their body at a call site, never compiled once and
// referenced, so a function *value* that leaks as data has no residual
// representation other than its own literal source.
func serializeFunction(st *emitState, fn *value.Function, out *[]ast.Node) ast.Node {
	if name, ok := st.objectNames[&fn.Object]; ok {
		return identifierNode(st.ctx, name)
	}
	body, ok := fn.Body.(ast.Node)
	if !ok {
		// A native function with no recognized intrinsic path: nothing sound
		// to print. Stand in with `undefined` rather than fabricating a body.
		return identifierNode(st.ctx, "undefined")
	}
	name := st.ctx.Names.FreshWithHint(fn.Name)
	st.objectNames[&fn.Object] = name
	fnExpr := st.ctx.Factory.NewFunctionExpression(st.ctx.NextID(), ast.SourceLocation{}, ast.FunctionNode{
		Name: fn.Name, HasName: fn.Name != "", Params: fn.Params, Body: body, IsStrict: fn.IsStrict,
	})
	decl := st.ctx.Factory.NewVariableDeclaration(st.ctx.NextID(), ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind:        "var",
		Declarators: []ast.VariableDeclaratorNode{{Name: name, Init: fnExpr}},
	})
	*out = append(*out, decl)
	return identifierNode(st.ctx, name)
}

// serializeObject renders a concrete, non-intrinsic Object as a fresh
// `var name = {};` shell followed by one assignment statement per own
// property, in insertion order.
// The shell is appended, and name memoized, before any property value is
// itself serialized, so a cyclic property graph (obj.self = obj) resolves
// the back-reference to the same name instead of recursing forever.
func serializeObject(st *emitState, obj *value.Object, out *[]ast.Node) ast.Node {
	if name, ok := st.objectNames[obj]; ok {
		return identifierNode(st.ctx, name)
	}
	name := st.ctx.Names.FreshWithHint("obj")
	st.objectNames[obj] = name
	shell := st.ctx.Factory.NewVariableDeclaration(st.ctx.NextID(), ast.SourceLocation{}, ast.VariableDeclarationNode{
		Kind: "var",
		Declarators: []ast.VariableDeclaratorNode{
			{Name: name, Init: st.ctx.Factory.NewObjectLiteral(st.ctx.NextID(), ast.SourceLocation{}, nil)},
		},
	})
	*out = append(*out, shell)

	for _, key := range obj.OwnKeys() {
		d, _ := obj.OwnProperty(key)
		if d.IsAccessor() {
			*out = append(*out, defineAccessorStmt(st, identifierNode(st.ctx, name), key, d, out))
			continue
		}
		valExpr := serializeValue(st, d.Value, out)
		*out = append(*out, assignStmt(st.ctx, memberNode(st.ctx, identifierNode(st.ctx, name), key, false), valExpr))
	}
	return identifierNode(st.ctx, name)
}

// defineAccessorStmt renders `Object.defineProperty(target, key, {get, set,
// enumerable, configurable})` for a property this object defines as an
// accessor rather than plain data. This is the hand-written
// counterpart to EmitDefineProperty for the object-literal-reconstruction
// path, which — unlike EmitDefineProperty — is not itself a recorded effect,
// so it builds the call directly rather than through an Entry.
func defineAccessorStmt(st *emitState, target ast.Node, key value.PropertyKey, d value.Descriptor, out *[]ast.Node) ast.Node {
	getExpr := serializeValue(st, d.Get, out)
	setExpr := serializeValue(st, d.Set, out)
	keyLit := st.ctx.Factory.NewLiteral(st.ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: propertyKeyAsString(key)})
	descriptor := st.ctx.Factory.NewObjectLiteral(st.ctx.NextID(), ast.SourceLocation{}, []ast.ObjectPropertyNode{
		{Key: identifierNode(st.ctx, "get"), Value: getExpr},
		{Key: identifierNode(st.ctx, "set"), Value: setExpr},
		{Key: identifierNode(st.ctx, "enumerable"), Value: boolLiteral(st.ctx, d.Enumerable)},
		{Key: identifierNode(st.ctx, "configurable"), Value: boolLiteral(st.ctx, d.Configurable)},
	})
	callee := memberNode(st.ctx, identifierNode(st.ctx, "Object"), value.StringKey(value.String{Value: "defineProperty"}), false)
	call := st.ctx.Factory.NewCall(st.ctx.NextID(), ast.SourceLocation{}, ast.CallNode{
		Callee: callee, Arguments: []ast.Node{target, keyLit, descriptor},
	})
	return st.ctx.Factory.NewExpressionStatement(st.ctx.NextID(), ast.SourceLocation{}, call)
}

func boolLiteral(ctx *generator.EmitContext, b bool) ast.Node {
	return ctx.Factory.NewLiteral(ctx.NextID(), ast.SourceLocation{}, ast.LiteralNode{Value: value.Boolean{Value: b}})
}
