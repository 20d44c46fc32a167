package generator

import "github.com/yernsun/prepack/ast"

// PreludeGenerator memoizes references to intrinsic built-ins (the global
// object's own properties, like Object, Array, Math) so the residualizer
// emits at most one declaration per built-in no matter how many residual
// statements mention it. Grounded on
// cel-go's checker/standard.go pattern of a fixed, shared table of
// well-known declarations consulted by reference rather than rebuilt per
// use site.
type PreludeGenerator struct {
	names *NameGenerator
	refs  map[string]string // built-in path -> minted local identifier
	order []string          // insertion order, for deterministic Pass 2 emission
}

// NewPreludeGenerator returns an empty PreludeGenerator drawing fresh names
// from names.
func NewPreludeGenerator(names *NameGenerator) *PreludeGenerator {
	return &PreludeGenerator{names: names, refs: map[string]string{}}
}

// Reference returns the local identifier standing in for the built-in at
// path (e.g. "Object.defineProperty", "Array.prototype.slice"), minting one
// on first use and reusing it afterward.
func (pg *PreludeGenerator) Reference(path string) string {
	if name, ok := pg.refs[path]; ok {
		return name
	}
	name := pg.names.FreshWithHint(path)
	pg.refs[path] = name
	pg.order = append(pg.order, path)
	return name
}

// Declarations renders one `var localName = path;` statement per built-in
// referenced so far, in first-use order, to be prepended ahead of the rest
// of the residual program.
func (pg *PreludeGenerator) Declarations(ctx *EmitContext) []ast.Node {
	decls := make([]ast.Node, 0, len(pg.order))
	for _, path := range pg.order {
		local := pg.refs[path]
		init := preludePathExpr(ctx, path)
		decl := ctx.Factory.NewVariableDeclaration(ctx.NextID(), ast.SourceLocation{}, ast.VariableDeclarationNode{
			Kind: "var",
			Declarators: []ast.VariableDeclaratorNode{
				{Name: local, Init: init},
			},
		})
		decls = append(decls, decl)
	}
	return decls
}

// preludePathExpr builds the dotted member-access expression for a built-in
// path like "Array.prototype.slice".
func preludePathExpr(ctx *EmitContext, path string) ast.Node {
	segments := splitPath(path)
	var expr ast.Node = declIdent(ctx, segments[0])
	for _, seg := range segments[1:] {
		expr = ctx.Factory.NewMember(ctx.NextID(), ast.SourceLocation{}, ast.MemberNode{
			Object: expr, Property: declIdent(ctx, seg), Computed: false,
		})
	}
	return expr
}

func splitPath(path string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	segs = append(segs, path[start:])
	return segs
}
