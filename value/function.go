package value

// LexicalEnvironment is the narrow interface Function uses to reference its
// captured scope without value importing envrec (which itself depends on
// value for bindings). envrec.Environment implements this trivially; the
// evaluator and generator packages type-assert back to the concrete type
// when they need full environment operations.
type LexicalEnvironment interface {
	// EnvKind is a debug label only ("declarative", "function", "global", …).
	EnvKind() string
}

// NativeHandler is the signature of an intrinsic's native call handler.
// The realm parameter is passed as `any` to
// avoid value importing realm (which imports value); callers type-assert.
type NativeHandler func(realm any, thisValue Value, args []Value) Value

// Function is the subtype of Object carrying either a user AST body plus a
// captured environment, or a native call handler.
type Function struct {
	Object

	CapturedEnv LexicalEnvironment
	Params      []string // formal parameter names
	IsNative    bool

	// User-defined arm.
	Body any // an ast.Node (statement list); opaque here to avoid an
	         // ast<->value import cycle. The evaluator type-asserts.

	// Native arm.
	Native NativeHandler

	Name     string // for diagnostics and residualized declarations
	IsStrict bool
}

// NewUserFunction builds a Function with an AST body and captured
// environment.
func NewUserFunction(r RealmID, id ObjectID, prototype Value, name string, params []string, body any, env LexicalEnvironment, strict bool) *Function {
	f := &Function{
		Object:      *NewObject(r, id, prototype),
		CapturedEnv: env,
		Params:      params,
		Body:        body,
		Name:        name,
		IsStrict:    strict,
	}
	return f
}

// NewNativeFunction builds a Function wrapping an intrinsic's native
// handler.
func NewNativeFunction(r RealmID, id ObjectID, prototype Value, name string, params []string, handler NativeHandler) *Function {
	f := &Function{
		Object:   *NewObject(r, id, prototype),
		Params:   params,
		IsNative: true,
		Native:   handler,
		Name:     name,
	}
	return f
}

func (f *Function) Kind() Kind { return KindObject }
