package realm

import (
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/value"
)

// ExecutionContext is the realm's analogue of an ECMAScript execution
// context: the pair of environments in scope, the function whose
// invocation pushed this frame (nil at the top level), and the effect
// generator frame effects recorded during this context land on.
type ExecutionContext struct {
	LexicalEnv  *envrec.Environment
	VariableEnv *envrec.Environment
	Function    *value.Function
	ThisValue   value.Value
	Gen         *generator.Generator
}

// PushContext makes ctx the active execution context and its generator the
// active effect-recording target, pushing onto the realm's
// execution-context stack. Returns a function that pops exactly this context.
func (r *Realm) PushContext(ctx *ExecutionContext) func() {
	r.contexts = append(r.contexts, ctx)
	r.genStack = append(r.genStack, ctx.Gen)
	return func() {
		r.contexts = r.contexts[:len(r.contexts)-1]
		r.genStack = r.genStack[:len(r.genStack)-1]
	}
}

// CurrentContext returns the active execution context, or nil at the top
// level before any context has been pushed.
func (r *Realm) CurrentContext() *ExecutionContext {
	if len(r.contexts) == 0 {
		return nil
	}
	return r.contexts[len(r.contexts)-1]
}

// CurrentLexicalEnvironment returns the lexical environment of the active
// execution context.
func (r *Realm) CurrentLexicalEnvironment() *envrec.Environment {
	if ctx := r.CurrentContext(); ctx != nil {
		return ctx.LexicalEnv
	}
	return nil
}
