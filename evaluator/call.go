package evaluator

import (
	"github.com/yernsun/prepack/ast"
	"github.com/yernsun/prepack/completion"
	"github.com/yernsun/prepack/envrec"
	"github.com/yernsun/prepack/generator"
	"github.com/yernsun/prepack/realm"
	"github.com/yernsun/prepack/value"
)

// evalCallOrNew handles both CallKind and NewKind, which share the same
// CallNode payload (ast.Factory.NewNew reuses ast.Factory.NewCall's shape).
// A member-expression callee resolves its base as the call's this-value,
// per the Standard's EvaluateCall.
func evalCallOrNew(r *realm.Realm, n ast.Node, env *envrec.Environment) *completion.Completion {
	c := n.AsCall()
	var thisVal value.Value = value.NewUndefined(r.ID())
	var calleeVal value.Value

	if c.Callee.Kind() == ast.MemberKind {
		m := c.Callee.AsMember()
		baseC := r.EvaluatePartial(m.Object, env)
		if completion.ReturnIfAbrupt(baseC) {
			return baseC
		}
		thisVal = baseC.Value()
		key, abstractKey, abrupt := resolveMemberKey(r, m.Property, m.Computed, env)
		if abrupt != nil {
			return abrupt
		}
		calleeC := getProperty(r, c.Callee, thisVal, key, abstractKey)
		if completion.ReturnIfAbrupt(calleeC) {
			return calleeC
		}
		calleeVal = calleeC.Value()
	} else {
		calleeC := r.EvaluatePartial(c.Callee, env)
		if completion.ReturnIfAbrupt(calleeC) {
			return calleeC
		}
		calleeVal = calleeC.Value()
	}

	args := make([]value.Value, 0, len(c.Arguments))
	for _, a := range c.Arguments {
		ac := r.EvaluatePartial(a, env)
		if completion.ReturnIfAbrupt(ac) {
			return ac
		}
		args = append(args, ac.Value())
	}

	fn, ok := calleeVal.(*value.Function)
	if !ok {
		if !IsResolved(calleeVal) {
			return completion.NewNormal(deriveCallResult(r, n, calleeVal, args))
		}
		return throwError(r, n, "TypeError", "value is not a function")
	}

	if n.Kind() == ast.NewKind {
		return evalConstruct(r, n, fn, args)
	}
	return invokeFunction(r, fn, thisVal, args)
}

// invokeFunction dispatches a call to either a native intrinsic handler or
// a user-defined function body, per the Standard's Call/OrdinaryCallEvaluateBody.
// Whole-program partial evaluation inlines the callee's body
// into the caller's active effect generator rather than opening a fresh
// child frame per call: every call site in this engine is evaluated as if
// its body were substituted in place, since the engine has no notion of a
// reusable, not-yet-specialized function residual — every reachable call is
// inlined away into one flat effect timeline.
func invokeFunction(r *realm.Realm, fn *value.Function, thisVal value.Value, args []value.Value) *completion.Completion {
	if fn.IsNative {
		return completion.NewNormal(fn.Native(r, thisVal, args))
	}
	body, ok := fn.Body.(ast.Node)
	if !ok {
		return completion.NewNormal(value.NewUndefined(r.ID()))
	}
	capturedEnv, _ := fn.CapturedEnv.(*envrec.Environment)

	funcRec := envrec.NewFunctionRecord(fn, envrec.ThisInitialized, thisVal, nil, value.NewUndefined(r.ID()))
	callEnv := envrec.NewEnvironment(funcRec, capturedEnv)

	for i, p := range fn.Params {
		var pv value.Value = value.NewUndefined(r.ID())
		if i < len(args) {
			pv = args[i]
		}
		funcRec.CreateMutableBinding(p, false)
		funcRec.InitializeBinding(p, pv)
	}
	funcRec.CreateMutableBinding("arguments", false)
	funcRec.InitializeBinding("arguments", buildArgumentsObject(r, args))

	pop := r.PushContext(&realm.ExecutionContext{
		LexicalEnv: callEnv, VariableEnv: callEnv, Function: fn, ThisValue: thisVal, Gen: r.ActiveGenerator(),
	})
	defer pop()

	bodyC := r.EvaluatePartial(body, callEnv)
	switch bodyC.Kind() {
	case completion.Return:
		return completion.NewNormal(bodyC.Value())
	case completion.Throw:
		return bodyC
	default:
		return completion.NewNormal(value.NewUndefined(r.ID()))
	}
}

// evalConstruct implements a representative subset of the Standard's
// OrdinaryCreateFromConstructor + Construct: a fresh object linked to the
// constructor's own "prototype" property, with the constructor invoked
// against it and its own returned object (if any) preferred over the
// freshly allocated one.
func evalConstruct(r *realm.Realm, n ast.Node, fn *value.Function, args []value.Value) *completion.Completion {
	proto := prototypeOf(r, "Object.prototype")
	if protoDesc, _, found := value.Get(&fn.Object, value.StringKey(value.NewString(r.ID(), "prototype"))); found {
		if p, ok := protoDesc.Value.(*value.Object); ok {
			proto = p
		}
	}
	id := r.NextObjectID()
	obj := value.NewObject(r.ID(), id, proto)
	r.Heap().Register(obj)

	resultC := invokeFunction(r, fn, obj, args)
	if completion.ReturnIfAbrupt(resultC) {
		return resultC
	}
	if resObj, ok := resultC.Value().(*value.Object); ok {
		return completion.NewNormal(resObj)
	}
	return completion.NewNormal(obj)
}

func buildArgumentsObject(r *realm.Realm, args []value.Value) *value.Object {
	obj := newPlainObject(r)
	for i, a := range args {
		obj.DefineOwnProperty(value.StringKey(value.NewString(r.ID(), indexString(i))), value.NewDataDescriptor(a, true, true, true))
	}
	obj.DefineOwnProperty(value.StringKey(value.NewString(r.ID(), "length")), value.NewDataDescriptor(value.NewNumber(r.ID(), float64(len(args))), true, false, true))
	return obj
}

// deriveCallResult mints an Abstract value standing for the result of
// calling a callee this engine cannot resolve concretely. The entry is
// never Pure: an unresolved call might have side effects this engine cannot
// see into, so it must always be residualized even if its result goes
// unused — purity-based dead-code elimination only ever drops entries it
// can prove are side-effect free.
func deriveCallResult(r *realm.Realm, n ast.Node, calleeVal value.Value, args []value.Value) *value.Abstract {
	allArgs := append([]value.Value{calleeVal}, args...)
	origin := value.NewOriginTemplate("(", ")")
	return r.CreateAbstract(value.AnyType, value.AnyValueSet, origin, value.OriginGeneric, allArgs, false,
		func(argExprs []ast.Node, ctx *generator.EmitContext) ast.Node {
			return ctx.Factory.NewCall(ctx.NextID(), ast.SourceLocation{}, ast.CallNode{
				Callee: argExprs[0], Arguments: argExprs[1:],
			})
		})
}
