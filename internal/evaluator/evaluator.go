// Package evaluator runs the flat Value token stream the parser produces.
// It is not a tree-walker: it is the frame-stack machine described in
// §4.4, mirrored directly from the reference implementation's
// lcore_interpret/lcore_interpret_expression (src/lcore.rs in the
// original LambdaCore sources). A stack of in-progress Array frames
// accumulates results as the flat stream is consumed left to right;
// OpenFunc/CloseFunc mark where a frame collects one application's
// function and arguments, and an embedded Array token runs the same
// machine recursively over its own element stream.
package evaluator

import (
	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// frames is the stack of in-progress Array accumulators. The bottom frame
// collects top-level results; Eval returns its last element.
type frames struct {
	stack []*value.ArrayValue
}

func newFrames() *frames {
	return &frames{stack: []*value.ArrayValue{{}}}
}

func (f *frames) top() *value.ArrayValue {
	return f.stack[len(f.stack)-1]
}

func (f *frames) pushFrame() {
	f.stack = append(f.stack, &value.ArrayValue{})
}

func (f *frames) popFrame() *value.ArrayValue {
	top := f.top()
	f.stack = f.stack[:len(f.stack)-1]
	return top
}

func (f *frames) emit(v value.Value) {
	top := f.top()
	top.Elements = append(top.Elements, v)
}

// Eval runs tokens to completion against env and returns the value of the
// last top-level expression, or Null if the stream produced nothing
// (§4.4). tokens is never mutated.
func Eval(tokens []value.Value, env *value.Environment) (value.Value, error) {
	fs := newFrames()
	for _, tok := range tokens {
		if err := evalOne(fs, env, tok); err != nil {
			return nil, err
		}
	}
	last := fs.top()
	if len(last.Elements) == 0 {
		return value.Null, nil
	}
	return last.Elements[len(last.Elements)-1], nil
}

// evalOne processes exactly one token of the flat stream against the
// current frame stack.
func evalOne(fs *frames, env *value.Environment, node value.Value) error {
	switch v := node.(type) {
	case value.IdentifierValue:
		val, ok := env.Get(v.Name)
		if !ok {
			return signal.NameErrorf("cannot lookup name: %q", v.Name)
		}
		fs.emit(val)

	case value.OpenFuncValue:
		fs.pushFrame()

	case value.CloseFuncValue:
		return evalClose(fs, env)

	case *value.ArrayValue:
		return evalArrayLiteral(fs, env, v)

	default:
		fs.emit(node)
	}
	return nil
}

// evalArrayLiteral reduces a raw array-literal token (possibly still
// holding unresolved OpenFunc/CloseFunc application runs among its
// elements, as produced by the parser) into a fully-evaluated Array and
// emits it onto the enclosing frame.
func evalArrayLiteral(fs *frames, env *value.Environment, lit *value.ArrayValue) error {
	fs.pushFrame()
	for _, elem := range lit.Elements {
		if err := evalOne(fs, env, elem); err != nil {
			return err
		}
	}
	result := fs.popFrame()
	fs.emit(result)
	return nil
}

// evalClose applies the function assembled by the frame just closed: its
// first element is the callee (looked up via an Identifier earlier in the
// same frame), the rest are evaluated arguments.
func evalClose(fs *frames, env *value.Environment) error {
	frame := fs.popFrame()
	if len(frame.Elements) == 0 {
		return signal.GenericErrorf("empty function application")
	}
	callee := frame.Elements[0]
	args := frame.Elements[1:]

	result, err := apply(callee, args, env)
	if err != nil {
		return err
	}
	fs.emit(result)
	return nil
}

// apply dispatches a callee value (a native FuncValue, or the
// Array[params, body] shape a UserFunc is represented as) over args.
func apply(callee value.Value, args []value.Value, env *value.Environment) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.FuncValue:
		return fn.Fn(args, env)

	default:
		if params, body, ok := value.IsUserFunc(callee); ok {
			return applyUserFunc(params, body, args, env)
		}
		return nil, signal.ArgumentErrorf("value of kind %s is not callable", callee.Kind())
	}
}

// applyUserFunc binds args to the function's declared parameters in a
// fresh scope, evaluates its body, and restores the return channel the
// way a `ret` inside the body is expected to short-circuit to exactly
// this call (§4.2/§4.5).
func applyUserFunc(params, body *value.ArrayValue, args []value.Value, env *value.Environment) (value.Value, error) {
	if len(args) != len(params.Elements) {
		return nil, signal.ArgumentErrorf("function expects %d argument(s), got %d", len(params.Elements), len(args))
	}

	env.Push()
	defer env.Pop()

	// Parameters are bound in the call's own scope (not via the
	// set-don't-shadow Insert), so a recursive call cannot overwrite its
	// caller's parameters.
	bound := make(map[string]value.Value, len(params.Elements))
	for i, p := range params.Elements {
		name, ok := value.IdentifierName(p)
		if !ok {
			return nil, signal.ArgumentErrorf("function parameter %d is not an identifier", i)
		}
		bound[name] = args[i]
	}
	env.Extend(bound)

	returnPoint := env.CurrentReturnIndex()
	result, err := Eval(body.Elements, env)
	if err != nil {
		if signal.IsReturn(err) {
			return env.PopReturnFrom(returnPoint), nil
		}
		return nil, err
	}
	if env.CurrentReturnIndex() > returnPoint {
		return env.PopReturnFrom(returnPoint), nil
	}
	return result, nil
}

// EvalQuoted evaluates the token run carried by a Quote(Array) value — the
// shape a builtin receives for a deferred body (an `if` branch, a `sel`
// clause body). It is the hook builtins use to run code they were handed
// unevaluated.
func EvalQuoted(q value.Value, env *value.Environment) (value.Value, error) {
	quote, ok := q.(*value.QuoteValue)
	if !ok {
		return nil, signal.ArgumentErrorf("expected a quoted expression, got %s", q.Kind())
	}
	switch inner := quote.Inner.(type) {
	case *value.ArrayValue:
		return Eval(inner.Elements, env)
	default:
		return Eval([]value.Value{inner}, env)
	}
}
