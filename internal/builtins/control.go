package builtins

import (
	"github.com/cwbudde/lcore/internal/evaluator"
	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// biIf implements `if cond then [else]`: cond must be Boolean; evaluates
// the matching Quote(Array) branch and returns its last value, or Null if
// the condition is false and no else branch was given (§4.6).
func biIf(args []value.Value, env *value.Environment) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, signal.ArgumentErrorf("if expects 2 or 3 arguments, got %d", len(args))
	}
	cond, ok := args[0].(value.BooleanValue)
	if !ok {
		return nil, signal.ArgumentErrorf("if expects a Boolean condition, got %s", args[0].Kind())
	}
	if cond.Value {
		return evaluator.EvalQuoted(args[1], env)
	}
	if len(args) == 3 {
		return evaluator.EvalQuoted(args[2], env)
	}
	return value.Null, nil
}

// biSel implements `sel key [val1 body1] [val2 body2] ...`: each clause is
// a two-element Array of a value and a Quote(Array) body; tests
// key = val_i left to right using structural equality, evaluating the
// first matching body. A clause headed by the quoted identifier 'default
// matches unconditionally (§4.6).
func biSel(args []value.Value, env *value.Environment) (value.Value, error) {
	if len(args) < 2 {
		return nil, signal.ArgumentErrorf("sel expects a key and at least one clause, got %d argument(s)", len(args))
	}
	key := args[0]
	for i, clauseArg := range args[1:] {
		clause, ok := clauseArg.(*value.ArrayValue)
		if !ok || len(clause.Elements) != 2 {
			return nil, signal.ArgumentErrorf("sel clause %d must be (value body), got %s", i, clauseArg.Kind())
		}
		match, body := clause.Elements[0], clause.Elements[1]

		if isDefaultClause(match) {
			return evaluator.EvalQuoted(body, env)
		}
		if value.Equal(key, match) {
			return evaluator.EvalQuoted(body, env)
		}
	}
	return value.Null, nil
}

func isDefaultClause(v value.Value) bool {
	n, ok := value.IdentifierName(v)
	return ok && n == "default"
}

// biLoop implements `loop var n body`: iterates var from 0 to n-1, binding
// it to Int(i) in a fresh scope per iteration; `break` inside body exits
// cleanly (§4.6, §8 invariant 7).
func biLoop(args []value.Value, env *value.Environment) (value.Value, error) {
	if err := requireArgs("loop", args, 3); err != nil {
		return nil, err
	}
	varName, err := name("loop", args[0])
	if err != nil {
		return nil, err
	}
	n, ok := args[1].(value.IntValue)
	if !ok {
		return nil, signal.ArgumentErrorf("loop expects an Int iteration count, got %s", args[1].Kind())
	}
	body, err := asArray("loop", args[2])
	if err != nil {
		return nil, err
	}

	for i := int64(0); i < n.Value; i++ {
		env.Push()
		env.Extend(map[string]value.Value{varName: value.IntValue{Value: i}})
		_, err := evaluator.Eval(body.Elements, env)
		env.Pop()
		if err != nil {
			if signal.IsBreak(err) {
				break
			}
			return nil, err
		}
	}
	return value.Null, nil
}
