package builtins

import (
	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// biEq implements `=`: structural equality per §3; comparing values of
// different Kind is an ArgumentError (§4.6).
func biEq(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("=", args, 2); err != nil {
		return nil, err
	}
	if args[0].Kind() != args[1].Kind() {
		return nil, signal.ArgumentErrorf("=: cannot compare %s with %s", args[0].Kind(), args[1].Kind())
	}
	return value.Bool(value.Equal(args[0], args[1])), nil
}

// biNeq implements `!=`, the negation of `=` on same-variant inputs.
func biNeq(args []value.Value, env *value.Environment) (value.Value, error) {
	eq, err := biEq(args, env)
	if err != nil {
		return nil, err
	}
	return value.Bool(!eq.(value.BooleanValue).Value), nil
}

// biLt implements `<`: numbers compare by magnitude; String, Identifier,
// Array and Dict compare by length (§4.6).
func biLt(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("<", args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case value.IntValue:
		b, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("<", args[0], args[1])
		}
		return value.Bool(a.Value < b.Value), nil
	case value.FloatValue:
		b, ok := args[1].(value.FloatValue)
		if !ok {
			return nil, typeMismatch("<", args[0], args[1])
		}
		return value.Bool(a.Value < b.Value), nil
	case value.StringValue:
		b, ok := args[1].(value.StringValue)
		if !ok {
			return nil, typeMismatch("<", args[0], args[1])
		}
		return value.Bool(len(a.Value) < len(b.Value)), nil
	case value.IdentifierValue:
		b, ok := args[1].(value.IdentifierValue)
		if !ok {
			return nil, typeMismatch("<", args[0], args[1])
		}
		return value.Bool(len(a.Name) < len(b.Name)), nil
	case *value.ArrayValue:
		b, ok := args[1].(*value.ArrayValue)
		if !ok {
			return nil, typeMismatch("<", args[0], args[1])
		}
		return value.Bool(len(a.Elements) < len(b.Elements)), nil
	case *value.DictValue:
		b, ok := args[1].(*value.DictValue)
		if !ok {
			return nil, typeMismatch("<", args[0], args[1])
		}
		return value.Bool(a.Len() < b.Len()), nil
	default:
		return nil, signal.ArgumentErrorf("< does not support operand of kind %s", args[0].Kind())
	}
}

func asBool(builtin string, v value.Value) (bool, error) {
	b, ok := v.(value.BooleanValue)
	if !ok {
		return false, signal.ArgumentErrorf("%s expects Boolean operands, got %s", builtin, v.Kind())
	}
	return b.Value, nil
}

// biAnd implements `and`: strict on Booleans only.
func biAnd(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("and", args, 2); err != nil {
		return nil, err
	}
	a, err := asBool("and", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asBool("and", args[1])
	if err != nil {
		return nil, err
	}
	return value.Bool(a && b), nil
}

// biOr implements `or`: strict on Booleans only.
func biOr(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("or", args, 2); err != nil {
		return nil, err
	}
	a, err := asBool("or", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asBool("or", args[1])
	if err != nil {
		return nil, err
	}
	return value.Bool(a || b), nil
}

// biNot implements `not`: strict on Boolean only.
func biNot(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("not", args, 1); err != nil {
		return nil, err
	}
	a, err := asBool("not", args[0])
	if err != nil {
		return nil, err
	}
	return value.Bool(!a), nil
}
