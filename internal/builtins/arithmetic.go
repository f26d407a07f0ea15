package builtins

import (
	"math"
	"strings"

	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// biAdd implements `+`: (Int,Int)->Int, (Float,Float)->Float,
// (String,String)->concat, (Array,Array)->concat (§4.6).
func biAdd(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("+", args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case value.IntValue:
		b, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("+", args[0], args[1])
		}
		return value.IntValue{Value: a.Value + b.Value}, nil
	case value.FloatValue:
		b, ok := args[1].(value.FloatValue)
		if !ok {
			return nil, typeMismatch("+", args[0], args[1])
		}
		return value.FloatValue{Value: a.Value + b.Value}, nil
	case value.StringValue:
		b, ok := args[1].(value.StringValue)
		if !ok {
			return nil, typeMismatch("+", args[0], args[1])
		}
		return value.StringValue{Value: a.Value + b.Value}, nil
	case *value.ArrayValue:
		b, ok := args[1].(*value.ArrayValue)
		if !ok {
			return nil, typeMismatch("+", args[0], args[1])
		}
		out := make([]value.Value, 0, len(a.Elements)+len(b.Elements))
		out = append(out, a.Elements...)
		out = append(out, b.Elements...)
		return &value.ArrayValue{Elements: out}, nil
	default:
		return nil, signal.ArgumentErrorf("+ does not support operand of kind %s", args[0].Kind())
	}
}

// biSub implements `-` on numeric pairs.
func biSub(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("-", args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case value.IntValue:
		b, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("-", args[0], args[1])
		}
		return value.IntValue{Value: a.Value - b.Value}, nil
	case value.FloatValue:
		b, ok := args[1].(value.FloatValue)
		if !ok {
			return nil, typeMismatch("-", args[0], args[1])
		}
		return value.FloatValue{Value: a.Value - b.Value}, nil
	default:
		return nil, signal.ArgumentErrorf("- expects numeric operands, got %s", args[0].Kind())
	}
}

// biMul implements `*`: numeric pairs, plus (String,Int)->repeat and
// (Array,Int)->repeat (§4.6).
func biMul(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("*", args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case value.IntValue:
		b, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("*", args[0], args[1])
		}
		return value.IntValue{Value: a.Value * b.Value}, nil
	case value.FloatValue:
		b, ok := args[1].(value.FloatValue)
		if !ok {
			return nil, typeMismatch("*", args[0], args[1])
		}
		return value.FloatValue{Value: a.Value * b.Value}, nil
	case value.StringValue:
		n, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("*", args[0], args[1])
		}
		if n.Value < 0 {
			return nil, signal.ArgumentErrorf("* repeat count must be non-negative, got %d", n.Value)
		}
		return value.StringValue{Value: strings.Repeat(a.Value, int(n.Value))}, nil
	case *value.ArrayValue:
		n, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("*", args[0], args[1])
		}
		if n.Value < 0 {
			return nil, signal.ArgumentErrorf("* repeat count must be non-negative, got %d", n.Value)
		}
		out := make([]value.Value, 0, len(a.Elements)*int(n.Value))
		for i := int64(0); i < n.Value; i++ {
			out = append(out, a.Elements...)
		}
		return &value.ArrayValue{Elements: out}, nil
	default:
		return nil, signal.ArgumentErrorf("* does not support operand of kind %s", args[0].Kind())
	}
}

// biDiv implements `/` on numeric pairs.
func biDiv(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("/", args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case value.IntValue:
		b, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("/", args[0], args[1])
		}
		if b.Value == 0 {
			return nil, signal.ArgumentErrorf("/ division by zero")
		}
		return value.IntValue{Value: a.Value / b.Value}, nil
	case value.FloatValue:
		b, ok := args[1].(value.FloatValue)
		if !ok {
			return nil, typeMismatch("/", args[0], args[1])
		}
		return value.FloatValue{Value: a.Value / b.Value}, nil
	default:
		return nil, signal.ArgumentErrorf("/ expects numeric operands, got %s", args[0].Kind())
	}
}

// biPow implements `**`: (Int,Int)->Int with a non-negative exponent, and
// (Float,Float)->pow (§4.6).
func biPow(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("**", args, 2); err != nil {
		return nil, err
	}
	switch a := args[0].(type) {
	case value.IntValue:
		b, ok := args[1].(value.IntValue)
		if !ok {
			return nil, typeMismatch("**", args[0], args[1])
		}
		if b.Value < 0 {
			return nil, signal.ArgumentErrorf("** exponent must be non-negative, got %d", b.Value)
		}
		result := int64(1)
		for i := int64(0); i < b.Value; i++ {
			result *= a.Value
		}
		return value.IntValue{Value: result}, nil
	case value.FloatValue:
		b, ok := args[1].(value.FloatValue)
		if !ok {
			return nil, typeMismatch("**", args[0], args[1])
		}
		return value.FloatValue{Value: math.Pow(a.Value, b.Value)}, nil
	default:
		return nil, signal.ArgumentErrorf("** expects numeric operands, got %s", args[0].Kind())
	}
}

func typeMismatch(op string, a, b value.Value) error {
	return signal.ArgumentErrorf("%s: mismatched operand kinds %s and %s", op, a.Kind(), b.Kind())
}
