package builtins

import (
	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// biSet implements `set name value`: name may be an Identifier or a
// Quote(Identifier); binds value per the environment's set-don't-shadow
// insert rule (§4.2, §4.6).
func biSet(args []value.Value, env *value.Environment) (value.Value, error) {
	if err := requireArgs("set", args, 2); err != nil {
		return nil, err
	}
	n, err := name("set", args[0])
	if err != nil {
		return nil, err
	}
	env.Insert(n, args[1])
	return value.Null, nil
}

// biDefn implements `defn name params body`: stores the UserFunc shape
// Array[params, body] under name, mirroring lcore_defn.
func biDefn(args []value.Value, env *value.Environment) (value.Value, error) {
	if err := requireArgs("defn", args, 3); err != nil {
		return nil, err
	}
	n, err := name("defn", args[0])
	if err != nil {
		return nil, err
	}
	params, ok := args[1].(*value.ArrayValue)
	if !ok {
		return nil, signal.ArgumentErrorf("defn expects an array of parameter names, got %s", args[1].Kind())
	}
	for i, p := range params.Elements {
		if _, ok := value.IdentifierName(p); !ok {
			return nil, signal.ArgumentErrorf("defn parameter %d is not an identifier", i)
		}
	}
	body, err := asArray("defn", args[2])
	if err != nil {
		return nil, err
	}
	env.Insert(n, &value.ArrayValue{Elements: []value.Value{params, body}})
	return value.Null, nil
}

// biRet implements `ret value`: push value onto the return channel and
// raise Return, to be absorbed by the enclosing user-function call
// (§4.2, §4.5).
func biRet(args []value.Value, env *value.Environment) (value.Value, error) {
	if err := requireArgs("ret", args, 1); err != nil {
		return nil, err
	}
	env.PushReturn(args[0])
	return nil, signal.ErrReturn
}

// biBreak implements `break`: raise Break, absorbed by the enclosing
// `loop`.
func biBreak(args []value.Value, _ *value.Environment) (value.Value, error) {
	if err := requireArgs("break", args, 0); err != nil {
		return nil, err
	}
	return nil, signal.ErrBreak
}
