package builtins

import (
	"fmt"

	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// biPrin implements `prin`: print exactly one argument with no trailing
// newline, plain mode at top level (§4.6, §6).
func biPrin(args []value.Value, env *value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, signal.ArgumentErrorf("prin expects exactly 1 argument, got %d", len(args))
	}
	fmt.Fprint(env.Output(), value.Format(args[0], false))
	return value.Null, nil
}

// biPrint implements `print`: like `prin` but appends a newline.
func biPrint(args []value.Value, env *value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, signal.ArgumentErrorf("print expects exactly 1 argument, got %d", len(args))
	}
	fmt.Fprintln(env.Output(), value.Format(args[0], false))
	return value.Null, nil
}
