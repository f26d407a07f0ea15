// Package builtins implements the 26 native operators enumerated in
// §4.6 other than `import` (which internal/module wires in): arithmetic, comparison, binding, control flow, containers, I/O
// and process control. Every operator has the BuiltinFunc shape
// (args []value.Value, env *value.Environment) (value.Value, error) and
// is grounded on the corresponding lcore_* function in the reference
// implementation's src/builtin.rs, refined against the language core
// specification where the reference source is silent (`sel`, `swap`,
// `dict`) or ambiguous (the `get` wraparound formula).
package builtins

import (
	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// entry pairs a builtin's name with its implementation, the same
// name/function table shape import_builtins populates in the reference
// source.
type entry struct {
	name string
	fn   value.BuiltinFunc
}

// table lists every built-in operator. Install copies it into an
// environment's top scope.
var table = []entry{
	// I/O
	{"prin", biPrin},
	{"print", biPrint},

	// Process
	{"quit", biQuit},
	{"exit", biQuit},

	// Binding
	{"set", biSet},
	{"defn", biDefn},
	{"ret", biRet},
	{"break", biBreak},

	// Control
	{"if", biIf},
	{"sel", biSel},
	{"loop", biLoop},

	// Arithmetic
	{"+", biAdd},
	{"-", biSub},
	{"*", biMul},
	{"/", biDiv},
	{"**", biPow},

	// Comparison / logic
	{"=", biEq},
	{"!=", biNeq},
	{"<", biLt},
	{"and", biAnd},
	{"or", biOr},
	{"not", biNot},

	// Containers
	{"dict", biDict},
	{"get", biGet},
	{"len", biLen},
	{"swap", biSwap},
}

// Install binds every built-in operator except `import` into env's
// current scope. `import` is wired in separately by the module package
// (see internal/module), since it needs to re-enter this exact
// lex/parse/eval/Install pipeline to load another file — wiring it here
// would make this package import its own caller. Call Install once on a
// freshly created root environment, before evaluating any program text,
// exactly as the reference implementation's import_builtins wires its own
// function table into a fresh symbol table.
func Install(env *value.Environment) {
	for _, e := range table {
		env.Insert(e.name, &value.FuncValue{Name: e.name, Fn: e.fn})
	}
}

// requireArgs enforces exact arity, the uniform ArgumentError every
// builtin below raises on the wrong argument count.
func requireArgs(name string, args []value.Value, n int) error {
	if len(args) != n {
		return signal.ArgumentErrorf("%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// name unwraps arg to the identifier name it designates (bare Identifier
// or Quote(Identifier)), the pattern `set`/`defn`/`loop`/`swap` share.
func name(builtin string, arg value.Value) (string, error) {
	n, ok := value.IdentifierName(arg)
	if !ok {
		return "", signal.ArgumentErrorf("%s expects an identifier, got %s", builtin, arg.Kind())
	}
	return n, nil
}

// asArray unwraps a Quote(Array) argument — the shape a deferred body
// (an `if` branch, a `loop` body, a `sel` clause) arrives in.
func asArray(builtin string, arg value.Value) (*value.ArrayValue, error) {
	q, ok := arg.(*value.QuoteValue)
	if !ok {
		return nil, signal.ArgumentErrorf("%s expects a quoted body, got %s", builtin, arg.Kind())
	}
	arr, ok := q.Inner.(*value.ArrayValue)
	if !ok {
		return nil, signal.ArgumentErrorf("%s expects a quoted array body, got Quote(%s)", builtin, q.Inner.Kind())
	}
	return arr, nil
}
