// Package module wires the full lex/parse/eval pipeline together into a
// root environment and implements `import` on top of it (§4.7). It is
// the one package allowed to depend on both the evaluator pipeline and
// the builtin operator table, which is what lets `import` re-enter that
// same pipeline to load another file without builtins importing this
// package back.
package module

import (
	"fmt"
	"os"

	"github.com/cwbudde/lcore/internal/builtins"
	"github.com/cwbudde/lcore/internal/evaluator"
	"github.com/cwbudde/lcore/internal/lexer"
	"github.com/cwbudde/lcore/internal/parser"
	"github.com/cwbudde/lcore/internal/signal"
	"github.com/cwbudde/lcore/internal/value"
)

// NewRootEnvironment creates a fresh environment with every built-in
// operator, including `import`, bound in its single top scope — the
// starting point for a REPL, a `-f`/`-c` run, or a module load.
func NewRootEnvironment() *value.Environment {
	env := value.NewEnvironment()
	builtins.Install(env)
	env.Insert("import", &value.FuncValue{Name: "import", Fn: importBuiltin})
	return env
}

// Load reads path, parses and evaluates it against a fresh root
// environment, and returns that environment's top-level bindings — the
// mapping the caller merges into its own scope via Environment.Extend
// (§4.7).
func Load(path string) (map[string]value.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, signal.GenericErrorf("import: %s", err)
	}

	env := NewRootEnvironment()
	if _, err := EvalSource(path, string(src), env); err != nil {
		return nil, err
	}
	return env.TopBindings(), nil
}

// EvalSource tokenizes, parses and evaluates src against env, returning
// the value of the last top-level form.
func EvalSource(filename, src string, env *value.Environment) (value.Value, error) {
	tokens, lineCount, err := lexer.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	p := parser.New(tokens, lineCount)
	program, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}
	return evaluator.Eval(program, env)
}

// importBuiltin implements `import "path"`: loads path in a fresh
// environment and merges its top scope into the caller's current scope.
// Per §9's resolution of the open question, "current scope" means the
// scope active where `import` was called — the top of the caller's
// scope stack — not the outermost global scope, so an `import` executed
// inside a user function's body stays scoped to that call.
//
// Loading errors are reported to stdout in the same "<Kind>: <message>"
// format the top-level driver uses, but do not abort the caller's
// evaluation (§4.7) — matching the observable behavior of the existing
// test suite.
func importBuiltin(args []value.Value, env *value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, signal.ArgumentErrorf("import expects exactly 1 argument, got %d", len(args))
	}
	path, ok := args[0].(value.StringValue)
	if !ok {
		return nil, signal.ArgumentErrorf("import expects a String path, got %s", args[0].Kind())
	}

	bindings, err := Load(path.Value)
	if err != nil {
		fmt.Fprintln(env.Output(), err.Error())
		return value.Null, nil
	}
	env.Extend(bindings)
	return value.Null, nil
}
