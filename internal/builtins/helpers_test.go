package builtins

import (
	"bytes"
	"testing"

	"github.com/cwbudde/lcore/internal/evaluator"
	"github.com/cwbudde/lcore/internal/lexer"
	"github.com/cwbudde/lcore/internal/parser"
	"github.com/cwbudde/lcore/internal/value"
)

// newTestEnv builds a root environment with every builtin except `import`
// installed (internal/module wires `import` separately — see loader.go).
func newTestEnv() *value.Environment {
	env := value.NewEnvironment()
	Install(env)
	return env
}

// testEval parses and evaluates src against env, failing the test on any
// lex/parse/eval error. Mirrors the teacher's testEval helper.
func testEval(t *testing.T, env *value.Environment, src string) value.Value {
	t.Helper()
	tokens, lineCount, err := lexer.Tokenize("<test>", src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	program, err := parser.New(tokens, lineCount).ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", src, err)
	}
	result, err := evaluator.Eval(program, env)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return result
}

// testEvalErr is like testEval but expects evaluation to fail, returning
// the error instead of a result.
func testEvalErr(t *testing.T, env *value.Environment, src string) error {
	t.Helper()
	tokens, lineCount, err := lexer.Tokenize("<test>", src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	program, err := parser.New(tokens, lineCount).ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", src, err)
	}
	_, err = evaluator.Eval(program, env)
	if err == nil {
		t.Fatalf("Eval(%q): expected an error, got none", src)
	}
	return err
}

// testEvalWithOutput is like testEval but captures everything written to
// the environment's output sink (prin/print), the hook every I/O-facing
// test below uses instead of touching the real stdout.
func testEvalWithOutput(t *testing.T, src string) (value.Value, string) {
	t.Helper()
	env := newTestEnv()
	var buf bytes.Buffer
	env.SetOutput(&buf)
	return testEval(t, env, src), buf.String()
}
