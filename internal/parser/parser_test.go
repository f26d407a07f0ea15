package parser

import (
	"errors"
	"testing"

	"github.com/cwbudde/lcore/internal/lexer"
	"github.com/cwbudde/lcore/internal/value"
)

// testParseProgram is the table-driven helper's entry point: it lexes and
// parses src, failing the test on any unexpected error.
func testParseProgram(t *testing.T, src string) []value.Value {
	t.Helper()
	tokens, lineCount, err := lexer.Tokenize("<test>", src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	program, err := New(tokens, lineCount).ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", src, err)
	}
	return program
}

func TestParseLiterals(t *testing.T) {
	prog := testParseProgram(t, `1 2.5 "hi" true false null x`)
	want := []value.Value{
		value.IntValue{Value: 1},
		value.FloatValue{Value: 2.5},
		value.StringValue{Value: "hi"},
		value.True,
		value.False,
		value.Null,
		value.IdentifierValue{Name: "x"},
	}
	if len(prog) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(prog), len(want), prog)
	}
	for i := range want {
		if !value.Equal(prog[i], want[i]) {
			t.Errorf("token %d = %s, want %s", i, prog[i], want[i])
		}
	}
}

func TestParseApplicationEmitsOpenCloseMarkers(t *testing.T) {
	prog := testParseProgram(t, `(+ 1 2)`)
	want := []value.Kind{
		value.KindOpenFunc, value.KindIdentifier, value.KindInt, value.KindInt, value.KindCloseFunc,
	}
	if len(prog) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(prog), len(want), prog)
	}
	for i, k := range want {
		if prog[i].Kind() != k {
			t.Errorf("token %d kind = %v, want %v", i, prog[i].Kind(), k)
		}
	}
}

func TestParseNestedApplication(t *testing.T) {
	prog := testParseProgram(t, `(print (+ 1 2))`)
	want := []value.Kind{
		value.KindOpenFunc, value.KindIdentifier,
		value.KindOpenFunc, value.KindIdentifier, value.KindInt, value.KindInt, value.KindCloseFunc,
		value.KindCloseFunc,
	}
	if len(prog) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(prog), len(want), prog)
	}
	for i, k := range want {
		if prog[i].Kind() != k {
			t.Errorf("token %d kind = %v, want %v", i, prog[i].Kind(), k)
		}
	}
}

func TestParseBracketArrayLiteral(t *testing.T) {
	prog := testParseProgram(t, `[1 2 3]`)
	if len(prog) != 1 {
		t.Fatalf("got %d top-level values, want 1", len(prog))
	}
	arr, ok := prog[0].(*value.ArrayValue)
	if !ok {
		t.Fatalf("got %T, want *value.ArrayValue", prog[0])
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("array has %d elements, want 3", len(arr.Elements))
	}
}

func TestParseQuotedIdentifier(t *testing.T) {
	prog := testParseProgram(t, `'default`)
	if len(prog) != 1 {
		t.Fatalf("got %d top-level values, want 1", len(prog))
	}
	q, ok := prog[0].(*value.QuoteValue)
	if !ok {
		t.Fatalf("got %T, want *value.QuoteValue", prog[0])
	}
	id, ok := q.Inner.(value.IdentifierValue)
	if !ok || id.Name != "default" {
		t.Errorf("quote inner = %s, want Identifier(default)", q.Inner)
	}
}

func TestParseQuotedParenReducesToArray(t *testing.T) {
	// Quoted parens are list syntax, not application — see DESIGN.md's
	// grounding note on parseQuotedTarget.
	prog := testParseProgram(t, `'((print 1))`)
	if len(prog) != 1 {
		t.Fatalf("got %d top-level values, want 1", len(prog))
	}
	q, ok := prog[0].(*value.QuoteValue)
	if !ok {
		t.Fatalf("got %T, want *value.QuoteValue", prog[0])
	}
	arr, ok := q.Inner.(*value.ArrayValue)
	if !ok {
		t.Fatalf("quote inner = %T, want *value.ArrayValue", q.Inner)
	}
	// The inner (print 1) form still carries its own Open/Close markers,
	// since it is an application nested inside the quoted list.
	if len(arr.Elements) != 4 {
		t.Fatalf("quoted list has %d elements, want 4 (OpenFunc, print, 1, CloseFunc): %+v", len(arr.Elements), arr.Elements)
	}
	if arr.Elements[0].Kind() != value.KindOpenFunc {
		t.Errorf("first element kind = %v, want OpenFunc", arr.Elements[0].Kind())
	}
}

func TestParseQuotedBracketAlsoReducesToArray(t *testing.T) {
	prog := testParseProgram(t, `'[1 2]`)
	q := prog[0].(*value.QuoteValue)
	arr, ok := q.Inner.(*value.ArrayValue)
	if !ok || len(arr.Elements) != 2 {
		t.Fatalf("got %+v, want a 2-element Array inside the Quote", q.Inner)
	}
}

func TestParseUnclosedParenIsIncomplete(t *testing.T) {
	_, err := New(mustTokens(t, "(print 1"), 1).ParseProgram()
	if err == nil {
		t.Fatal("expected an error for an unclosed paren")
	}
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("error = %v, want it to wrap ErrIncomplete", err)
	}
}

func TestParseUnclosedQuoteIsIncomplete(t *testing.T) {
	_, err := New(mustTokens(t, "'"), 1).ParseProgram()
	if err == nil {
		t.Fatal("expected an error for a dangling quote mark")
	}
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("error = %v, want it to wrap ErrIncomplete", err)
	}
}

func TestParseStrayCloseParenIsNotIncomplete(t *testing.T) {
	_, err := New(mustTokens(t, ")"), 1).ParseProgram()
	if err == nil {
		t.Fatal("expected an error for a stray ')'")
	}
	if errors.Is(err, ErrIncomplete) {
		t.Error("a stray ')' is a genuine syntax error, not an incomplete-input condition")
	}
}

func mustTokens(t *testing.T, src string) []lexer.Token {
	t.Helper()
	tokens, _, err := lexer.Tokenize("<test>", src)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return tokens
}
