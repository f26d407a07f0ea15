// Package parser assembles the raw lexer token run into the flat Value
// token stream the evaluator consumes (§4.3/§4.4): application brackets
// become OpenFunc/CloseFunc markers, `[...]` and a quoted `(...)` both
// pre-assemble into an Array value, and a quote mark fuses with the
// single form that follows it into one Quote value.
//
// The recursive-descent shape here mirrors the reference implementation's
// lcore_parse (src/lcore.rs in the original LambdaCore sources): a
// Function production pushes OpenFunc, recurses over its arguments, then
// pushes CloseFunc; an Array production recurses into a side buffer and
// emits one pre-built Array; a Quote production recurses into a
// one-element side buffer and emits one Quote. Go's stateless lexer here
// replaces LambdaCore's pest grammar, so brackets are disambiguated by
// token kind rather than grammar rule, but the resulting token shapes are
// the same.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/lcore/internal/lexer"
	"github.com/cwbudde/lcore/internal/value"
)

// ErrIncomplete wraps a parse error caused by the token run ending with a
// bracket or quote still open. The REPL checks for it with errors.Is to
// tell "keep reading more input" apart from a genuine syntax error.
var ErrIncomplete = errors.New("incomplete program")

// Parser turns a raw token run into the Value token stream for one
// program. A Parser instance is single-use: construct one per parse.
type Parser struct {
	tokens    []lexer.Token
	pos       int
	errors    []string
	lineCount int
}

// New builds a Parser from lexer output. Use lexer.Tokenize to produce
// tokens and lineCount from source text.
func New(tokens []lexer.Token, lineCount int) *Parser {
	return &Parser{tokens: tokens, lineCount: lineCount}
}

// Errors returns the parse errors accumulated by ParseProgram, if any.
func (p *Parser) Errors() []string { return p.errors }

// LineCount returns the source's line count, the diagnostic side result
// the token-stream interface specifies (§6).
func (p *Parser) LineCount() int { return p.lineCount }

// ParseProgram parses every top-level form in the token run and returns
// the flat Value token stream. It stops at the first structural error.
func (p *Parser) ParseProgram() ([]value.Value, error) {
	var out []value.Value
	for p.pos < len(p.tokens) {
		if err := p.parseForm(&out); err != nil {
			p.errors = append(p.errors, err.Error())
			return nil, err
		}
	}
	return out, nil
}

func (p *Parser) current() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

// parseFormsUntil collects the flat token run of every form up to (but
// not including) a token of kind closeKind, reporting an error if the
// input runs out first.
func (p *Parser) parseFormsUntil(closeKind lexer.Kind, openLine int) ([]value.Value, error) {
	var out []value.Value
	for {
		tok, ok := p.current()
		if !ok {
			return nil, fmt.Errorf("%w: unclosed bracket opened at line %d", ErrIncomplete, openLine)
		}
		if tok.Kind == closeKind {
			return out, nil
		}
		if err := p.parseForm(&out); err != nil {
			return nil, err
		}
	}
}

// parseForm parses exactly one source form, appending its flat token
// representation to out. A literal, identifier or quote appends exactly
// one Value; an application appends OpenFunc, its argument tokens, and
// CloseFunc.
func (p *Parser) parseForm(out *[]value.Value) error {
	tok, ok := p.current()
	if !ok {
		return fmt.Errorf("unexpected end of input")
	}

	switch tok.Kind {
	case lexer.KindInt:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q at line %d: %w", tok.Text, tok.Line, err)
		}
		*out = append(*out, value.IntValue{Value: n})
		p.pos++

	case lexer.KindFloat:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q at line %d: %w", tok.Text, tok.Line, err)
		}
		*out = append(*out, value.FloatValue{Value: f})
		p.pos++

	case lexer.KindString:
		*out = append(*out, value.StringValue{Value: strings.Trim(tok.Text, `"`)})
		p.pos++

	case lexer.KindIdent:
		switch tok.Text {
		case "true":
			*out = append(*out, value.True)
		case "false":
			*out = append(*out, value.False)
		case "null":
			*out = append(*out, value.Null)
		default:
			*out = append(*out, value.IdentifierValue{Name: tok.Text})
		}
		p.pos++

	case lexer.KindOp:
		*out = append(*out, value.IdentifierValue{Name: tok.Text})
		p.pos++

	case lexer.KindBackTick:
		*out = append(*out, value.BackTickValue{})
		p.pos++

	case lexer.KindComma:
		*out = append(*out, value.CommaValue{})
		p.pos++

	case lexer.KindLBracket:
		openLine := tok.Line
		p.pos++
		elems, err := p.parseFormsUntil(lexer.KindRBracket, openLine)
		if err != nil {
			return err
		}
		p.pos++ // consume RBracket
		*out = append(*out, &value.ArrayValue{Elements: elems})

	case lexer.KindLParen:
		openLine := tok.Line
		p.pos++
		*out = append(*out, value.OpenFuncValue{})
		args, err := p.parseFormsUntil(lexer.KindRParen, openLine)
		if err != nil {
			return err
		}
		p.pos++ // consume RParen
		*out = append(*out, args...)
		*out = append(*out, value.CloseFuncValue{})

	case lexer.KindQuoteMark:
		p.pos++
		quoted, err := p.parseQuotedTarget()
		if err != nil {
			return err
		}
		*out = append(*out, &value.QuoteValue{Inner: quoted})

	case lexer.KindRParen:
		return fmt.Errorf("unexpected ')' at line %d", tok.Line)

	case lexer.KindRBracket:
		return fmt.Errorf("unexpected ']' at line %d", tok.Line)

	default:
		return fmt.Errorf("unexpected token %q at line %d", tok.Text, tok.Line)
	}
	return nil
}

// parseQuotedTarget parses the single Value a quote mark fuses with. A
// quoted `(...)` or `[...]` pre-assembles into an Array exactly like an
// unquoted array literal (this is how UserFunc bodies and operator
// arguments like `if`'s branches arrive as Quote(Array) — see builtins'
// control-flow operators); any other form quotes as itself, most commonly
// a bare identifier such as 'default or the loop variable in 'i.
func (p *Parser) parseQuotedTarget() (value.Value, error) {
	tok, ok := p.current()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of input after quote", ErrIncomplete)
	}

	switch tok.Kind {
	case lexer.KindLParen:
		openLine := tok.Line
		p.pos++
		elems, err := p.parseFormsUntil(lexer.KindRParen, openLine)
		if err != nil {
			return nil, err
		}
		p.pos++ // consume RParen
		return &value.ArrayValue{Elements: elems}, nil

	case lexer.KindLBracket:
		openLine := tok.Line
		p.pos++
		elems, err := p.parseFormsUntil(lexer.KindRBracket, openLine)
		if err != nil {
			return nil, err
		}
		p.pos++ // consume RBracket
		return &value.ArrayValue{Elements: elems}, nil

	default:
		var single []value.Value
		if err := p.parseForm(&single); err != nil {
			return nil, err
		}
		if len(single) != 1 {
			return nil, fmt.Errorf("cannot quote a multi-token form at line %d", tok.Line)
		}
		return single[0], nil
	}
}
