// Package lexer turns language core source text into a flat run of raw
// tokens. It is the concrete surface grammar's scanner: §1 of the
// language core treats the lexer as an external collaborator, specified
// only by the token kinds it must yield (§3). This implementation backs
// that contract with a participle/v2 simple lexer, the same tokenizing
// library the Guix and PSIL interpreters in this family use for their own
// expression languages.
package lexer

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind names a raw lexical token as produced by the scanner, before the
// parser fuses quotes and pre-assembles arrays into the Value token
// stream described in §4.3.
type Kind int

const (
	KindEOF Kind = iota
	KindInt
	KindFloat
	KindString
	KindIdent
	KindOp
	KindLParen
	KindRParen
	KindLBracket
	KindRBracket
	KindQuoteMark
	KindBackTick
	KindComma
)

// Token is one scanned lexeme with its source line, used for the line
// count the token-stream interface reports (§6) and for error messages.
type Token struct {
	Kind Kind
	Text string
	Line int
}

var def = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Float", Pattern: `-?[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "QuoteMark", Pattern: `'`},
	{Name: "BackTick", Pattern: "`"},
	{Name: "Comma", Pattern: `,`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_?!-]*`},
	{Name: "Op", Pattern: `[+\-*/<>=!]+`},
})

var namesByType = func() map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string, len(def.Symbols()))
	for name, t := range def.Symbols() {
		out[t] = name
	}
	return out
}()

var kindByName = map[string]Kind{
	"Int":       KindInt,
	"Float":     KindFloat,
	"String":    KindString,
	"Ident":     KindIdent,
	"Op":        KindOp,
	"LParen":    KindLParen,
	"RParen":    KindRParen,
	"LBracket":  KindLBracket,
	"RBracket":  KindRBracket,
	"QuoteMark": KindQuoteMark,
	"BackTick":  KindBackTick,
	"Comma":     KindComma,
}

// Tokenize scans src into the raw token run, eliding whitespace and `;`
// line comments. It returns the line count alongside the tokens, matching
// the "line-count side result for diagnostics" the token-stream interface
// requires (§6).
func Tokenize(filename, src string) ([]Token, int, error) {
	lx, err := def.Lex(filename, strings.NewReader(src))
	if err != nil {
		return nil, 0, fmt.Errorf("lexer: %w", err)
	}

	var tokens []Token
	lineCount := 1
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, 0, fmt.Errorf("lexer: %w", err)
		}
		if tok.EOF() {
			break
		}
		if tok.Pos.Line > lineCount {
			lineCount = tok.Pos.Line
		}
		name, ok := namesByType[tok.Type]
		if !ok {
			return nil, 0, fmt.Errorf("lexer: unrecognized token %q at line %d", tok.Value, tok.Pos.Line)
		}
		if name == "Comment" || name == "Whitespace" {
			continue
		}
		kind, ok := kindByName[name]
		if !ok {
			return nil, 0, fmt.Errorf("lexer: unhandled token kind %q", name)
		}
		tokens = append(tokens, Token{Kind: kind, Text: tok.Value, Line: tok.Pos.Line})
	}
	return tokens, lineCount, nil
}
