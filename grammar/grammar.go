// Package grammar exposes the FBDL token stream as a participle lexer, so
// downstream parsers can describe FBDL syntax as annotated Go structs.
//
// Token type names follow token.Kind.String: structural, name and literal
// tokens are referenced as IDENT, INT, NEWLINE, INDENT and so on, while
// keywords and operators are matched by their spelling:
//
//	type constDecl struct {
//		Name  string `"const" @IDENT "="`
//		Value string `@INT NEWLINE`
//	}
package grammar

import (
	"io"

	"github.com/alecthomas/participle/v2"
	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/fbdl-go/fbdl/lexer"
	"github.com/fbdl-go/fbdl/token"
)

// Definition is a participle lexer definition backed by the FBDL lexer.
type Definition struct{}

var (
	_ plexer.Definition      = Definition{}
	_ plexer.BytesDefinition = Definition{}
)

var symbols = func() map[string]plexer.TokenType {
	m := map[string]plexer.TokenType{}
	for k := token.Kind(0); k.String() != "UNKNOWN"; k++ {
		m[k.String()] = TokenType(k)
	}
	return m
}()

// TokenType maps a kind to its participle token type. Eof becomes
// participle's EOF so grammars terminate normally.
func TokenType(kind token.Kind) plexer.TokenType {
	if kind == token.Eof {
		return plexer.EOF
	}
	return plexer.TokenType(kind)
}

func (Definition) Symbols() map[string]plexer.TokenType {
	return symbols
}

func (d Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, source)
}

// LexBytes scans the whole source up front; a lexical error is returned
// here rather than from Next.
func (Definition) LexBytes(filename string, source []byte) (plexer.Lexer, error) {
	tokens, err := lexer.NewLexer(source, filename).ScanAll()
	if err != nil {
		return nil, err
	}
	return &stream{filename: filename, tokens: tokens}, nil
}

type stream struct {
	filename string
	tokens   []token.Token
	next     int
}

func (s *stream) Next() (plexer.Token, error) {
	tok := s.tokens[s.next]
	if s.next < len(s.tokens)-1 {
		s.next++
	}
	return Convert(s.filename, tok), nil
}

// Convert translates a token into participle's representation. Offsets
// and columns carry over unchanged.
func Convert(filename string, tok token.Token) plexer.Token {
	return plexer.Token{
		Type:  TokenType(tok.Kind),
		Value: tok.Text(),
		Pos: plexer.Position{
			Filename: filename,
			Offset:   tok.Pos.Start,
			Line:     tok.Pos.Line,
			Column:   tok.Pos.Column,
		},
	}
}

// New builds a parser for G over FBDL tokens. Comments are elided.
func New[G any](options ...participle.Option) (*participle.Parser[G], error) {
	options = append([]participle.Option{
		participle.Lexer(Definition{}),
		participle.Elide(token.Comment.String()),
	}, options...)
	return participle.Build[G](options...)
}
