// Package lexer turns FBDL source into a stream of classified, positioned
// tokens.
//
// The lexer is a single pass over an immutable buffer:
//   - Tokens store byte offsets into the caller's buffer, never copies
//   - Indentation is tracked on a stack and surfaces as Indent/Dedent tokens
//   - The first lexical error aborts the scan
//
// Lex is a pure function of its input and may be called concurrently on
// independent buffers.
package lexer

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/fbdl-go/fbdl/telemetry"
	"github.com/fbdl-go/fbdl/token"
)

// Lexer tokenizes FBDL source. A Lexer scans its buffer once.
type Lexer struct {
	source   []byte        // Source buffer, read only
	filename string        // Filename for error reporting
	pos      int           // Current byte offset
	line     int           // Current line (1-indexed)
	nl       int           // Offset of the previous newline, -1 before the first
	indents  []int         // Indentation stack, bottom is always 0
	depth    int           // Bracket nesting; newlines inside brackets are whitespace
	pending  bool          // Current logical line holds a non-comment token
	tokens   []token.Token // Token buffer (pre-allocated)
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source []byte, filename string) *Lexer {
	// Bus descriptions are dense; roughly one token per 6 bytes.
	estimatedTokens := len(source)/6 + 16

	indents := make([]int, 1, 8)

	return &Lexer{
		source:   source,
		filename: filename,
		line:     1,
		nl:       -1,
		indents:  indents,
		tokens:   make([]token.Token, 0, estimatedTokens),
	}
}

// Lex scans source and returns the complete token stream, terminated by
// exactly one Eof token. On failure the error is a *Error.
func Lex(source []byte) ([]token.Token, error) {
	return NewLexer(source, "").ScanAll()
}

// LexContext is Lex with a filename for diagnostics and a telemetry timer
// taken from ctx.
func LexContext(ctx context.Context, filename string, source []byte) ([]token.Token, error) {
	timer := telemetry.StartTimer(ctx, "lex "+displayName(filename))
	defer timer.End()

	tokens, err := NewLexer(source, filename).ScanAll()
	if err != nil {
		return nil, err
	}
	timer.Record(len(source), len(tokens))
	return tokens, nil
}

// ScanAll lexes the entire source and returns all tokens.
func (l *Lexer) ScanAll() ([]token.Token, error) {
	if err := l.indentation(); err != nil {
		return nil, l.fail(err)
	}

	for l.pos < len(l.source) {
		ch := l.source[l.pos]

		var (
			tok token.Token
			err *Error
		)

		switch {
		case isSpace(ch):
			l.pos++
			continue
		case ch == '\n':
			err = l.newline()
			if err != nil {
				return nil, l.fail(err)
			}
			continue
		case isDigit(ch):
			tok, err = l.scanNumber()
		case isIdentStart(ch):
			tok, err = l.scanIdentifier()
		case ch == '"':
			tok, err = l.scanString()
		case ch == '#':
			tok = l.scanComment()
		case operatorStart[ch]:
			tok, err = l.scanOperator()
		default:
			err = l.invalidCharacter()
		}

		if err != nil {
			return nil, l.fail(err)
		}
		l.emit(tok)
	}

	l.unwind()
	l.tokens = append(l.tokens, token.Token{Kind: token.Eof, Pos: l.empty(len(l.source))})

	return l.tokens, nil
}

func (l *Lexer) emit(tok token.Token) {
	if tok.Kind != token.Comment {
		l.pending = true
	}
	l.tokens = append(l.tokens, tok)
}

func (l *Lexer) fail(err *Error) error {
	err.Filename = l.filename
	return err
}

// scanComment scans from '#' up to, not including, the line terminator.
func (l *Lexer) scanComment() token.Token {
	start := l.pos
	for l.pos < len(l.source) && l.source[l.pos] != '\n' {
		l.pos++
	}
	end := l.pos - 1
	if l.pos < len(l.source) && l.source[end] == '\r' {
		end--
	}
	return token.Token{Kind: token.Comment, Pos: l.span(start, end)}
}

func (l *Lexer) invalidCharacter() *Error {
	quoted, size := l.quoteChar()
	tok := token.Token{Kind: token.Invalid, Pos: l.span(l.pos, l.pos+size-1)}
	return newError(InvalidCharacter, "invalid character "+quoted, tok)
}

// quoteChar quotes the character at the cursor and returns its size in
// bytes. Bytes that are not valid UTF-8 are quoted as hex escapes.
func (l *Lexer) quoteChar() (string, int) {
	r, size := utf8.DecodeRune(l.source[l.pos:])
	if r == utf8.RuneError && size <= 1 {
		return fmt.Sprintf(`'\x%02x'`, l.source[l.pos]), 1
	}
	return strconv.QuoteRune(r), size
}

// Helper methods

// column returns the 1-indexed column of offset on the current line.
func (l *Lexer) column(offset int) int {
	if l.nl < 0 {
		return offset + 1
	}
	return offset - l.nl
}

// span creates a position covering source[start:end+1] on the current line.
func (l *Lexer) span(start, end int) token.Position {
	return token.Position{
		Start:  start,
		End:    end,
		Line:   l.line,
		Column: l.column(start),
		Src:    l.source,
	}
}

// empty creates a zero-width position at offset.
func (l *Lexer) empty(offset int) token.Position {
	return l.span(offset, offset-1)
}

// peek returns the byte n positions ahead, or 0 past the end of the source.
func (l *Lexer) peek(n int) byte {
	if l.pos+n >= len(l.source) {
		return 0
	}
	return l.source[l.pos+n]
}

// isSpace reports whether ch is whitespace other than a newline.
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func displayName(filename string) string {
	if filename == "" {
		return "<source>"
	}
	return filepath.Base(filename)
}
