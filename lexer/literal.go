package lexer

import (
	"fmt"

	"github.com/fbdl-go/fbdl/token"
)

// scanString scans a double-quoted string. A backslash escapes the byte
// after it; strings do not span lines.
func (l *Lexer) scanString() (token.Token, *Error) {
	start := l.pos

	// Skip opening quote
	l.pos++

	for {
		if l.pos >= len(l.source) || l.source[l.pos] == '\n' {
			tok := token.Token{Kind: token.String, Pos: l.span(start, l.pos-1)}
			return token.Token{}, newError(UnterminatedLiteral, "unterminated string literal", tok)
		}

		switch l.source[l.pos] {
		case '"':
			l.pos++
			return token.Token{Kind: token.String, Pos: l.span(start, l.pos-1)}, nil
		case '\\':
			l.pos++
			if l.pos < len(l.source) && l.source[l.pos] != '\n' {
				l.pos++
			}
		default:
			l.pos++
		}
	}
}

// scanBitString scans b"1010", o"755" or x"beef".
func (l *Lexer) scanBitString(r radix) (token.Token, *Error) {
	start := l.pos
	what := r.name + " bit string"

	// Skip tag and opening quote
	l.pos += 2

	for {
		if l.pos >= len(l.source) || l.source[l.pos] == '\n' {
			tok := token.Token{Kind: token.BitString, Pos: l.span(start, l.pos-1)}
			return token.Token{}, newError(UnterminatedLiteral, "unterminated bit string literal", tok)
		}

		ch := l.source[l.pos]
		if ch == '"' {
			break
		}
		if !r.digit(ch) {
			return token.Token{}, l.invalidDigit(token.BitString, what)
		}
		l.pos++
	}

	if l.pos == start+2 {
		tok := token.Token{Kind: token.BitString, Pos: l.span(start, l.pos)}
		return token.Token{}, newError(InvalidNumberLiteral, fmt.Sprintf("missing digits in %s literal", what), tok)
	}

	// Skip closing quote
	l.pos++

	return token.Token{Kind: token.BitString, Pos: l.span(start, l.pos-1)}, nil
}
