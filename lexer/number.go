package lexer

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/fbdl-go/fbdl/token"
)

// validAfterNumber lists the bytes that cleanly terminate a numeric literal.
var validAfterNumber = []byte{
	' ', '\t', '\r', '\n', '(', ')', ']', '-', '+', '*', '/', '%', '=', '<', '>',
	'!', '^', ';', ':', ',', '|', '&', '#',
}

// timeUnits are tried in order, so two-letter units come before "s".
var timeUnits = []string{"fs", "ps", "ns", "us", "ms", "s"}

// radix describes the digit alphabet of an integer or bit string literal.
type radix struct {
	name  string
	digit func(byte) bool
}

var (
	binary      = radix{"binary", func(ch byte) bool { return ch == '0' || ch == '1' }}
	octal       = radix{"octal", func(ch byte) bool { return ch >= '0' && ch <= '7' }}
	hexadecimal = radix{"hexadecimal", isHexDigit}
)

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isValidAfterNumber(ch byte) bool {
	return slices.Contains(validAfterNumber, ch)
}

// scanNumber dispatches on the radix prefix.
func (l *Lexer) scanNumber() (token.Token, *Error) {
	if l.peek(0) == '0' {
		switch l.peek(1) {
		case 'b', 'B':
			return l.scanRadixInt(binary)
		case 'o', 'O':
			return l.scanRadixInt(octal)
		case 'x', 'X':
			return l.scanRadixInt(hexadecimal)
		}
	}
	return l.scanDecimal()
}

// scanRadixInt scans a prefixed integer: 0b1010, 0o755, 0xBEEF.
func (l *Lexer) scanRadixInt(r radix) (token.Token, *Error) {
	start := l.pos
	what := r.name + " integer"

	// Skip prefix
	l.pos += 2

	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		if r.digit(ch) {
			l.pos++
			continue
		}
		if isValidAfterNumber(ch) {
			break
		}
		return token.Token{}, l.invalidDigit(token.Int, what)
	}

	if l.pos == start+2 {
		tok := token.Token{Kind: token.Int, Pos: l.span(start, start+1)}
		return token.Token{}, newError(InvalidNumberLiteral, fmt.Sprintf("missing digits in %s literal", what), tok)
	}

	return token.Token{Kind: token.Int, Pos: l.span(start, l.pos-1)}, nil
}

// scanDecimal scans a decimal integer, a real or a time literal:
//
//	[0-9]+ ('.' [0-9]+)? ([eE] [+-]? [0-9]+)? unit?
func (l *Lexer) scanDecimal() (token.Token, *Error) {
	start := l.pos
	kind := token.Int

	l.skipDigits()

	if l.peek(0) == '.' {
		kind = token.Real
		l.pos++
		if !isDigit(l.peek(0)) {
			return token.Token{}, l.incompleteReal(start)
		}
		l.skipDigits()
	}

	if ch := l.peek(0); ch == 'e' || ch == 'E' {
		kind = token.Real
		l.pos++
		if ch := l.peek(0); ch == '+' || ch == '-' {
			l.pos++
		}
		if !isDigit(l.peek(0)) {
			return token.Token{}, l.incompleteReal(start)
		}
		l.skipDigits()
	}

	if isLetter(l.peek(0)) {
		if !l.skipTimeUnit() {
			return token.Token{}, l.invalidDigit(kind, literalName(kind))
		}
		kind = token.Time
	}

	if l.pos < len(l.source) && !isValidAfterNumber(l.source[l.pos]) {
		return token.Token{}, l.invalidDigit(kind, literalName(kind))
	}

	return token.Token{Kind: kind, Pos: l.span(start, l.pos-1)}, nil
}

func (l *Lexer) skipDigits() {
	for l.pos < len(l.source) && isDigit(l.source[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) skipTimeUnit() bool {
	for _, unit := range timeUnits {
		if l.pos+len(unit) <= len(l.source) && string(l.source[l.pos:l.pos+len(unit)]) == unit {
			l.pos += len(unit)
			return true
		}
	}
	return false
}

// incompleteReal reports a fraction or exponent without digits. It is
// unterminated when the literal simply stops, otherwise the next byte is
// the culprit.
func (l *Lexer) incompleteReal(start int) *Error {
	if l.pos >= len(l.source) || isValidAfterNumber(l.source[l.pos]) {
		tok := token.Token{Kind: token.Real, Pos: l.span(start, l.pos-1)}
		return newError(UnterminatedLiteral, "unterminated real literal", tok)
	}
	return l.invalidDigit(token.Real, "real")
}

// invalidDigit reports the byte at the cursor. The implicated token covers
// only that character so diagnostics point straight at it.
func (l *Lexer) invalidDigit(kind token.Kind, what string) *Error {
	quoted, size := l.quoteChar()
	tok := token.Token{Kind: kind, Pos: l.span(l.pos, l.pos+size-1)}
	return newError(InvalidNumberLiteral, fmt.Sprintf("invalid character %s in %s literal", quoted, what), tok)
}

func literalName(kind token.Kind) string {
	switch kind {
	case token.Real:
		return "real"
	case token.Time:
		return "time"
	default:
		return "decimal integer"
	}
}
