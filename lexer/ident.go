package lexer

import "github.com/fbdl-go/fbdl/token"

// scanIdentifier scans an identifier, a keyword, a boolean, a qualified
// identifier (a.b.c) or, for b"…", o"…" and x"…", a bit string.
func (l *Lexer) scanIdentifier() (token.Token, *Error) {
	if r, ok := bitStringRadix(l.peek(0)); ok && l.peek(1) == '"' {
		return l.scanBitString(r)
	}

	start := l.pos
	l.skipIdent()
	word := l.source[start:l.pos]

	qualified := false
	for l.peek(0) == '.' && isIdentStart(l.peek(1)) {
		l.pos++
		l.skipIdent()
		qualified = true
	}

	pos := l.span(start, l.pos-1)

	if qualified {
		return token.Token{Kind: token.QualifiedIdentifier, Pos: pos}, nil
	}

	if kind, ok := token.LookupKeyword(word); ok {
		return token.Token{Kind: kind, Pos: pos}, nil
	}

	switch string(word) {
	case "true", "false":
		return token.Token{Kind: token.Bool, Pos: pos}, nil
	}

	return token.Token{Kind: token.Identifier, Pos: pos}, nil
}

func (l *Lexer) skipIdent() {
	for l.pos < len(l.source) && isIdentChar(l.source[l.pos]) {
		l.pos++
	}
}

func bitStringRadix(tag byte) (radix, bool) {
	switch tag {
	case 'b', 'B':
		return binary, true
	case 'o', 'O':
		return octal, true
	case 'x', 'X':
		return hexadecimal, true
	}
	return radix{}, false
}
