package lexer

import (
	"fmt"

	"github.com/fbdl-go/fbdl/token"
)

// operatorStart marks the first byte of every operator spelling.
var operatorStart [256]bool

func init() {
	for _, op := range token.Keywords(token.Operator) {
		operatorStart[op[0]] = true
	}
}

// scanOperator matches the longest operator spelling at the cursor. Two-byte
// spellings win over their one-byte prefixes.
func (l *Lexer) scanOperator() (token.Token, *Error) {
	start := l.pos

	if l.pos+1 < len(l.source) {
		if kind, ok := token.LookupOperator(l.source[l.pos : l.pos+2]); ok {
			l.pos += 2
			return token.Token{Kind: kind, Pos: l.span(start, start+1)}, nil
		}
	}

	kind, _ := token.LookupOperator(l.source[l.pos : l.pos+1])
	tok := token.Token{Kind: kind, Pos: l.span(start, start)}

	switch kind {
	case token.LeftParenthesis, token.LeftBracket:
		l.depth++
	case token.RightParenthesis, token.RightBracket:
		if l.depth > 0 {
			l.depth--
		}
	case token.Comma, token.Semicolon:
		if l.previous() == kind {
			return token.Token{}, newError(RedundantPunctuation, fmt.Sprintf("redundant '%s'", kind), tok)
		}
	}

	l.pos++
	return tok, nil
}

// previous returns the kind of the last token that is not a comment, or
// Invalid at the start of the stream.
func (l *Lexer) previous() token.Kind {
	for i := len(l.tokens) - 1; i >= 0; i-- {
		if l.tokens[i].Kind != token.Comment {
			return l.tokens[i].Kind
		}
	}
	return token.Invalid
}
