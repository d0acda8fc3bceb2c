package lexer

import "github.com/fbdl-go/fbdl/token"

// newline consumes a physical newline. Outside brackets it closes the
// logical line and measures the indentation of the next one.
func (l *Lexer) newline() *Error {
	nl := l.span(l.pos, l.pos)

	l.nl = l.pos
	l.pos++
	l.line++

	if l.depth > 0 {
		return nil
	}

	if l.pending {
		l.tokens = append(l.tokens, token.Token{Kind: token.Newline, Pos: nl})
		l.pending = false
	}

	return l.indentation()
}

// indentation measures the leading whitespace of the line starting at the
// cursor and compares it with the indentation stack. Blank and comment-only
// lines are skipped.
func (l *Lexer) indentation() *Error {
	start := l.pos
	for l.pos < len(l.source) && (l.source[l.pos] == ' ' || l.source[l.pos] == '\t') {
		l.pos++
	}
	width := l.pos - start

	if l.blankRest() {
		return nil
	}

	top := l.indents[len(l.indents)-1]

	switch {
	case width == top:
		return nil

	case width > top:
		l.indents = append(l.indents, width)
		l.tokens = append(l.tokens, token.Token{Kind: token.Indent, Pos: l.span(start, l.pos-1)})
		return nil
	}

	for len(l.indents) > 1 && l.indents[len(l.indents)-1] > width {
		l.indents = l.indents[:len(l.indents)-1]
		l.tokens = append(l.tokens, token.Token{Kind: token.Dedent, Pos: l.empty(l.pos)})
	}

	if l.indents[len(l.indents)-1] != width {
		tok := token.Token{Kind: token.Dedent, Pos: l.span(start, l.pos-1)}
		return newError(UnmatchedDedent, "unindent does not match any outer indentation level", tok)
	}

	return nil
}

// blankRest reports whether nothing but a comment or line terminator
// remains on the current line.
func (l *Lexer) blankRest() bool {
	i := l.pos
	for i < len(l.source) && isSpace(l.source[i]) {
		i++
	}
	return i == len(l.source) || l.source[i] == '\n' || l.source[i] == '#'
}

// unwind closes every open indentation level at the end of the input.
func (l *Lexer) unwind() {
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.tokens = append(l.tokens, token.Token{Kind: token.Dedent, Pos: l.empty(len(l.source))})
	}
}
