package token

import "fmt"

// Position describes where a lexeme sits in the source.
//
// Start and End are inclusive byte offsets, so Src[Start:End+1] is the
// lexeme. Synthetic tokens that occupy no bytes have End == Start-1. Src is
// the caller's buffer; it is never copied and must outlive the position.
type Position struct {
	Start  int
	End    int
	Line   int // 1-indexed
	Column int // 1-indexed
	Src    []byte
}

// Len returns the length of the lexeme in bytes.
func (p Position) Len() int {
	return p.End - p.Start + 1
}

// IsEmpty reports whether the position covers no bytes.
func (p Position) IsEmpty() bool {
	return p.End < p.Start
}

// Bytes returns a view of the lexeme. No allocation occurs.
func (p Position) Bytes() []byte {
	if p.IsEmpty() || p.Start < 0 || p.End >= len(p.Src) {
		return nil
	}
	return p.Src[p.Start : p.End+1]
}

// Text materializes the lexeme.
func (p Position) Text() string {
	return string(p.Bytes())
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// GoString omits the source buffer.
func (p Position) GoString() string {
	return fmt.Sprintf("Position{Start: %d, End: %d, Line: %d, Column: %d}", p.Start, p.End, p.Line, p.Column)
}
