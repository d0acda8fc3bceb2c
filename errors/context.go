package errors

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/fbdl-go/fbdl/token"
)

// SourceLine is one line of a diagnostic snippet. Caret is empty except on
// the line the error points at.
type SourceLine struct {
	Number int // 1-indexed
	Text   string
	Caret  string
}

// Context returns the lines around pos: two before and one after. The caret
// line underlines the span start..end, clamped to the end of its line, and
// is aligned by display width so wide runes and tabs line up.
func Context(pos token.Position, source []byte) []SourceLine {
	lines := strings.Split(string(source), "\n")

	startLine := pos.Line - 3
	endLine := pos.Line

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	var out []SourceLine
	for i := startLine; i <= endLine; i++ {
		line := SourceLine{Number: i + 1, Text: strings.TrimRight(lines[i], "\r")}
		if i == pos.Line-1 && pos.Column > 0 {
			line.Caret = caret(line.Text, pos)
		}
		out = append(out, line)
	}

	return out
}

func caret(line string, pos token.Position) string {
	col := pos.Column - 1
	if col > len(line) {
		col = len(line)
	}

	var pad strings.Builder
	for _, r := range line[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	span := pos.Len()
	if col+span > len(line) {
		span = len(line) - col
	}
	width := 1
	if span > 0 {
		width = max(runewidth.StringWidth(line[col:col+span]), 1)
	}

	return pad.String() + strings.Repeat("^", width)
}
