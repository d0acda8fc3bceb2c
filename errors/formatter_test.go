package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/fbdl-go/fbdl/lexer"
	"github.com/fbdl-go/fbdl/token"
)

func lexErr(t *testing.T, filename, source string) error {
	t.Helper()
	_, err := lexer.NewLexer([]byte(source), filename).ScanAll()
	assert.Error(t, err)
	return err
}

func TestTextFormatter_Format_WithSourceContext(t *testing.T) {
	source := "Main bus\n  masters = 2\n  width = 0b012\n  C config"
	err := lexErr(t, "main.fbd", source)

	output := NewTextFormatter().Format(err)
	expected := "main.fbd:3:15: invalid character '2' in binary integer literal\n\n" +
		"   Main bus\n" +
		"     masters = 2\n" +
		"     width = 0b012\n" +
		"                 ^\n" +
		"     C config\n"

	assert.Equal(t, expected, output)
}

func TestTextFormatter_Format_CaretSpansLexeme(t *testing.T) {
	err := lexErr(t, "", `x = "abc`)

	output := NewTextFormatter().Format(err)
	assert.Equal(t, "1:5: unterminated string literal\n\n   x = \"abc\n       ^^^^\n", output)
}

func TestTextFormatter_Format_WideRunes(t *testing.T) {
	err := lexErr(t, "", `"日本" @`)

	lines := strings.Split(NewTextFormatter().Format(err), "\n")
	assert.Equal(t, "   "+strings.Repeat(" ", 7)+"^", lines[3])
}

func TestTextFormatter_Format_Tabs(t *testing.T) {
	err := lexErr(t, "", "\t@")

	lines := strings.Split(NewTextFormatter().Format(err), "\n")
	assert.Equal(t, "   \t^", lines[3])
}

func TestTextFormatter_Format_ZeroWidth(t *testing.T) {
	src := []byte("ab")
	err := &lexer.Error{
		Kind:    lexer.UnmatchedDedent,
		Message: "boom",
		Tokens:  []token.Token{{Kind: token.Dedent, Pos: token.Position{Start: 2, End: 1, Line: 1, Column: 3, Src: src}}},
	}

	output := NewTextFormatter().Format(err)
	assert.Equal(t, "1:3: boom\n\n   ab\n     ^\n", output)
}

func TestTextFormatter_Format_WithSourceOverride(t *testing.T) {
	err := &lexer.Error{
		Kind:    lexer.InvalidCharacter,
		Message: "invalid character '@'",
		Tokens:  []token.Token{{Kind: token.Invalid, Pos: token.Position{Start: 1, End: 1, Line: 1, Column: 2}}},
	}

	assert.Equal(t, "1:2: invalid character '@'", NewTextFormatter().Format(err))

	output := NewTextFormatter(WithSource([]byte("a@"))).Format(err)
	assert.Equal(t, "1:2: invalid character '@'\n\n   a@\n    ^\n", output)
}

func TestTextFormatter_Format_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading uart.fbd: %w", lexErr(t, "uart.fbd", "a ,,"))

	output := NewTextFormatter().Format(err)
	assert.True(t, strings.HasPrefix(output, "loading uart.fbd: uart.fbd:1:4: redundant ','\n\n"))
	assert.Contains(t, output, "   a ,,\n      ^\n")
}

func TestTextFormatter_Format_PlainError(t *testing.T) {
	err := stderrors.New("something went wrong")
	assert.Equal(t, "something went wrong", NewTextFormatter().Format(err))
}

func TestTextFormatter_FormatAll(t *testing.T) {
	tf := NewTextFormatter()

	assert.Equal(t, "", tf.FormatAll(nil))

	errs := []error{stderrors.New("first"), stderrors.New("second")}
	assert.Equal(t, "first\n\nsecond", tf.FormatAll(errs))
}

func TestContext_CRLF(t *testing.T) {
	pos := token.Position{Start: 4, End: 4, Line: 2, Column: 2}
	lines := Context(pos, []byte("a\r\nb@\r\nc"))

	assert.Equal(t, []SourceLine{
		{Number: 1, Text: "a"},
		{Number: 2, Text: "b@", Caret: " ^"},
		{Number: 3, Text: "c"},
	}, lines)
}

func TestContext_ClampsCaretToLine(t *testing.T) {
	pos := token.Position{Start: 0, End: 99, Line: 1, Column: 1}
	lines := Context(pos, []byte("abc\ndef"))

	assert.Equal(t, "^^^", lines[0].Caret)
	assert.Equal(t, 2, len(lines))
}

func TestJSONFormatter_Format(t *testing.T) {
	err := lexErr(t, "main.fbd", "a = 0b012")

	output := NewJSONFormatter().Format(err)
	assert.Equal(t,
		`{"type":"*lexer.Error","kind":"InvalidNumberLiteral","message":"invalid character '2' in binary integer literal",`+
			`"position":{"filename":"main.fbd","line":1,"column":9,"start":8,"end":8}}`,
		output)
}

func TestJSONFormatter_FormatAll(t *testing.T) {
	errs := []error{
		lexErr(t, "", "a\n    b\n  c"),
		stderrors.New("missing path to .fbd file"),
	}

	var decoded []ErrorJSON
	assert.NoError(t, json.Unmarshal([]byte(NewJSONFormatter().FormatAll(errs)), &decoded))
	assert.Equal(t, 2, len(decoded))

	assert.Equal(t, "UnmatchedDedent", decoded[0].Kind)
	assert.Equal(t, "unindent does not match any outer indentation level", decoded[0].Message)
	assert.Equal(t, &PositionJSON{Line: 3, Column: 1, Start: 8, End: 9}, decoded[0].Position)

	assert.Equal(t, "*errors.errorString", decoded[1].Type)
	assert.Equal(t, "", decoded[1].Kind)
	assert.Zero(t, decoded[1].Position)
}

func TestJSONFormatter_Wrapped(t *testing.T) {
	err := fmt.Errorf("check: %w", lexErr(t, "a.fbd", ";;"))

	slice := NewJSONFormatter().FormatAllToSlice([]error{err})
	assert.Equal(t, "*lexer.Error", slice[0].Type)
	assert.Equal(t, "RedundantPunctuation", slice[0].Kind)
	assert.Equal(t, "redundant ';'", slice[0].Message)
	assert.Equal(t, "a.fbd", slice[0].Position.Filename)
}
