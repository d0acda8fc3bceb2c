package lexer

import (
	"errors"
	"testing"

	"github.com/fbdl-go/fbdl/token"
)

func FuzzLexer(f *testing.F) {
	seeds := []string{
		// Punctuation and operators
		",", ";", ",,", ";;", "(", ")", "[", "]", "**", "<<", ">>", "<=", ">=",
		"==", "!=", "&&", "||", "!", "^", "%",

		// Numbers
		"0", "42", "0b0110", "0b01;", "0b012", "0o755", "0xBEEF", "0x",
		"3.14", "1e10", "1.", "1e", "2.5e+2", "10ns", "1.5us", "5m",

		// Strings and bit strings
		`"hello"`, `"a\"b"`, `"unterminated`, `b"1010"`, `o"17"`, `x"beef"`, `x""`, `b"12"`,

		// Names
		"Main", "a.b.c", "a.", "true", "false", "const", "import", "type",
		"bus", "block", "reset_value", "byte_write_enable",

		// Indentation
		"a\n  b\nc", "a\n    b\n  c", "  a", "a\n\tb", "a(\n  1,\n2)",

		// Comments
		"# comment", "a # trailing\nb", "#\r\n",

		// Whitespace
		"", " ", "\t", "\n", "\r\n", "   \n\n",

		// Invalid
		"@", "$", "{}", "é", "\xff",
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Lexer panicked on input %q: %v", data, r)
			}
		}()

		tokens, err := NewLexer(data, "fuzz-test").ScanAll()
		if err != nil {
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			for i, tok := range lexErr.Tokens {
				if tok.Pos.Start < 0 || tok.Pos.End >= len(data) {
					t.Errorf("error token %d out of range: %#v", i, tok.Pos)
				}
			}
			return
		}

		if len(tokens) == 0 {
			t.Fatal("ScanAll returned zero tokens (expected at least EOF)")
		}

		if tokens[len(tokens)-1].Kind != token.Eof {
			t.Errorf("Last token must be EOF, got %v", tokens[len(tokens)-1].Kind)
		}

		depth := 0
		lastStart := 0
		for i, tok := range tokens {
			if tok.Pos.Line < 1 {
				t.Errorf("Token %d has invalid line %d", i, tok.Pos.Line)
			}
			if tok.Pos.Column < 1 {
				t.Errorf("Token %d has invalid column %d", i, tok.Pos.Column)
			}
			if tok.Pos.Start > tok.Pos.End+1 {
				t.Errorf("Token %d: Start=%d > End+1=%d", i, tok.Pos.Start, tok.Pos.End+1)
			}
			if tok.Pos.End >= len(data) {
				t.Errorf("Token %d: End=%d beyond data length %d", i, tok.Pos.End, len(data))
			}
			if tok.Pos.Start < lastStart {
				t.Errorf("Token %d starts at %d, before %d", i, tok.Pos.Start, lastStart)
			}
			lastStart = tok.Pos.Start

			switch tok.Kind {
			case token.Indent:
				depth++
			case token.Dedent:
				depth--
			}
		}

		if depth != 0 {
			t.Errorf("Indentation not balanced: depth %d at EOF", depth)
		}
	})
}
