package lexer

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/fbdl-go/fbdl/token"
)

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.Int},
		{"42", token.Int},
		{"007", token.Int},
		{"0b1", token.Int},
		{"0B1010", token.Int},
		{"0o17", token.Int},
		{"0O7", token.Int},
		{"0xBEEF", token.Int},
		{"0XdeadBEEF", token.Int},
		{"3.14", token.Real},
		{"0.5", token.Real},
		{"1e10", token.Real},
		{"1E-3", token.Real},
		{"2.5e+2", token.Real},
		{"10ns", token.Time},
		{"1.5us", token.Time},
		{"3s", token.Time},
		{"7ms", token.Time},
		{"1fs", token.Time},
		{"2ps", token.Time},
		{"1e3ps", token.Time},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Lex([]byte(tt.input))
			assert.NoError(t, err)
			assert.Equal(t, []token.Kind{tt.kind, token.Eof}, kinds(tokens))
			assert.Equal(t, tt.input, tokens[0].Text())
		})
	}
}

func TestLexerNumberTerminators(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"1)", []token.Kind{token.Int, token.RightParenthesis, token.Eof}},
		{"[0x10]", []token.Kind{token.LeftBracket, token.Int, token.RightBracket, token.Eof}},
		{"1,2", []token.Kind{token.Int, token.Comma, token.Int, token.Eof}},
		{"1-2", []token.Kind{token.Int, token.Subtraction, token.Int, token.Eof}},
		{"2**8", []token.Kind{token.Int, token.Exponent, token.Int, token.Eof}},
		{"0b1<<3", []token.Kind{token.Int, token.LeftShift, token.Int, token.Eof}},
		{"1.5>=x", []token.Kind{token.Real, token.GreaterEqual, token.Identifier, token.Eof}},
		{"10ns;", []token.Kind{token.Time, token.Semicolon, token.Eof}},
		{"0o7|0x8&1^2", []token.Kind{token.Int, token.BitOr, token.Int, token.BitAnd, token.Int, token.BitXor, token.Int, token.Eof}},
		{"3!=4", []token.Kind{token.Int, token.NonEquality, token.Int, token.Eof}},
		{"1\t# c", []token.Kind{token.Int, token.Comment, token.Eof}},
		{"1\r\n", []token.Kind{token.Int, token.Newline, token.Eof}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, lexKinds(t, tt.input))
		})
	}
}

func TestLexerNumberErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    ErrorKind
		message string
		start   int
		end     int
	}{
		{"binary without digits", "0b", InvalidNumberLiteral, "missing digits in binary integer literal", 0, 1},
		{"hex without digits", "0x;", InvalidNumberLiteral, "missing digits in hexadecimal integer literal", 0, 1},
		{"octal digit out of range", "0o8", InvalidNumberLiteral, "invalid character '8' in octal integer literal", 2, 2},
		{"hex digit out of range", "0xG", InvalidNumberLiteral, "invalid character 'G' in hexadecimal integer literal", 2, 2},
		{"binary digit in middle", "0b10a1", InvalidNumberLiteral, "invalid character 'a' in binary integer literal", 4, 4},
		{"letter after decimal", "12a", InvalidNumberLiteral, "invalid character 'a' in decimal integer literal", 2, 2},
		{"partial time unit", "5m", InvalidNumberLiteral, "invalid character 'm' in decimal integer literal", 1, 1},
		{"underscore separator", "1_000", InvalidNumberLiteral, "invalid character '_' in decimal integer literal", 1, 1},
		{"letter after real", "1.5x", InvalidNumberLiteral, "invalid character 'x' in real literal", 3, 3},
		{"letter after dot", "1.a", InvalidNumberLiteral, "invalid character 'a' in real literal", 2, 2},
		{"second dot", "1.0.0", InvalidNumberLiteral, "invalid character '.' in real literal", 3, 3},
		{"letter after unit", "10nsx", InvalidNumberLiteral, "invalid character 'x' in time literal", 4, 4},
		{"quote after number", `1"`, InvalidNumberLiteral, `invalid character '"' in decimal integer literal`, 1, 1},
		{"dot at eof", "1.", UnterminatedLiteral, "unterminated real literal", 0, 1},
		{"dot before semicolon", "1.;", UnterminatedLiteral, "unterminated real literal", 0, 1},
		{"exponent at eof", "1e", UnterminatedLiteral, "unterminated real literal", 0, 1},
		{"signed exponent at eof", "2.0e+", UnterminatedLiteral, "unterminated real literal", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lexError(t, tt.input)
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.start, err.Tokens[0].Pos.Start)
			assert.Equal(t, tt.end, err.Tokens[0].Pos.End)
		})
	}
}

func TestLexerNumberErrorColumn(t *testing.T) {
	err := lexError(t, "a = 1\nb = 0x1z")
	assert.Equal(t, "2:8: invalid character 'z' in hexadecimal integer literal", err.Error())
}
