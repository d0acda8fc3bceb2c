package lexer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fbdl-go/fbdl/token"
)

// Literal decoding for the parser. The lexer itself never looks at literal
// values; these helpers materialize them from a token's span on demand.

// BitString is the decoded value of a bit string literal.
type BitString struct {
	Width int // Number of bits, digits times bits per digit
	Value *big.Int
}

// Nanoseconds per time unit.
var timeUnitScale = map[string]decimal.Decimal{
	"fs": decimal.New(1, -6),
	"ps": decimal.New(1, -3),
	"ns": decimal.New(1, 0),
	"us": decimal.New(1, 3),
	"ms": decimal.New(1, 6),
	"s":  decimal.New(1, 9),
}

func wrongKind(tok token.Token, want token.Kind) error {
	return fmt.Errorf("%s: cannot decode %s token as %s", tok.Pos, tok.Kind, want)
}

// IntValue decodes an Int literal in any radix.
func IntValue(tok token.Token) (*big.Int, error) {
	if tok.Kind != token.Int {
		return nil, wrongKind(tok, token.Int)
	}

	text := tok.Text()
	base := 10
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		case 'x', 'X':
			base = 16
		}
	}
	if base != 10 {
		text = text[2:]
	}

	v, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, fmt.Errorf("%s: malformed integer literal %q", tok.Pos, tok.Text())
	}
	return v, nil
}

// RealValue decodes a Real literal exactly.
func RealValue(tok token.Token) (decimal.Decimal, error) {
	if tok.Kind != token.Real {
		return decimal.Zero, wrongKind(tok, token.Real)
	}

	v, err := decimal.NewFromString(tok.Text())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: malformed real literal %q: %w", tok.Pos, tok.Text(), err)
	}
	return v, nil
}

// TimeValue decodes a Time literal to nanoseconds.
func TimeValue(tok token.Token) (decimal.Decimal, error) {
	if tok.Kind != token.Time {
		return decimal.Zero, wrongKind(tok, token.Time)
	}

	text := tok.Text()
	split := strings.IndexFunc(text, func(r rune) bool {
		return (r >= 'a' && r <= 'z') && r != 'e'
	})
	if split <= 0 {
		return decimal.Zero, fmt.Errorf("%s: time literal %q has no unit", tok.Pos, text)
	}

	scale, ok := timeUnitScale[text[split:]]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: unknown time unit %q", tok.Pos, text[split:])
	}

	v, err := decimal.NewFromString(text[:split])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: malformed time literal %q: %w", tok.Pos, text, err)
	}
	return v.Mul(scale), nil
}

// BitStringValue decodes a BitString literal.
func BitStringValue(tok token.Token) (BitString, error) {
	if tok.Kind != token.BitString {
		return BitString{}, wrongKind(tok, token.BitString)
	}

	text := tok.Text()
	if len(text) < 3 {
		return BitString{}, fmt.Errorf("%s: malformed bit string literal %q", tok.Pos, text)
	}

	var base, bitsPerDigit int
	switch text[0] {
	case 'b', 'B':
		base, bitsPerDigit = 2, 1
	case 'o', 'O':
		base, bitsPerDigit = 8, 3
	case 'x', 'X':
		base, bitsPerDigit = 16, 4
	default:
		return BitString{}, fmt.Errorf("%s: unknown bit string radix %q", tok.Pos, text[0])
	}

	digits := strings.Trim(text[1:], `"`)
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return BitString{}, fmt.Errorf("%s: malformed bit string literal %q", tok.Pos, text)
	}

	return BitString{Width: len(digits) * bitsPerDigit, Value: v}, nil
}

// StringValue decodes a String literal, resolving \" \\ \n \t and \r. Any
// other escaped byte stands for itself.
func StringValue(tok token.Token) (string, error) {
	if tok.Kind != token.String {
		return "", wrongKind(tok, token.String)
	}

	raw := tok.Pos.Bytes()
	if len(raw) < 2 {
		return "", fmt.Errorf("%s: malformed string literal %q", tok.Pos, raw)
	}
	raw = raw[1 : len(raw)-1]

	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch != '\\' || i+1 == len(raw) {
			sb.WriteByte(ch)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteByte(raw[i])
		}
	}
	return sb.String(), nil
}

// BoolValue decodes a Bool literal.
func BoolValue(tok token.Token) (bool, error) {
	if tok.Kind != token.Bool {
		return false, wrongKind(tok, token.Bool)
	}
	return tok.Text() == "true", nil
}
