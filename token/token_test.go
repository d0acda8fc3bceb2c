package token

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		Comma:           ",",
		Exponent:        "**",
		Identifier:      "IDENT",
		Eof:             "EOF",
		ByteWriteEnable: "byte_write_enable",
		Kind(250):       "UNKNOWN",
	}

	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}

func TestVocabularyCoversEveryKind(t *testing.T) {
	seen := map[Kind]bool{}
	for _, e := range vocabulary {
		assert.False(t, seen[e.kind], "duplicate row for %d", e.kind)
		seen[e.kind] = true
	}
	assert.Equal(t, int(kindCount), len(seen))
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word     string
		want     Kind
		category Category
	}{
		{"const", Const, LanguageKeyword},
		{"import", Import, LanguageKeyword},
		{"type", Type, LanguageKeyword},
		{"bus", Bus, FunctionalityKeyword},
		{"stream", Stream, FunctionalityKeyword},
		{"return", Return, FunctionalityKeyword},
		{"add_enable", AddEnable, PropertyKeyword},
		{"read_latency", ReadLatency, PropertyKeyword},
		{"period", Period, PropertyKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := LookupKeyword([]byte(tt.word))
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.category, got.Category())
			assert.True(t, got.IsKeyword())
		})
	}

	got, ok := LookupKeyword([]byte("Bus"))
	assert.False(t, ok)
	assert.Equal(t, Identifier, got)
}

func TestLookupOperator(t *testing.T) {
	got, ok := LookupOperator([]byte("<<"))
	assert.True(t, ok)
	assert.Equal(t, LeftShift, got)

	_, ok = LookupOperator([]byte("<>"))
	assert.False(t, ok)
}

func TestKeywordCounts(t *testing.T) {
	assert.Equal(t, 3, len(Keywords(LanguageKeyword)))
	assert.Equal(t, 12, len(Keywords(FunctionalityKeyword)))
	assert.Equal(t, 21, len(Keywords(PropertyKeyword)))
	assert.Equal(t, 27, len(Keywords(Operator)))
}

func TestPosition(t *testing.T) {
	src := []byte("bus main\n")

	pos := Position{Start: 4, End: 7, Line: 1, Column: 5, Src: src}
	assert.Equal(t, "main", pos.Text())
	assert.Equal(t, 4, pos.Len())
	assert.False(t, pos.IsEmpty())
	assert.Equal(t, "1:5", pos.String())

	empty := Position{Start: 9, End: 8, Line: 2, Column: 1, Src: src}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "", empty.Text())

	outOfRange := Position{Start: 8, End: 20, Src: src}
	assert.Equal(t, "", outOfRange.Text())
}

func TestTokenIsSynthetic(t *testing.T) {
	assert.True(t, Token{Kind: Dedent}.IsSynthetic())
	assert.True(t, Token{Kind: Eof}.IsSynthetic())
	assert.False(t, Token{Kind: Newline}.IsSynthetic())
	assert.False(t, Token{Kind: Comment}.IsSynthetic())
}
