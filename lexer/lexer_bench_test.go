package lexer

import (
	"bytes"
	"os"
	"testing"
)

func BenchmarkLexUART(b *testing.B) {
	data, err := os.ReadFile("testdata/uart.fbd")
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexLarge(b *testing.B) {
	unit, err := os.ReadFile("testdata/uart.fbd")
	if err != nil {
		b.Fatal(err)
	}
	data := bytes.Repeat(unit, 500)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(data); err != nil {
			b.Fatal(err)
		}
	}
}
