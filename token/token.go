// Package token defines the lexical vocabulary of FBDL: token kinds, their
// canonical spellings and categories, and the source positions attached to
// every token produced by the lexer.
package token

import "fmt"

// Kind represents the type of token scanned from the input.
type Kind uint8

const (
	// Invalid only ever appears in the implicated tokens of an error.
	Invalid Kind = iota

	// Structural
	Comment
	Indent
	Dedent
	Newline
	Eof

	// Identifiers
	Identifier
	QualifiedIdentifier

	// Literals
	Bool
	Int
	Real
	String
	BitString // b"101", o"705", x"beef"
	Time

	// Operators and punctuation
	Negation         // !
	Assignment       // =
	Addition         // +
	Subtraction      // -
	Multiplication   // *
	Division         // /
	Modulo           // %
	Exponent         // **
	Equality         // ==
	NonEquality      // !=
	Less             // <
	LessEqual        // <=
	Greater          // >
	GreaterEqual     // >=
	And              // &&
	Or               // ||
	LeftShift        // <<
	RightShift       // >>
	BitAnd           // &
	BitOr            // |
	BitXor           // ^
	LeftParenthesis  // (
	RightParenthesis // )
	LeftBracket      // [
	RightBracket     // ]
	Comma            // ,
	Semicolon        // ;

	// Language keywords
	Const
	Import
	Type

	// Functionality keywords
	Block
	Bus
	Config
	Irq
	Mask
	Memory
	Param
	Proc
	Return
	Static
	Status
	Stream

	// Property keywords
	Access
	AddEnable
	Atomic
	ByteWriteEnable
	Clear
	Delay
	EnableInitValue
	EnableResetValue
	Groups
	InitValue
	InTrigger
	Masters
	OutTrigger
	Range
	ReadLatency
	ReadValue
	Reset
	ResetValue
	Size
	Width
	Period

	kindCount
)

// Category groups kinds for table-driven lookups.
type Category uint8

const (
	Structural Category = iota
	Name
	Literal
	Operator
	LanguageKeyword
	FunctionalityKeyword
	PropertyKeyword
)

var categoryNames = [...]string{
	Structural:           "structural",
	Name:                 "identifier",
	Literal:              "literal",
	Operator:             "operator",
	LanguageKeyword:      "language keyword",
	FunctionalityKeyword: "functionality keyword",
	PropertyKeyword:      "property keyword",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Token represents a lexical token. The text is not copied out of the
// source; Pos references the buffer and materializes it on demand.
type Token struct {
	Kind Kind
	Pos  Position
}

// Text returns the lexeme.
func (t Token) Text() string {
	return t.Pos.Text()
}

// IsSynthetic reports whether the token was derived by the indentation
// engine or the end of input rather than scanned from a lexeme.
func (t Token) IsSynthetic() bool {
	switch t.Kind {
	case Indent, Dedent, Eof:
		return true
	}
	return false
}

func (t Token) String() string {
	return fmt.Sprintf("%s %d:%d %q", t.Kind, t.Pos.Line, t.Pos.Column, t.Text())
}
