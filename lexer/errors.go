package lexer

import (
	"errors"
	"fmt"

	"github.com/fbdl-go/fbdl/token"
)

// ErrorKind classifies a lexical error.
type ErrorKind uint8

const (
	InvalidCharacter ErrorKind = iota
	InvalidNumberLiteral
	UnterminatedLiteral
	RedundantPunctuation
	UnmatchedDedent
)

var errorKindNames = [...]string{
	InvalidCharacter:     "InvalidCharacter",
	InvalidNumberLiteral: "InvalidNumberLiteral",
	UnterminatedLiteral:  "UnterminatedLiteral",
	RedundantPunctuation: "RedundantPunctuation",
	UnmatchedDedent:      "UnmatchedDedent",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "UnknownError"
}

// Sentinels for errors.Is. Every *Error unwraps to the one matching its kind.
var (
	ErrInvalidCharacter     = errors.New("invalid character")
	ErrInvalidNumberLiteral = errors.New("invalid number literal")
	ErrUnterminatedLiteral  = errors.New("unterminated literal")
	ErrRedundantPunctuation = errors.New("redundant punctuation")
	ErrUnmatchedDedent      = errors.New("unmatched dedent")
)

var sentinels = [...]error{
	InvalidCharacter:     ErrInvalidCharacter,
	InvalidNumberLiteral: ErrInvalidNumberLiteral,
	UnterminatedLiteral:  ErrUnterminatedLiteral,
	RedundantPunctuation: ErrRedundantPunctuation,
	UnmatchedDedent:      ErrUnmatchedDedent,
}

// Error is a lexical error. Scanning stops at the first one.
type Error struct {
	Kind     ErrorKind
	Message  string
	Tokens   []token.Token // Implicated tokens, usually just the offending one
	Filename string
}

func (e *Error) Error() string {
	pos := e.Position()
	if e.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, pos.Line, pos.Column, e.Message)
}

// Position returns the position of the primary implicated token.
func (e *Error) Position() token.Position {
	if len(e.Tokens) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return e.Tokens[0].Pos
}

// GetFilename returns the file the error was found in, if known.
func (e *Error) GetFilename() string {
	return e.Filename
}

func (e *Error) Unwrap() error {
	if int(e.Kind) < len(sentinels) {
		return sentinels[e.Kind]
	}
	return nil
}

func newError(kind ErrorKind, msg string, toks ...token.Token) *Error {
	return &Error{Kind: kind, Message: msg, Tokens: toks}
}
