// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/fbdl-go/fbdl/token"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer. Color is
// only emitted when the writer is a terminal that supports it.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// NewPlainStyles creates a Styles instance that never emits escape codes.
func NewPlainStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)),
	}
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Timing returns a styled timing string. Slow operations are red,
// everything else is dimmed.
func (s *Styles) Timing(text string, isSlowOperation bool) string {
	if isSlowOperation {
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			String()
	}
	return s.Dim(text)
}

// Kind styles a token kind name by its category: keywords bold blue,
// literals magenta, identifiers yellow, structural tokens dimmed.
func (s *Styles) Kind(kind token.Kind, text string) string {
	switch kind.Category() {
	case token.LanguageKeyword, token.FunctionalityKeyword, token.PropertyKeyword:
		return s.output.String(text).
			Foreground(s.output.Color("4")).
			Bold().
			String()
	case token.Literal:
		return s.output.String(text).
			Foreground(s.output.Color("5")).
			String()
	case token.Name:
		return s.output.String(text).
			Foreground(s.output.Color("3")).
			String()
	case token.Structural:
		return s.Dim(text)
	}
	return text
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
