package cli

import (
	stdErrors "errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fbdl-go/fbdl/errors"
	"github.com/fbdl-go/fbdl/token"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

type positional interface {
	Position() token.Position
	Error() string
}

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context. A nil
// source falls back to the buffer the error's position refers to.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	var e positional
	if !stdErrors.As(err, &e) {
		return err.Error()
	}

	pos := e.Position()
	source := r.source
	if source == nil {
		source = pos.Src
	}
	if source == nil {
		return err.Error()
	}

	return r.renderWithSourceContext(pos, err.Error(), source)
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(r.Render(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

func (r *ErrorRenderer) renderWithSourceContext(pos token.Position, message string, sourceContent []byte) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(message))
	buf.WriteString("\n\n")

	for _, line := range errors.Context(pos, sourceContent) {
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(line.Text))
		buf.WriteByte('\n')

		if line.Caret != "" {
			buf.WriteString("   ")
			buf.WriteString(errCaretStyle.Render(line.Caret))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}
