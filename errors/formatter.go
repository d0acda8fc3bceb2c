// Package errors provides error formatting infrastructure for FBDL diagnostics.
// It separates error formatting from the lexer, allowing errors to be rendered in
// multiple formats (text, JSON) for different consumers (CLI, editors, CI).
//
// The package defines a Formatter interface and provides two implementations:
//   - TextFormatter: Formats errors for command-line output with a source snippet
//   - JSONFormatter: Formats errors as structured JSON for tools
//
// Error types remain in their respective packages (e.g., lexer), while this
// package handles the presentation layer.
package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/fbdl-go/fbdl/lexer"
	"github.com/fbdl-go/fbdl/token"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// positional is implemented by errors that know where they happened.
type positional interface {
	Position() token.Position
	Error() string
}

// TextFormatter formats errors for command-line output.
type TextFormatter struct {
	sourceContent []byte // Optional source content, overrides the error's own buffer
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the source content for error context.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.sourceContent = source
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error as "file:line:column: message" followed by
// the surrounding source lines and a caret run under the offending span.
func (tf *TextFormatter) Format(err error) string {
	var e positional
	if !stderrors.As(err, &e) {
		return err.Error()
	}

	pos := e.Position()
	source := tf.sourceContent
	if source == nil {
		source = pos.Src
	}
	if source == nil {
		return err.Error()
	}

	return tf.formatWithSourceContext(pos, err.Error(), source)
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

func (tf *TextFormatter) formatWithSourceContext(pos token.Position, message string, source []byte) string {
	var buf bytes.Buffer

	buf.WriteString(message)
	buf.WriteString("\n\n")

	for _, line := range Context(pos, source) {
		buf.WriteString("   ")
		buf.WriteString(line.Text)
		buf.WriteByte('\n')

		if line.Caret != "" {
			buf.WriteString("   ")
			buf.WriteString(line.Caret)
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string        `json:"type"`
	Kind     string        `json:"kind,omitempty"`
	Message  string        `json:"message"`
	Position *PositionJSON `json:"position,omitempty"`
}

// PositionJSON represents a source position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}

	var lexErr *lexer.Error
	if stderrors.As(err, &lexErr) {
		errJSON.Type = fmt.Sprintf("%T", lexErr)
		errJSON.Kind = lexErr.Kind.String()
		errJSON.Message = lexErr.Message
	}

	var e positional
	if stderrors.As(err, &e) {
		pos := e.Position()
		errJSON.Position = &PositionJSON{
			Line:   pos.Line,
			Column: pos.Column,
			Start:  pos.Start,
			End:    pos.End,
		}
		if f, ok := e.(interface{ GetFilename() string }); ok {
			errJSON.Position.Filename = f.GetFilename()
		}
	}

	return errJSON
}
