package loader

import (
	"fmt"

	"github.com/fbdl-go/fbdl/lexer"
	"github.com/fbdl-go/fbdl/token"
)

// Import is an import statement:
//
//	import "path"
//	import name "path"
type Import struct {
	Name     string         // Optional alias, empty when absent
	Path     string         // Decoded path literal
	Resolved string         // Absolute path, set once the import is followed
	Filename string         // File containing the statement
	Pos      token.Position // Position of the path literal
}

// ImportError reports a malformed or unresolvable import.
type ImportError struct {
	Filename string
	Pos      token.Position
	Message  string
}

func (e *ImportError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

// Position returns where the error was found.
func (e *ImportError) Position() token.Position {
	return e.Pos
}

// GetFilename returns the file the error was found in.
func (e *ImportError) GetFilename() string {
	return e.Filename
}

// scanImports collects the import statements that open a logical line.
func scanImports(filename string, tokens []token.Token) ([]Import, error) {
	var imports []Import
	lineStart := true

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case token.Newline, token.Indent, token.Dedent:
			lineStart = true
			continue
		case token.Comment:
			continue
		case token.Import:
			if lineStart {
				break
			}
			fallthrough
		default:
			lineStart = false
			continue
		}

		imp, next, err := parseImport(filename, tokens, i+1)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
		i = next - 1
		lineStart = false
	}

	return imports, nil
}

// parseImport reads the rest of an import statement starting at tokens[i]
// and returns the index of the first token after it.
func parseImport(filename string, tokens []token.Token, i int) (Import, int, error) {
	imp := Import{Filename: filename}

	if tokens[i].Kind == token.Identifier {
		imp.Name = tokens[i].Text()
		i++
	}

	tok := tokens[i]
	if tok.Kind != token.String {
		return imp, i, importError(filename, tok, "expected import path, found %s", describe(tok))
	}

	path, err := lexer.StringValue(tok)
	if err != nil {
		return imp, i, importError(filename, tok, "%v", err)
	}
	if path == "" {
		return imp, i, importError(filename, tok, "empty import path")
	}
	imp.Path = path
	imp.Pos = tok.Pos
	i++

	switch next := tokens[i]; next.Kind {
	case token.Newline, token.Eof, token.Comment, token.Dedent:
	default:
		return imp, i, importError(filename, next, "unexpected %s after import path", describe(next))
	}

	return imp, i, nil
}

func importError(filename string, tok token.Token, format string, a ...any) *ImportError {
	return &ImportError{Filename: filename, Pos: tok.Pos, Message: fmt.Sprintf(format, a...)}
}

func describe(tok token.Token) string {
	if tok.IsSynthetic() || tok.Kind == token.Newline {
		return "end of line"
	}
	return fmt.Sprintf("%q", tok.Text())
}
