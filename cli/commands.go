package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/fbdl-go/fbdl/output"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations."`
	Color     string `help:"When to use color (${enum})." enum:"auto,never" default:"auto"`
}

// AfterApply disables color before any command runs when asked to.
func (g *Globals) AfterApply() error {
	if g.Color == "never" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

func (g *Globals) styles(w io.Writer) *output.Styles {
	if g.Color == "never" {
		return output.NewPlainStyles(w)
	}
	return output.NewStyles(w)
}

type Commands struct {
	Globals

	Lex      LexCmd      `cmd:"" help:"Show lexical tokens from an FBDL file."`
	Check    CheckCmd    `cmd:"" help:"Lex an FBDL file and everything it imports."`
	Compile  CompileCmd  `cmd:"" passthrough:"" help:"Lex a design using the classic argument syntax: [-main <name>] [-c [path]] [-r [path]] [-t] [-d] <file.fbd>."`
	Watch    WatchCmd    `cmd:"" help:"Re-check FBDL files whenever they change."`
	Keywords KeywordsCmd `cmd:"" help:"List the reserved words and operators of the language."`
}
