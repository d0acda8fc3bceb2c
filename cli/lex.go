package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/fbdl-go/fbdl/lexer"
	"github.com/fbdl-go/fbdl/loader"
	"github.com/fbdl-go/fbdl/output"
	"github.com/fbdl-go/fbdl/token"
)

type LexCmd struct {
	File   FileOrStdin `help:"FBDL input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Values bool        `help:"Show decoded values of literal tokens."`
	Output string      `short:"o" help:"Write tokens to a file instead of stdout." type:"path"`
	Force  bool        `short:"f" help:"Overwrite the output file without asking."`
	Debug  bool        `help:"Dump tokens as Go values."`
}

func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(context.Background(), ctx, globals, "lex", cmd.File.Filename)
	defer reportTelemetry()

	result, err := cmd.File.Load(runCtx, loader.New())
	if err != nil {
		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(nil).Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "lex error")

		reportTelemetry()
		return NewCommandError(1)
	}

	w := ctx.Stdout
	styles := globals.styles(ctx.Stdout)

	if cmd.Output != "" {
		ok, err := cmd.confirmOverwrite()
		if err != nil {
			return err
		}
		if !ok {
			printError(ctx.Stderr, fmt.Sprintf("%s already exists, use --force to overwrite", cmd.Output))
			return NewCommandError(1)
		}

		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", cmd.Output, err)
		}
		defer func() { _ = f.Close() }()

		w = f
		styles = output.NewPlainStyles(f)
	}

	tokens := result.Units[0].Tokens
	if cmd.Debug {
		repr.New(w, repr.Indent("  ")).Println(debugTokens(tokens))
	} else if err := cmd.writeTokens(w, styles, tokens); err != nil {
		return err
	}

	if cmd.Output != "" {
		printSuccess(ctx.Stderr, fmt.Sprintf("Wrote %d tokens to %s", len(tokens)-1, pathStyle.Render(cmd.Output)))
	}

	return nil
}

// confirmOverwrite reports whether the output file may be written.
func (cmd *LexCmd) confirmOverwrite() (bool, error) {
	if cmd.Force {
		return true, nil
	}
	if _, err := os.Stat(cmd.Output); os.IsNotExist(err) {
		return true, nil
	}
	return promptYesNo(fmt.Sprintf("%s already exists. Overwrite?", cmd.Output))
}

func (cmd *LexCmd) writeTokens(w io.Writer, styles *output.Styles, tokens []token.Token) error {
	for _, tok := range tokens {
		if tok.Kind == token.Eof {
			break
		}

		kind := styles.Kind(tok.Kind, fmt.Sprintf("%-18s", tok.Kind))
		if _, err := fmt.Fprintf(w, "%s %d:%d    %q", kind, tok.Pos.Line, tok.Pos.Column, tok.Text()); err != nil {
			return err
		}

		if cmd.Values && tok.Kind.Category() == token.Literal {
			value, err := literalValue(tok)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "  %s", styles.Dim("= "+value)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// literalValue renders the decoded value of a literal token.
func literalValue(tok token.Token) (string, error) {
	switch tok.Kind {
	case token.Bool:
		v, err := lexer.BoolValue(tok)
		return strconv.FormatBool(v), err
	case token.Int:
		v, err := lexer.IntValue(tok)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case token.Real:
		v, err := lexer.RealValue(tok)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	case token.Time:
		v, err := lexer.TimeValue(tok)
		if err != nil {
			return "", err
		}
		return v.String() + "ns", nil
	case token.String:
		v, err := lexer.StringValue(tok)
		if err != nil {
			return "", err
		}
		return strconv.Quote(v), nil
	case token.BitString:
		v, err := lexer.BitStringValue(tok)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d bits 0x%s", v.Width, v.Value.Text(16)), nil
	}
	return "", fmt.Errorf("%s: %s is not a literal", tok.Pos, tok.Kind)
}

type debugToken struct {
	Kind   string
	Text   string
	Start  int
	End    int
	Line   int
	Column int
}

// debugTokens strips the source buffer from positions so dumps stay readable.
func debugTokens(tokens []token.Token) []debugToken {
	out := make([]debugToken, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, debugToken{
			Kind:   tok.Kind.String(),
			Text:   tok.Text(),
			Start:  tok.Pos.Start,
			End:    tok.Pos.End,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}
	return out
}
