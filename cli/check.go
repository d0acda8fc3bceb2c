package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/fbdl-go/fbdl/errors"
	"github.com/fbdl-go/fbdl/loader"
)

type CheckCmd struct {
	File       FileOrStdin `help:"FBDL input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	NoImports  bool        `help:"Do not follow import statements."`
	SearchPath []string    `short:"I" help:"Directory searched for imports (repeatable)." env:"FBDL_PATH" sep:":" type:"path"`
	Format     string      `help:"Error output format (${enum})." enum:"text,json" default:"text"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := startTelemetry(context.Background(), ctx, globals, "check", cmd.File.Filename)
	defer reportTelemetry()

	result, err := cmd.File.Load(runCtx, cmd.loader())
	if err != nil {
		if cmd.Format == "json" {
			_, _ = fmt.Fprintln(ctx.Stdout, errors.NewJSONFormatter().FormatAll([]error{err}))
			return NewCommandError(1)
		}

		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(nil).Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "lex error")

		reportTelemetry()
		return NewCommandError(1)
	}

	if cmd.Format == "json" {
		_, _ = fmt.Fprintln(ctx.Stdout, "[]")
		return nil
	}

	printSuccess(ctx.Stdout, "Check passed")
	printInfof(ctx.Stdout, "%d file(s), %d tokens", len(result.Units), result.TokenCount())

	return nil
}

func (cmd *CheckCmd) loader() *loader.Loader {
	opts := []loader.Option{loader.WithSearchPaths(cmd.SearchPath...)}
	if !cmd.NoImports {
		opts = append(opts, loader.WithFollowImports())
	}
	return loader.New(opts...)
}
