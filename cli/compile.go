package cli

import (
	"context"
	stdErrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/fbdl-go/fbdl/args"
	"github.com/fbdl-go/fbdl/loader"
	"github.com/fbdl-go/fbdl/token"
)

const compileUsage = "usage: fbdl compile [-main <name>] [-c [path]] [-r [path]] [-t] [-d] <file.fbd>"

type CompileCmd struct {
	Args []string `arg:"" optional:"" help:"Compiler arguments, see the command summary."`
}

func (cmd *CompileCmd) Run(ctx *kong.Context, globals *Globals) error {
	a, err := args.Parse(cmd.Args)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		_, _ = fmt.Fprintln(ctx.Stderr, compileUsage)
		return NewCommandError(2)
	}

	if a.Debug {
		repr.New(ctx.Stderr, repr.Indent("  ")).Println(a)
	}

	file := FileOrStdin{Filename: a.Path}
	if a.Path == "-" {
		if err := file.readStdin(); err != nil {
			return err
		}
	}

	runCtx, reportTelemetry := startTelemetry(context.Background(), ctx, globals, "compile", file.Filename)
	defer reportTelemetry()

	ldr := loader.New(loader.WithFollowImports(), loader.WithSearchPaths(searchPathsFromEnv()...))
	result, err := file.Load(runCtx, ldr)
	if err != nil {
		var pathErr *os.PathError
		if stdErrors.As(err, &pathErr) {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}

		_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(nil).Render(err))
		_, _ = fmt.Fprintln(ctx.Stderr)
		printError(ctx.Stderr, "lex error")

		reportTelemetry()
		return NewCommandError(1)
	}

	root := result.Units[0]
	decl, ok := findDeclaration(root.Tokens, a.Main)
	if !ok {
		var candidates []string
		for _, tok := range topLevelNames(root.Tokens) {
			candidates = append(candidates, tok.Text())
		}
		printError(ctx.Stderr, fmt.Sprintf("%s: no top-level declaration named '%s'%s",
			root.Filename, a.Main, didYouMean(a.Main, candidates)))
		return NewCommandError(1)
	}

	summary := fmt.Sprintf("Lexed %d file(s), %d tokens; main bus '%s' declared at %s:%s",
		len(result.Units), result.TokenCount(), a.Main, pathStyle.Render(root.Filename), decl.Pos)
	if a.Timestamp {
		summary = fmt.Sprintf("[%s] %s", time.Now().Format(time.RFC3339), summary)
	}
	printSuccess(ctx.Stdout, summary)

	styles := globals.styles(ctx.Stderr)
	for _, dump := range []struct {
		name string
		req  args.Dump
	}{
		{"constants", a.Consts},
		{"register results", a.RegResults},
	} {
		if !dump.req.Enabled {
			continue
		}
		path := "default location"
		if dump.req.Path != "" {
			path = styles.FilePath(dump.req.Path)
		}
		_, _ = fmt.Fprintf(ctx.Stderr, "%s skipping %s dump (%s): elaboration is not part of this build\n",
			styles.Warning("warning:"), dump.name, path)
	}

	return nil
}

// topLevelNames returns the identifiers that start a line at indentation
// level zero, outside brackets.
func topLevelNames(tokens []token.Token) []token.Token {
	var names []token.Token
	depth := 0
	lineStart := true
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Indent:
			depth++
			continue
		case token.Dedent:
			depth--
			continue
		case token.Newline:
			lineStart = true
			continue
		case token.Comment:
			continue
		}

		if lineStart && depth == 0 && tok.Kind == token.Identifier {
			names = append(names, tok)
		}
		lineStart = false
	}
	return names
}

// findDeclaration returns the top-level identifier spelled name.
func findDeclaration(tokens []token.Token, name string) (token.Token, bool) {
	for _, tok := range topLevelNames(tokens) {
		if tok.Text() == name {
			return tok, true
		}
	}
	return token.Token{}, false
}

// searchPathsFromEnv splits FBDL_PATH into import search directories.
func searchPathsFromEnv() []string {
	value := os.Getenv("FBDL_PATH")
	if value == "" {
		return nil
	}
	return filepath.SplitList(value)
}
