package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fbdl-go/fbdl/cli"
)

var cmdline struct {
	Version kong.VersionFlag `help:"Show version information"`
	cli.Commands
}

func main() {
	ctx := kong.Parse(&cmdline,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("fbdl"),
		kong.Description("Lexer and tooling for the Functional Bus Description Language."),
		kong.UsageOnError(),
		kong.Bind(&cmdline.Globals),
	)

	err := ctx.Run()

	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}

// buildVersion reports the version set via ldflags on the cli package.
func buildVersion() string {
	version := cli.Version
	if version == "" {
		version = "dev"
	}
	if cli.CommitSHA == "" {
		return version
	}
	return fmt.Sprintf("%s (%s)", version, cli.CommitSHA)
}
