package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"golang.org/x/exp/slices"

	"github.com/fbdl-go/fbdl/token"
)

var keywordCategories = map[string]token.Category{
	"language":      token.LanguageKeyword,
	"functionality": token.FunctionalityKeyword,
	"property":      token.PropertyKeyword,
	"operator":      token.Operator,
}

var categoryNames = []string{"language", "functionality", "property", "operator"}

type KeywordsCmd struct {
	Category []string `arg:"" optional:"" help:"Categories to list (language, functionality, property, operator). Defaults to all."`
}

func (cmd *KeywordsCmd) Run(ctx *kong.Context, globals *Globals) error {
	names := cmd.Category
	if len(names) == 0 {
		names = categoryNames
	}

	styles := globals.styles(ctx.Stdout)
	for i, name := range names {
		category, ok := keywordCategories[name]
		if !ok {
			printError(ctx.Stderr, fmt.Sprintf("unknown category %q%s", name, didYouMean(name, categoryNames)))
			return NewCommandError(2)
		}

		words := token.Keywords(category)
		slices.Sort(words)

		if i > 0 {
			_, _ = fmt.Fprintln(ctx.Stdout)
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%s (%d)\n", styles.Keyword(category.String()), len(words))
		_, _ = fmt.Fprintf(ctx.Stdout, "  %s\n", strings.Join(words, " "))
	}

	return nil
}
