package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/fbdl-go/fbdl/loader"
)

type WatchCmd struct {
	File       string        `arg:"" help:"FBDL file to watch." type:"existingfile"`
	SearchPath []string      `short:"I" help:"Directory searched for imports (repeatable)." env:"FBDL_PATH" sep:":" type:"path"`
	Debounce   time.Duration `help:"Quiet period after a change before re-checking." default:"100ms"`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	return cmd.watch(runCtx, w, ctx.Stdout, ctx.Stderr)
}

// watch checks the file once, then again whenever the file or anything it
// imports changes, until ctx is done.
func (cmd *WatchCmd) watch(ctx context.Context, w *fsnotify.Watcher, stdout, stderr io.Writer) error {
	root, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path for %s: %w", cmd.File, err)
	}

	files := map[string]bool{root: true}
	dirs := map[string]bool{}

	rerun := func() error {
		_, loaded := cmd.check(ctx, stdout, stderr)
		for _, f := range loaded {
			files[f] = true
		}
		for f := range files {
			dir := filepath.Dir(f)
			if dirs[dir] {
				continue
			}
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
		return nil
	}

	if err := rerun(); err != nil {
		return err
	}
	printInfof(stdout, "Watching %d file(s) for changes", len(files))

	timer := time.NewTimer(cmd.Debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			printError(stderr, err.Error())

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Atomic saves show up as Rename or Create
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err != nil || !files[abs] {
				continue
			}
			timer.Reset(cmd.Debounce)

		case <-timer.C:
			if err := rerun(); err != nil {
				return err
			}
		}
	}
}

// check loads the file with its imports and reports the outcome. It returns
// the absolute paths of every file that was loaded.
func (cmd *WatchCmd) check(ctx context.Context, stdout, stderr io.Writer) (CommandResult, []string) {
	ldr := loader.New(loader.WithFollowImports(), loader.WithSearchPaths(cmd.SearchPath...))

	result, err := ldr.Load(ctx, cmd.File)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, NewErrorRenderer(nil).Render(err))
		printError(stderr, "lex error")
		return Failure(err), nil
	}

	files := make([]string, 0, len(result.Units))
	for _, unit := range result.Units {
		if abs, err := filepath.Abs(unit.Filename); err == nil {
			files = append(files, abs)
		}
	}

	printSuccess(stdout, fmt.Sprintf("Check passed (%d file(s), %d tokens)", len(result.Units), result.TokenCount()))
	return Success(), files
}
