// Package loader reads FBDL source files and lexes them, with optional
// support for following import statements.
//
// The loader supports two modes of operation:
//   - Simple mode: Lexes a single file; its imports are listed but not loaded
//   - Follow mode: Recursively loads every imported file or package directory
//
// When following imports, the loader resolves relative paths from the directory
// of the importing file, falls back to the configured search paths, and visits
// each file only once.
//
// Example usage:
//
//	// Lex a single file without following imports
//	ldr := loader.New()
//	result, err := ldr.Load(ctx, "main.fbd")
//
//	// Lex a file and everything it imports
//	ldr := loader.New(loader.WithFollowImports())
//	result, err := ldr.Load(ctx, "main.fbd")
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fbdl-go/fbdl/lexer"
	"github.com/fbdl-go/fbdl/telemetry"
	"github.com/fbdl-go/fbdl/token"
)

// StdinFilename is the display name used for source read from stdin.
const StdinFilename = "<stdin>"

// Extension is the file extension of FBDL sources.
const Extension = ".fbd"

// Loader handles loading and lexing of FBDL files with optional import resolution.
//
// Configure the loader using functional options passed to New:
//
//	ldr := New(WithFollowImports(), WithSearchPaths("/usr/share/fbdl"))
type Loader struct {
	// FollowImports determines whether to recursively load imported files.
	FollowImports bool

	// SearchPaths are tried, in order, for imports that do not resolve
	// relative to the importing file.
	SearchPaths []string
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithFollowImports configures the loader to recursively load every import.
func WithFollowImports() Option {
	return func(l *Loader) {
		l.FollowImports = true
	}
}

// WithSearchPaths adds directories searched for imports.
func WithSearchPaths(paths ...string) Option {
	return func(l *Loader) {
		l.SearchPaths = append(l.SearchPaths, paths...)
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Unit is one lexed source file.
type Unit struct {
	Filename string // Path as resolved by the loader
	Source   []byte
	Tokens   []token.Token
	Imports  []Import
}

// Result is the outcome of a load.
type Result struct {
	// Root is the absolute path of the file passed to Load, or the
	// filename given to LoadBytes.
	Root string

	// Units holds the root unit first, followed by imported units in the
	// order they were first reached.
	Units []*Unit
}

// TokenCount returns the number of tokens across all units.
func (r *Result) TokenCount() int {
	n := 0
	for _, u := range r.Units {
		n += len(u.Tokens)
	}
	return n
}

// Load reads and lexes filename, following imports when configured.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	root, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %s: %w", filename, err)
	}

	timer := telemetry.StartTimer(ctx, "load "+filepath.Base(filename))
	defer timer.End()
	ctx = telemetry.WithRootTimer(ctx, timer)

	state := &loaderState{
		loader:  l,
		visited: make(map[string]bool),
		result:  &Result{Root: root},
	}

	if err := state.loadFile(ctx, filename, root); err != nil {
		return nil, err
	}
	return state.result, nil
}

// LoadBytes lexes data that was read elsewhere, typically from stdin. When
// following imports, paths resolve relative to the directory of filename;
// data read from stdin cannot import anything.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*Result, error) {
	timer := telemetry.StartTimer(ctx, "load "+filepath.Base(filename))
	defer timer.End()
	ctx = telemetry.WithRootTimer(ctx, timer)

	state := &loaderState{
		loader:  l,
		visited: make(map[string]bool),
		result:  &Result{Root: filename},
	}

	unit, err := lexUnit(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	state.result.Units = append(state.result.Units, unit)

	if !l.FollowImports || len(unit.Imports) == 0 {
		return state.result, nil
	}

	if filename == StdinFilename || filename == "" {
		return nil, errors.New("import statements are not supported when reading from stdin")
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %s: %w", filename, err)
	}
	state.visited[abs] = true

	if err := state.followImports(ctx, unit, filepath.Dir(abs)); err != nil {
		return nil, err
	}
	return state.result, nil
}

// MustLoadBytes is like LoadBytes but panics on error.
func (l *Loader) MustLoadBytes(ctx context.Context, filename string, data []byte) *Result {
	result, err := l.LoadBytes(ctx, filename, data)
	if err != nil {
		panic(err)
	}
	return result
}

// loaderState tracks state during recursive loading.
type loaderState struct {
	loader  *Loader
	visited map[string]bool // Absolute paths of files already loaded
	result  *Result
}

func (s *loaderState) loadFile(ctx context.Context, filename, abs string) error {
	if s.visited[abs] {
		return nil
	}
	s.visited[abs] = true

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	unit, err := lexUnit(ctx, filename, data)
	if err != nil {
		return err
	}
	s.result.Units = append(s.result.Units, unit)

	if !s.loader.FollowImports {
		return nil
	}

	return s.followImports(ctx, unit, filepath.Dir(abs))
}

func (s *loaderState) followImports(ctx context.Context, unit *Unit, baseDir string) error {
	for i := range unit.Imports {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		imp := &unit.Imports[i]
		files, err := s.resolve(imp, baseDir)
		if err != nil {
			return err
		}

		for _, file := range files {
			if err := s.loadFile(ctx, file, file); err != nil {
				return fmt.Errorf("in file %s: %w", unit.Filename, err)
			}
		}
	}
	return nil
}

// resolve maps an import to the absolute paths of the files it pulls in. A
// directory imports every .fbd file directly inside it.
func (s *loaderState) resolve(imp *Import, baseDir string) ([]string, error) {
	dirs := []string{baseDir}
	if !filepath.IsAbs(imp.Path) {
		dirs = append(dirs, s.loader.SearchPaths...)
	}

	for _, dir := range dirs {
		candidate := imp.Path
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(dir, candidate)
		}

		for _, path := range []string{candidate, candidate + Extension} {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
			}
			imp.Resolved = abs

			if !info.IsDir() {
				return []string{abs}, nil
			}
			return packageFiles(abs)
		}
	}

	return nil, &ImportError{
		Filename: imp.Filename,
		Pos:      imp.Pos,
		Message:  fmt.Sprintf("cannot find import %q", imp.Path),
	}
}

func packageFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func lexUnit(ctx context.Context, filename string, data []byte) (*Unit, error) {
	tokens, err := lexer.LexContext(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	imports, err := scanImports(filename, tokens)
	if err != nil {
		return nil, err
	}

	return &Unit{
		Filename: filename,
		Source:   data,
		Tokens:   tokens,
		Imports:  imports,
	}, nil
}
