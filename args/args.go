// Package args parses the single-dash argument grammar of the compile
// command:
//
//	fbdl compile [-main <name>] [-c [path]] [-r [path]] [-t] [-d] <file.fbd>
//
// Parsing is a finite state machine over the argument list. The last
// argument is always the path to the .fbd file.
package args

import (
	"errors"
	"fmt"
)

// Param is a parameter that takes an argument.
type Param uint8

const (
	Main Param = iota
	ConstsDumpPath
	RegResultsPath
)

func (p Param) String() string {
	switch p {
	case Main:
		return "-main"
	case ConstsDumpPath:
		return "-c"
	case RegResultsPath:
		return "-r"
	}
	return "-?"
}

var params = map[string]Param{
	"-main": Main,
	"-c":    ConstsDumpPath,
	"-r":    RegResultsPath,
}

// argKind is how a parameter consumes its argument.
var argKind = map[Param]StateKind{
	Main:           ExpectingRequiredArg,
	ConstsDumpPath: ExpectingOptionalArg,
	RegResultsPath: ExpectingOptionalArg,
}

var flags = map[string]func(*Args){
	"-t": func(a *Args) { a.Timestamp = true },
	"-d": func(a *Args) { a.Debug = true },
}

// StateKind enumerates the parser states.
type StateKind uint8

const (
	ExpectingFlagOrParam StateKind = iota
	ExpectingRequiredArg
	ExpectingOptionalArg
)

func (k StateKind) String() string {
	switch k {
	case ExpectingFlagOrParam:
		return "ExpectingFlagOrParam"
	case ExpectingRequiredArg:
		return "ExpectingRequiredArg"
	case ExpectingOptionalArg:
		return "ExpectingOptionalArg"
	}
	return "Unknown"
}

// State is the parser state. Param is only meaningful when an argument is
// expected.
type State struct {
	Kind  StateKind
	Param Param
}

func (s State) String() string {
	if s.Kind == ExpectingFlagOrParam {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Param)
}

// Dump is a request for an auxiliary output. An empty Path selects the
// default location.
type Dump struct {
	Enabled bool
	Path    string
}

// Args is the result of a successful parse.
type Args struct {
	Main       string
	Consts     Dump
	RegResults Dump
	Timestamp  bool
	Debug      bool
	Path       string
}

// Defaults returns the arguments used when nothing is overridden.
func Defaults() Args {
	return Args{Main: "main"}
}

var (
	ErrMissingPath        = errors.New("missing path")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrUnexpectedArgument = errors.New("unexpected argument")
)

// Error is a parse failure. It unwraps to one of the Err* sentinels.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func fail(sentinel error, format string, a ...any) *Error {
	return &Error{Err: sentinel, Message: fmt.Sprintf(format, a...)}
}

// input classifies one argument.
type input uint8

const (
	inputParam input = iota
	inputFlag
	inputArg
	inputUnknown
)

func classify(arg string) input {
	if _, ok := params[arg]; ok {
		return inputParam
	}
	if _, ok := flags[arg]; ok {
		return inputFlag
	}
	if len(arg) > 1 && arg[0] == '-' {
		return inputUnknown
	}
	return inputArg
}

type transition func(s State, arg string, a *Args) (State, error)

// transitions is indexed by state kind and input class.
var transitions = [3][4]transition{
	ExpectingFlagOrParam: {
		inputParam:   enterParam,
		inputFlag:    setFlag,
		inputArg:     unexpectedArgument,
		inputUnknown: unknownParameter,
	},
	ExpectingRequiredArg: {
		inputParam:   missingArgument,
		inputFlag:    missingArgument,
		inputArg:     takeArgument,
		inputUnknown: missingArgument,
	},
	ExpectingOptionalArg: {
		inputParam:   enterParam,
		inputFlag:    setFlag,
		inputArg:     takeArgument,
		inputUnknown: unknownParameter,
	},
}

func enterParam(_ State, arg string, a *Args) (State, error) {
	p := params[arg]
	kind := argKind[p]
	switch p {
	case ConstsDumpPath:
		a.Consts = Dump{Enabled: true}
	case RegResultsPath:
		a.RegResults = Dump{Enabled: true}
	}
	return State{Kind: kind, Param: p}, nil
}

func setFlag(_ State, arg string, a *Args) (State, error) {
	flags[arg](a)
	return State{Kind: ExpectingFlagOrParam}, nil
}

func takeArgument(s State, arg string, a *Args) (State, error) {
	switch s.Param {
	case Main:
		a.Main = arg
	case ConstsDumpPath:
		a.Consts.Path = arg
	case RegResultsPath:
		a.RegResults.Path = arg
	}
	return State{Kind: ExpectingFlagOrParam}, nil
}

func missingArgument(s State, arg string, _ *Args) (State, error) {
	return s, fail(ErrMissingArgument, "expected argument for parameter '%s', found parameter '%s'", s.Param, arg)
}

func unexpectedArgument(s State, arg string, _ *Args) (State, error) {
	return s, fail(ErrUnexpectedArgument, "unexpected argument '%s'", arg)
}

func unknownParameter(s State, arg string, _ *Args) (State, error) {
	return s, fail(ErrUnknownParameter, "unknown parameter '%s'", arg)
}

// Step feeds one argument to the state machine.
func Step(s State, arg string, a *Args) (State, error) {
	return transitions[s.Kind][classify(arg)](s, arg, a)
}

// Parse parses argv, which excludes the program and command names.
func Parse(argv []string) (Args, error) {
	a := Defaults()

	if len(argv) == 0 {
		return a, fail(ErrMissingPath, "missing path to .fbd file")
	}

	state := State{Kind: ExpectingFlagOrParam}
	for _, arg := range argv[:len(argv)-1] {
		var err error
		if state, err = Step(state, arg, &a); err != nil {
			return a, err
		}
	}

	if state.Kind == ExpectingRequiredArg {
		return a, fail(ErrMissingArgument, "missing path to .fbd file or argument for parameter '%s'", state.Param)
	}

	last := argv[len(argv)-1]
	if classify(last) != inputArg {
		if _, err := Step(state, last, &a); err != nil {
			return a, err
		}
		return a, fail(ErrMissingPath, "missing path to .fbd file")
	}

	a.Path = last
	return a, nil
}
