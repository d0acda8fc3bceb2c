package cli

import (
	"errors"
	"fmt"
)

// CommandError carries the process exit code of a failed command. Commands
// print their own diagnostics and return it; main turns it into os.Exit.
//
// Exit codes: 1 for lexical and import errors, 2 for usage errors.
type CommandError struct {
	exitCode int
}

// NewCommandError creates a new CommandError with the given exit code.
func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed with exit code %d", e.exitCode)
}

// ExitCode returns the exit code associated with this error.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}

// CommandResult is the outcome of one run of a repeating command, such as a
// single check inside watch.
type CommandResult struct {
	ExitCode int
	Err      error
}

// Success returns a CommandResult indicating successful execution.
func Success() CommandResult {
	return CommandResult{ExitCode: 0}
}

// Failure returns a failed CommandResult. The exit code is taken from a
// wrapped CommandError, and is 1 otherwise.
func Failure(err error) CommandResult {
	code := 1
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		code = cmdErr.ExitCode()
	}
	return CommandResult{ExitCode: code, Err: err}
}
