package cli

import (
	"errors"
	"strconv"
)

// Exit codes returned through ExitError.
const (
	// ExitNoArguments is used when the program is invoked without any tokens.
	ExitNoArguments = 1
	// ExitUsage is used for unknown flags, missing flag values and surplus positionals.
	ExitUsage = 2
)

// ErrNoArguments is wrapped by the ExitError returned for an empty invocation.
var ErrNoArguments = errors.New("no arguments supplied")

// ExitError is a custom error type that includes a specific exit code.
// Message is printed to standard error by the entrypoint when non-empty.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + strconv.Itoa(e.Code)
}

// Unwrap returns the underlying cause.
func (e *ExitError) Unwrap() error {
	return e.Err
}
