package script

import "errors"

// Errors for script state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("script state is closed")

	// ErrExecutionTimeout is returned when a script runs past its timeout.
	ErrExecutionTimeout = errors.New("script execution timeout")

	// ErrNotFunction is returned by Call when the global is not a function.
	ErrNotFunction = errors.New("not a function")
)
