package operand

import (
	"errors"
	"fmt"
)

// ErrType is matched by every operand type error.
var ErrType = errors.New("operand type error")

// TypeError reports an operand whose kind is not accepted at its position.
type TypeError struct {
	// Pos is the 1-based argument position.
	Pos int
	// Msg describes what was expected.
	Msg string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("bad argument #%d (%s)", e.Pos, e.Msg)
}

// Is reports whether target is ErrType.
func (e *TypeError) Is(target error) bool {
	return target == ErrType
}
