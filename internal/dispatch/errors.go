package dispatch

import (
	"errors"
	"fmt"

	"github.com/dshills/navvec/internal/operand"
)

// ErrArity is matched by every ArityError.
var ErrArity = errors.New("invalid size of vector")

// ArityError is returned by New when it receives an unsupported number of
// operands.
type ArityError struct {
	Count int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("invalid size of vector (%d operands)", e.Count)
}

// Is reports whether target is ErrArity.
func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}

// KindMismatchError is returned when two vector operands that must share a
// kind do not. It also matches operand.ErrType.
type KindMismatchError struct {
	// Pos is the 1-based position of the offending operand.
	Pos  int
	Want operand.Kind
	Got  operand.Kind
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("bad argument #%d (vector type mismatch: %s expected, got %s)", e.Pos, e.Want, e.Got)
}

// Is reports whether target is operand.ErrType.
func (e *KindMismatchError) Is(target error) bool {
	return target == operand.ErrType
}

func combinationError(pos int) error {
	return &operand.TypeError{Pos: pos, Msg: "type mismatch (invalid combination of argument types)"}
}
