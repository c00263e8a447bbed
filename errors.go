package checkers

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps one of them, so
// callers can classify failures with errors.Is.
var (
	// ErrValidation reports an invalid argument: a bad surface, a nil board
	// or a coordinate that is not on the board.
	ErrValidation = errors.New("checkers: validation failed")

	// ErrPrecondition reports an operation invoked in the wrong state.
	ErrPrecondition = errors.New("checkers: precondition failed")
)

// Validation errors.
var (
	ErrNilSurface       = fmt.Errorf("%w: nil surface", ErrValidation)
	ErrNonSquareSurface = fmt.Errorf("%w: drawing surface must be square", ErrValidation)
	ErrNilBoard         = fmt.Errorf("%w: nil board", ErrValidation)
)

// Precondition errors.
var (
	ErrNotGenerated     = fmt.Errorf("%w: board is not generated", ErrPrecondition)
	ErrAlreadyGenerated = fmt.Errorf("%w: board is already generated", ErrPrecondition)
	ErrAlreadyDropped   = fmt.Errorf("%w: checker already placed", ErrPrecondition)
	ErrNotDropped       = fmt.Errorf("%w: checker must be dropped before move", ErrPrecondition)
	ErrCellOccupied     = fmt.Errorf("%w: cell is occupied", ErrPrecondition)
)

var (
	// ErrMoveUnsupported is returned by Checker.Move when the board has no
	// MoveRule installed.
	ErrMoveUnsupported = fmt.Errorf("checkers: no move rule installed: %w", errors.ErrUnsupported)

	// ErrNoEventTarget is returned by the Board event methods when the
	// surface does not implement EventTarget.
	ErrNoEventTarget = fmt.Errorf("checkers: surface has no event target: %w", errors.ErrUnsupported)
)

// OffBoardError reports a coordinate outside the board.
type OffBoardError struct {
	Coordinate Coordinate
}

func (e *OffBoardError) Error() string {
	return fmt.Sprintf("checkers: coordinate %v is not on the board (quad 0-%d, x and y 0-%d)",
		e.Coordinate, Quads-1, Span-1)
}

// Unwrap returns ErrValidation.
func (e *OffBoardError) Unwrap() error {
	return ErrValidation
}
