package checkers

import (
	"fmt"
	"image/color"
	"log/slog"
)

// MoveRule decides whether a dropped checker may move.
//
// The package ships no rules: stepping, jumping and turn order belong to the
// game built on top of it. Install a rule with WithMoveRule.
type MoveRule interface {
	// CanMove returns nil if ch may move to the on-board coordinate to.
	// ch is dropped when CanMove is called.
	CanMove(b *Board, ch *Checker, to Coordinate) error
}

// MoveRuleFunc adapts a function to MoveRule.
type MoveRuleFunc func(b *Board, ch *Checker, to Coordinate) error

// CanMove calls f(b, ch, to).
func (f MoveRuleFunc) CanMove(b *Board, ch *Checker, to Coordinate) error {
	return f(b, ch, to)
}

// Checker is a game piece. It starts off the board; Drop places it once and
// Move relocates it afterwards.
//
// Checker is NOT safe for concurrent use.
type Checker struct {
	board      *Board
	color      color.Color
	radius     float64
	dropped    bool
	coordinate Coordinate
}

// NewChecker creates an undropped checker of color c bound to b.
// A nil color is drawn black.
func NewChecker(b *Board, c color.Color) (*Checker, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if c == nil {
		c = color.Black
	}
	return &Checker{
		board:  b,
		color:  c,
		radius: b.SlotRadius(),
	}, nil
}

// Board returns the checker's board.
func (ch *Checker) Board() *Board { return ch.board }

// Color returns the checker's fill color.
func (ch *Checker) Color() color.Color { return ch.color }

// Radius returns the checker's radius in pixels.
func (ch *Checker) Radius() float64 { return ch.radius }

// IsDropped reports whether the checker has been placed.
func (ch *Checker) IsDropped() bool { return ch.dropped }

// Coordinate returns the coordinate the checker is bound to, and false if
// it has not been dropped.
func (ch *Checker) Coordinate() (Coordinate, bool) {
	return ch.coordinate, ch.dropped
}

// Drop places the checker at c and draws it.
//
// Drop fails without drawing anything if the checker is already dropped
// (ErrAlreadyDropped), the board is not generated (ErrNotGenerated), c is
// not on the board (*OffBoardError) or another checker occupies c's cell
// (ErrCellOccupied). Dropping is one-way.
func (ch *Checker) Drop(c Coordinate) error {
	if ch.dropped {
		return ErrAlreadyDropped
	}
	b := ch.board
	if !b.generated {
		return ErrNotGenerated
	}
	if !b.IsOnBoard(c) {
		return &OffBoardError{Coordinate: c}
	}
	if _, ok := b.CheckerAt(c); ok {
		return fmt.Errorf("%w: %v", ErrCellOccupied, c)
	}

	if err := b.fillCircle(b.Position(c), ch.radius, ch.color); err != nil {
		return fmt.Errorf("checkers: draw checker: %w", err)
	}
	ch.dropped = true
	ch.coordinate = c
	b.place(ch, c)

	Logger().Debug("checkers: checker dropped", slog.String("coordinate", c.String()))
	return nil
}

// Move relocates a dropped checker to c if the board's MoveRule allows it,
// then draws it at c. The old disc is not erased; callers that animate
// moves repaint the surface.
//
// Move returns ErrNotDropped before Drop, *OffBoardError for off-board
// coordinates, ErrMoveUnsupported when the board has no MoveRule, and
// ErrCellOccupied when another checker holds c's cell. Errors from the rule
// are returned unchanged.
func (ch *Checker) Move(c Coordinate) error {
	if !ch.dropped {
		return ErrNotDropped
	}
	b := ch.board
	if !b.IsOnBoard(c) {
		return &OffBoardError{Coordinate: c}
	}
	if b.opts.moveRule == nil {
		return ErrMoveUnsupported
	}
	if other, ok := b.CheckerAt(c); ok && other != ch {
		return fmt.Errorf("%w: %v", ErrCellOccupied, c)
	}
	if err := b.opts.moveRule.CanMove(b, ch, c); err != nil {
		Logger().Warn("checkers: move rejected",
			slog.String("from", ch.coordinate.String()),
			slog.String("to", c.String()),
			slog.Any("err", err))
		return err
	}

	if err := b.fillCircle(b.Position(c), ch.radius, ch.color); err != nil {
		return fmt.Errorf("checkers: draw checker: %w", err)
	}
	from := ch.coordinate
	b.relocate(ch, from, c)
	ch.coordinate = c

	Logger().Debug("checkers: checker moved",
		slog.String("from", from.String()),
		slog.String("to", c.String()))
	return nil
}
