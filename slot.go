package checkers

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
)

// Slot is a playable hole on the board. Slots are created by Board.Generate
// and draw themselves once, when created.
type Slot struct {
	board      *Board
	coordinate Coordinate
	position   gg.Point
	radius     float64
}

// newSlot creates the slot for c and outlines it in borderColor.
func newSlot(b *Board, c Coordinate, borderColor color.Color) (*Slot, error) {
	s := &Slot{
		board:      b,
		coordinate: c,
		position:   b.Position(c),
		radius:     b.SlotRadius(),
	}
	if err := b.strokeCircle(s.position, s.radius, borderColor); err != nil {
		return nil, fmt.Errorf("checkers: draw slot %v: %w", c, err)
	}
	b.drawLabel(fmt.Sprintf("%d,%d", c.x, c.y), s.position.Add(gg.Pt(0, b.unitLength*0.3)))

	Logger().Debug("checkers: slot created",
		slog.String("coordinate", c.String()),
		slog.Float64("x", s.position.X),
		slog.Float64("y", s.position.Y))
	return s, nil
}

// Board returns the board the slot belongs to.
func (s *Slot) Board() *Board { return s.board }

// Coordinate returns the coordinate the slot was generated for.
func (s *Slot) Coordinate() Coordinate { return s.coordinate }

// Position returns the slot's pixel position.
func (s *Slot) Position() gg.Point { return s.position }

// Radius returns the radius of the slot outline.
func (s *Slot) Radius() float64 { return s.radius }

// Equal reports whether s and o are the same slot: they belong to the same
// board and have the same identity under the board's SlotIdentity.
func (s *Slot) Equal(o *Slot) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.board != o.board {
		return false
	}
	id := s.board.opts.identity
	return id.key(s.coordinate) == id.key(o.coordinate)
}

// SameXY reports whether s and o belong to the same board and have the same
// x and y, whatever their sextants.
func (s *Slot) SameXY(o *Slot) bool {
	if s == nil || o == nil {
		return false
	}
	return s.board == o.board &&
		s.coordinate.x == o.coordinate.x &&
		s.coordinate.y == o.coordinate.y
}
