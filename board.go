package checkers

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Board is a hexagram Chinese-checkers board drawn on a square Surface.
//
// A Board must be generated exactly once with Generate before checkers can
// be placed on it. The board owns its slots; slots and checkers draw through
// the board's surface.
//
// Board is NOT safe for concurrent use.
type Board struct {
	surface    Surface
	width      int
	height     int
	radius     float64
	unitLength float64
	opts       boardOptions

	generated bool
	slots     []*Slot
	slotIndex map[Coordinate]*Slot

	// Checkers by physical cell.
	occupied map[Coordinate]*Checker
	checkers []*Checker
}

// NewBoard creates a board over s.
//
// The projection assumes a square surface, so NewBoard returns an error
// wrapping ErrValidation if s is nil or its width and height differ.
func NewBoard(s Surface, opts ...BoardOption) (*Board, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	w, h := s.Width(), s.Height()
	if w <= 0 || w != h {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrNonSquareSurface, w, h)
	}

	o := defaultBoardOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Board{
		surface:    s,
		width:      w,
		height:     h,
		radius:     float64(w) / 2 * 0.9,
		unitLength: float64(w) / 16,
		opts:       o,
		occupied:   make(map[Coordinate]*Checker),
	}, nil
}

// Width returns the surface width in pixels.
func (b *Board) Width() int { return b.width }

// Height returns the surface height in pixels.
func (b *Board) Height() int { return b.height }

// Radius returns the radius of the board outline.
func (b *Board) Radius() float64 { return b.radius }

// UnitLength returns the pixel length of one step along a board axis.
func (b *Board) UnitLength() float64 { return b.unitLength }

// SlotRadius returns the radius of slot outlines and checkers.
func (b *Board) SlotRadius() float64 { return float64(b.width) / 60 / 2 }

// Center returns the pixel center of the board.
func (b *Board) Center() gg.Point {
	return gg.Pt(float64(b.width)/2, float64(b.height)/2)
}

// Surface returns the surface the board draws on.
func (b *Board) Surface() Surface { return b.surface }

// IsGenerated reports whether Generate has completed.
func (b *Board) IsGenerated() bool { return b.generated }

// Generate draws the board outline in borderColor and creates one slot per
// distinct board cell, drawing each slot as it is created.
//
// Candidates are enumerated sextant by sextant (quad 0-5, x 0-4, y 0-4) and a
// slot is created only if no slot with the same identity exists yet (see
// WithSlotIdentity). Generate may be called once; later calls return
// ErrAlreadyGenerated. If drawing fails the board stays ungenerated.
func (b *Board) Generate(borderColor color.Color) error {
	if b.generated {
		return ErrAlreadyGenerated
	}
	if borderColor == nil {
		borderColor = color.Black
	}

	if err := b.strokeCircle(b.Center(), b.radius, borderColor); err != nil {
		return fmt.Errorf("checkers: draw outline: %w", err)
	}

	slots := make([]*Slot, 0, Quads*Span*Span)
	index := make(map[Coordinate]*Slot, Quads*Span*Span)
	for quad := 0; quad < Quads; quad++ {
		for x := 0; x < Span; x++ {
			for y := 0; y < Span; y++ {
				c := NewCoordinate(quad, x, y)
				key := b.opts.identity.key(c)
				if _, ok := index[key]; ok {
					continue
				}
				s, err := newSlot(b, c, b.opts.slotColor)
				if err != nil {
					return err
				}
				index[key] = s
				slots = append(slots, s)
			}
		}
	}

	b.slots = slots
	b.slotIndex = index
	b.generated = true

	Logger().Info("checkers: board generated",
		slog.Int("size", b.width),
		slog.Int("slots", len(slots)),
		slog.String("identity", b.opts.identity.String()))
	return nil
}

// Slots returns the board's slots in generation order.
// The returned slice is a copy; it is empty before Generate.
func (b *Board) Slots() []*Slot {
	out := make([]*Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

// SlotFor returns the slot c belongs to under the board's slot identity.
func (b *Board) SlotFor(c Coordinate) (*Slot, bool) {
	if !b.IsOnBoard(c) {
		return nil, false
	}
	s, ok := b.slotIndex[b.opts.identity.key(c)]
	return s, ok
}

// IsOnBoard reports whether c lies within the board: quad in [0, 6) and
// x and y in [0, 5).
func (b *Board) IsOnBoard(c Coordinate) bool {
	return c.quad >= 0 && c.quad < Quads &&
		c.x >= 0 && c.x < Span &&
		c.y >= 0 && c.y < Span
}

// NewGame starts a game on a generated board.
// It returns ErrNotGenerated if Generate has not completed.
func (b *Board) NewGame() error {
	if !b.generated {
		return ErrNotGenerated
	}
	Logger().Info("checkers: new game", slog.Int("checkers", len(b.checkers)))
	return nil
}

// CheckerAt returns the checker occupying the cell of c.
func (b *Board) CheckerAt(c Coordinate) (*Checker, bool) {
	ch, ok := b.occupied[c.Cell()]
	return ch, ok
}

// Checkers returns the dropped checkers in drop order.
func (b *Board) Checkers() []*Checker {
	out := make([]*Checker, len(b.checkers))
	copy(out, b.checkers)
	return out
}

// AddEventListener registers fn for events named event on the board's
// surface. It returns ErrNoEventTarget if the surface does not implement
// EventTarget.
func (b *Board) AddEventListener(event string, fn Listener) (ListenerID, error) {
	t, ok := b.surface.(EventTarget)
	if !ok {
		return 0, ErrNoEventTarget
	}
	return t.AddEventListener(event, fn), nil
}

// RemoveEventListener unregisters a listener added with AddEventListener.
func (b *Board) RemoveEventListener(event string, id ListenerID) error {
	t, ok := b.surface.(EventTarget)
	if !ok {
		return ErrNoEventTarget
	}
	t.RemoveEventListener(event, id)
	return nil
}

// place records ch as the occupant of c's cell.
func (b *Board) place(ch *Checker, c Coordinate) {
	b.occupied[c.Cell()] = ch
	b.checkers = append(b.checkers, ch)
}

// relocate moves ch's occupancy from one cell to another.
func (b *Board) relocate(ch *Checker, from, to Coordinate) {
	if cur, ok := b.occupied[from.Cell()]; ok && cur == ch {
		delete(b.occupied, from.Cell())
	}
	b.occupied[to.Cell()] = ch
}

// strokeCircle outlines a circle on the surface.
func (b *Board) strokeCircle(center gg.Point, r float64, c color.Color) error {
	b.circlePath(center, r, c)
	return b.surface.Stroke()
}

// fillCircle paints a filled circle on the surface.
func (b *Board) fillCircle(center gg.Point, r float64, c color.Color) error {
	b.circlePath(center, r, c)
	return b.surface.Fill()
}

func (b *Board) circlePath(center gg.Point, r float64, c color.Color) {
	b.surface.ClearPath()
	b.surface.DrawArc(center.X, center.Y, r, 0, 2*math.Pi)
	b.surface.SetColor(c)
}

// drawLabel writes s centered at p if labels are enabled and supported.
func (b *Board) drawLabel(s string, p gg.Point) {
	if !b.opts.labels {
		return
	}
	if t, ok := b.surface.(TextSurface); ok {
		t.DrawStringAnchored(s, p.X, p.Y, 0.5, 0.5)
	}
}
