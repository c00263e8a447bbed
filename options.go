package checkers

import (
	"fmt"
	"image/color"
	"strings"
)

// SlotIdentity selects how Generate decides that two candidate cells are the
// same slot.
type SlotIdentity int

const (
	// CellIdentity deduplicates by physical cell (see Coordinate.Cell).
	// A generated board has the 121 holes of a Chinese-checkers star.
	CellIdentity SlotIdentity = iota

	// LegacyXYIdentity deduplicates by x and y only, ignoring the sextant.
	// Only the 25 cells of a single rhombus survive; kept for boards that
	// must reproduce that layout.
	LegacyXYIdentity
)

// String returns the identity name.
func (id SlotIdentity) String() string {
	switch id {
	case CellIdentity:
		return "cell"
	case LegacyXYIdentity:
		return "legacy-xy"
	default:
		return fmt.Sprintf("SlotIdentity(%d)", int(id))
	}
}

// ParseSlotIdentity parses the names produced by SlotIdentity.String.
func ParseSlotIdentity(s string) (SlotIdentity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cell":
		return CellIdentity, nil
	case "legacy-xy", "legacy", "xy":
		return LegacyXYIdentity, nil
	default:
		return CellIdentity, fmt.Errorf("%w: slot identity %q", ErrValidation, s)
	}
}

// key returns the map key identifying c's slot.
func (id SlotIdentity) key(c Coordinate) Coordinate {
	if id == LegacyXYIdentity {
		return Coordinate{x: c.x, y: c.y}
	}
	return c.Cell()
}

// BoardOption configures a Board during creation.
//
// Example:
//
//	b, err := checkers.NewBoard(dc,
//	    checkers.WithSlotColor(gg.Hex("#444").Color()),
//	    checkers.WithLabels(),
//	)
type BoardOption func(*boardOptions)

// boardOptions holds optional configuration for Board creation.
type boardOptions struct {
	slotColor color.Color
	identity  SlotIdentity
	labels    bool
	moveRule  MoveRule
}

// defaultBoardOptions returns the default board options.
func defaultBoardOptions() boardOptions {
	return boardOptions{
		slotColor: color.Black,
		identity:  CellIdentity,
	}
}

// WithSlotColor sets the stroke color of slot outlines. Default is black.
// A nil color keeps the default.
func WithSlotColor(c color.Color) BoardOption {
	return func(o *boardOptions) {
		if c != nil {
			o.slotColor = c
		}
	}
}

// WithSlotIdentity sets the slot deduplication rule used by Generate.
func WithSlotIdentity(id SlotIdentity) BoardOption {
	return func(o *boardOptions) {
		o.identity = id
	}
}

// WithLabels makes Generate write each slot's coordinate next to it.
// It has no effect unless the surface implements TextSurface and has a font.
func WithLabels() BoardOption {
	return func(o *boardOptions) {
		o.labels = true
	}
}

// WithMoveRule installs the rule consulted by Checker.Move.
// Without one, Move returns ErrMoveUnsupported.
func WithMoveRule(r MoveRule) BoardOption {
	return func(o *boardOptions) {
		o.moveRule = r
	}
}
