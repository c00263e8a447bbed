package checkers

import (
	"fmt"
	"strconv"
	"strings"
)

// Board geometry constants.
const (
	// Quads is the number of 60° sextants around the board center.
	Quads = 6

	// Span is the number of cells along each axis of a sextant.
	Span = 5
)

// Coordinate identifies a board cell by sextant and position within it.
//
// The x and y axes of a sextant meet at 60°, so (x, y) is not a Cartesian
// pair. A Coordinate is a plain value: it is not validated on construction,
// since validity depends on the Board it is used with (see Board.IsOnBoard).
type Coordinate struct {
	quad int
	x    int
	y    int
}

// NewCoordinate returns the coordinate (quad, x, y).
func NewCoordinate(quad, x, y int) Coordinate {
	return Coordinate{quad: quad, x: x, y: y}
}

// Quad returns the sextant index.
func (c Coordinate) Quad() int { return c.quad }

// X returns the position along the sextant's x axis.
func (c Coordinate) X() int { return c.x }

// Y returns the position along the sextant's 60° y axis.
func (c Coordinate) Y() int { return c.y }

// Equal reports whether all three components of c and o match.
func (c Coordinate) Equal(o Coordinate) bool {
	return c == o
}

// Cell returns the canonical coordinate of the physical cell c refers to.
//
// Sextants share their edges: the y axis of sextant q is the x axis of
// sextant q-1, and every sextant contains the center. Two coordinates with
// the same Cell project to the same pixel.
func (c Coordinate) Cell() Coordinate {
	if c.x == 0 && c.y == 0 {
		return Coordinate{}
	}
	q := normQuad(c.quad)
	if c.x == 0 {
		return Coordinate{quad: normQuad(q - 1), x: c.y, y: 0}
	}
	return Coordinate{quad: q, x: c.x, y: c.y}
}

// String formats c as "q<quad>(<x>,<y>)".
func (c Coordinate) String() string {
	return fmt.Sprintf("q%d(%d,%d)", c.quad, c.x, c.y)
}

// ParseCoordinate parses the format produced by Coordinate.String.
// Whitespace around the components is ignored.
func ParseCoordinate(s string) (Coordinate, error) {
	orig := s
	s = strings.TrimSpace(s)
	if len(s) < 2 || (s[0] != 'q' && s[0] != 'Q') {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q", ErrValidation, orig)
	}
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q", ErrValidation, orig)
	}
	quad, err := strconv.Atoi(strings.TrimSpace(s[1:open]))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q: %v", ErrValidation, orig, err)
	}
	xs, ys, ok := strings.Cut(s[open+1:len(s)-1], ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q", ErrValidation, orig)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q: %v", ErrValidation, orig, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: coordinate %q: %v", ErrValidation, orig, err)
	}
	return NewCoordinate(quad, x, y), nil
}

// Camp returns the ten cells forming the star point of sextant quad, the
// cells with x+y >= Span, ordered by descending y and then ascending x.
// It returns nil if quad is not in [0, Quads).
func Camp(quad int) []Coordinate {
	if quad < 0 || quad >= Quads {
		return nil
	}
	camp := make([]Coordinate, 0, 10)
	for y := Span - 1; y > 0; y-- {
		for x := Span - y; x < Span; x++ {
			camp = append(camp, NewCoordinate(quad, x, y))
		}
	}
	return camp
}

// normQuad maps any integer onto [0, Quads).
func normQuad(q int) int {
	q %= Quads
	if q < 0 {
		q += Quads
	}
	return q
}
