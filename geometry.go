package checkers

import (
	"math"

	"github.com/gogpu/gg"
)

// sextantAngle is the rotation between neighbouring sextants.
const sextantAngle = math.Pi / 3

// Position returns the pixel position of c on the board's surface.
//
// The cell is first placed in a 60°-skewed basis anchored at the board
// center, with the x axis pointing right and the y axis 60° above it:
//
//	dx = x*unit + y*unit*sin(30°)
//	dy = y*unit*sin(60°)
//
// giving (cx+dx, cy-dy). The point is then rotated clockwise about the center
// by 60°, quad+1 times, which carries it into its sextant. Six steps make a
// full turn, so quad 5 keeps the unrotated point.
//
// Position does not validate c; off-board coordinates project onto the same
// lattice.
func (b *Board) Position(c Coordinate) gg.Point {
	center := b.Center()
	u := b.unitLength
	dx := float64(c.x)*u + float64(c.y)*u*math.Sin(math.Pi/6)
	dy := float64(c.y) * u * math.Sin(math.Pi/3)
	p := gg.Pt(center.X+dx, center.Y-dy)

	for i := 0; i < normQuad(c.quad+1); i++ {
		p = rotateAbout(p, center, sextantAngle)
	}
	return p
}

// rotateAbout rotates p about center by angle radians. With the y axis
// pointing down, positive angles turn clockwise on screen.
func rotateAbout(p, center gg.Point, angle float64) gg.Point {
	return p.Sub(center).Rotate(angle).Add(center)
}

// SlotAt returns the slot nearest to the pixel (x, y), provided it lies
// within half a unit length of the slot center. Neighbouring slots are one
// unit apart, so at most one slot qualifies.
func (b *Board) SlotAt(x, y float64) (*Slot, bool) {
	p := gg.Pt(x, y)
	limit := b.unitLength / 2
	var best *Slot
	bestDist := math.Inf(1)
	for _, s := range b.slots {
		d := p.Distance(s.position)
		if d < bestDist {
			best, bestDist = s, d
		}
	}
	if best == nil || bestDist > limit {
		return nil, false
	}
	return best, true
}
