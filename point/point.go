package point

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// quarterTurn is the only rotation step; larger angles are composed from it.
const quarterTurn = 90

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	p.X += d.X
	p.Y += d.Y
	return p
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) Point {
	p.X -= o.X
	p.Y -= o.Y
	return p
}

// Corners returns the four diagonally adjacent points.
func (p Point) Corners() Set {
	return p.neighbours(cornerOffsets)
}

// Sides returns the four orthogonally adjacent points.
func (p Point) Sides() Set {
	return p.neighbours(sideOffsets)
}

func (p Point) neighbours(offsets [4][2]int) Set {
	s := make(Set, len(offsets))
	for _, d := range offsets {
		s[Point{X: p.X + d[0], Y: p.Y + d[1]}] = struct{}{}
	}
	return s
}

// IsCorner reports whether o is diagonally adjacent to p.
func (p Point) IsCorner(o Point) bool {
	return p.Corners().Contains(o)
}

// IsSide reports whether o is orthogonally adjacent to p.
func (p Point) IsSide(o Point) bool {
	return p.Sides().Contains(o)
}

// Reflect mirrors p across the lines selected by opts and returns the result.
// An axis that is not given defaults to p's own coordinate, so Reflect()
// with no options returns p unchanged.
//
//	Pt(4, 5).Reflect(AcrossX(5))             == Pt(6, 5)
//	Pt(4, 5).Reflect(AcrossY(2))             == Pt(4, -1)
//	Pt(4, 5).Reflect(AcrossX(6), AcrossY(6)) == Pt(8, 7)
func (p Point) Reflect(opts ...ReflectOption) Point {
	var axes reflectAxes
	for _, opt := range opts {
		opt(&axes)
	}
	if axes.x != nil {
		p.X = mirror(*axes.x, p.X)
	}
	if axes.y != nil {
		p.Y = mirror(*axes.y, p.Y)
	}
	return p
}

func mirror(v, c int) int {
	return v + (v - c)
}

// Rotate turns p clockwise about around by degrees, which must be congruent
// to a multiple of 90 modulo 360. Negative angles are allowed (-90 ≡ 270).
// The result is built from exact quarter turns; no trigonometry is involved.
//
//	Pt(8, 10).Rotate(Pt(7, 7), 90)  == Pt(10, 6)
//	Pt(8, 10).Rotate(Pt(7, 7), 180) == Pt(6, 4)
//	Pt(8, 10).Rotate(Pt(7, 7), 270) == Pt(4, 8)
//
// Returns ErrInvalidDegrees (wrapped) for any other angle.
func (p Point) Rotate(around Point, degrees int) (Point, error) {
	d, err := NormalizeDegrees(degrees)
	if err != nil {
		return p, err
	}
	return p.RotateQuarters(around, d/quarterTurn), nil
}

// RotateQuarters turns p clockwise about around by n quarter turns.
// n may be any integer; it is reduced modulo 4.
func (p Point) RotateQuarters(around Point, n int) Point {
	for i := floorMod(n, 4); i > 0; i-- {
		dx, dy := p.X-around.X, p.Y-around.Y
		p = Point{X: around.X + dy, Y: around.Y - dx}
	}
	return p
}

// NormalizeDegrees reduces degrees into [0, 360) and checks that the result
// is one of 0, 90, 180 or 270.
func NormalizeDegrees(degrees int) (int, error) {
	d := floorMod(degrees, 360)
	if d%quarterTurn != 0 {
		return 0, fmt.Errorf("rotate by %d: %w", degrees, ErrInvalidDegrees)
	}
	return d, nil
}

// floorMod is a modulo whose result takes the sign of m, so -90 mod 360 = 270.
func floorMod[T constraints.Signed](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
