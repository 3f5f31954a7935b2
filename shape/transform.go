package shape

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/blokus/point"
)

// Reflect mirrors the origin and every point across the lines selected by
// opts (see point.AcrossX, point.AcrossY).
func (s Shape) Reflect(opts ...point.ReflectOption) Shape {
	return s.mapPoints(func(p point.Point) point.Point { return p.Reflect(opts...) })
}

// Rotate turns the origin and every point clockwise about around.
// Returns point.ErrInvalidDegrees (wrapped) unless degrees is a multiple of 90.
func (s Shape) Rotate(around point.Point, degrees int) (Shape, error) {
	d, err := point.NormalizeDegrees(degrees)
	if err != nil {
		return s, err
	}
	return s.rotateQuarters(around, d/90), nil
}

func (s Shape) rotateQuarters(around point.Point, n int) Shape {
	return s.mapPoints(func(p point.Point) point.Point { return p.RotateQuarters(around, n) })
}

// IsWithin reports whether every X and Y coordinate of s lies in the
// inclusive range given by WithLower/WithUpper. An omitted bound defaults to
// the shape's own minimum (lower) or maximum (upper) coordinate, so it is
// always satisfied.
func (s Shape) IsWithin(opts ...BoundOption) bool {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	lo, hi, ok := s.points.Extent()
	if !ok {
		return true
	}
	if b.lower != nil && lo < *b.lower {
		return false
	}
	if b.upper != nil && hi > *b.upper {
		return false
	}
	return true
}

// Arrangements returns every distinct orientation of s: the four rotations
// about the origin, and the four rotations of its mirror across the origin's
// column. Orientations failing IsWithin(opts...) are dropped. Symmetric
// shapes yield fewer than eight results. The order is deterministic.
func (s Shape) Arrangements(opts ...BoundOption) []Shape {
	seen := make(map[string]Shape, dihedralOrder)
	mirrored := s.Reflect(point.AcrossX(s.origin.X))
	for _, base := range [...]Shape{s, mirrored} {
		for q := 0; q < 4; q++ {
			a := base.rotateQuarters(base.origin, q)
			if !a.IsWithin(opts...) {
				continue
			}
			seen[a.Key()] = a
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Shape, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}
