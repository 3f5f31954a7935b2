package shape

import (
	"strings"

	"github.com/katalvlaran/blokus/point"
)

// New builds a Shape anchored at origin covering origin and pts.
// The origin is always included, so the result is never empty.
func New(origin point.Point, pts ...point.Point) Shape {
	set := point.NewSet(pts...)
	set[origin] = struct{}{}
	return Shape{origin: origin, points: set}
}

// FromSet builds a Shape from an explicit point set. The set is copied, and
// origin is added to it if missing.
func FromSet(origin point.Point, pts point.Set) Shape {
	set := pts.Clone()
	set[origin] = struct{}{}
	return Shape{origin: origin, points: set}
}

// Origin returns the anchor point.
func (s Shape) Origin() point.Point { return s.origin }

// Points returns a copy of the covered points.
func (s Shape) Points() point.Set { return s.points.Clone() }

// Sorted returns the covered points ordered by Y, then X.
func (s Shape) Sorted() []point.Point { return s.points.Sorted() }

// Size returns the number of distinct points.
func (s Shape) Size() int { return len(s.points) }

// Contains reports whether p is covered by s.
func (s Shape) Contains(p point.Point) bool { return s.points.Contains(p) }

// Equal reports whether s and o have the same origin and the same points.
func (s Shape) Equal(o Shape) bool {
	return s.origin == o.origin && s.points.Equal(o.points)
}

// Key returns a canonical text form: equal shapes have equal keys.
// Useful as a map key, since Shape itself is not comparable.
func (s Shape) Key() string {
	var b strings.Builder
	b.WriteString(s.origin.String())
	b.WriteByte(':')
	for _, p := range s.points.Sorted() {
		b.WriteString(p.String())
	}
	return b.String()
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return "Shape{" + s.Key() + "}"
}

// Translate returns the shape moved by d; origin moves with it.
func (s Shape) Translate(d point.Point) Shape {
	return s.mapPoints(func(p point.Point) point.Point { return p.Add(d) })
}

// mapPoints applies fn to the origin and every member and returns the result.
func (s Shape) mapPoints(fn func(point.Point) point.Point) Shape {
	out := make(point.Set, len(s.points))
	for p := range s.points {
		out[fn(p)] = struct{}{}
	}
	return Shape{origin: fn(s.origin), points: out}
}
