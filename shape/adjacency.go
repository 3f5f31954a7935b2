package shape

import (
	"github.com/katalvlaran/blokus/point"
)

// Sides returns the points orthogonally adjacent to some member of s that
// are not themselves members.
func (s Shape) Sides() point.Set {
	return s.neighbours(point.Point.Sides).Difference(s.points)
}

// Corners returns the points diagonally adjacent to some member of s that are
// neither members nor sides of s. A candidate that is orthogonal to any
// member counts as a side even if it is diagonal to another member.
func (s Shape) Corners() point.Set {
	return s.neighbours(point.Point.Corners).Difference(s.Sides(), s.points)
}

// neighbours folds fn over every member and returns the union.
func (s Shape) neighbours(fn func(point.Point) point.Set) point.Set {
	parts := make([]point.Set, 0, len(s.points))
	for p := range s.points {
		parts = append(parts, fn(p))
	}
	return point.NewSet().Union(parts...)
}

// CanConnect reports whether s and o may be placed touching: they must share
// at least one corner and no side. For non-overlapping shapes the result
// does not depend on the order of the arguments.
func (s Shape) CanConnect(o Shape) bool {
	if s.Corners().Disjoint(o.points) {
		return false
	}
	return s.Sides().Disjoint(o.points)
}

// Overlaps reports whether s and o cover at least one common point.
func (s Shape) Overlaps(o Shape) bool {
	return s.points.Intersects(o.points)
}
