package shape

import (
	"github.com/katalvlaran/blokus/point"
)

// dihedralOrder is the size of the symmetry group of the square lattice:
// four rotations, each with and without a mirror.
const dihedralOrder = 8

// Shape is an origin point plus the set of points the piece covers.
// The zero value is not a valid shape; build one with New or FromSet.
// The origin is always a member of points and is the pivot for Arrangements.
type Shape struct {
	origin point.Point
	points point.Set
}

// BoundOption constrains IsWithin and Arrangements to a coordinate range.
type BoundOption func(*bounds)

// bounds holds the inclusive limits; nil means "derive from the shape".
type bounds struct {
	lower *int
	upper *int
}

// WithLower requires every X and Y coordinate to be ≥ v.
func WithLower(v int) BoundOption {
	return func(b *bounds) {
		b.lower = &v
	}
}

// WithUpper requires every X and Y coordinate to be ≤ v.
func WithUpper(v int) BoundOption {
	return func(b *bounds) {
		b.upper = &v
	}
}

// WithBoard is shorthand for WithLower(0) and WithUpper(size-1).
func WithBoard(size int) BoundOption {
	return func(b *bounds) {
		lo, hi := 0, size-1
		b.lower, b.upper = &lo, &hi
	}
}
