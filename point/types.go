package point

import "fmt"

// Point represents an integer coordinate on the board lattice.
// It is a plain value: copies are independent and == compares coordinates.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// String returns the "(x,y)" form of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Set is an unordered, duplicate-free collection of points.
// Methods never modify their receiver; they return fresh sets.
type Set map[Point]struct{}

// ReflectOption selects an axis for Point.Reflect.
type ReflectOption func(*reflectAxes)

// reflectAxes holds the lines to mirror across; nil means "own coordinate".
type reflectAxes struct {
	x *int
	y *int
}

// AcrossX mirrors across the vertical line x = v.
func AcrossX(v int) ReflectOption {
	return func(a *reflectAxes) {
		a.x = &v
	}
}

// AcrossY mirrors across the horizontal line y = v.
func AcrossY(v int) ReflectOption {
	return func(a *reflectAxes) {
		a.y = &v
	}
}

// Offsets of the four orthogonal and four diagonal neighbours.
var (
	sideOffsets   = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	cornerOffsets = [4][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
)
