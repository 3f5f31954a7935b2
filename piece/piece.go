package piece

import (
	"fmt"

	"github.com/katalvlaran/blokus/point"
	"github.com/katalvlaran/blokus/shape"
)

// New returns the piece id laid out at origin.
// Returns ErrUnknownPiece (wrapped) if id is not in the table.
func New(id ID, origin point.Point) (shape.Shape, error) {
	cells, ok := byID[id]
	if !ok {
		return shape.Shape{}, fmt.Errorf("New(%q): %w", id, ErrUnknownPiece)
	}
	pts := make([]point.Point, 0, len(cells))
	for _, c := range cells {
		pts = append(pts, point.Pt(origin.X+c.dx, origin.Y+c.dy))
	}
	return shape.New(origin, pts...), nil
}

// MustNew is like New but panics on an unknown id. Intended for fixtures
// and package-level values where id is a constant.
func MustNew(id ID, origin point.Point) shape.Shape {
	s, err := New(id, origin)
	if err != nil {
		panic(err)
	}
	return s
}

// IDs returns every piece identifier in canonical order (smallest first).
func IDs() []ID {
	ids := make([]ID, len(table))
	for i, s := range table {
		ids[i] = s.id
	}
	return ids
}

// Size returns the number of cells of id, or 0 if id is unknown.
func Size(id ID) int {
	return len(byID[id])
}

// All returns every piece anchored at origin, in IDs() order.
func All(origin point.Point) []shape.Shape {
	out := make([]shape.Shape, len(table))
	for i, s := range table {
		out[i] = MustNew(s.id, origin)
	}
	return out
}
