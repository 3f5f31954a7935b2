// SPDX-License-Identifier: MIT
// Package: blokus/piece
//
// layout.go - canonical per-piece cell offsets (data-only).
//
// Contract:
//   - Offsets are (dx, dy) relative to the origin; (0,0) is always present.
//   - Game rules depend on these exact layouts: do not reorder or edit
//     existing rows, only append.
//   - X is anchored at its centre so that its orbit collapses to one shape.

package piece

// ID identifies one of the standard pieces.
type ID string

// Piece identifiers, grouped by size.
const (
	I1 ID = "I1"

	I2 ID = "I2"

	I3 ID = "I3"
	V3 ID = "V3"

	I4 ID = "I4"
	L4 ID = "L4"
	O4 ID = "O4"
	T4 ID = "T4"
	Z4 ID = "Z4"

	I5 ID = "I5"
	L5 ID = "L5"
	N  ID = "N"
	P  ID = "P"
	T5 ID = "T5"
	U  ID = "U"
	V5 ID = "V5"
	W  ID = "W"
	X  ID = "X"
	Y  ID = "Y"
	Z5 ID = "Z5"
	F  ID = "F"
)

// offset is a cell position relative to the origin.
type offset struct{ dx, dy int }

// layout is one row of the piece table.
type layout struct {
	id    ID
	cells []offset
}

// table lists every piece in canonical order.
var table = []layout{
	{I1, []offset{{0, 0}}},
	{I2, []offset{{0, 0}, {1, 0}}},
	{I3, []offset{{0, 0}, {1, 0}, {2, 0}}},
	{V3, []offset{{0, 0}, {0, 1}, {1, 0}}},
	{I4, []offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{L4, []offset{{0, 0}, {0, 1}, {1, 0}, {2, 0}}},
	{O4, []offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{T4, []offset{{0, 0}, {1, 0}, {1, 1}, {2, 0}}},
	{Z4, []offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	{I5, []offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
	{L5, []offset{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {3, 0}}},
	{N, []offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}},
	{P, []offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}},
	{T5, []offset{{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}}},
	{U, []offset{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {2, 1}}},
	{V5, []offset{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {0, 2}}},
	{W, []offset{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}},
	{X, []offset{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}},
	{Y, []offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {1, 1}}},
	{Z5, []offset{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}}},
	{F, []offset{{0, 0}, {-1, 1}, {0, 1}, {0, 2}, {1, 2}}},
}

// byID indexes table; built once at init.
var byID = func() map[ID][]offset {
	m := make(map[ID][]offset, len(table))
	for _, s := range table {
		m[s.id] = s.cells
	}
	return m
}()
