// Package blokus is the lattice geometry behind a Blokus-style tile-placement
// game: immutable points, polyomino shapes, and the rules that decide where a
// piece may go.
//
// Everything is organized under three subpackages:
//
//	point/  integer lattice Point and Set, neighbours, reflect, rotate
//	shape/  Shape (origin + points), sides/corners, bounds, arrangements,
//	        and the corner-only connection rule
//	piece/  the 21 standard pieces as a data table, plus a concurrent
//	        catalog of their orientations
//
// A board layer built on top would, for each candidate move:
//
//  1. take piece.New(id, cell).Arrangements(shape.WithBoard(size)),
//  2. reject arrangements that Overlap any placed shape,
//  3. require CanConnect against at least one of the player's own shapes.
//
// All values are immutable and safe for concurrent use.
//
//	go get github.com/katalvlaran/blokus
package blokus
