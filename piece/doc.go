// Package piece holds the 21 standard game pieces as a data table and builds
// anchored shapes from it.
//
// What:
//
//   - ID names a piece: I1, I2, I3, V3, I4, L4, O4, T4, Z4, I5, L5, N, P,
//     T5, U, V5, W, X, Y, Z5, F (sizes 1 through 5, 89 cells in total).
//   - New(id, origin) returns the piece's canonical layout anchored at origin.
//   - Catalog enumerates Arrangements for every piece concurrently.
//
// Drawings below use x to the right and y upward; [X] marks the origin.
//
//	I1  [X]            V3  [ ]             L4  [ ]
//	                       [X][ ]              [X][ ][ ]
//
//	T4     [ ]         Z4     [ ][ ]       X      [ ]
//	    [X][ ][ ]          [X][ ]              [ ][X][ ]
//	                                              [ ]
//
// Errors:
//
//   - ErrUnknownPiece: id is not one of the 21 standard pieces.
package piece
