// Package point provides immutable integer lattice points for the game board
// together with their neighbour queries and exact quarter-turn transforms.
//
// What:
//
//   - Point is a comparable {X, Y} value; equal coordinates mean equal points.
//   - Sides (orthogonal neighbours) and Corners (diagonal neighbours).
//   - Reflect across vertical and/or horizontal lines.
//   - Rotate about a pivot by multiples of 90°, using integer steps only.
//   - Set: an unordered, duplicate-free collection of points with union,
//     difference and disjointness tests.
//
// Why:
//
//   - Shapes (package shape) are defined pointwise: every aggregate
//     transform or neighbour query is a fold over per-point results.
//
// Complexity:
//
//   - Point operations: O(1).
//   - Set Union/Difference: O(Σ|S|). Sorted: O(n log n).
//
// Errors:
//
//   - ErrInvalidDegrees: rotation angle is not a multiple of 90 (mod 360).
package point
