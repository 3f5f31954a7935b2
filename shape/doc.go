// Package shape models a placeable game piece: a distinguished origin plus a
// non-empty, duplicate-free set of lattice points that contains it.
//
// What:
//
//   - Shape is immutable. Every transform returns a new Shape.
//   - Sides: points orthogonally adjacent to the shape but outside it.
//   - Corners: points diagonally adjacent to the shape that are neither
//     members nor sides. Sides take precedence, which matters on concave
//     shapes where a cell is diagonal to one member and orthogonal to another.
//   - Reflect / Rotate map the per-point transforms over origin and points.
//   - IsWithin tests every coordinate against an inclusive [lower, upper] range.
//   - Arrangements enumerates the dihedral orbit (4 rotations about the
//     origin, with and without a mirror across the origin's column),
//     deduplicated and optionally clipped to bounds.
//   - CanConnect is the placement rule: touch by at least one corner and by
//     no side.
//
// Complexity (n = Size()):
//
//   - Sides, Corners, CanConnect: O(n).
//   - Arrangements: O(8·n log n) for keying and ordering.
//   - Components: O(n).
//
// Errors:
//
//   - Rotate returns point.ErrInvalidDegrees (wrapped) for angles that are not
//     multiples of 90. No other operation fails.
package shape
