package shape

import (
	"github.com/katalvlaran/blokus/point"
)

// Components splits the points of s into 4-connected regions.
// Regions are ordered by their smallest point (Y, then X); a standard piece
// has exactly one.
//
// Time:   O(n), n = Size().
// Memory: O(n) for visited flags and output.
func (s Shape) Components() []point.Set {
	seen := make(point.Set, len(s.points))
	var comps []point.Set

	for _, start := range s.points.Sorted() {
		if seen.Contains(start) {
			continue
		}
		// BFS to collect component
		queue := []point.Point{start}
		seen[start] = struct{}{}
		comp := make(point.Set)

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp[u] = struct{}{}
			for v := range u.Sides() {
				if !s.points.Contains(v) || seen.Contains(v) {
					continue
				}
				seen[v] = struct{}{}
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// IsConnected reports whether every point of s is reachable from every other
// through orthogonal steps inside s.
func (s Shape) IsConnected() bool {
	return len(s.Components()) <= 1
}
