package point

import (
	"golang.org/x/exp/slices"
)

// NewSet builds a Set from the given points; duplicates collapse.
func NewSet(pts ...Point) Set {
	s := make(Set, len(pts))
	for _, p := range pts {
		s[p] = struct{}{}
	}
	return s
}

// Len returns the number of distinct points.
func (s Set) Len() int { return len(s) }

// Contains reports whether p is a member of s.
func (s Set) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Union returns a new set holding every point of s and of others.
func (s Set) Union(others ...Set) Set {
	n := len(s)
	for _, o := range others {
		n += len(o)
	}
	u := make(Set, n)
	for p := range s {
		u[p] = struct{}{}
	}
	for _, o := range others {
		for p := range o {
			u[p] = struct{}{}
		}
	}
	return u
}

// Difference returns a new set holding the points of s found in none of others.
func (s Set) Difference(others ...Set) Set {
	d := make(Set, len(s))
	for p := range s {
		excluded := false
		for _, o := range others {
			if o.Contains(p) {
				excluded = true
				break
			}
		}
		if !excluded {
			d[p] = struct{}{}
		}
	}
	return d
}

// Intersects reports whether s and o share at least one point.
// Iterates over the smaller of the two sets.
func (s Set) Intersects(o Set) bool {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	for p := range small {
		if large.Contains(p) {
			return true
		}
	}
	return false
}

// Disjoint reports whether s and o have no point in common.
func (s Set) Disjoint(o Set) bool {
	return !s.Intersects(o)
}

// Equal reports whether s and o contain exactly the same points.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Contains(p) {
			return false
		}
	}
	return true
}

// Sorted returns the members ordered by Y, then X.
func (s Set) Sorted() []Point {
	pts := make([]Point, 0, len(s))
	for p := range s {
		pts = append(pts, p)
	}
	slices.SortFunc(pts, Compare)
	return pts
}

// Extent returns the smallest and largest coordinate found on either axis.
// ok is false for an empty set.
func (s Set) Extent() (lo, hi int, ok bool) {
	for p := range s {
		if !ok {
			lo, hi, ok = min(p.X, p.Y), max(p.X, p.Y), true
			continue
		}
		lo = min(lo, p.X, p.Y)
		hi = max(hi, p.X, p.Y)
	}
	return lo, hi, ok
}

// Compare orders points by Y, then X. It returns -1, 0 or +1.
func Compare(a, b Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}
