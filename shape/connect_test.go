package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/blokus/point"
	"github.com/katalvlaran/blokus/shape"
)

func TestCanConnect(t *testing.T) {
	base := v3(point.Pt(0, 0)) // (0,0) (0,1) (1,0)
	cases := []struct {
		name  string
		other shape.Shape
		want  bool
	}{
		{"CornerOnly", v3(point.Pt(2, 1)), true},
		{"CornerOnlyBelow", v3(point.Pt(-2, -2)).Translate(point.Pt(1, 0)), true},
		{"SideOnly", v3(point.Pt(1, 1)), false},
		{"CornerAndSide", v3(point.Pt(2, 0)), false},
		{"Apart", v3(point.Pt(10, 10)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, base.CanConnect(tc.other))
			assert.Equal(t, tc.want, tc.other.CanConnect(base), "CanConnect must be symmetric")
		})
	}
}

// TestCanConnect_Symmetric sweeps every orientation of an L4 around a fixed
// V3 and checks the predicate agrees in both directions.
func TestCanConnect_Symmetric(t *testing.T) {
	fixed := v3(point.Pt(0, 0))
	for _, a := range l4(point.Pt(0, 0)).Arrangements() {
		for dx := -4; dx <= 4; dx++ {
			for dy := -4; dy <= 4; dy++ {
				o := a.Translate(point.Pt(dx, dy))
				if fixed.Overlaps(o) {
					continue
				}
				assert.Equal(t, fixed.CanConnect(o), o.CanConnect(fixed), "%v vs %v", fixed, o)
			}
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := v3(point.Pt(0, 0))
	assert.True(t, a.Overlaps(v3(point.Pt(1, 0))))
	assert.True(t, a.Overlaps(a))
	assert.False(t, a.Overlaps(v3(point.Pt(2, 2))))
}
