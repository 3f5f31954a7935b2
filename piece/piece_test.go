package piece_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blokus/piece"
	"github.com/katalvlaran/blokus/point"
	"github.com/katalvlaran/blokus/shape"
)

func TestIDs(t *testing.T) {
	ids := piece.IDs()
	require.Len(t, ids, 21)
	assert.Equal(t, piece.I1, ids[0])
	assert.Equal(t, piece.F, ids[len(ids)-1])

	total := 0
	for i, id := range ids {
		total += piece.Size(id)
		if i > 0 {
			assert.GreaterOrEqual(t, piece.Size(id), piece.Size(ids[i-1]), "ids ordered by size")
		}
	}
	assert.Equal(t, 89, total)
}

func TestNew_Layouts(t *testing.T) {
	origin := point.Pt(7, 7)
	for _, id := range piece.IDs() {
		t.Run(string(id), func(t *testing.T) {
			s, err := piece.New(id, origin)
			require.NoError(t, err)
			assert.Equal(t, origin, s.Origin())
			assert.True(t, s.Contains(origin))
			assert.Equal(t, piece.Size(id), s.Size())
			assert.True(t, s.IsConnected(), "piece must be a polyomino")
		})
	}
}

func TestNew_ExactOffsets(t *testing.T) {
	o := point.Pt(0, 0)
	cases := map[piece.ID][]point.Point{
		piece.I1: {point.Pt(0, 0)},
		piece.V3: {point.Pt(0, 0), point.Pt(1, 0), point.Pt(0, 1)},
		piece.T4: {point.Pt(0, 0), point.Pt(1, 0), point.Pt(2, 0), point.Pt(1, 1)},
		piece.U:  {point.Pt(0, 0), point.Pt(1, 0), point.Pt(2, 0), point.Pt(0, 1), point.Pt(2, 1)},
		piece.X:  {point.Pt(0, -1), point.Pt(-1, 0), point.Pt(0, 0), point.Pt(1, 0), point.Pt(0, 1)},
	}
	for id, want := range cases {
		assert.Equal(t, want, piece.MustNew(id, o).Sorted(), "%s", id)
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := piece.New("Q9", point.Pt(0, 0))
	assert.ErrorIs(t, err, piece.ErrUnknownPiece)
	assert.Equal(t, 0, piece.Size("Q9"))
	assert.Panics(t, func() { piece.MustNew("Q9", point.Pt(0, 0)) })
}

func TestAll(t *testing.T) {
	all := piece.All(point.Pt(3, 4))
	require.Len(t, all, 21)
	for i, id := range piece.IDs() {
		assert.True(t, all[i].Equal(piece.MustNew(id, point.Pt(3, 4))), "%s", id)
	}
}

func TestArrangementCounts(t *testing.T) {
	want := map[piece.ID]int{
		piece.I1: 1, piece.I2: 4, piece.I3: 4, piece.V3: 4,
		piece.I4: 4, piece.L4: 8, piece.O4: 4, piece.T4: 8, piece.Z4: 8,
		piece.I5: 4, piece.L5: 8, piece.N: 8, piece.P: 8, piece.T5: 8,
		piece.U: 8, piece.V5: 4, piece.W: 8, piece.X: 1, piece.Y: 8,
		piece.Z5: 8, piece.F: 8,
	}
	for _, id := range piece.IDs() {
		got := piece.MustNew(id, point.Pt(10, 10)).Arrangements()
		assert.Len(t, got, want[id], "%s", id)
	}
}

// normalize returns a translation-free key for s, ignoring the origin.
func normalize(s shape.Shape) string {
	pts := s.Sorted()
	minX, minY := pts[0].X, pts[0].Y
	for _, p := range pts {
		minX, minY = min(minX, p.X), min(minY, p.Y)
	}
	var b strings.Builder
	for _, p := range pts {
		fmt.Fprintf(&b, "%d,%d;", p.X-minX, p.Y-minY)
	}
	return b.String()
}

// TestPieces_Distinct checks no two pieces share an orientation, i.e. the
// table holds 21 different free polyominoes.
func TestPieces_Distinct(t *testing.T) {
	owner := make(map[string]piece.ID)
	for _, id := range piece.IDs() {
		for _, a := range piece.MustNew(id, point.Pt(0, 0)).Arrangements() {
			k := normalize(a)
			if prev, ok := owner[k]; ok && prev != id {
				t.Errorf("%s and %s share orientation %s", prev, id, k)
			}
			owner[k] = id
		}
	}
}
