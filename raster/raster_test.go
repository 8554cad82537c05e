package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARBS-hmm/Raster/grid"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []image.Point
	}{
		{
			name: "horizontal stops before end point",
			x1:   10,
			want: []image.Point{
				{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
				{5, 0}, {6, 0}, {7, 0}, {8, 0}, {9, 0},
			},
		},
		{
			name: "shallow slope",
			x1:   4, y1: 2,
			want: []image.Point{{0, 0}, {1, 1}, {2, 1}, {3, 2}},
		},
		{
			name: "diagonal",
			x0:   2, y0: 3, x1: 6, y1: 7,
			want: []image.Point{{2, 3}, {3, 4}, {4, 5}, {5, 6}},
		},
		{
			name: "single column",
			x0:   3, y0: 3, x1: 3, y1: 9,
			want: nil,
		},
		{
			name: "reversed x",
			x0:   5, x1: 1,
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Collect(Line(tc.x0, tc.y0, tc.x1, tc.y1))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineDemoPath(t *testing.T) {
	pts := Collect(Line(1, 1, 40, 20))
	require.Len(t, pts, 39)
	assert.Equal(t, image.Pt(1, 1), pts[0])
	for i := 1; i < len(pts); i++ {
		assert.Equal(t, pts[i-1].X+1, pts[i].X)
		dy := pts[i].Y - pts[i-1].Y
		assert.True(t, dy == 0 || dy == 1, "step %d moved y by %d", i, dy)
	}
	last := pts[len(pts)-1]
	assert.Equal(t, 39, last.X)
	assert.InDelta(t, 20, last.Y, 1)
}

func TestLineIsRestartable(t *testing.T) {
	seq := Line(0, 0, 12, 5)
	assert.Equal(t, Collect(seq), Collect(seq))
}

func symmetric(pts ...image.Point) map[image.Point]bool {
	set := make(map[image.Point]bool)
	for _, p := range pts {
		for _, q := range []image.Point{
			{p.X, p.Y}, {-p.X, p.Y}, {p.X, -p.Y}, {-p.X, -p.Y},
			{p.Y, p.X}, {-p.Y, p.X}, {p.Y, -p.X}, {-p.Y, -p.X},
		} {
			set[q] = true
		}
	}
	return set
}

func TestCircleRadiusFive(t *testing.T) {
	pts := Collect(Circle(0, 0, 5))
	require.Len(t, pts, 4*8)

	got := make(map[image.Point]bool)
	for _, p := range pts {
		got[p] = true
	}
	assert.Equal(t, symmetric(image.Pt(0, 5), image.Pt(1, 5), image.Pt(2, 5), image.Pt(3, 4)), got)

	for p := range got {
		for _, q := range []image.Point{
			{-p.X, p.Y}, {p.X, -p.Y}, {p.Y, p.X}, {-p.Y, -p.X},
		} {
			assert.True(t, got[q], "%v has no mirror %v", p, q)
		}
	}
}

func TestCircleOffsetCentre(t *testing.T) {
	centred := Collect(Circle(0, 0, 7))
	moved := Collect(Circle(35, 15, 7))
	require.Equal(t, len(centred), len(moved))
	for i := range centred {
		assert.Equal(t, centred[i].Add(image.Pt(35, 15)), moved[i])
	}
}

func TestCircleDegenerate(t *testing.T) {
	pts := Collect(Circle(2, 3, 0))
	require.Len(t, pts, 8)
	for _, p := range pts {
		assert.Equal(t, image.Pt(2, 3), p)
	}
	assert.Empty(t, Collect(Circle(0, 0, -1)))
}

func TestCircleIsRestartable(t *testing.T) {
	seq := Circle(10, 10, 9)
	assert.Equal(t, Collect(seq), Collect(seq))
}

func TestPlotSkipsOutOfBounds(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	var trs []grid.Transition
	for tr := range Plot(g, Line(0, 0, 10, 0), grid.Filled) {
		trs = append(trs, tr)
	}
	require.Len(t, trs, 5)
	for i, tr := range trs {
		assert.Equal(t, grid.Transition{Row: i, Col: 0, From: grid.Background, To: grid.Filled}, tr)
	}
	assert.Equal(t, 5, g.Count(grid.Filled))
}

func TestPlotStopsWithConsumer(t *testing.T) {
	g, err := grid.New(20, 20)
	require.NoError(t, err)
	for range Plot(g, Circle(10, 10, 5), grid.InProgress) {
		break
	}
	assert.Equal(t, 1, g.Count(grid.InProgress))
}
