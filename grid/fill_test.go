package grid

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxed returns a rows×cols grid with a Boundary rectangle outline.
func boxed(t *testing.T, rows, cols, r1, c1, r2, c2 int) *Grid {
	t.Helper()
	g, err := New(rows, cols)
	require.NoError(t, err)
	g.Rectangle(r1, c1, r2, c2, Boundary)
	return g
}

func sameCells(t *testing.T, want, got *Grid) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for r := 0; r < want.Rows(); r++ {
		for c := 0; c < want.Cols(); c++ {
			w, _ := want.At(r, c)
			g, _ := got.At(r, c)
			assert.Equal(t, w, g, "cell (%d,%d)", r, c)
		}
	}
}

func TestFillNoOpSeeds(t *testing.T) {
	g := boxed(t, 10, 10, 2, 2, 6, 6)
	g.Set(4, 4, Filled)

	tests := []struct {
		name string
		req  Request
	}{
		{"seed on boundary", Request{SeedRow: 2, SeedCol: 3, Boundary: Boundary}},
		{"seed already filled", Request{SeedRow: 4, SeedCol: 4, Boundary: Boundary}},
		{"seed above grid", Request{SeedRow: -1, SeedCol: 3, Boundary: Boundary}},
		{"seed right of grid", Request{SeedRow: 3, SeedCol: 10, Boundary: Boundary}},
	}
	for _, tc := range tests {
		for _, policy := range []Policy{BoundaryFill, FloodFill} {
			t.Run(fmt.Sprintf("%s/%s", tc.name, policy), func(t *testing.T) {
				before := g.Clone()
				got := slices.Collect(Fill(g, tc.req, policy))
				assert.Empty(t, got)
				sameCells(t, before, g)
			})
		}
	}
}

func TestFillEnclosedRectangle(t *testing.T) {
	const r1, c1, r2, c2 = 10, 1, 15, 7

	for _, policy := range []Policy{BoundaryFill, FloodFill} {
		t.Run(policy.String(), func(t *testing.T) {
			g := boxed(t, 70, 30, r1, c1, r2, c2)
			marks := 0
			for tr := range Fill(g, Request{SeedRow: 13, SeedCol: 3, Boundary: Boundary}, policy) {
				if tr.To == Filled && tr.From == Background {
					marks++
				}
			}
			assert.Equal(t, (r2-r1-1)*(c2-c1-1), marks)

			for r := 0; r < g.Rows(); r++ {
				for c := 0; c < g.Cols(); c++ {
					got, _ := g.At(r, c)
					inside := r > r1 && r < r2 && c > c1 && c < c2
					corner := (r == r1 || r == r2) && (c == c1 || c == c2)
					edge := !corner && (r == r1 || r == r2) && c >= c1 && c <= c2 ||
						!corner && (c == c1 || c == c2) && r >= r1 && r <= r2

					switch {
					case inside:
						assert.Equal(t, Filled, got, "interior (%d,%d)", r, c)
					case corner:
						assert.Equal(t, Boundary, got, "corner (%d,%d)", r, c)
					case edge && policy == BoundaryFill:
						assert.Equal(t, Boundary, got, "edge (%d,%d)", r, c)
					case edge && policy == FloodFill:
						assert.Equal(t, Background, got, "edge (%d,%d)", r, c)
					default:
						assert.Equal(t, Background, got, "outside (%d,%d)", r, c)
					}
				}
			}
			assert.Zero(t, g.Count(Highlight))
			assert.Zero(t, g.Count(InProgress))
		})
	}
}

func TestFillSecondRunIsEmpty(t *testing.T) {
	g := boxed(t, 70, 30, 10, 1, 20, 10)
	req := Request{SeedRow: 13, SeedCol: 3, Boundary: Boundary}

	first := slices.Collect(Fill(g, req, BoundaryFill))
	require.NotEmpty(t, first)
	assert.Empty(t, slices.Collect(Fill(g, req, BoundaryFill)))
}

func TestFillSequenceIsSingleUse(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)
	seq := Fill(g, Request{SeedRow: 1, SeedCol: 1, Boundary: Boundary}, BoundaryFill)

	n := 0
	for range seq {
		n++
		break
	}
	assert.Equal(t, 1, n)
	assert.Empty(t, slices.Collect(seq))
}

func TestFillOpenGridFillsEverything(t *testing.T) {
	g, err := New(4, 5)
	require.NoError(t, err)
	for range Fill(g, Request{SeedRow: 0, SeedCol: 0, Boundary: Boundary}, BoundaryFill) {
	}
	assert.Equal(t, 20, g.Count(Filled))
}

func TestFillDoesNotCrossOtherRegions(t *testing.T) {
	g, err := New(5, 5)
	require.NoError(t, err)
	// a column of InProgress cells splits the grid; they are neither the
	// seed color nor the boundary, so the fill stops there silently
	for r := 0; r < 5; r++ {
		g.Set(r, 2, InProgress)
	}
	trs := slices.Collect(Fill(g, Request{SeedRow: 0, SeedCol: 0, Boundary: Boundary}, BoundaryFill))
	assert.Equal(t, 10, g.Count(Filled))
	assert.Equal(t, 5, g.Count(InProgress))
	for _, tr := range trs {
		assert.NotEqual(t, 2, tr.Col)
	}
}

func TestFillTransitionsReplayOntoCopy(t *testing.T) {
	g := boxed(t, 12, 12, 1, 1, 9, 7)
	g.Set(5, 4, Boundary)
	replay := g.Clone()

	for tr := range Fill(g, Request{SeedRow: 3, SeedCol: 3, Boundary: Boundary}, BoundaryFill) {
		from, ok := replay.At(tr.Row, tr.Col)
		require.True(t, ok)
		require.Equal(t, from, tr.From, "transition %+v", tr)
		replay.Apply(tr)
	}
	sameCells(t, g, replay)
}

func TestFillHighlightsComeInPairs(t *testing.T) {
	g := boxed(t, 8, 8, 0, 0, 7, 7)
	trs := slices.Collect(Fill(g, Request{SeedRow: 3, SeedCol: 3, Boundary: Boundary}, BoundaryFill))

	sawFilledRevisit := false
	for i, tr := range trs {
		if tr.To != Highlight {
			continue
		}
		require.Less(t, i+1, len(trs))
		next := trs[i+1]
		assert.Equal(t, tr.Row, next.Row)
		assert.Equal(t, tr.Col, next.Col)
		assert.Equal(t, Highlight, next.From)
		assert.Equal(t, tr.From, next.To)
		if tr.From == Filled {
			sawFilledRevisit = true
		}
	}
	assert.True(t, sawFilledRevisit)
}

func TestFillStoppedOnHighlightLeavesNoHighlight(t *testing.T) {
	g := boxed(t, 6, 6, 0, 0, 5, 5)
	for tr := range Fill(g, Request{SeedRow: 2, SeedCol: 2, Boundary: Boundary}, FloodFill) {
		if tr.To == Highlight {
			break
		}
	}
	assert.Zero(t, g.Count(Highlight))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("Flood")
	require.NoError(t, err)
	assert.Equal(t, FloodFill, p)
	p, err = ParsePolicy("boundary-fill")
	require.NoError(t, err)
	assert.Equal(t, BoundaryFill, p)
	_, err = ParsePolicy("scanline")
	assert.Error(t, err)
}
