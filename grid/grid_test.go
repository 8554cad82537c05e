package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 30}, {70, 0}, {-1, 5}, {3, -3}} {
		g, err := New(dims[0], dims[1])
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%v", dims)
	}

	g, err := New(70, 30)
	require.NoError(t, err)
	assert.Equal(t, 70, g.Rows())
	assert.Equal(t, 30, g.Cols())
	assert.Equal(t, 70*30, g.Count(Background))
}

func TestAtAndSetBounds(t *testing.T) {
	g, err := New(3, 4)
	require.NoError(t, err)

	assert.True(t, g.Set(2, 3, Boundary))
	c, ok := g.At(2, 3)
	assert.True(t, ok)
	assert.Equal(t, Boundary, c)

	assert.False(t, g.Set(3, 0, Boundary))
	assert.False(t, g.Set(0, 4, Boundary))
	assert.False(t, g.Set(-1, 0, Boundary))
	assert.False(t, g.Set(0, 0, Color(42)))

	_, ok = g.At(-1, 2)
	assert.False(t, ok)
	assert.Equal(t, 1, g.Count(Boundary))
}

func TestRectangleOutline(t *testing.T) {
	g, err := New(8, 8)
	require.NoError(t, err)
	g.Rectangle(5, 5, 1, 2, Boundary)

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			onEdge := (r == 1 || r == 5) && c >= 2 && c <= 5 ||
				(c == 2 || c == 5) && r >= 1 && r <= 5
			want := Background
			if onEdge {
				want = Boundary
			}
			got, _ := g.At(r, c)
			assert.Equal(t, want, got, "cell (%d,%d)", r, c)
		}
	}
}

func TestRectangleClipsToGrid(t *testing.T) {
	g, err := New(4, 4)
	require.NoError(t, err)
	g.Rectangle(-2, -2, 1, 1, Boundary)
	assert.Equal(t, 3, g.Count(Boundary))
}

func TestApplyRevertAndClone(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	tr := Transition{Row: 1, Col: 0, From: Background, To: Filled}

	snapshot := g.Clone()
	g.Apply(tr)
	c, _ := g.At(1, 0)
	assert.Equal(t, Filled, c)
	c, _ = snapshot.At(1, 0)
	assert.Equal(t, Background, c)

	g.Revert(tr)
	c, _ = g.At(1, 0)
	assert.Equal(t, Background, c)
}

func TestParseColor(t *testing.T) {
	for c := Color(0); c < numColors; c++ {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseColor("mauve")
	assert.Error(t, err)
	assert.Equal(t, "Color(9)", Color(9).String())
}
