// Package grid holds the cell grid shared by the fill visualizations and the
// iterative boundary-fill / flood-fill engine that recolors it.
package grid

import (
	"errors"
	"fmt"
)

var ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")

// Grid is a fixed-size rows×cols array of cells. It is never resized.
type Grid struct {
	rows  int
	cols  int
	cells []Color
}

func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Color, rows*cols),
	}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the color at (row, col), or false when it lies outside the grid.
func (g *Grid) At(row, col int) (Color, bool) {
	if !g.InBounds(row, col) {
		return Background, false
	}
	return g.cells[row*g.cols+col], true
}

// Set recolors a cell. Out-of-bounds coordinates and colors outside the
// palette are ignored and report false.
func (g *Grid) Set(row, col int, c Color) bool {
	if !g.InBounds(row, col) || !c.Valid() {
		return false
	}
	g.cells[row*g.cols+col] = c
	return true
}

// Reset paints every cell Background.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Background
	}
}

// Rectangle draws the outline of the rectangle with corners (r1, c1) and
// (r2, c2), inclusive. Edge cells that fall outside the grid are skipped.
func (g *Grid) Rectangle(r1, c1, r2, c2 int, c Color) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for r := r1; r <= r2; r++ {
		g.Set(r, c1, c)
		g.Set(r, c2, c)
	}
	for col := c1; col <= c2; col++ {
		g.Set(r1, col, c)
		g.Set(r2, col, c)
	}
}

// Apply sets the cell named by t to t.To.
func (g *Grid) Apply(t Transition) {
	g.Set(t.Row, t.Col, t.To)
}

// Revert sets the cell named by t back to t.From.
func (g *Grid) Revert(t Transition) {
	g.Set(t.Row, t.Col, t.From)
}

// Count returns the number of cells holding c.
func (g *Grid) Count(c Color) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}
