// Package raster generates the integer points visited by the classic
// Bresenham line and midpoint circle algorithms.
//
// The generators are pure: ranging over the same sequence again yields the
// same points.
package raster

import (
	"image"
	"iter"
	"slices"

	"github.com/ARBS-hmm/Raster/grid"
)

// Line yields the points of a Bresenham line from (x0, y0) toward (x1, y1).
//
// Only the first octant is handled: x0 <= x1 and a slope between 0 and 1.
// The loop runs while x != x1, so the end point itself is never yielded.
// When x0 > x1 nothing is yielded.
func Line(x0, y0, x1, y1 int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if x0 > x1 {
			return
		}
		dx := x1 - x0
		dy := y1 - y0
		x, y := x0, y0
		p := 2*dy - dx
		for x != x1 {
			if !yield(image.Pt(x, y)) {
				return
			}
			if p < 0 {
				p += 2 * dy
			} else {
				y++
				p += 2*dy - 2*dx
			}
			x++
		}
	}
}

// Circle yields the points of a midpoint circle of radius r around (xc, yc),
// eight symmetric points per step. Points on the octant diagonals and axes
// are yielded more than once. A negative radius yields nothing.
func Circle(xc, yc, r int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if r < 0 {
			return
		}
		x, y := 0, r
		d := 1 - r
		for x <= y {
			for _, p := range [8]image.Point{
				{xc + x, yc + y},
				{xc - x, yc + y},
				{xc + x, yc - y},
				{xc - x, yc - y},
				{xc + y, yc + x},
				{xc - y, yc + x},
				{xc + y, yc - x},
				{xc - y, yc - x},
			} {
				if !yield(p) {
					return
				}
			}
			if d < 0 {
				d += 2*x + 3
			} else {
				d += 2*(x-y) + 5
				y--
			}
			x++
		}
	}
}

// Collect gathers a point sequence into a slice.
func Collect(seq iter.Seq[image.Point]) []image.Point {
	return slices.Collect(seq)
}

// Plot paints each point of seq onto g as color c, treating x as the row and
// y as the column. It yields one transition per painted point; points outside
// the grid are skipped.
func Plot(g *grid.Grid, seq iter.Seq[image.Point], c grid.Color) iter.Seq[grid.Transition] {
	return func(yield func(grid.Transition) bool) {
		for p := range seq {
			from, ok := g.At(p.X, p.Y)
			if !ok {
				continue
			}
			g.Set(p.X, p.Y, c)
			if !yield(grid.Transition{Row: p.X, Col: p.Y, From: from, To: c}) {
				return
			}
		}
	}
}
