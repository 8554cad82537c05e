package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Request starts one fill at (SeedRow, SeedCol). Cells of the Boundary color
// are never crossed.
type Request struct {
	SeedRow  int
	SeedCol  int
	Boundary Color
}

// Transition is a single observable recolor of one cell.
type Transition struct {
	Row  int
	Col  int
	From Color
	To   Color
}

// Policy selects what a boundary cell is recolored to once its revisit
// highlight ends.
type Policy int

const (
	// BoundaryFill puts the boundary color back.
	BoundaryFill Policy = iota
	// FloodFill paints the boundary cell Background.
	FloodFill
)

func (p Policy) String() string {
	switch p {
	case BoundaryFill:
		return "boundary"
	case FloodFill:
		return "flood"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boundary", "boundary-fill", "boundaryfill":
		return BoundaryFill, nil
	case "flood", "flood-fill", "floodfill":
		return FloodFill, nil
	}
	return BoundaryFill, fmt.Errorf("unknown fill policy %q", name)
}

func (p Policy) terminal(boundary Color) Color {
	if p == FloodFill {
		return Background
	}
	return boundary
}

type coord struct {
	row, col int
}

// Fill returns the transitions of an iterative 4-way fill of g starting at
// the request seed. Every transition has already been applied to g when it
// is yielded, so a consumer that stops early leaves g partially filled.
//
// The sequence is lazy and single-use: ranging over it a second time yields
// nothing. A seed outside the grid, on the boundary color, or already Filled
// produces an empty sequence.
//
// Revisiting a Filled or boundary cell yields a pair of transitions flashing
// it through Highlight; the second of the pair puts back Filled, or the
// policy's terminal color for boundary cells.
func Fill(g *Grid, req Request, policy Policy) iter.Seq[Transition] {
	used := false
	return func(yield func(Transition) bool) {
		if used {
			return
		}
		used = true

		start, ok := g.At(req.SeedRow, req.SeedCol)
		if !ok || start == req.Boundary || start == Filled {
			return
		}

		work := []coord{{req.SeedRow, req.SeedCol}}
		for len(work) > 0 {
			cur := work[len(work)-1]
			work = work[:len(work)-1]

			color, ok := g.At(cur.row, cur.col)
			if !ok {
				continue
			}

			switch {
			case color == Filled:
				if !g.flash(cur, Filled, Filled, yield) {
					return
				}
			case color == req.Boundary:
				if !g.flash(cur, req.Boundary, policy.terminal(req.Boundary), yield) {
					return
				}
			case color != start:
			default:
				g.Set(cur.row, cur.col, Filled)
				if !yield(Transition{Row: cur.row, Col: cur.col, From: start, To: Filled}) {
					return
				}
				work = append(work,
					coord{cur.row + 1, cur.col},
					coord{cur.row - 1, cur.col},
					coord{cur.row, cur.col + 1},
					coord{cur.row, cur.col - 1},
				)
			}
		}
	}
}

// flash recolors a cell to Highlight and then to after, yielding both steps.
// If the consumer stops on the highlight the cell still ends up as after.
func (g *Grid) flash(at coord, from, after Color, yield func(Transition) bool) bool {
	g.Set(at.row, at.col, Highlight)
	if !yield(Transition{Row: at.row, Col: at.col, From: from, To: Highlight}) {
		g.Set(at.row, at.col, after)
		return false
	}
	g.Set(at.row, at.col, after)
	return yield(Transition{Row: at.row, Col: at.col, From: Highlight, To: after})
}
