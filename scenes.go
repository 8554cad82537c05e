package main

import (
	"fmt"
	"image"
	"iter"
	"strings"

	"github.com/ARBS-hmm/Raster/grid"
	"github.com/ARBS-hmm/Raster/raster"
	"github.com/ARBS-hmm/Raster/stack"
)

// frame is one committed step of a scene.
type frame struct {
	caption string
	cells   []grid.Transition
	delta   stack.Delta[string]
	action  *Action
}

type scene struct {
	kind   SceneKind
	title  string
	code   []string
	anchor point
	grid   *grid.Grid
	stack  *stack.Stack[string]
	steps  iter.Seq[frame]
}

var sceneNames = [numScenes]string{
	SceneBoundary: "boundary",
	SceneFlood:    "flood",
	SceneLine:     "line",
	SceneCircle:   "circle",
	SceneStack:    "stack",
}

func (k SceneKind) String() string {
	if k < 0 || k >= numScenes {
		return fmt.Sprintf("SceneKind(%d)", int(k))
	}
	return sceneNames[k]
}

func (k SceneKind) usesGrid() bool {
	return k != SceneStack
}

func (k SceneKind) defaultPolicy() grid.Policy {
	if k == SceneFlood {
		return grid.FloodFill
	}
	return grid.BoundaryFill
}

// defaultAnchor is the fill seed, line start or circle centre of a scene.
func (k SceneKind) defaultAnchor(rows, cols int) point {
	switch k {
	case SceneLine:
		return point{1, 1}
	case SceneCircle:
		return point{rows / 2, cols / 2}
	default:
		return point{13, 3}
	}
}

func parseScene(name string) (SceneKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := SceneKind(0); k < numScenes; k++ {
		if sceneNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown scene %q (want one of %s)", name, strings.Join(sceneNames[:], ", "))
}

var stackScript = []struct {
	push    bool
	payload string
}{
	{true, "Apple"},
	{true, "Banana"},
	{true, "Cherry"},
	{true, "Date"},
	{true, "Elderberry"},
	{true, "Fig"},
	{false, ""},
	{false, ""},
	{true, "Grape"},
}

// buildScene creates fresh state for kind. The anchor is the fill seed for
// the fill scenes, the start of the line, or the centre of the circle.
func buildScene(kind SceneKind, cfg *Config, policy grid.Policy, anchor point) (*scene, error) {
	sc := &scene{kind: kind, title: kind.String(), anchor: anchor, code: codeListings[kind]}

	if kind == SceneStack {
		s, err := stack.New[string](cfg.Window)
		if err != nil {
			return nil, err
		}
		sc.stack = s
		sc.steps = stackSteps(s)
		return sc, nil
	}

	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	sc.grid = g

	switch kind {
	case SceneBoundary:
		g.Rectangle(10, 1, 15, 7, grid.Boundary)
		sc.title = fmt.Sprintf("boundary fill (%s)", policy)
		sc.steps = fillSteps(g, grid.Request{SeedRow: anchor.Row, SeedCol: anchor.Col, Boundary: grid.Boundary}, policy)
	case SceneFlood:
		g.Rectangle(10, 1, 20, 10, grid.Boundary)
		sc.title = fmt.Sprintf("flood fill (%s)", policy)
		sc.steps = fillSteps(g, grid.Request{SeedRow: anchor.Row, SeedCol: anchor.Col, Boundary: grid.Boundary}, policy)
	case SceneLine:
		x1, y1 := anchor.Row+39, anchor.Col+19
		sc.title = fmt.Sprintf("bresenham (%d,%d)-(%d,%d)", anchor.Row, anchor.Col, x1, y1)
		sc.steps = plotSteps(g, raster.Line(anchor.Row, anchor.Col, x1, y1))
	case SceneCircle:
		r := min(cfg.Rows, cfg.Cols) / 3
		sc.title = fmt.Sprintf("midpoint circle r=%d at (%d,%d)", r, anchor.Row, anchor.Col)
		sc.steps = plotSteps(g, raster.Circle(anchor.Row, anchor.Col, r))
	}
	return sc, nil
}

func fillSteps(g *grid.Grid, req grid.Request, policy grid.Policy) iter.Seq[frame] {
	return func(yield func(frame) bool) {
		for tr := range grid.Fill(g, req, policy) {
			cells := []grid.Transition{tr}
			f := frame{
				caption: fillCaption(tr),
				cells:   cells,
				action:  paintAction(cells),
			}
			if !yield(f) {
				return
			}
		}
	}
}

func fillCaption(tr grid.Transition) string {
	switch {
	case tr.To == grid.Highlight && tr.From == grid.Filled:
		return fmt.Sprintf("(%d,%d) already filled", tr.Row, tr.Col)
	case tr.To == grid.Highlight:
		return fmt.Sprintf("(%d,%d) hit the boundary", tr.Row, tr.Col)
	case tr.From == grid.Highlight:
		return fmt.Sprintf("(%d,%d) back to %s", tr.Row, tr.Col, tr.To)
	default:
		return fmt.Sprintf("fill (%d,%d), push 4 neighbours", tr.Row, tr.Col)
	}
}

// plotSteps shows each generated point as InProgress and commits it to
// Filled when the next point is shown. Points off the grid are skipped.
func plotSteps(g *grid.Grid, points iter.Seq[image.Point]) iter.Seq[frame] {
	return func(yield func(frame) bool) {
		var pending *grid.Transition
		n := 0
		commit := func() []grid.Transition {
			if pending == nil {
				return nil
			}
			from, _ := g.At(pending.Row, pending.Col)
			c := grid.Transition{Row: pending.Row, Col: pending.Col, From: from, To: grid.Filled}
			g.Apply(c)
			pending = nil
			return []grid.Transition{c}
		}

		for tr := range raster.Plot(g, points, grid.InProgress) {
			n++
			var cells []grid.Transition
			if pending != nil && (pending.Row != tr.Row || pending.Col != tr.Col) {
				cells = commit()
			}
			cells = append(cells, tr)
			pending = &tr
			f := frame{
				caption: fmt.Sprintf("putpixel(%d, %d)  #%d", tr.Row, tr.Col, n),
				cells:   cells,
				action:  paintAction(cells),
			}
			if !yield(f) {
				return
			}
		}

		if cells := commit(); cells != nil {
			yield(frame{
				caption: fmt.Sprintf("done, %d pixels", n),
				cells:   cells,
				action:  paintAction(cells),
			})
		}
	}
}

func stackSteps(s *stack.Stack[string]) iter.Seq[frame] {
	return func(yield func(frame) bool) {
		for _, op := range stackScript {
			var f frame
			if op.push {
				h, delta := s.Push(op.payload)
				f = frame{
					caption: fmt.Sprintf("Adding: %s (#%d)", op.payload, h),
					delta:   delta,
					action:  &Action{Type: ActionPush, Data: PushData{Payload: op.payload}, Inverse: PopData{Payload: op.payload}},
				}
			} else {
				top, delta, ok := s.Pop()
				if !ok {
					f = frame{caption: "Stack is empty"}
				} else {
					f = frame{
						caption: fmt.Sprintf("Popping top element: %s (#%d)", top.Payload, top.Handle),
						delta:   delta,
						action:  &Action{Type: ActionPop, Data: PopData{Payload: top.Payload}, Inverse: PushData{Payload: top.Payload}},
					}
				}
			}
			if !yield(f) {
				return
			}
		}
	}
}

var codeListings = [numScenes][]string{
	SceneBoundary: {
		"void boundaryFill(int x, int y, int boundaryColor, int fillColor) {",
		"    int currentColor = getpixel(x, y);",
		"",
		"    if (currentColor == boundaryColor || currentColor == fillColor)",
		"        return;",
		"",
		"    putpixel(x, y, fillColor);",
		"",
		"    boundaryFill(x + 1, y, boundaryColor, fillColor);",
		"    boundaryFill(x - 1, y, boundaryColor, fillColor);",
		"    boundaryFill(x, y + 1, boundaryColor, fillColor);",
		"    boundaryFill(x, y - 1, boundaryColor, fillColor);",
		"}",
	},
	SceneFlood: {
		"void floodFill(int x, int y, int oldColor, int newColor) {",
		"    if (getpixel(x, y) != oldColor)",
		"        return;",
		"",
		"    putpixel(x, y, newColor);",
		"",
		"    floodFill(x + 1, y, oldColor, newColor);",
		"    floodFill(x - 1, y, oldColor, newColor);",
		"    floodFill(x, y + 1, oldColor, newColor);",
		"    floodFill(x, y - 1, oldColor, newColor);",
		"}",
	},
	SceneLine: {
		"void bresenham(int x0, int y0, int x1, int y1) {",
		"   int dx = x1 - x0;",
		"   int dy = y1 - y0;",
		"   int x = x0, y = y0;",
		"   int P = 2*dy - dx;",
		"   while (x != x1) {",
		"      putpixel(x, y);",
		"      if (P < 0) {",
		"         P += 2*dy;",
		"      } else {",
		"         y++;",
		"         P += 2*dy - 2*dx;",
		"      }",
		"      x++;",
		"   }",
		"}",
	},
	SceneCircle: {
		"void circle(int xc, int yc, int r) {",
		"   int x = 0, y = r, d = 1 - r;",
		"   while (x <= y) {",
		"      putpixel(xc + x, yc + y);",
		"      putpixel(xc - x, yc + y);",
		"      putpixel(xc + x, yc - y);",
		"      putpixel(xc - x, yc - y);",
		"      putpixel(xc + y, yc + x);",
		"      putpixel(xc - y, yc + x);",
		"      putpixel(xc + y, yc - x);",
		"      putpixel(xc - y, yc - x);",
		"      if (d < 0) {",
		"         d += 2 * x + 3;",
		"      } else {",
		"         d += 2 * (x - y) + 5;",
		"         y--;",
		"      }",
		"      x++;",
		"   }",
		"}",
	},
	SceneStack: {
		"push(x):",
		"   stack.insert(0, x)",
		"   if len(stack) > K:",
		"      hide(stack[K])",
		"",
		"pop():",
		"   if stack is empty: return",
		"   top = stack.remove(0)",
		"   if len(stack) >= K:",
		"      show(stack[K-1])",
		"   return top",
	},
}
