package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ARBS-hmm/Raster/grid"
	"github.com/ARBS-hmm/Raster/stack"
)

const (
	stackBoxWidth = 18
	codeMinWidth  = 40
)

// Rows run left to right and columns bottom to top, the same way the grid
// is laid out in the exported images.

var cellStyles = map[grid.Color]lipgloss.Style{
	grid.Background: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	grid.Boundary:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	grid.InProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	grid.Filled:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	grid.Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

var cellGlyphs = map[grid.Color]string{
	grid.Background: "·",
	grid.Boundary:   "█",
	grid.InProgress: "█",
	grid.Filled:     "█",
	grid.Highlight:  "█",
}

// Plain-text glyphs used for the TXT export and the clipboard.
var plainGlyphs = map[grid.Color]byte{
	grid.Background: '.',
	grid.Boundary:   '#',
	grid.InProgress: '+',
	grid.Filled:     'o',
	grid.Highlight:  '*',
}

var paletteRGBA = map[grid.Color]color.RGBA{
	grid.Background: {0, 0, 0, 255},
	grid.Boundary:   {255, 255, 255, 255},
	grid.InProgress: {255, 255, 0, 255},
	grid.Filled:     {88, 196, 221, 255},
	grid.Highlight:  {252, 98, 85, 255},
}

var (
	cursorStyle  = lipgloss.NewStyle().Reverse(true).Foreground(lipgloss.Color("10"))
	codeStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	entryStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).Width(stackBoxWidth).Align(lipgloss.Center)
	enterStyle  = entryStyle.Copy().BorderForeground(lipgloss.Color("10"))
	revealStyle = entryStyle.Copy().BorderForeground(lipgloss.Color("14"))
	ghostStyle  = lipgloss.NewStyle().Faint(true)
	popStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderGrid draws g one terminal line per column, top column first. When
// cursor is non-nil that cell is drawn as the cursor.
func renderGrid(g *grid.Grid, cursor *point) []string {
	lines := make([]string, 0, g.Cols())
	for col := g.Cols() - 1; col >= 0; col-- {
		var line strings.Builder
		run := strings.Builder{}
		runColor := grid.Color(-1)
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(cellStyles[runColor].Render(run.String()))
				run.Reset()
			}
		}
		for row := 0; row < g.Rows(); row++ {
			c, _ := g.At(row, col)
			if cursor != nil && cursor.Row == row && cursor.Col == col {
				flush()
				line.WriteString(cursorStyle.Render("+"))
				runColor = -1
				continue
			}
			if c != runColor {
				flush()
				runColor = c
			}
			run.WriteString(cellGlyphs[c])
		}
		flush()
		lines = append(lines, line.String())
	}
	return lines
}

func plainGrid(g *grid.Grid, cursor *point) []string {
	lines := make([]string, 0, g.Cols())
	for col := g.Cols() - 1; col >= 0; col-- {
		buf := make([]byte, g.Rows())
		for row := range buf {
			c, _ := g.At(row, col)
			buf[row] = plainGlyphs[c]
			if cursor != nil && cursor.Row == row && cursor.Col == col {
				buf[row] = '@'
			}
		}
		lines = append(lines, string(buf))
	}
	return lines
}

// stackView is the window of s decorated with the moves of the last delta.
type stackView struct {
	window  []stack.Entry[string]
	hidden  int
	entered map[stack.Handle]bool
	shown   map[stack.Handle]bool
	moved   map[stack.Handle]int
	popped  []string
	evicted []string
}

func newStackView(s *stack.Stack[string], delta stack.Delta[string]) stackView {
	v := stackView{
		window:  s.Window(),
		hidden:  s.Hidden(),
		entered: make(map[stack.Handle]bool),
		shown:   make(map[stack.Handle]bool),
		moved:   delta.Final(),
	}
	for _, m := range delta.Of(stack.Enter) {
		v.entered[m.Entry.Handle] = true
	}
	for _, m := range delta.Of(stack.Reveal) {
		v.shown[m.Entry.Handle] = true
	}
	for _, m := range delta.Of(stack.Remove) {
		v.popped = append(v.popped, m.Entry.Payload)
	}
	for _, m := range delta.Of(stack.Evict) {
		v.evicted = append(v.evicted, m.Entry.Payload)
	}
	return v
}

func renderStack(s *stack.Stack[string], delta stack.Delta[string]) []string {
	v := newStackView(s, delta)
	var lines []string

	for _, p := range v.popped {
		lines = append(lines, popStyle.Render("  ↑ popped "+p))
	}
	lines = append(lines, ghostStyle.Render(fmt.Sprintf("  top (%d/%d visible)", len(v.window), s.Size())))
	for _, e := range v.window {
		style := entryStyle
		switch {
		case v.entered[e.Handle]:
			style = enterStyle
		case v.shown[e.Handle]:
			style = revealStyle
		}
		label := e.Payload
		if _, ok := v.moved[e.Handle]; ok && !v.entered[e.Handle] && !v.shown[e.Handle] {
			label += " ⇅"
		}
		lines = append(lines, strings.Split(style.Render(label), "\n")...)
	}
	for _, p := range v.evicted {
		lines = append(lines, ghostStyle.Render("  ↓ hidden "+p))
	}
	if v.hidden > 0 {
		lines = append(lines, ghostStyle.Render(fmt.Sprintf("  +%d below the window", v.hidden)))
	}
	return lines
}

func plainStack(s *stack.Stack[string], delta stack.Delta[string]) []string {
	v := newStackView(s, delta)
	var lines []string
	for _, p := range v.popped {
		lines = append(lines, "  ^ popped "+p)
	}
	border := "+" + strings.Repeat("-", stackBoxWidth) + "+"
	lines = append(lines, border)
	for _, e := range v.window {
		mark := " "
		if v.entered[e.Handle] {
			mark = ">"
		} else if v.shown[e.Handle] {
			mark = "<"
		}
		lines = append(lines, fmt.Sprintf("|%s%-*s|", mark, stackBoxWidth-1, e.Payload))
	}
	lines = append(lines, border)
	for _, p := range v.evicted {
		lines = append(lines, "  v hidden "+p)
	}
	if v.hidden > 0 {
		lines = append(lines, fmt.Sprintf("  +%d below the window", v.hidden))
	}
	return lines
}

func renderCode(code []string, width int) string {
	if width < codeMinWidth {
		width = codeMinWidth
	}
	return codeStyle.Width(width).Render(strings.Join(code, "\n"))
}

func longestLine(lines []string) int {
	n := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > n {
			n = w
		}
	}
	return n
}

// plainFrame renders the scene without styling, for files and the clipboard.
func plainFrame(sc *scene, f frame, cursor *point) []string {
	lines := []string{sc.title, ""}
	if sc.grid != nil {
		lines = append(lines, plainGrid(sc.grid, cursor)...)
	} else {
		lines = append(lines, plainStack(sc.stack, f.delta)...)
	}
	if f.caption != "" {
		lines = append(lines, "", f.caption)
	}
	return lines
}
