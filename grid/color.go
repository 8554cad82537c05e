package grid

import (
	"fmt"
	"strings"
)

// Color is a cell color from the fixed visualization palette.
type Color int

const (
	Background Color = iota
	Boundary
	InProgress
	Filled // visited-marker
	Highlight
)

const numColors = 5

func (c Color) String() string {
	switch c {
	case Background:
		return "background"
	case Boundary:
		return "boundary"
	case InProgress:
		return "in-progress"
	case Filled:
		return "filled"
	case Highlight:
		return "highlight"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Valid reports whether c is one of the palette values.
func (c Color) Valid() bool {
	return c >= 0 && c < numColors
}

// ParseColor accepts the names returned by String, case-insensitively.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := Color(0); c < numColors; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return Background, fmt.Errorf("unknown color %q", name)
}
