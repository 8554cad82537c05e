package stack

import "fmt"

// Offscreen is the position of an entry that is not in the visible window.
const Offscreen = -1

// MoveKind classifies one entry's change of window position.
type MoveKind int

const (
	Enter  MoveKind = iota // pushed, Offscreen -> 0
	Shift                  // moved within the window
	Evict                  // pushed out, K-1 -> Offscreen
	Reveal                 // uncovered by a pop, Offscreen -> K-1
	Remove                 // popped or cleared
)

func (k MoveKind) String() string {
	switch k {
	case Enter:
		return "enter"
	case Shift:
		return "shift"
	case Evict:
		return "evict"
	case Reveal:
		return "reveal"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

type Move[T any] struct {
	Kind  MoveKind
	Entry Entry[T]
	From  int
	To    int
}

// Delta lists the window moves caused by one mutation, the acting entry
// first.
type Delta[T any] []Move[T]

// Of returns the moves of the given kind.
func (d Delta[T]) Of(kind MoveKind) []Move[T] {
	var out []Move[T]
	for _, m := range d {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// Final returns the window position each moved entry ends at, keyed by
// handle.
func (d Delta[T]) Final() map[Handle]int {
	out := make(map[Handle]int, len(d))
	for _, m := range d {
		out[m.Entry.Handle] = m.To
	}
	return out
}
