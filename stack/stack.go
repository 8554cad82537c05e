// Package stack implements a push/pop stack of unbounded depth that exposes
// only its K most recent entries as a visible window.
//
// The logical sequence is the only stored state; the window is derived from
// it on every call, so it can never drift out of sync. Mutations report a
// Delta describing how each visible entry moved, which is what an animation
// layer needs to reflow the window.
package stack

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// DefaultWindow is the visible window size used by the demos.
const DefaultWindow = 5

var ErrInvalidWindow = errors.New("stack: window size must be positive")

// Handle identifies an entry for the lifetime of its Stack. Handles are
// never reused, not even after Clear.
type Handle uint64

type Entry[T any] struct {
	Handle  Handle
	Payload T
}

// Stack is not safe for concurrent use.
type Stack[T any] struct {
	k       int
	entries []Entry[T] // oldest first; the top is the last element
	last    Handle
}

func New[T any](k int) (*Stack[T], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, k)
	}
	return &Stack[T]{k: k}, nil
}

// Size returns K, the capacity of the visible window.
func (s *Stack[T]) Size() int { return s.k }

// Len returns the logical depth.
func (s *Stack[T]) Len() int { return len(s.entries) }

// Hidden returns how many entries sit below the window.
func (s *Stack[T]) Hidden() int {
	return max(0, len(s.entries)-s.k)
}

// Push places payload on top. The entry that was at window position K-1,
// if any, is evicted below the window.
func (s *Stack[T]) Push(payload T) (Handle, Delta[T]) {
	before := s.Window()

	s.last++
	e := Entry[T]{Handle: s.last, Payload: payload}
	s.entries = append(s.entries, e)

	delta := make(Delta[T], 0, len(before)+1)
	delta = append(delta, Move[T]{Kind: Enter, Entry: e, From: Offscreen, To: 0})
	for i, old := range before {
		if i+1 < s.k {
			delta = append(delta, Move[T]{Kind: Shift, Entry: old, From: i, To: i + 1})
		} else {
			delta = append(delta, Move[T]{Kind: Evict, Entry: old, From: i, To: Offscreen})
		}
	}
	return e.Handle, delta
}

// Pop removes the top entry. It reports false when the stack is empty.
// If an entry was hidden directly below the window it is revealed at
// position K-1.
func (s *Stack[T]) Pop() (Entry[T], Delta[T], bool) {
	n := len(s.entries)
	if n == 0 {
		return Entry[T]{}, nil, false
	}
	before := s.Window()

	top := s.entries[n-1]
	s.entries[n-1] = Entry[T]{}
	s.entries = s.entries[:n-1]

	delta := make(Delta[T], 0, len(before)+1)
	delta = append(delta, Move[T]{Kind: Remove, Entry: top, From: 0, To: Offscreen})
	for i := 1; i < len(before); i++ {
		delta = append(delta, Move[T]{Kind: Shift, Entry: before[i], From: i, To: i - 1})
	}
	if len(s.entries) >= s.k {
		revealed := s.entries[len(s.entries)-s.k]
		delta = append(delta, Move[T]{Kind: Reveal, Entry: revealed, From: Offscreen, To: s.k - 1})
	}
	return top, delta, true
}

// Window returns the visible entries, top first. Its length is
// min(K, Len()).
func (s *Stack[T]) Window() []Entry[T] {
	n := min(s.k, len(s.entries))
	w := make([]Entry[T], n)
	for i := range w {
		w[i] = s.entries[len(s.entries)-1-i]
	}
	return w
}

// Top returns the top entry without removing it.
func (s *Stack[T]) Top() (Entry[T], bool) {
	if len(s.entries) == 0 {
		return Entry[T]{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Lookup finds a live entry by handle.
func (s *Stack[T]) Lookup(h Handle) (Entry[T], bool) {
	i, ok := s.find(h)
	if !ok {
		return Entry[T]{}, false
	}
	return s.entries[i], true
}

// Position returns the window position of h, or Offscreen when the entry is
// hidden or no longer on the stack.
func (s *Stack[T]) Position(h Handle) int {
	i, ok := s.find(h)
	if !ok {
		return Offscreen
	}
	if pos := len(s.entries) - 1 - i; pos < s.k {
		return pos
	}
	return Offscreen
}

// handles only ever grow and entries leave from the top, so entries stay
// sorted by handle
func (s *Stack[T]) find(h Handle) (int, bool) {
	return slices.BinarySearchFunc(s.entries, h, func(e Entry[T], h Handle) int {
		return cmp.Compare(e.Handle, h)
	})
}

// Clear empties the stack and reports the removal of every visible entry.
// Clearing an empty stack returns an empty Delta.
func (s *Stack[T]) Clear() Delta[T] {
	var delta Delta[T]
	for i, e := range s.Window() {
		delta = append(delta, Move[T]{Kind: Remove, Entry: e, From: i, To: Offscreen})
	}
	clear(s.entries)
	s.entries = s.entries[:0]
	return delta
}
