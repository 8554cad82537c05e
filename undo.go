package main

import (
	"fmt"

	"github.com/ARBS-hmm/Raster/grid"
)

func paintAction(cells []grid.Transition) *Action {
	inverse := make([]grid.Transition, len(cells))
	for i, c := range cells {
		inverse[len(cells)-1-i] = grid.Transition{Row: c.Row, Col: c.Col, From: c.To, To: c.From}
	}
	return &Action{
		Type:    ActionPaint,
		Data:    PaintData{Cells: cells},
		Inverse: PaintData{Cells: inverse},
	}
}

// History can only be walked once the scene has run out of steps; before
// that the scene's own iterator still owns the state.
func (m *model) historyReady() bool {
	if m.player == nil {
		return false
	}
	if !m.player.done {
		m.errorMessage = "Undo is available once the scene has finished"
		return false
	}
	return true
}

func (m *model) undo() {
	if !m.historyReady() {
		return
	}
	p := m.player
	if len(p.undoStack) == 0 {
		return
	}

	lastIndex := len(p.undoStack) - 1
	action := p.undoStack[lastIndex]
	p.undoStack = p.undoStack[:lastIndex]

	switch action.Type {
	case ActionPaint:
		data := action.Inverse.(PaintData)
		p.current = m.paint(data.Cells, "undo")
	case ActionPush:
		p.current = m.popFrame("undo push")
	case ActionPop:
		data := action.Inverse.(PushData)
		p.current = m.pushFrame(data.Payload, "undo pop")
	}
	p.steps--

	p.redoStack = append(p.redoStack, action)
}

func (m *model) redo() {
	if !m.historyReady() {
		return
	}
	p := m.player
	if len(p.redoStack) == 0 {
		return
	}

	lastIndex := len(p.redoStack) - 1
	action := p.redoStack[lastIndex]
	p.redoStack = p.redoStack[:lastIndex]

	switch action.Type {
	case ActionPaint:
		data := action.Data.(PaintData)
		p.current = m.paint(data.Cells, "redo")
	case ActionPush:
		data := action.Data.(PushData)
		p.current = m.pushFrame(data.Payload, "redo push")
	case ActionPop:
		p.current = m.popFrame("redo pop")
	}
	p.steps++

	p.undoStack = append(p.undoStack, action)
}

func (m *model) paint(cells []grid.Transition, verb string) frame {
	g := m.player.scene.grid
	for _, c := range cells {
		g.Apply(c)
	}
	caption := verb
	if len(cells) > 0 {
		last := cells[len(cells)-1]
		caption = fmt.Sprintf("%s (%d,%d) -> %s", verb, last.Row, last.Col, last.To)
	}
	return frame{caption: caption, cells: cells}
}

func (m *model) pushFrame(payload, verb string) frame {
	h, delta := m.player.scene.stack.Push(payload)
	return frame{caption: fmt.Sprintf("%s: %s (#%d)", verb, payload, h), delta: delta}
}

func (m *model) popFrame(verb string) frame {
	top, delta, ok := m.player.scene.stack.Pop()
	if !ok {
		return frame{caption: "Stack is empty"}
	}
	return frame{caption: fmt.Sprintf("%s: %s", verb, top.Payload), delta: delta}
}
