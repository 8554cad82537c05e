package main

// Up and down walk columns because columns are drawn bottom to top.
func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorRow -= speed
	case "l", "right", "L", "shift+right":
		m.cursorRow += speed
	case "k", "up", "K", "shift+up":
		m.cursorCol += speed
	case "j", "down", "J", "shift+down":
		m.cursorCol -= speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 5
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	m.cursorRow = max(0, min(m.cursorRow, m.config.Rows-1))
	m.cursorCol = max(0, min(m.cursorCol, m.config.Cols-1))
}
