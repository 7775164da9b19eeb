package ui

func clampDimension(value, minValue, maxValue int) int {
	if maxValue < 1 {
		maxValue = 1
	}
	if minValue < 1 {
		minValue = 1
	}
	if minValue > maxValue {
		minValue = maxValue
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

// clampCursor keeps the cursor inside the ranked list after every rank,
// resize, and overlay close. An empty list means no selection.
func (m *App) clampCursor() {
	if len(m.ranked) == 0 {
		m.cursor = 0
		m.listTop = 0
		return
	}
	if m.cursor >= len(m.ranked) {
		m.cursor = len(m.ranked) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// moveCursor shifts the selection by delta rows and scrolls the window to
// keep the cursor on screen.
func (m *App) moveCursor(delta int) {
	if len(m.ranked) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.ranked) {
		m.cursor = len(m.ranked) - 1
	}
	m.ensureCursorVisible()
	m.refreshPreview()
}

func (m *App) ensureCursorVisible() {
	visible := m.listHeight()
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.listTop {
		m.listTop = m.cursor
	}
	if m.cursor >= m.listTop+visible {
		m.listTop = m.cursor - visible + 1
	}
	if m.listTop < 0 {
		m.listTop = 0
	}
	maxTop := len(m.ranked) - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if m.listTop > maxTop {
		m.listTop = maxTop
	}
}

// listHeight is the number of candidate rows that fit between the header and
// the footer at the current terminal size.
func (m *App) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - headerHeight - footerHeight
	if h < 0 {
		h = 0
	}
	return h
}
