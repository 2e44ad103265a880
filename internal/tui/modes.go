package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"infcanvas/internal/canvas"
)

type modeItem struct {
	mode canvas.DrawMode
}

func (i modeItem) Title() string {
	if i.mode.Draws() {
		return i.mode.String()
	}
	return i.mode.String() + " (soon)"
}
func (i modeItem) Description() string { return "" }
func (i modeItem) FilterValue() string { return i.mode.String() }

func modeItems() []list.Item {
	items := make([]list.Item, 0, len(canvas.Modes))
	for _, mode := range canvas.Modes {
		items = append(items, modeItem{mode: mode})
	}
	return items
}

// selectMode switches the machine to mode and moves the list cursor with it.
func (m *Model) selectMode(mode canvas.DrawMode) {
	m.machine.SetMode(mode)
	for i, mo := range canvas.Modes {
		if mo == mode {
			m.l.Select(i)
		}
	}
	m.status = fmt.Sprintf("mode: %s", mode)
}
