package tui

import "infcanvas/internal/braille"

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by Update and View.
type layout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	lo.mapY = headerHeight
	lo.mapW = max(10, lo.contentW-lo.mapX)
	lo.mapH = lo.contentH
	return lo
}

// cellToScreen maps a canvas cell to the centre of its dot block.
func cellToScreen(cx, cy int) (float64, float64) {
	return float64(cx*braille.DotsX) + 0.5, float64(cy*braille.DotsY) + 1.5
}

// syncSize resizes the canvas and sidebar to the current layout.
func (m *Model) syncSize() {
	lo := m.layout()
	m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	w, h := lo.mapW*braille.DotsX, lo.mapH*braille.DotsY
	if v := m.machine.Viewport(); v.Width != w || v.Height != h {
		m.machine.Resize(w, h)
	}
}
