package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"infcanvas/internal/braille"
	"infcanvas/internal/canvas"
	"infcanvas/internal/geom"
	"infcanvas/internal/raster"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.syncSize()
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		if m.pasteMode || m.showSegments {
			return m, nil
		}
		m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pasteMode {
		switch msg.String() {
		case "esc":
			m.pasteMode = false
			m.ta.Blur()
			m.status = "paste cancelled"
			return m, nil
		case "enter":
			m.importWKT(m.ta.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	if m.showSegments {
		switch {
		case msg.String() == "esc", key.Matches(msg, m.keys.Segments):
			m.showSegments = false
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	if m.exportPopup != "" && (msg.String() == "esc" || key.Matches(msg, m.keys.Export)) {
		m.exportPopup = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Modes):
		// the canvas moves under the pointer
		m.machine.PointerLeave()
		m.showSidebar = !m.showSidebar
		m.syncSize()
	case m.showSidebar && msg.String() == "enter":
		if it, ok := m.l.SelectedItem().(modeItem); ok {
			m.selectMode(it.mode)
		}
	case m.showSidebar && (key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down)):
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Mode):
		if i := int(msg.String()[0] - '1'); i < len(canvas.Modes) {
			m.selectMode(canvas.Modes[i])
		}
	case key.Matches(msg, m.keys.Up):
		m.machine.PanBy(0, -braille.DotsY)
	case key.Matches(msg, m.keys.Down):
		m.machine.PanBy(0, braille.DotsY)
	case key.Matches(msg, m.keys.Left):
		m.machine.PanBy(-2*braille.DotsX, 0)
	case key.Matches(msg, m.keys.Right):
		m.machine.PanBy(2*braille.DotsX, 0)
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomAtCenter(-m.cfg.WheelStep)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomAtCenter(m.cfg.WheelStep)
	case key.Matches(msg, m.keys.Reset):
		m.machine.ResetView()
		m.status = "view reset"
	case key.Matches(msg, m.keys.Clear):
		m.machine.Clear()
		m.status = "cleared"
	case key.Matches(msg, m.keys.Paste):
		// overlays swallow mouse input, including the release
		m.machine.PointerLeave()
		m.hovering = false
		m.pasteMode = true
		m.exportPopup = ""
		m.ta.SetValue("")
		m.status = "paste mode"
		cmd := m.ta.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Export):
		m.exportPopup = exportText(m.machine.Segments())
		m.status = fmt.Sprintf("wkt: %d segments", len(m.machine.Segments()))
	case key.Matches(msg, m.keys.Segments):
		if len(m.machine.Segments()) == 0 {
			m.status = "no segments yet"
			return m, nil
		}
		m.machine.PointerLeave()
		m.hovering = false
		m.refreshSegments()
		m.showSegments = true
	case key.Matches(msg, m.keys.Snapshot):
		m.snapshot()
	}
	return m, nil
}

// updateMouse translates terminal mouse input into canvas events. Leaving the
// canvas area counts as pointer-leave.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	lo := m.layout()
	cx, cy := msg.X-lo.mapX, msg.Y-lo.mapY
	if cx < 0 || cx >= lo.mapW || cy < 0 || cy >= lo.mapH {
		m.hovering = false
		m.machine.PointerLeave()
		return
	}
	m.hovering = true
	x, y := cellToScreen(cx, cy)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.machine.PointerDown(canvas.ButtonPrimary, x, y)
			if !m.machine.Mode().Draws() {
				m.status = fmt.Sprintf("%s mode is not available yet", m.machine.Mode())
			}
		case tea.MouseButtonRight, tea.MouseButtonMiddle:
			m.machine.PointerDown(canvas.ButtonSecondary, x, y)
		case tea.MouseButtonWheelUp:
			m.machine.Wheel(-m.cfg.WheelStep, x, y)
			m.status = fmt.Sprintf("zoom: %d%%", m.machine.ZoomPercent())
		case tea.MouseButtonWheelDown:
			m.machine.Wheel(m.cfg.WheelStep, x, y)
			m.status = fmt.Sprintf("zoom: %d%%", m.machine.ZoomPercent())
		}
	case tea.MouseActionMotion:
		m.machine.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.machine.PointerUp()
	}
}

func (m *Model) zoomAtCenter(deltaY float64) {
	v := m.machine.Viewport()
	m.machine.Wheel(deltaY, float64(v.Width)/2, float64(v.Height)/2)
	m.status = fmt.Sprintf("zoom: %d%%", m.machine.ZoomPercent())
}

func (m *Model) importWKT(text string) {
	w := strings.TrimSpace(text)
	if w == "" {
		m.status = "paste: empty"
		return
	}
	lines, err := geom.ParseLines(w)
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return
	}
	segs := geom.Segments(lines)
	m.machine.Import(segs)
	bb, _ := geom.Bounds(lines)
	m.status = fmt.Sprintf("imported %d segments  bbox: [%.2f, %.2f, %.2f, %.2f]",
		len(segs), bb.MinX, bb.MinY, bb.MaxX, bb.MaxY)
	m.pasteMode = false
	m.ta.Blur()
}

// snapshot renders the current view to a PNG in the snapshot directory.
func (m *Model) snapshot() {
	surf := raster.New(1, 1)
	m.machine.RenderScaled(surf, float64(m.cfg.SnapshotScale))
	path, err := surf.SaveSnapshot(m.cfg.SnapshotDir, "canvas", m.now())
	if err != nil {
		m.status = "snapshot error: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// maxExportChars caps the popup; the full text can be long for big drawings.
const maxExportChars = 1200

func exportText(segs []canvas.Segment) string {
	s := geom.FormatMultiLineString(segs)
	if r := []rune(s); len(r) > maxExportChars {
		s = string(r[:maxExportChars]) + "…"
	}
	return s
}
