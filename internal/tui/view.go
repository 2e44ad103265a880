package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header: title, active mode and zoom label
	title := titleStyle.Render(" infcanvas ─ infinite canvas ")
	mode := modeStyle.Render("mode: " + m.machine.Mode().String())
	zoom := zoomStyle.Render(fmt.Sprintf("%d%%", m.machine.ZoomPercent()))
	left := lipgloss.JoinHorizontal(lipgloss.Top, title, mode)
	header := lipgloss.JoinHorizontal(lipgloss.Top, left,
		lipgloss.PlaceHorizontal(max(0, lo.contentW-lipgloss.Width(left)), lipgloss.Right, zoom))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.pasteMode:
		m.ta.SetWidth(lo.mapW)
		m.ta.SetHeight(min(lo.mapH, 12))
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.ta.View())
	case m.showSegments:
		m.tbl.SetHeight(min(lo.mapH-4, 20))
		box := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.exportPopup != "":
		w := min(lo.mapW-4, 72)
		box := boxStyle.Width(w).Render(m.exportPopup)
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	default:
		mapView = m.renderCanvas(lo.mapW, lo.mapH)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer: status, counts and cursor position on the first line, help below
	status := dimStyle.Render(" " + m.status + " ")
	info := fmt.Sprintf("  segs=%d  %s", len(m.machine.Segments()), m.machine.State())
	if m.hovering {
		wx, wy := m.machine.CursorWorld()
		info += fmt.Sprintf("  x=%.2f y=%.2f", wx, wy)
	}
	infoStr := dimStyle.Render(info + "  ")
	spacer := max(0, lo.contentW-lipgloss.Width(status)-lipgloss.Width(infoStr))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacer), infoStr)
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, m.renderHelp())

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderCanvas prints the braille surface, padded to exactly w x h cells.
func (m Model) renderCanvas(w, h int) string {
	lines := m.surface.Lines()
	out := make([]string, h)
	for y := 0; y < h; y++ {
		var row string
		if y < len(lines) {
			row = lines[y]
		}
		if n := lipgloss.Width(row); n < w {
			row += strings.Repeat(" ", w-n)
		}
		out[y] = m.canvasStyle.Render(row)
	}
	return strings.Join(out, "\n")
}

func (m Model) renderHelp() string {
	return " " + m.help.View(m.keys)
}
