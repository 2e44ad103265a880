package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

func segmentColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 6},
		{Title: "x0", Width: 11},
		{Title: "y0", Width: 11},
		{Title: "x1", Width: 11},
		{Title: "y1", Width: 11},
	}
}

// refreshSegments rebuilds the table rows from the store, newest first.
func (m *Model) refreshSegments() {
	segs := m.machine.Segments()
	rows := make([]table.Row, 0, len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", s.X0),
			fmt.Sprintf("%.2f", s.Y0),
			fmt.Sprintf("%.2f", s.X1),
			fmt.Sprintf("%.2f", s.Y1),
		})
	}
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}
