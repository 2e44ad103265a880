package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"infcanvas/internal/braille"
	"infcanvas/internal/canvas"
	"infcanvas/internal/config"
)

type Model struct {
	width  int
	height int

	cfg     *config.Config
	machine *canvas.Machine
	surface *braille.Surface

	showSidebar bool
	status      string

	// draw-mode sidebar
	l list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// WKT export popup
	exportPopup string

	// segment table
	showSegments bool
	tbl          table.Model

	keys keyMap
	help help.Model

	// pointer is over the canvas
	hovering bool

	canvasStyle lipgloss.Style
	now         func() time.Time
}

// New builds the terminal model. logger may be nil.
func New(cfg *config.Config, logger *log.Logger) Model {
	m := Model{
		cfg:     cfg,
		status:  "infcanvas ready",
		keys:    defaultKeyMap(),
		help:    help.New(),
		surface: braille.New(0, 0),
		now:     time.Now,
	}
	opts := cfg.Options()
	if logger != nil {
		opts = append(opts, canvas.WithLogger(logger))
	}
	m.machine = canvas.New(m.surface, 0, 0, opts...)
	m.canvasStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.StrokeColor)).
		Background(lipgloss.Color(cfg.Background))

	// mode list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(modeItems(), d, 0, 0)
	m.l.Title = "Modes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (LINESTRING, MULTILINESTRING). Press Enter to import; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// segment table setup
	m.tbl = table.New(table.WithColumns(segmentColumns()), table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

// Machine exposes the interaction state machine behind the canvas.
func (m Model) Machine() *canvas.Machine { return m.machine }

func (m Model) Init() tea.Cmd { return nil }
