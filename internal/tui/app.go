// Package tui implements the terminal day-planner interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/dayplan/internal/eventlog"
	"github.com/pablasso/dayplan/internal/tui/msgs"
	"github.com/pablasso/dayplan/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewDay View = iota
	ViewAdd
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	day         views.DayModel
	add         views.AddModel
	opts        Options
	width       int
	height      int
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel builds the root model from the session options.
func NewModel(opts Options) Model {
	if opts.Log == nil {
		opts.Log = eventlog.NewNop()
	}
	return Model{
		currentView: ViewDay,
		day:         views.NewDayModel(opts.Store, opts.Log, opts.AvailableHours),
		opts:        opts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.day.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.day.SetSize(msg.Width, msg.Height)
		m.add.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.GoToAddMsg:
		m.add = views.NewAddModel(m.opts.Store, m.opts.Log, msg.ParentID, msg.ParentTitle)
		m.add.SetSize(m.width, m.height)
		m.currentView = ViewAdd
		return m, m.add.Init()

	case msgs.TaskAddedMsg, msgs.GoToDayMsg:
		m.currentView = ViewDay
		m.day.Refresh()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewAdd:
		m.add, cmd = m.add.Update(msg)
	default:
		m.day, cmd = m.day.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.currentView {
	case ViewAdd:
		return m.add.View()
	default:
		return m.day.View()
	}
}
