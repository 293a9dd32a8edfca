package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/dayplan/internal/eventlog"
	"github.com/pablasso/dayplan/internal/order"
	"github.com/pablasso/dayplan/internal/plan"
	"github.com/pablasso/dayplan/internal/realism"
	"github.com/pablasso/dayplan/internal/tui/components"
	"github.com/pablasso/dayplan/internal/tui/msgs"
	"github.com/pablasso/dayplan/internal/tui/styles"
)

// row is one visible line in the day view: a task at its hierarchy
// depth.
type row struct {
	task  plan.Task
	depth int
}

// DayModel is the model for the main day-plan view.
type DayModel struct {
	store *plan.Store
	log   *eventlog.Logger
	hours float64

	rows        []row
	cursor      int
	confirmWipe bool
	linkFromID  string // set while picking a link target
	status      string // transient feedback line
	width       int
	height      int
}

// NewDayModel creates the day view over the given store.
func NewDayModel(store *plan.Store, log *eventlog.Logger, hours float64) DayModel {
	m := DayModel{
		store: store,
		log:   log,
		hours: hours,
	}
	m.Refresh()
	return m
}

// Refresh rebuilds the visible rows from the store: roots in priority
// order, each subtree flattened depth-first with children in priority
// order as well.
func (m *DayModel) Refresh() {
	m.rows = nil
	m.appendRows(order.ByPriority(m.store.Roots()), 0)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *DayModel) appendRows(tasks []plan.Task, depth int) {
	for _, t := range tasks {
		m.rows = append(m.rows, row{task: t, depth: depth})
		m.appendRows(order.ByPriority(m.store.Children(t.ID)), depth+1)
	}
}

// Init implements tea.Model.
func (m DayModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DayModel) Update(msg tea.Msg) (DayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.confirmWipe {
			return m.updateWipeConfirm(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m DayModel) updateWipeConfirm(msg tea.KeyMsg) (DayModel, tea.Cmd) {
	m.confirmWipe = false
	if msg.String() == "y" {
		removed := m.store.WipeOut()
		m.log.WipedOut(removed)
		m.cursor = 0
		m.Refresh()
		m.status = fmt.Sprintf("wiped %d non-must tasks", removed)
	} else {
		m.status = "wipe cancelled"
	}
	return m, nil
}

func (m DayModel) updateNormal(msg tea.KeyMsg) (DayModel, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case " ":
		if t, ok := m.selected(); ok {
			if err := m.store.ToggleCompletion(t.ID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			toggled, _ := m.store.Get(t.ID)
			m.log.TaskToggled(t.ID, toggled.Completed)
			m.Refresh()
		}

	case "d":
		if t, ok := m.selected(); ok {
			if err := m.store.Delete(t.ID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.log.TaskDeleted(t.ID)
			m.Refresh()
			m.status = fmt.Sprintf("deleted %q", t.Title)
		}

	case "a":
		return m, func() tea.Msg { return msgs.GoToAddMsg{} }

	case "A":
		if t, ok := m.selected(); ok {
			return m, func() tea.Msg {
				return msgs.GoToAddMsg{ParentID: t.ID, ParentTitle: t.Title}
			}
		}

	case "l":
		return m.handleLinkKey()

	case "u":
		return m.handleUnlinkKey()

	case "w":
		if !m.store.HasWipeable() {
			m.status = "nothing to wipe: every task is must-importance"
			return m, nil
		}
		m.confirmWipe = true

	case "esc":
		if m.linkFromID != "" {
			m.linkFromID = ""
			m.status = "link cancelled"
		}
	}
	return m, nil
}

// handleLinkKey implements the two-step link gesture: the first press
// marks the source, the second press on another task creates the link.
func (m DayModel) handleLinkKey() (DayModel, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}

	if m.linkFromID == "" {
		m.linkFromID = t.ID
		m.status = fmt.Sprintf("linking from %q: press l on the target (esc cancels)", t.Title)
		return m, nil
	}

	if err := m.store.Link(m.linkFromID, t.ID); err != nil {
		m.status = err.Error()
	} else {
		m.log.Linked(m.linkFromID, t.ID)
		m.status = fmt.Sprintf("linked to %q", t.Title)
		m.Refresh()
	}
	m.linkFromID = ""
	return m, nil
}

// handleUnlinkKey removes the link from the marked source to the
// selected task.
func (m DayModel) handleUnlinkKey() (DayModel, tea.Cmd) {
	t, ok := m.selected()
	if !ok || m.linkFromID == "" {
		m.status = "press l on a source task first"
		return m, nil
	}

	if err := m.store.Unlink(m.linkFromID, t.ID); err != nil {
		m.status = err.Error()
	} else {
		m.log.Unlinked(m.linkFromID, t.ID)
		m.status = fmt.Sprintf("unlinked from %q", t.Title)
		m.Refresh()
	}
	m.linkFromID = ""
	return m, nil
}

func (m DayModel) selected() (plan.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return plan.Task{}, false
	}
	return m.rows[m.cursor].task, true
}

// View implements tea.Model.
func (m DayModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("D A Y P L A N")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		empty := styles.SubtleStyle.Render("No tasks yet. Press 'a' to add one.")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, empty))
		b.WriteString("\n")
	} else {
		for i, r := range m.rows {
			b.WriteString(m.formatRow(i, r))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.confirmWipe {
		prompt := styles.ErrorStyle.Render("Wipe every non-must task? This cannot be undone. (y/n)")
		b.WriteString(prompt)
	} else if m.status != "" {
		b.WriteString(styles.SubtleStyle.Render(m.status))
	}
	b.WriteString("\n")

	statusItems := []string{"↑↓ Navigate", "Space Toggle", "a Add", "A Subtask", "l Link", "d Delete", "w Wipe", "q Quit"}
	b.WriteString(components.NewStatusBar().RenderWithStatus(m.width, m.realismStatus(), statusItems))

	return b.String()
}

// formatRow formats one task line with depth indentation.
func (m DayModel) formatRow(index int, r row) string {
	indicator := " "
	if index == m.cursor {
		indicator = ">"
	}

	checkbox := "[ ]"
	if r.task.Completed {
		checkbox = "[x]"
	}

	deadline := ""
	if !r.task.IdealDeadline.IsZero() {
		deadline = r.task.IdealDeadline.Format("Jan 02")
	}

	linkMark := " "
	if r.task.HasLinks() {
		linkMark = "~"
	}

	indent := strings.Repeat("  ", r.depth)
	line := fmt.Sprintf("%s %s %s%s %-8s %-32s %5.1fh %7s",
		indicator, checkbox, indent, linkMark, r.task.Importance, r.task.Title, r.task.RequiredTime, deadline)

	switch {
	case index == m.cursor:
		return styles.SelectedStyle.Render(line)
	case r.task.Completed:
		return styles.SubtleStyle.Render(line)
	default:
		return line
	}
}

// realismStatus renders the feasibility summary over the incomplete
// tasks, colored by zone.
func (m DayModel) realismStatus() string {
	var open []plan.Task
	for _, t := range m.store.Tasks() {
		if !t.Completed {
			open = append(open, t)
		}
	}

	summary := realism.Stats(open, m.hours)
	text := fmt.Sprintf("%.1fh of %.1fh  RP %.2f (%s)",
		summary.TotalRequired, summary.AvailableHours, summary.Point, summary.Zone)

	switch summary.Zone {
	case realism.Safe:
		return styles.SuccessStyle.Render(text)
	case realism.Risky:
		return styles.WarnStyle.Render(text)
	default:
		return styles.ErrorStyle.Render(text)
	}
}

// SetSize updates the model dimensions.
func (m *DayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Rows returns the number of visible rows.
func (m DayModel) Rows() int {
	return len(m.rows)
}

// Cursor returns the current cursor position.
func (m DayModel) Cursor() int {
	return m.cursor
}

// Status returns the transient status line.
func (m DayModel) Status() string {
	return m.status
}

// ConfirmingWipe returns whether the wipe confirmation prompt is up.
func (m DayModel) ConfirmingWipe() bool {
	return m.confirmWipe
}
