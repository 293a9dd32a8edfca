package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/dayplan/internal/eventlog"
	"github.com/pablasso/dayplan/internal/plan"
	"github.com/pablasso/dayplan/internal/tui/components"
	"github.com/pablasso/dayplan/internal/tui/msgs"
	"github.com/pablasso/dayplan/internal/tui/styles"
)

// Form field indices
const (
	fieldTitle = iota
	fieldHours
	fieldDeadline
	fieldImportance
	fieldCount
)

// AddModel is the model for the add-task form.
type AddModel struct {
	store       *plan.Store
	log         *eventlog.Logger
	parentID    string
	parentTitle string

	inputs []textinput.Model
	focus  int
	errMsg string
	width  int
	height int
}

// NewAddModel creates the add form. A non-empty parentID makes the new
// task a subtask.
func NewAddModel(store *plan.Store, log *eventlog.Logger, parentID, parentTitle string) AddModel {
	inputs := make([]textinput.Model, fieldCount)

	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = 120
	title.Width = 40
	title.Focus()
	inputs[fieldTitle] = title

	hours := textinput.New()
	hours.Placeholder = "0"
	hours.CharLimit = 6
	hours.Width = 10
	inputs[fieldHours] = hours

	deadline := textinput.New()
	deadline.Placeholder = plan.DeadlineLayout
	deadline.CharLimit = len(plan.DeadlineLayout)
	deadline.Width = 14
	inputs[fieldDeadline] = deadline

	importance := textinput.New()
	importance.Placeholder = "3"
	importance.CharLimit = 1
	importance.Width = 4
	inputs[fieldImportance] = importance

	return AddModel{
		store:       store,
		log:         log,
		parentID:    parentID,
		parentTitle: parentTitle,
		inputs:      inputs,
	}
}

// Init implements tea.Model.
func (m AddModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m AddModel) Update(msg tea.Msg) (AddModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return msgs.GoToDayMsg{} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AddModel) setFocus(focus int) {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
}

// submit coerces the form fields and adds the task. Validation errors
// are shown inline; the store guarantees it is untouched on failure.
func (m AddModel) submit() (AddModel, tea.Cmd) {
	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	if title == "" {
		m.errMsg = "title must not be empty"
		return m, nil
	}

	hours, err := plan.ParseRequiredTime(m.inputs[fieldHours].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	deadline, err := plan.ParseDeadline(m.inputs[fieldDeadline].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	importance, err := plan.ParseImportance(m.inputs[fieldImportance].Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	task, err := m.store.Add(plan.Draft{
		Title:         title,
		RequiredTime:  hours,
		IdealDeadline: deadline,
		Importance:    importance,
		ParentID:      m.parentID,
	})
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.log.TaskAdded(task)
	return m, func() tea.Msg { return msgs.TaskAddedMsg{Task: task} }
}

// View implements tea.Model.
func (m AddModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	heading := "Add Task"
	if m.parentID != "" {
		heading = fmt.Sprintf("Add Subtask of %q", m.parentTitle)
	}
	title := styles.TitleStyle.Render(heading)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	labels := []string{"Title", "Hours", "Deadline", "Importance (1-4)"}
	for i, input := range m.inputs {
		label := fmt.Sprintf("%-18s", labels[i])
		if i == m.focus {
			label = styles.SelectedStyle.Render(label)
		} else {
			label = styles.SubtleStyle.Render(label)
		}
		b.WriteString("  " + label + input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("  " + styles.ErrorStyle.Render(m.errMsg))
	}
	b.WriteString("\n")

	statusItems := []string{"Tab Next field", "Enter Save", "Esc Cancel"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *AddModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Error returns the inline validation message.
func (m AddModel) Error() string {
	return m.errMsg
}

// Focus returns the focused field index.
func (m AddModel) Focus() int {
	return m.focus
}
