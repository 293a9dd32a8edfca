// Package msgs defines shared message types for TUI view transitions.
package msgs

import "github.com/pablasso/dayplan/internal/plan"

// GoToDayMsg signals transition back to the day view.
type GoToDayMsg struct{}

// GoToAddMsg signals transition to the add-task form. ParentID is set
// when the new task should become a subtask of a selected task.
type GoToAddMsg struct {
	ParentID    string
	ParentTitle string
}

// TaskAddedMsg is sent when the add form successfully created a task.
type TaskAddedMsg struct {
	Task plan.Task
}
