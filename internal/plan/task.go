package plan

import (
	"strconv"
	"strings"
	"time"
)

// Importance classifies how critical a task is. Lower values matter more.
type Importance int

// Importance levels
const (
	Must Importance = iota + 1
	High
	Medium
	Optional
)

// IsValid returns true if the importance is a known level.
func (i Importance) IsValid() bool {
	return i >= Must && i <= Optional
}

// String returns the display name of the importance level.
func (i Importance) String() string {
	switch i {
	case Must:
		return "must"
	case High:
		return "high"
	case Medium:
		return "medium"
	case Optional:
		return "optional"
	default:
		return "unknown"
	}
}

// Task represents a single task in the day plan.
type Task struct {
	ID            string
	Title         string
	RequiredTime  float64   // estimated effort in hours
	IdealDeadline time.Time // zero value means no deadline
	Importance    Importance
	CreatedAt     time.Time
	Completed     bool
	CompletedAt   time.Time // zero value means never completed
	ParentID      string    // empty means root task
	ChildIDs      []string
	LinksTo       []string
	LinkedFrom    []string
	Prerequisites []string // recorded dependency edges, see Store.IsStartable
}

// IsRoot returns true if the task has no parent.
func (t Task) IsRoot() bool {
	return t.ParentID == ""
}

// HasLinks returns true if the task participates in the link graph
// in either direction.
func (t Task) HasLinks() bool {
	return len(t.LinksTo) > 0 || len(t.LinkedFrom) > 0
}

// DeadlineLayout is the date format accepted by ParseDeadline.
const DeadlineLayout = "2006-01-02"

// ParseRequiredTime coerces user input to an hour count. An empty
// string means zero hours; negative values are rejected.
func ParseRequiredTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: "required time", Reason: "not a number"}
	}
	if hours < 0 {
		return 0, &ValidationError{Field: "required time", Reason: "must not be negative"}
	}
	return hours, nil
}

// ParseDeadline coerces user input to a deadline. An empty string
// means no deadline.
func ParseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	deadline, err := time.Parse(DeadlineLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "deadline", Reason: "expected " + DeadlineLayout}
	}
	return deadline, nil
}

// ParseImportance coerces user input to an importance level. An empty
// string defaults to Medium.
func ParseImportance(s string) (Importance, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Medium, nil
	}
	level, err := strconv.Atoi(s)
	if err != nil || !Importance(level).IsValid() {
		return 0, &ValidationError{Field: "importance", Reason: "must be 1 (must) to 4 (optional)"}
	}
	return Importance(level), nil
}
