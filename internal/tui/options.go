package tui

import (
	"github.com/pablasso/dayplan/internal/eventlog"
	"github.com/pablasso/dayplan/internal/plan"
)

// Options configures the TUI session.
type Options struct {
	// Store holds the session's tasks. Required.
	Store *plan.Store

	// AvailableHours is the free time the day is scored against.
	AvailableHours float64

	// Log receives an event per mutation. Defaults to a no-op logger.
	Log *eventlog.Logger
}
