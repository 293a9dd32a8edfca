// Package eventlog records task mutations as structured log events.
// Every mutating user action in the front end goes through it, so a
// session leaves an auditable trail when debug logging is enabled.
package eventlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pablasso/dayplan/internal/config"
	"github.com/pablasso/dayplan/internal/plan"
)

// Logger writes mutation events through zap. The zero-configuration
// logger discards everything.
type Logger struct {
	zl *zap.Logger
}

// New builds a logger from the logging config. With debug off it
// returns a no-op logger.
func New(cfg config.LoggingConfig) (*Logger, error) {
	if !cfg.Debug {
		return NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	zl, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build event logger: %w", err)
	}
	return &Logger{zl: zl}, nil
}

// NewNop returns a logger that discards all events.
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// Close flushes buffered events.
func (l *Logger) Close() {
	l.zl.Sync()
}

// TaskAdded logs a task_added event.
func (l *Logger) TaskAdded(t plan.Task) {
	l.zl.Info("task_added",
		zap.String("task_id", t.ID),
		zap.String("title", t.Title),
		zap.Float64("required_time", t.RequiredTime),
		zap.String("importance", t.Importance.String()),
		zap.String("parent_id", t.ParentID))
}

// TaskUpdated logs a task_updated event.
func (l *Logger) TaskUpdated(id string) {
	l.zl.Info("task_updated", zap.String("task_id", id))
}

// TaskToggled logs a task_toggled event.
func (l *Logger) TaskToggled(id string, completed bool) {
	l.zl.Info("task_toggled",
		zap.String("task_id", id),
		zap.Bool("completed", completed))
}

// TaskDeleted logs a task_deleted event.
func (l *Logger) TaskDeleted(id string) {
	l.zl.Info("task_deleted", zap.String("task_id", id))
}

// Linked logs a task_linked event.
func (l *Logger) Linked(fromID, toID string) {
	l.zl.Info("task_linked",
		zap.String("from_id", fromID),
		zap.String("to_id", toID))
}

// Unlinked logs a task_unlinked event.
func (l *Logger) Unlinked(fromID, toID string) {
	l.zl.Info("task_unlinked",
		zap.String("from_id", fromID),
		zap.String("to_id", toID))
}

// WipedOut logs a wipe_out event with the removed count.
func (l *Logger) WipedOut(removed int) {
	l.zl.Info("wipe_out", zap.Int("removed", removed))
}
