package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/dayplan/internal/tui/styles"
)

// StatusBar renders a bottom bar with a highlighted status segment on
// the left and contextual help items on the right.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with "  |  " separator.
func (s StatusBar) Render(width int, items []string) string {
	return s.RenderWithStatus(width, "", items)
}

// RenderWithStatus renders a pre-styled status segment left-aligned
// and the help items right-aligned, padded to the given width.
func (s StatusBar) RenderWithStatus(width int, status string, items []string) string {
	help := styles.StatusBarStyle.Render(strings.Join(items, "  |  "))

	if status == "" {
		return help
	}

	gap := width - lipgloss.Width(status) - lipgloss.Width(help)
	if gap < 2 {
		gap = 2
	}
	return status + strings.Repeat(" ", gap) + help
}
