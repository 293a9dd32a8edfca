// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success
	warnColor      = lipgloss.Color("#D7AF5F") // Muted amber for warnings
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text and completed tasks
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SuccessStyle for success messages and the safe zone
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// WarnStyle for the risky zone
	WarnStyle = lipgloss.NewStyle().
			Foreground(warnColor)

	// ErrorStyle for error messages and the overload zone
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
