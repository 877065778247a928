package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray
	Selected  = lipgloss.Color("#4F46E5") // Indigo
)

// Styles
var (
	// Preview header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Picker rows
	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Selected)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error)
)
