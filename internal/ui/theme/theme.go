package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — classroom-friendly, high contrast
var (
	Primary   = lipgloss.Color("#0A84FF") // Blue
	Secondary = lipgloss.Color("#5E5CE6") // Indigo
	Accent    = lipgloss.Color("#FF9F0A") // Amber
	Success   = lipgloss.Color("#32D74B") // Green
	Error     = lipgloss.Color("#FF3B3B") // Red
	Warning   = lipgloss.Color("#FFD60A") // Yellow
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Wrong = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
