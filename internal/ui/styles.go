// Package ui renders answers and puzzle text for the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	Muted       = lipgloss.AdaptiveColor{Light: "#6a7380", Dark: "#8a94a3"}
	Border      = lipgloss.AdaptiveColor{Light: "#dce0e5", Dark: "#2a3850"}
	Destructive = lipgloss.Color("#e53935")
	Gold        = lipgloss.Color("#FFC107")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(Primary).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	answerStyle = cellStyle.Foreground(Gold).Bold(true)
	mutedStyle  = cellStyle.Foreground(Muted)
	errorStyle  = cellStyle.Foreground(Destructive)
	borderStyle = lipgloss.NewStyle().Foreground(Border)
)
