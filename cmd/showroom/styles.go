package main

import "github.com/charmbracelet/lipgloss"

// Palette carried over from the original web chat theme.
var (
	colorAccent    = lipgloss.Color("#667eea") // user accent purple-blue
	colorSecondary = lipgloss.Color("#764ba2") // bot accent purple
	colorMuted     = lipgloss.Color("#656d76")
	colorOnline    = lipgloss.Color("#4caf50")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorAccent).
			Padding(0, 1)

	onlineStyle = lipgloss.NewStyle().Foreground(colorOnline)

	userPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	botPrefixStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSecondary)

	userBlockStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(colorAccent)

	botBlockStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(colorSecondary)

	spinnerStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	statusStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	inputFocusedBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent)
	inputDisabledBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted)
)
