package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/neurondoctrine/internal/theme"
)

var (
	pageStyle = lipgloss.NewStyle().Padding(0, pagePadding)

	eyebrowStyle  = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	titleStyle    = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	headingStyle  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	titleBarStyle = lipgloss.NewStyle().
			Background(theme.Mantle).
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1)
	scrollStyle = lipgloss.NewStyle().
			Background(theme.Mantle).
			Foreground(theme.Overlay1).
			Padding(0, 1)
	helpBarStyle = lipgloss.NewStyle().Padding(0, 1)
)
