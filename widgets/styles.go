package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/neurondoctrine/internal/theme"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
	cardNameStyle      = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	cardProponentStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	cardBodyStyle      = lipgloss.NewStyle().Foreground(theme.Primary)
	cardLabelStyle     = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	cardAnalogyStyle   = lipgloss.NewStyle().Foreground(theme.Primary).Italic(true)

	principleIconStyle  = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Align(lipgloss.Center)
	principleTitleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	principleBodyStyle  = lipgloss.NewStyle().Foreground(theme.Secondary)

	calloutHeadingStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	emphasisStyle       = lipgloss.NewStyle().Bold(true)
)
