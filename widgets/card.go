package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/neurondoctrine/internal/theme"
)

// cardChrome is the horizontal space taken by the border and padding.
const cardChrome = 4

// ComparisonCard presents one theory of the debate.
type ComparisonCard struct {
	Name        string
	Proponent   string
	Description string
	Analogy     string
	Icon        string
	Accent      lipgloss.Color
}

// ProponentLine is the secondary line under the theory name.
func (c ComparisonCard) ProponentLine() string {
	return "Proponent: " + c.Proponent
}

// QuotedAnalogy is the analogy wrapped in typographic quotes.
func (c ComparisonCard) QuotedAnalogy() string {
	return "“" + c.Analogy + "”"
}

// Render draws the card. When height exceeds the natural height, the
// extra lines go above the analogy so it stays pinned to the bottom.
func (c ComparisonCard) Render(width, height int) string {
	if width <= cardChrome {
		return ""
	}
	inner := width - cardChrome
	body := strings.Join([]string{
		lipgloss.NewStyle().Foreground(c.Accent).Bold(true).Render(Glyph(c.Icon)),
		cardNameStyle.Width(inner).Render(c.Name),
		cardProponentStyle.Width(inner).Render(c.ProponentLine()),
		Rule{Color: theme.Divider}.Render(inner, 1),
		cardBodyStyle.Width(inner).Render(c.Description),
	}, "\n")
	foot := strings.Join([]string{
		cardLabelStyle.Render("Analogy:"),
		cardAnalogyStyle.Width(inner).Render(c.QuotedAnalogy()),
	}, "\n")

	gap := 1
	if height > 0 {
		gap = max(gap, height-2-lipgloss.Height(body)-lipgloss.Height(foot))
	}
	return cardStyle.Width(width - 2).Render(body + strings.Repeat("\n", gap+1) + foot)
}
