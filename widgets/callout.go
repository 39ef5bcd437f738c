package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextFormatter turns a Markdown paragraph into styled terminal text
// wrapped to width.
type TextFormatter interface {
	Format(markdown string, width int) string
}

// PlainFormatter handles the only inline markup the exhibit uses:
// **strong** spans become bold and the markers are dropped.
type PlainFormatter struct{}

func (PlainFormatter) Format(markdown string, width int) string {
	parts := strings.Split(markdown, "**")
	if len(parts)%2 == 0 {
		// unbalanced marker; keep the trailing one literal
		last := len(parts) - 1
		parts[last-1] = parts[last-1] + "**" + parts[last]
		parts = parts[:last]
	}
	var b strings.Builder
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString(emphasisStyle.Render(part))
			continue
		}
		b.WriteString(part)
	}
	return lipgloss.NewStyle().Width(max(1, width)).Render(b.String())
}

// Callout is a highlighted block: a heading over a Markdown paragraph,
// set off by a thick bar on the left.
type Callout struct {
	Heading string
	Body    string
	Accent  lipgloss.Color
	Format  TextFormatter
}

// calloutChrome is the bar plus horizontal padding.
const calloutChrome = 3

func (c Callout) Render(width, height int) string {
	inner := width - calloutChrome
	if inner <= 0 {
		return ""
	}
	format := c.Format
	if format == nil {
		format = PlainFormatter{}
	}
	content := calloutHeadingStyle.Width(inner).Render(c.Heading) + "\n" + format.Format(c.Body, inner)
	out := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(c.Accent).
		Padding(0, 1).
		Width(width - 1).
		Render(content)
	if height > 0 {
		out = fitHeight(out, width, height)
	}
	return out
}
