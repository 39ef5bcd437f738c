package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// IconColumnWidth is the fixed width of the icon column, shared by
	// every row so titles line up.
	IconColumnWidth = 4
	principleGap    = 2
)

// PrincipleRow is an icon followed by a title and a description.
type PrincipleRow struct {
	Icon        string
	Title       string
	Description string
}

// TextOffset is the column where the title and description start.
func (PrincipleRow) TextOffset() int {
	return IconColumnWidth + principleGap
}

func (p PrincipleRow) Render(width, height int) string {
	textWidth := width - p.TextOffset()
	if textWidth <= 0 {
		return ""
	}
	icon := principleIconStyle.Width(IconColumnWidth).Render(Glyph(p.Icon))
	text := lipgloss.JoinVertical(lipgloss.Left,
		principleTitleStyle.Width(textWidth).Render(p.Title),
		principleBodyStyle.Width(textWidth).Render(p.Description),
	)
	out := lipgloss.JoinHorizontal(lipgloss.Top, icon, strings.Repeat(" ", principleGap), text)
	if height > 0 {
		out = fitHeight(out, width, height)
	}
	return out
}
