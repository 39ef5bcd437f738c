package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

// cardTextLines returns the card's interior lines with the border,
// padding and divider rule removed.
func cardTextLines(rendered string) []string {
	var out []string
	for _, line := range plainLines(rendered) {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "│")
		line = strings.TrimSuffix(line, "│")
		line = strings.TrimSpace(line)
		if strings.Trim(line, "╭╮╰╯─") == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func flatten(lines []string) string {
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}
