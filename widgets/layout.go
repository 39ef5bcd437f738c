package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell. A height <= 0 asks
// for the widget's natural height.
type Widget interface {
	Render(width, height int) string
}

// VStack places widgets top to bottom at their natural heights.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets))
	for _, w := range v.Widgets {
		parts = append(parts, w.Render(width, 0))
	}
	out := strings.Join(parts, "\n"+strings.Repeat("\n", max(0, v.Spacing)))
	if height > 0 {
		out = fitHeight(out, width, height)
	}
	return out
}

// HStack places widgets side by side. Every child is rendered at the
// height of the tallest one.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	if height <= 0 {
		for i, w := range h.Widgets {
			height = max(height, lipgloss.Height(w.Render(max(1, widths[i]), 0)))
		}
	}
	rendered := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		rendered[i] = splitLines(w.Render(max(1, widths[i]), height))
	}
	out := make([]string, 0, height)
	for line := 0; line < height; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// Columns lays widgets out side by side when each can get at least
// MinWidth cells, and stacks them otherwise.
type Columns struct {
	Widgets  []Widget
	MinWidth int
	Gap      int
	Spacing  int
}

// Stacked reports whether width is too narrow for a side-by-side layout.
func (c Columns) Stacked(width int) bool {
	n := len(c.Widgets)
	if n <= 1 {
		return true
	}
	return width < n*c.MinWidth+(n-1)*c.Gap
}

func (c Columns) Render(width, height int) string {
	if c.Stacked(width) {
		return VStack{Widgets: c.Widgets, Spacing: c.Spacing}.Render(width, height)
	}
	return HStack{Widgets: c.Widgets, Gap: c.Gap}.Render(width, height)
}

// Text is a wrapped, styled paragraph.
type Text struct {
	Content string
	Style   lipgloss.Style
}

func (t Text) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	out := t.Style.Width(width).Render(t.Content)
	if height > 0 {
		out = fitHeight(out, width, height)
	}
	return out
}

// Rule is a full-width horizontal divider.
type Rule struct {
	Color lipgloss.Color
}

func (r Rule) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	out := lipgloss.NewStyle().Foreground(r.Color).Render(strings.Repeat("─", width))
	if height > 1 {
		out = fitHeight(out, width, height)
	}
	return out
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		r := ratios[i]
		if r <= 0 {
			r = 1
		}
		w := int(math.Floor((r / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

// fitHeight pads with blank lines or truncates so s is exactly height lines.
func fitHeight(s string, width, height int) string {
	lines := splitLines(s)
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
