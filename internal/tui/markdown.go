package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/jask/neurondoctrine/internal/config"
	"github.com/jask/neurondoctrine/widgets"
)

// MarkdownFormatter renders Markdown through glamour, keeping one
// renderer per wrap width. It falls back to widgets.PlainFormatter when
// glamour is disabled or fails. Not safe for concurrent use.
type MarkdownFormatter struct {
	style     string
	renderers map[int]*glamour.TermRenderer
	log       *zap.Logger
}

// NewMarkdownFormatter returns a formatter for a glamour standard style
// name, or config.MarkdownStylePlain to skip glamour entirely.
func NewMarkdownFormatter(style string, log *zap.Logger) *MarkdownFormatter {
	if log == nil {
		log = zap.NewNop()
	}
	return &MarkdownFormatter{style: style, renderers: map[int]*glamour.TermRenderer{}, log: log}
}

func (m *MarkdownFormatter) Format(markdown string, width int) string {
	if m.style == config.MarkdownStylePlain || width <= 0 {
		return widgets.PlainFormatter{}.Format(markdown, width)
	}
	out, err := m.render(markdown, width)
	if err != nil {
		m.log.Warn("markdown render failed, using plain text", zap.String("style", m.style), zap.Error(err))
		return widgets.PlainFormatter{}.Format(markdown, width)
	}
	return tidy(out, width)
}

func (m *MarkdownFormatter) render(markdown string, width int) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("glamour panic: %v", r)
		}
	}()
	r, ok := m.renderers[width]
	if !ok {
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("new renderer: %w", err)
		}
		m.renderers[width] = r
	}
	return r.Render(markdown)
}

// tidy drops the blank lines glamour puts around a document and clips
// each line to width.
func tidy(s string, width int) string {
	lines := strings.Split(s, "\n")
	blank := func(l string) bool { return strings.TrimSpace(ansi.Strip(l)) == "" }
	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}
