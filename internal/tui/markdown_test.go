package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jask/neurondoctrine/internal/config"
	"github.com/jask/neurondoctrine/internal/content"
)

func TestMarkdownFormatterPlain(t *testing.T) {
	out := ansi.Strip(NewMarkdownFormatter(config.MarkdownStylePlain, nil).Format("The **Neuron Doctrine** prevailed", 60))
	assert.Contains(t, out, "The Neuron Doctrine prevailed")
}

func TestMarkdownFormatterGlamour(t *testing.T) {
	f := NewMarkdownFormatter("ascii", nil)
	out := f.Format(content.Exhibit().Verdict, 60)
	plain := ansi.Strip(out)
	for _, word := range []string{"silver", "Golgi", "prevailed", "cornerstone"} {
		assert.Contains(t, plain, word)
	}
	lines := strings.Split(out, "\n")
	assert.NotEqual(t, "", strings.TrimSpace(ansi.Strip(lines[0])), "leading blank lines should be trimmed")
	assert.NotEqual(t, "", strings.TrimSpace(ansi.Strip(lines[len(lines)-1])), "trailing blank lines should be trimmed")
	for i, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 60, "line %d too wide", i)
	}
	assert.Len(t, f.renderers, 1)

	f.Format("again", 60)
	assert.Len(t, f.renderers, 1, "renderer should be reused for the same width")
}

func TestMarkdownFormatterFallsBackOnUnknownStyle(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	f := NewMarkdownFormatter("no-such-style", zap.New(core))

	out := ansi.Strip(f.Format("The **Neuron Doctrine** prevailed", 60))
	assert.Contains(t, out, "The Neuron Doctrine prevailed")
	assert.Equal(t, 1, logs.FilterMessage("markdown render failed, using plain text").Len())
}

func TestTidy(t *testing.T) {
	got := tidy("\n  \n  hello world  \n\n", 7)
	assert.Equal(t, "  hello", got)
}
