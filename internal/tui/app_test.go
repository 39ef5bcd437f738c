package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/neurondoctrine/internal/config"
)

func testApp(t *testing.T, width, height int) *App {
	t.Helper()
	a := New(config.UIConfig{MaxWidth: 100, MinCardWidth: 30, MarkdownStyle: config.MarkdownStylePlain, Mouse: true}, nil)
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return a
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestViewBeforeResize(t *testing.T) {
	a := New(config.UIConfig{MaxWidth: 100, MinCardWidth: 30, MarkdownStyle: config.MarkdownStylePlain}, nil)
	assert.Contains(t, a.View(), "Loading")
}

func TestInitSetsWindowTitle(t *testing.T) {
	a := testApp(t, 80, 24)
	assert.Equal(t, "Neuron Doctrine", a.Title())
	assert.NotNil(t, a.Init())
}

func TestViewShowsTitleBarPageAndHelp(t *testing.T) {
	a := testApp(t, 120, 40)
	view := ansi.Strip(a.View())
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 40)
	assert.Contains(t, lines[0], "Neuron Doctrine")
	assert.Contains(t, lines[0], "0%")
	assert.Contains(t, view, "4. A Historical Perspective")
	assert.Contains(t, lines[len(lines)-1], "quit")
}

func TestContentWidthClamped(t *testing.T) {
	assert.Equal(t, 100, testApp(t, 160, 40).ContentWidth())
	assert.Equal(t, 70, testApp(t, 70, 40).ContentWidth())
}

func TestResizeRerendersAtNewWidth(t *testing.T) {
	a := testApp(t, 120, 40)
	assert.Equal(t, 100, a.renderedWidth)
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	assert.Equal(t, 60, a.renderedWidth)
}

func TestScrollKeys(t *testing.T) {
	a := testApp(t, 80, 12)
	require.True(t, a.viewport.AtTop())

	a.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, a.viewport.AtBottom())

	a.Update(keyRune('g'))
	assert.True(t, a.viewport.AtTop())

	a.Update(keyRune('j'))
	assert.Equal(t, 1, a.viewport.YOffset)
}

func TestHelpToggleShrinksViewport(t *testing.T) {
	a := testApp(t, 80, 24)
	before := a.viewport.Height
	a.Update(keyRune('?'))
	assert.True(t, a.help.ShowAll)
	assert.Less(t, a.viewport.Height, before)
	a.Update(keyRune('?'))
	assert.Equal(t, before, a.viewport.Height)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := testApp(t, 80, 24).Update(msg)
			require.NotNil(t, cmd)
			_, ok := cmd().(tea.QuitMsg)
			assert.True(t, ok)
		})
	}
}
