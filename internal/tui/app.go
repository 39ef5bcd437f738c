// Package tui hosts the exhibit page in a scrollable Bubble Tea program.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/neurondoctrine/internal/config"
	"github.com/jask/neurondoctrine/internal/content"
)

// App is the Bubble Tea model: a title bar, the page in a viewport, and
// a help line.
type App struct {
	cfg      config.UIConfig
	screen   Screen
	markdown *MarkdownFormatter
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	log      *zap.Logger

	width         int
	height        int
	renderedWidth int
	ready         bool
}

func New(cfg config.UIConfig, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	keys := newKeyMap()
	vp := viewport.New(0, 0)
	vp.KeyMap = keys.viewportKeys()
	vp.MouseWheelEnabled = cfg.Mouse
	return &App{
		cfg:      cfg,
		screen:   NewScreen(content.Exhibit(), cfg.MinCardWidth),
		markdown: NewMarkdownFormatter(cfg.MarkdownStyle, log),
		viewport: vp,
		help:     help.New(),
		keys:     keys,
		log:      log,
	}
}

// Title is the navigation title shown in the title bar and the terminal
// window.
func (a *App) Title() string {
	return a.screen.Title
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(a.screen.Title)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ready = true
		a.layout()
		a.log.Debug("resize", zap.Int("width", msg.Width), zap.Int("height", msg.Height))
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.layout()
			return a, nil
		case key.Matches(msg, a.keys.Top):
			a.viewport.GotoTop()
			return a, nil
		case key.Matches(msg, a.keys.Bottom):
			a.viewport.GotoBottom()
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if !a.ready {
		return "\n  Loading…"
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.titleBar(), a.viewport.View(), a.helpView())
}

// ContentWidth is the page width for the current terminal size.
func (a *App) ContentWidth() int {
	return min(a.width, a.cfg.MaxWidth)
}

func (a *App) layout() {
	a.help.Width = a.width
	a.viewport.Width = a.width
	a.viewport.Height = max(1, a.height-lipgloss.Height(a.titleBar())-lipgloss.Height(a.helpView()))
	if w := a.ContentWidth(); w != a.renderedWidth {
		a.viewport.SetContent(a.screen.Render(w, a.markdown))
		a.renderedWidth = w
	}
}

func (a *App) titleBar() string {
	percent := scrollStyle.Render(fmt.Sprintf("%3.f%%", a.viewport.ScrollPercent()*100))
	title := titleBarStyle.Width(max(0, a.width-lipgloss.Width(percent))).Render(a.screen.Title)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, percent)
}

func (a *App) helpView() string {
	return helpBarStyle.Render(a.help.View(a.keys))
}
