package tui

import (
	_ "embed"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

//go:embed about.md
var aboutMarkdown string

// aboutScreen renders the game's rules and key bindings.
type aboutScreen struct {
	deps     screenDeps
	viewport viewport.Model
	rendered string
	width    int
	dark     bool
}

func newAboutScreen(deps screenDeps) aboutScreen {
	vp := viewport.New(80, 20)
	s := aboutScreen{deps: deps, viewport: vp, dark: deps.dark}
	s.render(80)
	return s
}

func (s aboutScreen) Init() tea.Cmd { return nil }

func (s aboutScreen) Title() string { return "About" }

func (s aboutScreen) Bindings() []key.Binding {
	k := s.deps.keys
	return []key.Binding{k.Up, k.Down}
}

func (s aboutScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.viewport.Width = msg.Width
		s.viewport.Height = msg.Height
		s.render(msg.Width)
		return s, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}
	return s, nil
}

// render formats the markdown for width, falling back to the raw text.
func (s *aboutScreen) render(width int) {
	s.width = width
	style := "light"
	if s.dark {
		style = "dark"
	}
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}

	s.rendered = aboutMarkdown
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, renderErr := renderer.Render(aboutMarkdown); renderErr == nil {
			s.rendered = out
		} else {
			err = renderErr
		}
	}
	if err != nil {
		s.deps.logger.Warn(s.deps.ctx, "markdown render failed", "error", err)
	}
	s.viewport.SetContent(s.rendered)
}

// View re-renders when the scheme switched between light and dark since the
// last render. The scroll position is kept.
func (s aboutScreen) View(ctx ViewContext) string {
	if ctx.Styles.Scheme.Dark != s.dark {
		s.dark = ctx.Styles.Scheme.Dark
		offset := s.viewport.YOffset
		s.render(s.width)
		s.viewport.SetYOffset(offset)
	}
	return s.viewport.View()
}

// Dark reports which glamour style the page was last rendered with.
func (s aboutScreen) Dark() bool {
	return s.dark
}
