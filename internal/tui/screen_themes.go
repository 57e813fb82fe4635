package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jcross/internal/model"
)

// themesScreen lists the color themes and reports the one the player picks.
type themesScreen struct {
	deps   screenDeps
	themes []model.AppTheme
	cursor int
}

func newThemesScreen(deps screenDeps) themesScreen {
	s := themesScreen{deps: deps, themes: deps.themes}
	for i, t := range s.themes {
		if t.Selected {
			s.cursor = i
			break
		}
	}
	return s
}

func (s themesScreen) Init() tea.Cmd { return nil }

func (s themesScreen) Title() string { return "Color Themes" }

func (s themesScreen) Bindings() []key.Binding {
	k := s.deps.keys
	return []key.Binding{k.Up, k.Down, k.Select}
}

// Themes returns the list with the screen's current selection.
func (s themesScreen) Themes() []model.AppTheme {
	return s.themes
}

func (s themesScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.themes) == 0 {
		return s, nil
	}

	k := s.deps.keys
	switch {
	case key.Matches(keyMsg, k.Up):
		s.cursor = (s.cursor - 1 + len(s.themes)) % len(s.themes)
	case key.Matches(keyMsg, k.Down):
		s.cursor = (s.cursor + 1) % len(s.themes)
	case key.Matches(keyMsg, k.Select):
		selected := s.themes[s.cursor]
		s.themes = model.SelectTheme(s.themes, selected.ID)
		selected.Selected = true
		s.deps.logger.Debug(s.deps.ctx, "theme picked", "theme_id", selected.ID)
		return s, themeSelectedCmd(selected)
	}
	return s, nil
}

func (s themesScreen) View(ctx ViewContext) string {
	styles := ctx.Styles
	check := glyph(ctx.Unicode, "✓", "*")

	nameWidth := 0
	for _, t := range s.themes {
		if len(t.Name) > nameWidth {
			nameWidth = len(t.Name)
		}
	}

	blocks := make([]string, 0, len(s.themes))
	for i, t := range s.themes {
		swatches := styles.Swatch(t.Primary) + " " + styles.Swatch(t.Secondary) + " " + styles.Swatch(t.Background)
		mark := " "
		if t.Selected {
			mark = styles.SwitchOn.Render(check)
		}
		line := fmt.Sprintf("%s  %-*s  %s", swatches, nameWidth, t.Name, mark)

		style := styles.Item
		if i == s.cursor {
			style = styles.SelectedItem
		}
		blocks = append(blocks, style.Render(line))
	}

	return scrollLines(strings.Join(blocks, "\n"), s.cursor, ctx.Height)
}
