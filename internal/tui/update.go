package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
)

// Update handles app-level messages and forwards everything else to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.tooSmall = a.width < a.minWidth || a.height < a.minHeight
		if a.tooSmall {
			a.logger.Debug(a.ctx, "terminal below minimum size",
				"width", a.width, "height", a.height,
				"min_width", a.minWidth, "min_height", a.minHeight,
			)
		}
		return a.resizeActive()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.ForceQuit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a.resizeActive()
		case key.Matches(msg, a.keys.Back):
			return a.back()
		}

	case spinner.TickMsg:
		if a.width > 0 && a.height > 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case NavigateMsg:
		return a.push(msg.Route)

	case BackMsg:
		return a.back()

	case ThemeSelectedMsg:
		return a.selectTheme(msg.Theme)
	}

	return a.updateActive(msg)
}

func (a App) push(route navigation.Route) (tea.Model, tea.Cmd) {
	a.nav.Push(a.ctx, route)
	screen := newScreen(route, a.deps())
	a.screens = append(a.screens[:len(a.screens):len(a.screens)], screen)

	resized, resizeCmd := a.resizeActive()
	return resized, tea.Batch(screen.Init(), resizeCmd)
}

func (a App) back() (tea.Model, tea.Cmd) {
	if !a.nav.Pop(a.ctx) {
		return a, tea.Quit
	}
	a.screens = a.screens[:len(a.screens)-1]
	return a.resizeActive()
}

func (a App) selectTheme(selected model.AppTheme) (tea.Model, tea.Cmd) {
	a.themes = model.SelectTheme(a.themes, selected.ID)
	a.syncSelectedTheme()
	a.applyScheme()
	a.logger.Info(a.ctx, "theme selected", "theme_id", selected.ID, "theme", selected.Name)
	return a, nil
}

func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	idx := len(a.screens) - 1
	screen, cmd := a.screens[idx].Update(msg)
	screens := make([]Screen, len(a.screens))
	copy(screens, a.screens)
	screens[idx] = screen
	a.screens = screens
	return a, cmd
}

// resizeActive tells the active screen how much room its body has.
func (a App) resizeActive() (tea.Model, tea.Cmd) {
	if a.width == 0 || a.height == 0 {
		return a, nil
	}
	width, height := a.bodySize()
	return a.updateActive(tea.WindowSizeMsg{Width: width, Height: height})
}

func (a App) bodySize() (int, int) {
	chrome := lipglossHeight(a.renderTopBar()) + lipglossHeight(a.renderFooter())
	height := a.height - chrome
	if height < 1 {
		height = 1
	}
	return a.width, height
}

func (a App) sizeWarning() string {
	return fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
		a.width, a.height, a.minWidth, a.minHeight)
}
