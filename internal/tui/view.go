package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/tui/components"
)

// View renders the top bar, the active screen and the help footer.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return a.spinner.View() + " Initializing..."
	}
	if a.tooSmall {
		return a.styles.Warning.Render(a.sizeWarning())
	}

	var content strings.Builder
	content.WriteString(a.renderTopBar())
	content.WriteString("\n")

	width, height := a.bodySize()
	body := a.active().View(ViewContext{
		Styles:  a.styles,
		Width:   width,
		Height:  height,
		Unicode: a.unicode,
	})
	content.WriteString(lipgloss.NewStyle().MaxHeight(height).Render(body))
	content.WriteString("\n")

	content.WriteString(a.renderFooter())
	return content.String()
}

func (a App) renderTopBar() string {
	return components.TopBar(a.styles, a.active().Title(), a.nav.Depth() > 1, a.width)
}

func (a App) renderFooter() string {
	keys := helpKeys{global: []key.Binding{a.keys.Back, a.keys.Help, a.keys.ForceQuit}}
	if keyed, ok := a.active().(keyedScreen); ok {
		keys.screen = keyed.Bindings()
	}
	if !a.showHelp {
		keys = helpKeys{global: []key.Binding{a.keys.Back, a.keys.Help}}
	}
	return a.styles.Help.Render(a.help.View(keys))
}

func lipglossHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
