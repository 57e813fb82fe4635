package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
	"github.com/alexisbeaulieu97/jcross/internal/theme"
	"github.com/alexisbeaulieu97/jcross/internal/tui/components"
)

const mainCardWidth = 44

var mainNavItems = []components.NavItem{
	{Label: "Home"},
	{Key: "o", Label: "Settings"},
	{Key: "t", Label: "Themes"},
	{Key: "i", Label: "Info"},
}

// mainScreen lists the size groups with their progress.
type mainScreen struct {
	deps   screenDeps
	groups []model.Group
	cursor int
	width  int
	height int
}

func newMainScreen(deps screenDeps) mainScreen {
	return mainScreen{
		deps:   deps,
		groups: deps.catalog.Groups(),
	}
}

func (s mainScreen) Init() tea.Cmd { return nil }

func (s mainScreen) Title() string { return "JCross Nonograms" }

func (s mainScreen) Bindings() []key.Binding {
	k := s.deps.keys
	return []key.Binding{k.Up, k.Down, k.Select, k.Options, k.Themes, k.About, k.Quit}
}

func (s mainScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
	case tea.KeyMsg:
		k := s.deps.keys
		switch {
		case key.Matches(msg, k.Up):
			s.moveCursor(-1)
		case key.Matches(msg, k.Down):
			s.moveCursor(1)
		case key.Matches(msg, k.Select):
			if s.cursor < len(s.groups) {
				return s, navigateCmd(navigation.Group(s.groups[s.cursor].ID))
			}
		case key.Matches(msg, k.Options):
			return s, navigateCmd(navigation.Options())
		case key.Matches(msg, k.Themes):
			return s, navigateCmd(navigation.Themes())
		case key.Matches(msg, k.About):
			return s, navigateCmd(navigation.About())
		case key.Matches(msg, k.Quit):
			return s, tea.Quit
		}
	}
	return s, nil
}

// moveCursor moves with wrapping.
func (s *mainScreen) moveCursor(delta int) {
	if len(s.groups) == 0 {
		return
	}
	s.cursor = (s.cursor + delta + len(s.groups)) % len(s.groups)
}

func (s mainScreen) View(ctx ViewContext) string {
	styles := ctx.Styles
	width := mainCardWidth
	if ctx.Width > 0 && ctx.Width-4 < width {
		width = ctx.Width - 4
	}

	var content strings.Builder
	content.WriteString(styles.Subtitle.Render("Select puzzle size"))
	content.WriteString("\n")

	total, solved := 0, 0
	for i, group := range s.groups {
		total += group.TotalPuzzles
		solved += group.SolvedPuzzles
		content.WriteString(s.renderGroup(ctx, group, i == s.cursor, width))
		content.WriteString("\n")
	}

	totals := fmt.Sprintf("%s %s    %s %s",
		styles.Muted.Render("TOTAL"), styles.Title.Render(fmt.Sprint(total)),
		styles.Muted.Render("SOLVED"), styles.Title.Render(fmt.Sprint(solved)),
	)
	content.WriteString(styles.Card.Width(width).Render(totals))
	content.WriteString("\n")
	content.WriteString(components.NavBar(styles, mainNavItems, 0, ctx.Width))

	return content.String()
}

func (s mainScreen) renderGroup(ctx ViewContext, group model.Group, selected bool, width int) string {
	styles := ctx.Styles
	accent := styles.SizeAccent(group.Size)

	label := accent.Render(fmt.Sprintf("%-2s", group.Size.ShortLabel())) + "  " + styles.Body.Render(group.Size.Label())
	count := styles.Muted.Render(fmt.Sprintf("%d puzzles", group.TotalPuzzles))
	gap := width - 4 - lipgloss.Width(label) - lipgloss.Width(count)
	if gap < 1 {
		gap = 1
	}
	header := label + strings.Repeat(" ", gap) + count

	percent := components.Percent(group.ProgressPercent())
	barWidth := width - 4 - len(percent) - 1
	if barWidth < 4 {
		barWidth = 4
	}
	bar := components.NewProgress(barWidth, theme.ColorsForSize(group.Size).Accent).View(group.SolvedPuzzles, group.TotalPuzzles)
	progressLine := bar + " " + styles.Muted.Render(percent)

	style := styles.Item
	if selected {
		style = styles.SelectedItem
	}
	return style.Render(header + "\n" + progressLine)
}
