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

const (
	folderCardWidth  = 16
	folderCardHeight = 5
	cardGap          = 1
)

// groupScreen shows the folders of one size group.
type groupScreen struct {
	deps    screenDeps
	groupID int
	group   model.Group
	found   bool
	folders []model.Folder
	grid    components.Grid
	height  int
}

func newGroupScreen(groupID int, deps screenDeps) groupScreen {
	s := groupScreen{deps: deps, groupID: groupID}
	s.group, s.found = deps.catalog.GroupByID(groupID)
	if s.found {
		s.folders = deps.catalog.FoldersForGroup(groupID)
	} else {
		deps.logger.Warn(deps.ctx, "group not found", "group_id", groupID)
	}
	s.grid = components.NewGrid(len(s.folders), 1)
	return s
}

func (s groupScreen) Init() tea.Cmd { return nil }

func (s groupScreen) Title() string {
	if !s.found {
		return fmt.Sprintf("Group %d", s.groupID)
	}
	return s.group.Size.Label()
}

func (s groupScreen) Bindings() []key.Binding {
	k := s.deps.keys
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select}
}

func (s groupScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
		s.grid.SetColumns(components.ColumnsFor(msg.Width, folderCardWidth, cardGap))
		s.grid.Scroll(s.visibleRows())
	case tea.KeyMsg:
		if moveGrid(&s.grid, s.deps.keys, msg) {
			s.grid.Scroll(s.visibleRows())
			return s, nil
		}
		if key.Matches(msg, s.deps.keys.Select) && s.grid.Count > 0 {
			return s, navigateCmd(navigation.Folder(s.groupID, s.grid.Cursor))
		}
	}
	return s, nil
}

func (s groupScreen) visibleRows() int {
	return visibleRows(s.height, folderCardHeight)
}

func (s groupScreen) View(ctx ViewContext) string {
	if !s.found {
		return ""
	}

	styles := ctx.Styles
	accent := theme.ColorsForSize(s.group.Size).Accent
	start, end := s.grid.VisibleRange(s.visibleRows())

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		folder := s.folders[i]
		bar := components.NewProgress(folderCardWidth-4, accent).View(folder.SolvedPuzzles, folder.TotalPuzzles)
		body := strings.Join([]string{
			styles.SizeAccent(s.group.Size).Render(folder.Dimensions()),
			styles.Muted.Render(fmt.Sprintf("%d/%d", folder.SolvedPuzzles, folder.TotalPuzzles)),
			bar,
		}, "\n")
		cards = append(cards, cardStyle(styles, i == s.grid.Cursor).Width(folderCardWidth-2).Render(body))
	}

	return layoutGrid(cards, s.grid.Columns)
}

// moveGrid applies arrow bindings to grid and reports whether one matched.
func moveGrid(grid *components.Grid, k keyMap, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, k.Up):
		grid.Move(-1, 0)
	case key.Matches(msg, k.Down):
		grid.Move(1, 0)
	case key.Matches(msg, k.Left):
		grid.Move(0, -1)
	case key.Matches(msg, k.Right):
		grid.Move(0, 1)
	default:
		return false
	}
	return true
}

func visibleRows(height, cardHeight int) int {
	rows := height / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

func cardStyle(styles theme.Styles, selected bool) lipgloss.Style {
	if selected {
		return styles.SelectedCard
	}
	return styles.Card
}

// layoutGrid joins rendered cards into rows of columns cards each.
func layoutGrid(cards []string, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}
	gap := strings.Repeat(" ", cardGap)
	rows := make([]string, 0, (len(cards)+columns-1)/columns)
	for start := 0; start < len(cards); start += columns {
		end := start + columns
		if end > len(cards) {
			end = len(cards)
		}
		row := make([]string, 0, 2*(end-start))
		for i, card := range cards[start:end] {
			if i > 0 {
				row = append(row, gap)
			}
			row = append(row, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
