package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
	"github.com/alexisbeaulieu97/jcross/internal/tui/components"
)

const (
	puzzleCardWidth  = 9
	puzzleCardHeight = 3
)

// folderScreen shows the numbered puzzles of one folder.
type folderScreen struct {
	deps     screenDeps
	groupID  int
	folderID int
	folder   model.Folder
	found    bool
	puzzles  []model.Puzzle
	grid     components.Grid
	height   int
}

func newFolderScreen(groupID, folderID int, deps screenDeps) folderScreen {
	s := folderScreen{deps: deps, groupID: groupID, folderID: folderID}
	folders := deps.catalog.FoldersForGroup(groupID)
	if folderID >= 0 && folderID < len(folders) {
		s.folder, s.found = folders[folderID], true
		s.puzzles = deps.catalog.PuzzlesForFolder(folderID, s.folder.TotalPuzzles)
	} else {
		deps.logger.Warn(deps.ctx, "folder not found", "group_id", groupID, "folder_id", folderID)
	}
	s.grid = components.NewGrid(len(s.puzzles), 1)
	return s
}

func (s folderScreen) Init() tea.Cmd { return nil }

func (s folderScreen) Title() string {
	if !s.found {
		return ""
	}
	return s.folder.Dimensions()
}

func (s folderScreen) Bindings() []key.Binding {
	k := s.deps.keys
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select}
}

func (s folderScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
		s.grid.SetColumns(components.ColumnsFor(msg.Width, puzzleCardWidth, cardGap))
		s.grid.Scroll(s.visibleRows())
	case tea.KeyMsg:
		if moveGrid(&s.grid, s.deps.keys, msg) {
			s.grid.Scroll(s.visibleRows())
			return s, nil
		}
		if key.Matches(msg, s.deps.keys.Select) && s.grid.Count > 0 {
			return s, navigateCmd(navigation.Game(s.groupID, s.folderID, s.grid.Cursor))
		}
	}
	return s, nil
}

func (s folderScreen) visibleRows() int {
	return visibleRows(s.height, puzzleCardHeight)
}

func (s folderScreen) View(ctx ViewContext) string {
	if !s.found {
		return ""
	}

	styles := ctx.Styles
	solvedIcon := glyph(ctx.Unicode, model.PuzzleSolved.Icon(), "v")
	start, end := s.grid.VisibleRange(s.visibleRows())

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		icon := " "
		if s.puzzles[i].Solved {
			icon = styles.SwitchOn.Render(solvedIcon)
		}
		label := fmt.Sprintf("%3d %s", i+1, icon)
		cards = append(cards, cardStyle(styles, i == s.grid.Cursor).Width(puzzleCardWidth-2).Render(label))
	}

	return layoutGrid(cards, s.grid.Columns)
}
