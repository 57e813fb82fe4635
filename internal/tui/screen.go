package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
	"github.com/alexisbeaulieu97/jcross/internal/ports"
	"github.com/alexisbeaulieu97/jcross/internal/theme"
)

// Catalog supplies the puzzle catalog, themes and default settings.
type Catalog interface {
	Groups() []model.Group
	GroupByID(id int) (model.Group, bool)
	FoldersForGroup(groupID int) []model.Folder
	PuzzlesForFolder(folderID, count int) []model.Puzzle
	GameField(puzzle model.Puzzle) model.GameField
	Themes() []model.AppTheme
	Settings() model.AppSettings
}

// ViewContext carries everything a screen needs to render one frame.
type ViewContext struct {
	Styles  theme.Styles
	Width   int
	Height  int
	Unicode bool
}

// Screen is one destination of the navigation graph. Screens receive a
// tea.WindowSizeMsg sized to their body area whenever the terminal changes.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(ctx ViewContext) string
	Title() string
}

// keyedScreen is implemented by screens that add bindings to the help footer.
type keyedScreen interface {
	Bindings() []key.Binding
}

// screenDeps is handed to every screen constructor.
type screenDeps struct {
	ctx      context.Context
	catalog  Catalog
	logger   ports.Logger
	keys     keyMap
	settings model.AppSettings
	themes   []model.AppTheme
	dark     bool
}

func newScreen(route navigation.Route, deps screenDeps) Screen {
	switch route.Name {
	case navigation.NameGroup:
		return newGroupScreen(route.GroupID, deps)
	case navigation.NameFolder:
		return newFolderScreen(route.GroupID, route.FolderID, deps)
	case navigation.NameGame:
		return newGameScreen(route.GroupID, route.FolderID, route.PuzzleID, deps)
	case navigation.NameOptions:
		return newOptionsScreen(deps)
	case navigation.NameThemes:
		return newThemesScreen(deps)
	case navigation.NameAbout:
		return newAboutScreen(deps)
	default:
		return newMainScreen(deps)
	}
}

func glyph(unicode bool, fancy, plain string) string {
	if unicode {
		return fancy
	}
	return plain
}
