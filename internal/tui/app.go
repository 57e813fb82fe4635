// Package tui implements the jcross terminal shell: a root App that owns the
// navigator and theme, and one Screen per route on the back stack.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jcross/internal/logger"
	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
	"github.com/alexisbeaulieu97/jcross/internal/ports"
	"github.com/alexisbeaulieu97/jcross/internal/theme"
)

const (
	defaultMinWidth  = 60
	defaultMinHeight = 24
)

// Options configures a new App.
type Options struct {
	Context  context.Context
	Catalog  Catalog
	Logger   ports.Logger
	Dark     bool
	ThemeID  int
	Settings model.AppSettings
	// Start is pushed on top of main together with its lineage. Zero value means main.
	Start     navigation.Route
	MinWidth  int
	MinHeight int
	Unicode   bool
}

// App is the root bubbletea model.
type App struct {
	ctx      context.Context
	catalog  Catalog
	logger   ports.Logger
	nav      *navigation.Navigator
	screens  []Screen
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	settings model.AppSettings

	// Theme state
	dark   bool
	themes []model.AppTheme
	scheme theme.Scheme
	styles theme.Styles

	// Dimensions
	width     int
	height    int
	minWidth  int
	minHeight int
	tooSmall  bool

	showHelp bool
	unicode  bool
}

// New builds the app positioned on main, or on opts.Start when set.
func New(opts Options) App {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	minWidth, minHeight := opts.MinWidth, opts.MinHeight
	if minWidth <= 0 {
		minWidth = defaultMinWidth
	}
	if minHeight <= 0 {
		minHeight = defaultMinHeight
	}

	a := App{
		ctx:       ctx,
		catalog:   opts.Catalog,
		logger:    log.With("component", "tui"),
		nav:       navigation.NewNavigator(log),
		keys:      defaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		settings:  opts.Settings,
		dark:      opts.Dark,
		themes:    model.SelectTheme(opts.Catalog.Themes(), opts.ThemeID),
		minWidth:  minWidth,
		minHeight: minHeight,
		unicode:   opts.Unicode,
	}
	a.syncSelectedTheme()
	a.applyScheme()
	a.screens = []Screen{newScreen(navigation.Main(), a.deps())}

	for _, route := range opts.Start.Lineage() {
		a.nav.Push(ctx, route)
		a.screens = append(a.screens, newScreen(route, a.deps()))
	}

	return a
}

// Init starts the loading spinner and the active screen.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.active().Init())
}

// Current returns the route on top of the back stack.
func (a App) Current() navigation.Route {
	return a.nav.Current()
}

// Scheme returns the colors the app currently renders with.
func (a App) Scheme() theme.Scheme {
	return a.scheme
}

// Themes returns the theme catalog with the current selection applied.
func (a App) Themes() []model.AppTheme {
	out := make([]model.AppTheme, len(a.themes))
	copy(out, a.themes)
	return out
}

// Settings returns the player settings, including the selected theme id.
func (a App) Settings() model.AppSettings {
	return a.settings
}

func (a *App) syncSelectedTheme() {
	if current, ok := model.SelectedTheme(a.themes); ok {
		a.settings.SelectedThemeID = current.ID
	}
}

func (a App) active() Screen {
	return a.screens[len(a.screens)-1]
}

func (a App) deps() screenDeps {
	return screenDeps{
		ctx:      a.ctx,
		catalog:  a.catalog,
		logger:   a.logger,
		keys:     a.keys,
		settings: a.settings,
		themes:   a.Themes(),
		dark:     a.scheme.Dark,
	}
}

func (a *App) applyScheme() {
	var selected *model.AppTheme
	if current, ok := model.SelectedTheme(a.themes); ok {
		selected = &current
	}
	a.scheme = theme.SchemeFor(a.dark, selected)
	a.styles = theme.NewStyles(a.scheme)
	a.help.Styles.ShortKey = a.styles.Help.Bold(true)
	a.help.Styles.FullKey = a.styles.Help.Bold(true)
	a.help.Styles.ShortDesc = a.styles.Muted
	a.help.Styles.FullDesc = a.styles.Muted
	a.spinner.Style = a.styles.Title
}
