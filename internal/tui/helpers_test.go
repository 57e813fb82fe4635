package tui

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/jcross/internal/logger"
	"github.com/alexisbeaulieu97/jcross/internal/mock"
	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
	"github.com/alexisbeaulieu97/jcross/internal/theme"
)

const testSeed = 7

func newTestApp(t *testing.T, mutate func(*Options)) App {
	t.Helper()
	opts := Options{
		Context:  context.Background(),
		Catalog:  mock.New(testSeed),
		Logger:   logger.Nop(),
		Settings: model.DefaultAppSettings(),
		Unicode:  true,
	}
	if mutate != nil {
		mutate(&opts)
	}
	return New(opts)
}

func testDeps(t *testing.T) screenDeps {
	t.Helper()
	catalog := mock.New(testSeed)
	return screenDeps{
		ctx:      context.Background(),
		catalog:  catalog,
		logger:   logger.Nop(),
		keys:     defaultKeyMap(),
		settings: model.DefaultAppSettings(),
		themes:   catalog.Themes(),
	}
}

func testViewContext() ViewContext {
	return ViewContext{
		Styles:  theme.NewStyles(theme.Light()),
		Width:   100,
		Height:  40,
		Unicode: true,
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// send feeds msg to the app and returns the updated app.
func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	app, ok := next.(App)
	require.True(t, ok)
	return app, cmd
}

// navigateTo resolves a NavigateMsg produced by cmd and applies it.
func navigateTo(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(NavigateMsg)
	require.True(t, ok, "expected a NavigateMsg")
	a, _ = send(t, a, msg)
	return a
}

func requireNavigate(t *testing.T, cmd tea.Cmd, want navigation.Route) {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(NavigateMsg)
	require.True(t, ok, "expected a NavigateMsg")
	require.True(t, want.Equal(msg.Route), "got %s want %s", msg.Route.Path(), want.Path())
}

func requireQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok, "expected tea.Quit")
}

func debugLogger(t *testing.T, buf *bytes.Buffer) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return log
}
