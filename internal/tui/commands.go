package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
)

var timerIDs atomic.Int64

func nextTimerID() int {
	return int(timerIDs.Add(1))
}

// navigateCmd emits a NavigateMsg for route.
func navigateCmd(route navigation.Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// themeSelectedCmd reports theme to the app root.
func themeSelectedCmd(theme model.AppTheme) tea.Cmd {
	return func() tea.Msg {
		return ThemeSelectedMsg{Theme: theme}
	}
}

// timerTickCmd schedules the next one-second tick for the timer identified by id.
func timerTickCmd(id int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{ID: id, Time: t}
	})
}
