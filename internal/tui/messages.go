package tui

import (
	"time"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/navigation"
)

// NavigateMsg asks the app to push a route.
type NavigateMsg struct {
	Route navigation.Route
}

// BackMsg asks the app to pop the current route.
type BackMsg struct{}

// ThemeSelectedMsg reports the theme picked on the themes screen.
type ThemeSelectedMsg struct {
	Theme model.AppTheme
}

// timerTickMsg advances the game screen clock. ID ties a tick to the timer that scheduled it.
type timerTickMsg struct {
	ID   int
	Time time.Time
}
