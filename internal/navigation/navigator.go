package navigation

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/jcross/internal/logger"
	"github.com/alexisbeaulieu97/jcross/internal/ports"
)

// Navigator keeps the back stack of visited routes. The bottom entry is always main.
type Navigator struct {
	stack  []Route
	logger ports.Logger
}

// NewNavigator returns a navigator positioned on the main route.
func NewNavigator(log ports.Logger) *Navigator {
	if log == nil {
		log = logger.Nop()
	}
	return &Navigator{
		stack:  []Route{Main()},
		logger: log.With("component", "navigator"),
	}
}

// Push makes route the current destination.
func (n *Navigator) Push(ctx context.Context, route Route) {
	from := n.Current()
	if len(route.Defaulted) > 0 {
		n.logger.Warn(ctx, "route parameters defaulted to 0",
			"route", route.Path(),
			"params", strings.Join(route.Defaulted, ","),
		)
	}
	n.stack = append(n.stack, route)
	n.logger.Debug(ctx, "navigate", "from", from.Path(), "to", route.Path(), "depth", len(n.stack))
}

// Pop returns to the previous route. It reports false when only main remains,
// which callers treat as a request to exit.
func (n *Navigator) Pop(ctx context.Context) bool {
	if len(n.stack) <= 1 {
		n.logger.Debug(ctx, "back from main")
		return false
	}
	from := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	n.logger.Debug(ctx, "back", "from", from.Path(), "to", n.Current().Path(), "depth", len(n.stack))
	return true
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() Route {
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack, main included.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Stack returns a copy of the back stack, bottom first.
func (n *Navigator) Stack() []Route {
	out := make([]Route, len(n.stack))
	copy(out, n.stack)
	return out
}
