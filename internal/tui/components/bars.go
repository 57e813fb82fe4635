package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/theme"
)

// TopBar renders the back hint on the left and the title centered across width.
func TopBar(styles theme.Styles, title string, showBack bool, width int) string {
	left := ""
	if showBack {
		left = styles.BackHint.Render("← esc")
	}
	heading := styles.Title.Render(title)

	if width <= 0 {
		return styles.TopBar.Render(strings.TrimSpace(left + "  " + heading))
	}

	leftWidth := lipgloss.Width(left)
	headingWidth := lipgloss.Width(heading)
	pad := (width - headingWidth) / 2
	if pad < leftWidth+1 {
		pad = leftWidth + 1
	}
	line := left + strings.Repeat(" ", pad-leftWidth) + heading
	return styles.TopBar.Width(width).Render(line)
}

// NavItem is one entry of the bottom navigation bar. Key may be empty.
type NavItem struct {
	Key   string
	Label string
}

// NavBar renders items side by side, highlighting the one at active.
func NavBar(styles theme.Styles, items []NavItem, active int, width int) string {
	cells := make([]string, 0, len(items))
	for i, item := range items {
		style := styles.NavItem
		if i == active {
			style = styles.NavActive
		}
		label := item.Label
		if item.Key != "" {
			label += " (" + item.Key + ")"
		}
		cells = append(cells, style.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	bar := styles.NavBar
	if width > 0 {
		bar = bar.Width(width).Align(lipgloss.Center)
	}
	return bar.Render(row)
}

// Switch renders an on/off indicator.
func Switch(styles theme.Styles, on bool) string {
	if on {
		return styles.SwitchOn.Render("[ ON]")
	}
	return styles.SwitchOff.Render("[OFF]")
}

// Segmented renders options with the selected one highlighted.
func Segmented(styles theme.Styles, options []string, selected int) string {
	cells := make([]string, 0, len(options))
	for i, option := range options {
		if i == selected {
			cells = append(cells, styles.SegmentOn.Render(option))
			continue
		}
		cells = append(cells, styles.Segment.Render(option))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
