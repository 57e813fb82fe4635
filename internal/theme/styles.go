package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/model"
)

// Styles is the style sheet derived from a Scheme.
type Styles struct {
	Scheme Scheme

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style
	Disabled     lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	TopBar       lipgloss.Style
	BackHint     lipgloss.Style
	NavBar       lipgloss.Style
	NavItem      lipgloss.Style
	NavActive    lipgloss.Style
	Section      lipgloss.Style
	SwitchOn     lipgloss.Style
	SwitchOff    lipgloss.Style
	Segment      lipgloss.Style
	SegmentOn    lipgloss.Style
	Clue         lipgloss.Style
	Cursor       lipgloss.Style
	Help         lipgloss.Style
	Warning      lipgloss.Style

	cells map[model.CellState]lipgloss.Style
}

// NewStyles builds every style from scheme.
func NewStyles(scheme Scheme) Styles {
	s := Styles{Scheme: scheme}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.Primary)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary).
		MarginBottom(1)

	s.Body = lipgloss.NewStyle().
		Foreground(scheme.TextPrimary)

	s.Muted = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary)

	s.Disabled = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary).
		Faint(true).
		Padding(0, 1)

	s.Item = lipgloss.NewStyle().
		PaddingLeft(2).
		PaddingRight(2)

	s.SelectedItem = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(2).
		Foreground(scheme.Primary).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(scheme.Primary)

	s.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(scheme.Divider).
		Padding(0, 1)

	s.SelectedCard = s.Card.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(scheme.Primary)

	s.TopBar = lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(scheme.Divider).
		MarginBottom(1)

	s.BackHint = lipgloss.NewStyle().
		Foreground(scheme.Primary)

	s.NavBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(scheme.Divider).
		MarginTop(1)

	s.NavItem = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary).
		Padding(0, 2)

	s.NavActive = s.NavItem.
		Foreground(scheme.Primary).
		Bold(true)

	s.Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.Secondary).
		MarginTop(1)

	s.SwitchOn = lipgloss.NewStyle().
		Foreground(scheme.Primary).
		Bold(true)

	s.SwitchOff = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary)

	s.Segment = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary).
		Padding(0, 1)

	s.SegmentOn = s.Segment.
		Foreground(scheme.Surface).
		Background(scheme.Primary).
		Bold(true)

	s.Clue = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary)

	s.Cursor = lipgloss.NewStyle().
		Foreground(scheme.Secondary).
		Bold(true)

	s.Help = lipgloss.NewStyle().
		Foreground(scheme.TextSecondary).
		MarginTop(1)

	s.Warning = lipgloss.NewStyle().
		Foreground(scheme.Secondary).
		Bold(true)

	s.cells = map[model.CellState]lipgloss.Style{
		model.CellEmpty:  lipgloss.NewStyle().Foreground(scheme.Divider),
		model.CellFilled: lipgloss.NewStyle().Foreground(scheme.Primary).Bold(true),
		model.CellMarked: lipgloss.NewStyle().Foreground(scheme.TextSecondary),
	}

	return s
}

// CellStyle returns the style used to draw a cell in the given state.
func (s Styles) CellStyle(state model.CellState) lipgloss.Style {
	if style, ok := s.cells[state]; ok {
		return style
	}
	return s.Body
}

// SizeAccent returns a bold style in the accent color of size.
func (s Styles) SizeAccent(size model.PuzzleSize) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorsForSize(size).Accent).
		Bold(true)
}

// Swatch renders a two-cell block filled with color.
func (s Styles) Swatch(color model.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color.Hex())).
		Render("  ")
}
