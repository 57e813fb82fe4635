package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders solved/total completion as a solid bar.
type Progress struct {
	bar progress.Model
}

// NewProgress creates a bar of the given width filled with color.
func NewProgress(width int, color lipgloss.Color) Progress {
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
	)
	bar.Width = width
	return Progress{bar: bar}
}

// Ratio returns solved/total capped to [0, 1]; zero totals yield 0.
func Ratio(solved, total int) float64 {
	if total <= 0 || solved <= 0 {
		return 0
	}
	return math.Min(1.0, float64(solved)/float64(total))
}

// Percent formats a 0..1 fraction as a truncated whole percentage.
func Percent(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	return fmt.Sprintf("%d%%", int(fraction*100))
}

// View renders only the bar.
func (p Progress) View(solved, total int) string {
	return p.bar.ViewAs(Ratio(solved, total))
}

// ViewWithLabel renders the bar followed by "solved/total".
func (p Progress) ViewWithLabel(solved, total int) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", solved, total))
	return lipgloss.JoinHorizontal(lipgloss.Left, p.View(solved, total), " ", label)
}
