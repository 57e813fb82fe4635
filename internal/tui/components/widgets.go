package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/theme"
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantMuted
)

// Badge is a small status indicator.
type Badge struct {
	text    string
	variant BadgeVariant
}

// NewBadge creates a badge with the default variant.
func NewBadge(text string) Badge {
	return Badge{text: text}
}

// WithVariant sets the badge variant.
func (b Badge) WithVariant(variant BadgeVariant) Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b Badge) Text() string {
	return b.text
}

// View renders the badge in the colors of styles.
func (b Badge) View(styles theme.Styles) string {
	scheme := styles.Scheme
	style := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	switch b.variant {
	case BadgeVariantPrimary:
		style = style.Foreground(scheme.Surface).Background(scheme.Primary)
	case BadgeVariantSecondary:
		style = style.Foreground(scheme.Surface).Background(scheme.Secondary)
	case BadgeVariantMuted:
		style = style.Foreground(scheme.TextSecondary).Bold(false)
	default:
		style = style.Foreground(scheme.TextPrimary)
	}
	return style.Render(b.text)
}

// Button is a visual-only button.
type Button struct {
	label    string
	disabled bool
	active   bool
}

// NewButton creates an enabled button.
func NewButton(label string) Button {
	return Button{label: label}
}

// WithDisabled marks the button as disabled.
func (b Button) WithDisabled(disabled bool) Button {
	b.disabled = disabled
	return b
}

// WithActive highlights the button.
func (b Button) WithActive(active bool) Button {
	b.active = active
	return b
}

// Disabled reports whether the button is disabled.
func (b Button) Disabled() bool {
	return b.disabled
}

// View renders the button as "[ label ]".
func (b Button) View(styles theme.Styles) string {
	style := styles.Body.Foreground(styles.Scheme.Primary)
	if b.disabled {
		style = styles.Disabled
	}
	if b.active && !b.disabled {
		style = style.Bold(true).Underline(true)
	}
	return style.Render("[ " + b.label + " ]")
}

// Divider renders a horizontal separator line.
type Divider struct {
	char  string
	width int
}

// NewDivider creates a divider drawn with "─".
func NewDivider() Divider {
	return Divider{char: "─"}
}

// WithChar sets the character used for the divider. Empty values are ignored.
func (d Divider) WithChar(char string) Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width. Zero or less falls back to 40 cells.
func (d Divider) WithWidth(width int) Divider {
	d.width = width
	return d
}

// View renders the divider in the divider color of styles.
func (d Divider) View(styles theme.Styles) string {
	width := d.width
	if width <= 0 {
		width = 40
	}
	return lipgloss.NewStyle().
		Foreground(styles.Scheme.Divider).
		Render(strings.Repeat(d.char, width))
}
