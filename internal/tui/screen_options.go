package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/jcross/internal/model"
	"github.com/alexisbeaulieu97/jcross/internal/tui/components"
)

type optionID int

const (
	optSound optionID = iota
	optMusic
	optVibration
	optShowTimer
	optShowErrors
	optAutoFill
	optMultiClick
	optAutoFillNumbers
	optAutoFillX
	optTurnOffAds
	optRestorePurchases
)

type optionKind int

const (
	optionSwitch optionKind = iota
	optionSegmented
	optionAction
)

type optionRow struct {
	id       optionID
	kind     optionKind
	section  string
	title    string
	subtitle string
}

var optionRows = []optionRow{
	{id: optSound, kind: optionSwitch, section: "General", title: "Sound"},
	{id: optMusic, kind: optionSwitch, section: "General", title: "Music"},
	{id: optVibration, kind: optionSwitch, section: "General", title: "Vibration"},
	{id: optShowTimer, kind: optionSwitch, section: "General", title: "Show timer"},
	{id: optShowErrors, kind: optionSwitch, section: "General", title: "Show errors"},
	{id: optAutoFill, kind: optionSwitch, section: "General", title: "Auto fill"},
	{id: optMultiClick, kind: optionSwitch, section: "Gameplay", title: "MultiClick",
		subtitle: "Sequentially change cell value by clicking on it"},
	{id: optAutoFillNumbers, kind: optionSwitch, section: "Gameplay", title: "Auto fill numbers",
		subtitle: "Marks numbers when you solve whole line or column"},
	{id: optAutoFillX, kind: optionSegmented, section: "Gameplay", title: "Auto fill X"},
	{id: optTurnOffAds, kind: optionAction, section: "Purchases", title: "Turn off ads",
		subtitle: "Disable ads for the entire period of using the app"},
	{id: optRestorePurchases, kind: optionAction, section: "Purchases", title: "Restore purchases",
		subtitle: "Restore previously made purchases"},
}

// optionsScreen edits settings for the lifetime of the screen only.
type optionsScreen struct {
	deps     screenDeps
	settings model.AppSettings
	gameplay model.GameplayOptions
	cursor   int
	height   int
}

func newOptionsScreen(deps screenDeps) optionsScreen {
	return optionsScreen{
		deps:     deps,
		settings: deps.settings,
		gameplay: model.DefaultGameplayOptions(),
	}
}

func (s optionsScreen) Init() tea.Cmd { return nil }

func (s optionsScreen) Title() string { return "Settings" }

func (s optionsScreen) Bindings() []key.Binding {
	k := s.deps.keys
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Left, k.Right}
}

// Settings returns the edited preference toggles.
func (s optionsScreen) Settings() model.AppSettings {
	return s.settings
}

// Gameplay returns the edited gameplay options.
func (s optionsScreen) Gameplay() model.GameplayOptions {
	return s.gameplay
}

func (s optionsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.height = msg.Height
	case tea.KeyMsg:
		k := s.deps.keys
		row := optionRows[s.cursor]
		switch {
		case key.Matches(msg, k.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, k.Down):
			if s.cursor < len(optionRows)-1 {
				s.cursor++
			}
		case key.Matches(msg, k.Left) && row.kind == optionSegmented:
			s.gameplay.AutoFillX = s.gameplay.AutoFillX.Shift(-1)
			s.logChange(row)
		case key.Matches(msg, k.Right) && row.kind == optionSegmented:
			s.gameplay.AutoFillX = s.gameplay.AutoFillX.Shift(1)
			s.logChange(row)
		case key.Matches(msg, k.Toggle):
			switch row.kind {
			case optionSwitch:
				s.toggle(row.id)
				s.logChange(row)
			case optionSegmented:
				s.gameplay.AutoFillX = model.AutoFillXModes[(int(s.gameplay.AutoFillX)+1)%len(model.AutoFillXModes)]
				s.logChange(row)
			case optionAction:
				s.deps.logger.Debug(s.deps.ctx, "purchase entry selected", "entry", row.title)
			}
		}
	}
	return s, nil
}

func (s optionsScreen) logChange(row optionRow) {
	s.deps.logger.Debug(s.deps.ctx, "option changed", "option", row.title, "value", s.valueLabel(row))
}

func (s *optionsScreen) toggle(id optionID) {
	switch id {
	case optSound:
		s.settings.Sound = !s.settings.Sound
	case optMusic:
		s.settings.Music = !s.settings.Music
	case optVibration:
		s.settings.Vibration = !s.settings.Vibration
	case optShowTimer:
		s.settings.ShowTimer = !s.settings.ShowTimer
	case optShowErrors:
		s.settings.ShowErrors = !s.settings.ShowErrors
	case optAutoFill:
		s.settings.AutoFill = !s.settings.AutoFill
	case optMultiClick:
		s.gameplay.MultiClick = !s.gameplay.MultiClick
	case optAutoFillNumbers:
		s.gameplay.AutoFillNumbers = !s.gameplay.AutoFillNumbers
	}
}

func (s optionsScreen) switchValue(id optionID) bool {
	switch id {
	case optSound:
		return s.settings.Sound
	case optMusic:
		return s.settings.Music
	case optVibration:
		return s.settings.Vibration
	case optShowTimer:
		return s.settings.ShowTimer
	case optShowErrors:
		return s.settings.ShowErrors
	case optAutoFill:
		return s.settings.AutoFill
	case optMultiClick:
		return s.gameplay.MultiClick
	case optAutoFillNumbers:
		return s.gameplay.AutoFillNumbers
	default:
		return false
	}
}

func (s optionsScreen) valueLabel(row optionRow) string {
	switch row.kind {
	case optionSegmented:
		return s.gameplay.AutoFillX.ShortLabel()
	case optionSwitch:
		if s.switchValue(row.id) {
			return "on"
		}
		return "off"
	default:
		return ""
	}
}

func (s optionsScreen) View(ctx ViewContext) string {
	styles := ctx.Styles
	blocks := make([]string, 0, len(optionRows)+3)
	focus, height := 0, 0
	section := ""

	for i, row := range optionRows {
		if row.section != section {
			section = row.section
			header := styles.Section.Render(section) + "\n" +
				components.NewDivider().WithChar(glyph(ctx.Unicode, "─", "-")).WithWidth(dividerWidth(ctx.Width)).View(styles)
			blocks = append(blocks, header)
			height += lipgloss.Height(header)
		}
		block := s.renderRow(ctx, row, i == s.cursor)
		blocks = append(blocks, block)
		height += lipgloss.Height(block)
		if i == s.cursor {
			focus = height - 1
		}
	}

	return scrollLines(strings.Join(blocks, "\n"), focus, ctx.Height)
}

func (s optionsScreen) renderRow(ctx ViewContext, row optionRow, selected bool) string {
	styles := ctx.Styles

	var control string
	subtitle := row.subtitle
	switch row.kind {
	case optionSwitch:
		control = components.Switch(styles, s.switchValue(row.id))
	case optionSegmented:
		labels := make([]string, len(model.AutoFillXModes))
		for i, mode := range model.AutoFillXModes {
			labels[i] = mode.ShortLabel()
		}
		control = components.Segmented(styles, labels, int(s.gameplay.AutoFillX))
		subtitle = s.gameplay.AutoFillX.Explanation()
	case optionAction:
		control = styles.Muted.Render(glyph(ctx.Unicode, "›", ">"))
	}

	text := styles.Body.Render(row.title)
	if subtitle != "" {
		text += "\n" + styles.Muted.Render(subtitle)
	}

	style := styles.Item
	if selected {
		style = styles.SelectedItem
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, control, "  ", text))
}

func dividerWidth(width int) int {
	if width <= 0 || width > 48 {
		return 48
	}
	return width
}

// scrollLines keeps the line at focus inside a window of height lines.
func scrollLines(content string, focus, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= height {
		return content
	}
	start := 0
	if focus >= height {
		start = focus - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
		start = end - height
	}
	return strings.Join(lines[start:end], "\n")
}
