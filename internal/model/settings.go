package model

// AppSettings holds the player's preference toggles.
type AppSettings struct {
	Sound           bool `yaml:"sound"`
	Music           bool `yaml:"music"`
	Vibration       bool `yaml:"vibration"`
	ShowTimer       bool `yaml:"show_timer"`
	ShowErrors      bool `yaml:"show_errors"`
	AutoFill        bool `yaml:"auto_fill"`
	SelectedThemeID int  `yaml:"-"`
}

// AutoFillXMode controls automatic placement of X marks.
type AutoFillXMode int

const (
	AutoFillXOff AutoFillXMode = iota
	AutoFillXBase
	AutoFillXSmart
)

// AutoFillXModes lists every mode in segmented-control order.
var AutoFillXModes = []AutoFillXMode{AutoFillXOff, AutoFillXBase, AutoFillXSmart}

// Label returns the long form shown in the options list.
func (m AutoFillXMode) Label() string {
	return "Auto fill X: " + m.ShortLabel()
}

// ShortLabel returns the segment caption.
func (m AutoFillXMode) ShortLabel() string {
	switch m {
	case AutoFillXBase:
		return "Base"
	case AutoFillXSmart:
		return "Smart"
	default:
		return "Off"
	}
}

// Explanation describes what the mode does.
func (m AutoFillXMode) Explanation() string {
	switch m {
	case AutoFillXBase:
		return "Fills X only on completed lines and columns."
	case AutoFillXSmart:
		return "Smart mode additionally fills X around first, last and max-length blocks."
	default:
		return "Does not fill X automatically."
	}
}

// Shift moves delta segments, clamped to the available modes.
func (m AutoFillXMode) Shift(delta int) AutoFillXMode {
	next := int(m) + delta
	if next < 0 {
		next = 0
	}
	if last := len(AutoFillXModes) - 1; next > last {
		next = last
	}
	return AutoFillXModes[next]
}

// GameplayOptions are the gameplay toggles of the options screen.
type GameplayOptions struct {
	MultiClick      bool
	AutoFillNumbers bool
	AutoFillX       AutoFillXMode
}

// DefaultGameplayOptions mirrors the options screen defaults.
func DefaultGameplayOptions() GameplayOptions {
	return GameplayOptions{
		MultiClick:      false,
		AutoFillNumbers: true,
		AutoFillX:       AutoFillXSmart,
	}
}

// DefaultAppSettings returns the out-of-the-box preference record.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Sound:           true,
		Music:           true,
		Vibration:       true,
		ShowTimer:       true,
		ShowErrors:      true,
		AutoFill:        false,
		SelectedThemeID: 0,
	}
}
