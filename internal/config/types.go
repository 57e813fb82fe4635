package config

import (
	"github.com/alexisbeaulieu97/jcross/internal/model"
)

// Config is the jcross startup configuration document.
type Config struct {
	// Seed drives the mock catalog. Zero picks a time-based seed at startup.
	Seed     int64             `yaml:"seed"`
	DarkMode bool              `yaml:"dark_mode"`
	ThemeID  int               `yaml:"theme_id" validate:"gte=0,lte=11"`
	Log      LogSettings       `yaml:"log"`
	Terminal TerminalSettings  `yaml:"terminal"`
	Settings model.AppSettings `yaml:"settings"`
}

// LogSettings controls where and how diagnostics are written.
type LogSettings struct {
	Level         string `yaml:"level" validate:"required,log_level"`
	File          string `yaml:"file,omitempty" validate:"omitempty,log_path"`
	HumanReadable bool   `yaml:"human_readable"`
}

// TerminalSettings bounds the terminal the game shell runs in.
type TerminalSettings struct {
	MinWidth  int  `yaml:"min_width" validate:"min=20,max=500"`
	MinHeight int  `yaml:"min_height" validate:"min=10,max=200"`
	Unicode   bool `yaml:"unicode"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Seed:     0,
		DarkMode: false,
		ThemeID:  0,
		Log: LogSettings{
			Level:         "info",
			HumanReadable: true,
		},
		Terminal: TerminalSettings{
			MinWidth:  60,
			MinHeight: 24,
			Unicode:   true,
		},
		Settings: model.DefaultAppSettings(),
	}
}
