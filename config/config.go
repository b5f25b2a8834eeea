package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
)

type Config struct {
	Scale        float64 `json:"scale"`
	ColorMode    string  `json:"color_mode"`
	ResizeFilter string  `json:"resize_filter"`
	Charset      string  `json:"charset"`
	Theme        string  `json:"theme"`
	WatchFile    bool    `json:"watch_file"`
}

// ColorScheme styles the viewer's status header.
type ColorScheme struct {
	Name         string
	StatusBarBg  tcell.Color
	StatusBarFg  tcell.Color
	StatusModeBg tcell.Color
}

var Themes = map[string]*ColorScheme{
	"dark": {
		Name:         "Dark",
		StatusBarBg:  tcell.ColorDarkBlue,
		StatusBarFg:  tcell.ColorWhite,
		StatusModeBg: tcell.ColorBlue,
	},
	"light": {
		Name:         "Light",
		StatusBarBg:  tcell.ColorLightBlue,
		StatusBarFg:  tcell.ColorBlack,
		StatusModeBg: tcell.ColorBlue,
	},
	"monokai": {
		Name:         "Monokai",
		StatusBarBg:  tcell.NewRGBColor(73, 72, 62),
		StatusBarFg:  tcell.NewRGBColor(248, 248, 242),
		StatusModeBg: tcell.NewRGBColor(102, 217, 239),
	},
	"gruvbox": {
		Name:         "Gruvbox Dark",
		StatusBarBg:  tcell.NewRGBColor(60, 56, 54),
		StatusBarFg:  tcell.NewRGBColor(235, 219, 178),
		StatusModeBg: tcell.NewRGBColor(184, 187, 38),
	},
}

func Default() *Config {
	return &Config{
		Scale:        0.5,
		ColorMode:    "none",
		ResizeFilter: "lanczos",
		Theme:        "monokai",
		WatchFile:    true,
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["monokai"]
	}
	return theme
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "asciiview", "settings.json")
}

func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
