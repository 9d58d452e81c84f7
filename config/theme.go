package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/bernd/droplist/tui"
)

// Theme overrides the UI palette. Every field is an optional "#rrggbb" hex
// color; empty fields keep the built-in default.
type Theme struct {
	Cyan      string `toml:"cyan"`
	Purple    string `toml:"purple"`
	Orange    string `toml:"orange"`
	Field     string `toml:"field"`
	Highlight string `toml:"highlight"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadTheme reads themes/<name>.toml from the config dir. A missing file is
// an error: a configured theme that doesn't exist is a user mistake worth
// reporting, unlike a missing config file.
func LoadTheme(name string) (*Theme, error) {
	path := filepath.Join(filepath.Dir(DefaultGlobalPath()), "themes", name+".toml")
	return loadThemeFile(path)
}

func loadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme file: %w", err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme %s: %w", filepath.Base(path), err)
	}

	for field, v := range map[string]string{
		"cyan": t.Cyan, "purple": t.Purple, "orange": t.Orange,
		"field": t.Field, "highlight": t.Highlight,
	} {
		if v != "" && !hexColor.MatchString(v) {
			return nil, fmt.Errorf("theme %s: %s: %q is not a #rrggbb color", filepath.Base(path), field, v)
		}
	}

	return &t, nil
}

// Apply installs the theme's non-empty colors into the UI palette.
func (t *Theme) Apply() {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&tui.ColorCyan, t.Cyan)
	set(&tui.ColorPurple, t.Purple)
	set(&tui.ColorOrange, t.Orange)
	set(&tui.ColorField, t.Field)
	set(&tui.ColorHighlight, t.Highlight)
}
