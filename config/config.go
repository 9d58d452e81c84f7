package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const AppDirName = "droplist"

// KeysConfig overrides individual dropdown keybindings. Each entry is a list
// of key names as bubbletea reports them ("down", "ctrl+n", "j"). Empty
// entries keep the default binding.
type KeysConfig struct {
	Next    []string `koanf:"next"`
	Prev    []string `koanf:"prev"`
	First   []string `koanf:"first"`
	Last    []string `koanf:"last"`
	Commit  []string `koanf:"commit"`
	Dismiss []string `koanf:"dismiss"`
}

// MetricsConfig controls interaction-metrics export.
type MetricsConfig struct {
	Endpoint string `koanf:"endpoint"` // OTLP HTTP collector base URL; empty disables export
	Service  string `koanf:"service"`
}

// GlobalConfig lives in the user's config dir and applies everywhere.
type GlobalConfig struct {
	Theme   string        `koanf:"theme"` // theme file name without extension
	Keys    KeysConfig    `koanf:"keys"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// ProjectConfig is the per-directory override file.
type ProjectConfig struct {
	Theme string     `koanf:"theme"`
	Keys  KeysConfig `koanf:"keys"`
	Items string     `koanf:"items"` // default items file for this directory
}

type Config struct {
	Global  GlobalConfig
	Project ProjectConfig
}

// MergedConfig is the flattened view the commands consume. Project values
// win over global ones; CLI flags are applied by the caller on top.
type MergedConfig struct {
	Theme   string
	Keys    KeysConfig
	Metrics MetricsConfig
	Items   string
}

func Load(globalPath, projectPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadFile(globalPath, &cfg.Global); err != nil {
		return nil, err
	}
	if err := loadFile(projectPath, &cfg.Project); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile parses a YAML file into target, silently skipping missing files
// so callers don't need to check existence first.
func loadFile(path string, target any) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return err
	}
	return k.Unmarshal("", target)
}

// Merge flattens global and project config. Project theme and key overrides
// take precedence; metrics settings are global-only.
func (c *Config) Merge() MergedConfig {
	m := MergedConfig{
		Theme:   c.Global.Theme,
		Keys:    c.Global.Keys,
		Metrics: c.Global.Metrics,
		Items:   c.Project.Items,
	}
	if c.Project.Theme != "" {
		m.Theme = c.Project.Theme
	}
	m.Keys = overrideKeys(m.Keys, c.Project.Keys)
	if m.Metrics.Service == "" {
		m.Metrics.Service = AppDirName
	}
	return m
}

// overrideKeys replaces base entries with any non-empty override entries.
func overrideKeys(base, over KeysConfig) KeysConfig {
	pick := func(b, o []string) []string {
		if len(o) > 0 {
			return o
		}
		return b
	}
	return KeysConfig{
		Next:    pick(base.Next, over.Next),
		Prev:    pick(base.Prev, over.Prev),
		First:   pick(base.First, over.First),
		Last:    pick(base.Last, over.Last),
		Commit:  pick(base.Commit, over.Commit),
		Dismiss: pick(base.Dismiss, over.Dismiss),
	}
}

// DefaultGlobalPath returns the config file location in the XDG config dir.
func DefaultGlobalPath() string {
	if xdg.ConfigHome != "" {
		return filepath.Join(xdg.ConfigHome, AppDirName, "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppDirName, "config.yaml")
}

// DefaultProjectPath returns the per-directory override file for dir.
func DefaultProjectPath(dir string) string {
	return filepath.Join(dir, ".droplist.yaml")
}
