// Package config loads termscp's TOML configuration: key bindings per scope
// and color overrides. Embedded defaults always apply; a user file, when
// present, is parsed on top of them.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hack3ric/termscp/internal/ui/actions"
)

//go:embed default.toml
var defaultConfig []byte

var Current = mustParse(defaultConfig)

type Color struct {
	Fg        string `toml:"fg"`
	Bg        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(data any) error {
	switch value := data.(type) {
	case string:
		c.Fg = value
	case map[string]interface{}:
		if fg, ok := value["fg"].(string); ok {
			c.Fg = fg
		}
		if bg, ok := value["bg"].(string); ok {
			c.Bg = bg
		}
		c.Bold, _ = value["bold"].(bool)
		c.Italic, _ = value["italic"].(bool)
		c.Underline, _ = value["underline"].(bool)
		c.Reverse, _ = value["reverse"].(bool)
	}
	return nil
}

type Config struct {
	Colors   map[string]Color             `toml:"colors"`
	Bindings map[string]actions.ActionMap `toml:"bindings"`
}

func (c *Config) GetBindings(scope string) actions.ActionMap {
	if am, ok := c.Bindings[scope]; ok {
		return am
	}
	return actions.ActionMap{}
}

func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

// Load parses the embedded defaults and merges the user config file on top,
// if one exists. A missing user file is not an error.
func Load() (*Config, error) {
	c := mustParse(defaultConfig)
	path, err := userConfigPath()
	if err != nil {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("reading %s: %w", path, err)
	}
	user, err := Parse(data)
	if err != nil {
		return c, fmt.Errorf("in %s: %w", path, err)
	}
	c.merge(user)
	return c, nil
}

func (c *Config) merge(other *Config) {
	for key, color := range other.Colors {
		c.Colors[key] = color
	}
	for scope, am := range other.Bindings {
		c.Bindings[scope] = am
	}
}

func userConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "termscp", "config.toml"), nil
}

func mustParse(data []byte) *Config {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}
