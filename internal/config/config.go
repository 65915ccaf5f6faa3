// Package config loads ribbon settings from TOML: geometry, palette
// overrides and key bindings.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Ribbon   RibbonConfig   `toml:"ribbon"`
	UI       UIConfig       `toml:"ui"`
	Bindings BindingsConfig `toml:"bindings"`
}

// RibbonConfig controls the ribbon's geometry and initial state.
type RibbonConfig struct {
	// Height is the number of terminal lines the ribbon body occupies,
	// tab row excluded.
	Height int `toml:"height"`
	// Collapsed starts the ribbon with only the tab row visible.
	Collapsed bool `toml:"collapsed"`
	// MaxRows is the default row capacity of newly created panels.
	MaxRows int `toml:"max_rows"`
}

type UIConfig struct {
	Colors map[string]Color `toml:"colors"`
	// ContextualColors overrides the built-in contextual category palette.
	ContextualColors []string `toml:"contextual_colors"`
}

// BindingsConfig names the keys driving ribbon navigation. Each entry is a
// list of key names in bubbles/key syntax.
type BindingsConfig struct {
	NextTab   []string `toml:"next_tab"`
	PrevTab   []string `toml:"prev_tab"`
	NextPanel []string `toml:"next_panel"`
	PrevPanel []string `toml:"prev_panel"`
	Collapse  []string `toml:"collapse"`
	Help      []string `toml:"help"`
	Quit      []string `toml:"quit"`
}

// DefaultBindings returns the built-in key bindings, matching the embedded
// default config.
func DefaultBindings() BindingsConfig {
	return BindingsConfig{
		NextTab:   []string{"tab", "right"},
		PrevTab:   []string{"shift+tab", "left"},
		NextPanel: []string{"ctrl+right"},
		PrevPanel: []string{"ctrl+left"},
		Collapse:  []string{"ctrl+_"},
		Help:      []string{"f1"},
		Quit:      []string{"ctrl+c", "q"},
	}
}

// Color is either a plain color string or a table with fg/bg and
// attributes. Attribute pointers distinguish "unset" from explicit false.
type Color struct {
	Fg            string
	Bg            string
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	Reverse       *bool
}

// UnmarshalTOML accepts both `key = "red"` and
// `key = { fg = "red", bold = true }`.
func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		c.Fg = v
		return nil
	case map[string]any:
		if fg, ok := v["fg"].(string); ok {
			c.Fg = fg
		}
		if bg, ok := v["bg"].(string); ok {
			c.Bg = bg
		}
		c.Bold = boolField(v, "bold")
		c.Italic = boolField(v, "italic")
		c.Underline = boolField(v, "underline")
		c.Strikethrough = boolField(v, "strikethrough")
		c.Reverse = boolField(v, "reverse")
		return nil
	default:
		return fmt.Errorf("color must be a string or a table, got %T", value)
	}
}

func boolField(m map[string]any, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

// Load merges TOML data into the config. Later loads override earlier ones
// field by field; color maps are merged by key.
func (c *Config) Load(data string) error {
	prev := c.UI.Colors
	if _, err := toml.Decode(data, c); err != nil {
		return err
	}
	if prev != nil {
		for key, color := range c.UI.Colors {
			prev[key] = color
		}
		c.UI.Colors = prev
	}
	return nil
}
