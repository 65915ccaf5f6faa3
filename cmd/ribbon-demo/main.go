// ribbon-demo is a small showcase program. It builds a ribbon with the
// classic Home/Insert/View categories, a contextual Picture Tools category
// toggled with ctrl+p, and panels exercising every widget kind, then runs
// the bubbletea program.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/pflag"

	tea "charm.land/bubbletea/v2"
	"github.com/BurntSushi/toml"
	"github.com/muesli/termenv"
	"github.com/okteal/ribbon/internal/config"
	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/okteal/ribbon/internal/ui/panel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var height int
	var collapsed bool

	flagSet := pflag.NewFlagSet("ribbon-demo", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a TOML config overriding the defaults")
	flagSet.IntVar(&height, "height", 0, "fixed ribbon body height in lines (0 uses the configured value)")
	flagSet.BoolVar(&collapsed, "collapsed", false, "start with only the tab row visible")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Load(string(data)); err != nil {
			return fmt.Errorf("loading %s: %w", configPath, err)
		}
	}
	if height > 0 {
		cfg.Ribbon.Height = height
	}
	if collapsed {
		cfg.Ribbon.Collapsed = true
	}

	applyTheme(cfg)

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(app)
	_, err = program.Run()
	return err
}

// applyTheme feeds the configured colors into the shared palette. The
// default white tab tint flips to black on light terminal backgrounds;
// explicit overrides win.
func applyTheme(cfg *config.Config) {
	if c, ok := cfg.UI.Colors["ribbon tab selected"]; ok && c.Fg == "white" && !termenv.HasDarkBackground() {
		c.Fg = "black"
		cfg.UI.Colors["ribbon tab selected"] = c
	}
	common.DefaultPalette.Update(cfg.UI.Colors)

	if len(cfg.UI.ContextualColors) > 0 {
		tints := make([]color.Color, 0, len(cfg.UI.ContextualColors))
		for _, name := range cfg.UI.ContextualColors {
			if c := common.ParseColor(name); c != nil {
				tints = append(tints, c)
			}
		}
		if len(tints) > 0 {
			common.ContextualColors = tints
		}
	}
}

// insertPanelTOML shows the declarative way to fill a panel.
const insertPanelTOML = `
[[widgets]]
name = "table"
kind = "button"
label = "Table"
glyph = "▦"

[[widgets]]
name = "picture"
kind = "button"
label = "Picture"
glyph = "🖼"

[[widgets]]
name = "chart-sep"
kind = "separator"

[[widgets]]
name = "link"
kind = "lineedit"
placeholder = "https://"

[[widgets]]
name = "symbol"
kind = "combobox"
options = ["§", "¶", "†", "‡", "•"]
`

func buildInsertPanel(p *panel.Model) error {
	var doc struct {
		Widgets []panel.WidgetSpec `toml:"widgets"`
	}
	if _, err := toml.Decode(insertPanelTOML, &doc); err != nil {
		return err
	}
	return p.Build(doc.Widgets)
}
