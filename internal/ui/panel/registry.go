package panel

import (
	"fmt"

	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/okteal/ribbon/internal/ui/widgets"
)

// WidgetKind tags a WidgetSpec with the widget type to build. The builder
// registry is closed: kinds are an enumeration, not looked-up names.
type WidgetKind int

const (
	KindButton WidgetKind = iota
	KindToggleButton
	KindComboBox
	KindSlider
	KindLineEdit
	KindLabel
	KindSeparator
	KindGallery
)

var kindNames = map[WidgetKind]string{
	KindButton:       "button",
	KindToggleButton: "toggle",
	KindComboBox:     "combobox",
	KindSlider:       "slider",
	KindLineEdit:     "lineedit",
	KindLabel:        "label",
	KindSeparator:    "separator",
	KindGallery:      "gallery",
}

func (k WidgetKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// UnmarshalText lets widget kinds appear as strings in TOML panel specs.
func (k *WidgetKind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown widget kind %q", string(text))
}

// WidgetSpec declaratively describes one widget. Only the fields relevant
// to the kind are read.
type WidgetSpec struct {
	Name        string     `toml:"name"`
	Kind        WidgetKind `toml:"kind"`
	Label       string     `toml:"label"`
	Glyph       string     `toml:"glyph"`
	Size        string     `toml:"size"` // small, medium or large
	Text        string     `toml:"text"`
	Placeholder string     `toml:"placeholder"`
	Options     []string   `toml:"options"`
	Items       []string   `toml:"items"`
	Min         int        `toml:"min"`
	Max         int        `toml:"max"`
	Value       int        `toml:"value"`
	Step        int        `toml:"step"`
}

var builders = map[WidgetKind]func(*Model, WidgetSpec) error{
	KindButton: func(m *Model, spec WidgetSpec) error {
		opts := []widgets.ButtonOption{widgets.WithSize(parseSize(spec.Size, widgets.SizeLarge))}
		if spec.Glyph != "" {
			opts = append(opts, widgets.WithGlyph(spec.Glyph))
		}
		return m.AddButton(widgets.NewButton(spec.Name, spec.Label, opts...))
	},
	KindToggleButton: func(m *Model, spec WidgetSpec) error {
		return m.AddToggleButton(widgets.NewToggleButton(spec.Name, spec.Label,
			widgets.WithToggleSize(parseSize(spec.Size, widgets.SizeSmall))))
	},
	KindComboBox: func(m *Model, spec WidgetSpec) error {
		return m.AddComboBox(widgets.NewComboBox(spec.Name, spec.Options))
	},
	KindSlider: func(m *Model, spec WidgetSpec) error {
		opts := []widgets.SliderOption{widgets.WithValue(spec.Value)}
		if spec.Min != 0 || spec.Max != 0 {
			opts = append(opts, widgets.WithRange(spec.Min, spec.Max))
		}
		if spec.Step != 0 {
			opts = append(opts, widgets.WithStep(spec.Step))
		}
		return m.AddSlider(widgets.NewSlider(spec.Name, opts...))
	},
	KindLineEdit: func(m *Model, spec WidgetSpec) error {
		var opts []widgets.LineEditOption
		if spec.Placeholder != "" {
			opts = append(opts, widgets.WithPlaceholder(spec.Placeholder))
		}
		return m.AddLineEdit(widgets.NewLineEdit(spec.Name, opts...))
	},
	KindLabel: func(m *Model, spec WidgetSpec) error {
		return m.AddLabel(widgets.NewLabel(spec.Name, spec.Text))
	},
	KindSeparator: func(m *Model, spec WidgetSpec) error {
		return m.AddSeparator(widgets.NewSeparator(spec.Name))
	},
	KindGallery: func(m *Model, spec WidgetSpec) error {
		return m.AddGallery(widgets.NewGallery(spec.Name, spec.Items))
	},
}

// Build adds widgets from declarative specs, in order. Specs typically come
// from TOML.
func (m *Model) Build(specs []WidgetSpec) error {
	for _, spec := range specs {
		build, ok := builders[spec.Kind]
		if !ok {
			return common.NotFoundError{Kind: "widget kind", Key: spec.Kind.String()}
		}
		if err := build(m, spec); err != nil {
			return err
		}
	}
	return nil
}

func parseSize(s string, fallback widgets.Size) widgets.Size {
	switch s {
	case "small":
		return widgets.SizeSmall
	case "medium":
		return widgets.SizeMedium
	case "large":
		return widgets.SizeLarge
	default:
		return fallback
	}
}
