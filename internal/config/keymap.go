package config

import (
	"charm.land/bubbles/v2/key"
)

// KeyMap is the materialized form of BindingsConfig, consumed by the ribbon
// and the demo program.
type KeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	Collapse  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NewKeyMap builds a KeyMap from the configured key names. Empty binding
// lists produce disabled bindings.
func NewKeyMap(bindings BindingsConfig) KeyMap {
	return KeyMap{
		NextTab:   newBinding(bindings.NextTab, "next tab"),
		PrevTab:   newBinding(bindings.PrevTab, "previous tab"),
		NextPanel: newBinding(bindings.NextPanel, "next panel"),
		PrevPanel: newBinding(bindings.PrevPanel, "previous panel"),
		Collapse:  newBinding(bindings.Collapse, "collapse ribbon"),
		Help:      newBinding(bindings.Help, "help"),
		Quit:      newBinding(bindings.Quit, "quit"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], desc),
	)
}
