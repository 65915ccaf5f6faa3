// Package widgets provides the controls that ribbon panels grid-pack:
// buttons, toggles, combo boxes, sliders, line edits, labels, separators
// and galleries. Every widget is a small bubbletea component; interaction
// results surface as typed messages carrying the widget's name.
package widgets

import (
	tea "charm.land/bubbletea/v2"
)

// Size is the semantic widget size a panel translates into a row span.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Widget is a control a panel can place. Non-interactive widgets (labels,
// separators) report Interactive() == false and are skipped by focus
// cycling.
type Widget interface {
	Name() string
	Interactive() bool
	Focus()
	Blur()
	Focused() bool
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// PressedMsg is emitted when a button is activated.
type PressedMsg struct {
	Name string
}

// ToggledMsg is emitted when a toggle button changes state.
type ToggledMsg struct {
	Name    string
	Checked bool
}

// ComboChangedMsg is emitted when a combo box selection changes.
type ComboChangedMsg struct {
	Name  string
	Value string
}

// SliderChangedMsg is emitted when a slider value changes.
type SliderChangedMsg struct {
	Name  string
	Value int
}

// SubmittedMsg is emitted when a line edit is confirmed with enter.
type SubmittedMsg struct {
	Name  string
	Value string
}

// PickedMsg is emitted when a gallery item is chosen.
type PickedMsg struct {
	Name  string
	Index int
	Item  string
}

// base carries the identity and focus state shared by all widgets.
type base struct {
	name    string
	focused bool
}

func (b *base) Name() string      { return b.name }
func (b *base) Interactive() bool { return true }
func (b *base) Focus()            { b.focused = true }
func (b *base) Blur()             { b.focused = false }
func (b *base) Focused() bool     { return b.focused }

func newCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func isActivateKey(s string) bool {
	return s == "enter" || s == " " || s == "space"
}
