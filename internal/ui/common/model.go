package common

import (
	tea "charm.land/bubbletea/v2"
)

// Model is the contract every ribbon component satisfies.
type Model interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Cmd wraps a message in a tea.Cmd.
func Cmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
