// Package helppage renders the ribbon's key bindings as a bordered page.
package helppage

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/config"
	"github.com/okteal/ribbon/internal/ui/common"
)

// ClosedMsg is emitted when the page is dismissed.
type ClosedMsg struct{}

type styles struct {
	border   lipgloss.Style
	title    lipgloss.Style
	shortcut lipgloss.Style
	dimmed   lipgloss.Style
}

type Model struct {
	keyMap config.KeyMap
	styles styles
}

func New(keyMap config.KeyMap) *Model {
	return &Model{
		keyMap: keyMap,
		styles: styles{
			border:   common.DefaultPalette.GetBorder("help border", lipgloss.NormalBorder()),
			title:    common.DefaultPalette.Get("help title"),
			shortcut: common.DefaultPalette.Get("help shortcut"),
			dimmed:   common.DefaultPalette.Get("help dimmed"),
		},
	}
}

func (h *Model) Init() tea.Cmd {
	return nil
}

// Update dismisses the page on help, esc or q.
func (h *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, h.keyMap.Help):
		return common.Cmd(ClosedMsg{})
	case keyMsg.String() == "esc", keyMsg.String() == "q":
		return common.Cmd(ClosedMsg{})
	}
	return nil
}

func (h *Model) View() string {
	lines := []string{
		h.printTitle("Navigation"),
		h.printBinding(h.keyMap.NextTab),
		h.printBinding(h.keyMap.PrevTab),
		h.printBinding(h.keyMap.NextPanel),
		h.printBinding(h.keyMap.PrevPanel),
		h.printKey("enter", "focus the category"),
		h.printKey("esc", "leave widget focus"),
		"",
		h.printTitle("Ribbon"),
		h.printBinding(h.keyMap.Collapse),
		h.printBinding(h.keyMap.Help),
		h.printBinding(h.keyMap.Quit),
	}
	return h.styles.border.Render(strings.Join(lines, "\n"))
}

func (h *Model) printBinding(b key.Binding) string {
	help := b.Help()
	return h.printKey(help.Key, help.Desc)
}

func (h *Model) printKey(name string, desc string) string {
	aligned := fmt.Sprintf("%12s ", name)
	return h.styles.shortcut.Render(aligned) + h.styles.dimmed.Render(desc)
}

func (h *Model) printTitle(header string) string {
	return fmt.Sprintf("%12s ", "") + h.styles.title.Render(header)
}
