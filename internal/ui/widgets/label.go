package widgets

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
)

// Label is static styled text. It takes no input and no focus.
type Label struct {
	base
	text  string
	style lipgloss.Style
}

func NewLabel(name, text string) *Label {
	return &Label{
		base:  base{name: name},
		text:  text,
		style: common.DefaultPalette.Get("widget label"),
	}
}

func (l *Label) Interactive() bool { return false }
func (l *Label) Focus()            {}
func (l *Label) Focused() bool     { return false }

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.text = text }
func (l *Label) Text() string        { return l.text }

func (l *Label) Init() tea.Cmd {
	return nil
}

func (l *Label) Update(tea.Msg) tea.Cmd {
	return nil
}

func (l *Label) View() string {
	return l.style.Render(l.text)
}
