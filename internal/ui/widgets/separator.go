package widgets

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
)

// Separator is a vertical rule. The owning panel sets its height to the
// placed row span before rendering.
type Separator struct {
	base
	height int
	style  lipgloss.Style
}

func NewSeparator(name string) *Separator {
	return &Separator{
		base:   base{name: name},
		height: 1,
		style:  common.DefaultPalette.Get("panel separator"),
	}
}

func (s *Separator) Interactive() bool { return false }
func (s *Separator) Focus()            {}
func (s *Separator) Focused() bool     { return false }

// SetHeight fixes the number of lines the rule spans.
func (s *Separator) SetHeight(height int) {
	s.height = max(height, 1)
}

func (s *Separator) Init() tea.Cmd {
	return nil
}

func (s *Separator) Update(tea.Msg) tea.Cmd {
	return nil
}

func (s *Separator) View() string {
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = "│"
	}
	return s.style.Render(strings.Join(lines, "\n"))
}
