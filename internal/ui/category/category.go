// Package category groups ribbon panels under a tab.
//
// A category renders its panels joined horizontally with vertical rules.
// Contextual categories carry a tint color that the ribbon uses for their
// tab; normal categories don't.
package category

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/okteal/ribbon/internal/ui/panel"
)

// Style distinguishes always-visible categories from contextual ones that
// applications show and hide.
type Style int

const (
	Normal Style = iota
	Contextual
)

func (s Style) String() string {
	if s == Contextual {
		return "contextual"
	}
	return "normal"
}

// DisplayOptionsMsg is emitted when the category's display-options
// affordance is activated.
type DisplayOptionsMsg struct {
	Title string
}

type styles struct {
	separator lipgloss.Style
}

type Model struct {
	title    string
	style    Style
	color    color.Color
	panels   []*panel.Model
	names    map[string]int
	focusIdx int // index into panels, -1 when unfocused
	styles   styles
}

type Option func(*Model)

// WithStyle marks the category as normal or contextual.
func WithStyle(style Style) Option {
	return func(m *Model) { m.style = style }
}

// WithColor sets the contextual tint color.
func WithColor(c color.Color) Option {
	return func(m *Model) { m.color = c }
}

func New(title string, opts ...Option) *Model {
	m := &Model{
		title:    title,
		names:    make(map[string]int),
		focusIdx: -1,
		styles: styles{
			separator: common.DefaultPalette.Get("category separator"),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Title() string      { return m.title }
func (m *Model) Style() Style       { return m.style }
func (m *Model) Color() color.Color { return m.color }

// SetColor overrides the contextual tint color.
func (m *Model) SetColor(c color.Color) { m.color = c }

// AddPanel creates a panel and appends it to the category. Panel titles
// must be unique within the category.
func (m *Model) AddPanel(title string, opts ...panel.Option) (*panel.Model, error) {
	if _, exists := m.names[title]; exists {
		return nil, common.ConfigurationError{Reason: fmt.Sprintf("category %q already has a panel titled %q", m.title, title)}
	}
	p := panel.New(title, opts...)
	m.names[title] = len(m.panels)
	m.panels = append(m.panels, p)
	return p, nil
}

// Panel returns the panel with the given title.
func (m *Model) Panel(title string) (*panel.Model, error) {
	index, ok := m.names[title]
	if !ok {
		return nil, common.NotFoundError{Kind: "panel", Key: title}
	}
	return m.panels[index], nil
}

// Panels returns the panels in insertion order.
func (m *Model) Panels() []*panel.Model {
	return append([]*panel.Model(nil), m.panels...)
}

// RemovePanel detaches the panel with the given title.
func (m *Model) RemovePanel(title string) error {
	_, err := m.TakePanel(title)
	return err
}

// TakePanel detaches and returns the panel with the given title, so it can
// be moved to another category.
func (m *Model) TakePanel(title string) (*panel.Model, error) {
	index, ok := m.names[title]
	if !ok {
		return nil, common.NotFoundError{Kind: "panel", Key: title}
	}
	p := m.panels[index]
	delete(m.names, title)
	m.panels = append(m.panels[:index], m.panels[index+1:]...)
	for n, i := range m.names {
		if i > index {
			m.names[n] = i - 1
		}
	}
	if m.focusIdx == index {
		p.Blur()
		m.focusIdx = -1
	} else if m.focusIdx > index {
		m.focusIdx--
	}
	return p, nil
}

// ShowDisplayOptions emits the category's display-options message.
func (m *Model) ShowDisplayOptions() tea.Cmd {
	return common.Cmd(DisplayOptionsMsg{Title: m.title})
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.panels {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

// Update forwards the message to the focused panel.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if p := m.FocusedPanel(); p != nil {
		return p.Update(msg)
	}
	return nil
}

// FocusedPanel returns the panel holding focus, or nil.
func (m *Model) FocusedPanel() *panel.Model {
	if m.focusIdx < 0 || m.focusIdx >= len(m.panels) {
		return nil
	}
	return m.panels[m.focusIdx]
}

// Focused reports whether any panel in the category has focus.
func (m *Model) Focused() bool { return m.FocusedPanel() != nil }

// IsEditing reports whether the focused widget is capturing raw input.
func (m *Model) IsEditing() bool {
	p := m.FocusedPanel()
	return p != nil && p.IsEditing()
}

// Focus gives focus to the first focusable panel. It reports false when no
// panel has an interactive widget.
func (m *Model) Focus() bool {
	return m.focusFrom(0, 1)
}

// FocusLast gives focus to the last interactive widget of the last
// focusable panel.
func (m *Model) FocusLast() bool {
	return m.focusFrom(len(m.panels)-1, -1)
}

// Blur removes focus from the category.
func (m *Model) Blur() {
	if p := m.FocusedPanel(); p != nil {
		p.Blur()
	}
	m.focusIdx = -1
}

// FocusNext advances focus to the next interactive widget, crossing panel
// boundaries. It reports false (and blurs) past the last widget.
func (m *Model) FocusNext() bool {
	p := m.FocusedPanel()
	if p == nil {
		return m.Focus()
	}
	if p.FocusNext() {
		return true
	}
	if m.focusFrom(m.focusIdx+1, 1) {
		return true
	}
	m.focusIdx = -1
	return false
}

// FocusPrev moves focus to the previous interactive widget, crossing panel
// boundaries. It reports false (and blurs) before the first widget.
func (m *Model) FocusPrev() bool {
	p := m.FocusedPanel()
	if p == nil {
		return m.FocusLast()
	}
	if p.FocusPrev() {
		return true
	}
	if m.focusFrom(m.focusIdx-1, -1) {
		return true
	}
	m.focusIdx = -1
	return false
}

func (m *Model) focusFrom(start, step int) bool {
	for i := start; i >= 0 && i < len(m.panels); i += step {
		ok := false
		if step > 0 {
			ok = m.panels[i].Focus()
		} else {
			ok = m.panels[i].FocusLast()
		}
		if ok {
			m.focusIdx = i
			return true
		}
	}
	return false
}

// View joins the panels horizontally, separated by vertical rules.
func (m *Model) View() string {
	if len(m.panels) == 0 {
		return ""
	}
	views := make([]string, 0, len(m.panels)*2-1)
	rule := ""
	for i, p := range m.panels {
		v := p.View()
		if i > 0 {
			if rule == "" {
				rule = m.rule(lipgloss.Height(v))
			}
			views = append(views, rule)
		}
		views = append(views, v)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) rule(height int) string {
	lines := make([]string, max(height, 1))
	for i := range lines {
		lines[i] = m.styles.separator.Render("│")
	}
	return strings.Join(lines, "\n")
}
