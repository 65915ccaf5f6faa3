// Package ribbon implements the tabbed command bar.
//
// Categories are attached in order and identified by pointer, so titles may
// repeat. Contextual categories start hidden; applications show them when
// their context becomes relevant and hide them again afterwards.
package ribbon

import (
	"image/color"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/config"
	"github.com/okteal/ribbon/internal/ui/category"
	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/okteal/ribbon/internal/ui/widgets"
)

// HelpRequestedMsg is emitted when the help affordance is activated.
type HelpRequestedMsg struct{}

type styles struct {
	tab       lipgloss.Style
	activeTab lipgloss.Style
	bar       lipgloss.Style
}

type Model struct {
	categories  []*category.Model
	current     int // index into categories, -1 when empty
	hidden      map[*category.Model]bool
	contextuals int
	collapsed   bool
	height      int
	quickAccess []*widgets.Button
	keyMap      config.KeyMap
	styles      styles
}

type Option func(*Model)

// WithKeyMap sets the navigation key bindings.
func WithKeyMap(keyMap config.KeyMap) Option {
	return func(m *Model) { m.keyMap = keyMap }
}

// WithHeight fixes the height of the category body area. Zero means
// natural height.
func WithHeight(height int) Option {
	return func(m *Model) { m.height = height }
}

// WithCollapsed starts the ribbon with the category body hidden.
func WithCollapsed(collapsed bool) Option {
	return func(m *Model) { m.collapsed = collapsed }
}

func New(opts ...Option) *Model {
	m := &Model{
		current: -1,
		hidden:  make(map[*category.Model]bool),
		keyMap:  config.NewKeyMap(config.DefaultBindings()),
		styles: styles{
			tab:       common.DefaultPalette.Get("ribbon tab"),
			activeTab: common.DefaultPalette.Get("ribbon tab selected"),
			bar:       common.DefaultPalette.Get("ribbon bar"),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddCategory attaches a normal category and returns it. The first visible
// category becomes current.
func (m *Model) AddCategory(title string) *category.Model {
	c := category.New(title)
	m.attach(c, true)
	return c
}

// AddContextualCategory attaches a contextual category, initially hidden.
// A nil color picks the next entry of the default contextual palette.
func (m *Model) AddContextualCategory(title string, tint color.Color) *category.Model {
	if tint == nil {
		tint = common.ContextualColors[m.contextuals%len(common.ContextualColors)]
	}
	m.contextuals++
	c := category.New(title, category.WithStyle(category.Contextual), category.WithColor(tint))
	m.attach(c, false)
	return c
}

func (m *Model) attach(c *category.Model, visible bool) {
	m.categories = append(m.categories, c)
	if !visible {
		m.hidden[c] = true
		return
	}
	if m.current < 0 {
		m.current = len(m.categories) - 1
	}
}

// Categories returns all attached categories in order, hidden ones
// included.
func (m *Model) Categories() []*category.Model {
	return append([]*category.Model(nil), m.categories...)
}

// VisibleCategories returns the categories currently shown as tabs.
func (m *Model) VisibleCategories() []*category.Model {
	visible := make([]*category.Model, 0, len(m.categories))
	for _, c := range m.categories {
		if !m.hidden[c] {
			visible = append(visible, c)
		}
	}
	return visible
}

// IsShown reports whether the category is attached and visible.
func (m *Model) IsShown(c *category.Model) bool {
	return m.indexOf(c) >= 0 && !m.hidden[c]
}

func (m *Model) indexOf(c *category.Model) int {
	for i, attached := range m.categories {
		if attached == c {
			return i
		}
	}
	return -1
}

// ShowContextCategory makes a hidden contextual category visible. Showing
// selects it.
func (m *Model) ShowContextCategory(c *category.Model) error {
	index := m.indexOf(c)
	if index < 0 {
		return common.NotFoundError{Kind: "category", Key: c.Title()}
	}
	if c.Style() != category.Contextual {
		return common.ConfigurationError{Reason: "only contextual categories can be shown and hidden"}
	}
	delete(m.hidden, c)
	m.current = index
	return nil
}

// HideContextCategory hides a contextual category. Hiding the current
// category selects the nearest visible one before it.
func (m *Model) HideContextCategory(c *category.Model) error {
	index := m.indexOf(c)
	if index < 0 {
		return common.NotFoundError{Kind: "category", Key: c.Title()}
	}
	if c.Style() != category.Contextual {
		return common.ConfigurationError{Reason: "only contextual categories can be shown and hidden"}
	}
	if m.hidden[c] {
		return nil
	}
	c.Blur()
	m.hidden[c] = true
	if m.current == index {
		m.current = m.nearestVisible(index)
	}
	return nil
}

// nearestVisible prefers the closest visible category before the given
// index, then the closest after it, then none.
func (m *Model) nearestVisible(index int) int {
	for i := index - 1; i >= 0; i-- {
		if !m.hidden[m.categories[i]] {
			return i
		}
	}
	for i := index + 1; i < len(m.categories); i++ {
		if !m.hidden[m.categories[i]] {
			return i
		}
	}
	return -1
}

// CurrentCategory returns the selected category, or nil when none is
// visible.
func (m *Model) CurrentCategory() *category.Model {
	if m.current < 0 || m.current >= len(m.categories) {
		return nil
	}
	return m.categories[m.current]
}

// SetCurrentCategory selects an attached, visible category.
func (m *Model) SetCurrentCategory(c *category.Model) error {
	index := m.indexOf(c)
	if index < 0 || m.hidden[c] {
		return common.NotFoundError{Kind: "category", Key: c.Title()}
	}
	m.select_(index)
	return nil
}

// SetCurrentIndex selects the i-th visible category.
func (m *Model) SetCurrentIndex(i int) error {
	visible := m.VisibleCategories()
	if i < 0 || i >= len(visible) {
		return common.NotFoundError{Kind: "category index", Key: strconv.Itoa(i)}
	}
	m.select_(m.indexOf(visible[i]))
	return nil
}

func (m *Model) select_(index int) {
	if index == m.current {
		return
	}
	if c := m.CurrentCategory(); c != nil {
		c.Blur()
	}
	m.current = index
}

// SelectNext cycles selection to the next visible category.
func (m *Model) SelectNext() { m.cycle(1) }

// SelectPrev cycles selection to the previous visible category.
func (m *Model) SelectPrev() { m.cycle(-1) }

func (m *Model) cycle(step int) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	start := m.current
	if start < 0 {
		start = 0
	}
	for offset := 1; offset <= n; offset++ {
		i := ((start+step*offset)%n + n) % n
		if !m.hidden[m.categories[i]] {
			m.select_(i)
			return
		}
	}
}

// IsEditing reports whether a widget of the current category is capturing
// raw input.
func (m *Model) IsEditing() bool {
	c := m.CurrentCategory()
	return c != nil && c.IsEditing()
}

// Collapsed reports whether the category body is hidden.
func (m *Model) Collapsed() bool { return m.collapsed }

// SetCollapsed shows or hides the category body.
func (m *Model) SetCollapsed(collapsed bool) { m.collapsed = collapsed }

// ToggleCollapsed flips the collapsed state.
func (m *Model) ToggleCollapsed() { m.collapsed = !m.collapsed }

// AddQuickAccess appends a button to the quick-access strip left of the
// tabs.
func (m *Model) AddQuickAccess(b *widgets.Button) {
	m.quickAccess = append(m.quickAccess, b)
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.categories {
		cmds = append(cmds, c.Init())
	}
	return tea.Batch(cmds...)
}

// Update routes keys by focus state. While a widget is editing, everything
// goes to it. Otherwise ctrl-bound focus keys and the collapse and help
// bindings act first; tab switching only applies while no widget holds
// focus, so widgets keep their arrow keys.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if c := m.CurrentCategory(); c != nil {
			return c.Update(msg)
		}
		return nil
	}

	c := m.CurrentCategory()
	if c != nil && c.IsEditing() {
		return c.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.Collapse):
		m.ToggleCollapsed()
		return nil
	case key.Matches(keyMsg, m.keyMap.Help):
		return common.Cmd(HelpRequestedMsg{})
	case key.Matches(keyMsg, m.keyMap.NextPanel):
		if c != nil && !c.FocusNext() {
			c.Focus()
		}
		return nil
	case key.Matches(keyMsg, m.keyMap.PrevPanel):
		if c != nil && !c.FocusPrev() {
			c.FocusLast()
		}
		return nil
	}

	if c != nil && c.Focused() {
		if keyMsg.String() == "esc" {
			c.Blur()
			return nil
		}
		return c.Update(msg)
	}

	switch {
	case key.Matches(keyMsg, m.keyMap.NextTab):
		m.SelectNext()
	case key.Matches(keyMsg, m.keyMap.PrevTab):
		m.SelectPrev()
	default:
		if c != nil && (keyMsg.String() == "enter" || keyMsg.String() == "down") {
			c.Focus()
		}
	}
	return nil
}
