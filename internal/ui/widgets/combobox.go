package widgets

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/sahilm/fuzzy"
)

// ComboBox shows the current value closed, and a fuzzy-filterable option
// list while open. The dropdown renders inside the widget's placed rows, so
// combo boxes are usually placed medium or large.
type ComboBox struct {
	base
	options  []string
	filtered []string
	selected int // index into options
	cursor   int // index into filtered while open
	open     bool
	maxShown int
	input    textinput.Model
	styles   comboStyles
}

type comboStyles struct {
	text     lipgloss.Style
	open     lipgloss.Style
	selected lipgloss.Style
	focused  lipgloss.Style
}

type ComboOption func(*ComboBox)

// WithSelected sets the initially selected option index.
func WithSelected(index int) ComboOption {
	return func(c *ComboBox) {
		if index >= 0 && index < len(c.options) {
			c.selected = index
		}
	}
}

// WithMaxShown limits how many options the open dropdown lists.
func WithMaxShown(n int) ComboOption {
	return func(c *ComboBox) { c.maxShown = max(n, 1) }
}

func NewComboBox(name string, options []string, opts ...ComboOption) *ComboBox {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter..."
	ti.CharLimit = 64
	ti.SetWidth(16)

	c := &ComboBox{
		base:     base{name: name},
		options:  options,
		filtered: options,
		maxShown: 4,
		input:    ti,
		styles: comboStyles{
			text:     common.DefaultPalette.Get("widget combobox"),
			open:     common.DefaultPalette.Get("widget combobox open"),
			selected: common.DefaultPalette.Get("widget gallery selected"),
			focused:  common.DefaultPalette.Get("widget focused"),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the currently selected option, or "" when there are none.
func (c *ComboBox) Value() string {
	if c.selected < 0 || c.selected >= len(c.options) {
		return ""
	}
	return c.options[c.selected]
}

// IsEditing reports whether the dropdown is open and capturing keys.
func (c *ComboBox) IsEditing() bool { return c.open }

func (c *ComboBox) Init() tea.Cmd {
	return nil
}

func (c *ComboBox) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return nil
	}

	if !c.open {
		if isActivateKey(keyMsg.String()) {
			c.openDropdown()
			return textinput.Blink
		}
		return nil
	}

	switch keyMsg.String() {
	case "enter":
		return c.pick()
	case "esc":
		c.closeDropdown()
		return nil
	case "up":
		c.move(-1)
		return nil
	case "down":
		c.move(1)
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.filter()
	return cmd
}

func (c *ComboBox) openDropdown() {
	c.open = true
	c.input.Reset()
	c.input.Focus()
	c.filtered = c.options
	c.cursor = 0
	if c.selected >= 0 && c.selected < len(c.filtered) {
		c.cursor = c.selected
	}
}

func (c *ComboBox) closeDropdown() {
	c.open = false
	c.input.Blur()
}

func (c *ComboBox) pick() tea.Cmd {
	if len(c.filtered) == 0 {
		c.closeDropdown()
		return nil
	}
	value := c.filtered[c.cursor]
	c.closeDropdown()
	for i, opt := range c.options {
		if opt == value {
			if i == c.selected {
				return nil
			}
			c.selected = i
			break
		}
	}
	return newCmd(ComboChangedMsg{Name: c.name, Value: value})
}

func (c *ComboBox) move(delta int) {
	if len(c.filtered) == 0 {
		return
	}
	next := c.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(c.filtered) {
		next = len(c.filtered) - 1
	}
	c.cursor = next
}

func (c *ComboBox) filter() {
	term := c.input.Value()
	if term == "" {
		c.filtered = c.options
	} else {
		matches := fuzzy.Find(term, c.options)
		filtered := make([]string, 0, len(matches))
		for _, match := range matches {
			filtered = append(filtered, c.options[match.Index])
		}
		c.filtered = filtered
	}
	if c.cursor >= len(c.filtered) {
		c.cursor = 0
	}
}

func (c *ComboBox) View() string {
	if !c.open {
		style := c.styles.text
		if c.focused {
			style = style.Inherit(c.styles.focused)
		}
		return style.Render(c.Value() + " ▾")
	}

	var sb strings.Builder
	sb.WriteString(c.styles.open.Render(c.Value() + " ▴"))
	sb.WriteString("\n")
	sb.WriteString(c.input.View())
	shown := min(len(c.filtered), c.maxShown)
	for i := 0; i < shown; i++ {
		sb.WriteString("\n")
		if i == c.cursor {
			sb.WriteString(c.styles.selected.Render(c.filtered[i]))
		} else {
			sb.WriteString(c.styles.text.Render(c.filtered[i]))
		}
	}
	return sb.String()
}
