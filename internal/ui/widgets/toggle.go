package widgets

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
)

// ToggleButton is a button with a checked state.
type ToggleButton struct {
	base
	label   string
	checked bool
	size    Size
	styles  toggleStyles
}

type toggleStyles struct {
	text    lipgloss.Style
	checked lipgloss.Style
	focused lipgloss.Style
}

type ToggleOption func(*ToggleButton)

// WithChecked sets the initial state.
func WithChecked(checked bool) ToggleOption {
	return func(t *ToggleButton) { t.checked = checked }
}

// WithToggleSize sets the semantic size used when the panel places the
// toggle.
func WithToggleSize(size Size) ToggleOption {
	return func(t *ToggleButton) { t.size = size }
}

func NewToggleButton(name, label string, opts ...ToggleOption) *ToggleButton {
	t := &ToggleButton{
		base:  base{name: name},
		label: label,
		size:  SizeSmall,
		styles: toggleStyles{
			text:    common.DefaultPalette.Get("widget button"),
			checked: common.DefaultPalette.Get("widget toggle checked"),
			focused: common.DefaultPalette.Get("widget focused"),
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *ToggleButton) Size() Size    { return t.size }
func (t *ToggleButton) Checked() bool { return t.checked }

func (t *ToggleButton) Init() tea.Cmd {
	return nil
}

func (t *ToggleButton) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && isActivateKey(msg.String()) {
		t.checked = !t.checked
		return newCmd(ToggledMsg{Name: t.name, Checked: t.checked})
	}
	return nil
}

func (t *ToggleButton) View() string {
	style := t.styles.text
	mark := "[ ]"
	if t.checked {
		style = style.Inherit(t.styles.checked)
		mark = "[x]"
	}
	if t.focused {
		style = style.Inherit(t.styles.focused)
	}
	return style.Render(mark + " " + t.label)
}
