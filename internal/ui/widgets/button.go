package widgets

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
)

// Button is a pressable control. Large buttons stack their glyph above the
// label; small and medium buttons render on a single line.
type Button struct {
	base
	label   string
	glyph   string
	size    Size
	onPress tea.Cmd
	styles  buttonStyles
}

type buttonStyles struct {
	text    lipgloss.Style
	focused lipgloss.Style
}

type ButtonOption func(*Button)

// WithGlyph sets the short decorative string shown with the label.
func WithGlyph(glyph string) ButtonOption {
	return func(b *Button) { b.glyph = glyph }
}

// WithSize sets the semantic size used when the panel places the button.
func WithSize(size Size) ButtonOption {
	return func(b *Button) { b.size = size }
}

// WithOnPress registers a command run in addition to the PressedMsg.
func WithOnPress(cmd tea.Cmd) ButtonOption {
	return func(b *Button) { b.onPress = cmd }
}

func NewButton(name, label string, opts ...ButtonOption) *Button {
	b := &Button{
		base:  base{name: name},
		label: label,
		size:  SizeLarge,
		styles: buttonStyles{
			text:    common.DefaultPalette.Get("widget button"),
			focused: common.DefaultPalette.Get("widget focused"),
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Size returns the button's semantic size.
func (b *Button) Size() Size { return b.size }

func (b *Button) Init() tea.Cmd {
	return nil
}

func (b *Button) Update(msg tea.Msg) tea.Cmd {
	if !b.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && isActivateKey(msg.String()) {
		return b.press()
	}
	return nil
}

func (b *Button) press() tea.Cmd {
	pressed := newCmd(PressedMsg{Name: b.name})
	if b.onPress != nil {
		return tea.Batch(pressed, b.onPress)
	}
	return pressed
}

func (b *Button) View() string {
	style := b.styles.text
	if b.focused {
		style = style.Inherit(b.styles.focused)
	}
	if b.size == SizeLarge && b.glyph != "" {
		width := max(lipgloss.Width(b.glyph), lipgloss.Width(b.label))
		glyph := lipgloss.PlaceHorizontal(width, lipgloss.Center, b.glyph)
		label := lipgloss.PlaceHorizontal(width, lipgloss.Center, b.label)
		return style.Render(glyph + "\n" + label)
	}
	var sb strings.Builder
	if b.glyph != "" {
		sb.WriteString(b.glyph)
		sb.WriteString(" ")
	}
	sb.WriteString(b.label)
	return style.Render(sb.String())
}
