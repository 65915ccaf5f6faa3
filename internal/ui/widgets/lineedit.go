package widgets

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// LineEdit is a single-line text field backed by bubbles textinput.
type LineEdit struct {
	base
	input textinput.Model
}

type LineEditOption func(*LineEdit)

// WithPlaceholder sets the placeholder text.
func WithPlaceholder(placeholder string) LineEditOption {
	return func(l *LineEdit) { l.input.Placeholder = placeholder }
}

// WithInitialValue sets the starting content.
func WithInitialValue(value string) LineEditOption {
	return func(l *LineEdit) { l.input.SetValue(value) }
}

// WithWidth sets the field width in cells.
func WithWidth(width int) LineEditOption {
	return func(l *LineEdit) { l.input.SetWidth(width) }
}

func NewLineEdit(name string, opts ...LineEditOption) *LineEdit {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.SetWidth(16)

	l := &LineEdit{
		base:  base{name: name},
		input: ti,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *LineEdit) Value() string { return l.input.Value() }

// IsEditing reports whether the field is capturing keys.
func (l *LineEdit) IsEditing() bool { return l.focused }

func (l *LineEdit) Focus() {
	l.focused = true
	l.input.Focus()
}

func (l *LineEdit) Blur() {
	l.focused = false
	l.input.Blur()
}

func (l *LineEdit) Init() tea.Cmd {
	return nil
}

func (l *LineEdit) Update(msg tea.Msg) tea.Cmd {
	if !l.focused {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		return newCmd(SubmittedMsg{Name: l.name, Value: l.input.Value()})
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return cmd
}

func (l *LineEdit) View() string {
	return l.input.View()
}
