package widgets

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
)

// Slider holds a bounded integer value adjusted with left/right.
type Slider struct {
	base
	value    int
	minValue int
	maxValue int
	step     int
	width    int
	styles   sliderStyles
}

type sliderStyles struct {
	bar     lipgloss.Style
	text    lipgloss.Style
	focused lipgloss.Style
}

type SliderOption func(*Slider)

// WithRange sets the slider bounds. Invalid ranges are ignored.
func WithRange(minValue, maxValue int) SliderOption {
	return func(s *Slider) {
		if minValue < maxValue {
			s.minValue = minValue
			s.maxValue = maxValue
		}
	}
}

// WithStep sets the adjustment increment.
func WithStep(step int) SliderOption {
	return func(s *Slider) { s.step = max(step, 1) }
}

// WithValue sets the initial value, clamped to the range.
func WithValue(value int) SliderOption {
	return func(s *Slider) { s.value = value }
}

// WithBarWidth sets the rendered bar width in cells.
func WithBarWidth(width int) SliderOption {
	return func(s *Slider) { s.width = max(width, 3) }
}

func NewSlider(name string, opts ...SliderOption) *Slider {
	s := &Slider{
		base:     base{name: name},
		minValue: 0,
		maxValue: 100,
		step:     1,
		width:    10,
		styles: sliderStyles{
			bar:     common.DefaultPalette.Get("widget slider bar"),
			text:    common.DefaultPalette.Get("widget slider"),
			focused: common.DefaultPalette.Get("widget focused"),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.value = s.clamp(s.value)
	return s
}

func (s *Slider) Value() int { return s.value }

// SetValue sets the value, clamped to the range.
func (s *Slider) SetValue(value int) {
	s.value = s.clamp(value)
}

func (s *Slider) clamp(value int) int {
	if value < s.minValue {
		return s.minValue
	}
	if value > s.maxValue {
		return s.maxValue
	}
	return value
}

func (s *Slider) Init() tea.Cmd {
	return nil
}

func (s *Slider) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		return s.adjust(-s.step)
	case "right", "l":
		return s.adjust(s.step)
	case "home":
		return s.adjust(s.minValue - s.value)
	case "end":
		return s.adjust(s.maxValue - s.value)
	}
	return nil
}

func (s *Slider) adjust(delta int) tea.Cmd {
	next := s.clamp(s.value + delta)
	if next == s.value {
		return nil
	}
	s.value = next
	return newCmd(SliderChangedMsg{Name: s.name, Value: s.value})
}

func (s *Slider) View() string {
	span := s.maxValue - s.minValue
	filled := (s.value - s.minValue) * s.width / span
	bar := strings.Repeat("█", filled) + strings.Repeat("░", s.width-filled)

	text := s.styles.text
	if s.focused {
		text = text.Inherit(s.styles.focused)
	}
	return s.styles.bar.Render(bar) + text.Render(fmt.Sprintf(" %d", s.value))
}
