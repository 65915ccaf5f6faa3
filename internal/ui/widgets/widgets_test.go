package widgets

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestButton_PressEmitsMessage(t *testing.T) {
	b := NewButton("save", "Save")
	b.Focus()

	msg := runCmd(t, b.Update(keyPress(tea.KeyEnter)))

	assert.Equal(t, PressedMsg{Name: "save"}, msg)
}

func TestButton_IgnoresKeysWhenUnfocused(t *testing.T) {
	b := NewButton("save", "Save")

	assert.Nil(t, b.Update(keyPress(tea.KeyEnter)))
}

func TestButton_LargeViewStacksGlyphAboveLabel(t *testing.T) {
	b := NewButton("save", "Save", WithGlyph("💾"), WithSize(SizeLarge))

	view := b.View()

	assert.Contains(t, view, "\n")
	assert.Contains(t, view, "Save")
}

func TestToggleButton_TogglesState(t *testing.T) {
	tb := NewToggleButton("bold", "Bold")
	tb.Focus()

	msg := runCmd(t, tb.Update(keyPress(tea.KeyEnter)))
	assert.Equal(t, ToggledMsg{Name: "bold", Checked: true}, msg)
	assert.True(t, tb.Checked())

	msg = runCmd(t, tb.Update(keyPress(tea.KeyEnter)))
	assert.Equal(t, ToggledMsg{Name: "bold", Checked: false}, msg)
	assert.False(t, tb.Checked())
}

func TestLabelAndSeparator_AreNotInteractive(t *testing.T) {
	l := NewLabel("hint", "hint text")
	s := NewSeparator("sep")

	assert.False(t, l.Interactive())
	assert.False(t, s.Interactive())
	l.Focus()
	s.Focus()
	assert.False(t, l.Focused())
	assert.False(t, s.Focused())
}

func TestSeparator_ViewSpansHeight(t *testing.T) {
	s := NewSeparator("sep")
	s.SetHeight(3)

	assert.Equal(t, "│\n│\n│", s.View())
}

func TestComboBox_PickEmitsChange(t *testing.T) {
	c := NewComboBox("font", []string{"Mono", "Serif", "Sans"})
	c.Focus()

	c.Update(keyPress(tea.KeyEnter)) // open
	require.True(t, c.IsEditing())

	c.Update(keyPress(tea.KeyDown))
	msg := runCmd(t, c.Update(keyPress(tea.KeyEnter)))

	assert.Equal(t, ComboChangedMsg{Name: "font", Value: "Serif"}, msg)
	assert.Equal(t, "Serif", c.Value())
	assert.False(t, c.IsEditing())
}

func TestComboBox_FuzzyFilterNarrowsOptions(t *testing.T) {
	c := NewComboBox("font", []string{"Monospace", "Serif", "Sans Serif"})
	c.Focus()

	c.Update(keyPress(tea.KeyEnter))
	c.Update(runeKey('m'))
	c.Update(runeKey('n'))
	c.Update(runeKey('o'))

	require.NotEmpty(t, c.filtered)
	assert.Equal(t, "Monospace", c.filtered[0])
}

func TestComboBox_EscapeClosesWithoutChange(t *testing.T) {
	c := NewComboBox("font", []string{"Mono", "Serif"}, WithSelected(1))
	c.Focus()

	c.Update(keyPress(tea.KeyEnter))
	cmd := c.Update(keyPress(tea.KeyEsc))

	assert.Nil(t, cmd)
	assert.Equal(t, "Serif", c.Value())
	assert.False(t, c.IsEditing())
}

func TestSlider_AdjustsAndClamps(t *testing.T) {
	s := NewSlider("zoom", WithRange(0, 10), WithValue(9))
	s.Focus()

	msg := runCmd(t, s.Update(keyPress(tea.KeyRight)))
	assert.Equal(t, SliderChangedMsg{Name: "zoom", Value: 10}, msg)

	// already at the maximum: no change, no message
	assert.Nil(t, s.Update(keyPress(tea.KeyRight)))
	assert.Equal(t, 10, s.Value())
}

func TestSlider_HomeEndJumpToBounds(t *testing.T) {
	s := NewSlider("zoom", WithRange(5, 20), WithValue(10))
	s.Focus()

	msg := runCmd(t, s.Update(keyPress(tea.KeyEnd)))
	assert.Equal(t, SliderChangedMsg{Name: "zoom", Value: 20}, msg)

	msg = runCmd(t, s.Update(keyPress(tea.KeyHome)))
	assert.Equal(t, SliderChangedMsg{Name: "zoom", Value: 5}, msg)
}

func TestLineEdit_SubmitEmitsValue(t *testing.T) {
	l := NewLineEdit("search", WithInitialValue("hello"))
	l.Focus()

	msg := runCmd(t, l.Update(keyPress(tea.KeyEnter)))

	assert.Equal(t, SubmittedMsg{Name: "search", Value: "hello"}, msg)
}

func TestGallery_MoveAndPick(t *testing.T) {
	g := NewGallery("styles", []string{"Normal", "Heading", "Quote"})
	g.SetHeight(2)
	g.Focus()

	g.Update(keyPress(tea.KeyDown))
	g.Update(keyPress(tea.KeyDown))
	msg := runCmd(t, g.Update(keyPress(tea.KeyEnter)))

	assert.Equal(t, PickedMsg{Name: "styles", Index: 2, Item: "Quote"}, msg)
	assert.Equal(t, "Quote", g.Selected())
}

func TestGallery_ScrollsWindowWithCursor(t *testing.T) {
	g := NewGallery("styles", []string{"One", "Two", "Three", "Four", "Five"})
	g.SetHeight(2)
	g.Focus()

	for i := 0; i < 3; i++ {
		g.Update(keyPress(tea.KeyDown))
	}

	view := g.View()
	assert.Contains(t, view, "Four")
	assert.NotContains(t, view, "One")

	// pgup pages by the viewport height back toward the top
	g.Update(keyPress(tea.KeyPgUp))
	g.Update(keyPress(tea.KeyPgUp))
	assert.Equal(t, "One", g.Selected())
	assert.Contains(t, g.View(), "One")
}

func TestGallery_CursorStopsAtEnds(t *testing.T) {
	g := NewGallery("styles", []string{"A", "B"})
	g.Focus()

	g.Update(keyPress(tea.KeyUp))
	assert.Equal(t, "A", g.Selected())

	g.Update(keyPress(tea.KeyDown))
	g.Update(keyPress(tea.KeyDown))
	assert.Equal(t, "B", g.Selected())
}
