package category

import (
	"strings"
	"testing"

	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/okteal/ribbon/internal/ui/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPanel_KeepsInsertionOrder(t *testing.T) {
	m := New("Home")
	_, err := m.AddPanel("Clipboard")
	require.NoError(t, err)
	_, err = m.AddPanel("Font")
	require.NoError(t, err)

	panels := m.Panels()
	require.Len(t, panels, 2)
	assert.Equal(t, "Clipboard", panels[0].Title())
	assert.Equal(t, "Font", panels[1].Title())
}

func TestAddPanel_RejectsDuplicateTitles(t *testing.T) {
	m := New("Home")
	_, err := m.AddPanel("Clipboard")
	require.NoError(t, err)

	_, err = m.AddPanel("Clipboard")

	var confErr common.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestPanel_MissingTitleIsNotFound(t *testing.T) {
	m := New("Home")

	_, err := m.Panel("Styles")

	var notFound common.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestTakePanel_DetachesAndReturns(t *testing.T) {
	m := New("Home")
	_, err := m.AddPanel("Clipboard")
	require.NoError(t, err)
	_, err = m.AddPanel("Font")
	require.NoError(t, err)

	p, err := m.TakePanel("Clipboard")
	require.NoError(t, err)
	assert.Equal(t, "Clipboard", p.Title())

	_, err = m.Panel("Clipboard")
	assert.Error(t, err)
	// remaining panel is still reachable after reindexing
	rest, err := m.Panel("Font")
	require.NoError(t, err)
	assert.Equal(t, "Font", rest.Title())
}

func TestContextualStyleAndColor(t *testing.T) {
	m := New("Picture Tools", WithStyle(Contextual), WithColor(common.ContextualColors[0]))

	assert.Equal(t, Contextual, m.Style())
	assert.Equal(t, common.ContextualColors[0], m.Color())
	assert.Equal(t, Normal, New("Home").Style())
}

func TestFocus_CrossesPanelBoundaries(t *testing.T) {
	m := New("Home")
	clip, err := m.AddPanel("Clipboard")
	require.NoError(t, err)
	require.NoError(t, clip.AddButton(widgets.NewButton("cut", "Cut")))
	font, err := m.AddPanel("Font")
	require.NoError(t, err)
	require.NoError(t, font.AddButton(widgets.NewButton("bold", "Bold")))

	require.True(t, m.Focus())
	assert.Equal(t, clip, m.FocusedPanel())

	// the only widget in the first panel is exhausted, so focus moves on
	require.True(t, m.FocusNext())
	assert.Equal(t, font, m.FocusedPanel())
	assert.Equal(t, "bold", font.FocusedWidget().Name())

	assert.False(t, m.FocusNext())
	assert.False(t, m.Focused())
}

func TestFocus_SkipsPanelsWithoutInteractiveWidgets(t *testing.T) {
	m := New("Home")
	lbl, err := m.AddPanel("Info")
	require.NoError(t, err)
	require.NoError(t, lbl.AddLabel(widgets.NewLabel("hint", "read-only")))
	font, err := m.AddPanel("Font")
	require.NoError(t, err)
	require.NoError(t, font.AddButton(widgets.NewButton("bold", "Bold")))

	require.True(t, m.Focus())
	assert.Equal(t, font, m.FocusedPanel())
}

func TestView_JoinsPanelsWithRules(t *testing.T) {
	m := New("Home")
	_, err := m.AddPanel("Clipboard")
	require.NoError(t, err)
	_, err = m.AddPanel("Font")
	require.NoError(t, err)

	view := m.View()

	assert.Contains(t, view, "Clipboard")
	assert.Contains(t, view, "Font")
	assert.Contains(t, view, "│")
	assert.Empty(t, New("Empty").View())
	// all panels are six rows plus a title line
	assert.Len(t, strings.Split(view, "\n"), 7)
}
