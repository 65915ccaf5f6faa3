package helppage

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/okteal/ribbon/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_ListsConfiguredBindings(t *testing.T) {
	h := New(config.NewKeyMap(config.DefaultBindings()))

	view := h.View()

	assert.Contains(t, view, "next tab")
	assert.Contains(t, view, "collapse ribbon")
	assert.Contains(t, view, "quit")
}

func TestUpdate_EscCloses(t *testing.T) {
	h := New(config.NewKeyMap(config.DefaultBindings()))

	cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, ClosedMsg{}, cmd())
}

func TestUpdate_HelpKeyCloses(t *testing.T) {
	h := New(config.NewKeyMap(config.DefaultBindings()))

	cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyF1})

	require.NotNil(t, cmd)
	assert.IsType(t, ClosedMsg{}, cmd())
}
