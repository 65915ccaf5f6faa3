package widgets

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
)

// Gallery is a scrollable strip of selectable items. The owning panel sets
// its height to the placed row span; items beyond it scroll through a
// viewport.
type Gallery struct {
	base
	items  []string
	cursor int
	top    int // first visible item, kept in sync with the viewport
	width  int
	view   viewport.Model
	styles galleryStyles
}

type galleryStyles struct {
	text     lipgloss.Style
	selected lipgloss.Style
}

type GalleryOption func(*Gallery)

// WithGalleryWidth sets the rendered item width in cells.
func WithGalleryWidth(width int) GalleryOption {
	return func(g *Gallery) { g.width = max(width, 4) }
}

func NewGallery(name string, items []string, opts ...GalleryOption) *Gallery {
	g := &Gallery{
		base:  base{name: name},
		items: items,
		width: 16,
		styles: galleryStyles{
			text:     common.DefaultPalette.Get("widget gallery"),
			selected: common.DefaultPalette.Get("widget gallery selected"),
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.view = viewport.New(viewport.WithWidth(g.width), viewport.WithHeight(1))
	return g
}

// SetHeight fixes the number of visible lines.
func (g *Gallery) SetHeight(height int) {
	g.view.SetHeight(max(height, 1))
	g.scrollToCursor()
}

// Selected returns the current item, or "" when the gallery is empty.
func (g *Gallery) Selected() string {
	if g.cursor < 0 || g.cursor >= len(g.items) {
		return ""
	}
	return g.items[g.cursor]
}

func (g *Gallery) Init() tea.Cmd {
	return nil
}

func (g *Gallery) Update(msg tea.Msg) tea.Cmd {
	if !g.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		g.move(-1)
	case "down", "j":
		g.move(1)
	case "pgup":
		g.move(-g.view.Height())
	case "pgdown":
		g.move(g.view.Height())
	case "enter", " ", "space":
		if len(g.items) > 0 {
			return newCmd(PickedMsg{Name: g.name, Index: g.cursor, Item: g.items[g.cursor]})
		}
	}
	return nil
}

func (g *Gallery) move(delta int) {
	if len(g.items) == 0 {
		return
	}
	next := g.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(g.items) {
		next = len(g.items) - 1
	}
	g.cursor = next
	g.scrollToCursor()
}

// scrollToCursor keeps the cursor inside the viewport window.
func (g *Gallery) scrollToCursor() {
	height := g.view.Height()
	if g.cursor < g.top {
		g.view.ScrollUp(g.top - g.cursor)
		g.top = g.cursor
	} else if g.cursor >= g.top+height {
		delta := g.cursor - (g.top + height - 1)
		g.view.ScrollDown(delta)
		g.top += delta
	}
}

func (g *Gallery) View() string {
	lines := make([]string, 0, len(g.items))
	for i, item := range g.items {
		style := g.styles.text
		if i == g.cursor && g.focused {
			style = g.styles.selected
		}
		lines = append(lines, style.Width(g.width).MaxWidth(g.width).Render(item))
	}
	g.view.SetContent(strings.Join(lines, "\n"))
	return g.view.View()
}
