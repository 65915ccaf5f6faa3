package ribbon

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/category"
)

// View renders the quick-access strip and tab row, followed by the current
// category body unless the ribbon is collapsed.
func (m *Model) View() string {
	bar := m.renderBar()
	if m.collapsed {
		return bar
	}
	c := m.CurrentCategory()
	if c == nil {
		return bar
	}
	body := m.clip(c.View())
	return lipgloss.JoinVertical(lipgloss.Left, bar, body)
}

// clip pads or truncates the body to the configured height. Zero height
// keeps the natural size.
func (m *Model) clip(body string) string {
	if m.height <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	if len(lines) > m.height {
		return strings.Join(lines[:m.height], "\n")
	}
	return lipgloss.NewStyle().Height(m.height).Render(body)
}

func (m *Model) renderBar() string {
	var parts []string
	for _, b := range m.quickAccess {
		parts = append(parts, b.View())
	}
	current := m.CurrentCategory()
	for _, c := range m.VisibleCategories() {
		parts = append(parts, m.renderTab(c, c == current))
	}
	if len(parts) == 0 {
		return ""
	}
	return m.styles.bar.Render(strings.Join(parts, " "))
}

func (m *Model) renderTab(c *category.Model, active bool) string {
	style := m.styles.tab
	if active {
		style = m.styles.activeTab
	}
	if c.Style() == category.Contextual && c.Color() != nil {
		style = style.Foreground(c.Color())
	}
	return style.Render(" " + c.Title() + " ")
}
