package panel

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
)

// column gap in cells
const gap = 1

func (m *Model) View() string {
	body := m.renderBody()
	title := m.renderTitle(lipgloss.Width(body))
	return lipgloss.JoinVertical(lipgloss.Left, body, title)
}

// renderBody composites widget views onto the occupancy grid, one terminal
// line per grid row. Each band line is assembled left to right: a widget
// anchored at a column contributes one slice of its normalized block and
// the scan jumps past its column span; uncovered columns contribute blanks.
func (m *Model) renderBody() string {
	if len(m.placements) == 0 {
		return lipgloss.NewStyle().Width(lipgloss.Width(m.title) + 2).Height(m.maxRows).Render("")
	}

	cols := m.alloc.Columns()
	rawViews := make([]string, len(m.placements))
	colWidths := make([]int, cols)
	for i, p := range m.placements {
		rawViews[i] = p.widget.View()
		per := (lipgloss.Width(rawViews[i]) + p.colSpan - 1) / p.colSpan
		for c := p.col; c < p.col+p.colSpan && c < cols; c++ {
			colWidths[c] = max(colWidths[c], per)
		}
	}

	blockLines := make([][]string, len(m.placements))
	for i, p := range m.placements {
		width := spanWidth(colWidths, p.col, p.colSpan)
		block := lipgloss.Place(width, p.rowSpan, lipgloss.Center, lipgloss.Center, rawViews[i])
		blockLines[i] = strings.Split(block, "\n")
	}

	occupant := make([][]int, m.maxRows)
	for r := range occupant {
		occupant[r] = make([]int, cols)
		for c := range occupant[r] {
			occupant[r][c] = -1
		}
	}
	for i, p := range m.placements {
		for r := p.row; r < p.row+p.rowSpan && r < m.maxRows; r++ {
			for c := p.col; c < p.col+p.colSpan && c < cols; c++ {
				occupant[r][c] = i
			}
		}
	}

	pad := strings.Repeat(" ", gap)
	lines := make([]string, 0, m.maxRows)
	for r := 0; r < m.maxRows; r++ {
		var segs []string
		for c := 0; c < cols; {
			i := occupant[r][c]
			if i >= 0 && m.placements[i].col == c {
				p := m.placements[i]
				if line := r - p.row; line < len(blockLines[i]) {
					segs = append(segs, blockLines[i][line])
				} else {
					segs = append(segs, strings.Repeat(" ", spanWidth(colWidths, p.col, p.colSpan)))
				}
				c += p.colSpan
				continue
			}
			segs = append(segs, strings.Repeat(" ", colWidths[c]))
			c++
		}
		lines = append(lines, strings.Join(segs, pad))
	}
	return strings.Join(lines, "\n")
}

func spanWidth(colWidths []int, col, colSpan int) int {
	width := 0
	for c := col; c < col+colSpan && c < len(colWidths); c++ {
		width += colWidths[c]
	}
	return width + (colSpan-1)*gap
}

func (m *Model) renderTitle(width int) string {
	title := common.Truncate(m.title, width)
	if m.showOptionButton && width >= lipgloss.Width(title)+2 {
		centered := lipgloss.PlaceHorizontal(width-2, lipgloss.Center, m.styles.title.Render(title))
		return centered + " " + m.styles.option.Render("⚙")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, m.styles.title.Render(title))
}
