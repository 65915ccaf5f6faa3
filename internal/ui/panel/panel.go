// Package panel implements a titled ribbon panel that grid-packs widgets.
//
// A panel owns one grid.Allocator with a row capacity fixed at
// construction. Semantic widget sizes map to row spans: small is a third of
// the capacity, medium half, large all of it (rounded, at least one row).
// Placement is append-only; removing a widget does not free its cells.
package panel

import (
	"fmt"
	"math"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/okteal/ribbon/internal/ui/grid"
	"github.com/okteal/ribbon/internal/ui/widgets"
)

// DefaultMaxRows matches the classic six-row ribbon panel.
const DefaultMaxRows = 6

// OptionClickedMsg is emitted when the panel's option affordance is
// activated.
type OptionClickedMsg struct {
	Title string
}

type placement struct {
	widget  widgets.Widget
	row     int
	col     int
	rowSpan int
	colSpan int
}

type styles struct {
	title     lipgloss.Style
	option    lipgloss.Style
	separator lipgloss.Style
}

// heightSetter is implemented by widgets that stretch to their placed row
// span (separators, galleries).
type heightSetter interface {
	SetHeight(height int)
}

type Model struct {
	title            string
	maxRows          int
	smallRows        int
	mediumRows       int
	largeRows        int
	alloc            *grid.Allocator
	placements       []placement
	names            map[string]int
	focusIdx         int // index into placements, -1 when unfocused
	showOptionButton bool
	styles           styles
}

type Option func(*Model)

// WithMaxRows sets the panel's fixed row capacity. Values below 1 are
// ignored.
func WithMaxRows(rows int) Option {
	return func(m *Model) {
		if rows >= 1 {
			m.maxRows = rows
		}
	}
}

// WithShowOptionButton controls the option affordance in the title row.
func WithShowOptionButton(show bool) Option {
	return func(m *Model) { m.showOptionButton = show }
}

func New(title string, opts ...Option) *Model {
	m := &Model{
		title:            title,
		maxRows:          DefaultMaxRows,
		names:            make(map[string]int),
		focusIdx:         -1,
		showOptionButton: true,
		styles: styles{
			title:     common.DefaultPalette.Get("panel title"),
			option:    common.DefaultPalette.Get("panel option"),
			separator: common.DefaultPalette.Get("panel separator"),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.smallRows = sizeRows(m.maxRows, 3)
	m.mediumRows = sizeRows(m.maxRows, 2)
	m.largeRows = m.maxRows
	// maxRows is at least 1, so the allocator cannot fail
	m.alloc, _ = grid.New(m.maxRows)
	return m
}

func sizeRows(maxRows, divisor int) int {
	return max(int(math.Round(float64(maxRows)/float64(divisor))), 1)
}

func (m *Model) Title() string   { return m.title }
func (m *Model) MaxRows() int    { return m.maxRows }
func (m *Model) SmallRows() int  { return m.smallRows }
func (m *Model) MediumRows() int { return m.mediumRows }
func (m *Model) LargeRows() int  { return m.largeRows }

// SetMaxRows always fails: the row capacity is fixed when the panel is
// created, because placed widgets depend on it.
func (m *Model) SetMaxRows(int) error {
	return common.ConfigurationError{
		Reason: "panel row capacity is fixed at construction; create the panel with WithMaxRows instead",
	}
}

// SetSmallRows overrides the row span used for small widgets.
func (m *Model) SetSmallRows(rows int) error {
	if rows < 1 || rows > m.maxRows {
		return common.ConfigurationError{Reason: fmt.Sprintf("small rows %d outside 1..%d", rows, m.maxRows)}
	}
	m.smallRows = rows
	return nil
}

// SetMediumRows overrides the row span used for medium widgets.
func (m *Model) SetMediumRows(rows int) error {
	if rows < 1 || rows > m.maxRows {
		return common.ConfigurationError{Reason: fmt.Sprintf("medium rows %d outside 1..%d", rows, m.maxRows)}
	}
	m.mediumRows = rows
	return nil
}

// SetLargeRows overrides the row span used for large widgets.
func (m *Model) SetLargeRows(rows int) error {
	if rows < 1 || rows > m.maxRows {
		return common.ConfigurationError{Reason: fmt.Sprintf("large rows %d outside 1..%d", rows, m.maxRows)}
	}
	m.largeRows = rows
	return nil
}

// SizeRows translates a semantic size into the panel's current row span.
func (m *Model) SizeRows(size widgets.Size) int {
	switch size {
	case widgets.SizeSmall:
		return m.smallRows
	case widgets.SizeMedium:
		return m.mediumRows
	default:
		return m.largeRows
	}
}

// AddWidget places a widget over rowSpan×colSpan cells. Widget names must
// be unique within the panel.
func (m *Model) AddWidget(w widgets.Widget, rowSpan, colSpan int, mode grid.Mode) error {
	if _, exists := m.names[w.Name()]; exists {
		return common.ConfigurationError{Reason: fmt.Sprintf("panel %q already has a widget named %q", m.title, w.Name())}
	}
	pos, err := m.alloc.RequestCells(rowSpan, colSpan, mode)
	if err != nil {
		return fmt.Errorf("placing %q in panel %q: %w", w.Name(), m.title, err)
	}
	if hs, ok := w.(heightSetter); ok {
		hs.SetHeight(rowSpan)
	}
	m.names[w.Name()] = len(m.placements)
	m.placements = append(m.placements, placement{
		widget:  w,
		row:     pos.Row,
		col:     pos.Col,
		rowSpan: max(rowSpan, 1),
		colSpan: max(colSpan, 1),
	})
	return nil
}

// AddSmallWidget places a widget with the small row span in column-wise
// order.
func (m *Model) AddSmallWidget(w widgets.Widget) error {
	return m.AddWidget(w, m.smallRows, 1, grid.ColumnWise)
}

// AddMediumWidget places a widget with the medium row span in column-wise
// order.
func (m *Model) AddMediumWidget(w widgets.Widget) error {
	return m.AddWidget(w, m.mediumRows, 1, grid.ColumnWise)
}

// AddLargeWidget places a widget spanning the full row capacity.
func (m *Model) AddLargeWidget(w widgets.Widget) error {
	return m.AddWidget(w, m.largeRows, 1, grid.ColumnWise)
}

// AddButton places a button according to its semantic size.
func (m *Model) AddButton(b *widgets.Button) error {
	return m.AddWidget(b, m.SizeRows(b.Size()), 1, grid.ColumnWise)
}

// AddToggleButton places a toggle button according to its semantic size.
func (m *Model) AddToggleButton(t *widgets.ToggleButton) error {
	return m.AddWidget(t, m.SizeRows(t.Size()), 1, grid.ColumnWise)
}

// AddComboBox places a combo box over the medium row span so its dropdown
// has room to open.
func (m *Model) AddComboBox(c *widgets.ComboBox) error {
	return m.AddWidget(c, m.mediumRows, 1, grid.ColumnWise)
}

// AddSlider places a slider over the small row span.
func (m *Model) AddSlider(s *widgets.Slider) error {
	return m.AddWidget(s, m.smallRows, 1, grid.ColumnWise)
}

// AddLineEdit places a line edit over the small row span.
func (m *Model) AddLineEdit(l *widgets.LineEdit) error {
	return m.AddWidget(l, m.smallRows, 1, grid.ColumnWise)
}

// AddLabel places a label over the small row span.
func (m *Model) AddLabel(l *widgets.Label) error {
	return m.AddWidget(l, m.smallRows, 1, grid.ColumnWise)
}

// AddSeparator places a vertical rule spanning the full row capacity.
func (m *Model) AddSeparator(s *widgets.Separator) error {
	return m.AddWidget(s, m.largeRows, 1, grid.ColumnWise)
}

// AddGallery places a gallery spanning the full row capacity.
func (m *Model) AddGallery(g *widgets.Gallery) error {
	return m.AddWidget(g, m.largeRows, 1, grid.ColumnWise)
}

// Placement is the reserved cell rectangle of a placed widget.
type Placement struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// PlacementOf returns the cell rectangle reserved for a named widget.
func (m *Model) PlacementOf(name string) (Placement, error) {
	index, ok := m.names[name]
	if !ok {
		return Placement{}, common.NotFoundError{Kind: "widget", Key: name}
	}
	p := m.placements[index]
	return Placement{Row: p.row, Col: p.col, RowSpan: p.rowSpan, ColSpan: p.colSpan}, nil
}

// Widget returns the widget at the given placement index.
func (m *Model) Widget(index int) (widgets.Widget, error) {
	if index < 0 || index >= len(m.placements) {
		return nil, common.NotFoundError{Kind: "widget", Key: fmt.Sprintf("#%d", index)}
	}
	return m.placements[index].widget, nil
}

// WidgetByName returns the widget with the given name.
func (m *Model) WidgetByName(name string) (widgets.Widget, error) {
	index, ok := m.names[name]
	if !ok {
		return nil, common.NotFoundError{Kind: "widget", Key: name}
	}
	return m.placements[index].widget, nil
}

// Widgets returns all widgets in placement order.
func (m *Model) Widgets() []widgets.Widget {
	ws := make([]widgets.Widget, len(m.placements))
	for i, p := range m.placements {
		ws[i] = p.widget
	}
	return ws
}

// RemoveWidget detaches a widget from the panel. Its grid cells stay
// reserved: the allocator never reclaims space, so later placements keep
// their positions.
func (m *Model) RemoveWidget(name string) error {
	index, ok := m.names[name]
	if !ok {
		return common.NotFoundError{Kind: "widget", Key: name}
	}
	delete(m.names, name)
	m.placements = append(m.placements[:index], m.placements[index+1:]...)
	for n, i := range m.names {
		if i > index {
			m.names[n] = i - 1
		}
	}
	if m.focusIdx == index {
		m.focusIdx = -1
	} else if m.focusIdx > index {
		m.focusIdx--
	}
	return nil
}

// Columns reports the current width of the underlying allocator grid.
func (m *Model) Columns() int { return m.alloc.Columns() }

// ShowOptions emits the panel's option message, as if the option affordance
// was clicked.
func (m *Model) ShowOptions() tea.Cmd {
	return common.Cmd(OptionClickedMsg{Title: m.title})
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.placements {
		cmds = append(cmds, p.widget.Init())
	}
	return tea.Batch(cmds...)
}

// Update forwards the message to the focused widget.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if w := m.FocusedWidget(); w != nil {
		return w.Update(msg)
	}
	return nil
}

// FocusedWidget returns the focused widget, or nil.
func (m *Model) FocusedWidget() widgets.Widget {
	if m.focusIdx < 0 || m.focusIdx >= len(m.placements) {
		return nil
	}
	return m.placements[m.focusIdx].widget
}

// Focused reports whether any widget in the panel has focus.
func (m *Model) Focused() bool { return m.FocusedWidget() != nil }

// IsEditing reports whether the focused widget is capturing raw input.
func (m *Model) IsEditing() bool {
	w := m.FocusedWidget()
	if w == nil {
		return false
	}
	e, ok := w.(common.Editable)
	return ok && e.IsEditing()
}

// Focus gives focus to the first interactive widget. It reports false when
// the panel has none.
func (m *Model) Focus() bool {
	return m.focusFrom(0, 1)
}

// FocusLast gives focus to the last interactive widget.
func (m *Model) FocusLast() bool {
	return m.focusFrom(len(m.placements)-1, -1)
}

// Blur removes focus from the panel.
func (m *Model) Blur() {
	if w := m.FocusedWidget(); w != nil {
		w.Blur()
	}
	m.focusIdx = -1
}

// FocusNext moves focus to the next interactive widget in placement order.
// It reports false (and blurs) when focus moves past the last one.
func (m *Model) FocusNext() bool {
	if m.focusIdx < 0 {
		return m.Focus()
	}
	if m.focusFrom(m.focusIdx+1, 1) {
		return true
	}
	m.Blur()
	return false
}

// FocusPrev moves focus to the previous interactive widget. It reports
// false (and blurs) when focus moves before the first one.
func (m *Model) FocusPrev() bool {
	if m.focusIdx < 0 {
		return m.FocusLast()
	}
	if m.focusFrom(m.focusIdx-1, -1) {
		return true
	}
	m.Blur()
	return false
}

func (m *Model) focusFrom(start, step int) bool {
	for i := start; i >= 0 && i < len(m.placements); i += step {
		if !m.placements[i].widget.Interactive() {
			continue
		}
		if w := m.FocusedWidget(); w != nil {
			w.Blur()
		}
		m.focusIdx = i
		m.placements[i].widget.Focus()
		return true
	}
	return false
}
