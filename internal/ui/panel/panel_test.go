package panel

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/okteal/ribbon/internal/ui/common"
	"github.com/okteal/ribbon/internal/ui/grid"
	"github.com/okteal/ribbon/internal/ui/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DerivesSizeRowsFromCapacity(t *testing.T) {
	m := New("Clipboard")

	assert.Equal(t, 6, m.MaxRows())
	assert.Equal(t, 2, m.SmallRows())
	assert.Equal(t, 3, m.MediumRows())
	assert.Equal(t, 6, m.LargeRows())
}

func TestNew_SizeRowsNeverBelowOne(t *testing.T) {
	m := New("Tiny", WithMaxRows(2))

	assert.Equal(t, 1, m.SmallRows())
	assert.Equal(t, 1, m.MediumRows())
	assert.Equal(t, 2, m.LargeRows())
}

func TestSetMaxRows_AlwaysRejected(t *testing.T) {
	m := New("Clipboard")

	err := m.SetMaxRows(4)

	var confErr common.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestSetSizeRows_ValidatesRange(t *testing.T) {
	m := New("Clipboard") // 6 rows

	assert.NoError(t, m.SetSmallRows(1))
	assert.NoError(t, m.SetMediumRows(4))
	assert.NoError(t, m.SetLargeRows(5))

	var confErr common.ConfigurationError
	assert.ErrorAs(t, m.SetSmallRows(0), &confErr)
	assert.ErrorAs(t, m.SetMediumRows(7), &confErr)
}

func TestAddWidget_PacksColumnWise(t *testing.T) {
	m := New("Clipboard") // 6 rows; small span = 2

	for _, name := range []string{"a", "b", "c", "d"} {
		require.NoError(t, m.AddSmallWidget(widgets.NewLabel(name, name)))
	}

	want := []Placement{
		{Row: 0, Col: 0, RowSpan: 2, ColSpan: 1},
		{Row: 2, Col: 0, RowSpan: 2, ColSpan: 1},
		{Row: 4, Col: 0, RowSpan: 2, ColSpan: 1},
		{Row: 0, Col: 1, RowSpan: 2, ColSpan: 1},
	}
	for i, name := range []string{"a", "b", "c", "d"} {
		got, err := m.PlacementOf(name)
		require.NoError(t, err)
		assert.Equal(t, want[i], got, "widget %s", name)
	}
}

func TestAddWidget_OversizedSpanFailsWithInvalidSpan(t *testing.T) {
	m := New("Tiny", WithMaxRows(2))

	err := m.AddWidget(widgets.NewLabel("big", "big"), 3, 1, grid.ColumnWise)

	var spanErr grid.InvalidSpanError
	require.ErrorAs(t, err, &spanErr)
	assert.Equal(t, 3, spanErr.RowSpan)
}

func TestAddWidget_RejectsDuplicateNames(t *testing.T) {
	m := New("Clipboard")
	require.NoError(t, m.AddSmallWidget(widgets.NewLabel("x", "one")))

	err := m.AddSmallWidget(widgets.NewLabel("x", "two"))

	var confErr common.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestWidgetByName_MissingIsNotFound(t *testing.T) {
	m := New("Clipboard")

	_, err := m.WidgetByName("ghost")

	var notFound common.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRemoveWidget_KeepsCellsReserved(t *testing.T) {
	m := New("Clipboard") // small span = 2
	require.NoError(t, m.AddSmallWidget(widgets.NewLabel("a", "a")))
	require.NoError(t, m.RemoveWidget("a"))

	// the removed widget's cells stay occupied, so the next placement
	// starts below them
	require.NoError(t, m.AddSmallWidget(widgets.NewLabel("b", "b")))
	got, err := m.PlacementOf("b")
	require.NoError(t, err)
	assert.Equal(t, Placement{Row: 2, Col: 0, RowSpan: 2, ColSpan: 1}, got)
}

func TestFocusCycling_SkipsNonInteractiveWidgets(t *testing.T) {
	m := New("Clipboard")
	require.NoError(t, m.AddSmallWidget(widgets.NewLabel("lbl", "Fonts")))
	b1 := widgets.NewButton("cut", "Cut", widgets.WithSize(widgets.SizeSmall))
	b2 := widgets.NewButton("copy", "Copy", widgets.WithSize(widgets.SizeSmall))
	require.NoError(t, m.AddButton(b1))
	require.NoError(t, m.AddSeparator(widgets.NewSeparator("sep")))
	require.NoError(t, m.AddButton(b2))

	require.True(t, m.Focus())
	assert.Equal(t, "cut", m.FocusedWidget().Name())

	require.True(t, m.FocusNext())
	assert.Equal(t, "copy", m.FocusedWidget().Name())

	// past the end: panel blurs and reports false
	assert.False(t, m.FocusNext())
	assert.False(t, m.Focused())
}

func TestBuild_FromTOMLSpecs(t *testing.T) {
	var doc struct {
		Widgets []WidgetSpec `toml:"widgets"`
	}
	_, err := toml.Decode(`
[[widgets]]
name = "paste"
kind = "button"
label = "Paste"
size = "large"

[[widgets]]
name = "font"
kind = "combobox"
options = ["Mono", "Serif"]

[[widgets]]
name = "zoom"
kind = "slider"
min = 10
max = 400
value = 100
`, &doc)
	require.NoError(t, err)

	m := New("Clipboard")
	require.NoError(t, m.Build(doc.Widgets))

	assert.Len(t, m.Widgets(), 3)
	w, err := m.WidgetByName("zoom")
	require.NoError(t, err)
	assert.Equal(t, 100, w.(*widgets.Slider).Value())
}

func TestBuild_UnknownKindFailsDecode(t *testing.T) {
	var doc struct {
		Widgets []WidgetSpec `toml:"widgets"`
	}
	_, err := toml.Decode(`
[[widgets]]
name = "x"
kind = "carousel"
`, &doc)

	assert.Error(t, err)
}

func TestView_HasOneLinePerRowPlusTitle(t *testing.T) {
	m := New("Clipboard")
	require.NoError(t, m.AddButton(widgets.NewButton("paste", "Paste", widgets.WithGlyph("📋"))))
	require.NoError(t, m.AddSmallWidget(widgets.NewLabel("hint", "hint")))

	view := m.View()
	lines := strings.Split(view, "\n")

	assert.Len(t, lines, m.MaxRows()+1)
	assert.Contains(t, view, "Paste")
	assert.Contains(t, view, "Clipboard")
}
