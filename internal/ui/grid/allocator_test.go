package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositiveRows(t *testing.T) {
	for _, rows := range []int{0, -1} {
		_, err := New(rows)
		assert.Error(t, err)
	}
}

func TestNew_StartsWithSingleFreeColumn(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)

	assert.Equal(t, 3, a.Rows())
	assert.Equal(t, 1, a.Columns())
	for row := 0; row < 3; row++ {
		assert.True(t, a.Free(row, 0))
	}
}

func TestRequestCells_RejectsOversizedRowSpan(t *testing.T) {
	a, err := New(4)
	require.NoError(t, err)

	_, err = a.RequestCells(5, 1, ColumnWise)

	var spanErr InvalidSpanError
	require.ErrorAs(t, err, &spanErr)
	assert.Equal(t, 5, spanErr.RowSpan)
	assert.Equal(t, 4, spanErr.Rows)
	// failure happens before any mutation
	assert.Equal(t, 1, a.Columns())
	assert.True(t, a.Free(0, 0))
}

func TestRequestCells_ColumnWisePackingOrder(t *testing.T) {
	a, err := New(6)
	require.NoError(t, err)

	// three 2-row requests exactly fill column 0
	for i, want := range []Placement{{0, 0}, {2, 0}, {4, 0}} {
		got, err := a.RequestCells(2, 1, ColumnWise)
		require.NoError(t, err)
		assert.Equal(t, want, got, "request %d", i)
	}

	// the fourth opens column 1 at row 0
	got, err := a.RequestCells(2, 1, ColumnWise)
	require.NoError(t, err)
	assert.Equal(t, Placement{Row: 0, Col: 1}, got)
	assert.Equal(t, 2, a.Columns())
}

func TestRequestCells_ColumnWisePrefersLowestRowThenColumn(t *testing.T) {
	a, err := New(6)
	require.NoError(t, err)

	_, err = a.RequestCells(6, 1, ColumnWise)
	require.NoError(t, err)
	_, err = a.RequestCells(2, 1, ColumnWise)
	require.NoError(t, err)

	// rows 2-5 of column 1 are still free; a 2-row request goes there
	// rather than opening column 2
	got, err := a.RequestCells(2, 1, ColumnWise)
	require.NoError(t, err)
	assert.Equal(t, Placement{Row: 2, Col: 1}, got)
	assert.Equal(t, 2, a.Columns())
}

func TestRequestCells_RowWisePacking(t *testing.T) {
	a, err := New(6)
	require.NoError(t, err)

	wantCols := []int{2, 4, 6}
	for i, want := range []Placement{{0, 0}, {0, 2}, {0, 4}} {
		got, err := a.RequestCells(1, 2, RowWise)
		require.NoError(t, err)
		assert.Equal(t, want, got, "request %d", i)
		assert.Equal(t, wantCols[i], a.Columns(), "columns after request %d", i)
	}
}

func TestRequestCells_RowWiseLeavesLowerRowsFree(t *testing.T) {
	a, err := New(4)
	require.NoError(t, err)

	_, err = a.RequestCells(1, 3, RowWise)
	require.NoError(t, err)

	for col := 0; col < 3; col++ {
		assert.False(t, a.Free(0, col))
		for row := 1; row < 4; row++ {
			assert.True(t, a.Free(row, col))
		}
	}
}

func TestRequestCells_GrowthReusesFreeTrailingColumn(t *testing.T) {
	a, err := New(2)
	require.NoError(t, err)
	require.Equal(t, 1, a.Columns())

	// the single starting column is fully free, so a colSpan=3 request
	// overlaps it and appends exactly 2 columns
	got, err := a.RequestCells(2, 3, ColumnWise)
	require.NoError(t, err)
	assert.Equal(t, Placement{Row: 0, Col: 0}, got)
	assert.Equal(t, 3, a.Columns())
}

func TestRequestCells_GrowthSkipsOccupiedTrailingColumn(t *testing.T) {
	a, err := New(2)
	require.NoError(t, err)

	_, err = a.RequestCells(2, 1, ColumnWise)
	require.NoError(t, err)
	require.Equal(t, 1, a.Columns())

	// the rightmost column is occupied: no overlap, all 3 columns appended
	got, err := a.RequestCells(2, 3, ColumnWise)
	require.NoError(t, err)
	assert.Equal(t, Placement{Row: 0, Col: 1}, got)
	assert.Equal(t, 4, a.Columns())
}

func TestRequestCells_ColumnsNeverShrink(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)

	requests := []struct {
		rowSpan, colSpan int
		mode             Mode
	}{
		{1, 1, ColumnWise},
		{3, 2, ColumnWise},
		{1, 4, RowWise},
		{2, 1, ColumnWise},
		{1, 1, RowWise},
		{3, 3, ColumnWise},
	}

	prev := a.Columns()
	for i, req := range requests {
		_, err := a.RequestCells(req.rowSpan, req.colSpan, req.mode)
		require.NoError(t, err, "request %d", i)
		assert.GreaterOrEqual(t, a.Columns(), prev, "request %d", i)
		prev = a.Columns()
	}
}

func TestRequestCells_PlacementsNeverOverlap(t *testing.T) {
	a, err := New(6)
	require.NoError(t, err)

	type rect struct {
		p                Placement
		rowSpan, colSpan int
	}

	var placed []rect
	requests := []struct {
		rowSpan, colSpan int
		mode             Mode
	}{
		{2, 1, ColumnWise},
		{3, 2, ColumnWise},
		{6, 1, ColumnWise},
		{1, 3, RowWise},
		{2, 2, ColumnWise},
		{1, 1, ColumnWise},
		{1, 5, RowWise},
		{4, 1, ColumnWise},
	}

	for i, req := range requests {
		p, err := a.RequestCells(req.rowSpan, req.colSpan, req.mode)
		require.NoError(t, err, "request %d", i)
		placed = append(placed, rect{p, req.rowSpan, req.colSpan})
	}

	overlaps := func(x, y rect) bool {
		return x.p.Row < y.p.Row+y.rowSpan && y.p.Row < x.p.Row+x.rowSpan &&
			x.p.Col < y.p.Col+y.colSpan && y.p.Col < x.p.Col+x.colSpan
	}
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			assert.False(t, overlaps(placed[i], placed[j]),
				"placements %d and %d overlap: %+v %+v", i, j, placed[i], placed[j])
		}
	}
}

func TestRequestCells_NormalizesSpansBelowOne(t *testing.T) {
	a, err := New(3)
	require.NoError(t, err)

	got, err := a.RequestCells(0, 0, ColumnWise)
	require.NoError(t, err)
	assert.Equal(t, Placement{Row: 0, Col: 0}, got)
	assert.False(t, a.Free(0, 0))
	assert.True(t, a.Free(1, 0))
}
