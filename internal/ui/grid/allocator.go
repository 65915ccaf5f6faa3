// Package grid implements the cell-space allocator behind ribbon panels.
//
// An Allocator owns a boolean occupancy grid with a fixed number of rows
// and a column count that only ever grows. Panels ask it for a free
// rectangle of cells for each widget they place; the allocator either finds
// one in the existing grid or extends the grid to the right. Reservations
// are permanent: removing a widget from a panel does not reclaim its cells.
package grid

import "fmt"

// Mode selects the packing strategy for a cell request.
type Mode int

const (
	// ColumnWise fills rows top-to-bottom before advancing to the next
	// column, preferring the lowest (row, col) position.
	ColumnWise Mode = iota
	// RowWise appends along row 0 only, growing the grid as needed.
	RowWise
)

func (m Mode) String() string {
	switch m {
	case ColumnWise:
		return "column-wise"
	case RowWise:
		return "row-wise"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Placement is the top-left coordinate of a reserved rectangle.
type Placement struct {
	Row int
	Col int
}

// InvalidSpanError is returned when a requested row span exceeds the
// allocator's fixed row count. It signals an invalid widget configuration,
// not a recoverable runtime condition.
type InvalidSpanError struct {
	RowSpan int
	Rows    int
}

func (e InvalidSpanError) Error() string {
	return fmt.Sprintf("grid: row span %d exceeds row count %d", e.RowSpan, e.Rows)
}

// Allocator tracks free cells in a rows×columns grid. Cells are free when
// true. The row count is fixed at construction; columns start at 1 and are
// appended on demand.
type Allocator struct {
	rows  int
	cells [][]bool
}

// New creates an allocator with the given fixed row count and a single
// all-free column.
func New(rows int) (*Allocator, error) {
	if rows < 1 {
		return nil, fmt.Errorf("grid: row count must be positive, got %d", rows)
	}
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = []bool{true}
	}
	return &Allocator{rows: rows, cells: cells}, nil
}

// Rows returns the fixed row count.
func (a *Allocator) Rows() int { return a.rows }

// Columns returns the current column count. It never decreases.
func (a *Allocator) Columns() int { return len(a.cells[0]) }

// Free reports whether the cell at (row, col) is unreserved. Coordinates
// outside the grid are not free.
func (a *Allocator) Free(row, col int) bool {
	if row < 0 || row >= a.rows || col < 0 || col >= a.Columns() {
		return false
	}
	return a.cells[row][col]
}

// RequestCells reserves a rowSpan×colSpan rectangle and returns its
// top-left coordinate. Spans below 1 are treated as 1. The grid grows to
// accommodate any column span; a row span larger than the row count fails
// with InvalidSpanError before any mutation.
func (a *Allocator) RequestCells(rowSpan, colSpan int, mode Mode) (Placement, error) {
	rowSpan = max(rowSpan, 1)
	colSpan = max(colSpan, 1)
	if rowSpan > a.rows {
		return Placement{}, InvalidSpanError{RowSpan: rowSpan, Rows: a.rows}
	}

	if mode == ColumnWise {
		for row := 0; row+rowSpan <= a.rows; row++ {
			for col := 0; col+colSpan <= a.Columns(); col++ {
				if a.regionFree(row, col, rowSpan, colSpan) {
					a.reserve(row, col, rowSpan, colSpan)
					return Placement{Row: row, Col: col}, nil
				}
			}
		}
	} else {
		for col := 0; col < a.Columns(); col++ {
			if !a.rowFreeFrom(col) {
				continue
			}
			if missing := colSpan - (a.Columns() - col); missing > 0 {
				a.appendColumns(missing)
			}
			a.reserve(0, col, 1, colSpan)
			return Placement{Row: 0, Col: col}, nil
		}
	}

	// Nothing fits: grow at the right edge. A fully free rightmost column
	// is reused so the new rectangle overlaps it by one column.
	start := a.Columns()
	grow := colSpan
	if a.columnFree(start - 1) {
		start--
		grow--
	}
	a.appendColumns(grow)
	a.reserve(0, start, rowSpan, colSpan)
	return Placement{Row: 0, Col: start}, nil
}

// rowFreeFrom reports whether row 0 is free from col through the right edge.
func (a *Allocator) rowFreeFrom(col int) bool {
	for c := col; c < a.Columns(); c++ {
		if !a.cells[0][c] {
			return false
		}
	}
	return true
}

func (a *Allocator) columnFree(col int) bool {
	for r := 0; r < a.rows; r++ {
		if !a.cells[r][col] {
			return false
		}
	}
	return true
}

func (a *Allocator) regionFree(row, col, rowSpan, colSpan int) bool {
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if !a.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (a *Allocator) reserve(row, col, rowSpan, colSpan int) {
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			a.cells[r][c] = false
		}
	}
}

func (a *Allocator) appendColumns(n int) {
	for r := range a.cells {
		for i := 0; i < n; i++ {
			a.cells[r] = append(a.cells[r], true)
		}
	}
}
