// Package board materialises an occupancy grid into interactive cells and
// projects them into a view for the HTTP client, the terminal UI and the
// printable roster.
package board

import (
	"time"

	"SeatShuffler/internal/seating"

	"github.com/google/uuid"
)

// Cell is one grid position. Occupied cells carry a seat number that can be
// swapped; placeholders only keep the grid rectangular.
type Cell struct {
	ID       string
	Row      int
	Column   int
	Occupied bool

	// Order of the cell among occupied cells in render order, used to stagger
	// the entrance animation.
	Order int

	number       int
	dragging     bool
	dragOver     bool
	swappedUntil time.Time
}

// Number returns the seat number currently shown on the cell.
func (c *Cell) Number() int { return c.number }

// Dragging reports whether the cell is the source of the live gesture.
func (c *Cell) Dragging() bool { return c.dragging }

// DragOver reports whether the cell is the prospective drop target.
func (c *Cell) DragOver() bool { return c.dragOver }

// SetDragging toggles the "being dragged" mark.
func (c *Cell) SetDragging(on bool) { c.dragging = on }

// SetDragOver toggles the drop target mark.
func (c *Cell) SetDragOver(on bool) { c.dragOver = on }

// MarkSwapped shows the swapped cue until the given instant.
func (c *Cell) MarkSwapped(until time.Time) {
	if until.After(c.swappedUntil) {
		c.swappedUntil = until
	}
}

// Swapped reports whether the swapped cue is still visible at now.
func (c *Cell) Swapped(now time.Time) bool {
	return now.Before(c.swappedUntil)
}

// Board is the rendered grid: every position of the occupancy grid in
// row-major order, front row first.
type Board struct {
	id       string
	rows     int
	columns  int
	cells    []*Cell
	byID     map[string]*Cell
	geometry Geometry
}

// New renders grid into a board laid out with geo.
func New(grid seating.OccupancyGrid, geo Geometry) *Board {
	b := &Board{
		id:       uuid.NewString(),
		rows:     grid.Rows,
		columns:  grid.Columns,
		cells:    make([]*Cell, 0, grid.Rows*grid.Columns),
		byID:     make(map[string]*Cell, grid.Rows*grid.Columns),
		geometry: geo.withDefaults(),
	}

	order := 0
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Columns; col++ {
			v, occupied := grid.Value(row, col)
			c := &Cell{
				ID:       uuid.NewString(),
				Row:      row,
				Column:   col,
				Occupied: occupied,
				number:   v,
			}
			if occupied {
				c.Order = order
				order++
			}
			b.cells = append(b.cells, c)
			b.byID[c.ID] = c
		}
	}
	return b
}

// ID identifies this rendering; a regenerated layout gets a new one.
func (b *Board) ID() string { return b.id }

// Rows returns the number of rows, front to back.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.columns }

// Geometry returns the layout used for hit testing.
func (b *Board) Geometry() Geometry { return b.geometry }

// Cells returns every cell in row-major order.
func (b *Board) Cells() []*Cell { return b.cells }

// At returns the cell at row, col or nil when out of range.
func (b *Board) At(row, col int) *Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.columns {
		return nil
	}
	return b.cells[row*b.columns+col]
}

// ByID looks a cell up by its id.
func (b *Board) ByID(id string) *Cell {
	return b.byID[id]
}

// Contains reports whether c belongs to this board.
func (b *Board) Contains(c *Cell) bool {
	if c == nil {
		return false
	}
	return b.byID[c.ID] == c
}

// FindNumber returns the occupied cell currently showing number.
func (b *Board) FindNumber(number int) *Cell {
	for _, c := range b.cells {
		if c.Occupied && c.number == number {
			return c
		}
	}
	return nil
}

// Numbers lists the seat numbers of occupied cells in row-major order.
func (b *Board) Numbers() []int {
	out := make([]int, 0, len(b.cells))
	for _, c := range b.cells {
		if c.Occupied {
			out = append(out, c.number)
		}
	}
	return out
}

// Grid reads the current numbers back into an occupancy grid.
func (b *Board) Grid() seating.OccupancyGrid {
	cells := make([][]int, b.rows)
	for row := range cells {
		cells[row] = make([]int, b.columns)
		for col := range cells[row] {
			cells[row][col] = b.At(row, col).number
		}
	}
	return seating.OccupancyGrid{Rows: b.rows, Columns: b.columns, Cells: cells}
}

// Swap exchanges the seat numbers of two distinct occupied cells of this board.
func (b *Board) Swap(x, y *Cell) error {
	if !b.Contains(x) || !b.Contains(y) {
		return ErrForeignCell
	}
	if !x.Occupied || !y.Occupied {
		return ErrPlaceholder
	}
	if x == y {
		return ErrSameCell
	}
	x.number, y.number = y.number, x.number
	return nil
}

// ClearMarks drops every drag mark on the board. The swapped cue is left to
// expire on its own.
func (b *Board) ClearMarks() {
	for _, c := range b.cells {
		c.dragging = false
		c.dragOver = false
	}
}
