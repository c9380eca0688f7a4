package seating

// Empty marks a grid position that holds no seat.
const Empty = 0

// Limits enforced on layout requests before they reach the algorithms.
const (
	MaxColumns        = 10
	MaxDepthPerColumn = 10
	MaxStudents       = 100
)

// SeatLayoutRequest describes the classroom shape to generate.
type SeatLayoutRequest struct {
	// ClassName is shown as the result and print title.
	ClassName string `json:"class_name" validate:"max=64"`
	// StudentCount is the total number of seats to hand out.
	StudentCount int `json:"student_count" validate:"min=1,max=100"`
	// ColumnCount is the number of desk columns, left to right from the podium.
	ColumnCount int `json:"column_count" validate:"min=1,max=10"`
	// PerColumnDepth holds seats per column; balanced automatically when empty.
	PerColumnDepth []int `json:"per_column_depth,omitempty" validate:"omitempty,dive,min=1,max=10"`
}

// OccupancyGrid is the row-major result of an assignment. Row 0 is the row
// closest to the podium and column 0 is the leftmost column seen from it.
type OccupancyGrid struct {
	Rows    int     `json:"rows"`    // max(PerColumnDepth)
	Columns int     `json:"columns"` // ColumnCount
	Cells   [][]int `json:"cells"`   // Cells[row][col], Empty for placeholders
}

// Value returns the seat number at row, col and whether the cell is occupied.
func (g OccupancyGrid) Value(row, col int) (int, bool) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Columns {
		return Empty, false
	}
	v := g.Cells[row][col]
	return v, v != Empty
}

// OccupiedCount returns the number of non-empty cells.
func (g OccupancyGrid) OccupiedCount() int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v != Empty {
				n++
			}
		}
	}
	return n
}

// ColumnDepth returns how many rows of column col are occupied from the front.
func (g OccupancyGrid) ColumnDepth(col int) int {
	depth := 0
	for row := 0; row < g.Rows; row++ {
		if g.Cells[row][col] == Empty {
			break
		}
		depth++
	}
	return depth
}

// Numbers lists every seat number in row-major order.
func (g OccupancyGrid) Numbers() []int {
	out := make([]int, 0, g.Rows*g.Columns)
	for _, row := range g.Cells {
		for _, v := range row {
			if v != Empty {
				out = append(out, v)
			}
		}
	}
	return out
}
