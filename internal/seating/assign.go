package seating

// Assign places perm onto a grid column by column: every row of column 0 from
// the front, then column 1, and so on. A single cursor walks perm, so seat
// numbers are not adjacent to their physical neighbours.
//
// The cursor stops at len(perm); positions it cannot reach stay Empty.
func Assign(perm []int, perColumnDepth []int, columnCount int) OccupancyGrid {
	maxRows := 0
	for col := 0; col < columnCount && col < len(perColumnDepth); col++ {
		if perColumnDepth[col] > maxRows {
			maxRows = perColumnDepth[col]
		}
	}

	cells := make([][]int, maxRows)
	for row := range cells {
		cells[row] = make([]int, columnCount)
	}

	cursor := 0
	for col := 0; col < columnCount && col < len(perColumnDepth); col++ {
		for row := 0; row < perColumnDepth[col]; row++ {
			if cursor >= len(perm) {
				break
			}
			cells[row][col] = perm[cursor]
			cursor++
		}
	}

	return OccupancyGrid{Rows: maxRows, Columns: columnCount, Cells: cells}
}
