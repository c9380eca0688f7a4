package seating

// Balance spreads studentCount seats over columnCount columns so that column
// depths differ by at most one. Extra seats are handed out from the two centre
// columns outward, left pointer first on every pass.
//
// Callers must pass studentCount >= 1 and columnCount >= 1.
func Balance(studentCount, columnCount int) []int {
	base := studentCount / columnCount
	remaining := studentCount % columnCount

	depths := make([]int, columnCount)
	for i := range depths {
		depths[i] = base
	}

	left := (columnCount - 1) / 2
	right := columnCount / 2 // ceil((columnCount-1)/2)

	// With an odd column count both pointers start on the same centre column;
	// it takes the first extra seat once and the right pointer moves past it.
	if remaining > 0 && left == right {
		depths[left]++
		remaining--
		left--
		right++
	}

	for remaining > 0 {
		if left >= 0 {
			depths[left]++
			remaining--
			left--
		}
		if remaining > 0 && right < columnCount {
			depths[right]++
			remaining--
			right++
		}
	}
	return depths
}
