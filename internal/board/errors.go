package board

import "errors"

var (
	ErrForeignCell = errors.New("cell does not belong to this board")
	ErrPlaceholder = errors.New("cell has no seat")
	ErrSameCell    = errors.New("cannot swap a cell with itself")
)
