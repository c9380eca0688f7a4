package seating

import "errors"

var (
	ErrInvalidStudentCount = errors.New("student count must be between 1 and 100")
	ErrInvalidColumnCount  = errors.New("column count must be between 1 and 10")
	ErrInvalidDepth        = errors.New("seats per column must be between 1 and 10")
	ErrDepthLength         = errors.New("per-column seat counts must match the column count")
	ErrDepthSum            = errors.New("per-column seat counts must add up to the student count")
	ErrInvalidRequest      = errors.New("invalid layout request")
)
