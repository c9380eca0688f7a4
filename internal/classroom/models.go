package classroom

import (
	"SeatShuffler/internal/board"
	"SeatShuffler/internal/seating"
)

// GenerateRequest asks for a fresh shuffled layout.
type GenerateRequest struct {
	ClassName      string  `json:"class_name"`
	StudentCount   int     `json:"student_count"`
	ColumnCount    int     `json:"column_count"`
	PerColumnDepth []int   `json:"per_column_depth,omitempty"`
	Seed           *uint64 `json:"seed,omitempty"`
}

func (r GenerateRequest) layout() seating.SeatLayoutRequest {
	return seating.SeatLayoutRequest{
		ClassName:      r.ClassName,
		StudentCount:   r.StudentCount,
		ColumnCount:    r.ColumnCount,
		PerColumnDepth: r.PerColumnDepth,
	}
}

type BalanceRequest struct {
	StudentCount int `json:"student_count"`
	ColumnCount  int `json:"column_count"`
}

type BalanceResponse struct {
	PerColumnDepth []int `json:"per_column_depth"`
}

// DragRequest carries one native drag event fired on cell CellID. An empty
// CellID means the pointer is over no cell.
type DragRequest struct {
	Type   string `json:"type"`
	CellID string `json:"cell_id"`
}

type DragResponse struct {
	Swapped bool       `json:"swapped"`
	View    board.View `json:"view"`
}

// TouchRequest carries one touch event. CellID is the touched seat for
// touchstart; later events are located from Touches.
type TouchRequest struct {
	Type    string        `json:"type"`
	CellID  string        `json:"cell_id,omitempty"`
	Touches []board.Point `json:"touches"`
}

type TouchResponse struct {
	PreventDefault bool       `json:"prevent_default"`
	Swapped        bool       `json:"swapped"`
	View           board.View `json:"view"`
}
