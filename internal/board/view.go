package board

import "time"

// Classes used by the web client's stylesheet.
const (
	ClassSeat        = "seat"
	ClassPlaceholder = "seat-placeholder"
	ClassDragging    = "dragging"
	ClassDragOver    = "drag-over"
	ClassSwapped     = "swapped"
)

// EntranceStagger is the delay between the entrance animations of
// consecutive occupied cells.
const EntranceStagger = 30 * time.Millisecond

// View is the projection of a board handed to clients.
type View struct {
	BoardID string     `json:"board_id"`
	Title   string     `json:"title,omitempty"`
	Podium  string     `json:"podium"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Cells   []CellView `json:"cells"`
	Proxy   *ProxyView `json:"proxy,omitempty"`
}

// ProxyView is the floating copy of the dragged seat during a touch drag.
type ProxyView struct {
	Number int  `json:"number"`
	Rect   Rect `json:"rect"`
}

// CellView is one cell of a View.
type CellView struct {
	ID               string   `json:"id"`
	Row              int      `json:"row"`
	Column           int      `json:"column"`
	Occupied         bool     `json:"occupied"`
	Number           int      `json:"number,omitempty"`
	Classes          []string `json:"classes"`
	AnimationDelayMS int64    `json:"animation_delay_ms,omitempty"`
	Rect             Rect     `json:"rect"`
}

// Classes returns the style classes of c at now.
func (c *Cell) Classes(now time.Time) []string {
	if !c.Occupied {
		return []string{ClassPlaceholder}
	}
	classes := []string{ClassSeat}
	if c.dragging {
		classes = append(classes, ClassDragging)
	}
	if c.dragOver {
		classes = append(classes, ClassDragOver)
	}
	if c.Swapped(now) {
		classes = append(classes, ClassSwapped)
	}
	return classes
}

// View projects the board at now.
func (b *Board) View(now time.Time) View {
	v := View{
		BoardID: b.id,
		Podium:  "front",
		Rows:    b.rows,
		Columns: b.columns,
		Cells:   make([]CellView, 0, len(b.cells)),
	}
	for _, c := range b.cells {
		cv := CellView{
			ID:       c.ID,
			Row:      c.Row,
			Column:   c.Column,
			Occupied: c.Occupied,
			Classes:  c.Classes(now),
			Rect:     b.Rect(c),
		}
		if c.Occupied {
			cv.Number = c.number
			cv.AnimationDelayMS = (time.Duration(c.Order) * EntranceStagger).Milliseconds()
		}
		v.Cells = append(v.Cells, cv)
	}
	return v
}
