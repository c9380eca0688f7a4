package board

import "math"

// Point is a position in the board's coordinate space (CSS pixels for the
// web client, terminal cells for the TUI).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Geometry lays cells out on a regular lattice starting at the origin.
type Geometry struct {
	OriginX    float64 `yaml:"origin_x" json:"origin_x"`
	OriginY    float64 `yaml:"origin_y" json:"origin_y"`
	CellWidth  float64 `yaml:"cell_width" json:"cell_width"`
	CellHeight float64 `yaml:"cell_height" json:"cell_height"`
	GapX       float64 `yaml:"gap_x" json:"gap_x"`
	GapY       float64 `yaml:"gap_y" json:"gap_y"`
}

// DefaultGeometry matches the 80px seat tiles of the web client.
func DefaultGeometry() Geometry {
	return Geometry{CellWidth: 80, CellHeight: 80, GapX: 12, GapY: 12}
}

func (g Geometry) withDefaults() Geometry {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		def := DefaultGeometry()
		def.OriginX, def.OriginY = g.OriginX, g.OriginY
		return def
	}
	return g
}

// CellRect returns the rectangle occupied by the cell at row, col.
func (g Geometry) CellRect(row, col int) Rect {
	return Rect{
		X:      g.OriginX + float64(col)*(g.CellWidth+g.GapX),
		Y:      g.OriginY + float64(row)*(g.CellHeight+g.GapY),
		Width:  g.CellWidth,
		Height: g.CellHeight,
	}
}

// locate maps p to a row and column. Points in the gaps between cells or
// outside the lattice report ok == false.
func (g Geometry) locate(p Point) (row, col int, ok bool) {
	x := p.X - g.OriginX
	y := p.Y - g.OriginY
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(math.Floor(x / (g.CellWidth + g.GapX)))
	row = int(math.Floor(y / (g.CellHeight + g.GapY)))
	if x-float64(col)*(g.CellWidth+g.GapX) >= g.CellWidth {
		return 0, 0, false
	}
	if y-float64(row)*(g.CellHeight+g.GapY) >= g.CellHeight {
		return 0, 0, false
	}
	return row, col, true
}

// CellAt returns the cell under p, placeholders included, or nil when p is
// outside every cell.
func (b *Board) CellAt(p Point) *Cell {
	row, col, ok := b.geometry.locate(p)
	if !ok {
		return nil
	}
	return b.At(row, col)
}

// Rect returns the on-screen rectangle of c.
func (b *Board) Rect(c *Cell) Rect {
	return b.geometry.CellRect(c.Row, c.Column)
}
