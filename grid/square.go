package grid

import "github.com/terraincore/heightline/geom"

// SquareAdapter is a reference Adapter for an orthogonal grid of uniform
// cells, used by tests and the auxiliary CLI. Hosts with their own
// canvas/camera system are expected to implement Adapter directly against
// their own coordinate transforms.
type SquareAdapter struct {
	Rows, Cols   int32
	CellW, CellH float64
	OriginX      float64
	OriginY      float64
}

// NewSquareAdapter builds a SquareAdapter with the given dimensions, origin
// at (0,0).
func NewSquareAdapter(rows, cols int32, cellW, cellH float64) *SquareAdapter {
	return &SquareAdapter{Rows: rows, Cols: cols, CellW: cellW, CellH: cellH}
}

// CellPolygon implements Adapter.
func (a *SquareAdapter) CellPolygon(row, col int32) geom.Polygon {
	x0 := a.OriginX + float64(col)*a.CellW
	y0 := a.OriginY + float64(row)*a.CellH
	x1 := x0 + a.CellW
	y1 := y0 + a.CellH
	return geom.NewPolygon([]geom.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
}

// FillNeighbors implements Adapter: the 4 orthogonal neighbors.
func (a *SquareAdapter) FillNeighbors(row, col int32) []Cell {
	return []Cell{
		{Row: row - 1, Col: col},
		{Row: row + 1, Col: col},
		{Row: row, Col: col - 1},
		{Row: row, Col: col + 1},
	}
}

// Family implements Adapter.
func (a *SquareAdapter) Family() Family { return Square }

// CanvasBounds implements Adapter.
func (a *SquareAdapter) CanvasBounds() Bounds {
	return Bounds{
		MinX: a.OriginX,
		MinY: a.OriginY,
		MaxX: a.OriginX + float64(a.Cols)*a.CellW,
		MaxY: a.OriginY + float64(a.Rows)*a.CellH,
	}
}

// CellSize implements Adapter.
func (a *SquareAdapter) CellSize() (w, h float64) { return a.CellW, a.CellH }
