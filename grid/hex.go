package grid

import (
	"math"

	"github.com/terraincore/heightline/geom"
)

// HexAdapter is a reference Adapter for a pointy-top hexagonal grid using
// odd-row horizontal offset ("hex-rows" family). Hosts implementing their
// own hex layout (flat-top, odd-col offset, axial, ...) should satisfy
// Adapter directly; this type exists to exercise the shape builder and LOS
// engine against a non-square tiling in tests and the auxiliary CLI.
type HexAdapter struct {
	Rows, Cols int32
	Size       float64 // center-to-vertex radius
	OriginX    float64
	OriginY    float64
}

// NewHexAdapter builds a HexAdapter with the given dimensions, origin at
// (0,0).
func NewHexAdapter(rows, cols int32, size float64) *HexAdapter {
	return &HexAdapter{Rows: rows, Cols: cols, Size: size}
}

func (a *HexAdapter) hexWidth() float64  { return math.Sqrt(3) * a.Size }
func (a *HexAdapter) hexHeight() float64 { return 2 * a.Size }

// center returns the pixel-space center of the pointy-top hex at (row,col)
// under odd-row horizontal offset.
func (a *HexAdapter) center(row, col int32) geom.Point {
	w := a.hexWidth()
	vertStep := 0.75 * a.hexHeight()
	x := a.OriginX + w/2 + float64(col)*w
	if row%2 != 0 {
		x += w / 2
	}
	y := a.OriginY + a.Size + float64(row)*vertStep
	return geom.Point{X: x, Y: y}
}

// CellPolygon implements Adapter: 6 vertices, clockwise, pointy-top,
// starting from the top vertex.
func (a *HexAdapter) CellPolygon(row, col int32) geom.Polygon {
	c := a.center(row, col)
	verts := make([]geom.Point, 6)
	for i := 0; i < 6; i++ {
		// Pointy-top hex: vertices at -90, -30, 30, 90, 150, 210 degrees,
		// walked clockwise in screen space (y down).
		angle := math.Pi/180*(-90+float64(i)*60)
		verts[i] = geom.Point{
			X: c.X + a.Size*math.Cos(angle),
			Y: c.Y + a.Size*math.Sin(angle),
		}
	}
	return geom.NewPolygon(verts)
}

// FillNeighbors implements Adapter: the 6 adjacent hexes under odd-row
// horizontal offset.
func (a *HexAdapter) FillNeighbors(row, col int32) []Cell {
	if row%2 == 0 {
		return []Cell{
			{Row: row, Col: col - 1},
			{Row: row, Col: col + 1},
			{Row: row - 1, Col: col - 1},
			{Row: row - 1, Col: col},
			{Row: row + 1, Col: col - 1},
			{Row: row + 1, Col: col},
		}
	}
	return []Cell{
		{Row: row, Col: col - 1},
		{Row: row, Col: col + 1},
		{Row: row - 1, Col: col},
		{Row: row - 1, Col: col + 1},
		{Row: row + 1, Col: col},
		{Row: row + 1, Col: col + 1},
	}
}

// Family implements Adapter.
func (a *HexAdapter) Family() Family { return HexRows }

// CanvasBounds implements Adapter.
func (a *HexAdapter) CanvasBounds() Bounds {
	w := a.hexWidth()
	vertStep := 0.75 * a.hexHeight()
	return Bounds{
		MinX: a.OriginX,
		MinY: a.OriginY,
		MaxX: a.OriginX + w*float64(a.Cols) + w/2,
		MaxY: a.OriginY + vertStep*float64(a.Rows) + a.Size/2,
	}
}

// CellSize implements Adapter.
func (a *HexAdapter) CellSize() (w, h float64) { return a.hexWidth(), a.hexHeight() }
