// Package grid defines the GridAdapter contract the core consumes to map
// (row, col) cells onto pixel-space polygons, and provides square and
// hexagonal reference implementations.
//
// The core never reaches into a global canvas object for grid geometry:
// every operation that needs cell geometry is threaded explicitly through
// an Adapter, passed in at construction time.
package grid

import "github.com/terraincore/heightline/geom"

// Family identifies the tiling scheme a GridAdapter implements.
type Family uint8

const (
	// Square is an orthogonal grid; fill_neighbors returns 4-connectivity.
	Square Family = iota
	// HexRows is a hex grid where rows are offset horizontally.
	HexRows
	// HexCols is a hex grid where columns are offset vertically.
	HexCols
)

func (f Family) String() string {
	switch f {
	case Square:
		return "square"
	case HexRows:
		return "hexRows"
	case HexCols:
		return "hexCols"
	default:
		return "unknown"
	}
}

// Cell identifies a grid cell by (row, col).
type Cell struct {
	Row, Col int32
}

// Bounds is a canvas-space rectangle, used by fill to reject cells off the
// map.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Adapter is the contract the core requires from its host in order to turn
// cells into geometry. Implementations must be side-effect free and are
// never mutated by the core.
type Adapter interface {
	// CellPolygon returns the clockwise, closed polygon of the given cell's
	// footprint, in pixel space.
	CellPolygon(row, col int32) geom.Polygon

	// FillNeighbors returns the cells flood fill should consider adjacent
	// to (row, col): orthogonal neighbors on Square grids, the six
	// adjacents on hex grids.
	FillNeighbors(row, col int32) []Cell

	// Family reports which tiling scheme this adapter implements.
	Family() Family

	// CanvasBounds returns the pixel-space rectangle fill_cells must stay
	// within.
	CanvasBounds() Bounds

	// CellSize returns the nominal (width, height) of one cell in pixel
	// space.
	CellSize() (w, h float64)
}
