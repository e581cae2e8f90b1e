// Package shape implements the shape builder: it groups
// the current cell stacks by (terrain type, height, elevation), dedupes
// shared cell edges, traces perimeters into closed polygons, classifies
// holes, and assigns each hole to its containing outer polygon.
//
// Tracing walks a directed boundary edge list until it closes, then floods
// the cell-adjacency graph recorded during edge cancellation to recover the
// full cell membership of the traced region.
package shape

import (
	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/geom"
)

// Shape is a maximal connected region of cells sharing an identical
// (terrain type, elevation, height), represented as one clockwise outer
// polygon plus zero or more counter-clockwise hole polygons.
type Shape struct {
	TerrainTypeID string
	Polygon       geom.Polygon
	Holes         []geom.Polygon
	Elevation     float64
	Height        float64
	Cells         map[cellmap.Key]struct{}
}

// Top returns Elevation + Height.
func (s *Shape) Top() float64 { return s.Elevation + s.Height }

// HasCell reports whether key belongs to this shape's footprint.
func (s *Shape) HasCell(key cellmap.Key) bool {
	_, ok := s.Cells[key]
	return ok
}
