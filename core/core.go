// Package core exposes the stable façade: paint/erase/fill/clear/undo over
// a cell map, cell and shape lookups, and the line-of-sight operations, all
// threaded through an explicit GridAdapter and TerrainTypeRegistry supplied
// at construction. Core never reaches into a global canvas or registry.
package core

import (
	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/corelog"
	"github.com/terraincore/heightline/grid"
	"github.com/terraincore/heightline/heightmap"
	"github.com/terraincore/heightline/los"
	"github.com/terraincore/heightline/shape"
	"github.com/terraincore/heightline/terrain"
)

// Core is the public entry point: a height map store bound to one grid
// adapter and terrain registry. Not safe for concurrent use without
// external synchronization.
type Core struct {
	store *heightmap.Store
}

// New constructs a Core over adapter and registry, seeded with optional
// initial cell data. Fails with errs.ErrUnsupportedGrid if adapter is nil.
func New(adapter grid.Adapter, registry terrain.Registry, initial cellmap.Data, logger corelog.Logger) (*Core, error) {
	store, err := heightmap.New(adapter, registry, initial, logger)
	if err != nil {
		return nil, err
	}
	return &Core{store: store}, nil
}

// PaintCells applies a terrain layer to cells under mode.
func (c *Core) PaintCells(cells []cellmap.Key, terrainTypeID string, height, elevation float64, mode cellmap.PaintMode) error {
	return c.store.PaintCells(cells, terrainTypeID, height, elevation, mode)
}

// EraseCells removes layers from cells per opts.
func (c *Core) EraseCells(cells []cellmap.Key, opts heightmap.EraseOptions) error {
	return c.store.EraseCells(cells, opts)
}

// FillCells floods from origin and paints every matched cell.
func (c *Core) FillCells(origin cellmap.Key, terrainTypeID string, height, elevation float64, boundary cellmap.FillBoundary) error {
	return c.store.FillCells(origin, terrainTypeID, height, elevation, boundary)
}

// Clear empties the map. Returns whether anything changed.
func (c *Core) Clear() (bool, error) {
	return c.store.Clear()
}

// Undo reverts the most recent batch of edits.
func (c *Core) Undo() error {
	return c.store.Undo()
}

// GetCell returns the layer stack at (row, col).
func (c *Core) GetCell(row, col int32) cellmap.Stack {
	return c.store.Get(row, col)
}

// GetShapes returns every shape whose footprint includes (row, col).
func (c *Core) GetShapes(row, col int32) []*shape.Shape {
	return c.store.GetShapes(row, col)
}

// CurrentShapes returns every shape currently derived from the cell map.
func (c *Core) CurrentShapes() []*shape.Shape {
	return c.store.Shapes()
}

// CalculateLineOfSight computes per-shape intersection regions for the ray
// p1->p2 against the current shape list.
func (c *Core) CalculateLineOfSight(p1, p2 los.Point3, opts los.Options) []los.ShapeRegions {
	return los.CalculateLineOfSight(c.store.Shapes(), p1, p2, opts)
}

// FlattenLineOfSight merges per-shape regions into one ordered timeline.
func (c *Core) FlattenLineOfSight(perShape []los.ShapeRegions) []los.FlattenedRegion {
	return los.Flatten(perShape)
}
