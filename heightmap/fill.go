package heightmap

import (
	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/errs"
	"github.com/terraincore/heightline/geom"
)

// FillCells floods from origin, 4-connected on square grids and
// 6-connected on hex grids, visiting cells whose stack is considered equal
// to origin's under boundary, and paints every matched cell with
// DestructiveMerge semantics.
func (s *Store) FillCells(origin cellmap.Key, terrainTypeID string, height, elevation float64, boundary cellmap.FillBoundary) error {
	t, ok := s.registry.Lookup(terrainTypeID)
	if !ok {
		return errs.UnknownTerrain(terrainTypeID)
	}
	if t.UsesHeight {
		if height <= 0 {
			return errs.ErrInvalidHeight
		}
		if elevation < 0 {
			return errs.ErrInvalidElevation
		}
	} else {
		height, elevation = 0, 0
	}

	originStack := s.data[origin]
	visited := map[cellmap.Key]bool{origin: true}
	queue := []cellmap.Key{origin}
	var matched []cellmap.Key

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !s.cellInBounds(cur) {
			continue
		}
		if !s.stacksEqualUnderBoundary(s.data[cur], originStack, boundary, elevation, elevation+height, terrainTypeID, t.UsesHeight) {
			continue
		}
		matched = append(matched, cur)
		for _, n := range s.adapter.FillNeighbors(cur.Row, cur.Col) {
			key := cellmap.Key{Row: n.Row, Col: n.Col}
			if visited[key] {
				continue
			}
			visited[key] = true
			queue = append(queue, key)
		}
	}

	if len(matched) == 0 {
		return nil
	}
	return s.PaintCells(matched, terrainTypeID, height, elevation, cellmap.DestructiveMerge)
}

func (s *Store) cellInBounds(key cellmap.Key) bool {
	b := s.adapter.CanvasBounds()
	canvas := geom.Rect{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
	bbox := s.adapter.CellPolygon(key.Row, key.Col).BoundingBox()
	return canvas.ContainsRect(bbox)
}

// stacksEqualUnderBoundary implements the ApplicableBoundary/StrictBoundary
// comparison fill_cells uses to decide whether a neighbor belongs to the
// same flood region as the origin.
func (s *Store) stacksEqualUnderBoundary(a, b cellmap.Stack, boundary cellmap.FillBoundary, lo, hi float64, terrainTypeID string, usesHeight bool) bool {
	if boundary == cellmap.StrictBoundary || !usesHeight {
		return stacksEqualStrict(a, b)
	}
	return layerSlicesEqual(sliceToRange(a, lo, hi), sliceToRange(b, lo, hi))
}
