package shape

import (
	"math"
	"sort"

	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/geom"
	"github.com/terraincore/heightline/grid"
	"github.com/terraincore/heightline/terrain"
)

// groupKey is the composite (terrain type, height, elevation) cells are
// grouped by. Non-height terrain is normalized
// to elevation 0, height +Inf so every non-height layer of the same type
// falls into a single group regardless of what was stored for it.
type groupKey struct {
	TerrainTypeID string
	Elevation     float64
	Height        float64
}

// taggedEdge is one cell-polygon edge with a back-reference to the cell it
// came from.
type taggedEdge struct {
	Seg  geom.LineSegment
	Cell cellmap.Key
}

// collectGroups walks every (cell, layer) pair in data and buckets the
// cells contributing to each (terrain, height, elevation) group. Layers
// whose terrain type is unknown to reg are skipped, matching the "unknown
// terrain type is dropped" rule applied at save time.
func collectGroups(data cellmap.Data, reg terrain.Registry) map[groupKey]map[cellmap.Key]bool {
	groups := make(map[groupKey]map[cellmap.Key]bool)
	for _, key := range cellmap.SortedKeys(data) {
		for _, layer := range data[key] {
			t, ok := reg.Lookup(layer.TerrainTypeID)
			if !ok {
				continue
			}
			gk := groupKey{TerrainTypeID: layer.TerrainTypeID}
			if t.UsesHeight {
				gk.Elevation = layer.Elevation
				gk.Height = layer.Height
			} else {
				gk.Elevation = 0
				gk.Height = math.Inf(1)
			}
			cells := groups[gk]
			if cells == nil {
				cells = make(map[cellmap.Key]bool)
				groups[gk] = cells
			}
			cells[key] = true
		}
	}
	return groups
}

// sortedGroupKeys returns g's keys in a deterministic order (by terrain id,
// then elevation, then height), so shape construction order — and any
// tie-breaks downstream — is reproducible across runs.
func sortedGroupKeys(g map[groupKey]map[cellmap.Key]bool) []groupKey {
	keys := make([]groupKey, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.TerrainTypeID != b.TerrainTypeID {
			return a.TerrainTypeID < b.TerrainTypeID
		}
		if a.Elevation != b.Elevation {
			return a.Elevation < b.Elevation
		}
		return a.Height < b.Height
	})
	return keys
}

// buildEdges emits, for each cell in the group (visited in (row,col) order
// for determinism), the edges of its grid polygon tagged with the owning
// cell key.
func buildEdges(cells map[cellmap.Key]bool, adapter grid.Adapter) []taggedEdge {
	keys := make([]cellmap.Key, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var edges []taggedEdge
	for _, k := range keys {
		poly := adapter.CellPolygon(k.Row, k.Col)
		for _, e := range poly.Edges() {
			edges = append(edges, taggedEdge{Seg: e, Cell: k})
		}
	}
	return edges
}
