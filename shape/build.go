package shape

import (
	"fmt"
	"sort"

	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/corelog"
	"github.com/terraincore/heightline/errs"
	"github.com/terraincore/heightline/geom"
	"github.com/terraincore/heightline/grid"
	"github.com/terraincore/heightline/terrain"
)

// Build recomputes the full shape list for data. It is
// called after every successful cell mutation; callers needing the shapes
// visible from a given store state should hold onto the returned slice
// rather than re-deriving it per query.
func Build(data cellmap.Data, adapter grid.Adapter, reg terrain.Registry, logger corelog.Logger) ([]*Shape, error) {
	logger = corelog.OrNop(logger)
	groups := collectGroups(data, reg)

	var outers []outerCandidate
	var holes []geom.Polygon
	var holeKeys []groupKey

	for _, gk := range sortedGroupKeys(groups) {
		edges := buildEdges(groups[gk], adapter)
		boundary, adjacency := cancelEdges(edges)
		if len(boundary) == 0 {
			continue
		}
		loops, err := traceLoops(boundary)
		if err != nil {
			return nil, err
		}
		logger.Progressf("shape: group %s/%g/%g traced %d loop(s)", gk.TerrainTypeID, gk.Elevation, gk.Height, len(loops))

		for _, loop := range loops {
			poly := loop.Polygon()
			if poly.Clockwise() {
				cells := expandViaAdjacency(cellsInLoop(loop), adjacency)
				outers = append(outers, outerCandidate{
					key:     gk,
					polygon: poly,
					cells:   cells,
				})
			} else {
				holes = append(holes, poly)
				holeKeys = append(holeKeys, gk)
			}
		}
	}

	shapes := make([]*Shape, len(outers))
	for i, oc := range outers {
		shapes[i] = &Shape{
			TerrainTypeID: oc.key.TerrainTypeID,
			Polygon:       oc.polygon,
			Elevation:     oc.key.Elevation,
			Height:        oc.key.Height,
			Cells:         oc.cells,
		}
	}

	for i, hole := range holes {
		owner, err := assignHole(hole, holeKeys[i], outers, shapes)
		if err != nil {
			return nil, err
		}
		owner.Holes = append(owner.Holes, hole)
	}

	sort.Slice(shapes, func(i, j int) bool {
		a, b := shapes[i], shapes[j]
		if a.TerrainTypeID != b.TerrainTypeID {
			return a.TerrainTypeID < b.TerrainTypeID
		}
		if a.Elevation != b.Elevation {
			return a.Elevation < b.Elevation
		}
		return a.Height < b.Height
	})
	return shapes, nil
}

// outerCandidate pairs a traced outer polygon with the group it came from
// and its closed cell membership, before holes have been assigned.
type outerCandidate struct {
	key     groupKey
	polygon geom.Polygon
	cells   map[cellmap.Key]struct{}
}

// assignHole finds the shape whose outer polygon contains hole. A hole can
// only belong to an outer polygon of the same group, since group
// boundaries always cancel cleanly against each other;
// when more than one same-group outer polygon contains it (nested rings),
// the innermost wins: cast a horizontal ray from the hole's top vertex
// leftward and take the candidate whose boundary it hits first.
func assignHole(hole geom.Polygon, key groupKey, outers []outerCandidate, shapes []*Shape) (*Shape, error) {
	probe := topmostVertex(hole)

	var best *Shape
	bestX := 0.0
	found := false
	for i, oc := range outers {
		if oc.key != key || !oc.polygon.ContainsPolygon(hole) {
			continue
		}
		x, ok := nearestLeftwardHitX(oc.polygon, probe)
		if !ok {
			continue
		}
		if !found || x > bestX {
			best = shapes[i]
			bestX = x
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("shape: hole at (%g,%g) has no containing shape: %w", probe.X, probe.Y, errs.ErrInvalidShapeGraph)
	}
	return best, nil
}

func topmostVertex(p geom.Polygon) geom.Point {
	top := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.Y < top.Y {
			top = v
		}
	}
	return top
}

// nearestLeftwardHitX casts a horizontal ray from probe to beyond poly's
// bounding box in -X and returns the X of the boundary intersection nearest
// probe — the wall a leftward-cast ray from the hole's top vertex would hit
// first. Edges parallel to the ray (horizontal edges on a square grid) never
// register as an intersection, matching an ordinary horizontal-ray cast.
func nearestLeftwardHitX(poly geom.Polygon, probe geom.Point) (float64, bool) {
	far := probe.X - 1
	if bb := poly.BoundingBox(); bb.MinX-1 < far {
		far = bb.MinX - 1
	}
	ray := geom.NewLineSegment(probe, geom.Point{X: far, Y: probe.Y})

	best := 0.0
	found := false
	for _, e := range poly.Edges() {
		hit, ok := ray.IntersectsAt(e)
		if !ok {
			continue
		}
		if !found || hit.X > best {
			best = hit.X
			found = true
		}
	}
	return best, found
}
