package shape

import (
	"fmt"
	"math"

	"github.com/aurelien-rainone/assertgo"

	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/errs"
	"github.com/terraincore/heightline/geom"
)

// missingEdgeErr wraps errs.ErrMissingEdge with the dangling edge's cell, to
// help diagnose which cell's contribution broke the loop.
func missingEdgeErr(dangling taggedEdge) error {
	return fmt.Errorf("shape: cell %s: %w", dangling.Cell, errs.ErrMissingEdge)
}

type ptBucket [2]int64

func bucket(p geom.Point) ptBucket {
	const inv = 1.0 / geom.PointTolerance
	return ptBucket{
		int64(math.Round(p.X * inv)),
		int64(math.Round(p.Y * inv)),
	}
}

// edgeKey canonicalizes an edge's endpoints (direction-insensitive) into a
// comparable key, so two cancelling edges — whichever cell emitted them,
// whichever direction they run — hash the same.
type edgeKey struct {
	a, b ptBucket
}

func canonicalEdgeKey(seg geom.LineSegment) edgeKey {
	a, b := bucket(seg.P1), bucket(seg.P2)
	if a[0] > b[0] || (a[0] == b[0] && a[1] > b[1]) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// cancelEdges removes edges shared by exactly two cells, returning the surviving boundary edges plus the bidirectional
// cell-adjacency relation recorded whenever a cancellation happens.
func cancelEdges(edges []taggedEdge) ([]taggedEdge, map[cellmap.Key]map[cellmap.Key]bool) {
	buckets := make(map[edgeKey][]int, len(edges))
	for i, e := range edges {
		k := canonicalEdgeKey(e.Seg)
		buckets[k] = append(buckets[k], i)
	}

	adjacency := make(map[cellmap.Key]map[cellmap.Key]bool)
	addAdjacency := func(a, b cellmap.Key) {
		if adjacency[a] == nil {
			adjacency[a] = make(map[cellmap.Key]bool)
		}
		if adjacency[b] == nil {
			adjacency[b] = make(map[cellmap.Key]bool)
		}
		adjacency[a][b] = true
		adjacency[b][a] = true
	}

	cancelled := make(map[int]bool, len(edges))
	for _, idxs := range buckets {
		assert.True(len(idxs) <= 2,
			"cell grid edge shared by more than two cells (%d): invariant broken", len(idxs))
		if len(idxs) == 2 {
			cancelled[idxs[0]] = true
			cancelled[idxs[1]] = true
			addAdjacency(edges[idxs[0]].Cell, edges[idxs[1]].Cell)
		}
	}

	boundary := make([]taggedEdge, 0, len(edges))
	for i, e := range edges {
		if !cancelled[i] {
			boundary = append(boundary, e)
		}
	}
	return boundary, adjacency
}

// tracedLoop is one closed perimeter recovered from the boundary edges of a
// group: the ordered edge chain, each edge tagged with the cell it came
// from (cellsInLoop derives the contributing cell set from those tags).
type tracedLoop struct {
	Edges []taggedEdge
}

// Polygon builds the geom.Polygon for this loop's vertex sequence.
func (l tracedLoop) Polygon() geom.Polygon {
	verts := make([]geom.Point, len(l.Edges))
	for i, e := range l.Edges {
		verts[i] = e.Seg.P1
	}
	return geom.NewPolygon(verts)
}

// traceLoops repeatedly picks a remaining boundary edge and walks forward —
// the next edge is the unique remaining edge whose P1 meets the current
// edge's P2 — until the loop closes. At a
// corner-touch vertex (possible only on square grids) where more than one
// continuation is available, the candidate minimizing AngleBetween (the
// most counter-clockwise turn) is chosen, producing properly nested shapes.
//
// Returns errs.ErrMissingEdge if a loop cannot be closed: every remaining
// boundary edge must connect to exactly one further edge or the cell grid
// invariants have been broken upstream.
func traceLoops(boundary []taggedEdge) ([]tracedLoop, error) {
	n := len(boundary)
	used := make([]bool, n)

	byP1 := make(map[ptBucket][]int, n)
	for i, e := range boundary {
		b := bucket(e.Seg.P1)
		byP1[b] = append(byP1[b], i)
	}

	var loops []tracedLoop
	for start := 0; start < n; start++ {
		if used[start] {
			continue
		}
		used[start] = true
		chain := []taggedEdge{boundary[start]}
		current := boundary[start]
		loopStart := current.Seg.P1

		for {
			if current.Seg.P2.Equal(loopStart) {
				break
			}
			candidates := byP1[bucket(current.Seg.P2)]
			next := -1
			for _, ci := range candidates {
				if used[ci] {
					continue
				}
				if !boundary[ci].Seg.P1.Equal(current.Seg.P2) {
					continue
				}
				if next == -1 {
					next = ci
					continue
				}
				if current.Seg.AngleBetween(boundary[ci].Seg) < current.Seg.AngleBetween(boundary[next].Seg) {
					next = ci
				}
			}
			if next == -1 {
				return nil, missingEdgeErr(current)
			}
			used[next] = true
			current = boundary[next]
			chain = append(chain, current)
		}
		loops = append(loops, tracedLoop{Edges: chain})
	}
	return loops, nil
}

// cellsInLoop returns the set of cells that directly contributed an edge to
// the loop.
func cellsInLoop(loop tracedLoop) map[cellmap.Key]bool {
	out := make(map[cellmap.Key]bool, len(loop.Edges))
	for _, e := range loop.Edges {
		out[e.Cell] = true
	}
	return out
}

// expandViaAdjacency transitively adds every cell reachable from seed
// through the adjacency relation recorded during edge cancellation,
// recovering interior cells whose edges all cancelled (e.g. a hex fully
// surrounded by six same-group neighbors).
func expandViaAdjacency(seed map[cellmap.Key]bool, adjacency map[cellmap.Key]map[cellmap.Key]bool) map[cellmap.Key]struct{} {
	out := make(map[cellmap.Key]struct{}, len(seed))
	queue := make([]cellmap.Key, 0, len(seed))
	for k := range seed {
		out[k] = struct{}{}
		queue = append(queue, k)
	}
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		for neighbor := range adjacency[k] {
			if _, ok := out[neighbor]; !ok {
				out[neighbor] = struct{}{}
				queue = append(queue, neighbor)
			}
		}
	}
	return out
}
