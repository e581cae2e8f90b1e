package geom

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether (x,y) falls within the rectangle, inclusive of
// its edges within PointTolerance.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX-PointTolerance && x <= r.MaxX+PointTolerance &&
		y >= r.MinY-PointTolerance && y <= r.MaxY+PointTolerance
}

// ContainsRect reports whether r fully contains other.
func (r Rect) ContainsRect(other Rect) bool {
	return other.MinX >= r.MinX-PointTolerance && other.MaxX <= r.MaxX+PointTolerance &&
		other.MinY >= r.MinY-PointTolerance && other.MaxY <= r.MaxY+PointTolerance
}

// polyCache holds Polygon's lazily-computed edge list and bounding box.
type polyCache struct {
	edges []LineSegment
	bbox  *Rect
}

// Polygon is an ordered, closed sequence of vertices. It does not assume
// convexity. Orientation (clockwise outer shell vs counter-clockwise hole)
// is derived from the first edge, see Clockwise.
type Polygon struct {
	Vertices []Point
	Centroid Point

	cache *polyCache
}

// NewPolygon builds a Polygon from an ordered vertex list. The centroid is
// computed eagerly as a running mean of the vertices; the bounding box and
// edge list are computed lazily on first use.
func NewPolygon(vertices []Point) Polygon {
	p := Polygon{Vertices: vertices, cache: &polyCache{}}
	if len(vertices) == 0 {
		return p
	}
	var sumX, sumY float64
	for _, v := range vertices {
		sumX += v.X
		sumY += v.Y
	}
	n := float64(len(vertices))
	p.Centroid = Point{X: sumX / n, Y: sumY / n}
	return p
}

// Edges returns edges[i] = (vertices[i], vertices[(i+1) mod n]), computed
// once and cached.
func (p Polygon) Edges() []LineSegment {
	if p.cache != nil && p.cache.edges != nil {
		return p.cache.edges
	}
	n := len(p.Vertices)
	edges := make([]LineSegment, n)
	for i := 0; i < n; i++ {
		edges[i] = NewLineSegment(p.Vertices[i], p.Vertices[(i+1)%n])
	}
	if p.cache != nil {
		p.cache.edges = edges
	}
	return edges
}

// BoundingBox returns the axis-aligned bounding box of the vertices, cached
// on first use.
func (p Polygon) BoundingBox() Rect {
	if p.cache != nil && p.cache.bbox != nil {
		return *p.cache.bbox
	}
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, v := range p.Vertices {
		r.MinX = math.Min(r.MinX, v.X)
		r.MaxX = math.Max(r.MaxX, v.X)
		r.MinY = math.Min(r.MinY, v.Y)
		r.MaxY = math.Max(r.MaxY, v.Y)
	}
	if p.cache != nil {
		p.cache.bbox = &r
	}
	return r
}

// Clockwise reports whether the polygon's first edge is clockwise (see
// LineSegment.Clockwise). Grid-derived outer shells are clockwise; holes
// are counter-clockwise.
func (p Polygon) Clockwise() bool {
	edges := p.Edges()
	if len(edges) == 0 {
		return false
	}
	return edges[0].Clockwise()
}

// NextEdge returns the edge following edges()[idx], wrapping around.
func (p Polygon) NextEdge(idx int) LineSegment {
	edges := p.Edges()
	n := len(edges)
	return edges[(idx+1+n)%n]
}

// PreviousEdge returns the edge preceding edges()[idx], wrapping around.
func (p Polygon) PreviousEdge(idx int) LineSegment {
	edges := p.Edges()
	n := len(edges)
	return edges[(idx-1+n)%n]
}

// TraverseEdges returns the full edge cycle starting at startIdx, walking in
// direction dir (+1 clockwise/forward, -1 backward), used by the
// line-of-sight engine to walk a polygon's boundary from a known edge.
func (p Polygon) TraverseEdges(startIdx, dir int) []LineSegment {
	edges := p.Edges()
	n := len(edges)
	if n == 0 {
		return nil
	}
	out := make([]LineSegment, n)
	idx := ((startIdx % n) + n) % n
	for i := 0; i < n; i++ {
		out[i] = edges[idx]
		if dir >= 0 {
			idx = (idx + 1) % n
		} else {
			idx = (idx - 1 + n) % n
		}
	}
	return out
}

// EdgeIndexOf returns the index of the edge exactly matching (p1,p2) in
// order (not direction-insensitive), or -1 if not found. Used to resume
// traversal from a LineSegment obtained elsewhere (e.g. an intersection
// edge).
func (p Polygon) EdgeIndexOf(seg LineSegment) int {
	for i, e := range p.Edges() {
		if e.P1.Equal(seg.P1) && e.P2.Equal(seg.P2) {
			return i
		}
	}
	return -1
}

// ContainsPoint reports whether (x,y) lies inside the polygon. When
// containsOnEdge is true, a point exactly on the boundary counts as
// contained; otherwise it does not.
//
// The implementation is a bounding-box reject, then an exact on-edge test,
// then an even-odd horizontal ray cast to the right. The ray cast carries
// two corrections for vertices landing exactly on the cast ray's y:
//
//  1. ordinary vertex touches are deduplicated by (x, sign of edge dy), so a
//     peak or valley vertex sitting on the ray counts twice (net: no
//     crossing) while two colinear edges meeting at the same x in the same
//     direction count once (net: one crossing).
//  2. a run of edges that are themselves perfectly horizontal at the ray's y
//     is skipped, and its two flanking edges are reconciled: if they
//     continue in the same vertical direction (a "step") one of them is
//     suppressed so the run contributes a single crossing; if they diverge
//     (a "tent") both are kept so the run contributes zero net crossings.
func (p Polygon) ContainsPoint(x, y float64, containsOnEdge bool) bool {
	if len(p.Vertices) < 3 {
		return false
	}
	bb := p.BoundingBox()
	if !bb.Contains(x, y) {
		return false
	}

	edges := p.Edges()
	n := len(edges)

	for _, e := range edges {
		t, distSq, _ := e.ClosestPointOnLineTo(x, y)
		if t >= -ParamEpsilon && t <= 1+ParamEpsilon && distSq <= PointTolerance*PointTolerance {
			return containsOnEdge
		}
	}

	suppressed := make([]bool, n)
	isHorizontalAtY := make([]bool, n)
	for i, e := range edges {
		if math.Abs(e.P1.Y-y) <= PointTolerance && math.Abs(e.P2.Y-y) <= PointTolerance {
			isHorizontalAtY[i] = true
		}
	}
	for i := 0; i < n; i++ {
		if !isHorizontalAtY[i] {
			continue
		}
		// Find start of this run (walk backward while still horizontal).
		start := i
		for isHorizontalAtY[(start-1+n)%n] && (start-1+n)%n != i {
			start = (start - 1 + n) % n
		}
		end := start
		for isHorizontalAtY[(end+1)%n] && (end+1)%n != start {
			end = (end + 1) % n
		}
		beforeIdx := (start - 1 + n) % n
		afterIdx := (end + 1) % n
		if isHorizontalAtY[beforeIdx] || isHorizontalAtY[afterIdx] {
			// Degenerate: horizontal run wraps the whole polygon.
			continue
		}
		before := edges[beforeIdx]
		after := edges[afterIdx]
		beforeSign := dySign(before)
		afterSign := dySign(after)
		if beforeSign != 0 && beforeSign == afterSign {
			suppressed[afterIdx] = true
		}
		// Mark the whole run processed by flagging all its members; the
		// outer loop re-visiting them is harmless (isHorizontalAtY still
		// true, no-op) but avoid infinite loop by advancing i past it.
		if end >= start {
			i = end
		}
	}

	type crossing struct {
		xBucket int64
		sign    int
	}
	seen := make(map[crossing]bool)
	count := 0
	for i, e := range edges {
		if isHorizontalAtY[i] || suppressed[i] {
			continue
		}
		y1, y2 := e.P1.Y, e.P2.Y
		lo, hi := math.Min(y1, y2), math.Max(y1, y2)
		if y < lo-PointTolerance || y > hi+PointTolerance {
			continue
		}
		if y2 == y1 {
			continue
		}
		t := (y - y1) / (y2 - y1)
		xAt := e.P1.X + t*(e.P2.X-e.P1.X)
		if xAt <= x {
			continue
		}
		c := crossing{xBucket: int64(math.Round(xAt / PointTolerance)), sign: dySign(e)}
		if seen[c] {
			continue
		}
		seen[c] = true
		count++
	}
	return count%2 == 1
}

func dySign(e LineSegment) int {
	dy := e.P2.Y - e.P1.Y
	switch {
	case dy > 0:
		return 1
	case dy < 0:
		return -1
	default:
		return 0
	}
}

// ContainsPolygon reports whether the receiver fully contains other. It
// relies on the invariant that grid-derived polygons never cross: two
// polygons from the same shape group either nest cleanly or are disjoint.
// The test is a bounding-box containment check followed by a point-in-
// polygon test of other's topmost vertex, displaced slightly downward to
// avoid landing exactly on a shared vertex.
func (p Polygon) ContainsPolygon(other Polygon) bool {
	if len(other.Vertices) == 0 {
		return false
	}
	if !p.BoundingBox().ContainsRect(other.BoundingBox()) {
		return false
	}
	top := other.Vertices[0]
	for _, v := range other.Vertices[1:] {
		if v.Y < top.Y {
			top = v
		}
	}
	const probeNudge = PointTolerance / 10
	return p.ContainsPoint(top.X, top.Y+probeNudge, true)
}
