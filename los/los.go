// Package los implements the line-of-sight engine:
// per-shape ray/polygon intersection with precise skim reporting, and the
// flatten step that merges per-shape regions into one ordered timeline.
//
// The traversal clamps the ray to a shape's vertical extent, walks its
// boundary intersections in parameter order tracking an inside/outside
// flag, and layers on explicit skim reporting for rays that graze a face
// or edge rather than cleanly crossing it.
package los

import (
	"math"
	"sort"

	"github.com/terraincore/heightline/geom"
	"github.com/terraincore/heightline/shape"
)

// Point3 is a 3D query point: 2D position plus height.
type Point3 struct {
	X, Y, H float64
}

// SkimSide classifies how a region was grazed rather than cleanly crossed.
type SkimSide uint8

const (
	// SkimNone: the region is a clean crossing, not a skim.
	SkimNone SkimSide = iota
	// SkimLeft: a side skim along an edge parallel to the ray's reverse
	// direction.
	SkimLeft
	// SkimRight: a side skim along an edge parallel to the ray's direction.
	SkimRight
	// SkimTopBottom: a flat ray grazing the shape's top or bottom face.
	SkimTopBottom
)

func (s SkimSide) String() string {
	switch s {
	case SkimLeft:
		return "left"
	case SkimRight:
		return "right"
	case SkimTopBottom:
		return "topBottom"
	default:
		return "none"
	}
}

// RayPoint is one endpoint of a region: its position along the full query
// ray.
type RayPoint struct {
	X, Y, H, T float64
}

// Region is one contiguous interval during which the ray is inside a
// shape.
type Region struct {
	Start, End RayPoint
	Skimmed    bool
	SkimSide   SkimSide
}

// ShapeRegions pairs a shape with the ordered, non-overlapping regions the
// ray spends inside it.
type ShapeRegions struct {
	Shape   *shape.Shape
	Regions []Region
}

// Options controls CalculateLineOfSight.
type Options struct {
	// IncludeNoHeightTerrain, when false, skips shapes whose terrain type
	// does not use height, recognised by a Height of +Inf as shape.Build
	// stores it (the engine itself does not resolve terrain types).
	IncludeNoHeightTerrain bool
}

// usesHeight reports whether sh should be height-gated: the engine takes
// this per-shape rather than resolving it from a registry, since by the
// time shapes reach the LOS engine their terrain's height-usage was
// already baked into Height/Elevation at shape-build time (a non-height
// shape always carries Height = +Inf).
func usesHeight(sh *shape.Shape) bool {
	return !math.IsInf(sh.Height, 1)
}

// CalculateLineOfSight computes, for every shape the ray can possibly
// touch, the ordered list of regions where the ray is inside it.
func CalculateLineOfSight(shapes []*shape.Shape, p1, p2 Point3, opts Options) []ShapeRegions {
	if p1.X == p2.X && p1.Y == p2.Y && p1.H == p2.H {
		return nil
	}

	var out []ShapeRegions
	for _, sh := range shapes {
		height := usesHeight(sh)
		if !height && !opts.IncludeNoHeightTerrain {
			continue
		}
		regions := regionsForShape(sh, p1, p2, height)
		if len(regions) > 0 {
			out = append(out, ShapeRegions{Shape: sh, Regions: regions})
		}
	}
	return out
}

func regionsForShape(sh *shape.Shape, p1, p2 Point3, height bool) []Region {
	tStart, tEnd, ok := heightClamp(sh, p1, p2, height)
	if !ok {
		return nil
	}

	rayStart := geom.Point{X: lerp(p1.X, p2.X, tStart), Y: lerp(p1.Y, p2.Y, tStart)}
	rayEnd := geom.Point{X: lerp(p1.X, p2.X, tEnd), Y: lerp(p1.Y, p2.Y, tEnd)}
	ray := geom.NewLineSegment(rayStart, rayEnd)
	if ray.Length() == 0 {
		return nil
	}

	flatRay := p1.H == p2.H
	flatAtTop := flatRay && height && floatsEqual(p1.H, sh.Top())
	flatAtBottom := flatRay && height && floatsEqual(p1.H, sh.Elevation)

	crossings := collectCrossings(sh, ray)
	inside := initialInside(sh, rayStart, ray)

	groups := groupByT(crossings)

	var regions []Region
	regionOpen := false
	var openLocalT float64

	flushRegion := func(closeLocalT float64, skimmed bool, side SkimSide) {
		globalStart := unclamp(openLocalT, tStart, tEnd)
		globalEnd := unclamp(closeLocalT, tStart, tEnd)
		if globalEnd <= globalStart {
			return
		}
		regions = append(regions, Region{
			Start:    rayPointAt(p1, p2, globalStart),
			End:      rayPointAt(p1, p2, globalEnd),
			Skimmed:  skimmed,
			SkimSide: side,
		})
	}

	if inside {
		regionOpen = true
		openLocalT = 0
	}

	for _, g := range groups {
		switch len(g.items) {
		case 1:
			if regionOpen {
				side := SkimNone
				skimmed := flatAtTop || flatAtBottom
				if flatAtTop {
					side = SkimTopBottom
				} else if flatAtBottom {
					side = SkimTopBottom
				}
				flushRegion(g.t, skimmed, side)
				regionOpen = false
			} else {
				regionOpen = true
				openLocalT = g.t
			}
		case 2:
			e1, e2 := g.items[0].edge, g.items[1].edge
			inverseRay := ray.Reverse()
			skimsVertex := ray.IsBetween(e1, e2) == inverseRay.IsBetween(e1, e2)
			if skimsVertex {
				continue
			}
			nowInside := ray.IsBetween(e1, e2)
			if nowInside && !regionOpen {
				regionOpen = true
				openLocalT = g.t
			} else if !nowInside && regionOpen {
				flushRegion(g.t, flatAtTop || flatAtBottom, topBottomOrNone(flatAtTop || flatAtBottom))
				regionOpen = false
			}
		default:
			// 4-way (or rarer) vertex kiss: ray enters and leaves the same
			// shape membership, a no-op.
		}
	}
	if regionOpen {
		flushRegion(1.0, flatAtTop || flatAtBottom, topBottomOrNone(flatAtTop || flatAtBottom))
	}

	regions = spliceSideSkims(regions, sh, ray, p1, p2, tStart, tEnd)
	return regions
}

func topBottomOrNone(flat bool) SkimSide {
	if flat {
		return SkimTopBottom
	}
	return SkimNone
}

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

func floatsEqual(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

// heightClamp narrows [0,1] to the sub-range of the ray within a
// height-using shape's vertical extent.
func heightClamp(sh *shape.Shape, p1, p2 Point3, height bool) (tStart, tEnd float64, ok bool) {
	if !height {
		return 0, 1, true
	}
	top, bot := sh.Top(), sh.Elevation
	if p1.H > top && p2.H > top {
		return 0, 0, false
	}
	if p1.H < bot && p2.H < bot {
		return 0, 0, false
	}
	dh := p2.H - p1.H
	tStart, tEnd = 0, 1
	if dh != 0 {
		tBot := (bot - p1.H) / dh
		tTop := (top - p1.H) / dh
		lo, hi := math.Min(tBot, tTop), math.Max(tBot, tTop)
		if lo > tStart {
			tStart = lo
		}
		if hi < tEnd {
			tEnd = hi
		}
	}
	if tStart < 0 {
		tStart = 0
	}
	if tEnd > 1 {
		tEnd = 1
	}
	if tStart > tEnd {
		return 0, 0, false
	}
	return tStart, tEnd, true
}

func unclamp(localT, tStart, tEnd float64) float64 {
	return tStart + localT*(tEnd-tStart)
}

func rayPointAt(p1, p2 Point3, t float64) RayPoint {
	return RayPoint{
		X: lerp(p1.X, p2.X, t),
		Y: lerp(p1.Y, p2.Y, t),
		H: lerp(p1.H, p2.H, t),
		T: t,
	}
}

// crossing is one ray/edge intersection, local to the clamped ray segment.
type crossing struct {
	t    float64
	edge geom.LineSegment
}

func shapeRings(sh *shape.Shape) []geom.Polygon {
	rings := make([]geom.Polygon, 0, 1+len(sh.Holes))
	rings = append(rings, sh.Polygon)
	rings = append(rings, sh.Holes...)
	return rings
}

// collectCrossings gathers every ray/edge intersection across the outer
// polygon and holes, folding near-vertex hits
// on a parallel neighboring edge into the far end of that edge.
func collectCrossings(sh *shape.Shape, ray geom.LineSegment) []crossing {
	var out []crossing
	for _, poly := range shapeRings(sh) {
		edges := poly.Edges()
		n := len(edges)
		for i, e := range edges {
			hit, ok := ray.IntersectsAt(e)
			if !ok {
				continue
			}
			if hit.T < geom.ParamEpsilon {
				continue
			}
			u := hit.U
			if u < geom.ParamEpsilon {
				prev := edges[(i-1+n)%n]
				if prev.IsParallelTo(ray, geom.ParallelTolerance) {
					out = append(out, crossing{t: hit.T, edge: prev})
					continue
				}
			} else if u > 1-geom.ParamEpsilon {
				next := edges[(i+1)%n]
				if next.IsParallelTo(ray, geom.ParallelTolerance) {
					out = append(out, crossing{t: hit.T, edge: next})
					continue
				}
			}
			out = append(out, crossing{t: hit.T, edge: e})
		}
	}
	return out
}

type tGroup struct {
	t     float64
	items []crossing
}

// groupByT buckets crossings by t within ParamEpsilon and sorts the
// buckets in traversal order.
func groupByT(crossings []crossing) []tGroup {
	sorted := make([]crossing, len(crossings))
	copy(sorted, crossings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].t < sorted[j].t })

	var groups []tGroup
	for _, c := range sorted {
		if len(groups) > 0 && c.t-groups[len(groups)-1].t <= geom.ParamEpsilon {
			last := &groups[len(groups)-1]
			last.items = append(last.items, c)
			continue
		}
		groups = append(groups, tGroup{t: c.t, items: []crossing{c}})
	}
	return groups
}

type onEdge struct {
	ringIdx, edgeIdx int
	edge             geom.LineSegment
	u                float64
}

// initialInside determines whether start is inside the shape, handling the
// cases where start touches zero, two, or more than two edges at once.
func initialInside(sh *shape.Shape, start geom.Point, ray geom.LineSegment) bool {
	rings := shapeRings(sh)
	var touching []onEdge
	for ri, poly := range rings {
		for ei, e := range poly.Edges() {
			t, distSq, _ := e.ClosestPointOnLineTo(start.X, start.Y)
			if t >= -geom.ParamEpsilon && t <= 1+geom.ParamEpsilon && distSq <= geom.PointTolerance*geom.PointTolerance {
				touching = append(touching, onEdge{ringIdx: ri, edgeIdx: ei, edge: e, u: t})
			}
		}
	}

	switch len(touching) {
	case 0:
		if !sh.Polygon.ContainsPoint(start.X, start.Y, false) {
			return false
		}
		for _, h := range sh.Holes {
			if h.ContainsPoint(start.X, start.Y, false) {
				return false
			}
		}
		return true
	case 2:
		e1, e2 := touching[0].edge, touching[1].edge
		return ray.IsBetween(e1, e2)
	default:
		for _, t := range touching {
			if wedgeInside(rings[t.ringIdx], t.edgeIdx, t.u, ray) {
				return true
			}
		}
		return false
	}
}

// wedgeInside tests whether ray points into the polygon's interior at the
// touch point on edges()[edgeIdx] (at parameter u along it).
func wedgeInside(poly geom.Polygon, edgeIdx int, u float64, ray geom.LineSegment) bool {
	cur := poly.Edges()[edgeIdx]
	var a, b geom.LineSegment
	switch {
	case u <= geom.ParamEpsilon:
		a = poly.PreviousEdge(edgeIdx)
		b = cur
	case u >= 1-geom.ParamEpsilon:
		a = cur
		b = poly.NextEdge(edgeIdx)
	default:
		a = cur
		b = cur
	}
	return ray.IsBetween(a, b)
}
