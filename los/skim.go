package los

import (
	"math"
	"sort"

	"github.com/terraincore/heightline/geom"
	"github.com/terraincore/heightline/shape"
)

type skimSeg struct {
	t1, t2 float64 // local (clamped-ray) parameter
	side   SkimSide
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// detectSideSkims finds side-skim candidates: any edge nearly parallel to
// ray, with both endpoints within SkimDistanceSquared of the ray line.
func detectSideSkims(sh *shape.Shape, ray geom.LineSegment) []skimSeg {
	var raw []skimSeg
	for _, poly := range shapeRings(sh) {
		for _, e := range poly.Edges() {
			if !e.IsParallelTo(ray, geom.ParallelTolerance) {
				continue
			}
			sameDir := math.Abs(angleDiff(e.Angle(), ray.Angle())) <= geom.ParallelTolerance
			side := SkimRight
			if !sameDir {
				side = SkimLeft
			}
			t1, d1, _ := ray.ClosestPointOnLineTo(e.P1.X, e.P1.Y)
			t2, d2, _ := ray.ClosestPointOnLineTo(e.P2.X, e.P2.Y)
			if d1 > geom.SkimDistanceSquared || d2 > geom.SkimDistanceSquared {
				continue
			}
			lo, hi := clamp01(math.Min(t1, t2)), clamp01(math.Max(t1, t2))
			if hi-lo <= geom.ParamEpsilon {
				continue
			}
			raw = append(raw, skimSeg{t1: lo, t2: hi, side: side})
		}
	}
	if len(raw) == 0 {
		return nil
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i].t1 < raw[j].t1 })
	merged := []skimSeg{raw[0]}
	for _, s := range raw[1:] {
		last := &merged[len(merged)-1]
		if s.side == last.side && s.t1 <= last.t2+geom.ParamEpsilon {
			if s.t2 > last.t2 {
				last.t2 = s.t2
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// spliceSideSkims folds detected side skims into the region list
//, trimming or splitting clean-crossing regions
// that overlap a skim span and inserting a skimmed region for the span.
func spliceSideSkims(regions []Region, sh *shape.Shape, ray geom.LineSegment, p1, p2 Point3, tStart, tEnd float64) []Region {
	skims := detectSideSkims(sh, ray)
	if len(skims) == 0 {
		return regions
	}

	for _, sk := range skims {
		gs1 := unclamp(sk.t1, tStart, tEnd)
		gs2 := unclamp(sk.t2, tStart, tEnd)
		regions = spliceOneSkim(regions, p1, p2, gs1, gs2, sk.side)
	}

	sort.Slice(regions, func(i, j int) bool { return regions[i].Start.T < regions[j].Start.T })
	return regions
}

func spliceOneSkim(regions []Region, p1, p2 Point3, s1, s2 float64, side SkimSide) []Region {
	const eps = geom.ParamEpsilon

	var out []Region
	skimInserted := false
	insertSkim := func() {
		if skimInserted {
			return
		}
		out = append(out, Region{
			Start:    rayPointAt(p1, p2, s1),
			End:      rayPointAt(p1, p2, s2),
			Skimmed:  true,
			SkimSide: side,
		})
		skimInserted = true
	}

	for _, r := range regions {
		switch {
		case r.Start.T >= s1-eps && r.End.T <= s2+eps:
			// fully enclosed by the skim: drop it, the skim supersedes it.
			insertSkim()

		case r.Start.T <= s1+eps && r.End.T >= s2-eps:
			// skim fully inside this region: trim around it.
			if s1-r.Start.T > eps {
				out = append(out, Region{Start: r.Start, End: rayPointAt(p1, p2, s1), Skimmed: r.Skimmed, SkimSide: r.SkimSide})
			}
			insertSkim()
			if r.End.T-s2 > eps {
				out = append(out, Region{Start: rayPointAt(p1, p2, s2), End: r.End, Skimmed: r.Skimmed, SkimSide: r.SkimSide})
			}

		case r.Start.T < s2 && s2 < r.End.T:
			// skim's tail lands inside this region: trim the region's start.
			insertSkim()
			out = append(out, Region{Start: rayPointAt(p1, p2, s2), End: r.End, Skimmed: r.Skimmed, SkimSide: r.SkimSide})

		case r.Start.T < s1 && s1 < r.End.T:
			// skim's head lands inside this region: trim the region's end.
			out = append(out, Region{Start: r.Start, End: rayPointAt(p1, p2, s1), Skimmed: r.Skimmed, SkimSide: r.SkimSide})
			insertSkim()

		default:
			out = append(out, r)
		}
	}
	insertSkim()
	return out
}
