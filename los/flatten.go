package los

import (
	"sort"

	"github.com/terraincore/heightline/geom"
	"github.com/terraincore/heightline/shape"
)

// FlattenedRegion is one interval of the merged timeline produced by
// Flatten.
type FlattenedRegion struct {
	Start, End RayPoint
	Shapes     []*shape.Shape
	Skimmed    bool
}

// Flatten merges per-shape regions into a single ordered timeline: between
// each consecutive pair of deduplicated region boundaries, the active
// region set is whatever shapes' regions span that interval.
func Flatten(perShape []ShapeRegions) []FlattenedRegion {
	type boundary struct{ t float64 }
	var bounds []float64
	for _, sr := range perShape {
		for _, r := range sr.Regions {
			bounds = append(bounds, r.Start.T, r.End.T)
		}
	}
	if len(bounds) == 0 {
		return nil
	}
	sort.Float64s(bounds)
	dedup := bounds[:0:0]
	for i, b := range bounds {
		if i == 0 || b-dedup[len(dedup)-1] > geom.ParamEpsilon {
			dedup = append(dedup, b)
		}
	}
	bounds = dedup

	var out []FlattenedRegion
	for i := 0; i+1 < len(bounds); i++ {
		a, b := bounds[i], bounds[i+1]

		var activeShapes []*shape.Shape
		var activeRegions []Region
		for _, sr := range perShape {
			for _, r := range sr.Regions {
				if r.Start.T < b-geom.ParamEpsilon && r.End.T >= b-geom.ParamEpsilon {
					activeShapes = append(activeShapes, sr.Shape)
					activeRegions = append(activeRegions, r)
					break
				}
			}
		}
		if len(activeShapes) == 0 {
			continue
		}

		out = append(out, FlattenedRegion{
			Start:   interpolateBoundary(activeRegions, a),
			End:     interpolateBoundary(activeRegions, b),
			Shapes:  activeShapes,
			Skimmed: skimmedConsensus(activeRegions),
		})
	}
	return out
}

// interpolateBoundary picks the RayPoint at t from whichever active region
// actually spans it (they all agree on x/y/h at a shared t since they're
// all samples of the same ray).
func interpolateBoundary(regions []Region, t float64) RayPoint {
	for _, r := range regions {
		if t >= r.Start.T-geom.ParamEpsilon && t <= r.End.T+geom.ParamEpsilon {
			frac := 0.0
			if r.End.T != r.Start.T {
				frac = (t - r.Start.T) / (r.End.T - r.Start.T)
			}
			return RayPoint{
				X: r.Start.X + frac*(r.End.X-r.Start.X),
				Y: r.Start.Y + frac*(r.End.Y-r.Start.Y),
				H: r.Start.H + frac*(r.End.H-r.Start.H),
				T: t,
			}
		}
	}
	return regions[0].Start
}

// skimmedConsensus implements the flatten skim rule: skimmed iff every
// active region is itself a skim and they don't disagree on side in a way
// that means the ray is passing between two shapes' faces (a Left skim on
// one shape and a Right skim on another at the same t is a real
// intersection, not a skim).
func skimmedConsensus(regions []Region) bool {
	sawLeft, sawRight := false, false
	for _, r := range regions {
		if !r.Skimmed {
			return false
		}
		switch r.SkimSide {
		case SkimLeft:
			sawLeft = true
		case SkimRight:
			sawRight = true
		}
	}
	return !(sawLeft && sawRight)
}
