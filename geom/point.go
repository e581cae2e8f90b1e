// Package geom implements the 2D geometry kernel the rest of the module is
// built on: points, line segments and polygons, with the tolerance-aware
// predicates the shape builder and line-of-sight engine rely on.
//
// All coordinates are float64 ("pixel space"). Equality throughout this
// package is tolerance-based rather than exact, since both square and
// hexagonal grid adapters are expected to produce coordinates with a small
// amount of sub-pixel drift.
package geom

import "math"

// PointTolerance is the default distance, in pixel units, within which two
// points are considered equal. Hex grid math produces sub-pixel drift, so
// this is deliberately coarser than float64 epsilon.
const PointTolerance = 1.0

// ParallelTolerance is the angular tolerance, in radians, used to decide
// whether two segments are parallel.
const ParallelTolerance = 0.05

// ParamEpsilon bounds ray/edge parameter comparisons (t, u values in [0,1])
// at roughly machine-epsilon scale.
const ParamEpsilon = 2.220446049250313e-16

// SkimDistanceSquared is the squared-distance threshold (in px²) under which
// a ray is considered to be skimming along an edge rather than crossing it.
const SkimDistanceSquared = 16.0

// Point is an immutable 2D point.
type Point struct {
	X, Y float64
}

// NewPoint builds a Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Equal reports whether p and other are within PointTolerance of each other.
func (p Point) Equal(other Point) bool {
	return p.DistanceSquaredTo(other) <= PointTolerance*PointTolerance
}

// DistanceSquaredTo returns the squared Euclidean distance to other, cheaper
// than Distance when only comparisons against a threshold are needed.
func (p Point) DistanceSquaredTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the Euclidean distance to other.
func (p Point) DistanceTo(other Point) float64 {
	return math.Sqrt(p.DistanceSquaredTo(other))
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns p translated by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale returns p scaled by s about the origin.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp returns the point at parameter t between p and other (t=0 -> p, t=1 -> other).
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}

// Cross returns the 2D cross product (z component) of (a-origin) x (b-origin),
// i.e. the signed area of the parallelogram spanned by the two vectors from
// origin. Positive values indicate b is clockwise of a in a y-down coordinate
// system, the convention used throughout this package.
func Cross(origin, a, b Point) float64 {
	ax, ay := a.X-origin.X, a.Y-origin.Y
	bx, by := b.X-origin.X, b.Y-origin.Y
	return ax*by - ay*bx
}
