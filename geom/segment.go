package geom

import "math"

// segCache holds the values LineSegment computes lazily. It is shared by
// pointer so that copying a LineSegment by value (as happens constantly when
// passing edges around) doesn't lose a cache already computed by another
// copy.
type segCache struct {
	length    *float64
	angle     *float64
	haveAngle bool
}

// LineSegment is an ordered pair of points. Equality (Equal) is
// direction-insensitive: a segment and its reverse are considered the same
// segment, which is what lets the shape builder cancel shared cell edges.
type LineSegment struct {
	P1, P2 Point
	cache  *segCache
}

// NewLineSegment builds a LineSegment from p1 to p2.
func NewLineSegment(p1, p2 Point) LineSegment {
	return LineSegment{P1: p1, P2: p2, cache: &segCache{}}
}

func (s LineSegment) dx() float64 { return s.P2.X - s.P1.X }
func (s LineSegment) dy() float64 { return s.P2.Y - s.P1.Y }

// Length returns the Euclidean length of the segment, computed once and
// cached.
func (s LineSegment) Length() float64 {
	if s.cache != nil && s.cache.length != nil {
		return *s.cache.length
	}
	l := s.P1.DistanceTo(s.P2)
	if s.cache != nil {
		s.cache.length = &l
	}
	return l
}

// Angle returns atan2(dy, dx) for the segment, cached on first use.
func (s LineSegment) Angle() float64 {
	if s.cache != nil && s.cache.haveAngle {
		return *s.cache.angle
	}
	a := math.Atan2(s.dy(), s.dx())
	if s.cache != nil {
		s.cache.angle = &a
		s.cache.haveAngle = true
	}
	return a
}

// Reverse returns the segment with endpoints swapped.
func (s LineSegment) Reverse() LineSegment {
	return NewLineSegment(s.P2, s.P1)
}

// Equal reports whether two segments connect the same two points, regardless
// of direction, within PointTolerance.
func (s LineSegment) Equal(other LineSegment) bool {
	if s.P1.Equal(other.P1) && s.P2.Equal(other.P2) {
		return true
	}
	return s.P1.Equal(other.P2) && s.P2.Equal(other.P1)
}

// Clockwise reports whether the segment runs left-to-right by more than
// PointTolerance, or — for near-vertical segments, i.e. ones whose dx falls
// within PointTolerance — runs top-to-bottom. It is the tie-breaker used
// throughout perimeter tracing to classify a traced loop as outer polygon
// or hole.
func (s LineSegment) Clockwise() bool {
	dx := s.dx()
	if dx > PointTolerance {
		return true
	}
	if dx < -PointTolerance {
		return false
	}
	return s.dy() > 0
}

// IsParallelTo reports whether the angular difference between the two
// segments' directions, folded into [0, pi/2] (so direction doesn't
// matter), is within tol radians.
func (s LineSegment) IsParallelTo(other LineSegment, tol float64) bool {
	diff := math.Mod(math.Abs(s.Angle()-other.Angle()), math.Pi)
	if diff > math.Pi/2 {
		diff = math.Pi - diff
	}
	return diff <= tol
}

// Intersection is the result of LineSegment.IntersectsAt: the point where
// two segments cross, plus the parameter of that point along each segment.
type Intersection struct {
	X, Y float64
	T    float64 // parameter along the receiver, self.P1 + T*(self.P2-self.P1)
	U    float64 // parameter along other
}

// IntersectsAt solves the 2x2 linear system for where self and other cross,
// with a PointTolerance-sized allowance on each segment's parameter so
// near-miss endpoint touches still resolve to an exact 0 or 1. Parallel
// segments (within ParallelTolerance) never intersect, even if collinear.
func (s LineSegment) IntersectsAt(other LineSegment) (Intersection, bool) {
	if s.IsParallelTo(other, ParallelTolerance) {
		return Intersection{}, false
	}
	rx, ry := s.dx(), s.dy()
	vx, vy := other.dx(), other.dy()
	denom := rx*vy - ry*vx
	if denom == 0 {
		return Intersection{}, false
	}
	qpx := other.P1.X - s.P1.X
	qpy := other.P1.Y - s.P1.Y
	t := (qpx*vy - qpy*vx) / denom
	u := (qpx*ry - qpy*rx) / denom

	sLen := s.Length()
	oLen := other.Length()
	if sLen > 0 {
		t = clampToUnit(t, PointTolerance/sLen)
	}
	if oLen > 0 {
		u = clampToUnit(u, PointTolerance/oLen)
	}
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{}, false
	}
	pt := s.P1.Lerp(s.P2, t)
	return Intersection{X: pt.X, Y: pt.Y, T: t, U: u}, true
}

// clampToUnit snaps v to 0 or 1 when it falls within tol of either,
// otherwise returns v unchanged.
func clampToUnit(v, tol float64) float64 {
	if v < 0 && v > -tol {
		return 0
	}
	if v > 1 && v < 1+tol {
		return 1
	}
	return v
}

// ClosestPointOnLineTo projects (x,y) onto the infinite line through the
// segment's two points (the result may lie outside the segment itself,
// t outside [0,1]). distSq is the squared perpendicular distance from the
// point to the line. side is the sign of the cross product of the segment's
// direction with the vector from P1 to the query point (0 within epsilon),
// which the LOS engine uses to classify a skim as left- or right-handed.
func (s LineSegment) ClosestPointOnLineTo(x, y float64) (t, distSq float64, side int) {
	dx, dy := s.dx(), s.dy()
	lenSq := dx*dx + dy*dy
	wx, wy := x-s.P1.X, y-s.P1.Y
	if lenSq == 0 {
		return 0, wx*wx + wy*wy, 0
	}
	t = (wx*dx + wy*dy) / lenSq
	cross := dx*wy - dy*wx
	distSq = (cross * cross) / lenSq
	const sideEpsilon = 1e-9
	switch {
	case cross > sideEpsilon:
		side = 1
	case cross < -sideEpsilon:
		side = -1
	default:
		side = 0
	}
	return t, distSq, side
}

// AngleBetween returns the clockwise interior angle, in [0, 2*pi), assuming
// other begins where the receiver ends and the enclosing polygon is traced
// clockwise. It is the tie-breaker perimeter tracing uses at corner-touch
// vertices, and the building block for IsBetween.
func (s LineSegment) AngleBetween(other LineSegment) float64 {
	diff := math.Pi + s.Angle() - other.Angle()
	diff = math.Mod(diff, 2*math.Pi)
	if diff < 0 {
		diff += 2 * math.Pi
	}
	return diff
}

// IsBetween reports whether edgeA.AngleBetween(receiver) is smaller than
// edgeA.AngleBetween(edgeB) — i.e. whether, with edgeA arriving at a vertex
// and edgeB leaving it on a clockwise-traced polygon, the receiver's
// direction lies inside the polygon's interior wedge at that vertex.
func (s LineSegment) IsBetween(edgeA, edgeB LineSegment) bool {
	return edgeA.AngleBetween(s) < edgeA.AngleBetween(edgeB)
}
