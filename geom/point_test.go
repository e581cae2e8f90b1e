package geom

import "testing"

func TestPointEqual(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(0.5, 0.5)
	c := NewPoint(10, 10)
	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v within tolerance", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %v not to equal %v", a, c)
	}
}

func TestPointLerp(t *testing.T) {
	a := NewPoint(0, 0)
	b := NewPoint(10, 20)
	mid := a.Lerp(b, 0.5)
	if mid.X != 5 || mid.Y != 10 {
		t.Errorf("Lerp midpoint = %v, want {5 10}", mid)
	}
}

func TestCrossSign(t *testing.T) {
	origin := NewPoint(0, 0)
	a := NewPoint(1, 0)
	b := NewPoint(0, 1)
	if Cross(origin, a, b) <= 0 {
		t.Errorf("Cross(origin, a, b) = %v, want positive", Cross(origin, a, b))
	}
	if Cross(origin, b, a) >= 0 {
		t.Errorf("Cross(origin, b, a) = %v, want negative", Cross(origin, b, a))
	}
}
