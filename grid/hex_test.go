package grid

import "testing"

func TestHexAdapterCellPolygonHasSixClockwiseVertices(t *testing.T) {
	a := NewHexAdapter(10, 10, 50)
	p := a.CellPolygon(3, 3)
	if len(p.Vertices) != 6 {
		t.Fatalf("len(Vertices) = %d, want 6", len(p.Vertices))
	}
	if !p.Clockwise() {
		t.Errorf("expected hex CellPolygon to be Clockwise")
	}
}

func TestHexAdapterFillNeighborsCount(t *testing.T) {
	a := NewHexAdapter(10, 10, 50)
	if len(a.FillNeighbors(2, 2)) != 6 {
		t.Errorf("even row: expected 6 neighbors")
	}
	if len(a.FillNeighbors(3, 2)) != 6 {
		t.Errorf("odd row: expected 6 neighbors")
	}
}

func TestHexAdapterFamily(t *testing.T) {
	a := NewHexAdapter(1, 1, 1)
	if a.Family() != HexRows {
		t.Errorf("Family() = %v, want HexRows", a.Family())
	}
}
