package heightmap

import (
	"testing"

	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/errs"
)

func TestPaintCellsRejectsUnknownTerrain(t *testing.T) {
	s := newTestStore(t)
	err := s.PaintCells([]cellmap.Key{{Row: 0, Col: 0}}, "lava", 10, 0, cellmap.TotalReplace)
	if err == nil {
		t.Fatal("expected an error for an unknown terrain type")
	}
	if _, ok := err.(*errs.UnknownTerrainError); !ok {
		t.Errorf("error = %v (%T), want *errs.UnknownTerrainError", err, err)
	}
}

func TestPaintCellsRejectsNonPositiveHeight(t *testing.T) {
	s := newTestStore(t)
	err := s.PaintCells([]cellmap.Key{{Row: 0, Col: 0}}, "wall", 0, 0, cellmap.TotalReplace)
	if err != errs.ErrInvalidHeight {
		t.Errorf("error = %v, want ErrInvalidHeight", err)
	}
}

func TestPaintCellsRejectsNegativeElevation(t *testing.T) {
	s := newTestStore(t)
	err := s.PaintCells([]cellmap.Key{{Row: 0, Col: 0}}, "wall", 10, -1, cellmap.TotalReplace)
	if err != errs.ErrInvalidElevation {
		t.Errorf("error = %v, want ErrInvalidElevation", err)
	}
}

func TestPaintCellsValidatesBeforeMutating(t *testing.T) {
	s := newTestStore(t)
	key := cellmap.Key{Row: 0, Col: 0}
	if err := s.PaintCells([]cellmap.Key{key}, "wall", 10, 0, cellmap.TotalReplace); err != nil {
		t.Fatalf("setup PaintCells() error = %v", err)
	}

	err := s.PaintCells([]cellmap.Key{key}, "wall", -1, 0, cellmap.TotalReplace)
	if err != errs.ErrInvalidHeight {
		t.Fatalf("error = %v, want ErrInvalidHeight", err)
	}
	if got := s.Get(0, 0); len(got) != 1 || got[0].Height != 10 {
		t.Errorf("Get(0,0) = %v, want the original unmutated layer", got)
	}
}

func TestPaintCellsDestructiveMergeClipsOtherTypes(t *testing.T) {
	s := newTestStore(t)
	key := cellmap.Key{Row: 0, Col: 0}
	if err := s.PaintCells([]cellmap.Key{key}, "water", 10, 0, cellmap.TotalReplace); err != nil {
		t.Fatalf("setup PaintCells() error = %v", err)
	}
	if err := s.PaintCells([]cellmap.Key{key}, "wall", 20, 0, cellmap.DestructiveMerge); err != nil {
		t.Fatalf("PaintCells(DestructiveMerge) error = %v", err)
	}
	got := s.Get(0, 0)
	if len(got) != 1 || got[0].TerrainTypeID != "wall" {
		t.Errorf("Get(0,0) = %v, want only the wall layer left", got)
	}
}

func TestPaintCellsAdditiveMergeNeverOverwritesOtherTypes(t *testing.T) {
	s := newTestStore(t)
	key := cellmap.Key{Row: 0, Col: 0}
	if err := s.PaintCells([]cellmap.Key{key}, "water", 5, 5, cellmap.TotalReplace); err != nil {
		t.Fatalf("setup PaintCells() error = %v", err)
	}
	if err := s.PaintCells([]cellmap.Key{key}, "wall", 20, 0, cellmap.AdditiveMerge); err != nil {
		t.Fatalf("PaintCells(AdditiveMerge) error = %v", err)
	}
	got := s.Get(0, 0)
	var sawWater, sawWall bool
	for _, l := range got {
		switch l.TerrainTypeID {
		case "water":
			sawWater = true
			if l.Elevation != 5 || l.Height != 5 {
				t.Errorf("water layer = %+v, want untouched elevation=5 height=5", l)
			}
		case "wall":
			sawWall = true
		}
	}
	if !sawWater || !sawWall {
		t.Errorf("Get(0,0) = %v, want both water and wall present", got)
	}
}

func TestPaintCellsNonHeightTerrainIgnoresHeightArgs(t *testing.T) {
	s := newTestStore(t)
	key := cellmap.Key{Row: 0, Col: 0}
	if err := s.PaintCells([]cellmap.Key{key}, "difficult", 999, 999, cellmap.TotalReplace); err != nil {
		t.Fatalf("PaintCells() error = %v", err)
	}
	got := s.Get(0, 0)
	if len(got) != 1 || got[0].Elevation != 0 || got[0].Height != 0 {
		t.Errorf("Get(0,0) = %v, want a single zeroed non-height layer", got)
	}

	// Repainting the same non-height type is a no-op, not a duplicate layer.
	if err := s.PaintCells([]cellmap.Key{key}, "difficult", 0, 0, cellmap.TotalReplace); err != nil {
		t.Fatalf("PaintCells() error = %v", err)
	}
	if got := s.Get(0, 0); len(got) != 1 {
		t.Errorf("Get(0,0) = %v, want still a single layer", got)
	}
}
