package heightmap

import (
	"testing"

	"github.com/terraincore/heightline/cellmap"
)

func TestFillCellsFloodsContiguousEmptyCells(t *testing.T) {
	s := newTestStore(t)
	origin := cellmap.Key{Row: 5, Col: 5}
	if err := s.FillCells(origin, "wall", 10, 0, cellmap.ApplicableBoundary); err != nil {
		t.Fatalf("FillCells() error = %v", err)
	}
	if got := s.Get(5, 5); len(got) != 1 || got[0].TerrainTypeID != "wall" {
		t.Errorf("Get(origin) = %v, want a wall layer", got)
	}
	if got := s.Get(0, 0); len(got) != 1 || got[0].TerrainTypeID != "wall" {
		t.Errorf("Get(0,0) = %v, want fill to have reached a corner of the empty map", got)
	}
}

func TestFillCellsStopsAtDifferentStack(t *testing.T) {
	s := newTestStore(t)
	barrier := cellmap.Key{Row: 5, Col: 0}
	if err := s.PaintCells([]cellmap.Key{barrier}, "water", 10, 0, cellmap.TotalReplace); err != nil {
		t.Fatalf("setup error = %v", err)
	}
	if err := s.FillCells(cellmap.Key{Row: 5, Col: 5}, "wall", 10, 0, cellmap.ApplicableBoundary); err != nil {
		t.Fatalf("FillCells() error = %v", err)
	}
	if got := s.Get(5, 0); len(got) != 1 || got[0].TerrainTypeID != "water" {
		t.Errorf("Get(barrier) = %v, want the barrier untouched", got)
	}
}

func TestFillCellsRejectsUnknownTerrain(t *testing.T) {
	s := newTestStore(t)
	err := s.FillCells(cellmap.Key{Row: 0, Col: 0}, "lava", 10, 0, cellmap.ApplicableBoundary)
	if err == nil {
		t.Fatal("expected an error for an unknown terrain type")
	}
}

func TestFillCellsRepaintingSameValueIsNoOp(t *testing.T) {
	s := newTestStore(t)
	origin := cellmap.Key{Row: 5, Col: 5}
	if err := s.FillCells(origin, "wall", 10, 0, cellmap.ApplicableBoundary); err != nil {
		t.Fatalf("FillCells() error = %v", err)
	}
	historyLen := len(s.history)
	if err := s.FillCells(origin, "wall", 10, 0, cellmap.ApplicableBoundary); err != nil {
		t.Fatalf("FillCells() error = %v", err)
	}
	if len(s.history) != historyLen {
		t.Errorf("expected re-filling with the same value to push no new history entry")
	}
}
