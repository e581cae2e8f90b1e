package heightmap

import (
	"math"
	"testing"

	"github.com/terraincore/heightline/cellmap"
)

func TestNewEraseOptionsDefaultsUnbounded(t *testing.T) {
	o := NewEraseOptions()
	if !math.IsInf(o.Bottom, -1) || !math.IsInf(o.Top, 1) {
		t.Errorf("NewEraseOptions() = %+v, want Bottom=-Inf Top=+Inf", o)
	}
}

func TestEraseCellsRemovesNonHeightLayer(t *testing.T) {
	s := newTestStore(t)
	key := cellmap.Key{Row: 0, Col: 0}
	if err := s.PaintCells([]cellmap.Key{key}, "difficult", 0, 0, cellmap.TotalReplace); err != nil {
		t.Fatalf("setup error = %v", err)
	}
	if err := s.EraseCells([]cellmap.Key{key}, NewEraseOptions()); err != nil {
		t.Fatalf("EraseCells() error = %v", err)
	}
	if got := s.Get(0, 0); len(got) != 0 {
		t.Errorf("Get(0,0) = %v, want empty", got)
	}
}

func TestEraseCellsClipsHeightRange(t *testing.T) {
	s := newTestStore(t)
	key := cellmap.Key{Row: 0, Col: 0}
	if err := s.PaintCells([]cellmap.Key{key}, "wall", 20, 0, cellmap.TotalReplace); err != nil {
		t.Fatalf("setup error = %v", err)
	}
	eraseOpts := EraseOptions{Bottom: 5, Top: 10}
	if err := s.EraseCells([]cellmap.Key{key}, eraseOpts); err != nil {
		t.Fatalf("EraseCells() error = %v", err)
	}
	got := s.Get(0, 0)
	if len(got) != 2 {
		t.Fatalf("Get(0,0) = %v, want two surviving segments", got)
	}
}

func TestEraseCellsFiltersByOnly(t *testing.T) {
	s := newTestStore(t)
	key := cellmap.Key{Row: 0, Col: 0}
	if err := s.PaintCells([]cellmap.Key{key}, "wall", 10, 0, cellmap.AdditiveMerge); err != nil {
		t.Fatalf("setup error = %v", err)
	}
	if err := s.PaintCells([]cellmap.Key{key}, "water", 10, 20, cellmap.AdditiveMerge); err != nil {
		t.Fatalf("setup error = %v", err)
	}
	opts := NewEraseOptions()
	opts.Only = []string{"wall"}
	if err := s.EraseCells([]cellmap.Key{key}, opts); err != nil {
		t.Fatalf("EraseCells() error = %v", err)
	}
	got := s.Get(0, 0)
	if len(got) != 1 || got[0].TerrainTypeID != "water" {
		t.Errorf("Get(0,0) = %v, want only water remaining", got)
	}
}
