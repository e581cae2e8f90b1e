package heightmap

import (
	"testing"

	"github.com/terraincore/heightline/cellmap"
)

func TestClipOneFullyEnclosed(t *testing.T) {
	l := cellmap.Layer{TerrainTypeID: "wall", Elevation: 5, Height: 5}
	out, changed := clipOne(l, 0, 20)
	if !changed || len(out) != 0 {
		t.Errorf("clipOne(fully enclosed) = %v, %v; want nil, true", out, changed)
	}
}

func TestClipOneSplitsInTwo(t *testing.T) {
	l := cellmap.Layer{TerrainTypeID: "wall", Elevation: 0, Height: 20}
	out, changed := clipOne(l, 5, 10)
	if !changed || len(out) != 2 {
		t.Fatalf("clipOne(split) = %v, %v; want 2 layers, true", out, changed)
	}
	if out[0].Elevation != 0 || out[0].Height != 5 {
		t.Errorf("out[0] = %+v, want elevation=0 height=5", out[0])
	}
	if out[1].Elevation != 10 || out[1].Height != 10 {
		t.Errorf("out[1] = %+v, want elevation=10 height=10", out[1])
	}
}

func TestClipOneCutsOffBottomLeavingTop(t *testing.T) {
	l := cellmap.Layer{TerrainTypeID: "wall", Elevation: 0, Height: 10}
	out, changed := clipOne(l, 0, 4)
	if !changed || len(out) != 1 {
		t.Fatalf("clipOne(cut bottom) = %v, %v; want 1 layer, true", out, changed)
	}
	if out[0].Elevation != 4 || out[0].Height != 6 {
		t.Errorf("out[0] = %+v, want elevation=4 height=6", out[0])
	}
}

func TestClipOneCutsOffTopLeavingBottom(t *testing.T) {
	l := cellmap.Layer{TerrainTypeID: "wall", Elevation: 0, Height: 10}
	out, changed := clipOne(l, 6, 10)
	if !changed || len(out) != 1 {
		t.Fatalf("clipOne(cut top) = %v, %v; want 1 layer, true", out, changed)
	}
	if out[0].Elevation != 0 || out[0].Height != 6 {
		t.Errorf("out[0] = %+v, want elevation=0 height=6", out[0])
	}
}

func TestClipOneNoOverlapUnchanged(t *testing.T) {
	l := cellmap.Layer{TerrainTypeID: "wall", Elevation: 0, Height: 10}
	out, changed := clipOne(l, 20, 30)
	if changed || len(out) != 1 || out[0] != l {
		t.Errorf("clipOne(no overlap) = %v, %v; want unchanged layer, false", out, changed)
	}
}
