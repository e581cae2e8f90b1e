package cellmap

import (
	"testing"

	"github.com/terraincore/heightline/terrain"
)

func persistTestRegistry() terrain.Registry {
	return terrain.NewStaticRegistry([]terrain.Type{
		{ID: "wall", UsesHeight: true},
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := NewData()
	d[Key{Row: 1, Col: 2}] = Stack{{TerrainTypeID: "wall", Elevation: 0, Height: 10}}

	raw, err := Save(d, persistTestRegistry())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Load() = %v, want 1 cell", got)
	}
	stack := got[Key{Row: 1, Col: 2}]
	if len(stack) != 1 || stack[0].TerrainTypeID != "wall" || stack[0].Height != 10 {
		t.Errorf("round-tripped layer = %v, want the original wall layer", stack)
	}
}

func TestSaveDropsUnknownTerrain(t *testing.T) {
	d := NewData()
	d[Key{Row: 0, Col: 0}] = Stack{{TerrainTypeID: "lava", Elevation: 0, Height: 10}}

	raw, err := Save(d, persistTestRegistry())
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(raw)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want the unknown-terrain cell dropped entirely", got)
	}
}

func TestLoadLegacyV0Format(t *testing.T) {
	legacy := []byte(`[{"position":[3,4],"terrainTypeId":"wall","height":10}]`)
	got, err := Load(legacy)
	if err != nil {
		t.Fatalf("Load(v0) error = %v", err)
	}
	stack := got[Key{Row: 3, Col: 4}]
	if len(stack) != 1 || stack[0].Elevation != 0 || stack[0].Height != 10 {
		t.Errorf("Load(v0) = %v, want elevation defaulted to 0", stack)
	}
}

func TestLoadLegacyV0WithExplicitElevation(t *testing.T) {
	legacy := []byte(`[{"position":[0,0],"terrainTypeId":"wall","height":10,"elevation":5}]`)
	got, err := Load(legacy)
	if err != nil {
		t.Fatalf("Load(v0) error = %v", err)
	}
	stack := got[Key{Row: 0, Col: 0}]
	if len(stack) != 1 || stack[0].Elevation != 5 {
		t.Errorf("Load(v0) = %v, want elevation=5", stack)
	}
}
