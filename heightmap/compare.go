package heightmap

import (
	"sort"

	"github.com/terraincore/heightline/cellmap"
)

func layerLess(a, b cellmap.Layer) bool {
	if a.TerrainTypeID != b.TerrainTypeID {
		return a.TerrainTypeID < b.TerrainTypeID
	}
	if a.Elevation != b.Elevation {
		return a.Elevation < b.Elevation
	}
	return a.Height < b.Height
}

func sortedLayers(s cellmap.Stack) []cellmap.Layer {
	out := make([]cellmap.Layer, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return layerLess(out[i], out[j]) })
	return out
}

// stacksEqualStrict compares two stacks as order-insensitive sets of
// layers.
func stacksEqualStrict(a, b cellmap.Stack) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := sortedLayers(a), sortedLayers(b)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// sliceToRange crops every layer in s to its overlap with [lo, hi],
// dropping layers with no overlap. Used by the ApplicableBoundary fill
// equality rule.
func sliceToRange(s cellmap.Stack, lo, hi float64) []cellmap.Layer {
	var out []cellmap.Layer
	for _, l := range s {
		top := l.Top()
		if top <= lo || l.Elevation >= hi {
			continue
		}
		start := l.Elevation
		if start < lo {
			start = lo
		}
		end := top
		if end > hi {
			end = hi
		}
		out = append(out, cellmap.Layer{TerrainTypeID: l.TerrainTypeID, Elevation: start, Height: end - start})
	}
	sort.Slice(out, func(i, j int) bool { return layerLess(out[i], out[j]) })
	return out
}

func layerSlicesEqual(a, b []cellmap.Layer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
