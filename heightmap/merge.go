package heightmap

import "github.com/terraincore/heightline/cellmap"

// mergeSameType implements the same-type merge:
// every existing layer of terrainTypeID that touches, contains, or is
// contained by [e, e+h] is folded into one layer spanning their union. If
// an existing layer already fully contains the new range, the insert is a
// no-op.
func mergeSameType(stack cellmap.Stack, terrainTypeID string, e, h float64) (cellmap.Stack, bool) {
	newBot, newTop := e, e+h

	for _, l := range stack {
		if l.TerrainTypeID == terrainTypeID && l.Elevation <= newBot && l.Top() >= newTop {
			return stack, false
		}
	}

	minE, maxT := newBot, newTop
	out := make(cellmap.Stack, 0, len(stack)+1)
	for _, l := range stack {
		if l.TerrainTypeID != terrainTypeID || l.Top() < newBot || l.Elevation > newTop {
			out = append(out, l)
			continue
		}
		if l.Elevation < minE {
			minE = l.Elevation
		}
		if l.Top() > maxT {
			maxT = l.Top()
		}
	}
	out = append(out, cellmap.Layer{TerrainTypeID: terrainTypeID, Elevation: minE, Height: maxT - minE})
	return out, true
}
