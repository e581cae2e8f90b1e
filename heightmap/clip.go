package heightmap

import "github.com/terraincore/heightline/cellmap"

// clipOne applies the in-place clip algorithm to a
// single layer against the range [rBottom, rTop], returning the layer(s)
// that survive and whether anything changed. A fully-enclosed layer yields
// no output layers; a layer properly straddling the range on both sides
// splits into two.
func clipOne(l cellmap.Layer, rBottom, rTop float64) ([]cellmap.Layer, bool) {
	tBot, tTop := l.Elevation, l.Top()

	switch {
	case tBot >= rBottom && tTop <= rTop:
		return nil, true

	case rBottom > tBot && rTop < tTop:
		return []cellmap.Layer{
			{TerrainTypeID: l.TerrainTypeID, Elevation: tBot, Height: rBottom - tBot},
			{TerrainTypeID: l.TerrainTypeID, Elevation: rTop, Height: tTop - rTop},
		}, true

	// erase range cuts off the bottom of the layer, leaving the top part.
	case rBottom <= tBot && rTop > tBot && rTop < tTop:
		return []cellmap.Layer{{TerrainTypeID: l.TerrainTypeID, Elevation: rTop, Height: tTop - rTop}}, true

	// erase range cuts off the top of the layer, leaving the bottom part.
	case rTop >= tTop && rBottom > tBot && rBottom < tTop:
		return []cellmap.Layer{{TerrainTypeID: l.TerrainTypeID, Elevation: tBot, Height: rBottom - tBot}}, true

	default:
		return []cellmap.Layer{l}, false
	}
}

// clipStack runs clipOne over every layer in stack that filter selects,
// passing the rest through unchanged.
func clipStack(stack cellmap.Stack, rBottom, rTop float64, filter func(cellmap.Layer) bool) (cellmap.Stack, bool) {
	changed := false
	out := make(cellmap.Stack, 0, len(stack))
	for _, l := range stack {
		if !filter(l) {
			out = append(out, l)
			continue
		}
		top := l.Top()
		if top <= rBottom || l.Elevation >= rTop {
			out = append(out, l)
			continue
		}
		replaced, didChange := clipOne(l, rBottom, rTop)
		if didChange {
			changed = true
		}
		out = append(out, replaced...)
	}
	return out, changed
}
