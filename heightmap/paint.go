package heightmap

import (
	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/errs"
)

// PaintCells applies (terrainTypeID, height, elevation) to every cell in
// cells under mode. Validation happens before any
// mutation: the store is never left half-edited by a rejected call.
func (s *Store) PaintCells(cells []cellmap.Key, terrainTypeID string, height, elevation float64, mode cellmap.PaintMode) error {
	t, ok := s.registry.Lookup(terrainTypeID)
	if !ok {
		return errs.UnknownTerrain(terrainTypeID)
	}
	if t.UsesHeight {
		if height <= 0 {
			return errs.ErrInvalidHeight
		}
		if elevation < 0 {
			return errs.ErrInvalidElevation
		}
	} else {
		height, elevation = 0, 0
	}

	entry := make(map[cellmap.Key]cellmap.Stack)
	for _, key := range cells {
		prior := s.data[key]
		next, cellChanged := s.applyPaintToCell(prior, terrainTypeID, t.UsesHeight, height, elevation, mode)
		if !cellChanged {
			continue
		}
		entry[key] = prior.Clone()
		if len(next) == 0 {
			delete(s.data, key)
		} else {
			s.data[key] = next
		}
	}
	if len(entry) == 0 {
		return nil
	}
	s.pushHistory(entry)
	return s.rebuildShapes()
}

func (s *Store) applyPaintToCell(prior cellmap.Stack, terrainTypeID string, usesHeight bool, height, elevation float64, mode cellmap.PaintMode) (cellmap.Stack, bool) {
	if !usesHeight {
		for _, l := range prior {
			if l.TerrainTypeID == terrainTypeID {
				return prior, false
			}
		}
		out := make(cellmap.Stack, len(prior), len(prior)+1)
		copy(out, prior)
		out = append(out, cellmap.Layer{TerrainTypeID: terrainTypeID})
		return out, true
	}

	switch mode {
	case cellmap.TotalReplace:
		next := cellmap.Stack{{TerrainTypeID: terrainTypeID, Elevation: elevation, Height: height}}
		return next, !stacksEqualStrict(prior, next)

	case cellmap.DestructiveMerge:
		clipped, didClip := clipStack(prior, elevation, elevation+height, func(l cellmap.Layer) bool {
			if l.TerrainTypeID == terrainTypeID {
				return false
			}
			lt, ok := s.registry.Lookup(l.TerrainTypeID)
			return ok && lt.UsesHeight
		})
		merged, didMerge := mergeSameType(clipped, terrainTypeID, elevation, height)
		return merged, didClip || didMerge

	case cellmap.AdditiveMerge:
		blocked := s.otherTypeIntervals(prior, terrainTypeID, elevation, elevation+height)
		free := subtractIntervals(elevation, elevation+height, blocked)
		working := prior
		changed := false
		for _, seg := range free {
			merged, didMerge := mergeSameType(working, terrainTypeID, seg[0], seg[1]-seg[0])
			working = merged
			changed = changed || didMerge
		}
		return working, changed

	default:
		return prior, false
	}
}

// otherTypeIntervals returns the merged [lo,hi] intervals, clipped to
// [bot,top], occupied by height-using layers of any type other than
// excludeID.
func (s *Store) otherTypeIntervals(stack cellmap.Stack, excludeID string, bot, top float64) [][2]float64 {
	var raw [][2]float64
	for _, l := range stack {
		if l.TerrainTypeID == excludeID {
			continue
		}
		t, ok := s.registry.Lookup(l.TerrainTypeID)
		if !ok || !t.UsesHeight {
			continue
		}
		lTop := l.Top()
		if lTop <= bot || l.Elevation >= top {
			continue
		}
		lo, hi := l.Elevation, lTop
		if lo < bot {
			lo = bot
		}
		if hi > top {
			hi = top
		}
		raw = append(raw, [2]float64{lo, hi})
	}
	return mergeIntervals(raw)
}

func mergeIntervals(ivs [][2]float64) [][2]float64 {
	if len(ivs) == 0 {
		return nil
	}
	sortIntervals(ivs)
	out := [][2]float64{ivs[0]}
	for _, iv := range ivs[1:] {
		last := &out[len(out)-1]
		if iv[0] <= last[1] {
			if iv[1] > last[1] {
				last[1] = iv[1]
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

func sortIntervals(ivs [][2]float64) {
	for i := 1; i < len(ivs); i++ {
		for j := i; j > 0 && ivs[j][0] < ivs[j-1][0]; j-- {
			ivs[j], ivs[j-1] = ivs[j-1], ivs[j]
		}
	}
}

func subtractIntervals(bot, top float64, blocked [][2]float64) [][2]float64 {
	var free [][2]float64
	cur := bot
	for _, b := range blocked {
		if b[0] > cur {
			free = append(free, [2]float64{cur, b[0]})
		}
		if b[1] > cur {
			cur = b[1]
		}
	}
	if cur < top {
		free = append(free, [2]float64{cur, top})
	}
	return free
}
