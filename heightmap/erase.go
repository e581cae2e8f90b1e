package heightmap

import (
	"math"

	"github.com/terraincore/heightline/cellmap"
)

// EraseOptions filters and bounds an EraseCells call.
// A zero-value EraseOptions has Bottom = Top = 0, so it removes
// non-height layers of every type but clips no height-using layer; use
// NewEraseOptions for the full height range (math.Inf bounds).
type EraseOptions struct {
	Only      []string
	Excluding []string
	Bottom    float64
	Top       float64
}

// NewEraseOptions returns EraseOptions with Bottom/Top defaulted to
// (-Inf, +Inf), matching the store operation's documented defaults.
func NewEraseOptions() EraseOptions {
	return EraseOptions{Bottom: math.Inf(-1), Top: math.Inf(1)}
}

func (o EraseOptions) passes(id string) bool {
	if len(o.Only) > 0 {
		found := false
		for _, t := range o.Only {
			if t == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, t := range o.Excluding {
		if t == id {
			return false
		}
	}
	return true
}

// EraseCells clips out, per cell, any height-using layer intersecting
// [opts.Bottom, opts.Top] that passes the type filters, and fully removes
// any non-height layer that passes them.
func (s *Store) EraseCells(cells []cellmap.Key, opts EraseOptions) error {
	entry := make(map[cellmap.Key]cellmap.Stack)
	for _, key := range cells {
		prior := s.data[key]
		if len(prior) == 0 {
			continue
		}
		out := make(cellmap.Stack, 0, len(prior))
		changed := false
		for _, l := range prior {
			if !opts.passes(l.TerrainTypeID) {
				out = append(out, l)
				continue
			}
			t, ok := s.registry.Lookup(l.TerrainTypeID)
			usesHeight := ok && t.UsesHeight
			if !usesHeight {
				changed = true
				continue
			}
			top := l.Top()
			if top <= opts.Bottom || l.Elevation >= opts.Top {
				out = append(out, l)
				continue
			}
			replaced, didChange := clipOne(l, opts.Bottom, opts.Top)
			if didChange {
				changed = true
			}
			out = append(out, replaced...)
		}
		if !changed {
			continue
		}
		entry[key] = prior.Clone()
		if len(out) == 0 {
			delete(s.data, key)
		} else {
			s.data[key] = out
		}
	}
	if len(entry) == 0 {
		return nil
	}
	s.pushHistory(entry)
	return s.rebuildShapes()
}
