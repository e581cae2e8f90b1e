// Package heightmap implements the cell-keyed terrain store: paint/erase/fill edits over a sparse cell map, with bounded undo
// history, rebuilding the shape list through package shape after every
// successful mutation.
package heightmap

import (
	"github.com/terraincore/heightline/cellmap"
	"github.com/terraincore/heightline/corelog"
	"github.com/terraincore/heightline/errs"
	"github.com/terraincore/heightline/grid"
	"github.com/terraincore/heightline/shape"
	"github.com/terraincore/heightline/terrain"
)

// maxHistory bounds the undo ring.
const maxHistory = 10

// Store holds the current cell map, its derived shape list, and undo
// history. Not safe for concurrent use without external synchronization;
// callers own serialization.
type Store struct {
	data     cellmap.Data
	adapter  grid.Adapter
	registry terrain.Registry
	logger   corelog.Logger

	shapes  []*shape.Shape
	history []map[cellmap.Key]cellmap.Stack
}

// New constructs a Store over adapter and reg, seeded with initial (which
// may be nil for an empty map). Fails with errs.ErrUnsupportedGrid if
// adapter is nil — the core does not support gridless configurations.
func New(adapter grid.Adapter, reg terrain.Registry, initial cellmap.Data, logger corelog.Logger) (*Store, error) {
	if adapter == nil {
		return nil, errs.ErrUnsupportedGrid
	}
	s := &Store{
		data:     cellmap.NewData(),
		adapter:  adapter,
		registry: reg,
		logger:   corelog.OrNop(logger),
	}
	for k, v := range initial {
		s.data[k] = v.Clone()
	}
	if err := s.rebuildShapes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the layer stack at (row, col), possibly empty. Pure.
func (s *Store) Get(row, col int32) cellmap.Stack {
	return s.data[cellmap.Key{Row: row, Col: col}]
}

// GetShapes returns every current shape whose cell set contains (row, col).
// Pure.
func (s *Store) GetShapes(row, col int32) []*shape.Shape {
	key := cellmap.Key{Row: row, Col: col}
	var out []*shape.Shape
	for _, sh := range s.shapes {
		if sh.HasCell(key) {
			out = append(out, sh)
		}
	}
	return out
}

// Shapes returns the full current shape list. Callers must not mutate
// through the returned slice or its elements.
func (s *Store) Shapes() []*shape.Shape {
	return s.shapes
}

// Clear empties the map without pushing a history entry, then recomputes
// the (now empty) shape list. Returns whether anything was actually
// cleared.
func (s *Store) Clear() (bool, error) {
	if len(s.data) == 0 {
		return false, nil
	}
	s.data = cellmap.NewData()
	if err := s.rebuildShapes(); err != nil {
		return false, err
	}
	return true, nil
}

// Undo pops the last history entry and restores every cell key it names to
// its prior stack, removing keys whose prior stack was empty. A no-op
// (returns nil) when history is empty.
func (s *Store) Undo() error {
	if len(s.history) == 0 {
		return nil
	}
	entry := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	for key, prior := range entry {
		if len(prior) == 0 {
			delete(s.data, key)
		} else {
			s.data[key] = prior
		}
	}
	return s.rebuildShapes()
}

// pushHistory records entry (cell key -> prior stack, already cloned),
// discarding the oldest entry if the ring is full.
func (s *Store) pushHistory(entry map[cellmap.Key]cellmap.Stack) {
	s.history = append(s.history, entry)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}

func (s *Store) rebuildShapes() error {
	shapes, err := shape.Build(s.data, s.adapter, s.registry, s.logger)
	if err != nil {
		return err
	}
	s.shapes = shapes
	return nil
}
