// Package errs defines the closed taxonomy of errors the core can return,
// as plain errors.Is-compatible error values.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors the core's fallible operations can return. Use errors.Is
// to test for a specific kind; UnknownTerrainError additionally carries the
// offending id.
var (
	// ErrUnsupportedGrid is returned at construction when the supplied
	// GridAdapter cannot back a core instance (e.g. a gridless host).
	ErrUnsupportedGrid = errors.New("heightline: unsupported grid")

	// ErrUnknownTerrain is returned (wrapped by UnknownTerrainError) when an
	// operation references a terrain type id the registry does not know.
	ErrUnknownTerrain = errors.New("heightline: unknown terrain type")

	// ErrInvalidHeight is returned when a height-using terrain layer is
	// given height <= 0.
	ErrInvalidHeight = errors.New("heightline: invalid height")

	// ErrInvalidElevation is returned when a height-using terrain layer is
	// given elevation < 0.
	ErrInvalidElevation = errors.New("heightline: invalid elevation")

	// ErrInvalidShapeGraph indicates the shape builder could not assign a
	// hole to any containing outer polygon: an upstream invariant was
	// broken. Fatal; the caller should treat store state as unsaved.
	ErrInvalidShapeGraph = errors.New("heightline: invalid shape graph")

	// ErrMissingEdge indicates perimeter tracing could not find the next
	// edge it needed: another upstream invariant break. Fatal.
	ErrMissingEdge = errors.New("heightline: missing edge during perimeter trace")
)

// UnknownTerrainError wraps ErrUnknownTerrain with the offending id.
type UnknownTerrainError struct {
	ID string
}

func (e *UnknownTerrainError) Error() string {
	return fmt.Sprintf("heightline: unknown terrain type %q", e.ID)
}

func (e *UnknownTerrainError) Unwrap() error { return ErrUnknownTerrain }

// UnknownTerrain builds an UnknownTerrainError for id.
func UnknownTerrain(id string) error {
	return &UnknownTerrainError{ID: id}
}
