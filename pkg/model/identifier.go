// Package model holds the in-memory mirror of device state: zones, groups,
// sources, favorites, equalizer presets, the front panel, infrared, and the
// network interface (spec.md §3). Every mutator reports whether it actually
// changed the value, so callers can apply the "notify iff changed" rule
// (spec.md §3 Invariants) without re-deriving it from a before/after diff.
package model

import (
	"fmt"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// Identifier is a positive integer naming an object within a family's
// dense [1, Max] range (spec.md §3).
type Identifier int

// Range describes the valid identifier domain for one object family.
type Range struct {
	Max Identifier
}

// NewRange builds a Range covering [1, max].
func NewRange(max int) Range {
	return Range{Max: Identifier(max)}
}

// Validate returns ErrOutOfRange if id is outside [1, Max].
func (r Range) Validate(id Identifier) error {
	if id < 1 || id > r.Max {
		return fmt.Errorf("%w: identifier %d not in [1,%d]", protoerr.ErrOutOfRange, id, r.Max)
	}
	return nil
}

// All returns every identifier in the range, ascending.
func (r Range) All() []Identifier {
	ids := make([]Identifier, 0, r.Max)
	for i := Identifier(1); i <= r.Max; i++ {
		ids = append(ids, i)
	}
	return ids
}

// Count returns the number of identifiers in the range.
func (r Range) Count() int {
	return int(r.Max)
}
