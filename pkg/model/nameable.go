package model

import (
	"fmt"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// nameable is the shared shape of an identifier plus a single display name,
// embedded by Source and Favorite (spec.md §3: "SourceModel, FavoriteModel:
// identifier and display name only"). The two object families are
// structurally identical in the original hlxproxyd sources
// (SPEC_FULL.md §C.5); this embedding avoids writing the same getter/setter
// pair twice.
type nameable struct {
	id   Identifier
	name Field[string]
}

// ID returns the object's identifier.
func (n *nameable) ID() Identifier { return n.id }

// Name returns the object's display name.
func (n *nameable) Name() string { return n.name.Value() }

// NameInitialized reports whether the name has ever been set.
func (n *nameable) NameInitialized() bool { return n.name.Initialized() }

// SetName sets the display name, validating its length.
func (n *nameable) SetName(name string) (bool, error) {
	if len(name) == 0 || len(name) > NameMaxLength {
		return false, fmt.Errorf("%w: name length %d", protoerr.ErrOutOfRange, len(name))
	}
	return n.name.Set(name), nil
}

// Source mirrors one input source (spec.md §3 SourceModel).
type Source struct {
	nameable
}

// NewSource constructs a source with the given identifier.
func NewSource(id Identifier) *Source {
	return &Source{nameable{id: id}}
}

// Favorite mirrors one stored favorite (spec.md §3 FavoriteModel).
type Favorite struct {
	nameable
}

// NewFavorite constructs a favorite with the given identifier.
func NewFavorite(id Identifier) *Favorite {
	return &Favorite{nameable{id: id}}
}
