package model

import "fmt"

import "github.com/openhlx/hlxproxyd/internal/protoerr"

// Sizes configures the dense [1, Max] identifier range for every object
// family (spec.md §3: "The collection size of each family equals its
// configured maximum; identifiers are dense [1..Max]"). Fixed at process
// start from SPEC_FULL.md §A.3 configuration.
type Sizes struct {
	MaxZones            int
	MaxGroups           int
	MaxSources          int
	MaxFavorites        int
	MaxEqualizerPresets int
}

// Model is the in-memory mirror of all device state (spec.md §3). It is
// owned by the reactor task and mutated only there (spec.md §5): nothing in
// this package takes a lock.
type Model struct {
	sizes Sizes

	zoneRange   Range
	groupRange  Range
	sourceRange Range
	favRange    Range
	presetRange Range

	zones    map[Identifier]*Zone
	groups   map[Identifier]*Group
	sources  map[Identifier]*Source
	favs     map[Identifier]*Favorite
	presets  map[Identifier]*EqualizerPreset
	panel    *FrontPanel
	infrared *Infrared
	network  *Network
}

// New constructs a Model with every object family pre-populated at its
// configured dense range, each with default (uninitialized) field values
// (spec.md §3 Lifecycle: "Models are created at process start with default
// values").
func New(sizes Sizes) *Model {
	m := &Model{
		sizes:       sizes,
		zoneRange:   NewRange(sizes.MaxZones),
		groupRange:  NewRange(sizes.MaxGroups),
		sourceRange: NewRange(sizes.MaxSources),
		favRange:    NewRange(sizes.MaxFavorites),
		presetRange: NewRange(sizes.MaxEqualizerPresets),
		zones:       make(map[Identifier]*Zone, sizes.MaxZones),
		groups:      make(map[Identifier]*Group, sizes.MaxGroups),
		sources:     make(map[Identifier]*Source, sizes.MaxSources),
		favs:        make(map[Identifier]*Favorite, sizes.MaxFavorites),
		presets:     make(map[Identifier]*EqualizerPreset, sizes.MaxEqualizerPresets),
		panel:       NewFrontPanel(),
		infrared:    NewInfrared(),
		network:     NewNetwork(),
	}
	for _, id := range m.zoneRange.All() {
		m.zones[id] = NewZone(id)
	}
	for _, id := range m.groupRange.All() {
		m.groups[id] = NewGroup(id)
	}
	for _, id := range m.sourceRange.All() {
		m.sources[id] = NewSource(id)
	}
	for _, id := range m.favRange.All() {
		m.favs[id] = NewFavorite(id)
	}
	for _, id := range m.presetRange.All() {
		m.presets[id] = NewEqualizerPreset(id)
	}
	return m
}

// Sizes returns the configured family sizes.
func (m *Model) Sizes() Sizes { return m.sizes }

// ZoneRange, GroupRange, SourceRange, FavoriteRange, and PresetRange expose
// the dense identifier ranges so controllers can validate requests before
// mutating any state (spec.md §3 Invariants).
func (m *Model) ZoneRange() Range   { return m.zoneRange }
func (m *Model) GroupRange() Range  { return m.groupRange }
func (m *Model) SourceRange() Range { return m.sourceRange }
func (m *Model) FavoriteRange() Range { return m.favRange }
func (m *Model) PresetRange() Range { return m.presetRange }

// Zone returns the zone with the given identifier, validating the range
// first.
func (m *Model) Zone(id Identifier) (*Zone, error) {
	if err := m.zoneRange.Validate(id); err != nil {
		return nil, err
	}
	z, ok := m.zones[id]
	if !ok {
		return nil, fmt.Errorf("%w: zone %d", protoerr.ErrNotFound, id)
	}
	return z, nil
}

// Zones returns every zone, ascending by identifier.
func (m *Model) Zones() []*Zone {
	out := make([]*Zone, 0, len(m.zones))
	for _, id := range m.zoneRange.All() {
		out = append(out, m.zones[id])
	}
	return out
}

// Group returns the group with the given identifier, validating the range
// first.
func (m *Model) Group(id Identifier) (*Group, error) {
	if err := m.groupRange.Validate(id); err != nil {
		return nil, err
	}
	g, ok := m.groups[id]
	if !ok {
		return nil, fmt.Errorf("%w: group %d", protoerr.ErrNotFound, id)
	}
	return g, nil
}

// Groups returns every group, ascending by identifier.
func (m *Model) Groups() []*Group {
	out := make([]*Group, 0, len(m.groups))
	for _, id := range m.groupRange.All() {
		out = append(out, m.groups[id])
	}
	return out
}

// Source returns the source with the given identifier, validating the
// range first.
func (m *Model) Source(id Identifier) (*Source, error) {
	if err := m.sourceRange.Validate(id); err != nil {
		return nil, err
	}
	s, ok := m.sources[id]
	if !ok {
		return nil, fmt.Errorf("%w: source %d", protoerr.ErrNotFound, id)
	}
	return s, nil
}

// Sources returns every source, ascending by identifier.
func (m *Model) Sources() []*Source {
	out := make([]*Source, 0, len(m.sources))
	for _, id := range m.sourceRange.All() {
		out = append(out, m.sources[id])
	}
	return out
}

// Favorite returns the favorite with the given identifier, validating the
// range first.
func (m *Model) Favorite(id Identifier) (*Favorite, error) {
	if err := m.favRange.Validate(id); err != nil {
		return nil, err
	}
	f, ok := m.favs[id]
	if !ok {
		return nil, fmt.Errorf("%w: favorite %d", protoerr.ErrNotFound, id)
	}
	return f, nil
}

// Favorites returns every favorite, ascending by identifier.
func (m *Model) Favorites() []*Favorite {
	out := make([]*Favorite, 0, len(m.favs))
	for _, id := range m.favRange.All() {
		out = append(out, m.favs[id])
	}
	return out
}

// Preset returns the equalizer preset with the given identifier, validating
// the range first.
func (m *Model) Preset(id Identifier) (*EqualizerPreset, error) {
	if err := m.presetRange.Validate(id); err != nil {
		return nil, err
	}
	p, ok := m.presets[id]
	if !ok {
		return nil, fmt.Errorf("%w: equalizer preset %d", protoerr.ErrNotFound, id)
	}
	return p, nil
}

// Presets returns every equalizer preset, ascending by identifier.
func (m *Model) Presets() []*EqualizerPreset {
	out := make([]*EqualizerPreset, 0, len(m.presets))
	for _, id := range m.presetRange.All() {
		out = append(out, m.presets[id])
	}
	return out
}

// FrontPanel returns the singleton front panel model.
func (m *Model) FrontPanel() *FrontPanel { return m.panel }

// Infrared returns the singleton infrared model.
func (m *Model) Infrared() *Infrared { return m.infrared }

// Network returns the singleton network model.
func (m *Model) Network() *Network { return m.network }
