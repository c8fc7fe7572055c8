package model

import (
	"fmt"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// EqualizerPreset mirrors one stored equalizer preset (spec.md §3
// EqualizerPresetModel): an identifier, a display name, and a fixed-length
// array of band levels — the same shape as a Zone's per-band equalizer.
type EqualizerPreset struct {
	nameable
	bands [EqualizerBandCount]Field[int]
}

// NewEqualizerPreset constructs a preset with the given identifier.
func NewEqualizerPreset(id Identifier) *EqualizerPreset {
	return &EqualizerPreset{nameable: nameable{id: id}}
}

// Band returns the level of the given band (0-indexed).
func (p *EqualizerPreset) Band(band int) (int, error) {
	if band < 0 || band >= EqualizerBandCount {
		return 0, fmt.Errorf("%w: equalizer band %d", protoerr.ErrOutOfRange, band)
	}
	return p.bands[band].Value(), nil
}

// SetBand sets one band's level.
func (p *EqualizerPreset) SetBand(band, level int) (bool, error) {
	if band < 0 || band >= EqualizerBandCount {
		return false, fmt.Errorf("%w: equalizer band %d", protoerr.ErrOutOfRange, band)
	}
	if level < EqualizerBandMin || level > EqualizerBandMax {
		return false, fmt.Errorf("%w: equalizer level %d", protoerr.ErrOutOfRange, level)
	}
	return p.bands[band].Set(level), nil
}

// BandsInitialized reports whether every band has ever been set.
func (p *EqualizerPreset) BandsInitialized() bool {
	for i := range p.bands {
		if !p.bands[i].Initialized() {
			return false
		}
	}
	return true
}

// Initialized reports whether the preset is ready to be synthesized
// locally (spec.md §4.5 EqualizerPresets).
func (p *EqualizerPreset) Initialized() bool {
	return p.BandsInitialized()
}
