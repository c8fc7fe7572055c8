package model

import (
	"fmt"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// Zone mirrors one amplifier zone's state (spec.md §3 ZoneModel). All
// mutation goes through its Set* methods, which report changed vs
// already-set so the caller can apply the "notify iff changed" rule.
type Zone struct {
	id Identifier

	name        Field[string]
	volume      Field[int]
	mute        Field[bool]
	source      Field[Identifier]
	balance     Field[int]
	bass        Field[int]
	treble      Field[int]
	soundMode   Field[SoundMode]
	eq          [EqualizerBandCount]Field[int]
	highpass    Field[int]
	lowpass     Field[int]
	volumeFixed Field[bool]
}

// NewZone constructs a zone with the given identifier and default values.
func NewZone(id Identifier) *Zone {
	return &Zone{id: id}
}

// ID returns the zone's identifier.
func (z *Zone) ID() Identifier { return z.id }

// Name returns the zone's display name.
func (z *Zone) Name() string { return z.name.Value() }

// SetName sets the display name, validating its length.
func (z *Zone) SetName(name string) (bool, error) {
	if len(name) == 0 || len(name) > NameMaxLength {
		return false, fmt.Errorf("%w: zone name length %d", protoerr.ErrOutOfRange, len(name))
	}
	return z.name.Set(name), nil
}

// Volume returns the current volume level.
func (z *Zone) Volume() int { return z.volume.Value() }

// VolumeInitialized reports whether the volume has ever been set.
func (z *Zone) VolumeInitialized() bool { return z.volume.Initialized() }

// SetVolume sets the absolute volume level.
func (z *Zone) SetVolume(level int) (bool, error) {
	if level < VolumeMin || level > VolumeMax {
		return false, fmt.Errorf("%w: volume %d", protoerr.ErrOutOfRange, level)
	}
	return z.volume.Set(level), nil
}

// Muted returns the current mute state.
func (z *Zone) Muted() bool { return z.mute.Value() }

// MuteInitialized reports whether mute has ever been set.
func (z *Zone) MuteInitialized() bool { return z.mute.Initialized() }

// SetMute sets the mute state.
func (z *Zone) SetMute(muted bool) bool {
	return z.mute.Set(muted)
}

// Source returns the zone's current source identifier.
func (z *Zone) Source() Identifier { return z.source.Value() }

// SourceInitialized reports whether the source has ever been set.
func (z *Zone) SourceInitialized() bool { return z.source.Initialized() }

// SetSource sets the zone's source identifier. The caller is responsible
// for validating source against the SourcesModel range first.
func (z *Zone) SetSource(source Identifier) bool {
	return z.source.Set(source)
}

// Balance returns the signed internal balance value (negative is left,
// positive is right).
func (z *Zone) Balance() int { return z.balance.Value() }

// BalanceInitialized reports whether balance has ever been set.
func (z *Zone) BalanceInitialized() bool { return z.balance.Initialized() }

// SetBalance sets the signed balance value.
func (z *Zone) SetBalance(balance int) (bool, error) {
	if balance < BalanceMin || balance > BalanceMax {
		return false, fmt.Errorf("%w: balance %d", protoerr.ErrOutOfRange, balance)
	}
	return z.balance.Set(balance), nil
}

// Tone returns the current bass and treble levels.
func (z *Zone) Tone() (bass, treble int) { return z.bass.Value(), z.treble.Value() }

// ToneInitialized reports whether both bass and treble have been set.
func (z *Zone) ToneInitialized() bool { return z.bass.Initialized() && z.treble.Initialized() }

// BassInitialized reports whether bass alone has been set. The Zones
// controller does not call it: it accepts no bass-only or treble-only set
// request and does no flat-default substitution.
func (z *Zone) BassInitialized() bool { return z.bass.Initialized() }

// TrebleInitialized reports whether treble alone has been set.
func (z *Zone) TrebleInitialized() bool { return z.treble.Initialized() }

// SetTone sets both bass and treble together, as the device requires
// (spec.md §4.5 Zones: "setting bass or treble alone is not supported").
func (z *Zone) SetTone(bass, treble int) (bool, error) {
	if bass < ToneMin || bass > ToneMax {
		return false, fmt.Errorf("%w: bass %d", protoerr.ErrOutOfRange, bass)
	}
	if treble < ToneMin || treble > ToneMax {
		return false, fmt.Errorf("%w: treble %d", protoerr.ErrOutOfRange, treble)
	}
	bassChanged := z.bass.Set(bass)
	trebleChanged := z.treble.Set(treble)
	return bassChanged || trebleChanged, nil
}

// SoundMode returns the zone's current sound mode.
func (z *Zone) SoundMode() SoundMode { return z.soundMode.Value() }

// SoundModeInitialized reports whether the sound mode has ever been set.
func (z *Zone) SoundModeInitialized() bool { return z.soundMode.Initialized() }

// SetSoundMode sets the zone's sound mode.
func (z *Zone) SetSoundMode(mode SoundMode) bool {
	return z.soundMode.Set(mode)
}

// EqualizerBand returns the level of the given band (0-indexed).
func (z *Zone) EqualizerBand(band int) (int, error) {
	if band < 0 || band >= EqualizerBandCount {
		return 0, fmt.Errorf("%w: equalizer band %d", protoerr.ErrOutOfRange, band)
	}
	return z.eq[band].Value(), nil
}

// EqualizerInitialized reports whether every band has ever been set.
func (z *Zone) EqualizerInitialized() bool {
	for i := range z.eq {
		if !z.eq[i].Initialized() {
			return false
		}
	}
	return true
}

// SetEqualizerBand sets one band's level.
func (z *Zone) SetEqualizerBand(band, level int) (bool, error) {
	if band < 0 || band >= EqualizerBandCount {
		return false, fmt.Errorf("%w: equalizer band %d", protoerr.ErrOutOfRange, band)
	}
	if level < EqualizerBandMin || level > EqualizerBandMax {
		return false, fmt.Errorf("%w: equalizer level %d", protoerr.ErrOutOfRange, level)
	}
	return z.eq[band].Set(level), nil
}

// Highpass returns the highpass crossover frequency.
func (z *Zone) Highpass() int { return z.highpass.Value() }

// HighpassInitialized reports whether the highpass crossover has been set.
func (z *Zone) HighpassInitialized() bool { return z.highpass.Initialized() }

// SetHighpass sets the highpass crossover frequency.
func (z *Zone) SetHighpass(freq int) (bool, error) {
	if freq < CrossoverMin || freq > CrossoverMax {
		return false, fmt.Errorf("%w: highpass frequency %d", protoerr.ErrOutOfRange, freq)
	}
	return z.highpass.Set(freq), nil
}

// Lowpass returns the lowpass crossover frequency.
func (z *Zone) Lowpass() int { return z.lowpass.Value() }

// LowpassInitialized reports whether the lowpass crossover has been set.
func (z *Zone) LowpassInitialized() bool { return z.lowpass.Initialized() }

// SetLowpass sets the lowpass crossover frequency.
func (z *Zone) SetLowpass(freq int) (bool, error) {
	if freq < CrossoverMin || freq > CrossoverMax {
		return false, fmt.Errorf("%w: lowpass frequency %d", protoerr.ErrOutOfRange, freq)
	}
	return z.lowpass.Set(freq), nil
}

// VolumeFixed returns whether the zone's volume is locked to a constant.
func (z *Zone) VolumeFixed() bool { return z.volumeFixed.Value() }

// VolumeFixedInitialized reports whether the flag has ever been set.
func (z *Zone) VolumeFixedInitialized() bool { return z.volumeFixed.Initialized() }

// SetVolumeFixed sets the volume-fixed flag.
func (z *Zone) SetVolumeFixed(fixed bool) bool {
	return z.volumeFixed.Set(fixed)
}

// Initialized reports whether every sub-field needed to synthesize a full
// QO<n> reply locally has been populated (spec.md §4.5 Zones observation
// fallback).
func (z *Zone) Initialized() bool {
	return z.name.Initialized() &&
		z.volume.Initialized() &&
		z.mute.Initialized() &&
		z.source.Initialized() &&
		z.balance.Initialized() &&
		z.bass.Initialized() &&
		z.treble.Initialized() &&
		z.soundMode.Initialized() &&
		z.EqualizerInitialized() &&
		z.highpass.Initialized() &&
		z.lowpass.Initialized() &&
		z.volumeFixed.Initialized()
}
