package model

// Wire-level numeric domains. These mirror the device's own limits; they are
// not configurable per spec.md §3 ("Valid ranges are fixed at build time per
// object family").
const (
	// VolumeMin is full attenuation (silence); VolumeMax is unity gain.
	VolumeMin = -79
	VolumeMax = 0
	// VolumeFlat is the distinguished "flat" zero volume (spec.md §3).
	VolumeFlat = 0

	// BalanceMin/BalanceMax bound the signed internal balance value;
	// negative is left, positive is right (spec.md §4.5 Zones).
	BalanceMin = -40
	BalanceMax = 40

	// ToneMin/ToneMax bound bass and treble levels; ToneFlat is the
	// substituted default when a combined tone request needs a value the
	// model doesn't have yet (spec.md §4.5 Zones).
	ToneMin  = -10
	ToneMax  = 10
	ToneFlat = 0

	// EqualizerBandCount is the fixed number of bands in both a zone's
	// per-band equalizer and an equalizer preset (spec.md §3).
	EqualizerBandCount = 10
	EqualizerBandMin   = -10
	EqualizerBandMax   = 10

	// CrossoverMin/CrossoverMax bound the highpass/lowpass crossover
	// frequency, in Hz.
	CrossoverMin = 40
	CrossoverMax = 500

	// FrontPanelBrightnessMin/Max bound the front panel brightness level.
	FrontPanelBrightnessMin = 0
	FrontPanelBrightnessMax = 7

	// NameMaxLength bounds display name length (spec.md §3: "length-bounded").
	NameMaxLength = 32
)

// SoundMode enumerates how a zone derives its audio coloring (spec.md §3).
type SoundMode int

const (
	SoundModeZoneEqualizer SoundMode = iota
	SoundModePresetEqualizer
	SoundModeTone
	SoundModeHighpass
	SoundModeLowpass
	SoundModeDisabled
)

func (m SoundMode) String() string {
	switch m {
	case SoundModeZoneEqualizer:
		return "zone-equalizer"
	case SoundModePresetEqualizer:
		return "preset-equalizer"
	case SoundModeTone:
		return "tone"
	case SoundModeHighpass:
		return "highpass"
	case SoundModeLowpass:
		return "lowpass"
	case SoundModeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
