package proto

import (
	"fmt"
	"regexp"
)

// Zone wire vocabulary (spec.md §4.5 Zones, §6). Table-specified forms
// (query, set volume, adjust volume, mute/unmute, set source, set balance,
// set tone, set EQ band, query preset) are reproduced bit-exact from
// spec.md §6. Forms spec.md names but does not give literal wire bytes for
// (bass/treble-only adjust, equalizer-preset assignment, highpass/lowpass
// crossover set, sound mode set, name set, source-all, volume-all,
// volume-fixed) follow the same `<concern-letter><action-letter><id>[,args]`
// shape the table's entries exhibit; see DESIGN.md for the naming
// convention this extrapolates.
//
// ZoneIDAll reserves identifier 0 as an "all zones" sentinel. The -all
// request forms (ReqZoneVolumeAll, ReqZoneSourceAll) carry no zone
// identifier, and no request or response form uses ZoneIDAll.
const (
	ZoneIDAll = 0
)

var (
	ReqZoneQuery        = regexp.MustCompile(`^QO([0-9]+)$`)
	ReqZoneQueryMute     = regexp.MustCompile(`^QOM([0-9]+)$`)
	ReqZoneQuerySource   = regexp.MustCompile(`^QOS([0-9]+)$`)
	ReqZoneQueryVolume   = regexp.MustCompile(`^QOV([0-9]+)$`)

	ReqZoneSetVolume    = regexp.MustCompile(`^VZ([0-9]+),(-?[0-9]+)$`)
	ReqZoneVolumeUp     = regexp.MustCompile(`^VU([0-9]+)$`)
	ReqZoneVolumeDown   = regexp.MustCompile(`^VD([0-9]+)$`)
	ReqZoneVolumeAll    = regexp.MustCompile(`^VA(-?[0-9]+)$`)
	ReqZoneVolumeFixed  = regexp.MustCompile(`^FZ([0-9]+),([01])$`)

	ReqZoneMute         = regexp.MustCompile(`^MZ([0-9]+)$`)
	ReqZoneUnmute       = regexp.MustCompile(`^MU([0-9]+)$`)
	ReqZoneMuteToggle   = regexp.MustCompile(`^MT([0-9]+)$`)

	ReqZoneSetSource    = regexp.MustCompile(`^CZ([0-9]+),([0-9]+)$`)
	ReqZoneSourceAll    = regexp.MustCompile(`^CA([0-9]+)$`)

	ReqZoneSetBalance   = regexp.MustCompile(`^BZ([0-9]+),([LR])([0-9]+)$`)
	ReqZoneBalanceUp    = regexp.MustCompile(`^BU([0-9]+)$`)
	ReqZoneBalanceDown  = regexp.MustCompile(`^BD([0-9]+)$`)

	ReqZoneSetTone      = regexp.MustCompile(`^TZ([0-9]+),(-?[0-9]+),(-?[0-9]+)$`)
	ReqZoneBassUp       = regexp.MustCompile(`^XU([0-9]+)$`)
	ReqZoneBassDown     = regexp.MustCompile(`^XD([0-9]+)$`)
	ReqZoneTrebleUp     = regexp.MustCompile(`^YU([0-9]+)$`)
	ReqZoneTrebleDown   = regexp.MustCompile(`^YD([0-9]+)$`)

	ReqZoneSetEQBand    = regexp.MustCompile(`^EZ([0-9]+),([0-9]+),(-?[0-9]+)$`)
	ReqZoneEQBandUp     = regexp.MustCompile(`^EU([0-9]+),([0-9]+)$`)
	ReqZoneEQBandDown   = regexp.MustCompile(`^ED([0-9]+),([0-9]+)$`)
	ReqZoneSetEQPreset  = regexp.MustCompile(`^ZP([0-9]+),([0-9]+)$`)

	ReqZoneSetHighpass  = regexp.MustCompile(`^HZ([0-9]+),([0-9]+)$`)
	ReqZoneSetLowpass   = regexp.MustCompile(`^LZ([0-9]+),([0-9]+)$`)

	ReqZoneSetSoundMode = regexp.MustCompile(`^DZ([0-9]+),([0-9]+)$`)
	ReqZoneSetName      = regexp.MustCompile(`^NZ([0-9]+),(.+)$`)

	// RespZoneQueryComplete is the terminator emitted after a synthesized
	// or upstream-forwarded zone observation (spec.md §6: "see per-zone
	// sub-fields below, then QO<n>").
	RespZoneQueryComplete = regexp.MustCompile(`^QO([0-9]+)$`)
	RespZoneVolume        = regexp.MustCompile(`^VOL([0-9]+),(-?[0-9]+)$`)
	RespZoneMute          = regexp.MustCompile(`^MUTE([01])([0-9]+)$`)
	RespZoneSource        = regexp.MustCompile(`^CHN([0-9]+),([0-9]+)$`)
	RespZoneBalance       = regexp.MustCompile(`^BAL([0-9]+),([LR])([0-9]+)$`)
	RespZoneTone          = regexp.MustCompile(`^TON([0-9]+),(-?[0-9]+),(-?[0-9]+)$`)
	RespZoneEQBand        = regexp.MustCompile(`^EQB([0-9]+),([0-9]+),(-?[0-9]+)$`)
	RespZoneEQPreset      = regexp.MustCompile(`^EQS([0-9]+),([0-9]+)$`)
	RespZoneHighpass      = regexp.MustCompile(`^HPF([0-9]+),([0-9]+)$`)
	RespZoneLowpass       = regexp.MustCompile(`^LPF([0-9]+),([0-9]+)$`)
	RespZoneSoundMode     = regexp.MustCompile(`^MD([0-9]+),([0-9]+)$`)
	RespZoneName          = regexp.MustCompile(`^NZ([0-9]+),(.+)$`)
	RespZoneVolumeFixed   = regexp.MustCompile(`^VF([0-9]+),([01])$`)

	RespZoneQueryMuteComplete   = regexp.MustCompile(`^QOM([0-9]+)$`)
	RespZoneQuerySourceComplete = regexp.MustCompile(`^QOS([0-9]+)$`)
	RespZoneQueryVolumeComplete = regexp.MustCompile(`^QOV([0-9]+)$`)
)

// FormatVolume renders the VOL<n>,<v> response/notification form.
func FormatVolume(zone, level int) []byte {
	return []byte(fmt.Sprintf("VOL%d,%d", zone, level))
}

// FormatMute renders the MUTE<state><n> response/notification form.
func FormatMute(zone int, muted bool) []byte {
	state := 0
	if muted {
		state = 1
	}
	return []byte(fmt.Sprintf("MUTE%d%d", state, zone))
}

// FormatSource renders the CHN<n>,<s> response/notification form.
func FormatSource(zone, source int) []byte {
	return []byte(fmt.Sprintf("CHN%d,%d", zone, source))
}

// EncodeBalance converts the model's signed balance value into the wire's
// channel-letter/magnitude pair (spec.md §4.5: "L <magnitude> ⇒ -magnitude,
// R <magnitude> ⇒ +magnitude").
func EncodeBalance(balance int) (channel byte, magnitude int) {
	if balance < 0 {
		return 'L', -balance
	}
	return 'R', balance
}

// DecodeBalance is the inverse of EncodeBalance.
func DecodeBalance(channel byte, magnitude int) int {
	if channel == 'L' {
		return -magnitude
	}
	return magnitude
}

// FormatBalance renders the BAL<n>,<L|R><mag> response/notification form.
func FormatBalance(zone, balance int) []byte {
	ch, mag := EncodeBalance(balance)
	return []byte(fmt.Sprintf("BAL%d,%c%d", zone, ch, mag))
}

// FormatTone renders the TON<n>,<bass>,<treble> response/notification form.
func FormatTone(zone, bass, treble int) []byte {
	return []byte(fmt.Sprintf("TON%d,%d,%d", zone, bass, treble))
}

// FormatEQBand renders the EQB<n>,<b>,<lvl> response/notification form.
func FormatEQBand(zone, band, level int) []byte {
	return []byte(fmt.Sprintf("EQB%d,%d,%d", zone, band, level))
}

// FormatEQPreset renders the EQS<n>,<p> response/notification form (a
// zone's sound mode switched to use stored preset p).
func FormatEQPreset(zone, preset int) []byte {
	return []byte(fmt.Sprintf("EQS%d,%d", zone, preset))
}

// FormatHighpass renders the HPF<n>,<freq> response/notification form.
func FormatHighpass(zone, freq int) []byte {
	return []byte(fmt.Sprintf("HPF%d,%d", zone, freq))
}

// FormatLowpass renders the LPF<n>,<freq> response/notification form.
func FormatLowpass(zone, freq int) []byte {
	return []byte(fmt.Sprintf("LPF%d,%d", zone, freq))
}

// FormatSoundMode renders the MD<n>,<mode> response/notification form.
func FormatSoundMode(zone, mode int) []byte {
	return []byte(fmt.Sprintf("MD%d,%d", zone, mode))
}

// FormatZoneName renders the NZ<n>,<name> response/notification form.
func FormatZoneName(zone int, name string) []byte {
	return []byte(fmt.Sprintf("NZ%d,%s", zone, name))
}

// FormatVolumeFixed renders the VF<n>,<0|1> response/notification form.
func FormatVolumeFixed(zone int, fixed bool) []byte {
	v := 0
	if fixed {
		v = 1
	}
	return []byte(fmt.Sprintf("VF%d,%d", zone, v))
}
