package proto

import "regexp"

// EqualizerPreset wire vocabulary (spec.md §4.5 EqualizerPresets, §6). The
// preset-scoped band dump reuses the same `EQB<n>,<b>,<lvl>` wire shape a
// zone's own equalizer notification uses (spec.md §6's table names both
// with the identical literal form); which object family `n` indexes is
// determined by which request triggered the exchange, not by the response
// bytes themselves — this is a real protocol ambiguity the proxy resolves
// contextually rather than on the wire.
var (
	ReqPresetQuery     = regexp.MustCompile(`^QEP([0-9]+)$`)
	ReqPresetSetBand   = regexp.MustCompile(`^EP([0-9]+),([0-9]+),(-?[0-9]+)$`)
	ReqPresetBandUp    = regexp.MustCompile(`^EPU([0-9]+),([0-9]+)$`)
	ReqPresetBandDown  = regexp.MustCompile(`^EPD([0-9]+),([0-9]+)$`)
	ReqPresetSetName   = regexp.MustCompile(`^NEP([0-9]+),(.+)$`)
)

var (
	RespPresetQueryComplete = regexp.MustCompile(`^QEP([0-9]+)$`)
	RespPresetName          = regexp.MustCompile(`^NEP([0-9]+),(.+)$`)
)

// FormatPresetName renders the NEP<n>,<name> form.
func FormatPresetName(id int, name string) []byte {
	return []byte("NEP" + itoa(id) + "," + name)
}
