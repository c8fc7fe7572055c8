package proto

import "regexp"

// FrontPanel and Infrared wire vocabulary (spec.md §4.5, §6). Both expose a
// documented protocol quirk: the query form's reply omits the expected
// query-complete echo, returning only the state record (spec.md §6, §9
// Open Questions). The proxy's notification handlers must accept the bare
// state form as satisfying the outstanding query, not just a paired
// state-plus-echo.
var (
	ReqFrontPanelQueryLocked = regexp.MustCompile(`^QFPL$`)
	ReqFrontPanelSetLocked   = regexp.MustCompile(`^FPL([01])$`)
	ReqFrontPanelSetBrightness = regexp.MustCompile(`^FPB([0-7])$`)
	ReqFrontPanelQueryBrightness = regexp.MustCompile(`^QFPB$`)

	ReqInfraredQueryDisabled = regexp.MustCompile(`^QIRL$`)
	ReqInfraredSetDisabled   = regexp.MustCompile(`^IRL([01])$`)
)

var (
	RespFrontPanelLocked     = regexp.MustCompile(`^FPL([01])$`)
	RespFrontPanelBrightness = regexp.MustCompile(`^FPB([0-7])$`)
	RespInfraredDisabled     = regexp.MustCompile(`^IRL([01])$`)
)

// FormatFrontPanelLocked renders the FPL<0|1> form.
func FormatFrontPanelLocked(locked bool) []byte {
	if locked {
		return []byte("FPL1")
	}
	return []byte("FPL0")
}

// FormatFrontPanelBrightness renders the FPB<0..7> form.
func FormatFrontPanelBrightness(level int) []byte {
	return []byte("FPB" + itoa(level))
}

// FormatInfraredDisabled renders the IRL<0|1> form.
func FormatInfraredDisabled(disabled bool) []byte {
	if disabled {
		return []byte("IRL1")
	}
	return []byte("IRL0")
}
