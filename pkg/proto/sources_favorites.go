package proto

import "regexp"

// Source and Favorite wire vocabulary (spec.md §4.5, §6). Both families are
// read-mostly with a single writable attribute (display name); the
// set-name request and the name notification/response share one wire form,
// as spec.md's worked idempotent-name example shows for EqualizerPresets
// (`NEP1,Jazz` used as both request and reply body).
var (
	ReqSourceQuery   = regexp.MustCompile(`^QS([0-9]+)$`)
	ReqSourceSetName = regexp.MustCompile(`^NS([0-9]+),(.+)$`)

	ReqFavoriteQuery   = regexp.MustCompile(`^QC([0-9]+)$`)
	ReqFavoriteSetName = regexp.MustCompile(`^NC([0-9]+),(.+)$`)
)

var (
	RespSourceName   = regexp.MustCompile(`^NS([0-9]+),(.+)$`)
	RespSourceQueryComplete = regexp.MustCompile(`^QS([0-9]+)$`)

	RespFavoriteName   = regexp.MustCompile(`^NC([0-9]+),(.+)$`)
	RespFavoriteQueryComplete = regexp.MustCompile(`^QC([0-9]+)$`)
)

// FormatSourceName renders the NS<n>,<name> form.
func FormatSourceName(id int, name string) []byte {
	return []byte("NS" + itoa(id) + "," + name)
}

// FormatFavoriteName renders the NC<n>,<name> form.
func FormatFavoriteName(id int, name string) []byte {
	return []byte("NC" + itoa(id) + "," + name)
}
