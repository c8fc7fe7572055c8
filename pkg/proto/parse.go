package proto

import (
	"fmt"
	"strconv"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// ParseInt parses a decimal integer captured from a request or response
// body. A parse failure is a *bad-command* error (spec.md §7: "an embedded
// integer failed to parse").
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", protoerr.ErrBadCommand, s)
	}
	return n, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
