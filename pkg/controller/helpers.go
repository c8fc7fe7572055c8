package controller

import (
	"strconv"

	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
)

// itoaID formats an identifier for wire concatenation.
func itoaID(id model.Identifier) string {
	return strconv.Itoa(int(id))
}

// itoaInt formats a plain integer for wire concatenation.
func itoaInt(n int) string {
	return strconv.Itoa(n)
}

// atoi2 parses two wire integer groups at once, short-circuiting on the
// first error.
func atoi2(a, b string) (int, int, error) {
	x, err := proto.ParseInt(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := proto.ParseInt(b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
