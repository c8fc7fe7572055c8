package proto

import (
	"fmt"
	"regexp"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// Registration binds a name and a compiled request/notification pattern to
// a handler value. The handler's type is generic, so the table can hold
// notification or request callbacks (spec.md §4.2 register_notification,
// §4.3 register_request). The client and server command managers do not use
// it; each keeps its own ordered list of registrations.
type Registration[H any] struct {
	Name           string
	Pattern        *regexp.Regexp
	ExpectedGroups int
	Handler        H
}

// Registry holds an ordered set of registrations and matches a record body
// against them in registration order, the first match winning (spec.md
// §4.3: "matched against registered request patterns in registration
// order; the first match invokes the handler").
type Registry[H any] struct {
	entries []Registration[H]
}

// NewRegistry constructs an empty registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{}
}

// Register appends a new pattern at the end of the match order. Pattern
// name must be unique within the registry; Register does not check this,
// mirroring the teacher's unchecked slice-append registration style
// (callers are internal controller-initialization code, not external
// input).
func (r *Registry[H]) Register(name string, pattern *regexp.Regexp, expectedGroups int, handler H) {
	r.entries = append(r.entries, Registration[H]{
		Name:           name,
		Pattern:        pattern,
		ExpectedGroups: expectedGroups,
		Handler:        handler,
	})
}

// Unregister removes the named registration, if present. Reports whether
// anything was removed.
func (r *Registry[H]) Unregister(name string) bool {
	for i, e := range r.entries {
		if e.Name == name {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of registered patterns.
func (r *Registry[H]) Len() int { return len(r.entries) }

// Match attempts every registered pattern in order against body. On the
// first pattern whose regex matches, it asserts the submatch count equals
// ExpectedGroups (spec.md §4.1: "match count doubles as a structural
// assertion") and returns the handler, the raw submatches (including the
// whole match at index 0), and true. A submatch-count mismatch returns
// protoerr.ErrBadCommand immediately rather than continuing to later
// patterns — a malformed match against the first pattern that recognizes
// the command shape is a command error, not a search failure. No pattern
// matching at all returns (zero, nil, false, nil); the caller is
// responsible for treating "no match" as bad-command in its own context
// (so it can add the originating controller name to the error).
func (r *Registry[H]) Match(body []byte) (H, []string, bool, error) {
	var zero H
	for _, e := range r.entries {
		groups := e.Pattern.FindSubmatch(body)
		if groups == nil {
			continue
		}
		if len(groups) != e.ExpectedGroups {
			return zero, nil, false, fmt.Errorf(
				"%w: pattern %q expected %d groups, got %d",
				protoerr.ErrBadCommand, e.Name, e.ExpectedGroups, len(groups))
		}
		strs := make([]string, len(groups))
		for i, g := range groups {
			strs[i] = string(g)
		}
		return e.Handler, strs, true, nil
	}
	return zero, nil, false, nil
}
