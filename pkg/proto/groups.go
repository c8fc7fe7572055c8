package proto

import (
	"fmt"
	"regexp"
)

// Group wire vocabulary (spec.md §4.5 Groups). Groups are a stateless
// aggregate: member-set mutations and name changes are answered locally by
// echoing the request bytes back as the response (the device has no
// distinct group response grammar beyond acknowledging the request it was
// given — an Open Question resolution recorded in DESIGN.md). Group
// "broadcast intent" mutations (volume/mute/source/toggle) are likewise
// echoed to the originator while a typed state-change event drives the
// Zones controller to apply the change to every member (spec.md §9, §4.5).
//
// Mute state on group requests is spelled with the letter 'M'/'U'/'T'
// (set-muted / set-unmuted / toggle) rather than the zone family's numeric
// '0'/'1' (spec.md §6: "or character U/M in certain request forms (see
// Groups)").
var (
	ReqGroupAddZone    = regexp.MustCompile(`^AG([0-9]+),([0-9]+)$`)
	ReqGroupRemoveZone = regexp.MustCompile(`^RG([0-9]+),([0-9]+)$`)
	ReqGroupClearZones = regexp.MustCompile(`^CG([0-9]+)$`)

	ReqGroupSetVolume = regexp.MustCompile(`^VG([0-9]+),(-?[0-9]+)$`)
	ReqGroupSetMute   = regexp.MustCompile(`^MG([0-9]+),([MUT])$`)
	ReqGroupSetSource = regexp.MustCompile(`^SG([0-9]+),([0-9]+)$`)
	ReqGroupSetName   = regexp.MustCompile(`^NG([0-9]+),(.+)$`)

	ReqGroupQuery = regexp.MustCompile(`^QG([0-9]+)$`)
)

// RespGroupQueryComplete is the terminator for a synthesized group
// observation.
var RespGroupQueryComplete = regexp.MustCompile(`^QG([0-9]+)$`)

// FormatGroupName renders the NG<n>,<name> response form.
func FormatGroupName(group int, name string) string {
	return fmt.Sprintf("NG%d,%s", group, name)
}

// FormatGroupMember renders the AG<n>,<z> membership-echo form used when
// synthesizing a group's full state locally.
func FormatGroupMember(group, zone int) string {
	return fmt.Sprintf("AG%d,%d", group, zone)
}
