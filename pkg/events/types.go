package events

import "github.com/openhlx/hlxproxyd/pkg/model"

// GroupVolumeIntent is published when a client asks a group to set its
// volume (spec.md §4.5 Groups: "produce a state-change event that the
// Zones controller observes and translates into per-member zone
// mutations").
type GroupVolumeIntent struct {
	Group  model.Identifier
	Volume int
}

// GroupMuteIntent is published when a client asks a group to mute, unmute,
// or toggle mute.
type GroupMuteIntent struct {
	Group model.Identifier
	// Action is one of 'M' (set muted), 'U' (set unmuted), 'T' (toggle).
	Action byte
}

// GroupSourceIntent is published when a client asks a group to select a
// source.
type GroupSourceIntent struct {
	Group  model.Identifier
	Source model.Identifier
}

// ZoneChanged is published whenever a zone setter reports *changed*
// (spec.md §3 Invariants: "a notification is emitted to downstream
// observers iff the setter returned changed"). It is published for internal
// observers; nothing in this repository subscribes to it.
type ZoneChanged struct {
	Zone  model.Identifier
	Field string
}

// RefreshControllerDone is published each time one controller's Refresh
// step completes (spec.md §2 component 7: "emits per-controller
// progress").
type RefreshControllerDone struct {
	Controller string
}

// DidRefresh is published exactly once per refresh cycle, after the last
// controller's Refresh step completes (spec.md §3 Invariants).
type DidRefresh struct{}
