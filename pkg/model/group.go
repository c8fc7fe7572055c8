package model

import (
	"fmt"
	"sort"

	"github.com/openhlx/hlxproxyd/internal/protoerr"
)

// Group mirrors one zone group (spec.md §3 GroupModel). Groups are
// stateless aggregates: the member set is real local state, but mute,
// volume, and source are simply the last value echoed to an originating
// client (spec.md §4.5 Groups) — the actual effect is carried out by the
// Zones controller against each member zone.
type Group struct {
	id Identifier

	name    Field[string]
	mute    Field[bool]
	volume  Field[int]
	source  Field[Identifier]
	members map[Identifier]struct{}
}

// NewGroup constructs an empty group with the given identifier.
func NewGroup(id Identifier) *Group {
	return &Group{id: id, members: make(map[Identifier]struct{})}
}

// ID returns the group's identifier.
func (g *Group) ID() Identifier { return g.id }

// Name returns the group's display name.
func (g *Group) Name() string { return g.name.Value() }

// SetName sets the display name.
func (g *Group) SetName(name string) (bool, error) {
	if len(name) == 0 || len(name) > NameMaxLength {
		return false, fmt.Errorf("%w: group name length %d", protoerr.ErrOutOfRange, len(name))
	}
	return g.name.Set(name), nil
}

// Muted returns the last mute state echoed to a client.
func (g *Group) Muted() bool { return g.mute.Value() }

// SetMute records the mute state to echo back (spec.md §4.5 Groups).
func (g *Group) SetMute(muted bool) bool { return g.mute.Set(muted) }

// Volume returns the last volume level echoed to a client.
func (g *Group) Volume() int { return g.volume.Value() }

// SetVolume records the volume level to echo back.
func (g *Group) SetVolume(level int) (bool, error) {
	if level < VolumeMin || level > VolumeMax {
		return false, fmt.Errorf("%w: volume %d", protoerr.ErrOutOfRange, level)
	}
	return g.volume.Set(level), nil
}

// Source returns the last source identifier echoed to a client.
func (g *Group) Source() Identifier { return g.source.Value() }

// SetSource records the source identifier to echo back.
func (g *Group) SetSource(source Identifier) bool { return g.source.Set(source) }

// Members returns the group's member zone identifiers, ascending.
func (g *Group) Members() []Identifier {
	ids := make([]Identifier, 0, len(g.members))
	for id := range g.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// HasMember reports whether a zone is a member of the group.
func (g *Group) HasMember(zone Identifier) bool {
	_, ok := g.members[zone]
	return ok
}

// AddMember adds a zone to the group's member set. Reports changed=false
// if the zone was already a member.
func (g *Group) AddMember(zone Identifier) bool {
	if _, ok := g.members[zone]; ok {
		return false
	}
	g.members[zone] = struct{}{}
	return true
}

// RemoveMember removes a zone from the group's member set. Returns
// ErrNotFound if the zone was not a member (spec.md §7: "Zone/group/preset
// not found").
func (g *Group) RemoveMember(zone Identifier) (bool, error) {
	if _, ok := g.members[zone]; !ok {
		return false, fmt.Errorf("%w: zone %d not a member of group %d", protoerr.ErrNotFound, zone, g.id)
	}
	delete(g.members, zone)
	return true, nil
}

// ClearMembers empties the member set. Reports changed=false if it was
// already empty.
func (g *Group) ClearMembers() bool {
	if len(g.members) == 0 {
		return false
	}
	g.members = make(map[Identifier]struct{})
	return true
}
