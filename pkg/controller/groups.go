package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/events"
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Groups implements the GroupsController (spec.md §4.5 Groups): a
// stateless aggregate over zones. Membership is purely local state (there
// is nothing to forward upstream for it); volume/mute/source changes are
// recorded as the value to echo back and published as a typed intent event
// the Zones controller applies to every member zone.
type Groups struct {
	Basis
	model *model.Model
}

// NewGroups constructs a groups controller over the shared model.
func NewGroups(basis Basis, m *model.Model) *Groups {
	return &Groups{Basis: basis, model: m}
}

// Init registers every group request pattern on the server command
// manager. Groups has no upstream notification vocabulary of its own: the
// device has no native concept of a group (spec.md §4.5 Groups), so there
// is nothing for the client command manager to listen for.
func (c *Groups) Init() {
	c.Server.RegisterRequest("group:add-zone", proto.ReqGroupAddZone, 3, c.onAddZone)
	c.Server.RegisterRequest("group:remove-zone", proto.ReqGroupRemoveZone, 3, c.onRemoveZone)
	c.Server.RegisterRequest("group:clear-zones", proto.ReqGroupClearZones, 2, c.onClearZones)
	c.Server.RegisterRequest("group:set-volume", proto.ReqGroupSetVolume, 3, c.onSetVolume)
	c.Server.RegisterRequest("group:set-mute", proto.ReqGroupSetMute, 3, c.onSetMute)
	c.Server.RegisterRequest("group:set-source", proto.ReqGroupSetSource, 3, c.onSetSource)
	c.Server.RegisterRequest("group:set-name", proto.ReqGroupSetName, 3, c.onSetName)
	c.Server.RegisterRequest("group:query", proto.ReqGroupQuery, 2, c.onQuery)
}

func (c *Groups) resolve(conn servercm.Connection, idGroup string) (*model.Group, bool) {
	n, err := proto.ParseInt(idGroup)
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return nil, false
	}
	group, err := c.model.Group(model.Identifier(n))
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return nil, false
	}
	return group, true
}

func (c *Groups) onAddZone(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	zoneID, err := proto.ParseInt(groups[2])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if err := c.model.ZoneRange().Validate(model.Identifier(zoneID)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	group.AddMember(model.Identifier(zoneID))
	c.Server.SendResponse(conn, body)
}

func (c *Groups) onRemoveZone(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	zoneID, err := proto.ParseInt(groups[2])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if _, err := group.RemoveMember(model.Identifier(zoneID)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.Server.SendResponse(conn, body)
}

func (c *Groups) onClearZones(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	group.ClearMembers()
	c.Server.SendResponse(conn, body)
}

// onSetVolume, onSetMute, and onSetSource answer the originating client
// immediately by echoing the request (spec.md §4.5 Groups: the group's own
// state is just the last value echoed), then publish a typed intent event.
// The Zones controller subscribes to these and applies the change to every
// member zone, each producing its own per-zone broadcast (spec.md §8
// scenario 2).
func (c *Groups) onSetVolume(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	level, err := proto.ParseInt(groups[2])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if _, err := group.SetVolume(level); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.Server.SendResponse(conn, body)
	events.Publish(c.Bus, events.GroupVolumeIntent{Group: group.ID(), Volume: level})
}

func (c *Groups) onSetMute(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	action := groups[2][0]
	switch action {
	case 'M':
		group.SetMute(true)
	case 'U':
		group.SetMute(false)
	case 'T':
		group.SetMute(!group.Muted())
	}
	c.Server.SendResponse(conn, body)
	events.Publish(c.Bus, events.GroupMuteIntent{Group: group.ID(), Action: action})
}

func (c *Groups) onSetSource(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	source, err := proto.ParseInt(groups[2])
	if err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	if err := c.model.SourceRange().Validate(model.Identifier(source)); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	group.SetSource(model.Identifier(source))
	c.Server.SendResponse(conn, body)
	events.Publish(c.Bus, events.GroupSourceIntent{Group: group.ID(), Source: model.Identifier(source)})
}

func (c *Groups) onSetName(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	if _, err := group.SetName(groups[2]); err != nil {
		c.Server.SendErrorResponse(conn)
		return
	}
	c.Server.SendResponse(conn, body)
}

func (c *Groups) onQuery(conn servercm.Connection, body []byte, groups []string) {
	group, ok := c.resolve(conn, groups[1])
	if !ok {
		return
	}
	id := int(group.ID())
	c.Server.SendResponse(conn, []byte(proto.FormatGroupName(id, group.Name())))
	c.Server.SendResponse(conn, proto.FormatVolume(id, group.Volume()))
	c.Server.SendResponse(conn, proto.FormatMute(id, group.Muted()))
	c.Server.SendResponse(conn, proto.FormatSource(id, int(group.Source())))
	for _, zone := range group.Members() {
		c.Server.SendResponse(conn, []byte(proto.FormatGroupMember(id, int(zone))))
	}
	c.Server.SendResponse(conn, []byte("QG"+itoaInt(id)))
}

// QueryCurrentConfiguration synthesizes every group's current state for the
// Configuration controller's QX dump (spec.md §4.5 Configuration).
func (c *Groups) QueryCurrentConfiguration() []byte {
	var out []byte
	for _, group := range c.model.Groups() {
		id := int(group.ID())
		out = append(out, proto.Wrap([]byte(proto.FormatGroupName(id, group.Name())))...)
		out = append(out, proto.Wrap(proto.FormatVolume(id, group.Volume()))...)
		out = append(out, proto.Wrap(proto.FormatMute(id, group.Muted()))...)
		out = append(out, proto.Wrap(proto.FormatSource(id, int(group.Source())))...)
		for _, zone := range group.Members() {
			out = append(out, proto.Wrap([]byte(proto.FormatGroupMember(id, int(zone))))...)
		}
	}
	return out
}

// SubscribeZoneApplication wires the Zones controller to this controller's
// broadcast-intent events, so a group mutation fans out to every member
// zone (spec.md §8 scenario 2, §9 Open Questions).
func SubscribeZoneApplication(bus *events.Bus, groupModel *model.Model, zones *Zones) {
	events.Subscribe(bus, func(e events.GroupVolumeIntent) {
		group, err := groupModel.Group(e.Group)
		if err != nil {
			return
		}
		for _, zone := range group.Members() {
			zones.ApplyVolume(zone, e.Volume)
		}
	})
	events.Subscribe(bus, func(e events.GroupMuteIntent) {
		group, err := groupModel.Group(e.Group)
		if err != nil {
			return
		}
		for _, zone := range group.Members() {
			zones.ApplyMute(zone, e.Action)
		}
	})
	events.Subscribe(bus, func(e events.GroupSourceIntent) {
		group, err := groupModel.Group(e.Group)
		if err != nil {
			return
		}
		for _, zone := range group.Members() {
			zones.ApplySource(zone, e.Source)
		}
	})
}
