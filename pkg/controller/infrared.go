package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Infrared implements the InfraredController (spec.md §4.5 Infrared): a
// device singleton with a single writable attribute, disabled.
type Infrared struct {
	Basis
	model *model.Model
}

// NewInfrared constructs an infrared controller over the shared model.
func NewInfrared(basis Basis, m *model.Model) *Infrared {
	return &Infrared{Basis: basis, model: m}
}

// Init registers infrared request patterns and notifications.
func (c *Infrared) Init() {
	c.Server.RegisterRequest("infrared:query-disabled", proto.ReqInfraredQueryDisabled, 1, c.onQueryDisabled)
	c.Server.RegisterRequest("infrared:set-disabled", proto.ReqInfraredSetDisabled, 2, c.onSetDisabled)

	c.Client.RegisterNotification("infrared:disabled", proto.RespInfraredDisabled, 2, c.notifyDisabled)
}

func (c *Infrared) onQueryDisabled(conn servercm.Connection, body []byte, groups []string) {
	ir := c.model.Infrared()
	if ir.DisabledInitialized() {
		c.Server.SendResponse(conn, proto.FormatInfraredDisabled(ir.Disabled()))
		return
	}
	c.ProxyObservation(conn, body, proto.RespInfraredDisabled, 2, c.notifyDisabled, func(conn servercm.Connection, _ []byte) {
		c.Server.SendResponse(conn, proto.FormatInfraredDisabled(c.model.Infrared().Disabled()))
	})
}

func (c *Infrared) onSetDisabled(conn servercm.Connection, body []byte, groups []string) {
	c.ProxyMutation(conn, body, proto.RespInfraredDisabled, 2, c.notifyDisabled)
}

func (c *Infrared) notifyDisabled(body []byte, groups []string) {
	c.model.Infrared().SetDisabled(groups[1] == "1")
}

// QueryCurrentConfiguration synthesizes infrared's current state for the
// Configuration controller's QX dump.
func (c *Infrared) QueryCurrentConfiguration() []byte {
	return proto.Wrap(proto.FormatInfraredDisabled(c.model.Infrared().Disabled()))
}
