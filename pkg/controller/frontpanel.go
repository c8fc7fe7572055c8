package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// FrontPanel implements the FrontPanelController (spec.md §4.5
// FrontPanel): a device singleton with two writable attributes, lock
// state and brightness.
type FrontPanel struct {
	Basis
	model *model.Model
}

// NewFrontPanel constructs a front panel controller over the shared model.
func NewFrontPanel(basis Basis, m *model.Model) *FrontPanel {
	return &FrontPanel{Basis: basis, model: m}
}

// Init registers front panel request patterns and notifications.
func (c *FrontPanel) Init() {
	c.Server.RegisterRequest("frontpanel:query-locked", proto.ReqFrontPanelQueryLocked, 1, c.onQueryLocked)
	c.Server.RegisterRequest("frontpanel:set-locked", proto.ReqFrontPanelSetLocked, 2, c.onSetLocked)
	c.Server.RegisterRequest("frontpanel:query-brightness", proto.ReqFrontPanelQueryBrightness, 1, c.onQueryBrightness)
	c.Server.RegisterRequest("frontpanel:set-brightness", proto.ReqFrontPanelSetBrightness, 2, c.onSetBrightness)

	c.Client.RegisterNotification("frontpanel:locked", proto.RespFrontPanelLocked, 2, c.notifyLocked)
	c.Client.RegisterNotification("frontpanel:brightness", proto.RespFrontPanelBrightness, 2, c.notifyBrightness)
}

// onQueryLocked and onQueryBrightness answer from the model when the
// attribute is initialized and otherwise forward the query upstream as an
// observation. The forwarded query completes on the state record itself,
// since the query reply omits its own completion echo (spec.md §6, §9 Open
// Questions) and there is no separate terminator to wait for.
func (c *FrontPanel) onQueryLocked(conn servercm.Connection, body []byte, groups []string) {
	panel := c.model.FrontPanel()
	if panel.LockedInitialized() {
		c.Server.SendResponse(conn, proto.FormatFrontPanelLocked(panel.Locked()))
		return
	}
	c.ProxyObservation(conn, body, proto.RespFrontPanelLocked, 2, c.notifyLocked, func(conn servercm.Connection, _ []byte) {
		c.Server.SendResponse(conn, proto.FormatFrontPanelLocked(c.model.FrontPanel().Locked()))
	})
}

func (c *FrontPanel) onSetLocked(conn servercm.Connection, body []byte, groups []string) {
	c.ProxyMutation(conn, body, proto.RespFrontPanelLocked, 2, c.notifyLocked)
}

func (c *FrontPanel) onQueryBrightness(conn servercm.Connection, body []byte, groups []string) {
	panel := c.model.FrontPanel()
	if panel.BrightnessInitialized() {
		c.Server.SendResponse(conn, proto.FormatFrontPanelBrightness(panel.Brightness()))
		return
	}
	c.ProxyObservation(conn, body, proto.RespFrontPanelBrightness, 2, c.notifyBrightness, func(conn servercm.Connection, _ []byte) {
		c.Server.SendResponse(conn, proto.FormatFrontPanelBrightness(c.model.FrontPanel().Brightness()))
	})
}

func (c *FrontPanel) onSetBrightness(conn servercm.Connection, body []byte, groups []string) {
	c.ProxyMutation(conn, body, proto.RespFrontPanelBrightness, 2, c.notifyBrightness)
}

func (c *FrontPanel) notifyLocked(body []byte, groups []string) {
	c.model.FrontPanel().SetLocked(groups[1] == "1")
}

func (c *FrontPanel) notifyBrightness(body []byte, groups []string) {
	level, err := proto.ParseInt(groups[1])
	if err != nil {
		return
	}
	c.model.FrontPanel().SetBrightness(level)
}

// QueryCurrentConfiguration synthesizes the front panel's current state for
// the Configuration controller's QX dump.
func (c *FrontPanel) QueryCurrentConfiguration() []byte {
	panel := c.model.FrontPanel()
	var out []byte
	out = append(out, proto.Wrap(proto.FormatFrontPanelLocked(panel.Locked()))...)
	out = append(out, proto.Wrap(proto.FormatFrontPanelBrightness(panel.Brightness()))...)
	return out
}
