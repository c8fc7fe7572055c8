package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/model"
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Network implements the NetworkController (spec.md §4.5 Network): a
// read-only device singleton populated only by refresh or unsolicited
// notification, never by a client mutation.
type Network struct {
	Basis
	model *model.Model
}

// NewNetwork constructs a network controller over the shared model.
func NewNetwork(basis Basis, m *model.Model) *Network {
	return &Network{Basis: basis, model: m}
}

// Init registers the network query request and each field's notification.
// The device answers QE with six distinct records in a fixed order
// (spec.md §6); SDDP is always last, so the SDDP notification also serves
// as the exchange's completion pattern when QE is forwarded upstream.
func (c *Network) Init() {
	c.Server.RegisterRequest("network:query", proto.ReqNetworkQuery, 1, c.onQuery)

	c.Client.RegisterNotification("network:dhcp", proto.RespNetworkDHCP, 2, c.notifyDHCP)
	c.Client.RegisterNotification("network:ip", proto.RespNetworkIP, 2, c.notifyIP)
	c.Client.RegisterNotification("network:netmask", proto.RespNetworkNetmask, 2, c.notifyNetmask)
	c.Client.RegisterNotification("network:gateway", proto.RespNetworkGateway, 2, c.notifyGateway)
	c.Client.RegisterNotification("network:mac", proto.RespNetworkMAC, 2, c.notifyMAC)
	c.Client.RegisterNotification("network:sddp", proto.RespNetworkSDDP, 2, c.notifySDDP)
}

func (c *Network) onQuery(conn servercm.Connection, body []byte, groups []string) {
	net := c.model.Network()
	if net.Initialized() {
		c.sendFull(conn)
		return
	}
	c.ProxyObservation(conn, body, proto.RespNetworkSDDP, 2, c.notifySDDP, func(conn servercm.Connection, _ []byte) {
		c.sendFull(conn)
	})
}

func (c *Network) sendFull(conn servercm.Connection) {
	net := c.model.Network()
	for _, line := range proto.FormatNetworkFull(
		net.DHCPEnabled(), net.IPv4Address(), net.IPv4Netmask(), net.IPv4Gateway(), net.MAC(), net.SDDPEnabled(),
	) {
		c.Server.SendResponse(conn, line)
	}
}

func (c *Network) notifyDHCP(body []byte, groups []string) {
	c.model.Network().SetDHCPEnabled(groups[1] == "1")
}

func (c *Network) notifyIP(body []byte, groups []string) {
	c.model.Network().SetIPv4Address(groups[1])
}

func (c *Network) notifyNetmask(body []byte, groups []string) {
	c.model.Network().SetIPv4Netmask(groups[1])
}

func (c *Network) notifyGateway(body []byte, groups []string) {
	c.model.Network().SetIPv4Gateway(groups[1])
}

func (c *Network) notifyMAC(body []byte, groups []string) {
	c.model.Network().SetMAC(groups[1])
}

func (c *Network) notifySDDP(body []byte, groups []string) {
	c.model.Network().SetSDDPEnabled(groups[1] == "1")
}

// QueryCurrentConfiguration synthesizes the restricted (MAC-omitted)
// network bundle for the Configuration controller's QX dump (spec.md §6:
// "Configuration dump omits the MAC line").
func (c *Network) QueryCurrentConfiguration() []byte {
	net := c.model.Network()
	var out []byte
	for _, line := range proto.FormatNetworkRestricted(
		net.DHCPEnabled(), net.IPv4Address(), net.IPv4Netmask(), net.IPv4Gateway(), net.SDDPEnabled(),
	) {
		out = append(out, proto.Wrap(line)...)
	}
	return out
}
