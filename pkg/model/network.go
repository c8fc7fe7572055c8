package model

// Network mirrors the device's network interface state (spec.md §3
// NetworkModel). No mutations are exposed (spec.md §4.5 Network); every
// field is populated only by the Refresh bootstrap walk or an unsolicited
// notification and then served from cache.
type Network struct {
	dhcpEnabled Field[bool]
	ipv4Address Field[string]
	ipv4Netmask Field[string]
	ipv4Gateway Field[string]
	mac         Field[string]
	sddpEnabled Field[bool]
}

// NewNetwork constructs a network model with default values.
func NewNetwork() *Network { return &Network{} }

// DHCPEnabled returns whether DHCPv4 is enabled.
func (n *Network) DHCPEnabled() bool { return n.dhcpEnabled.Value() }

// SetDHCPEnabled sets the DHCPv4 enabled flag.
func (n *Network) SetDHCPEnabled(enabled bool) bool { return n.dhcpEnabled.Set(enabled) }

// IPv4Address returns the IPv4 address.
func (n *Network) IPv4Address() string { return n.ipv4Address.Value() }

// SetIPv4Address sets the IPv4 address.
func (n *Network) SetIPv4Address(addr string) bool { return n.ipv4Address.Set(addr) }

// IPv4Netmask returns the IPv4 netmask.
func (n *Network) IPv4Netmask() string { return n.ipv4Netmask.Value() }

// SetIPv4Netmask sets the IPv4 netmask.
func (n *Network) SetIPv4Netmask(mask string) bool { return n.ipv4Netmask.Set(mask) }

// IPv4Gateway returns the IPv4 gateway.
func (n *Network) IPv4Gateway() string { return n.ipv4Gateway.Value() }

// SetIPv4Gateway sets the IPv4 gateway.
func (n *Network) SetIPv4Gateway(gw string) bool { return n.ipv4Gateway.Set(gw) }

// MAC returns the Ethernet MAC address. Immutable device state: once set at
// refresh, it is never expected to change again without a reboot outside
// this protocol's scope (SPEC_FULL.md §C.6).
func (n *Network) MAC() string { return n.mac.Value() }

// SetMAC sets the Ethernet MAC address.
func (n *Network) SetMAC(mac string) bool { return n.mac.Set(mac) }

// SDDPEnabled returns whether SDDP is enabled.
func (n *Network) SDDPEnabled() bool { return n.sddpEnabled.Value() }

// SetSDDPEnabled sets the SDDP enabled flag.
func (n *Network) SetSDDPEnabled(enabled bool) bool { return n.sddpEnabled.Set(enabled) }

// Initialized reports whether every field needed to synthesize a QE/QX
// reply locally has been populated.
func (n *Network) Initialized() bool {
	return n.dhcpEnabled.Initialized() &&
		n.ipv4Address.Initialized() &&
		n.ipv4Netmask.Initialized() &&
		n.ipv4Gateway.Initialized() &&
		n.mac.Initialized() &&
		n.sddpEnabled.Initialized()
}
