package proto

import "regexp"

// Network wire vocabulary (spec.md §4.5 Network, §6). No mutations are
// exposed; the proxy only ever reads this family from cached buffers
// populated at refresh or by unsolicited notification.
var (
	ReqNetworkQuery = regexp.MustCompile(`^QE$`)

	RespNetworkDHCP   = regexp.MustCompile(`^DHCP([01])$`)
	RespNetworkIP     = regexp.MustCompile(`^IP(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})$`)
	RespNetworkNetmask = regexp.MustCompile(`^NM(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})$`)
	RespNetworkGateway = regexp.MustCompile(`^GW(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})$`)
	RespNetworkMAC     = regexp.MustCompile(`^MAC([0-9A-Fa-f]{2}(?:-[0-9A-Fa-f]{2}){5})$`)
	RespNetworkSDDP    = regexp.MustCompile(`^SDDP([01])$`)
)

// FormatNetworkDHCP renders the DHCP<0|1> form.
func FormatNetworkDHCP(enabled bool) []byte {
	if enabled {
		return []byte("DHCP1")
	}
	return []byte("DHCP0")
}

// FormatNetworkIP renders the IP<a.b.c.d> form.
func FormatNetworkIP(addr string) []byte { return []byte("IP" + addr) }

// FormatNetworkNetmask renders the NM<a.b.c.d> form.
func FormatNetworkNetmask(mask string) []byte { return []byte("NM" + mask) }

// FormatNetworkGateway renders the GW<a.b.c.d> form.
func FormatNetworkGateway(gw string) []byte { return []byte("GW" + gw) }

// FormatNetworkMAC renders the MAC<xx-xx-xx-xx-xx-xx> form.
func FormatNetworkMAC(mac string) []byte { return []byte("MAC" + mac) }

// FormatNetworkSDDP renders the SDDP<0|1> form.
func FormatNetworkSDDP(enabled bool) []byte {
	if enabled {
		return []byte("SDDP1")
	}
	return []byte("SDDP0")
}

// FormatNetworkFull renders the direct-query bundle: DHCP, IP, NM, GW, MAC,
// SDDP, each as its own wire record, in the order spec.md §6 specifies.
func FormatNetworkFull(dhcp bool, ip, nm, gw, mac string, sddp bool) [][]byte {
	return [][]byte{
		FormatNetworkDHCP(dhcp),
		FormatNetworkIP(ip),
		FormatNetworkNetmask(nm),
		FormatNetworkGateway(gw),
		FormatNetworkMAC(mac),
		FormatNetworkSDDP(sddp),
	}
}

// FormatNetworkRestricted renders the configuration-dump bundle, which
// omits the MAC line (spec.md §6: "Configuration dump omits the MAC
// line").
func FormatNetworkRestricted(dhcp bool, ip, nm, gw string, sddp bool) [][]byte {
	return [][]byte{
		FormatNetworkDHCP(dhcp),
		FormatNetworkIP(ip),
		FormatNetworkNetmask(nm),
		FormatNetworkGateway(gw),
		FormatNetworkSDDP(sddp),
	}
}
