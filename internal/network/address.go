// Package network discovers the local address browsers use to reach the totoro client.
package network

import (
	"net"
)

// Interfaces lists the addresses of the host's network interfaces.
type Interfaces func() ([]net.Interface, error)

// ExternalIPv4 returns the first IPv4 address of an interface that is up and not a loopback,
// or fallback when there is none.
func ExternalIPv4(fallback string) string {
	return externalIPv4(net.Interfaces, fallback)
}

func externalIPv4(list Interfaces, fallback string) string {
	ifaces, err := list()
	if err != nil {
		return fallback
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		if ip := firstIPv4(addrs); ip != "" {
			return ip
		}
	}

	return fallback
}

func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}

		if ip == nil || ip.IsLoopback() {
			continue
		}
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String()
		}
	}

	return ""
}
