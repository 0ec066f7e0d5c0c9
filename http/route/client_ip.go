package route

import (
	"net/http"
	"net/netip"
	"strings"
)

// IANA defined IPv4 non-public ranges.
var privateRanges = []netip.Prefix{
	netip.MustParsePrefix("10.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("172.16.0.0/12"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.168.0.0/16"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// ClientIP parses the "X-Forwarded-For" and "X-Real-Ip" headers for
// the public IP address the request came from.
//
// Addresses in non-public ranges are skipped. Without a usable
// address, ClientIP reports "0.0.0.0".
func ClientIP(hm http.Header) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addresses := strings.Split(hm.Get(h), ",")
		// NOTE: march from right to left until we get a public address,
		// that will be the address right before our proxy.
		for i := len(addresses) - 1; i >= 0; i-- {
			ip := strings.TrimSpace(addresses[i])
			addr, err := netip.ParseAddr(ip)
			if err != nil || !addr.IsGlobalUnicast() || isPrivate(addr) {
				continue
			}
			return ip
		}
	}

	return "0.0.0.0"
}

// isPrivate checks whether addr is in a private IPv4 subnet.
func isPrivate(addr netip.Addr) bool {
	for _, r := range privateRanges {
		if r.Contains(addr.Unmap()) {
			return true
		}
	}
	return false
}
