package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// IPResolver works out which address a request came from.
// X-Forwarded-For and X-Real-IP are only believed when the TCP peer is one of
// the trusted proxies; otherwise the peer address is the client.
type IPResolver struct {
	trusted []*net.IPNet
}

// NewIPResolver builds a resolver trusting the given proxy IPs or CIDR ranges.
// An empty list means forwarding headers are never used.
func NewIPResolver(proxies []string) (*IPResolver, error) {
	resolver := &IPResolver{}
	for _, proxy := range proxies {
		proxy = strings.TrimSpace(proxy)
		if proxy == "" {
			continue
		}

		if strings.Contains(proxy, "/") {
			_, network, err := net.ParseCIDR(proxy)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", proxy, err)
			}
			resolver.trusted = append(resolver.trusted, network)
			continue
		}

		ip := net.ParseIP(proxy)
		if ip == nil {
			return nil, fmt.Errorf("invalid trusted proxy %q", proxy)
		}
		bits := 8 * net.IPv6len
		if v4 := ip.To4(); v4 != nil {
			ip, bits = v4, 8*net.IPv4len
		}
		resolver.trusted = append(resolver.trusted, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return resolver, nil
}

// ClientIP returns the address identifying the caller of r.
// A nil resolver trusts no proxy.
func (res *IPResolver) ClientIP(r *http.Request) string {
	peer := peerHost(r.RemoteAddr)
	if res == nil || len(res.trusted) == 0 || !res.isTrusted(peer) {
		return peer
	}

	// Proxies append the address they saw, so walk from the right and stop
	// at the first hop that is not one of ours
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			ip := net.ParseIP(hop)
			if ip == nil {
				return peer
			}
			if !res.isTrusted(hop) {
				return ip.String()
			}
		}
	}

	if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
		return ip.String()
	}
	return peer
}

func (res *IPResolver) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, network := range res.trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// peerHost strips the port from a RemoteAddr
func peerHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
