package dns

import (
	"strings"
)

// TunnelDomain is the fixed domain Cloudflare serves tunnel endpoints
// under. A CNAME whose content ends in it is tunnel-managed.
const TunnelDomain = "cfargotunnel.com"

// TunnelContent builds the CNAME target for a tunnel.
func TunnelContent(tunnelID string) string {
	return tunnelID + "." + TunnelDomain
}

// IsTunnelContent reports whether the record content points at a tunnel
// endpoint. Only such records are eligible for deletion by the reconciler.
func IsTunnelContent(content string) bool {
	return strings.HasSuffix(content, "."+TunnelDomain)
}

// ApexDomain strips the leftmost label from a hostname, yielding the
// domain whose zone should own the record: "api.foo.example.com" belongs
// to the "foo.example.com" zone. Returns "" when there is nothing left to
// own the name.
func ApexDomain(hostname string) string {
	_, apex, found := strings.Cut(hostname, ".")
	if !found {
		return ""
	}
	return apex
}
