package core

import (
	"context"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/cloudflare"
	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/dns"
	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/util"
	"github.com/rs/zerolog"
)

// BuildDesired derives the target record set from the ingress rules of
// every active tunnel: one proxied CNAME per routed hostname, pointing at
// the tunnel's cfargotunnel endpoint. A hostname routed by more than one
// rule keeps the last rule seen. An ingress hostname whose apex domain
// matches no zone aborts the whole computation.
func BuildDesired(ctx context.Context, p provider, snap *Snapshot, logger zerolog.Logger) (dns.RecordSet, error) {
	desired := make(dns.RecordSet)
	tunnels, err := snap.Tunnels(ctx)
	if err != nil {
		return nil, err
	}
	for _, tunnel := range tunnels {
		logger.Info().Str("tunnel", tunnel.Name).Str("tunnel_id", tunnel.ID).Msg("Retrieving desired records for tunnel")
		cfg, err := p.GetTunnelConfiguration(ctx, tunnel.ID)
		if err != nil {
			return nil, err
		}
		routed := util.Filter(cfg.Ingress, func(rule cloudflare.IngressRule) bool {
			return rule.Hostname != ""
		})
		for _, rule := range routed {
			zoneID, err := snap.ZoneIDByName(ctx, dns.ApexDomain(rule.Hostname))
			if err != nil {
				return nil, err
			}
			overwrote := desired.Put(rule.Hostname, dns.Record{
				ZoneID:    zoneID,
				Type:      "CNAME",
				Content:   dns.TunnelContent(tunnel.ID),
				Proxiable: true,
				Proxied:   true,
				TTL:       dns.TTLAuto,
			})
			if overwrote {
				logger.Debug().Str("hostname", rule.Hostname).Msg("Duplicate ingress hostname, keeping last rule")
			}
		}
	}
	return desired, nil
}
