package core

import (
	"context"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/dns"
	"github.com/rs/zerolog"
)

// BuildCurrent derives the observed record set from the live DNS records
// of every zone in the snapshot, keyed by record name. Duplicate names
// keep the last record observed.
func BuildCurrent(ctx context.Context, p provider, snap *Snapshot, logger zerolog.Logger) (dns.RecordSet, error) {
	current := make(dns.RecordSet)
	zones, err := snap.Zones(ctx)
	if err != nil {
		return nil, err
	}
	for _, zone := range zones {
		logger.Info().Str("zone", zone.Name).Str("zone_id", zone.ID).Msg("Retrieving current records for zone")
		records, err := p.ListRecords(ctx, zone.ID)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			logger.Debug().Str("name", record.Name).Str("type", record.Type).Str("content", record.Content).Msg("Record in current state")
			current.Put(record.Name, dns.Record{
				ID:        record.ID,
				ZoneID:    record.ZoneID,
				Type:      record.Type,
				Content:   record.Content,
				Proxiable: record.Proxiable,
				Proxied:   record.Proxied,
				TTL:       record.TTL,
			})
		}
	}
	return current, nil
}
