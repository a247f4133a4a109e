package core

import (
	"context"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/cloudflare"
)

// Snapshot holds the run-scoped view of the account: zones and tunnels
// are fetched at most once and never invalidated within the run, so the
// builders observe a single consistent state even if the provider's
// underlying state changes mid-run. Construct one per run; there is no
// run-to-run persistence.
type Snapshot struct {
	provider provider

	zones     []cloudflare.Zone
	haveZones bool

	tunnels     []cloudflare.Tunnel
	haveTunnels bool

	zoneIDByName map[string]string
}

func NewSnapshot(p provider) *Snapshot {
	return &Snapshot{
		provider:     p,
		zoneIDByName: make(map[string]string),
	}
}

// Zones returns all zones visible to the account, fetching on first use.
func (s *Snapshot) Zones(ctx context.Context) ([]cloudflare.Zone, error) {
	if !s.haveZones {
		zones, err := s.provider.ListZones(ctx)
		if err != nil {
			return nil, err
		}
		s.zones = zones
		s.haveZones = true
	}
	return s.zones, nil
}

// Tunnels returns the account's active tunnels, fetching on first use.
func (s *Snapshot) Tunnels(ctx context.Context) ([]cloudflare.Tunnel, error) {
	if !s.haveTunnels {
		tunnels, err := s.provider.ListActiveTunnels(ctx)
		if err != nil {
			return nil, err
		}
		s.tunnels = tunnels
		s.haveTunnels = true
	}
	return s.tunnels, nil
}

// ZoneIDByName resolves a zone name to its id by exact match over the
// cached zone list. Lookups are memoized per name.
func (s *Snapshot) ZoneIDByName(ctx context.Context, name string) (string, error) {
	if id, ok := s.zoneIDByName[name]; ok {
		return id, nil
	}
	zones, err := s.Zones(ctx)
	if err != nil {
		return "", err
	}
	for _, zone := range zones {
		if zone.Name == name {
			s.zoneIDByName[name] = zone.ID
			return zone.ID, nil
		}
	}
	return "", &ZoneNotFoundError{Zone: name}
}
