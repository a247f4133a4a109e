package core

import (
	"context"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/cloudflare"
)

type provider interface {
	ListZones(ctx context.Context) ([]cloudflare.Zone, error)
	ListRecords(ctx context.Context, zoneID string) ([]cloudflare.DNSRecord, error)
	ListActiveTunnels(ctx context.Context) ([]cloudflare.Tunnel, error)
	GetTunnelConfiguration(ctx context.Context, tunnelID string) (cloudflare.TunnelConfiguration, error)
	CreateRecord(ctx context.Context, zoneID string, params cloudflare.RecordParams) error
	PatchRecord(ctx context.Context, zoneID, recordID string, params cloudflare.RecordParams) error
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}
