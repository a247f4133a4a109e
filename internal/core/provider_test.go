package core

import (
	"context"
	"fmt"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/cloudflare"
)

// fakeProvider is an in-memory provider double. Mutations are captured in
// order for assertion; errors can be injected per operation.
type fakeProvider struct {
	zones          []cloudflare.Zone
	tunnels        []cloudflare.Tunnel
	tunnelConfigs  map[string]cloudflare.TunnelConfiguration
	recordsByZone  map[string][]cloudflare.DNSRecord
	listZonesErr   error
	listTunnelsErr error
	getConfigErr   error
	listRecordsErr error
	createErr      error
	patchErr       error
	deleteErr      error

	listZonesCalls   int
	listTunnelsCalls int

	created []createCall
	patched []patchCall
	deleted []deleteCall
}

type createCall struct {
	zoneID string
	params cloudflare.RecordParams
}

type patchCall struct {
	zoneID   string
	recordID string
	params   cloudflare.RecordParams
}

type deleteCall struct {
	zoneID   string
	recordID string
}

func (f *fakeProvider) ListZones(_ context.Context) ([]cloudflare.Zone, error) {
	f.listZonesCalls++
	return f.zones, f.listZonesErr
}

func (f *fakeProvider) ListActiveTunnels(_ context.Context) ([]cloudflare.Tunnel, error) {
	f.listTunnelsCalls++
	return f.tunnels, f.listTunnelsErr
}

func (f *fakeProvider) GetTunnelConfiguration(_ context.Context, tunnelID string) (cloudflare.TunnelConfiguration, error) {
	if f.getConfigErr != nil {
		return cloudflare.TunnelConfiguration{}, f.getConfigErr
	}
	cfg, ok := f.tunnelConfigs[tunnelID]
	if !ok {
		return cloudflare.TunnelConfiguration{}, fmt.Errorf("no configuration for tunnel %s", tunnelID)
	}
	return cfg, nil
}

func (f *fakeProvider) ListRecords(_ context.Context, zoneID string) ([]cloudflare.DNSRecord, error) {
	if f.listRecordsErr != nil {
		return nil, f.listRecordsErr
	}
	return f.recordsByZone[zoneID], nil
}

func (f *fakeProvider) CreateRecord(_ context.Context, zoneID string, params cloudflare.RecordParams) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, createCall{zoneID: zoneID, params: params})
	return nil
}

func (f *fakeProvider) PatchRecord(_ context.Context, zoneID, recordID string, params cloudflare.RecordParams) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patched = append(f.patched, patchCall{zoneID: zoneID, recordID: recordID, params: params})
	return nil
}

func (f *fakeProvider) DeleteRecord(_ context.Context, zoneID, recordID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, deleteCall{zoneID: zoneID, recordID: recordID})
	return nil
}
