package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/cloudflare"
	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/dns"
	"github.com/rs/zerolog"
)

// Confirm decides whether a batch of mutations may run. It receives a
// short description and the affected hostnames. Declining skips that
// batch only; the run continues with the next one.
type Confirm func(description string, hostnames []string) (bool, error)

// SyncEngine runs one reconciliation: build desired and current state,
// diff, then apply the create, update and delete batches in order, each
// behind the confirm gate. All provider calls are sequential; there is
// exactly one outstanding call at a time.
type SyncEngine struct {
	logger   zerolog.Logger
	provider provider
	confirm  Confirm
}

func NewSyncEngine(logger zerolog.Logger, p provider, confirm Confirm) *SyncEngine {
	return &SyncEngine{
		logger:   logger,
		provider: p,
		confirm:  confirm,
	}
}

func (se *SyncEngine) Run(ctx context.Context) error {
	se.logger.Info().Msg("Starting reconciliation")
	snap := NewSnapshot(se.provider)

	desired, err := BuildDesired(ctx, se.provider, snap, se.logger)
	if err != nil {
		return fmt.Errorf("building desired state: %w", err)
	}
	current, err := BuildCurrent(ctx, se.provider, snap, se.logger)
	if err != nil {
		return fmt.Errorf("building current state: %w", err)
	}

	plan := Reconcile(desired, current)

	if err := se.applyCreate(ctx, plan.Create); err != nil {
		return err
	}
	if err := se.applyUpdate(ctx, plan.Update); err != nil {
		return err
	}
	if err := se.applyDelete(ctx, plan.Delete); err != nil {
		return err
	}
	se.logger.Info().Msg("Reconciliation finished")
	return nil
}

// recordParams builds the mutation payload: every record field except id
// and zone id, plus the hostname as the record name.
func recordParams(hostname string, r dns.Record) cloudflare.RecordParams {
	return cloudflare.RecordParams{
		Name:      hostname,
		Type:      r.Type,
		Content:   r.Content,
		Proxiable: r.Proxiable,
		Proxied:   r.Proxied,
		TTL:       r.TTL,
	}
}

func sortedHostnames(records dns.RecordSet) []string {
	hostnames := make([]string, 0, len(records))
	for hostname := range records {
		hostnames = append(hostnames, hostname)
	}
	sort.Strings(hostnames)
	return hostnames
}

// gate reports whether the batch may proceed. Empty batches are no-ops
// and are reported as such.
func (se *SyncEngine) gate(verb, gerund, description string, records dns.RecordSet) (bool, error) {
	if len(records) == 0 {
		se.logger.Info().Msgf("No records to %s", verb)
		return false, nil
	}
	approved, err := se.confirm(description, sortedHostnames(records))
	if err != nil {
		return false, fmt.Errorf("confirming %s batch: %w", verb, err)
	}
	if !approved {
		se.logger.Info().Msgf("Not %s records", gerund)
		return false, nil
	}
	return true, nil
}

func (se *SyncEngine) applyCreate(ctx context.Context, records dns.RecordSet) error {
	proceed, err := se.gate("create", "creating", "Planning to create entries for the following domains:", records)
	if err != nil || !proceed {
		return err
	}
	for _, hostname := range sortedHostnames(records) {
		record := records[hostname]
		se.logger.Info().Str("hostname", hostname).Str("zone_id", record.ZoneID).Msg("Creating record")
		if err := se.provider.CreateRecord(ctx, record.ZoneID, recordParams(hostname, record)); err != nil {
			return fmt.Errorf("creating record for %s: %w", hostname, err)
		}
	}
	return nil
}

func (se *SyncEngine) applyUpdate(ctx context.Context, records dns.RecordSet) error {
	proceed, err := se.gate("update", "updating", "Planning to update entries for the following domains:", records)
	if err != nil || !proceed {
		return err
	}
	for _, hostname := range sortedHostnames(records) {
		record := records[hostname]
		se.logger.Info().Str("hostname", hostname).Str("zone_id", record.ZoneID).Str("record_id", record.ID).Msg("Updating record")
		if err := se.provider.PatchRecord(ctx, record.ZoneID, record.ID, recordParams(hostname, record)); err != nil {
			return fmt.Errorf("updating record for %s: %w", hostname, err)
		}
	}
	return nil
}

func (se *SyncEngine) applyDelete(ctx context.Context, records dns.RecordSet) error {
	if len(records) > 0 {
		se.logger.Info().Msg("Some records point to inactive tunnels or tunnels not owned by you")
	}
	proceed, err := se.gate("delete", "deleting", "Planning to delete records for the following domains:", records)
	if err != nil || !proceed {
		return err
	}
	for _, hostname := range sortedHostnames(records) {
		record := records[hostname]
		se.logger.Info().Str("hostname", hostname).Str("zone_id", record.ZoneID).Str("record_id", record.ID).Msg("Deleting record")
		if err := se.provider.DeleteRecord(ctx, record.ZoneID, record.ID); err != nil {
			return fmt.Errorf("deleting record for %s: %w", hostname, err)
		}
	}
	return nil
}
