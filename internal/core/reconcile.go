package core

import (
	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/dns"
)

// Plan is the outcome of diffing desired against current state: three
// disjoint batches of records keyed by hostname. Batches do not depend on
// each other's outcomes.
type Plan struct {
	Create dns.RecordSet
	Update dns.RecordSet
	Delete dns.RecordSet
}

// Reconcile diffs the two record sets. It is pure: no provider calls, no
// mutation of its inputs.
//
//   - Create holds hostnames present in desired only.
//   - Update holds hostnames present in both whose records differ on any
//     field other than ID. The planned record is the desired one carrying
//     the current record's id, so the patch addresses the live object.
//   - Delete holds hostnames present in current only, restricted to
//     records whose content marks them as tunnel-managed. Records this
//     tool did not create the semantics of are never deleted.
func Reconcile(desired, current dns.RecordSet) Plan {
	plan := Plan{
		Create: make(dns.RecordSet),
		Update: make(dns.RecordSet),
		Delete: make(dns.RecordSet),
	}
	for hostname, want := range desired {
		have, exists := current[hostname]
		if !exists {
			plan.Create[hostname] = want
			continue
		}
		if planned := want.WithID(have.ID); !planned.Equal(have) {
			plan.Update[hostname] = planned
		}
	}
	for hostname, have := range current {
		if _, exists := desired[hostname]; exists {
			continue
		}
		if dns.IsTunnelContent(have.Content) {
			plan.Delete[hostname] = have
		}
	}
	return plan
}
