package core

import (
	"testing"

	"github.com/JonMerlevede/fix-cloudflare-tunnel-dns/internal/dns"
	"github.com/google/go-cmp/cmp"
)

func tunnelRecord(id, zoneID, tunnelID string) dns.Record {
	return dns.Record{
		ID:        id,
		ZoneID:    zoneID,
		Type:      "CNAME",
		Content:   dns.TunnelContent(tunnelID),
		Proxiable: true,
		Proxied:   true,
		TTL:       dns.TTLAuto,
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name    string
		desired dns.RecordSet
		current dns.RecordSet
		want    Plan
	}{
		{
			name: "missing record is created",
			desired: dns.RecordSet{
				"a.example.com": tunnelRecord("", "Z", "T1"),
			},
			current: dns.RecordSet{},
			want: Plan{
				Create: dns.RecordSet{"a.example.com": tunnelRecord("", "Z", "T1")},
				Update: dns.RecordSet{},
				Delete: dns.RecordSet{},
			},
		},
		{
			name: "drifted content is updated under the current id",
			desired: dns.RecordSet{
				"a.example.com": tunnelRecord("", "Z", "T2"),
			},
			current: dns.RecordSet{
				"a.example.com": tunnelRecord("rec1", "Z", "T1"),
			},
			want: Plan{
				Create: dns.RecordSet{},
				Update: dns.RecordSet{"a.example.com": tunnelRecord("rec1", "Z", "T2")},
				Delete: dns.RecordSet{},
			},
		},
		{
			name:    "orphaned tunnel record is deleted",
			desired: dns.RecordSet{},
			current: dns.RecordSet{
				"b.example.com": tunnelRecord("rec2", "Z", "T3"),
			},
			want: Plan{
				Create: dns.RecordSet{},
				Update: dns.RecordSet{},
				Delete: dns.RecordSet{"b.example.com": tunnelRecord("rec2", "Z", "T3")},
			},
		},
		{
			name:    "manually managed record is left untouched",
			desired: dns.RecordSet{},
			current: dns.RecordSet{
				"c.example.com": {
					ID:      "rec3",
					ZoneID:  "Z",
					Type:    "A",
					Content: "203.0.113.5",
					TTL:     300,
				},
			},
			want: Plan{
				Create: dns.RecordSet{},
				Update: dns.RecordSet{},
				Delete: dns.RecordSet{},
			},
		},
		{
			name: "matching record produces no operations",
			desired: dns.RecordSet{
				"a.example.com": tunnelRecord("", "Z", "T1"),
			},
			current: dns.RecordSet{
				"a.example.com": tunnelRecord("rec1", "Z", "T1"),
			},
			want: Plan{
				Create: dns.RecordSet{},
				Update: dns.RecordSet{},
				Delete: dns.RecordSet{},
			},
		},
		{
			name: "proxied drift alone triggers an update",
			desired: dns.RecordSet{
				"a.example.com": tunnelRecord("", "Z", "T1"),
			},
			current: dns.RecordSet{
				"a.example.com": func() dns.Record {
					r := tunnelRecord("rec1", "Z", "T1")
					r.Proxied = false
					return r
				}(),
			},
			want: Plan{
				Create: dns.RecordSet{},
				Update: dns.RecordSet{"a.example.com": tunnelRecord("rec1", "Z", "T1")},
				Delete: dns.RecordSet{},
			},
		},
		{
			name: "mixed create update delete",
			desired: dns.RecordSet{
				"new.example.com":  tunnelRecord("", "Z", "T1"),
				"keep.example.com": tunnelRecord("", "Z", "T1"),
				"move.example.com": tunnelRecord("", "Z", "T2"),
			},
			current: dns.RecordSet{
				"keep.example.com":   tunnelRecord("rk", "Z", "T1"),
				"move.example.com":   tunnelRecord("rm", "Z", "T1"),
				"stale.example.com":  tunnelRecord("rs", "Z", "T9"),
				"manual.example.com": {ID: "rx", ZoneID: "Z", Type: "A", Content: "198.51.100.7", TTL: 120},
			},
			want: Plan{
				Create: dns.RecordSet{"new.example.com": tunnelRecord("", "Z", "T1")},
				Update: dns.RecordSet{"move.example.com": tunnelRecord("rm", "Z", "T2")},
				Delete: dns.RecordSet{"stale.example.com": tunnelRecord("rs", "Z", "T9")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.desired, tt.current)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Reconcile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	desired := dns.RecordSet{
		"a.example.com": tunnelRecord("", "Z", "T1"),
		"b.example.com": tunnelRecord("", "Z", "T2"),
	}
	current := dns.RecordSet{
		"b.example.com": tunnelRecord("rb", "Z", "T1"),
		"c.example.com": tunnelRecord("rc", "Z", "T3"),
	}

	first := Reconcile(desired, current)
	second := Reconcile(desired, current)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("successive diffs over the same state differ (-first +second):\n%s", diff)
	}
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	desired := dns.RecordSet{"a.example.com": tunnelRecord("", "Z", "T1")}
	current := dns.RecordSet{"a.example.com": tunnelRecord("r1", "Z", "T2")}

	Reconcile(desired, current)

	if got := desired["a.example.com"].ID; got != "" {
		t.Errorf("desired record id = %q, want empty", got)
	}
	if got := current["a.example.com"].Content; got != dns.TunnelContent("T2") {
		t.Errorf("current record content = %q, want %q", got, dns.TunnelContent("T2"))
	}
}
