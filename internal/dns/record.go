package dns

import (
	"fmt"
)

// TTLAuto is Cloudflare's sentinel for an automatically managed TTL.
const TTLAuto = 1

// Record is the unit of reconciliation: one DNS record as it exists (or
// should exist) in a zone. ID is empty for records not yet created.
type Record struct {
	ID        string
	ZoneID    string
	Type      string
	Content   string
	Proxiable bool
	Proxied   bool
	TTL       int
}

// Equal compares every field except ID. Two records are equal when they
// describe the same desired state, regardless of which provider object
// currently holds it.
func (r Record) Equal(other Record) bool {
	return r.ZoneID == other.ZoneID &&
		r.Type == other.Type &&
		r.Content == other.Content &&
		r.Proxiable == other.Proxiable &&
		r.Proxied == other.Proxied &&
		r.TTL == other.TTL
}

// WithID returns a copy of the record carrying the given provider id.
func (r Record) WithID(id string) Record {
	r.ID = id
	return r
}

func (r Record) Render() string {
	if r.ID == "" {
		return fmt.Sprintf("%s -> %s", r.Type, r.Content)
	}
	return fmt.Sprintf("%s -> %s (id %s)", r.Type, r.Content, r.ID)
}
