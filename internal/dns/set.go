package dns

// RecordSet maps a fully-qualified hostname to the single record held for
// it. Hostnames are unique within a set; Put is last-wins on duplicates.
type RecordSet map[string]Record

// Put inserts the record under the hostname, replacing any earlier entry
// for the same name. It reports whether an entry was overwritten.
func (s RecordSet) Put(hostname string, r Record) bool {
	_, overwrote := s[hostname]
	s[hostname] = r
	return overwrote
}
