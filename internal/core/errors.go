package core

import "fmt"

// ZoneNotFoundError indicates that an ingress hostname's apex domain
// matched no zone visible to the account. It is fatal to desired-state
// construction: a partial desired state is unsafe to reconcile against.
type ZoneNotFoundError struct {
	Zone string
}

func (e *ZoneNotFoundError) Error() string {
	return fmt.Sprintf("zone %s not found", e.Zone)
}
