package session

import "fmt"

// ErrNotFound indicates no itinerary document is stored for a session. The
// server surfaces it as a user-facing "generate first" condition.
type ErrNotFound struct {
	SessionID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no itinerary stored for session %s", e.SessionID)
}
