package itinerary

import "fmt"

// ValidationError represents invalid trip metadata. It is the one pipeline
// error surfaced to the user with a corrective message; generation aborts
// before any extraction or composition work.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
