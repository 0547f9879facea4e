// Package rendering produces the HTML and PDF views of an itinerary document.
package rendering

import "fmt"

// RenderError represents a structurally invalid document reaching a
// renderer. The model builder's invariants make this unreachable in normal
// operation, so callers treat it as an internal fault and do not retry.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
