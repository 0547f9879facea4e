// Package types provides type definitions for structured data used throughout the itinerary-studio system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ReferenceStatus describes the outcome of text extraction for one reference file.
type ReferenceStatus string

const (
	// StatusExtracted means usable text was recovered from the file.
	StatusExtracted ReferenceStatus = "extracted"
	// StatusUnsupported means the file format is not parsed; the file is only listed.
	StatusUnsupported ReferenceStatus = "unsupported"
	// StatusEmpty means the format is supported but no usable text was found.
	StatusEmpty ReferenceStatus = "empty"
)

// ReferenceFile is one raw uploaded document. It is consumed once by the
// extractor and not retained in the canonical document; only the derived
// text and the filename survive.
type ReferenceFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"-"`
}

// ExtractedReference is the immutable result of extracting one reference file.
// Text is empty unless Status is StatusExtracted.
type ExtractedReference struct {
	SourceFilename string          `json:"source_filename"`
	Status         ReferenceStatus `json:"status"`
	Text           string          `json:"text,omitempty"`
	Note           string          `json:"note,omitempty"`
}

// TripMetadata holds the form fields describing the trip being planned.
type TripMetadata struct {
	ClientName      string    `json:"client_name" validate:"required,min=1"`
	Destination     string    `json:"destination,omitempty"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	TravelStyle     string    `json:"travel_style,omitempty"`
	SpecialRequests string    `json:"special_requests,omitempty"`
}

// Validate validates the TripMetadata using the validator.
// The start/end ordering invariant is checked separately by the builder,
// which turns a violation into a user-facing ValidationError.
func (m *TripMetadata) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// Days returns the number of calendar days spanned by the trip, inclusive.
// A same-day trip counts as one day. Negative when EndDate precedes StartDate.
func (m *TripMetadata) Days() int {
	start := m.StartDate.Truncate(24 * time.Hour)
	end := m.EndDate.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// ItinerarySegment is the per-day unit of the itinerary document.
type ItinerarySegment struct {
	DayIndex         int       `json:"day_index"`
	Date             time.Time `json:"date"`
	Title            string    `json:"title"`
	NarrativeBlocks  []string  `json:"narrative_blocks"`
	SourceReferences []string  `json:"source_references,omitempty"`
}

// Recommendations groups curated trip suggestions by category.
type Recommendations struct {
	Gastronomy []string `json:"gastronomy"`
	Logistics  []string `json:"logistics"`
	Wellness   []string `json:"wellness"`
	Insider    []string `json:"insider"`
}

// RecommendationCategory pairs a display name with its entries.
type RecommendationCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Categories returns the recommendation categories in canonical display
// order. Both renderers rely on this ordering staying fixed.
func (r Recommendations) Categories() []RecommendationCategory {
	return []RecommendationCategory{
		{Name: "Gastronomía", Items: r.Gastronomy},
		{Name: "Logística", Items: r.Logistics},
		{Name: "Bienestar", Items: r.Wellness},
		{Name: "Insider", Items: r.Insider},
	}
}

// ItineraryDocument is the canonical artifact consumed by both renderers.
// It is immutable once the narrative composer has filled it in; the session
// store and both renderers only ever read it.
type ItineraryDocument struct {
	Metadata          TripMetadata         `json:"metadata"`
	Segments          []ItinerarySegment   `json:"segments"`
	Recommendations   Recommendations      `json:"recommendations"`
	ReferenceAppendix []ExtractedReference `json:"reference_appendix"`
}

// LastDayIndex returns the day index of the final segment, or -1 for an
// empty (structurally invalid) document.
func (d *ItineraryDocument) LastDayIndex() int {
	if len(d.Segments) == 0 {
		return -1
	}
	return d.Segments[len(d.Segments)-1].DayIndex
}
