// Package itinerary builds the canonical itinerary document skeleton from
// trip metadata and extracted reference material.
package itinerary

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mariana/itinerary-studio/internal/types"
)

// GeneralReferencePolicy controls where an extracted reference without a day
// marker is attached.
type GeneralReferencePolicy int

const (
	// GeneralToAllSegments attaches untagged references to every segment as
	// shared context. This mirrors the upstream behavior of folding all
	// extracted text into each day.
	GeneralToAllSegments GeneralReferencePolicy = iota
	// GeneralToAppendixOnly lists untagged references in the appendix
	// without attaching them to any segment.
	GeneralToAppendixOnly
)

// defaultDayMarker matches "Día N", "Dia N" and "Day N" anywhere in the text.
var defaultDayMarker = regexp.MustCompile(`(?i)\bd(?:ía|ia|ay)\s+(\d+)\b`)

// ValidateMetadata checks the trip metadata invariants, most importantly
// startDate ≤ endDate. The pipeline calls it before any extraction work so
// an invalid form never touches the uploaded files.
func ValidateMetadata(meta types.TripMetadata) error {
	if err := meta.Validate(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	if meta.EndDate.Before(meta.StartDate) {
		return &ValidationError{
			Field:   "end_date",
			Message: "la fecha de fin debe ser posterior a la fecha de inicio",
		}
	}
	return nil
}

// Builder assembles document skeletons. The zero value is usable.
type Builder struct {
	// DayMarker overrides the pattern used to pin a reference to one day.
	// Its first capture group must be the 1-based day number.
	DayMarker *regexp.Regexp
	// GeneralPolicy decides segment attachment for untagged references.
	GeneralPolicy GeneralReferencePolicy
}

// Build validates the metadata and produces the document skeleton: one
// segment per calendar day spanned, titled "Día N", narrative blocks still
// empty. Every input reference lands in the appendix in input order,
// whatever its status; only extracted references are attached to segments.
// The input slice is not mutated.
func (b *Builder) Build(meta types.TripMetadata, refs []types.ExtractedReference) (*types.ItineraryDocument, error) {
	if err := ValidateMetadata(meta); err != nil {
		return nil, err
	}

	days := meta.Days()
	segments := make([]types.ItinerarySegment, days)
	for i := 0; i < days; i++ {
		segments[i] = types.ItinerarySegment{
			DayIndex: i,
			Date:     meta.StartDate.AddDate(0, 0, i),
			Title:    fmt.Sprintf("Día %d", i+1),
		}
	}

	doc := &types.ItineraryDocument{
		Metadata:          meta,
		Segments:          segments,
		ReferenceAppendix: append([]types.ExtractedReference(nil), refs...),
	}

	marker := b.DayMarker
	if marker == nil {
		marker = defaultDayMarker
	}

	for _, ref := range refs {
		if ref.Status != types.StatusExtracted {
			continue
		}
		if day, ok := markedDay(marker, ref.Text); ok && day >= 1 && day <= days {
			attach(&doc.Segments[day-1], ref.SourceFilename)
			continue
		}
		if b.GeneralPolicy == GeneralToAllSegments {
			for i := range doc.Segments {
				attach(&doc.Segments[i], ref.SourceFilename)
			}
		}
	}

	return doc, nil
}

// markedDay returns the 1-based day number of the first day marker in text.
func markedDay(marker *regexp.Regexp, text string) (int, bool) {
	m := marker.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return day, true
}

// attach records a contributing source filename on a segment, once.
func attach(seg *types.ItinerarySegment, filename string) {
	for _, existing := range seg.SourceReferences {
		if existing == filename {
			return
		}
	}
	seg.SourceReferences = append(seg.SourceReferences, filename)
}
