// Package narrative expands an itinerary skeleton into professional prose.
//
// Composition is deterministic: the same skeleton and travel style always
// yield byte-identical narrative blocks, so the PDF download exactly mirrors
// the HTML page shown at generation time.
package narrative

import (
	"fmt"
	"strings"

	"github.com/mariana/itinerary-studio/internal/types"
)

// excerptLimit caps how much of a reference document is quoted per paragraph.
const excerptLimit = 220

// Composer fills the narrative blocks and recommendations of a document
// skeleton. The zero value is usable.
type Composer struct{}

// Compose returns an enriched copy of the skeleton. For each segment it
// produces an opening paragraph from the style tone, a day-plan paragraph
// from the curated highlight, one paragraph per contributing reference, and
// a closing transition on every day but the last. References with Empty or
// Unsupported status contribute no paragraph. The input is not mutated.
func (c *Composer) Compose(skeleton *types.ItineraryDocument) *types.ItineraryDocument {
	doc := *skeleton
	doc.Segments = make([]types.ItinerarySegment, len(skeleton.Segments))
	copy(doc.Segments, skeleton.Segments)

	refText := make(map[string]string, len(doc.ReferenceAppendix))
	var corpus strings.Builder
	for _, ref := range doc.ReferenceAppendix {
		if ref.Status != types.StatusExtracted {
			continue
		}
		refText[ref.SourceFilename] = ref.Text
		corpus.WriteString(strings.ToLower(ref.Text))
		corpus.WriteString(" ")
	}

	style := toneFor(doc.Metadata.TravelStyle)
	highlights := curatedHighlights(corpus.String())
	destination := doc.Metadata.Destination
	if destination == "" {
		destination = "el destino"
	}
	lastDay := doc.LastDayIndex()

	for i := range doc.Segments {
		seg := &doc.Segments[i]
		h := highlights[seg.DayIndex%len(highlights)]

		blocks := make([]string, 0, len(seg.SourceReferences)+3)
		blocks = append(blocks, fmt.Sprintf(style.opening, seg.DayIndex+1, destination)+" "+h.Summary)
		blocks = append(blocks, fmt.Sprintf("Por la mañana: %s Por la tarde: %s Por la noche: %s",
			h.Morning, h.Afternoon, h.Evening))
		for _, name := range seg.SourceReferences {
			if text, ok := refText[name]; ok {
				blocks = append(blocks, referenceParagraph(name, text))
			}
		}
		if seg.DayIndex != lastDay {
			blocks = append(blocks, fmt.Sprintf(style.closing, seg.DayIndex+2))
		}
		seg.NarrativeBlocks = blocks
	}

	doc.Recommendations = buildRecommendations(doc.Metadata, corpus.String())
	return &doc
}

// referenceParagraph quotes the relevant material from one reference file.
func referenceParagraph(filename, text string) string {
	return fmt.Sprintf("Según el documento «%s»: %s", filename, excerpt(text))
}

// excerpt flattens the text to one line and truncates it at a rune boundary.
func excerpt(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if len(runes) <= excerptLimit {
		return flat
	}
	return strings.TrimSpace(string(runes[:excerptLimit])) + "…"
}
