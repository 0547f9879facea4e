package rendering

import (
	"fmt"

	"github.com/mariana/itinerary-studio/internal/types"
)

// Heading levels emitted by Walk. Level 1 is the document title.
const (
	LevelTitle      = 1
	LevelSection    = 2
	LevelSubsection = 3
)

// Section titles shared by both outputs.
const (
	DocumentTitle        = "Plan Maestro de Viaje"
	summaryHeading       = "Resumen ejecutivo"
	recommendHeading     = "Recomendaciones estratégicas"
	appendixHeading      = "Documentos de referencia"
	executiveSummaryText = "Este documento reúne un programa integral con experiencias personalizadas, logística cuidada y recomendaciones a la medida del viaje."
)

// Visitor consumes the structural event stream of a document. Both output
// formats are visitors over the same traversal, which is what keeps their
// section ordering identical by construction.
type Visitor interface {
	Heading(level int, text string)
	Paragraph(text string)
	AppendixEntry(ref types.ExtractedReference)
}

// Walk traverses the document in its one canonical order: title, trip
// summary, executive summary, segments ascending by day index with their
// narrative blocks in order, recommendations by category, and finally the
// reference appendix in input order. The appendix section is omitted
// entirely when no reference was supplied.
func Walk(doc *types.ItineraryDocument, v Visitor) error {
	if doc == nil || len(doc.Segments) == 0 {
		return &RenderError{Message: "itinerary document has no segments"}
	}

	v.Heading(LevelTitle, DocumentTitle)
	v.Paragraph(tripSummary(doc.Metadata))

	v.Heading(LevelSection, summaryHeading)
	v.Paragraph(executiveSummaryText)

	for _, seg := range doc.Segments {
		v.Heading(LevelSection, seg.Title)
		for _, block := range seg.NarrativeBlocks {
			v.Paragraph(block)
		}
	}

	v.Heading(LevelSection, recommendHeading)
	for _, cat := range doc.Recommendations.Categories() {
		v.Heading(LevelSubsection, cat.Name)
		for _, item := range cat.Items {
			v.Paragraph(item)
		}
	}

	if len(doc.ReferenceAppendix) > 0 {
		v.Heading(LevelSection, appendixHeading)
		for _, ref := range doc.ReferenceAppendix {
			v.AppendixEntry(ref)
		}
	}

	return nil
}

// tripSummary is the single metadata paragraph under the document title.
func tripSummary(meta types.TripMetadata) string {
	destination := meta.Destination
	if destination == "" {
		destination = "Destino por confirmar"
	}
	style := meta.TravelStyle
	if style == "" {
		style = "Clásico"
	}
	summary := fmt.Sprintf("Cliente: %s. Destino: %s. Fechas: %s a %s. Estilo de viaje: %s.",
		meta.ClientName, destination,
		meta.StartDate.Format("02/01/2006"), meta.EndDate.Format("02/01/2006"), style)
	if meta.SpecialRequests != "" {
		summary += fmt.Sprintf(" Peticiones especiales: %s.", meta.SpecialRequests)
	}
	return summary
}

// statusLabel maps a reference status to its display text.
func statusLabel(status types.ReferenceStatus) string {
	switch status {
	case types.StatusExtracted:
		return "procesado"
	case types.StatusEmpty:
		return "sin texto utilizable"
	default:
		return "solo listado"
	}
}
