package observability

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mariana/itinerary-studio/internal/types"
)

func TestPrintItinerary(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	doc := &types.ItineraryDocument{
		Metadata: types.TripMetadata{
			ClientName:  "Ana",
			Destination: "Lisboa",
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, 2),
		},
		Segments: []types.ItinerarySegment{{DayIndex: 0}, {DayIndex: 1}, {DayIndex: 2}},
		ReferenceAppendix: []types.ExtractedReference{
			{SourceFilename: "notas.txt", Status: types.StatusExtracted},
			{SourceFilename: "mapa.png", Status: types.StatusUnsupported},
		},
	}

	var out strings.Builder
	NewPrinter(&out).PrintItinerary(doc)

	got := out.String()
	assert.Contains(t, got, "Itinerario generado")
	assert.Contains(t, got, "Cliente: Ana")
	assert.Contains(t, got, "Destino: Lisboa")
	assert.Contains(t, got, "Días: 3")
	assert.Contains(t, got, "1 procesadas, 1 solo listadas")
}
