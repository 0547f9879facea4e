package narrative

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mariana/itinerary-studio/internal/itinerary"
	"github.com/mariana/itinerary-studio/internal/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func buildSkeleton(t *testing.T, meta types.TripMetadata, refs []types.ExtractedReference) *types.ItineraryDocument {
	t.Helper()
	var b itinerary.Builder
	doc, err := b.Build(meta, refs)
	require.NoError(t, err)
	return doc
}

func TestCompose_Deterministic(t *testing.T) {
	meta := types.TripMetadata{
		ClientName:  "Ana",
		Destination: "Lisboa",
		StartDate:   date(2024, 6, 1),
		EndDate:     date(2024, 6, 4),
		TravelStyle: "lujo",
	}
	refs := []types.ExtractedReference{
		{SourceFilename: "notas.txt", Status: types.StatusExtracted, Text: "Día 2: paseo por la cultura local"},
	}

	var c Composer
	first := c.Compose(buildSkeleton(t, meta, refs))
	second := c.Compose(buildSkeleton(t, meta, refs))

	require.Equal(t, len(first.Segments), len(second.Segments))
	for i := range first.Segments {
		assert.Equal(t, first.Segments[i].NarrativeBlocks, second.Segments[i].NarrativeBlocks)
	}
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestCompose_ReferenceFreeItinerary(t *testing.T) {
	// Five days, no reference files: every segment carries only the
	// style-template narrative, and the appendix stays empty.
	meta := types.TripMetadata{
		ClientName:  "Luis",
		StartDate:   date(2024, 9, 2),
		EndDate:     date(2024, 9, 6),
		TravelStyle: "aventura",
	}

	var c Composer
	doc := c.Compose(buildSkeleton(t, meta, nil))

	require.Len(t, doc.Segments, 5)
	assert.Empty(t, doc.ReferenceAppendix)

	for i, seg := range doc.Segments {
		if i == len(doc.Segments)-1 {
			// Opening and day plan only; no closing transition on the last day.
			assert.Len(t, seg.NarrativeBlocks, 2, "last day")
		} else {
			assert.Len(t, seg.NarrativeBlocks, 3, "day %d", i)
		}
	}
}

func TestCompose_DayTaggedReferenceParagraph(t *testing.T) {
	meta := types.TripMetadata{
		ClientName:  "Ana",
		StartDate:   date(2024, 6, 1),
		EndDate:     date(2024, 6, 3),
		TravelStyle: "lujo",
	}
	refs := []types.ExtractedReference{
		{SourceFilename: "notas.txt", Status: types.StatusExtracted, Text: "Día 2: cena en restaurante X"},
	}

	var c Composer
	doc := c.Compose(buildSkeleton(t, meta, refs))
	require.Len(t, doc.Segments, 3)

	joined := func(i int) string { return strings.Join(doc.Segments[i].NarrativeBlocks, "\n") }
	assert.NotContains(t, joined(0), "restaurante X")
	assert.Contains(t, joined(1), "restaurante X")
	assert.Contains(t, joined(1), "notas.txt")
	assert.NotContains(t, joined(2), "restaurante X")
}

func TestCompose_EmptyAndUnsupportedContributeNoParagraph(t *testing.T) {
	meta := types.TripMetadata{
		ClientName: "Ana",
		StartDate:  date(2024, 6, 1),
		EndDate:    date(2024, 6, 2),
	}
	refs := []types.ExtractedReference{
		{SourceFilename: "mapa.png", Status: types.StatusUnsupported},
		{SourceFilename: "vacio.pdf", Status: types.StatusEmpty},
	}

	var c Composer
	doc := c.Compose(buildSkeleton(t, meta, refs))

	for _, seg := range doc.Segments {
		for _, block := range seg.NarrativeBlocks {
			assert.NotContains(t, block, "mapa.png")
			assert.NotContains(t, block, "vacio.pdf")
		}
	}
	// They still appear in the appendix.
	require.Len(t, doc.ReferenceAppendix, 2)
}

func TestCompose_StyleSelectsTone(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{style: "lujo", want: "detalles de lujo"},
		{style: "premium", want: "detalles de lujo"},
		{style: "aventura", want: "guías certificados"},
		{style: "", want: "imprescindibles"},
		{style: "desconocido", want: "imprescindibles"},
	}

	var c Composer
	for _, tt := range tests {
		t.Run("style "+tt.style, func(t *testing.T) {
			meta := types.TripMetadata{
				ClientName:  "Ana",
				StartDate:   date(2024, 6, 1),
				EndDate:     date(2024, 6, 1),
				TravelStyle: tt.style,
			}
			doc := c.Compose(buildSkeleton(t, meta, nil))
			require.NotEmpty(t, doc.Segments[0].NarrativeBlocks)
			assert.Contains(t, doc.Segments[0].NarrativeBlocks[0], tt.want)
		})
	}
}

func TestCompose_DoesNotMutateSkeleton(t *testing.T) {
	meta := types.TripMetadata{
		ClientName: "Ana",
		StartDate:  date(2024, 6, 1),
		EndDate:    date(2024, 6, 2),
	}
	skeleton := buildSkeleton(t, meta, nil)

	var c Composer
	_ = c.Compose(skeleton)

	for _, seg := range skeleton.Segments {
		assert.Nil(t, seg.NarrativeBlocks)
	}
}

func TestCuratedHighlights(t *testing.T) {
	t.Run("no theme keywords use defaults", func(t *testing.T) {
		assert.Equal(t, defaultHighlights, curatedHighlights("texto sin temas reconocibles"))
	})

	t.Run("themes follow fixed scan order", func(t *testing.T) {
		got := curatedHighlights("nos interesa la historia y la aventura")
		require.Len(t, got, 2)
		assert.Equal(t, "Aventura a medida", got[0].Title)
		assert.Equal(t, "Historia viva", got[1].Title)
	})
}

func TestBuildRecommendations(t *testing.T) {
	t.Run("every category has a fallback", func(t *testing.T) {
		rec := buildRecommendations(types.TripMetadata{ClientName: "Ana"}, "")
		assert.NotEmpty(t, rec.Gastronomy)
		assert.NotEmpty(t, rec.Logistics)
		assert.NotEmpty(t, rec.Wellness)
		assert.NotEmpty(t, rec.Insider)
	})

	t.Run("special requests reach insider", func(t *testing.T) {
		meta := types.TripMetadata{ClientName: "Ana", SpecialRequests: "cuna para bebé"}
		rec := buildRecommendations(meta, "")
		assert.Contains(t, strings.Join(rec.Insider, " "), "cuna para bebé")
	})

	t.Run("luxury style adds wellness", func(t *testing.T) {
		meta := types.TripMetadata{ClientName: "Ana", TravelStyle: "lujo"}
		rec := buildRecommendations(meta, "")
		assert.Contains(t, strings.Join(rec.Wellness, " "), "spa")
	})

	t.Run("corpus keywords drive categories", func(t *testing.T) {
		rec := buildRecommendations(types.TripMetadata{ClientName: "Ana"}, "viaje corporativo con cena gastronomica en familia")
		assert.Contains(t, strings.Join(rec.Logistics, " "), "traslado")
		assert.Contains(t, strings.Join(rec.Gastronomy, " "), "chefs")
		assert.Contains(t, strings.Join(rec.Insider, " "), "familias")
	})
}
