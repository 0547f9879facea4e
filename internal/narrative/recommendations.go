package narrative

import (
	"fmt"
	"strings"

	"github.com/mariana/itinerary-studio/internal/types"
)

// buildRecommendations derives curated suggestions from the extracted
// corpus, the travel style and the special requests. Every category ends up
// with at least one entry; the fallbacks keep the document complete when the
// reference material gives nothing to work with.
func buildRecommendations(meta types.TripMetadata, corpus string) types.Recommendations {
	var rec types.Recommendations

	if strings.Contains(corpus, "familia") || strings.Contains(corpus, "family") {
		rec.Insider = append(rec.Insider,
			"Reservar actividades con guía privado orientado a familias para combinar seguridad y aprendizaje.")
	}
	if strings.Contains(corpus, "negocio") || strings.Contains(corpus, "corporativo") {
		rec.Logistics = append(rec.Logistics,
			"Prever tiempos de traslado flexibles y salas de reunión en cada hotel seleccionado.")
	}
	if strings.Contains(corpus, "gastronom") {
		rec.Gastronomy = append(rec.Gastronomy,
			"Coordinar experiencias culinarias con chefs locales y reservas anticipadas en restaurantes de referencia.")
	}

	switch strings.ToLower(strings.TrimSpace(meta.TravelStyle)) {
	case "premium", "lujo", "luxury":
		rec.Wellness = append(rec.Wellness,
			"Añadir tratamientos de spa o rituales de bienestar exclusivos en los hoteles seleccionados.")
	}

	if meta.SpecialRequests != "" {
		rec.Insider = append(rec.Insider,
			fmt.Sprintf("Considerar peticiones especiales: %s.", meta.SpecialRequests))
	}

	if len(rec.Gastronomy) == 0 {
		rec.Gastronomy = append(rec.Gastronomy,
			"Programar una cena de bienvenida con degustación regional y maridaje de vinos locales.")
	}
	if len(rec.Logistics) == 0 {
		rec.Logistics = append(rec.Logistics,
			"Gestionar traslados privados puerta a puerta con asistencia multilingüe.")
	}
	if len(rec.Wellness) == 0 {
		rec.Wellness = append(rec.Wellness,
			"Reservar espacios para actividades regenerativas como yoga al amanecer o masajes de autor.")
	}
	if len(rec.Insider) == 0 {
		rec.Insider = append(rec.Insider,
			"Ofrecer un concierge disponible todo el día para ajustes de última hora y experiencias exclusivas.")
	}

	return rec
}
