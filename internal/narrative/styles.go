package narrative

import "strings"

// tone holds the per-style phrasing. opening is a format string taking the
// 1-based day number and the destination; closing takes the next day number.
type tone struct {
	opening string
	closing string
}

var (
	tonePremium = tone{
		opening: "La jornada %d en %s está concebida sin prisas, con atención personalizada y detalles de lujo en cada traslado.",
		closing: "Al caer la noche, el equipo de concierge dejará todo preparado para que el día %d comience con la misma excelencia.",
	}
	toneAdventure = tone{
		opening: "El día %d en %s arranca con energía: actividades al aire libre acompañadas por guías certificados.",
		closing: "Tras recuperar fuerzas, la aventura continúa el día %d con un nuevo desafío por descubrir.",
	}
	toneClassic = tone{
		opening: "El día %d en %s combina los imprescindibles del destino con tiempo libre para disfrutarlo a su ritmo.",
		closing: "Con la jornada completa, el descanso prepara el camino hacia el día %d del viaje.",
	}
)

// toneFor selects the tone template for a travel style. Unknown styles fall
// back to the classic tone so composition never fails.
func toneFor(style string) tone {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "premium", "lujo", "luxury":
		return tonePremium
	case "aventura", "experiencial":
		return toneAdventure
	default:
		return toneClassic
	}
}

// highlight is one curated day theme with its time-of-day plan.
type highlight struct {
	Title     string
	Summary   string
	Morning   string
	Afternoon string
	Evening   string
}

// defaultHighlights rotate across days when the reference material suggests
// no specific theme.
var defaultHighlights = []highlight{
	{
		Title:     "Bienvenida y aclimatación",
		Summary:   "Recepción personalizada, check-in sin esperas y recorrido de orientación.",
		Morning:   "Traslado privado y recepción con atenciones de bienvenida.",
		Afternoon: "Paseo introductorio por el centro con guía en español.",
		Evening:   "Cena de bienvenida con maridaje seleccionado por el sommelier.",
	},
	{
		Title:     "Cultura y patrimonio",
		Summary:   "Acceso preferente a museos y experiencias culturales privadas.",
		Morning:   "Visita guiada al museo principal antes de la apertura al público.",
		Afternoon: "Taller con artesanos locales en su propio estudio.",
		Evening:   "Cóctel en azotea con vistas panorámicas y música en vivo.",
	},
	{
		Title:     "Sabores locales",
		Summary:   "Ruta gastronómica con degustaciones y cocina de autor.",
		Morning:   "Clase de cocina tradicional con un chef reconocido.",
		Afternoon: "Recorrido por mercados gourmet con productos de temporada.",
		Evening:   "Mesa reservada en el restaurante insignia con menú degustación.",
	},
	{
		Title:     "Bienestar y desconexión",
		Summary:   "Jornada dedicada al descanso con tratamientos de spa.",
		Morning:   "Sesión de yoga o meditación guiada al amanecer.",
		Afternoon: "Circuito de hidroterapia y masaje en cabina privada.",
		Evening:   "Cena ligera de inspiración saludable con mixología botánica.",
	},
}

// themedHighlights map a detected theme keyword to its curated day.
var themedHighlights = map[string]highlight{
	"aventura": {
		Title:     "Aventura a medida",
		Summary:   "Actividades al aire libre con guías certificados y logística cuidada.",
		Morning:   "Exploración por senderos exclusivos con picnic gourmet.",
		Afternoon: "Actividad de adrenalina: navegación privada o vuelo panorámico.",
		Evening:   "Fogata con relatos locales y coctelería artesanal.",
	},
	"cultura":     defaultHighlights[1],
	"gastronomía": defaultHighlights[2],
	"relax":       defaultHighlights[3],
	"arte": {
		Title:     "Arte contemporáneo y clásico",
		Summary:   "Visitas privadas a galerías de la mano de curadores.",
		Morning:   "Recorrido por galerías emergentes con un curador invitado.",
		Afternoon: "Acceso a una colección privada con anfitrión experto.",
		Evening:   "Cena temática con menú inspirado en artistas locales.",
	},
	"historia": {
		Title:     "Historia viva",
		Summary:   "Rutas por sitios patrimoniales con guía especializado.",
		Morning:   "Visita a monumentos antes del horario público.",
		Afternoon: "Sesión en archivos históricos con un historiador local.",
		Evening:   "Cena en un edificio histórico con menú de época.",
	},
}

// themeOrder fixes the scan order so highlight selection is deterministic.
var themeOrder = []string{"aventura", "cultura", "gastronomía", "relax", "arte", "historia"}

// curatedHighlights derives the rotation of day themes from the lowercased
// corpus of all extracted reference text. With no recognizable theme the
// default rotation applies.
func curatedHighlights(corpus string) []highlight {
	var curated []highlight
	for _, theme := range themeOrder {
		if strings.Contains(corpus, theme) {
			curated = append(curated, themedHighlights[theme])
		}
	}
	if len(curated) == 0 {
		return defaultHighlights
	}
	return curated
}
