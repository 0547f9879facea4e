package server

import (
	"errors"
	"net/http"

	"github.com/mariana/itinerary-studio/internal/itinerary"
	"github.com/mariana/itinerary-studio/internal/rendering"
	"github.com/mariana/itinerary-studio/internal/session"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline or
// store error. Validation problems and a missing session document are the
// user-actionable cases; a render error is an internal fault.
func HTTPStatus(err error) int {
	var validationErr *itinerary.ValidationError
	var notFoundErr *session.ErrNotFound
	var renderErr *rendering.RenderError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &renderErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps an error to the text shown on the error page. Internal
// faults get a generic message; the real cause only goes to the log.
func userMessage(err error) string {
	var validationErr *itinerary.ValidationError
	var notFoundErr *session.ErrNotFound
	switch {
	case errors.As(err, &validationErr):
		return "Los datos del viaje no son válidos: " + validationErr.Message + "."
	case errors.As(err, &notFoundErr):
		return "No hay ningún itinerario generado en esta sesión. Genera uno antes de descargar el PDF."
	default:
		return "Se produjo un error inesperado al preparar el itinerario."
	}
}
