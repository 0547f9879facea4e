package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mariana/itinerary-studio/internal/itinerary"
	"github.com/mariana/itinerary-studio/internal/pipeline"
	"github.com/mariana/itinerary-studio/internal/rendering"
	"github.com/mariana/itinerary-studio/internal/types"
)

// sessionCookie names the opaque per-user-session identifier.
const sessionCookie = "itinerary_session"

// dateLayout is the wire format of the form date fields.
const dateLayout = "2006-01-02"

// handleIndex renders the landing page with the itinerary form.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		s.logger.Error("failed to render index", zap.Error(err))
	}
}

// handleGenerate runs the whole pipeline for the submitted form and uploaded
// files, stores the document for the session, and responds with the HTML
// view.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sid := s.ensureSession(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.errorPage(w, http.StatusBadRequest, "La solicitud no se pudo procesar. Revisa el tamaño de los archivos adjuntos.")
		return
	}

	meta, err := parseMetadata(r)
	if err != nil {
		s.logger.Info("invalid generation form", zap.String("session", sid), zap.Error(err))
		s.errorPage(w, HTTPStatus(err), userMessage(err))
		return
	}

	files, err := collectFiles(r)
	if err != nil {
		s.logger.Error("failed to read uploads", zap.String("session", sid), zap.Error(err))
		s.errorPage(w, http.StatusBadRequest, "No se pudieron leer los archivos adjuntos.")
		return
	}

	doc, err := pipeline.Generate(r.Context(), meta, files, s.pipeline)
	if err != nil {
		s.logger.Info("generation rejected", zap.String("session", sid), zap.Error(err))
		s.errorPage(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.store.Put(sid, doc)

	page, err := rendering.RenderHTML(doc)
	if err != nil {
		// A freshly built document always has at least one segment.
		s.logger.Error("render failed on freshly built document", zap.String("session", sid), zap.Error(err))
		s.errorPage(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.logger.Info("itinerary generated",
		zap.String("session", sid),
		zap.Int("segments", len(doc.Segments)),
		zap.Int("references", len(doc.ReferenceAppendix)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, page)
}

// handleDownloadPDF re-renders the session's stored document as a PDF. No
// extraction or composition is repeated, so the PDF mirrors the HTML shown
// at generation time exactly.
func (s *Server) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	sid, ok := s.currentSession(r)
	if !ok {
		s.errorPage(w, http.StatusNotFound, "No hay ningún itinerario generado en esta sesión. Genera uno antes de descargar el PDF.")
		return
	}

	doc, err := s.store.Get(sid)
	if err != nil {
		s.errorPage(w, HTTPStatus(err), userMessage(err))
		return
	}

	pdfBytes, err := rendering.RenderPDF(doc)
	if err != nil {
		s.logger.Error("pdf render failed on stored document", zap.String("session", sid), zap.Error(err))
		s.errorPage(w, HTTPStatus(err), userMessage(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", downloadFilename(doc.Metadata.ClientName)))
	_, _ = w.Write(pdfBytes)
}

// ensureSession returns the request's session id, minting a new cookie when
// the request carries none.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if sid, ok := s.currentSession(r); ok {
		return sid
	}
	sid := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// currentSession reads the session id from the request cookie.
func (s *Server) currentSession(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// parseMetadata builds the trip metadata from form fields. Date parse
// failures become the same user-facing validation error as an inverted
// range.
func parseMetadata(r *http.Request) (types.TripMetadata, error) {
	start, err := time.Parse(dateLayout, r.FormValue("start_date"))
	if err != nil {
		return types.TripMetadata{}, &itinerary.ValidationError{
			Field:   "start_date",
			Message: "las fechas proporcionadas no son válidas, usa el formato AAAA-MM-DD",
		}
	}
	end, err := time.Parse(dateLayout, r.FormValue("end_date"))
	if err != nil {
		return types.TripMetadata{}, &itinerary.ValidationError{
			Field:   "end_date",
			Message: "las fechas proporcionadas no son válidas, usa el formato AAAA-MM-DD",
		}
	}

	return types.TripMetadata{
		ClientName:      strings.TrimSpace(r.FormValue("client_name")),
		Destination:     strings.TrimSpace(r.FormValue("primary_destination")),
		StartDate:       start,
		EndDate:         end,
		TravelStyle:     r.FormValue("travel_style"),
		SpecialRequests: strings.TrimSpace(r.FormValue("special_requests")),
	}, nil
}

// collectFiles reads every uploaded attachment into memory. Files with an
// empty filename (an empty file input submits one) are skipped.
func collectFiles(r *http.Request) ([]types.ReferenceFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var files []types.ReferenceFile
	for _, header := range r.MultipartForm.File["attachments"] {
		if header.Filename == "" {
			continue
		}
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
		}
		files = append(files, types.ReferenceFile{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return files, nil
}

// downloadFilename derives the PDF attachment name from the client name.
func downloadFilename(clientName string) string {
	name := strings.ToLower(strings.TrimSpace(clientName))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" {
		name = "viaje"
	}
	return "itinerario_" + name + ".pdf"
}

// errorPage renders the user-facing error page.
func (s *Server) errorPage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := errorTemplate.Execute(w, struct{ Message string }{Message: message}); err != nil {
		s.logger.Error("failed to render error page", zap.Error(err))
	}
}
