package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"latestworks.dev/internal/logger"
	"latestworks.dev/internal/render"
	"latestworks.dev/internal/services"
	"latestworks.dev/internal/timeline"
)

// SectionHandler serves the rendered timeline and its hover state
type SectionHandler struct {
	sectionService *services.SectionService
	renderer       *render.Renderer
	title          string
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(ss *services.SectionService, renderer *render.Renderer, title string) *SectionHandler {
	return &SectionHandler{sectionService: ss, renderer: renderer, title: title}
}

// Page handles GET / - the full document
func (h *SectionHandler) Page(w http.ResponseWriter, r *http.Request) {
	hovered, ok := parseHovered(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid hovered index")
		return
	}

	themeName := h.sectionService.ThemeName(r.URL.Query().Get("theme"))
	page := render.Page{
		Title:     h.title,
		ThemeName: themeName,
		Themes:    h.sectionService.Themes(),
		View:      h.sectionService.View(themeName, hovered),
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, page); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Fragment handles GET /projects - the section alone
func (h *SectionHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	hovered, ok := parseHovered(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid hovered index")
		return
	}

	view := h.sectionService.View(r.URL.Query().Get("theme"), hovered)

	var buf bytes.Buffer
	if err := h.renderer.Section(&buf, view); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// Hover handles POST /projects/hover - a card reporting pointer enter/leave
func (h *SectionHandler) Hover(w http.ResponseWriter, r *http.Request) {
	var ev timeline.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if ev.Type != timeline.EnterEvent && ev.Type != timeline.LeaveEvent {
		respondError(w, http.StatusBadRequest, "Invalid event type")
		return
	}

	if ev.Index < 0 || ev.Index >= h.sectionService.Len() {
		respondError(w, http.StatusBadRequest, "Invalid project index")
		return
	}

	respondJSON(w, http.StatusOK, hoverResponse{Hovered: h.sectionService.Dispatch(ev)})
}

// GetHover handles GET /api/hover
func (h *SectionHandler) GetHover(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, hoverResponse{Hovered: h.sectionService.Hovered()})
}

type hoverResponse struct {
	Hovered timeline.Hover `json:"hovered"`
}

func (h *SectionHandler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.GetLogger("api")
	log.Error().Err(err).Str("path", r.URL.Path).Msg("Failed to render section")
	respondError(w, http.StatusInternalServerError, "Failed to render section")
}

// parseHovered reads the optional ?hovered= override. A nil result means
// the section's own state should be used.
func parseHovered(r *http.Request) (*timeline.Hover, bool) {
	raw := r.URL.Query().Get("hovered")
	switch raw {
	case "":
		return nil, true
	case "none":
		h := timeline.None
		return &h, true
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return nil, false
	}
	h := timeline.At(i)
	return &h, true
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
