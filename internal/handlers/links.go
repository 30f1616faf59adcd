package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"latestworks.dev/internal/analytics"
	"latestworks.dev/internal/services"
)

// LinkHandler follows outbound project links and reports link statistics
type LinkHandler struct {
	projectService *services.ProjectService
	analytics      Analytics
}

// NewLinkHandler creates a new LinkHandler. a may be nil.
func NewLinkHandler(ps *services.ProjectService, a Analytics) *LinkHandler {
	return &LinkHandler{projectService: ps, analytics: a}
}

// Follow handles GET /go/{index}/{kind} - redirects to a project's demo or
// repository. Placeholder links answer 404 instead of redirecting.
func (h *LinkHandler) Follow(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid project index")
		return
	}
	kind := chi.URLParam(r, "kind")

	project, target, err := h.projectService.Link(index, kind)
	switch {
	case errors.Is(err, services.ErrUnknownLinkKind):
		respondError(w, http.StatusBadRequest, "Unknown link kind")
		return
	case err != nil:
		respondError(w, http.StatusNotFound, "Link not available")
		return
	}

	if h.analytics != nil {
		h.analytics.RecordClickAsync(analytics.Click{
			ProjectIndex: index,
			ProjectSlug:  project.Slug(),
			Kind:         kind,
			Target:       target,
			IP:           analytics.ClientIP(r),
			Timestamp:    time.Now(),
		})
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// Stats handles GET /api/stats
func (h *LinkHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if h.analytics == nil {
		respondError(w, http.StatusNotFound, "Analytics disabled")
		return
	}

	stats, err := h.analytics.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
