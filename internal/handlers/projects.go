package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"latestworks.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	sectionService *services.SectionService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, ss *services.SectionService) *ProjectHandler {
	return &ProjectHandler{projectService: ps, sectionService: ss}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{index}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid project index")
		return
	}

	project, err := h.projectService.GetByIndex(index)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetProjectBySlug handles GET /api/projects/by-slug/{slug}
func (h *ProjectHandler) GetProjectBySlug(w http.ResponseWriter, r *http.Request) {
	project, index, err := h.projectService.GetBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"index":   index,
		"project": project,
	})
}

// ListBlobs handles GET /api/blobs
func (h *ProjectHandler) ListBlobs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"seed":  strconv.FormatUint(h.sectionService.Seed(), 10),
		"blobs": h.sectionService.Blobs(),
	})
}
