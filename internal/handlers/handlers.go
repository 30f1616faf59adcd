package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"latestworks.dev/internal/analytics"
	"latestworks.dev/internal/config"
	"latestworks.dev/internal/logger"
	"latestworks.dev/internal/middleware"
	"latestworks.dev/internal/render"
	"latestworks.dev/internal/services"
)

// Analytics is the subset of the analytics store the routes use
type Analytics interface {
	Track(next http.Handler) http.Handler
	RecordClickAsync(c analytics.Click)
	Stats(ctx context.Context) (*analytics.Stats, error)
}

// Dependencies are the services the routes are built from.
// Analytics may be nil.
type Dependencies struct {
	Projects  *services.ProjectService
	Section   *services.SectionService
	Renderer  *render.Renderer
	Analytics Analytics
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if deps.Analytics != nil {
		r.Use(deps.Analytics.Track)
	}

	// Initialize handlers
	projectHandler := NewProjectHandler(deps.Projects, deps.Section)
	sectionHandler := NewSectionHandler(deps.Section, deps.Renderer, cfg.Site.Title)
	linkHandler := NewLinkHandler(deps.Projects, deps.Analytics)

	// Pages
	r.Get("/", sectionHandler.Page)
	r.Get("/projects", sectionHandler.Fragment)
	r.Post("/projects/hover", sectionHandler.Hover)

	// Outbound project links
	r.Get("/go/{index}/{kind}", linkHandler.Follow)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)
		r.Get("/projects/by-slug/{slug}", projectHandler.GetProjectBySlug)
		r.Get("/blobs", projectHandler.ListBlobs)
		r.Get("/hover", sectionHandler.GetHover)
		r.Get("/stats", linkHandler.Stats)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log := logger.GetLogger("api")
		log.Error().Err(err).Msg("Error encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
