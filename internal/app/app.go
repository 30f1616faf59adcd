// Package app wires configuration into the services and routes.
package app

import (
	"context"
	"fmt"
	"net/http"

	"latestworks.dev/internal/analytics"
	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/config"
	"latestworks.dev/internal/handlers"
	"latestworks.dev/internal/logger"
	"latestworks.dev/internal/models"
	"latestworks.dev/internal/render"
	"latestworks.dev/internal/services"
	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

// App is the assembled application
type App struct {
	Handler  http.Handler
	Section  *services.SectionService
	Projects *services.ProjectService
	Store    *analytics.Store // nil when analytics is disabled
}

// LoadPalette returns the configured palette, or the built-in one
func LoadPalette(cfg *config.Config) (*theme.Palette, error) {
	if cfg.Timeline.ThemesFile == "" {
		return theme.Default(), nil
	}
	p, err := theme.Load(cfg.Timeline.ThemesFile)
	if err != nil {
		return nil, fmt.Errorf("loading themes: %w", err)
	}
	return p, nil
}

// NewSection mounts the timeline section described by cfg
func NewSection(cfg *config.Config) *timeline.Section {
	opts := []timeline.Option{timeline.WithHeading(cfg.Site.Heading)}
	if cfg.Timeline.Seed != 0 {
		opts = append(opts, timeline.WithSeed(cfg.Timeline.Seed))
	}
	return timeline.New(catalog.Projects(), opts...)
}

// Build assembles services, renderer, analytics and routes
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.GetLogger("app")

	palette, err := LoadPalette(cfg)
	if err != nil {
		return nil, err
	}

	hoverEndpoint := ""
	if cfg.Timeline.TrackHover {
		hoverEndpoint = "/projects/hover"
	}
	renderer, err := render.NewHTML(render.Options{
		AssetPrefix:   cfg.AssetPrefix,
		TrackLinks:    !cfg.Timeline.DirectLinks,
		HoverEndpoint: hoverEndpoint,
	})
	if err != nil {
		return nil, err
	}

	section := NewSection(cfg)
	log.Info().
		Uint64("seed", section.Seed()).
		Int("projects", section.Len()).
		Str("theme", cfg.Timeline.Theme).
		Msg("Timeline mounted")

	a := &App{
		Section:  services.NewSectionService(section, palette, cfg.Timeline.Theme),
		Projects: services.NewProjectService(&models.ProjectList{Projects: catalog.Projects()}),
	}

	deps := handlers.Dependencies{
		Projects: a.Projects,
		Section:  a.Section,
		Renderer: renderer,
	}
	if cfg.Analytics.DSN != "" {
		store, err := analytics.Open(ctx, cfg.Analytics.DSN)
		if err != nil {
			return nil, err
		}
		a.Store = store
		deps.Analytics = store
		log.Info().Str("dsn", cfg.Analytics.DSN).Msg("Analytics enabled")
	}

	a.Handler = handlers.SetupRoutes(cfg, deps)
	return a, nil
}

// Close releases resources held by the app
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
