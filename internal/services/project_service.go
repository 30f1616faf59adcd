package services

import (
	"errors"
	"fmt"

	"latestworks.dev/internal/models"
)

var (
	// ErrProjectNotFound is returned for indices outside the project list
	ErrProjectNotFound = errors.New("project not found")
	// ErrNoLink is returned when a project link is empty or a placeholder
	ErrNoLink = errors.New("project has no link of that kind")
	// ErrUnknownLinkKind is returned for link kinds other than demo and repo
	ErrUnknownLinkKind = errors.New("unknown link kind")
)

// Link kinds used in /go/{index}/{kind}
const (
	LinkDemo = "demo"
	LinkRepo = "repo"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByIndex returns the project at a display position
func (s *ProjectService) GetByIndex(index int) (*models.Project, error) {
	if index < 0 || index >= len(s.projects.Projects) {
		return nil, fmt.Errorf("%w: %d", ErrProjectNotFound, index)
	}
	return &s.projects.Projects[index], nil
}

// GetBySlug returns a project by its title slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, int, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].Slug() == slug {
			return &s.projects.Projects[i], i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}

// Link returns the target URL of a project link. Placeholder links are
// reported as ErrNoLink so they are never followed.
func (s *ProjectService) Link(index int, kind string) (*models.Project, string, error) {
	p, err := s.GetByIndex(index)
	if err != nil {
		return nil, "", err
	}

	switch kind {
	case LinkDemo:
		if !p.HasLiveDemo() {
			return p, "", fmt.Errorf("%w: %s demo", ErrNoLink, p.Title)
		}
		return p, p.LiveDemo, nil
	case LinkRepo:
		if !p.HasRepo() {
			return p, "", fmt.Errorf("%w: %s repo", ErrNoLink, p.Title)
		}
		return p, p.GitHubRepo, nil
	}
	return p, "", fmt.Errorf("%w: %s", ErrUnknownLinkKind, kind)
}
