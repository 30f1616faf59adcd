package models

import (
	"strings"
	"unicode"
)

// PlaceholderLink marks a project link that exists in the layout but has no target yet.
const PlaceholderLink = "#"

// Project represents a portfolio project shown on the timeline
type Project struct {
	Title        string   `json:"title" yaml:"title"`
	Subtitle     string   `json:"subtitle" yaml:"subtitle"`
	Description  string   `json:"description" yaml:"description"`
	Tags         []string `json:"tags" yaml:"tags"`
	Image        string   `json:"image" yaml:"image"`
	LiveDemo     string   `json:"live_demo" yaml:"live_demo"`
	GitHubRepo   string   `json:"github_repo" yaml:"github_repo"`
	ProjectColor string   `json:"project_color" yaml:"project_color"`
}

// HasLiveDemo reports whether the demo link points somewhere
func (p Project) HasLiveDemo() bool {
	return isRealLink(p.LiveDemo)
}

// HasRepo reports whether the repository link points somewhere
func (p Project) HasRepo() bool {
	return isRealLink(p.GitHubRepo)
}

// Slug returns a lowercase, dash separated form of the title
func (p Project) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(p.Title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func isRealLink(link string) bool {
	link = strings.TrimSpace(link)
	return link != "" && link != PlaceholderLink
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
