package services

import (
	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

// SectionService owns the mounted timeline section and the theme palette
type SectionService struct {
	section      *timeline.Section
	palette      *theme.Palette
	defaultTheme string
}

// NewSectionService creates a SectionService. An empty or unknown
// defaultTheme falls back to the palette default.
func NewSectionService(section *timeline.Section, palette *theme.Palette, defaultTheme string) *SectionService {
	if defaultTheme == "" {
		defaultTheme = palette.Default
	} else if _, err := palette.Get(defaultTheme); err != nil {
		defaultTheme = palette.Default
	}
	return &SectionService{
		section:      section,
		palette:      palette,
		defaultTheme: defaultTheme,
	}
}

// ThemeName resolves a requested theme name; unknown names give the default
func (s *SectionService) ThemeName(requested string) string {
	if _, err := s.palette.Get(requested); err == nil && requested != "" {
		return requested
	}
	return s.defaultTheme
}

// Themes lists the available theme names
func (s *SectionService) Themes() []string {
	return s.palette.Names()
}

// View renders the section with the named theme. When hovered is nil the
// section's own hover state is used.
func (s *SectionService) View(themeName string, hovered *timeline.Hover) timeline.View {
	colors := s.palette.MustGet(s.ThemeName(themeName))
	if hovered == nil {
		return s.section.Current(colors)
	}
	return s.section.View(colors, *hovered)
}

// Dispatch forwards a card event to the section
func (s *SectionService) Dispatch(ev timeline.Event) timeline.Hover {
	return s.section.Dispatch(ev)
}

// Hovered returns the section's hover state
func (s *SectionService) Hovered() timeline.Hover {
	return s.section.Hovered()
}

// Blobs returns the section's background blobs
func (s *SectionService) Blobs() []timeline.Blob {
	return s.section.Blobs()
}

// Len returns the number of cards in the section
func (s *SectionService) Len() int {
	return s.section.Len()
}

// Seed returns the seed the section was mounted with
func (s *SectionService) Seed() uint64 {
	return s.section.Seed()
}
