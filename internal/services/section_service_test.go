package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

func newSectionService(defaultTheme string) *SectionService {
	section := timeline.New(catalog.Projects(), timeline.WithSeed(3))
	return NewSectionService(section, theme.Default(), defaultTheme)
}

func TestSectionService_ThemeName(t *testing.T) {
	s := newSectionService("light")
	assert.Equal(t, "light", s.ThemeName(""))
	assert.Equal(t, "dark", s.ThemeName("dark"))
	assert.Equal(t, "light", s.ThemeName("neon"))

	assert.Equal(t, "dark", newSectionService("neon").ThemeName(""))
}

func TestSectionService_ThemeNameEmptyDefault(t *testing.T) {
	s := newSectionService("")
	assert.Equal(t, "dark", s.ThemeName(""))
	assert.Equal(t, "dark", s.ThemeName("neon"))
	assert.Equal(t, "light", s.ThemeName("light"))
	assert.Equal(t, []string{"dark", "light"}, s.Themes())
	assert.Equal(t, []string{"dark", "light"}, s.Themes())
}

func TestSectionService_View(t *testing.T) {
	s := newSectionService("")
	palette := theme.Default()

	v := s.View("light", nil)
	assert.Equal(t, palette.MustGet("light"), v.Theme)
	assert.True(t, v.Hovered.IsNone())

	s.Dispatch(timeline.Enter(1))
	assert.Equal(t, timeline.At(1), s.View("", nil).Hovered)

	// an explicit hover state does not touch the section's own state
	h := timeline.At(4)
	assert.Equal(t, h, s.View("", &h).Hovered)
	assert.Equal(t, timeline.At(1), s.Hovered())
}

func TestSectionService_Blobs(t *testing.T) {
	s := newSectionService("")
	assert.Len(t, s.Blobs(), catalog.Len())
	assert.Equal(t, uint64(3), s.Seed())
}
