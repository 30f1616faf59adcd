package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

func TestTerminal_Render(t *testing.T) {
	s := timeline.New(catalog.Projects(), timeline.WithSeed(1))
	v := s.View(theme.Default().MustGet("dark"), timeline.At(2))

	var buf bytes.Buffer
	require.NoError(t, NewTerminal(100).Render(&buf, v))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "Latest Works"))
	last := -1
	for _, p := range catalog.Projects() {
		pos := strings.Index(out, p.Title)
		require.NotEqual(t, -1, pos, p.Title)
		assert.Greater(t, pos, last)
		last = pos
	}
	assert.Contains(t, out, "Next.js")
	assert.NotContains(t, out, "code: #")
	assert.Contains(t, out, "focus: "+catalog.Projects()[2].Title)

	buf.Reset()
	require.NoError(t, NewTerminal(100).Render(&buf, s.View(theme.Default().MustGet("dark"), timeline.None)))
	assert.NotContains(t, buf.String(), "focus:")
}

func TestNewTerminal_MinWidth(t *testing.T) {
	assert.Equal(t, 40, NewTerminal(10).Width)
	assert.Equal(t, 120, NewTerminal(120).Width)
}
