package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files, err := export(dir, exportOptions{Seed: 42, Theme: "light", Title: siteTitle})
	require.NoError(t, err)
	require.Len(t, files, 2)

	html, err := os.ReadFile(filepath.Join(dir, "projects.html"))
	require.NoError(t, err)
	page := string(html)
	assert.Contains(t, page, "<title>"+siteTitle+"</title>")
	assert.Equal(t, 1, strings.Count(page, "Latest Works"))
	assert.Contains(t, page, `data-theme="light"`)
	assert.Equal(t, catalog.Len(), strings.Count(page, `<article class="card"`))

	raw, err := os.ReadFile(filepath.Join(dir, "projects.json"))
	require.NoError(t, err)
	var data exportData
	require.NoError(t, json.Unmarshal(raw, &data))
	assert.Equal(t, "42", data.Seed)
	assert.Equal(t, "light", data.Theme)
	assert.Equal(t, catalog.Projects(), data.Projects)
	require.Len(t, data.Blobs, catalog.Len())
	for i, p := range catalog.Projects() {
		assert.Equal(t, timeline.BlobFor(42, i, p.ProjectColor), data.Blobs[i])
	}
}

func TestExport_SameSeedSameOutput(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	_, err := export(a, exportOptions{Seed: 7, Title: siteTitle})
	require.NoError(t, err)
	_, err = export(b, exportOptions{Seed: 7, Title: siteTitle})
	require.NoError(t, err)

	for _, name := range []string{"projects.html", "projects.json"} {
		x, err := os.ReadFile(filepath.Join(a, name))
		require.NoError(t, err)
		y, err := os.ReadFile(filepath.Join(b, name))
		require.NoError(t, err)
		assert.Equal(t, x, y, name)
	}
}

func TestExport_UnknownTheme(t *testing.T) {
	dir := t.TempDir()
	_, err := export(dir, exportOptions{Seed: 1, Theme: "neon"})
	require.ErrorIs(t, err, theme.ErrUnknownTheme)

	_, statErr := os.Stat(filepath.Join(dir, "projects.html"))
	assert.True(t, os.IsNotExist(statErr))
}
