package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/models"
	"latestworks.dev/internal/render"
	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

const siteTitle = "Portfolio"

// exportData is the JSON written next to the HTML so a static host can
// rebuild the same layout
type exportData struct {
	Seed     string           `json:"seed"`
	Theme    string           `json:"theme"`
	Projects []models.Project `json:"projects"`
	Blobs    []timeline.Blob  `json:"blobs"`
}

// exportOptions selects what gets rendered. A zero Seed draws a random one.
type exportOptions struct {
	Seed  uint64
	Theme string
	Title string
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir> [seed] [theme]")
		os.Exit(1)
	}

	opts := exportOptions{Title: siteTitle}
	if len(os.Args) > 2 {
		seed, err := strconv.ParseUint(os.Args[2], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid seed %q: %v\n", os.Args[2], err)
			os.Exit(1)
		}
		opts.Seed = seed
	}
	if len(os.Args) > 3 {
		opts.Theme = os.Args[3]
	}

	files, err := export(os.Args[1], opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Printf("  Created %s\n", f)
	}
	fmt.Println("Done!")
}

// export renders the section into outputDir and returns the written paths
func export(outputDir string, opts exportOptions) ([]string, error) {
	palette := theme.Default()
	themeName := opts.Theme
	if themeName == "" {
		themeName = palette.Default
	}
	colors, err := palette.Get(themeName)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, palette.Names())
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var sectionOpts []timeline.Option
	if opts.Seed != 0 {
		sectionOpts = append(sectionOpts, timeline.WithSeed(opts.Seed))
	}
	section := timeline.New(catalog.Projects(), sectionOpts...)
	fmt.Printf("Rendering %d projects (seed %d, theme %s)...\n", section.Len(), section.Seed(), themeName)

	renderer, err := render.NewHTML(render.Options{})
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := renderer.Page(&html, render.Page{
		Title:     opts.Title,
		ThemeName: themeName,
		View:      section.View(colors, timeline.None),
	}); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	data, err := json.MarshalIndent(exportData{
		Seed:     strconv.FormatUint(section.Seed(), 10),
		Theme:    themeName,
		Projects: section.Projects(),
		Blobs:    section.Blobs(),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}

	htmlPath := filepath.Join(outputDir, "projects.html")
	jsonPath := filepath.Join(outputDir, "projects.json")
	if err := os.WriteFile(htmlPath, html.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", htmlPath, err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", jsonPath, err)
	}
	return []string{htmlPath, jsonPath}, nil
}
