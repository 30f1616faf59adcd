package main

import (
	"flag"
	"fmt"
	"os"

	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/render"
	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

func main() {
	themeName := flag.String("theme", "", "theme name (default: palette default)")
	themesFile := flag.String("themes", "", "YAML palette file")
	hovered := flag.Int("hovered", -1, "index of the card to highlight")
	width := flag.Int("width", 110, "output width in columns")
	flag.Parse()

	palette := theme.Default()
	if *themesFile != "" {
		p, err := theme.Load(*themesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading themes: %v\n", err)
			os.Exit(1)
		}
		palette = p
	}

	colors, err := palette.Get(*themeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (available: %v)\n", err, palette.Names())
		os.Exit(1)
	}

	section := timeline.New(catalog.Projects())
	if *hovered >= 0 {
		section.Dispatch(timeline.Enter(*hovered))
	}

	if err := render.NewTerminal(*width).Render(os.Stdout, section.Current(colors)); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
}
