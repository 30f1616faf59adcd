// Package theme defines the colour roles used by the timeline and the
// palettes that map theme names to concrete colour values.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var defaultPalette []byte

// ErrUnknownTheme is returned when a palette has no theme of the requested name
var ErrUnknownTheme = errors.New("unknown theme")

// Colors maps semantic colour roles to CSS colour values
type Colors struct {
	BG            string `yaml:"bg" json:"bg"`
	PrimaryColor  string `yaml:"primaryColor" json:"primaryColor"`
	Text          string `yaml:"text" json:"text"`
	CardBG        string `yaml:"cardBg" json:"cardBg"`
	Border        string `yaml:"border" json:"border"`
	BorderLight   string `yaml:"borderLight" json:"borderLight"`
	Shadow        string `yaml:"shadow" json:"shadow"`
	AccentBlue    string `yaml:"accentBlue" json:"accentBlue"`
	AccentGreen   string `yaml:"accentGreen" json:"accentGreen"`
	AccentGold    string `yaml:"accentGold" json:"accentGold"`
	AccentRed     string `yaml:"accentRed" json:"accentRed"`
	CardSecondary string `yaml:"cardSecondary" json:"cardSecondary"`
	Secondary     string `yaml:"secondary" json:"secondary"`
	SummeryText   string `yaml:"summeryText" json:"summeryText"`
}

// Role returns the colour for a role name as written in palette files
// (e.g. "accentBlue"). Unknown roles fall back to the text colour.
func (c Colors) Role(name string) string {
	switch name {
	case "bg":
		return c.BG
	case "primaryColor":
		return c.PrimaryColor
	case "cardBg":
		return c.CardBG
	case "border":
		return c.Border
	case "borderLight":
		return c.BorderLight
	case "shadow":
		return c.Shadow
	case "accentBlue":
		return c.AccentBlue
	case "accentGreen":
		return c.AccentGreen
	case "accentGold":
		return c.AccentGold
	case "accentRed":
		return c.AccentRed
	case "cardSecondary":
		return c.CardSecondary
	case "secondary":
		return c.Secondary
	case "summeryText":
		return c.SummeryText
	}
	return c.Text
}

// withDefaults fills empty roles from base
func (c Colors) withDefaults(base Colors) Colors {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&c.BG, base.BG)
	fill(&c.PrimaryColor, base.PrimaryColor)
	fill(&c.Text, base.Text)
	fill(&c.CardBG, base.CardBG)
	fill(&c.Border, base.Border)
	fill(&c.BorderLight, base.BorderLight)
	fill(&c.Shadow, base.Shadow)
	fill(&c.AccentBlue, base.AccentBlue)
	fill(&c.AccentGreen, base.AccentGreen)
	fill(&c.AccentGold, base.AccentGold)
	fill(&c.AccentRed, base.AccentRed)
	fill(&c.CardSecondary, base.CardSecondary)
	fill(&c.Secondary, base.Secondary)
	fill(&c.SummeryText, base.SummeryText)
	return c
}

// Palette is a named set of themes
type Palette struct {
	Default string            `yaml:"default"`
	Themes  map[string]Colors `yaml:"themes"`
}

// Default returns the built-in light/dark palette
func Default() *Palette {
	p, err := Parse(defaultPalette)
	if err != nil {
		panic("theme: invalid embedded palette: " + err.Error())
	}
	return p
}

// Parse decodes a palette from YAML
func Parse(data []byte) (*Palette, error) {
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}
	if len(p.Themes) == 0 {
		return nil, errors.New("palette has no themes")
	}
	if p.Default == "" {
		p.Default = p.Names()[0]
	}
	if _, ok := p.Themes[p.Default]; !ok {
		return nil, fmt.Errorf("default theme %q: %w", p.Default, ErrUnknownTheme)
	}
	return &p, nil
}

// Load reads a palette file and merges it over the built-in palette.
// Roles missing from a file theme are taken from the built-in theme of the
// same name, or from the built-in default theme.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette %s: %w", path, err)
	}
	custom, err := Parse(data)
	if err != nil {
		return nil, err
	}

	base := Default()
	for name, colors := range custom.Themes {
		fallback, ok := base.Themes[name]
		if !ok {
			fallback = base.Themes[base.Default]
		}
		base.Themes[name] = colors.withDefaults(fallback)
	}
	base.Default = custom.Default
	return base, nil
}

// Get returns the named theme. An empty name selects the default theme.
func (p *Palette) Get(name string) (Colors, error) {
	if name == "" {
		name = p.Default
	}
	c, ok := p.Themes[name]
	if !ok {
		return Colors{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return c, nil
}

// MustGet returns the named theme, or the default theme when the name is unknown
func (p *Palette) MustGet(name string) Colors {
	if c, err := p.Get(name); err == nil {
		return c
	}
	return p.Themes[p.Default]
}

// Names returns the theme names in sorted order
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.Themes))
	for name := range p.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
