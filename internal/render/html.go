// Package render turns timeline views into HTML and terminal output.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"latestworks.dev/internal/theme"
	"latestworks.dev/internal/timeline"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options controls how links and assets are written
type Options struct {
	// AssetPrefix is prepended to project image paths (e.g. "/static")
	AssetPrefix string
	// TrackLinks routes outbound links through /go/{index}/{kind}
	TrackLinks bool
	// HoverEndpoint, when set, receives hover events from the page
	HoverEndpoint string
}

// Renderer renders sections and full pages
type Renderer struct {
	tmpl *template.Template
	opts Options
}

// NewHTML parses the embedded templates
func NewHTML(opts Options) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, opts: opts}, nil
}

// Page is the data for a full HTML document
type Page struct {
	Title     string
	ThemeName string
	Themes    []string
	View      timeline.View
}

type link struct {
	Label string
	Href  string
	Live  bool
}

type cardData struct {
	timeline.Card
	Image       string
	Style       template.CSS
	AccentStyle template.CSS
	TagStyle    template.CSS
	Links       []link
}

type segmentData struct {
	Text  string
	Class string
	Style template.CSS
}

type sectionData struct {
	ID             string
	Heading        string
	SectionStyle   template.CSS
	HeadingStyle   template.CSS
	UnderlineStyle template.CSS
	DividerStyle   template.CSS
	NoteBoxStyle   template.CSS
	LeadStyle      template.CSS
	FooterStyle    template.CSS
	PulseStyle     template.CSS
	StatusStyle    template.CSS
	BadgeStyle     template.CSS
	TextStyle      template.CSS
	Blobs          []template.CSS
	Cards          []cardData
	Note           timeline.Note
	Segments       []segmentData
	HoverEndpoint  string
	Hovered        string
}

type pageData struct {
	Title     string
	ThemeName string
	Themes    []string
	BodyStyle template.CSS
	Section   sectionData
}

// Section writes the section fragment
func (r *Renderer) Section(w io.Writer, v timeline.View) error {
	if err := r.tmpl.ExecuteTemplate(w, "section", r.sectionData(v)); err != nil {
		return fmt.Errorf("rendering section: %w", err)
	}
	return nil
}

// Page writes a complete HTML document containing the section
func (r *Renderer) Page(w io.Writer, p Page) error {
	data := pageData{
		Title:     p.Title,
		ThemeName: p.ThemeName,
		Themes:    p.Themes,
		BodyStyle: styles("margin", "0", "background-color", p.View.Theme.BG, "color", p.View.Theme.Text),
		Section:   r.sectionData(p.View),
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

func (r *Renderer) sectionData(v timeline.View) sectionData {
	c := v.Theme
	return sectionData{
		ID:             v.ID,
		Heading:        v.Heading,
		SectionStyle:   styles("background-color", c.BG),
		HeadingStyle:   styles("color", c.PrimaryColor, "background-color", c.BG),
		UnderlineStyle: styles("background-color", c.PrimaryColor),
		DividerStyle:   styles("background-color", c.PrimaryColor),
		NoteBoxStyle: styles(
			"background-color", c.CardBG,
			"border", "1px solid "+c.BorderLight,
			"box-shadow", "0 4px 20px "+c.Shadow,
		),
		LeadStyle:   styles("color", c.PrimaryColor),
		TextStyle:   styles("color", c.Text),
		FooterStyle: styles("border-color", c.BorderLight),
		PulseStyle:  styles("background-color", c.AccentRed),
		StatusStyle: styles("color", c.SummeryText),
		BadgeStyle: styles(
			"background-color", c.CardSecondary,
			"color", c.Secondary,
			"border", "1px solid "+c.Border,
		),
		Blobs: lo.Map(v.Blobs, func(b timeline.Blob, _ int) template.CSS { return BlobStyle(b) }),
		Cards: lo.Map(v.Cards, func(card timeline.Card, _ int) cardData { return r.cardData(card, c) }),
		Note:  v.Note,
		Segments: lo.Map(v.Note.Segments, func(s timeline.Segment, _ int) segmentData {
			return segmentData{
				Text:  s.Text,
				Class: weightClass(s.Weight),
				Style: styles("color", c.Role(s.Role)),
			}
		}),
		HoverEndpoint: r.opts.HoverEndpoint,
		Hovered:       v.Hovered.String(),
	}
}

func (r *Renderer) cardData(card timeline.Card, c theme.Colors) cardData {
	p := card.Project
	border := c.Border
	if card.Hovered {
		border = p.ProjectColor
	}
	return cardData{
		Card:        card,
		Image:       r.opts.AssetPrefix + p.Image,
		Style:       styles("background-color", c.CardBG, "border", "1px solid "+border, "box-shadow", "0 4px 20px "+c.Shadow, "color", c.Text),
		AccentStyle: styles("background-color", p.ProjectColor),
		TagStyle:    styles("background-color", c.CardSecondary, "color", c.Secondary, "border", "1px solid "+c.Border),
		Links: []link{
			r.link("Live Demo", card.Index, "demo", p.LiveDemo, p.HasLiveDemo()),
			r.link("Code", card.Index, "repo", p.GitHubRepo, p.HasRepo()),
		},
	}
}

func (r *Renderer) link(label string, index int, kind, target string, live bool) link {
	if !live {
		return link{Label: label}
	}
	href := target
	if r.opts.TrackLinks {
		href = "/go/" + strconv.Itoa(index) + "/" + kind
	}
	return link{Label: label, Href: href, Live: true}
}

// BlobStyle returns the inline style for a background blob. The drift
// target is passed as custom properties read by the blob-drift keyframes.
func BlobStyle(b timeline.Blob) template.CSS {
	return styles(
		"background-color", b.Color,
		"width", px(b.Width),
		"height", px(b.Height),
		"left", pct(b.Left),
		"top", pct(b.Top),
		"opacity", num(b.Opacity),
		"filter", "blur("+px(b.Blur)+")",
		"--dx", px(b.DriftX),
		"--dy", px(b.DriftY),
		"animation", "blob-drift "+num(b.Duration)+"s ease-in-out infinite alternate",
	)
}

// styles joins property/value pairs into an inline style. Values come from
// the theme and the project list, both of which are operator supplied.
func styles(kv ...string) template.CSS {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv[i])
		b.WriteString(": ")
		b.WriteString(kv[i+1])
	}
	return template.CSS(b.String())
}

func weightClass(weight string) string {
	if weight == "" {
		return ""
	}
	return "font-" + weight
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }
func px(f float64) string  { return num(f) + "px" }
func pct(f float64) string { return num(f) + "%" }
