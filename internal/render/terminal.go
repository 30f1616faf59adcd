package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"latestworks.dev/internal/timeline"
)

// Terminal renders a view as styled text for a terminal preview
type Terminal struct {
	Width int
}

// NewTerminal returns a terminal renderer of the given width
func NewTerminal(width int) *Terminal {
	if width < 40 {
		width = 40
	}
	return &Terminal{Width: width}
}

// Render writes the timeline: heading, cards alternating around a single
// vertical rule, then the closing note
func (t *Terminal) Render(w io.Writer, v timeline.View) error {
	c := v.Theme
	cardWidth := (t.Width - 3) / 2

	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(color(c.PrimaryColor)).
		Underline(true).
		Width(t.Width).
		Align(lipgloss.Center).
		Render(v.Heading)

	rule := lipgloss.NewStyle().Foreground(color(c.PrimaryColor))

	var rows []string
	rows = append(rows, heading, "")
	for _, card := range v.Cards {
		box := t.card(card, v, cardWidth)
		height := lipgloss.Height(box)
		spine := rule.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
		blank := lipgloss.NewStyle().Width(cardWidth).Render("")

		if card.Side == timeline.Left {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, box, " ", spine, " ", blank))
		} else {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blank, " ", spine, " ", box))
		}
	}
	rows = append(rows, "", t.note(v))
	if card, ok := v.HoveredCard(); ok {
		focus := lipgloss.NewStyle().Foreground(color(card.Project.ProjectColor))
		rows = append(rows, "", focus.Render("focus: "+card.Project.Title))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

func (t *Terminal) card(card timeline.Card, v timeline.View, width int) string {
	p := card.Project
	c := v.Theme

	border := color(c.Border)
	if card.Hovered {
		border = color(p.ProjectColor)
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(color(p.ProjectColor)).Render(p.Title)
	subtitle := lipgloss.NewStyle().Italic(true).Foreground(color(c.SummeryText)).Render(p.Subtitle)
	tags := lipgloss.NewStyle().Foreground(color(c.Secondary)).Render(strings.Join(p.Tags, " · "))

	links := []string{}
	if p.HasLiveDemo() {
		links = append(links, "demo: "+p.LiveDemo)
	}
	if p.HasRepo() {
		links = append(links, "code: "+p.GitHubRepo)
	}

	body := []string{title, subtitle, "", p.Description, "", tags}
	if len(links) > 0 {
		body = append(body, "", strings.Join(links, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(color(c.Text)).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(body, "\n"))
}

func (t *Terminal) note(v timeline.View) string {
	c := v.Theme
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color(c.PrimaryColor)).Render(v.Note.Lead + " "))
	for _, s := range v.Note.Segments {
		style := lipgloss.NewStyle().Foreground(color(c.Role(s.Role)))
		if s.Weight != "" {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(s.Text))
	}

	footer := lipgloss.NewStyle().Foreground(color(c.AccentRed)).Render("●") + " " +
		lipgloss.NewStyle().Foreground(color(c.SummeryText)).Render(strings.ToUpper(v.Note.Status)) + "  " +
		lipgloss.NewStyle().Foreground(color(c.Secondary)).Render("["+v.Note.Badge+"]")

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(color(c.Border)).
		Padding(0, 1).
		Width(t.Width - 2).
		Render(b.String() + "\n\n" + footer)
}

// color converts a theme value to a terminal colour. Only hex values are
// understood; anything else (rgba, named colours) renders uncoloured.
func color(v string) lipgloss.TerminalColor {
	if strings.HasPrefix(v, "#") {
		return lipgloss.Color(v)
	}
	return lipgloss.NoColor{}
}
