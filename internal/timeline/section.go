// Package timeline builds the "Latest Works" section: one card per project
// in order, a decorative blob per project, a heading, a single vertical
// divider and a closing note. The section owns the hover state; cards only
// report pointer events.
package timeline

import (
	"math/rand"
	"sync"

	"github.com/samber/lo"

	"latestworks.dev/internal/models"
	"latestworks.dev/internal/theme"
)

const (
	// AnchorID is the element id used for in-page navigation
	AnchorID = "projects"

	DefaultHeading = "Latest Works"
)

// Side places a card on one side of the divider
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Card is what a card renderer receives for one project
type Card struct {
	Index   int            `json:"index"`
	Project models.Project `json:"project"`
	Hovered bool           `json:"hovered"`
	Side    Side           `json:"side"`
}

// View is a render-ready snapshot of the section
type View struct {
	ID      string       `json:"id"`
	Heading string       `json:"heading"`
	Theme   theme.Colors `json:"theme"`
	Blobs   []Blob       `json:"blobs"`
	Cards   []Card       `json:"cards"`
	Note    Note         `json:"note"`
	Hovered Hover        `json:"hovered"`
}

// Section is a mounted timeline. Blob parameters are fixed when the section
// is created and reused by every View.
type Section struct {
	projects []models.Project
	blobs    []Blob
	heading  string
	note     Note
	seed     uint64
	seeded   bool

	mu      sync.RWMutex
	hovered Hover
}

// Option configures a Section
type Option func(*Section)

// WithSeed fixes the seed used for the decorative blobs
func WithSeed(seed uint64) Option {
	return func(s *Section) {
		s.seed = seed
		s.seeded = true
	}
}

// WithHeading overrides the section heading
func WithHeading(heading string) Option {
	return func(s *Section) {
		if heading != "" {
			s.heading = heading
		}
	}
}

// WithNote overrides the closing note
func WithNote(note Note) Option {
	return func(s *Section) {
		s.note = note
	}
}

// New mounts a section for the given projects. Without WithSeed a random
// seed is drawn once here.
func New(projects []models.Project, opts ...Option) *Section {
	s := &Section{
		projects: append([]models.Project(nil), projects...),
		heading:  DefaultHeading,
		note:     DefaultNote(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.seeded {
		s.seed = rand.Uint64()
	}

	s.blobs = lo.Map(s.projects, func(p models.Project, i int) Blob {
		return BlobFor(s.seed, i, p.ProjectColor)
	})
	return s
}

// Seed returns the seed the blobs were derived from
func (s *Section) Seed() uint64 { return s.seed }

// Len returns the number of projects (and cards)
func (s *Section) Len() int { return len(s.projects) }

// Heading returns the section heading
func (s *Section) Heading() string { return s.heading }

// Projects returns the projects in display order
func (s *Section) Projects() []models.Project {
	return append([]models.Project(nil), s.projects...)
}

// Blobs returns the background blobs, one per project
func (s *Section) Blobs() []Blob {
	return append([]Blob(nil), s.blobs...)
}

// Hovered returns the current hover state
func (s *Section) Hovered() Hover {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hovered
}

// Dispatch applies a card event to the hover state and returns the new
// state. Events for indices outside the project list are ignored.
func (s *Section) Dispatch(ev Event) Hover {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.Index < 0 || ev.Index >= len(s.projects) {
		return s.hovered
	}
	s.hovered = s.hovered.Apply(ev)
	return s.hovered
}

// View projects the section into a render-ready value for the given theme
// and hover state. Hover indices outside the list leave every card idle.
func (s *Section) View(colors theme.Colors, hovered Hover) View {
	cards := lo.Map(s.projects, func(p models.Project, i int) Card {
		side := Left
		if i%2 == 1 {
			side = Right
		}
		return Card{
			Index:   i,
			Project: p,
			Hovered: hovered.Is(i),
			Side:    side,
		}
	})

	return View{
		ID:      AnchorID,
		Heading: s.heading,
		Theme:   colors,
		Blobs:   s.Blobs(),
		Cards:   cards,
		Note:    s.note,
		Hovered: hovered,
	}
}

// Current is View with the section's own hover state
func (s *Section) Current(colors theme.Colors) View {
	return s.View(colors, s.Hovered())
}

// HoveredCard returns the hovered card of a view, if any
func (v View) HoveredCard() (Card, bool) {
	return lo.Find(v.Cards, func(c Card) bool { return c.Hovered })
}
