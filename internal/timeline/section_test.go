package timeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/models"
	"latestworks.dev/internal/theme"
)

func TestSection_View_OneCardPerProjectInOrder(t *testing.T) {
	projects := catalog.Projects()
	s := New(projects, WithSeed(1))

	v := s.View(theme.Default().MustGet(""), None)

	require.Len(t, v.Cards, 7)
	assert.Equal(t, AnchorID, v.ID)
	assert.Equal(t, "Latest Works", v.Heading)
	for i, c := range v.Cards {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, projects[i].Title, c.Project.Title)
		assert.False(t, c.Hovered)
	}
	assert.Equal(t, Left, v.Cards[0].Side)
	assert.Equal(t, Right, v.Cards[1].Side)
	assert.Equal(t, Left, v.Cards[2].Side)
}

func TestSection_Blobs(t *testing.T) {
	projects := catalog.Projects()
	s := New(projects, WithSeed(99))

	blobs := s.Blobs()
	require.Len(t, blobs, len(projects))
	for i, b := range blobs {
		assert.Equal(t, BlobFor(99, i, projects[i].ProjectColor), b)
	}

	// blobs are fixed at mount time, not recomputed per view
	v1 := s.View(theme.Colors{}, None)
	v2 := s.View(theme.Colors{}, At(2))
	assert.Equal(t, v1.Blobs, v2.Blobs)

	// same seed, same layout
	assert.Equal(t, blobs, New(projects, WithSeed(99)).Blobs())
	assert.Equal(t, uint64(99), s.Seed())
}

func TestSection_RandomSeedIsStable(t *testing.T) {
	s := New(catalog.Projects())
	assert.Equal(t, s.Blobs(), s.Blobs())
	assert.Equal(t, s.Blobs(), New(catalog.Projects(), WithSeed(s.Seed())).Blobs())
}

func TestSection_Dispatch(t *testing.T) {
	s := New(catalog.Projects(), WithSeed(1))
	assert.True(t, s.Hovered().IsNone())

	s.Dispatch(Enter(3))
	s.Dispatch(Enter(5))
	v := s.Current(theme.Colors{})

	hovered := 0
	for _, c := range v.Cards {
		if c.Hovered {
			hovered++
			assert.Equal(t, 5, c.Index)
		}
	}
	assert.Equal(t, 1, hovered)

	card, ok := v.HoveredCard()
	require.True(t, ok)
	assert.Equal(t, 5, card.Index)

	assert.Equal(t, None, s.Dispatch(Leave(5)))
	_, ok = s.Current(theme.Colors{}).HoveredCard()
	assert.False(t, ok)
}

func TestSection_DispatchIgnoresOutOfRange(t *testing.T) {
	s := New(catalog.Projects(), WithSeed(1))
	s.Dispatch(Enter(2))

	assert.Equal(t, At(2), s.Dispatch(Enter(7)))
	assert.Equal(t, At(2), s.Dispatch(Enter(-1)))
	assert.Equal(t, At(2), s.Dispatch(Leave(100)))
}

func TestSection_ViewWithOutOfRangeHover(t *testing.T) {
	s := New(catalog.Projects(), WithSeed(1))
	v := s.View(theme.Colors{}, At(42))
	_, ok := v.HoveredCard()
	assert.False(t, ok)
}

func TestSection_ConcurrentDispatch(t *testing.T) {
	s := New(catalog.Projects(), WithSeed(1))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(Enter(i % s.Len()))
			_ = s.Current(theme.Colors{})
		}(i)
	}
	wg.Wait()

	count := 0
	for _, c := range s.Current(theme.Colors{}).Cards {
		if c.Hovered {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSection_Options(t *testing.T) {
	note := Note{Lead: "Hi", Status: "Now", Badge: "Go"}
	s := New([]models.Project{{Title: "One", ProjectColor: "#111111"}},
		WithSeed(5), WithHeading("Selected Work"), WithNote(note))

	v := s.View(theme.Colors{}, None)
	assert.Equal(t, "Selected Work", v.Heading)
	assert.Equal(t, note, v.Note)
	assert.Len(t, v.Blobs, 1)

	assert.Equal(t, DefaultHeading, New(nil, WithHeading("")).Heading())
}

func TestSection_EmptyList(t *testing.T) {
	s := New(nil, WithSeed(1))
	v := s.View(theme.Colors{}, None)
	assert.Empty(t, v.Cards)
	assert.Empty(t, v.Blobs)
	assert.Equal(t, None, s.Dispatch(Enter(0)))
}

func TestDefaultNote(t *testing.T) {
	n := DefaultNote()
	assert.Equal(t, "Project Selection:", n.Lead)
	assert.Equal(t, "Currently Mastering", n.Status)
	assert.Equal(t, "Next.js", n.Badge)
	assert.NotEmpty(t, n.Segments)
}
