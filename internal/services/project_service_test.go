package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latestworks.dev/internal/catalog"
	"latestworks.dev/internal/models"
)

func newProjectService() *ProjectService {
	return NewProjectService(&models.ProjectList{Projects: catalog.Projects()})
}

func TestProjectService_GetByIndex(t *testing.T) {
	s := newProjectService()

	p, err := s.GetByIndex(2)
	require.NoError(t, err)
	assert.Equal(t, "VIAI", p.Title)

	_, err = s.GetByIndex(7)
	assert.ErrorIs(t, err, ErrProjectNotFound)
	_, err = s.GetByIndex(-1)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_GetBySlug(t *testing.T) {
	s := newProjectService()

	p, i, err := s.GetBySlug("modern-portfolio")
	require.NoError(t, err)
	assert.Equal(t, 4, i)
	assert.Equal(t, "Modern Portfolio", p.Title)

	_, _, err = s.GetBySlug("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_Link(t *testing.T) {
	s := newProjectService()

	tests := []struct {
		name    string
		index   int
		kind    string
		want    string
		wantErr error
	}{
		{name: "demo", index: 0, kind: LinkDemo, want: "https://speakfeed.com/en"},
		{name: "repo", index: 4, kind: LinkRepo, want: "https://github.com/Ranjan404/my-portfolio"},
		{name: "placeholder repo", index: 0, kind: LinkRepo, wantErr: ErrNoLink},
		{name: "unknown kind", index: 0, kind: "docs", wantErr: ErrUnknownLinkKind},
		{name: "out of range", index: 9, kind: LinkDemo, wantErr: ErrProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, target, err := s.Link(tt.index, tt.kind)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, target)
		})
	}
}
