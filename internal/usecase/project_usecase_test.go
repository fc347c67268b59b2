package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/pkg/errors"
)

func TestProjectListCuratedOrder(t *testing.T) {
	uc := NewProjectUseCase(newFakeProjectRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, CreateProjectInput{Title: "Third", Description: "d", Order: 3})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateProjectInput{Title: "First", Description: "d", Order: 1, Featured: true})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateProjectInput{Title: "Second", Description: "d", Order: 2})
	require.NoError(t, err)

	projects, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "First", projects[0].Title)
	assert.Equal(t, "Second", projects[1].Title)
	assert.Equal(t, "Third", projects[2].Title)

	featured, err := uc.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "First", featured[0].Title)
}

func TestProjectUpdateAndDelete(t *testing.T) {
	uc := NewProjectUseCase(newFakeProjectRepo())
	ctx := context.Background()

	project, err := uc.Create(ctx, CreateProjectInput{Title: "Old", Description: "d"})
	require.NoError(t, err)
	assert.NotNil(t, project.Technologies)

	newTitle := "New"
	tech := []string{"go", "firestore"}
	updated, err := uc.Update(ctx, project.ID, UpdateProjectInput{
		Title:        &newTitle,
		Technologies: &tech,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, tech, updated.Technologies)
	assert.Equal(t, "d", updated.Description)

	require.NoError(t, uc.Delete(ctx, project.ID))

	_, err = uc.GetByID(ctx, project.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
