package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/pkg/errors"
)

func seedPost(t *testing.T, uc *BlogUseCase, slug string, featured bool) {
	t.Helper()
	_, err := uc.Create(context.Background(), CreateBlogPostInput{
		Slug:     slug,
		Title:    "Title " + slug,
		Excerpt:  "excerpt",
		Content:  "content",
		Author:   "Author",
		Date:     "2026-08-31",
		Category: "engineering",
		Featured: featured,
	})
	require.NoError(t, err)
}

func TestBlogCreateRejectsDuplicateSlug(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())

	seedPost(t, uc, "hello-world", false)

	_, err := uc.Create(context.Background(), CreateBlogPostInput{
		Slug:     "hello-world",
		Title:    "Another",
		Excerpt:  "excerpt",
		Content:  "content",
		Author:   "Author",
		Date:     "2026-08-31",
		Category: "engineering",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestBlogListNewestFirst(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	seedPost(t, uc, "oldest", false)
	seedPost(t, uc, "middle", true)
	seedPost(t, uc, "newest", false)

	posts, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Slug)
	assert.Equal(t, "oldest", posts[2].Slug)

	featured, err := uc.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "middle", featured[0].Slug)

	recent, err := uc.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "newest", recent[0].Slug)
}

func TestBlogRecordView(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	seedPost(t, uc, "counted", false)

	views, err := uc.RecordView(ctx, "counted")
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = uc.RecordView(ctx, "counted")
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)

	_, err = uc.RecordView(ctx, "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestBlogToggleLikeIsIdempotent(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	seedPost(t, uc, "likeable", false)

	post, err := uc.ToggleLike(ctx, "likeable", "user-1", true)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes())

	// Liking twice does not double count.
	post, err = uc.ToggleLike(ctx, "likeable", "user-1", true)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes())

	post, err = uc.ToggleLike(ctx, "likeable", "user-2", true)
	require.NoError(t, err)
	assert.Equal(t, 2, post.Likes())

	post, err = uc.ToggleLike(ctx, "likeable", "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes())
}

func TestBlogUpdateAndDelete(t *testing.T) {
	uc := NewBlogUseCase(newFakeBlogRepo())
	ctx := context.Background()

	seedPost(t, uc, "editable", false)
	post, err := uc.GetBySlug(ctx, "editable")
	require.NoError(t, err)

	newTitle := "Rewritten"
	trending := true
	updated, err := uc.Update(ctx, post.ID, UpdateBlogPostInput{
		Title:    &newTitle,
		Trending: &trending,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rewritten", updated.Title)
	assert.True(t, updated.Trending)
	assert.Equal(t, "excerpt", updated.Excerpt)

	require.NoError(t, uc.Delete(ctx, post.ID))

	_, err = uc.GetBySlug(ctx, "editable")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
