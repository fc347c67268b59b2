package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapIncludesContentURLs(t *testing.T) {
	blogUC := NewBlogUseCase(newFakeBlogRepo())
	projectUC := NewProjectUseCase(newFakeProjectRepo())
	uc := NewSitemapUseCase("https://example.dev/", blogUC, projectUC)
	ctx := context.Background()

	seedPost(t, blogUC, "my-first-post", false)
	project, err := projectUC.Create(ctx, CreateProjectInput{Title: "Demo", Description: "d"})
	require.NoError(t, err)

	body, err := uc.Sitemap(ctx)
	require.NoError(t, err)

	xml := string(body)
	assert.Contains(t, xml, "<?xml")
	assert.Contains(t, xml, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, xml, "<loc>https://example.dev/</loc>")
	assert.Contains(t, xml, "<loc>https://example.dev/blog/my-first-post</loc>")
	assert.Contains(t, xml, "<loc>https://example.dev/projects/"+project.ID+"</loc>")
	// The trailing slash on the base URL must not double up.
	assert.NotContains(t, xml, "example.dev//")
}

func TestRobotsBlocksAdminPaths(t *testing.T) {
	uc := NewSitemapUseCase("https://example.dev", NewBlogUseCase(newFakeBlogRepo()), NewProjectUseCase(newFakeProjectRepo()))

	robots := string(uc.Robots())
	assert.True(t, strings.HasPrefix(robots, "User-agent: *"))
	assert.Contains(t, robots, "Disallow: /admin/")
	assert.Contains(t, robots, "Disallow: /api/")
	assert.Contains(t, robots, "Sitemap: https://example.dev/sitemap.xml")
}
