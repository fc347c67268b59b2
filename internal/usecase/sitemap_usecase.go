package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// SitemapUseCase renders sitemap.xml and robots.txt from the site's static
// pages plus the published blog and project URLs.
type SitemapUseCase struct {
	baseURL     string
	blogUseCase *BlogUseCase
	projectUC   *ProjectUseCase
}

func NewSitemapUseCase(baseURL string, blogUseCase *BlogUseCase, projectUC *ProjectUseCase) *SitemapUseCase {
	return &SitemapUseCase{
		baseURL:     strings.TrimRight(baseURL, "/"),
		blogUseCase: blogUseCase,
		projectUC:   projectUC,
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var staticPages = []struct {
	path       string
	changeFreq string
	priority   string
}{
	{"/", "weekly", "1.0"},
	{"/about", "monthly", "0.8"},
	{"/projects", "weekly", "0.9"},
	{"/blog", "daily", "0.9"},
	{"/chat", "monthly", "0.5"},
}

// Sitemap builds the sitemap.xml document body.
func (uc *SitemapUseCase) Sitemap(ctx context.Context) ([]byte, error) {
	now := time.Now().Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        uc.baseURL + page.path,
			LastMod:    now,
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		})
	}

	posts, err := uc.blogUseCase.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        uc.baseURL + "/blog/" + post.Slug,
			LastMod:    post.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	projects, err := uc.projectUC.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, project := range projects {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        uc.baseURL + "/projects/" + project.ID,
			LastMod:    project.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}

// Robots builds robots.txt, keeping crawlers out of admin and API paths.
func (uc *SitemapUseCase) Robots() []byte {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /api/\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", uc.baseURL)
	return []byte(b.String())
}
