package crawl

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/fromvivianmusic/fvm-web/internal/platform/branding"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Location string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
}

type service struct {
	siteURL string
	posts   *content.Blog
}

func newService(siteURL string, posts *content.Blog) service {
	base := strings.TrimRight(strings.TrimSpace(siteURL), "/")
	if base == "" {
		base = branding.DefaultSiteURL
	}
	return service{siteURL: base, posts: posts}
}

// sitemap lists every routed page and blog post, sorted by location.
func (s service) sitemap() ([]byte, error) {
	entries := make([]sitemapURL, 0, len(routepath.Pages()))
	for _, page := range routepath.Pages() {
		entries = append(entries, sitemapURL{Location: s.siteURL + page.Path})
	}
	for _, post := range s.posts.Posts() {
		entries = append(entries, sitemapURL{
			Location: s.siteURL + routepath.BlogPost(post.Slug),
			LastMod:  post.Date.Format(content.PostDateLayout),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Location < entries[j].Location
	})

	payload, err := xml.MarshalIndent(urlSet{XMLNS: sitemapNamespace, URLs: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(payload, '\n')...), nil
}

func (s service) robots() string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Sitemap: %s%s\n", s.siteURL, routepath.Sitemap))
	return builder.String()
}
