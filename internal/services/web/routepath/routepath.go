// Package routepath stores canonical HTTP paths for the site.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Services        = "/services"
	ServicesPrefix  = "/services/"
	ServicesPrivate = ServicesPrefix + "private"
	ServicesOnline  = ServicesPrefix + "online"
	ServicesGroup   = ServicesPrefix + "group"
	ServicesGlobal  = ServicesPrefix + "global"
	ServicesKids    = ServicesPrefix + "kids"
	Curriculum      = "/curriculum"
	Instructors     = "/instructors"
	Reviews         = "/reviews"
	Blog            = "/blog"
	BlogPrefix      = "/blog/"
	BlogPostPattern = BlogPrefix + "{slug}"
	Contact         = "/contact"
	Sitemap         = "/sitemap.xml"
	Robots          = "/robots.txt"
	Health          = "/up"
	StaticPrefix    = "/static/"
	Stylesheet      = StaticPrefix + "site.css"
)

// Page identifies one routed page of the site.
type Page struct {
	Name string
	Path string
}

var pages = []Page{
	{Name: "home", Path: Root},
	{Name: "services", Path: Services},
	{Name: "private", Path: ServicesPrivate},
	{Name: "online", Path: ServicesOnline},
	{Name: "group", Path: ServicesGroup},
	{Name: "global", Path: ServicesGlobal},
	{Name: "kids", Path: ServicesKids},
	{Name: "curriculum", Path: Curriculum},
	{Name: "instructors", Path: Instructors},
	{Name: "reviews", Path: Reviews},
	{Name: "blog", Path: Blog},
	{Name: "contact", Path: Contact},
}

// Pages returns the static page table in navigation order.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// IsPage reports whether path is one of the static pages.
func IsPage(path string) bool {
	for _, page := range pages {
		if page.Path == path {
			return true
		}
	}
	return false
}

// BlogPost returns the route for one blog post.
func BlogPost(slug string) string {
	return BlogPrefix + escapeSegment(slug)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
