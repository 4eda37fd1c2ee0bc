// Package seo turns a page's metadata record into the document head tags
// crawlers and link unfurlers read.
package seo

import (
	"log"
	"strings"

	"github.com/fromvivianmusic/fvm-web/internal/platform/branding"
	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/shared/i18nhttp"
)

// Keywords is the fixed keyword list published on every page.
const Keywords = "보컬 레슨, 보컬 트레이닝, 노래 레슨, 보컬 학원, K-POP 보컬, 키즈 보컬, 온라인 보컬 레슨, 프라이빗 보컬 레슨, vocal lesson, vocal training, FVM"

const (
	ogTypeWebsite    = "website"
	twitterCardLarge = "summary_large_image"
	robotsNoIndex    = "noindex,nofollow"
	hreflangDefault  = "x-default"
)

// PageMeta is the literal metadata one page supplies per render.
type PageMeta struct {
	Title       string
	Description string
	Path        string
	Image       string
	NoIndex     bool
}

// OpenGraph holds og:* properties.
type OpenGraph struct {
	Type        string
	Title       string
	Description string
	URL         string
	Image       string
	SiteName    string
	Locale      string
}

// TwitterCard holds twitter:* properties.
type TwitterCard struct {
	Card        string
	Title       string
	Description string
	Image       string
}

// Alternate is one hreflang link.
type Alternate struct {
	HrefLang string
	Href     string
}

// Head is the complete set of head tags for one page view.
type Head struct {
	Lang           platformi18n.Language
	Title          string
	Description    string
	Keywords       string
	Canonical      string
	Robots         string
	OpenGraph      OpenGraph
	Twitter        TwitterCard
	Alternates     []Alternate
	StructuredData []string
}

// Publisher composes heads against one site origin.
type Publisher struct {
	SiteURL string
	Logger  *log.Logger
}

// Publish composes head tags for meta against the production origin.
func Publish(meta PageMeta, lang platformi18n.Language) Head {
	return Publisher{}.Publish(meta, lang)
}

// Publish composes head tags for meta in lang.
func (p Publisher) Publish(meta PageMeta, lang platformi18n.Language) Head {
	if !lang.Valid() {
		lang = platformi18n.Default()
	}
	siteURL := p.siteURL()
	path := normalizePath(meta.Path)
	canonical := siteURL + path
	title := FullTitle(meta.Title, path)
	image := strings.TrimSpace(meta.Image)
	if image == "" {
		image = siteURL + branding.OpenGraphImagePath
	}

	head := Head{
		Lang:        lang,
		Title:       title,
		Description: meta.Description,
		Keywords:    Keywords,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Type:        ogTypeWebsite,
			Title:       title,
			Description: meta.Description,
			URL:         canonical,
			Image:       image,
			SiteName:    branding.SiteName,
			Locale:      lang.OGLocale(),
		},
		Twitter: TwitterCard{
			Card:        twitterCardLarge,
			Title:       title,
			Description: meta.Description,
			Image:       image,
		},
		Alternates: alternates(canonical),
	}
	if meta.NoIndex {
		head.Robots = robotsNoIndex
	}
	head.StructuredData = p.structuredData(siteURL, path, title, meta.Description, canonical)
	return head
}

// FullTitle appends the brand suffix everywhere except the home page.
func FullTitle(title string, path string) string {
	title = strings.TrimSpace(title)
	if normalizePath(path) == "/" {
		return title
	}
	if title == "" {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

func (p Publisher) siteURL() string {
	siteURL := strings.TrimRight(strings.TrimSpace(p.SiteURL), "/")
	if siteURL == "" {
		return branding.DefaultSiteURL
	}
	return siteURL
}

func (p Publisher) logger() *log.Logger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func alternates(canonical string) []Alternate {
	out := make([]Alternate, 0, len(platformi18n.Supported())+1)
	for _, lang := range platformi18n.Supported() {
		out = append(out, Alternate{
			HrefLang: lang.String(),
			Href:     canonical + "?" + i18nhttp.LangParam + "=" + lang.String(),
		})
	}
	return append(out, Alternate{HrefLang: hreflangDefault, Href: canonical})
}
