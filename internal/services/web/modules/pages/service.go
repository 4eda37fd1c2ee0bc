package pages

import (
	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/seo"
)

// service resolves page metadata and service lookups for handlers.
type service struct {
	lookup func(slug string) (content.Service, bool)
}

func newService() service {
	return service{lookup: content.ServiceBySlug}
}

func (s service) serviceBySlug(slug string) (content.Service, bool) {
	if s.lookup == nil {
		return content.Service{}, false
	}
	return s.lookup(slug)
}

func (service) meta(resolver *webi18n.Resolver, path string, title webi18n.Key, description webi18n.Key) seo.PageMeta {
	return seo.PageMeta{
		Title:       resolver.Translate(title),
		Description: resolver.Translate(description),
		Path:        path,
	}
}
