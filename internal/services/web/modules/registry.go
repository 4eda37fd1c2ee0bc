package modules

import (
	"github.com/fromvivianmusic/fvm-web/internal/services/web/modules/assets"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/modules/blog"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/modules/crawl"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/modules/pages"
)

// DefaultModules returns every module the site mounts, in mount order.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		pages.New(deps.Renderer),
		blog.New(deps.Renderer, deps.Blog),
		crawl.New(deps.SiteURL, deps.Blog),
		assets.New(),
	}
}
