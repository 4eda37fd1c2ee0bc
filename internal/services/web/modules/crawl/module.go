// Package crawl serves the machine-facing surfaces: sitemap, robots and health.
package crawl

import (
	"net/http"

	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	module "github.com/fromvivianmusic/fvm-web/internal/services/web/module"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

// Module provides crawler and health routes.
type Module struct {
	siteURL string
	posts   *content.Blog
}

// New returns a crawl module publishing absolute URLs under siteURL.
func New(siteURL string, posts *content.Blog) Module {
	return Module{siteURL: siteURL, posts: posts}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "crawl" }

// Mount wires the exact crawler paths.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.siteURL, m.posts)))
	return module.Mount{
		Paths:   []string{routepath.Sitemap, routepath.Robots, routepath.Health},
		Handler: mux,
	}, nil
}
