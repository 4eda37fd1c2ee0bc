package pages

import (
	"net/http"

	module "github.com/fromvivianmusic/fvm-web/internal/services/web/module"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

// Module provides the site's routed pages and the not-found fallback.
type Module struct {
	renderer pagerender.Renderer
}

// New returns a pages module rendering through renderer.
func New(renderer pagerender.Renderer) Module {
	return Module{renderer: renderer}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires page route handlers at the site root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.renderer, newService()))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
