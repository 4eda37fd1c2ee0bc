package blog

import (
	"net/http"

	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	module "github.com/fromvivianmusic/fvm-web/internal/services/web/module"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

// Module provides the blog list and post routes.
type Module struct {
	renderer pagerender.Renderer
	posts    *content.Blog
}

// New returns a blog module serving posts.
func New(renderer pagerender.Renderer, posts *content.Blog) Module {
	return Module{renderer: renderer, posts: posts}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "blog" }

// Mount wires blog handlers under the blog prefix and its slashless index.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.renderer, newService(m.posts)))
	return module.Mount{
		Prefix:  routepath.BlogPrefix,
		Paths:   []string{routepath.Blog},
		Handler: mux,
	}, nil
}
