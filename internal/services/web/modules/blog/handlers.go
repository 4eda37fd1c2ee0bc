package blog

import (
	"net/http"

	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	webtemplates "github.com/fromvivianmusic/fvm-web/internal/services/web/templates"
)

type handlers struct {
	renderer pagerender.Renderer
	service  service
}

func newHandlers(renderer pagerender.Renderer, s service) handlers {
	return handlers{renderer: renderer, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	resolver := webi18n.FromContext(r.Context())
	h.renderer.Write(w, r, pagerender.Page{
		Meta: h.service.indexMeta(resolver),
		Body: webtemplates.BlogList(h.service.list()),
	})
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.service.post(r.PathValue("slug"))
	if !ok {
		h.renderer.NotFound(w, r)
		return
	}
	resolver := webi18n.FromContext(r.Context())
	h.renderer.Write(w, r, pagerender.Page{
		Meta: h.service.postMeta(resolver, post),
		Body: webtemplates.BlogPost(post),
	})
}
