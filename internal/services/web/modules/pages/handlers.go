package pages

import (
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
	webtemplates "github.com/fromvivianmusic/fvm-web/internal/services/web/templates"
)

type handlers struct {
	renderer pagerender.Renderer
	service  service
}

func newHandlers(renderer pagerender.Renderer, s service) handlers {
	return handlers{renderer: renderer, service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, routepath.Root, webi18n.KeyMetaHomeTitle, webi18n.KeyMetaHomeDescription, webtemplates.Home())
}

func (h handlers) handleServices(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, routepath.Services, webi18n.KeyMetaServicesTitle, webi18n.KeyMetaServicesDescription, webtemplates.Services())
}

func (h handlers) handleServiceDetail(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service.serviceBySlug(r.PathValue("slug"))
	if !ok {
		h.renderer.NotFound(w, r)
		return
	}
	h.writePage(w, r, svc.Path, svc.Detail.MetaTitleKey, svc.Detail.MetaDescriptionKey, webtemplates.ServiceDetail(svc))
}

func (h handlers) handleCurriculum(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, routepath.Curriculum, webi18n.KeyMetaCurriculumTitle, webi18n.KeyMetaCurriculumDescription, webtemplates.Curriculum())
}

func (h handlers) handleInstructors(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, routepath.Instructors, webi18n.KeyMetaInstructorsTitle, webi18n.KeyMetaInstructorsDescription, webtemplates.Instructors())
}

func (h handlers) handleReviews(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, routepath.Reviews, webi18n.KeyMetaReviewsTitle, webi18n.KeyMetaReviewsDescription, webtemplates.Reviews())
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, routepath.Contact, webi18n.KeyMetaContactTitle, webi18n.KeyMetaContactDescription, webtemplates.Contact())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.NotFound(w, r)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, path string, title webi18n.Key, description webi18n.Key, body templ.Component) {
	resolver := webi18n.FromContext(r.Context())
	h.renderer.Write(w, r, pagerender.Page{
		Meta: h.service.meta(resolver, path, title, description),
		Body: body,
	})
}
