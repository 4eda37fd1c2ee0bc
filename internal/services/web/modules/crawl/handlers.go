package crawl

import (
	"log"
	"net/http"

	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/httpx"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleSitemap(w http.ResponseWriter, _ *http.Request) {
	payload, err := h.service.sitemap()
	if err != nil {
		log.Printf("sitemap failed err=%v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_ = httpx.WriteXML(w, http.StatusOK, payload)
}

func (h handlers) handleRobots(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, h.service.robots())
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}
