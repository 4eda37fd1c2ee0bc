package pages

import (
	"net/http"

	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Services, h.handleServices)
	mux.HandleFunc(http.MethodGet+" "+routepath.ServicesPrefix+"{slug}", h.handleServiceDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.Curriculum, h.handleCurriculum)
	mux.HandleFunc(http.MethodGet+" "+routepath.Instructors, h.handleInstructors)
	mux.HandleFunc(http.MethodGet+" "+routepath.Reviews, h.handleReviews)
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContact)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
