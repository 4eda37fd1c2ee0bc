package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/seo"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(pagerender.Renderer{}, newService()))
}

func TestRegisterRoutesServesEveryPage(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	tests := []struct {
		path   string
		marker string
		title  string
	}{
		{path: routepath.Root, marker: `class="home-hero"`, title: "<title>FVM - From Vivian Music | Premium Vocal Lessons</title>"},
		{path: routepath.Services, marker: `class="services"`, title: "<title>Our Services - Vocal Lesson Programs | FVM</title>"},
		{path: routepath.ServicesPrivate, marker: `class="service-body"`, title: "<title>1:1 Private Vocal Lesson | FVM</title>"},
		{path: routepath.ServicesOnline, marker: `class="service-body"`, title: "<title>Online Vocal Lesson | FVM</title>"},
		{path: routepath.ServicesGroup, marker: `class="service-body"`, title: "<title>2:1 Group Lesson | FVM</title>"},
		{path: routepath.ServicesGlobal, marker: `class="service-body"`, title: "<title>Global Class - Vocal Lessons in English | FVM</title>"},
		{path: routepath.ServicesKids, marker: `class="service-body"`, title: "<title>FVM Kids Vocal - Home Visit Lessons | FVM</title>"},
		{path: routepath.Curriculum, marker: `class="phases"`, title: "<title>Curriculum - Step-by-Step Vocal Training | FVM</title>"},
		{path: routepath.Instructors, marker: `class="instructors`, title: "<title>Instructors - Verified Vocal Trainers | FVM</title>"},
		{path: routepath.Reviews, marker: `class="reviews`, title: "<title>Reviews - What Students Say About FVM | FVM</title>"},
		{path: routepath.Contact, marker: `class="contact"`, title: "<title>Contact - Consultation and FAQ | FVM</title>"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			req := englishRequest(http.MethodGet, tc.path)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
				t.Fatalf("content-type = %q", got)
			}
			body := rr.Body.String()
			if !strings.Contains(body, tc.marker) {
				t.Fatalf("body missing marker %q", tc.marker)
			}
			if !strings.Contains(body, tc.title) {
				t.Fatalf("body missing title %q", tc.title)
			}
			if want := `<link rel="canonical" href="https://example.test` + tc.path + `">`; !strings.Contains(body, want) {
				t.Fatalf("body missing canonical %q", want)
			}
		})
	}
}

func TestRegisterRoutesServesHead(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, englishRequest(http.MethodHead, routepath.Curriculum))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRegisterRoutesRendersNotFoundForUnknownPaths(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	for _, path := range []string{"/does-not-exist", "/services/voice-acting", "/services/kids/extra", "/contact/more"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, englishRequest(http.MethodGet, path))
			if rr.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
			}
			if location := rr.Header().Get("Location"); location != "" {
				t.Fatalf("unexpected redirect to %q", location)
			}
			body := rr.Body.String()
			if !strings.Contains(body, `class="not-found"`) {
				t.Fatalf("body missing not-found section")
			}
			if !strings.Contains(body, `content="noindex,nofollow"`) {
				t.Fatalf("not-found page must not be indexed")
			}
		})
	}
}

func TestHomeCarriesAllStructuredDataBlocks(t *testing.T) {
	t.Parallel()

	mux := newTestMux()
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, englishRequest(http.MethodGet, routepath.Root))
	if got := strings.Count(rr.Body.String(), `<script type="application/ld+json">`); got != 3 {
		t.Fatalf("structured data blocks = %d, want %d", got, 3)
	}
}

func TestServiceBySlugWithoutLookupReportsMissing(t *testing.T) {
	t.Parallel()

	if _, ok := (service{}).serviceBySlug("kids"); ok {
		t.Fatalf("expected missing service without lookup")
	}
}

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	renderer := pagerender.Renderer{Publisher: seo.Publisher{SiteURL: "https://example.test"}}
	registerRoutes(mux, newHandlers(renderer, newService()))
	return mux
}

func englishRequest(method string, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	resolver := webi18n.NewResolver(catalog.Default(), platformi18n.English, nil, nil)
	return req.WithContext(webi18n.WithResolver(req.Context(), resolver))
}
