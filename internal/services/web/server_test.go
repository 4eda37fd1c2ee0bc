package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fromvivianmusic/fvm-web/internal/services/shared/i18nhttp"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	handler, err := NewHandler(Config{SiteURL: "https://example.test", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestUnknownPathRendersNotFoundWithoutRedirect(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if location := rr.Header().Get("Location"); location != "" {
		t.Fatalf("unexpected redirect to %q", location)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="not-found"`) || !strings.Contains(body, "<!doctype html>") {
		t.Fatalf("expected full not-found document")
	}
}

func TestEveryRoutedPageRenders(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	for _, page := range routepath.Pages() {
		rr := serve(handler, httptest.NewRequest(http.MethodGet, page.Path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", page.Path, rr.Code, http.StatusOK)
		}
		if want := `<link rel="canonical" href="https://example.test` + page.Path + `">`; !strings.Contains(rr.Body.String(), want) {
			t.Fatalf("GET %s missing canonical %q", page.Path, want)
		}
	}
}

func TestBlogPostRoute(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, routepath.BlogPost("warm-up-importance"), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `class="post-body"`) {
		t.Fatalf("body missing post content")
	}
}

func TestTrailingSlashRedirectsToCanonicalPath(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	tests := []struct {
		target   string
		location string
	}{
		{target: "/contact/", location: "/contact"},
		{target: "/blog/", location: "/blog"},
		{target: "/services/kids/?lang=en", location: "/services/kids?lang=en"},
	}
	for _, tc := range tests {
		rr := serve(handler, httptest.NewRequest(http.MethodGet, tc.target, nil))
		if rr.Code != http.StatusMovedPermanently {
			t.Fatalf("GET %s status = %d, want %d", tc.target, rr.Code, http.StatusMovedPermanently)
		}
		if got := rr.Header().Get("Location"); got != tc.location {
			t.Fatalf("GET %s Location = %q, want %q", tc.target, got, tc.location)
		}
	}
}

func TestMutatingMethodsAreRejected(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t), httptest.NewRequest(http.MethodPost, routepath.Contact, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}

func TestStylesheetIsServed(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, routepath.Stylesheet, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("content-type = %q, want text/css", got)
	}
}

func TestCrawlSurfaces(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)

	sitemap := serve(handler, httptest.NewRequest(http.MethodGet, routepath.Sitemap, nil))
	if sitemap.Code != http.StatusOK {
		t.Fatalf("sitemap status = %d", sitemap.Code)
	}
	for _, page := range routepath.Pages() {
		if want := "<loc>https://example.test" + page.Path + "</loc>"; !strings.Contains(sitemap.Body.String(), want) {
			t.Fatalf("sitemap missing %q", want)
		}
	}

	robots := serve(handler, httptest.NewRequest(http.MethodGet, routepath.Robots, nil))
	if !strings.Contains(robots.Body.String(), "Sitemap: https://example.test/sitemap.xml") {
		t.Fatalf("robots = %q", robots.Body.String())
	}

	health := serve(handler, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if health.Code != http.StatusOK || health.Body.String() != "ok" {
		t.Fatalf("health = %d %q", health.Code, health.Body.String())
	}
}

func TestLanguageResolution(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	tests := []struct {
		name           string
		acceptLanguage string
		cookie         string
		want           string
	}{
		{name: "default", want: "ko"},
		{name: "english locale", acceptLanguage: "en-US,en;q=0.9", want: "en"},
		{name: "other locale", acceptLanguage: "fr-FR", want: "ko"},
		{name: "persisted preference wins", acceptLanguage: "en-US", cookie: "ko", want: "ko"},
		{name: "invalid preference ignored", acceptLanguage: "en", cookie: "de", want: "en"},
		{name: "preference must match exactly", acceptLanguage: "ko", cookie: "EN", want: "ko"},
		{name: "malformed accept entry keeps first", acceptLanguage: "en-US,en;q=0.9,aaaaaaaaa;q=0.1", want: "en"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: i18nhttp.LangCookieName, Value: tc.cookie})
			}
			rr := serve(handler, req)
			if !strings.Contains(rr.Body.String(), `<html lang="`+tc.want+`">`) {
				t.Fatalf("document language mismatch, want %q", tc.want)
			}
			if got := rr.Header().Get("Content-Language"); got != tc.want {
				t.Fatalf("Content-Language = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLanguageToggleRoundTripsThroughCookie(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	toggle := serve(handler, httptest.NewRequest(http.MethodGet, "/contact?lang=en", nil))
	var persisted *http.Cookie
	for _, cookie := range toggle.Result().Cookies() {
		if cookie.Name == i18nhttp.LangCookieName {
			persisted = cookie
		}
	}
	if persisted == nil || persisted.Value != "en" {
		t.Fatalf("expected persisted language cookie, got %+v", persisted)
	}

	next := httptest.NewRequest(http.MethodGet, routepath.Reviews, nil)
	next.AddCookie(&http.Cookie{Name: persisted.Name, Value: persisted.Value})
	rr := serve(handler, next)
	if !strings.Contains(rr.Body.String(), `<html lang="en">`) {
		t.Fatalf("expected persisted preference to select english")
	}
}

func TestResponsesCarryRequestID(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected request id header")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{}); err == nil {
		t.Fatalf("expected missing address error")
	}
}

func TestListenAndServeStopsWhenContextEnds(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestListenAndServeRejectsNilServer(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatalf("expected nil server error")
	}
}
