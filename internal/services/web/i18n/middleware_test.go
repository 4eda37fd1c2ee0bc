package i18n

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/shared/i18nhttp"
)

func serveWithResolver(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *Resolver) {
	t.Helper()

	var seen *Resolver
	h := Middleware(nil, log.New(&bytes.Buffer{}, "", 0))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		_, _ = w.Write([]byte(seen.Translate(KeyNavHome)))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, seen
}

func TestMiddlewareResolvesFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	rec, resolver := serveWithResolver(t, req)

	if resolver.Language() != platformi18n.English {
		t.Fatalf("language = %q, want en", resolver.Language())
	}
	if rec.Body.String() != "Home" {
		t.Fatalf("body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Language"); got != "en" {
		t.Fatalf("Content-Language = %q", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("resolution without toggle must not persist a cookie")
	}
	if vary := strings.Join(rec.Header().Values("Vary"), ","); !strings.Contains(vary, "Accept-Language") || !strings.Contains(vary, "Cookie") {
		t.Fatalf("Vary = %q", vary)
	}
}

func TestMiddlewareDefaultsToKorean(t *testing.T) {
	t.Parallel()

	rec, resolver := serveWithResolver(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if resolver.Language() != platformi18n.Korean || rec.Body.String() != "홈" {
		t.Fatalf("language = %q body = %q", resolver.Language(), rec.Body.String())
	}
}

func TestMiddlewareToggleRoundTripsThroughCookie(t *testing.T) {
	t.Parallel()

	toggle := httptest.NewRequest(http.MethodGet, "/contact?lang=en", nil)
	toggle.Header.Set("Accept-Language", "ko-KR")
	rec, resolver := serveWithResolver(t, toggle)
	if resolver.Language() != platformi18n.English {
		t.Fatalf("language after toggle = %q", resolver.Language())
	}
	if got := rec.Header().Get("Content-Language"); got != "en" {
		t.Fatalf("Content-Language after toggle = %q", got)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != i18nhttp.LangCookieName || cookies[0].Value != "en" {
		t.Fatalf("cookies = %+v", cookies)
	}

	fresh := httptest.NewRequest(http.MethodGet, "/contact", nil)
	fresh.Header.Set("Accept-Language", "ko-KR")
	fresh.AddCookie(cookies[0])
	_, next := serveWithResolver(t, fresh)
	if next.Language() != platformi18n.English {
		t.Fatalf("fresh session language = %q, want en", next.Language())
	}
}

func TestMiddlewareIgnoresUnsupportedToggle(t *testing.T) {
	t.Parallel()

	rec, resolver := serveWithResolver(t, httptest.NewRequest(http.MethodGet, "/?lang=de", nil))
	if resolver.Language() != platformi18n.Korean {
		t.Fatalf("language = %q", resolver.Language())
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("unsupported toggle must not persist")
	}
}

func TestFromContextWithoutResolver(t *testing.T) {
	t.Parallel()

	resolver := FromContext(context.Background())
	if resolver == nil || resolver.Language() != platformi18n.Korean {
		t.Fatalf("FromContext(background) = %+v", resolver)
	}
}
