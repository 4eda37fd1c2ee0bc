package i18nhttp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
)

func TestRequestedLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=en", nil)
	lang, ok := RequestedLanguage(req)
	if !ok || lang != platformi18n.English {
		t.Fatalf("RequestedLanguage = (%q, %v), want (en, true)", lang, ok)
	}

	req = httptest.NewRequest(http.MethodGet, "http://example.com/?lang=fr", nil)
	if _, ok := RequestedLanguage(req); ok {
		t.Fatal("unsupported lang param should be ignored")
	}
}

func TestCookieStoreRoundTrip(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	store := NewCookieStore(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, err := store.ReadPreference(); !errors.Is(err, ErrNoPreference) {
		t.Fatalf("ReadPreference err = %v, want ErrNoPreference", err)
	}
	if err := store.WritePreference(platformi18n.English); err != nil {
		t.Fatalf("WritePreference: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != LangCookieName || cookie.Value != "en" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if cookie.Path != "/" || cookie.MaxAge != 31536000 || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie attributes = path %q max-age %d samesite %v", cookie.Path, cookie.MaxAge, cookie.SameSite)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookie)
	got, err := NewCookieStore(httptest.NewRecorder(), next).ReadPreference()
	if err != nil || got != "en" {
		t.Fatalf("ReadPreference = (%q, %v), want en", got, err)
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions(platformi18n.English, "/services", "page=2")
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Lang != platformi18n.Korean || options[0].Active {
		t.Fatalf("options[0] = %+v", options[0])
	}
	if !options[1].Active {
		t.Fatalf("options[1].Active = false, want true")
	}
	if options[0].URL != "/services?lang=ko&page=2" {
		t.Fatalf("options[0].URL = %q", options[0].URL)
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	if got := LanguageURL("/services/kids", "lang=ko", platformi18n.English); got != "/services/kids?lang=en" {
		t.Fatalf("LanguageURL = %q", got)
	}
	if got := LanguageURL("", "", platformi18n.Korean); got != "/?lang=ko" {
		t.Fatalf("LanguageURL empty path = %q", got)
	}
}
