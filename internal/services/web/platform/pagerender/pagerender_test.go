package pagerender

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/seo"
)

func TestWriteRendersFullDocumentWithHead(t *testing.T) {
	t.Parallel()

	req := withLanguage(httptest.NewRequest(http.MethodGet, "/contact?ref=ad", nil), platformi18n.English)
	rr := httptest.NewRecorder()

	Renderer{Publisher: seo.Publisher{SiteURL: "https://example.test"}}.Write(rr, req, Page{
		Meta:       seo.PageMeta{Title: "Contact", Description: "Reach us", Path: "/contact"},
		StatusCode: http.StatusAccepted,
		Body:       textComponent(`<section id="body-root">ok</section>`),
	})

	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, want := range []string{
		`<html lang="en">`,
		`<title>Contact | FVM</title>`,
		`<link rel="canonical" href="https://example.test/contact">`,
		`id="body-root"`,
		`href="/contact?lang=ko&amp;ref=ad"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestWriteDefaultsStatusAndBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Renderer{}.Write(rr, req, Page{Meta: seo.PageMeta{Title: "Home", Path: "/"}})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `<html lang="ko">`) {
		t.Fatalf("expected default language document")
	}
}

func TestWriteFallsBackToServerErrorWithoutPartialPage(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rr := httptest.NewRecorder()

	Renderer{Logger: log.New(&logs, "", 0)}.Write(rr, req, Page{
		Meta: seo.PageMeta{Title: "Reviews", Path: "/reviews"},
		Body: templ.ComponentFunc(func(context.Context, io.Writer) error {
			return errors.New("boom")
		}),
	})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "<html") {
		t.Fatalf("expected no partial document, got %q", rr.Body.String())
	}
	if got := logs.String(); !strings.Contains(got, "render page failed path=/reviews") || !strings.Contains(got, "boom") {
		t.Fatalf("log = %q", got)
	}
}

func TestNotFoundRendersLocalizedNoIndexPage(t *testing.T) {
	t.Parallel()

	req := withLanguage(httptest.NewRequest(http.MethodGet, "/does-not-exist", nil), platformi18n.English)
	rr := httptest.NewRecorder()

	Renderer{}.NotFound(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`<meta name="robots" content="noindex,nofollow">`,
		`Page Not Found | FVM`,
		`The page you requested does not exist or has moved.`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestWriteIgnoresNilWriter(t *testing.T) {
	t.Parallel()

	Renderer{}.Write(nil, httptest.NewRequest(http.MethodGet, "/", nil), Page{})
}

func withLanguage(req *http.Request, lang platformi18n.Language) *http.Request {
	resolver := webi18n.NewResolver(catalog.Default(), lang, nil, nil)
	return req.WithContext(webi18n.WithResolver(req.Context(), resolver))
}

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}
