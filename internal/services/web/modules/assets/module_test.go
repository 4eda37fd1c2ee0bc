package assets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

func TestMountServesStylesheet(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.StaticPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.StaticPrefix)
	}

	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Stylesheet, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("content-type = %q, want text/css", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != cacheControl {
		t.Fatalf("cache-control = %q, want %q", got, cacheControl)
	}
	if !strings.Contains(rr.Body.String(), ".kakao-floating") {
		t.Fatalf("stylesheet body missing expected rule")
	}
}

func TestMountReturnsNotFoundForMissingAsset(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.StaticPrefix+"missing.js", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := New().ID(); got != "assets" {
		t.Fatalf("ID() = %q, want %q", got, "assets")
	}
}
