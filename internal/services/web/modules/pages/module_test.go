package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

func TestModuleIDReturnsPages(t *testing.T) {
	t.Parallel()

	if got := New(pagerender.Renderer{}).ID(); got != "pages" {
		t.Fatalf("ID() = %q, want %q", got, "pages")
	}
}

func TestMountClaimsSiteRoot(t *testing.T) {
	t.Parallel()

	mount, err := New(pagerender.Renderer{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	if len(mount.Paths) != 0 {
		t.Fatalf("paths = %v, want none", mount.Paths)
	}

	req := httptest.NewRequest(http.MethodGet, routepath.Contact, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); !strings.Contains(body, `<section class="contact">`) {
		t.Fatalf("body missing contact section")
	}
}
