package blog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/seo"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(pagerender.Renderer{}, newService(nil)))
}

func TestIndexListsPostsNewestFirst(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, localizedRequest(http.MethodGet, routepath.Blog, platformi18n.English))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	newer := strings.Index(body, `href="/blog/newer"`)
	older := strings.Index(body, `href="/blog/older"`)
	if newer < 0 || older < 0 {
		t.Fatalf("body missing post links")
	}
	if newer > older {
		t.Fatalf("expected newest post first")
	}
	if !strings.Contains(body, "<title>Blog - Vocal Training Tips and News | FVM</title>") {
		t.Fatalf("body missing blog title")
	}
}

func TestPostRendersLocalizedArticle(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	tests := []struct {
		lang  platformi18n.Language
		title string
		body  string
	}{
		{lang: platformi18n.English, title: "<title>Newer Post | FVM</title>", body: "<p>English body</p>"},
		{lang: platformi18n.Korean, title: "<title>새 글 | FVM</title>", body: "<p>한국어 본문</p>"},
	}
	for _, tc := range tests {
		t.Run(tc.lang.String(), func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, localizedRequest(http.MethodGet, "/blog/newer", tc.lang))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			body := rr.Body.String()
			if !strings.Contains(body, tc.title) {
				t.Fatalf("body missing title %q", tc.title)
			}
			if !strings.Contains(body, tc.body) {
				t.Fatalf("body missing rendered markdown %q", tc.body)
			}
			if !strings.Contains(body, `<link rel="canonical" href="https://example.test/blog/newer">`) {
				t.Fatalf("body missing canonical link")
			}
		})
	}
}

func TestUnknownPostRendersNotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	for _, path := range []string{"/blog/missing", "/blog/newer/extra"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, localizedRequest(http.MethodGet, path, platformi18n.English))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusNotFound)
		}
		if !strings.Contains(rr.Body.String(), `class="not-found"`) {
			t.Fatalf("GET %s body missing not-found section", path)
		}
	}
}

func TestMountClaimsPrefixAndIndexPath(t *testing.T) {
	t.Parallel()

	m := New(pagerender.Renderer{}, nil)
	if got := m.ID(); got != "blog" {
		t.Fatalf("ID() = %q, want %q", got, "blog")
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.BlogPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.BlogPrefix)
	}
	if len(mount.Paths) != 1 || mount.Paths[0] != routepath.Blog {
		t.Fatalf("paths = %v, want [%s]", mount.Paths, routepath.Blog)
	}

	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, localizedRequest(http.MethodGet, routepath.Blog, platformi18n.Korean))
	if rr.Code != http.StatusOK {
		t.Fatalf("empty blog status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	posts, err := content.LoadBlogFromFS(fstest.MapFS{
		"posts/ko/newer.md": {Data: []byte("---\nslug: newer\ntitle: \"새 글\"\nsummary: \"요약\"\ncategory: \"소식\"\ndate: \"2024-04-02\"\n---\n한국어 본문\n")},
		"posts/en/newer.md": {Data: []byte("---\nslug: newer\ntitle: \"Newer Post\"\nsummary: \"Summary\"\ncategory: \"News\"\ndate: \"2024-04-02\"\n---\nEnglish body\n")},
		"posts/ko/older.md": {Data: []byte("---\nslug: older\ntitle: \"옛 글\"\nsummary: \"요약\"\ncategory: \"소식\"\ndate: \"2024-01-10\"\n---\n본문\n")},
		"posts/en/older.md": {Data: []byte("---\nslug: older\ntitle: \"Older Post\"\nsummary: \"Summary\"\ncategory: \"News\"\ndate: \"2024-01-10\"\n---\nBody\n")},
	})
	if err != nil {
		t.Fatalf("LoadBlogFromFS() error = %v", err)
	}
	mux := http.NewServeMux()
	renderer := pagerender.Renderer{Publisher: seo.Publisher{SiteURL: "https://example.test"}}
	registerRoutes(mux, newHandlers(renderer, newService(posts)))
	return mux
}

func localizedRequest(method string, path string, lang platformi18n.Language) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	resolver := webi18n.NewResolver(catalog.Default(), lang, nil, nil)
	return req.WithContext(webi18n.WithResolver(req.Context(), resolver))
}
