package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{
			name:     "no trailing slash",
			target:   "/services",
			wantOK:   false,
			wantCode: 200,
		},
		{
			name:     "trailing slash",
			target:   "/services/",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/services",
		},
		{
			name:     "nested trailing slash keeps query",
			target:   "/services/kids/?lang=en",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/services/kids?lang=en",
		},
		{
			name:     "repeated slashes",
			target:   "/blog//",
			wantOK:   true,
			wantCode: http.StatusMovedPermanently,
			wantLoc:  "/blog",
		},
		{
			name:     "root path",
			target:   "/",
			wantOK:   false,
			wantCode: 200,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestTrailingSlashPassesCanonicalPaths(t *testing.T) {
	t.Parallel()

	called := false
	h := TrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	if !called || rec.Code != http.StatusNoContent {
		t.Fatalf("called = %v, status = %d", called, rec.Code)
	}

	called = false
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact/", nil))
	if called || rec.Code != http.StatusMovedPermanently {
		t.Fatalf("called = %v, status = %d", called, rec.Code)
	}
}
