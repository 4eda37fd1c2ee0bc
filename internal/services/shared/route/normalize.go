// Package route holds path normalization shared by HTTP surfaces.
package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash canonicalizes request paths by stripping trailing "/" characters.
//
// The query string is preserved so a language toggle survives the redirect.
// It returns true when a redirect was written. Route handlers should stop further
// processing when true.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	canonical, changed := Canonical(r.URL.Path)
	if !changed {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}

// Canonical strips trailing slashes from path and reports whether it changed.
func Canonical(path string) (string, bool) {
	canonical := strings.TrimRight(path, "/")
	if canonical == "" {
		canonical = "/"
	}
	return canonical, canonical != path
}

// TrailingSlash redirects non-canonical paths before they reach next.
func TrailingSlash(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RedirectTrailingSlash(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}
