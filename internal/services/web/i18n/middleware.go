package i18n

import (
	"log"
	"net/http"

	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
	"github.com/fromvivianmusic/fvm-web/internal/services/shared/i18nhttp"
)

// Middleware starts a language session for every request.
//
// The initial language comes from the preference cookie and Accept-Language.
// A supported ?lang= value is applied as an explicit toggle, which persists
// the cookie. The resolver travels in the request context.
func Middleware(bundle *catalog.Bundle, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := i18nhttp.NewCookieStore(w, r)
			initial := ResolveInitialLanguage(store, i18nhttp.AcceptLanguage(r))
			resolver := NewResolver(bundle, initial, store, logger)

			header := w.Header()
			header.Add("Vary", "Accept-Language")
			header.Add("Vary", "Cookie")
			header.Set("Content-Language", initial.String())
			resolver.Subscribe(func(lang Language) {
				header.Set("Content-Language", lang.String())
			})

			if lang, ok := i18nhttp.RequestedLanguage(r); ok {
				resolver.SetLanguage(lang)
			}

			next.ServeHTTP(w, r.WithContext(WithResolver(r.Context(), resolver)))
		})
	}
}
