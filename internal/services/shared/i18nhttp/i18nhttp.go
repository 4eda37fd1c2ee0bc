// Package i18nhttp carries the site language across HTTP requests.
package i18nhttp

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "fvm-language"
	// LangCookieMaxAge keeps the preference for one year.
	LangCookieMaxAge = 365 * 24 * time.Hour
)

// ErrNoPreference reports that no language preference was persisted.
var ErrNoPreference = errors.New("no language preference")

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Lang   platformi18n.Language
	Label  string
	URL    string
	Active bool
}

// CookieStore reads and writes the language preference cookie for one request.
type CookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

// NewCookieStore binds a preference store to a request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request) CookieStore {
	return CookieStore{w: w, r: r}
}

// ReadPreference returns the raw persisted preference value.
func (s CookieStore) ReadPreference() (string, error) {
	if s.r == nil {
		return "", ErrNoPreference
	}
	cookie, err := s.r.Cookie(LangCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoPreference
		}
		return "", err
	}
	return cookie.Value, nil
}

// WritePreference persists lang on the response.
func (s CookieStore) WritePreference(lang platformi18n.Language) error {
	if s.w == nil {
		return errors.New("response writer is required")
	}
	SetLanguageCookie(s.w, lang)
	return nil
}

// RequestedLanguage returns the language selected through the lang query param.
func RequestedLanguage(r *http.Request) (platformi18n.Language, bool) {
	if r == nil || r.URL == nil {
		return "", false
	}
	value := strings.TrimSpace(r.URL.Query().Get(LangParam))
	if value == "" {
		return "", false
	}
	return platformi18n.ParseLanguage(value)
}

// AcceptLanguage returns the client-reported locale header.
func AcceptLanguage(r *http.Request) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Header.Get("Accept-Language"))
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, lang platformi18n.Language) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   int(LangCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// BuildLanguageOptions returns supported language options with active selection.
func BuildLanguageOptions(active platformi18n.Language, path string, rawQuery string) []LanguageOption {
	supported := platformi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, lang := range supported {
		options = append(options, LanguageOption{
			Lang:   lang,
			Label:  lang.Label(),
			URL:    LanguageURL(path, rawQuery, lang),
			Active: lang == active,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, lang platformi18n.Language) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, lang.String())
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
