// Package i18n defines the languages the site is published in.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported site language code.
type Language string

const (
	// Korean is the default site language.
	Korean Language = "ko"
	// English is the secondary site language.
	English Language = "en"
)

var supported = []Language{Korean, English}

// Supported returns every supported language in display order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Default returns the fallback language.
func Default() Language {
	return Korean
}

// ParseLanguage reports whether value is exactly a supported language code.
func ParseLanguage(value string) (Language, bool) {
	switch Language(value) {
	case Korean:
		return Korean, true
	case English:
		return English, true
	default:
		return "", false
	}
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	_, ok := ParseLanguage(string(l))
	return ok
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// Tag returns the x/text language tag for l.
func (l Language) Tag() language.Tag {
	switch l {
	case English:
		return language.English
	default:
		return language.Korean
	}
}

// OGLocale returns the Open Graph locale for l.
func (l Language) OGLocale() string {
	switch l {
	case English:
		return "en_US"
	default:
		return "ko_KR"
	}
}

// Label returns the switcher label for l, written in that language.
func (l Language) Label() string {
	switch l {
	case English:
		return "EN"
	default:
		return "KO"
	}
}

// Other returns the language a toggle switches to from l.
func (l Language) Other() Language {
	if l == English {
		return Korean
	}
	return English
}

// MatchLocale maps a client-reported locale to a supported language.
//
// The locale may be an Accept-Language header or a single BCP 47 tag. Only
// the primary subtag of the highest-weighted entry is considered; English
// matches English and everything else falls back to the default.
func MatchLocale(locale string) Language {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil {
		// One malformed entry fails the whole header; fall back to the
		// first entry on its own.
		first, _, _ := strings.Cut(locale, ",")
		first, _, _ = strings.Cut(first, ";")
		tag, err := language.Parse(strings.TrimSpace(first))
		if err != nil {
			return Default()
		}
		tags = []language.Tag{tag}
	}
	if len(tags) == 0 {
		return Default()
	}
	base, _ := tags[0].Base()
	if base.String() == English.String() {
		return English
	}
	return Default()
}
