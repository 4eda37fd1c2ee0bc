// Package content holds the structured bilingual page data of the site and
// the embedded blog posts.
package content

import platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"

// Text is one piece of copy authored in both site languages.
type Text struct {
	KO string
	EN string
}

// Same returns a Text with identical copy in both languages.
func Same(value string) Text {
	return Text{KO: value, EN: value}
}

// Get returns the copy for lang, falling back to Korean.
func (t Text) Get(lang platformi18n.Language) string {
	if lang == platformi18n.English && t.EN != "" {
		return t.EN
	}
	return t.KO
}

// Item is a titled entry with an optional label such as a step number or an
// age range.
type Item struct {
	Label Text
	Title Text
	Desc  Text
}
