package i18n

import (
	"testing"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
)

func TestAllKeysExistInEveryLocale(t *testing.T) {
	t.Parallel()

	bundle := catalog.Default()
	for _, lang := range platformi18n.Supported() {
		for _, key := range AllKeys() {
			if _, ok := bundle.Message(lang.String(), key.String()); !ok {
				t.Fatalf("key %q missing in locale %q", key, lang)
			}
		}
	}
}

func TestAllKeysCoversCatalog(t *testing.T) {
	t.Parallel()

	declared := make(map[Key]bool, len(AllKeys()))
	for _, key := range AllKeys() {
		if declared[key] {
			t.Fatalf("key %q declared twice", key)
		}
		declared[key] = true
	}
	for key := range catalog.Default().LocaleMessages(catalog.BaseLocale) {
		if !declared[Key(key)] {
			t.Fatalf("catalog key %q has no Key constant", key)
		}
	}
}
