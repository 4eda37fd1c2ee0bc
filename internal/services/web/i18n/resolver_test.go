package i18n

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
)

type stubPreference struct {
	value string
	err   error
}

func (s stubPreference) ReadPreference() (string, error) {
	return s.value, s.err
}

type memoryStore struct {
	mu     sync.Mutex
	writes []Language
	err    error
}

func (s *memoryStore) ReadPreference() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.writes) == 0 {
		return "", errors.New("unset")
	}
	return s.writes[len(s.writes)-1].String(), nil
}

func (s *memoryStore) WritePreference(lang Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.writes = append(s.writes, lang)
	return nil
}

func TestResolveInitialLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		persisted PreferenceReader
		locale    string
		want      Language
	}{
		{name: "persisted english wins over korean locale", persisted: stubPreference{value: "en"}, locale: "ko-KR", want: platformi18n.English},
		{name: "persisted korean wins over english locale", persisted: stubPreference{value: "ko"}, locale: "en-US", want: platformi18n.Korean},
		{name: "invalid persisted value falls through", persisted: stubPreference{value: "fr"}, locale: "en-GB", want: platformi18n.English},
		{name: "read failure falls through", persisted: stubPreference{value: "en", err: errors.New("boom")}, locale: "", want: platformi18n.Korean},
		{name: "nil reader uses locale", persisted: nil, locale: "en", want: platformi18n.English},
		{name: "no preference english locale", persisted: stubPreference{err: errors.New("unset")}, locale: "en-US,en;q=0.9", want: platformi18n.English},
		{name: "no preference other locale", persisted: stubPreference{err: errors.New("unset")}, locale: "ja-JP", want: platformi18n.Korean},
		{name: "no preference no locale", persisted: stubPreference{err: errors.New("unset")}, locale: "", want: platformi18n.Korean},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveInitialLanguage(tc.persisted, tc.locale); got != tc.want {
				t.Fatalf("ResolveInitialLanguage = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTranslateReturnsAuthoredLiteralForEveryKey(t *testing.T) {
	t.Parallel()

	bundle := catalog.Default()
	for _, lang := range platformi18n.Supported() {
		var logs bytes.Buffer
		resolver := NewResolver(bundle, lang, nil, log.New(&logs, "", 0))
		for key, want := range bundle.LocaleMessages(lang.String()) {
			if got := resolver.Translate(Key(key)); got != want {
				t.Fatalf("Translate(%q) under %s = %q, want %q", key, lang, got, want)
			}
		}
		if logs.Len() != 0 {
			t.Fatalf("unexpected log output: %q", logs.String())
		}
	}
}

func TestTranslateMissingKeyReturnsKeyAndLogs(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	resolver := NewResolver(nil, platformi18n.English, nil, log.New(&logs, "", 0))
	for _, key := range []Key{"does.not.exist", "", "nav.home.extra"} {
		if got := resolver.Translate(key); got != key.String() {
			t.Fatalf("Translate(%q) = %q, want key", key, got)
		}
	}
	if !strings.Contains(logs.String(), "translation missing key=does.not.exist lang=en") {
		t.Fatalf("missing log line, got %q", logs.String())
	}
}

func TestTranslatefFormatsArguments(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil, platformi18n.Korean, nil, log.New(&bytes.Buffer{}, "", 0))
	if got := resolver.Translatef(KeyFooterCopyright, "2024"); got != "© 2024 FVM. All rights reserved." {
		t.Fatalf("Translatef copyright = %q", got)
	}
	if got := resolver.Translatef(KeyBlogCount, 4); got != "총 4개의 글" {
		t.Fatalf("Translatef ko blog.count = %q", got)
	}
	resolver.SetLanguage(platformi18n.English)
	if got := resolver.Translatef(KeyBlogCount, 4); got != "4 posts" {
		t.Fatalf("Translatef en blog.count = %q", got)
	}
	if got := resolver.Translatef("missing.%d", 1); got != "missing.%d" {
		t.Fatalf("Translatef missing = %q", got)
	}
}

func TestSetLanguagePersistsAndNotifiesInOrder(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	resolver := NewResolver(nil, platformi18n.Korean, store, log.New(&bytes.Buffer{}, "", 0))

	var calls []string
	resolver.Subscribe(func(lang Language) { calls = append(calls, "first:"+lang.String()) })
	unsubscribe := resolver.Subscribe(func(lang Language) { calls = append(calls, "second:"+lang.String()) })
	resolver.Subscribe(func(lang Language) { calls = append(calls, "third:"+lang.String()) })

	resolver.SetLanguage(platformi18n.English)
	if resolver.Language() != platformi18n.English {
		t.Fatalf("Language() = %q, want en", resolver.Language())
	}
	if got := resolver.Translate(KeyNavHome); got != "Home" {
		t.Fatalf("Translate after switch = %q", got)
	}

	unsubscribe()
	unsubscribe()
	resolver.SetLanguage(platformi18n.Korean)

	want := []string{"first:en", "second:en", "third:en", "first:ko", "third:ko"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	if len(store.writes) != 2 || store.writes[0] != platformi18n.English || store.writes[1] != platformi18n.Korean {
		t.Fatalf("writes = %v", store.writes)
	}

	fresh := ResolveInitialLanguage(store, "en-US")
	if fresh != platformi18n.Korean {
		t.Fatalf("fresh session = %q, want persisted ko", fresh)
	}
}

func TestSetLanguageIgnoresUnsupportedValues(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	var logs bytes.Buffer
	resolver := NewResolver(nil, platformi18n.English, store, log.New(&logs, "", 0))
	notified := false
	resolver.Subscribe(func(Language) { notified = true })

	resolver.SetLanguage(Language("fr"))
	if resolver.Language() != platformi18n.English || notified || len(store.writes) != 0 {
		t.Fatalf("unsupported language changed state: lang=%q notified=%v writes=%v", resolver.Language(), notified, store.writes)
	}
	if !strings.Contains(logs.String(), "language change ignored") {
		t.Fatalf("expected ignore log, got %q", logs.String())
	}
}

func TestSetLanguageLogsPersistFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	resolver := NewResolver(nil, platformi18n.Korean, &memoryStore{err: errors.New("disk full")}, log.New(&logs, "", 0))
	resolver.SetLanguage(platformi18n.English)
	if resolver.Language() != platformi18n.English {
		t.Fatalf("Language() = %q, want en", resolver.Language())
	}
	if !strings.Contains(logs.String(), "err=disk full") {
		t.Fatalf("expected persist failure log, got %q", logs.String())
	}
}

func TestNewResolverFallsBackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil, Language("xx"), nil, nil)
	if resolver.Language() != platformi18n.Korean {
		t.Fatalf("Language() = %q, want ko", resolver.Language())
	}
}

func TestResolverConcurrentAccess(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil, platformi18n.Korean, &memoryStore{}, log.New(&bytes.Buffer{}, "", 0))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				resolver.SetLanguage(platformi18n.English)
				return
			}
			resolver.SetLanguage(platformi18n.Korean)
		}(i)
		go func() {
			defer wg.Done()
			got := resolver.Translate(KeyNavHome)
			if got != "홈" && got != "Home" {
				t.Errorf("Translate returned %q", got)
			}
		}()
	}
	wg.Wait()
}
