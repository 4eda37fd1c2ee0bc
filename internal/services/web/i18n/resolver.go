// Package i18n owns the active site language for one browser session and
// translates typed catalog keys for page components.
package i18n

import (
	"log"
	"strings"
	"sync"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
	"golang.org/x/text/message"
)

// Language is a supported site language code.
type Language = platformi18n.Language

// PreferenceReader reads a previously persisted language preference.
type PreferenceReader interface {
	ReadPreference() (string, error)
}

// PreferenceWriter persists the language preference for future sessions.
type PreferenceWriter interface {
	WritePreference(Language) error
}

// ResolveInitialLanguage picks the starting language for a session.
//
// A persisted preference wins when it names a supported language. Otherwise
// the primary subtag of locale decides: English when it is "en", the default
// language for anything else. Read failures count as no preference.
func ResolveInitialLanguage(persisted PreferenceReader, locale string) Language {
	if persisted != nil {
		if value, err := persisted.ReadPreference(); err == nil {
			if lang, ok := platformi18n.ParseLanguage(value); ok {
				return lang
			}
		}
	}
	return platformi18n.MatchLocale(locale)
}

type subscriber struct {
	id int
	fn func(Language)
}

// Resolver holds the active language for one session.
//
// SetLanguage is the only transition. Reads and writes are mutex guarded so
// goroutines sharing a resolver observe a consistent language.
type Resolver struct {
	bundle *catalog.Bundle
	store  PreferenceWriter
	logger *log.Logger

	mu          sync.Mutex
	lang        Language
	printer     *message.Printer
	subscribers []subscriber
	nextID      int
}

// NewResolver creates a resolver starting in initial.
//
// A nil bundle uses the embedded catalogs, a nil logger uses the standard
// logger and a nil store disables persistence.
func NewResolver(bundle *catalog.Bundle, initial Language, store PreferenceWriter, logger *log.Logger) *Resolver {
	if bundle == nil {
		bundle = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	if !initial.Valid() {
		initial = platformi18n.Default()
	}
	return &Resolver{
		bundle: bundle,
		store:  store,
		logger: logger,
		lang:   initial,
	}
}

// Language returns the active language.
func (r *Resolver) Language() Language {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lang
}

// Translate returns the message authored for key in the active language.
//
// A key missing from the catalogs is logged and returned verbatim.
func (r *Resolver) Translate(key Key) string {
	lang := r.Language()
	value, ok := r.bundle.Message(lang.String(), key.String())
	if !ok {
		r.logMissing(key, lang)
		return key.String()
	}
	return value
}

// Translatef formats the message authored for key with args.
func (r *Resolver) Translatef(key Key, args ...any) string {
	r.mu.Lock()
	lang := r.lang
	if r.printer == nil {
		r.printer = r.bundle.Printer(lang.Tag())
	}
	printer := r.printer
	r.mu.Unlock()

	if _, ok := r.bundle.Message(lang.String(), key.String()); !ok {
		r.logMissing(key, lang)
		return key.String()
	}
	return printer.Sprintf(key.String(), args...)
}

// SetLanguage switches the active language, persists it and notifies
// subscribers in subscription order. Unsupported values are ignored.
func (r *Resolver) SetLanguage(lang Language) {
	if !lang.Valid() {
		r.logger.Printf("language change ignored lang=%q", lang)
		return
	}

	r.mu.Lock()
	r.lang = lang
	r.printer = nil
	subscribers := make([]subscriber, len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.WritePreference(lang); err != nil {
			r.logger.Printf("language preference not persisted lang=%s err=%v", lang, err)
		}
	}
	for _, sub := range subscribers {
		sub.fn(lang)
	}
}

// Subscribe registers fn to run after every language change. The returned
// function removes the subscription.
func (r *Resolver) Subscribe(fn func(Language)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.subscribers = append(r.subscribers, subscriber{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, sub := range r.subscribers {
				if sub.id == id {
					r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

func (r *Resolver) logMissing(key Key, lang Language) {
	r.logger.Printf("translation missing key=%s lang=%s", strings.TrimSpace(key.String()), lang)
}
