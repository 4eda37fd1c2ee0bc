package templates

import (
	"context"

	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
)

// T returns the translation of key for the session language in ctx.
func T(ctx context.Context, key webi18n.Key) string {
	return webi18n.FromContext(ctx).Translate(key)
}

// Tf returns the formatted translation of key for the session language in ctx.
func Tf(ctx context.Context, key webi18n.Key, args ...any) string {
	return webi18n.FromContext(ctx).Translatef(key, args...)
}

// Lang returns the session language in ctx.
func Lang(ctx context.Context) webi18n.Language {
	return webi18n.FromContext(ctx).Language()
}
