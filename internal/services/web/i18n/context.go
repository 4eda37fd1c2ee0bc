package i18n

import (
	"context"

	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
)

type resolverContextKey struct{}

// WithResolver returns ctx carrying r for downstream components.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if r == nil {
		return ctx
	}
	return context.WithValue(ctx, resolverContextKey{}, r)
}

// FromContext returns the resolver carried by ctx.
//
// Without one it returns a resolver over the embedded catalogs in the default
// language, so callers never receive nil.
func FromContext(ctx context.Context) *Resolver {
	if ctx != nil {
		if r, ok := ctx.Value(resolverContextKey{}).(*Resolver); ok && r != nil {
			return r
		}
	}
	return NewResolver(catalog.Default(), platformi18n.Default(), nil, nil)
}
