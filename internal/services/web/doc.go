// Package web serves the FVM brochure site.
//
// The root handler composes feature modules (pages, blog, crawl, assets)
// behind a middleware chain that recovers panics, tags requests, logs them,
// canonicalizes trailing slashes and starts a per-request language session.
package web
