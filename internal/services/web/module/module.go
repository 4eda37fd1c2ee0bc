// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes a module route mount.
//
// Prefix claims a subtree ("/blog/"). Paths claims exact slashless routes the
// module also answers, such as "/blog" or "/sitemap.xml". Either may be empty,
// but not both.
type Mount struct {
	Prefix  string
	Paths   []string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
