// Package assets serves the embedded static files.
package assets

import (
	"io/fs"
	"net/http"

	module "github.com/fromvivianmusic/fvm-web/internal/services/web/module"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/static"
)

const cacheControl = "public, max-age=3600"

// Module provides the static asset route.
type Module struct {
	files fs.FS
}

// New returns an assets module over the embedded static files.
func New() Module {
	return Module{files: static.FS}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "assets" }

// Mount wires the file server under the static prefix.
func (m Module) Mount() (module.Mount, error) {
	files := m.files
	if files == nil {
		files = static.FS
	}
	server := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(files))
	return module.Mount{
		Prefix: routepath.StaticPrefix,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", cacheControl)
			server.ServeHTTP(w, r)
		}),
	}, nil
}
