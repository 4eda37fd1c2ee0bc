// Package modules defines web module registry helpers.
package modules

import (
	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	module "github.com/fromvivianmusic/fvm-web/internal/services/web/module"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared values modules are composed from.
type Dependencies struct {
	Renderer pagerender.Renderer
	Blog     *content.Blog
	SiteURL  string
}
