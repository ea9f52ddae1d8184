// Package site serves the public theme pages.
package site

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/routepath"
)

// Module serves the front page, the blog, single entries and search.
type Module struct{}

// New returns the site module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "site" }

// Mount wires the site routes under the root prefix.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Theme == nil {
		return module.Mount{}, errors.New("theme is required")
	}
	if deps.Content == nil {
		return module.Mount{}, errors.New("content source is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{deps: deps})
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
