// Package admin serves the theme's admin screens and JSON endpoints.
package admin

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/routepath"
)

// Module serves the get-started page, plugin activation and diagnostics.
type Module struct{}

// New returns the admin module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "admin" }

// Mount wires the admin routes.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Theme == nil {
		return module.Mount{}, errors.New("theme is required")
	}
	if deps.Nonces == nil {
		return module.Mount{}, errors.New("nonces are required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{deps: deps})
	return module.Mount{Prefix: routepath.AdminPrefix, Handler: mux}, nil
}
