// Package ajax serves the admin-ajax endpoint of the theme.
package ajax

import (
	"net/http"

	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/routepath"
)

// Module dispatches admin-ajax actions.
type Module struct{}

// New returns the ajax module.
func New() Module {
	return Module{}
}

// ID returns the module identifier.
func (Module) ID() string { return "ajax" }

// Mount wires the admin-ajax route.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := newHandlers(deps)
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminAjax, h.handleAjax)
	return module.Mount{Prefix: routepath.AdminAjax, Handler: mux}, nil
}
