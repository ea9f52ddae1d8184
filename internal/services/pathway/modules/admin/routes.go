package admin

import (
	"net/http"

	"github.com/louisbranch/pathway/internal/services/pathway/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminGetStarted, h.handleGetStarted)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminActivated, h.handleActivated)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPlugins, h.handlePlugins)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminComponents, h.handleComponents)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminNonce, h.handleNonce)
	mux.HandleFunc(routepath.AdminPrefix+"{rest...}", h.handleNotFound)
}
