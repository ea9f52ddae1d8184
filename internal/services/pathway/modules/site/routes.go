package site

import (
	"net/http"

	"github.com/louisbranch/pathway/internal/services/pathway/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleFront)
	mux.HandleFunc(http.MethodGet+" "+routepath.Blog, h.handleBlog)
	mux.HandleFunc(http.MethodGet+" "+routepath.PostPrefix+"{slug}", h.handlePost)
	mux.HandleFunc(http.MethodGet+" "+routepath.PagePrefix+"{slug}", h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.Search, h.handleSearch)
	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
