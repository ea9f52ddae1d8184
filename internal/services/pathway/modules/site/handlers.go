package site

import (
	"net/http"
	"strings"

	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/httpx"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/pagerender"
	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/manifest"
	"github.com/louisbranch/pathway/internal/theme/view"
)

type handlers struct {
	deps module.Dependencies
}

func (h handlers) handleFront(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Content.Posts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, r, pagerender.Page{Kind: view.KindFront, Posts: posts})
}

func (h handlers) handleBlog(w http.ResponseWriter, r *http.Request) {
	posts, err := h.deps.Content.Posts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, r, pagerender.Page{Kind: view.KindBlog, Title: translate(r, i18n.KeyBlogTitle), Posts: posts})
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request) {
	post, ok, err := h.deps.Content.Post(r.Context(), r.PathValue("slug"))
	h.writeEntry(w, r, view.KindSingle, post, ok, err)
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	page, ok, err := h.deps.Content.Page(r.Context(), r.PathValue("slug"))
	h.writeEntry(w, r, view.KindPage, page, ok, err)
}

func (h handlers) writeEntry(w http.ResponseWriter, r *http.Request, kind view.Kind, entry manifest.Post, ok bool, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !ok {
		h.handleNotFound(w, r)
		return
	}
	h.write(w, r, pagerender.Page{Kind: kind, Title: entry.Title, Entry: &entry})
}

func (h handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("s"))
	posts, err := h.deps.Content.Search(r.Context(), query)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, r, pagerender.Page{Kind: view.KindSearch, Title: query, Posts: posts, SearchQuery: query})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, pagerender.Page{
		Kind:       view.KindNotFound,
		Title:      translate(r, i18n.KeyNotFoundTitle),
		StatusCode: http.StatusNotFound,
	})
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.Write(w, r, h.deps, page); err != nil {
		h.fail(w, r, err)
	}
}

func (h handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	httpx.LoggerFor(r).Error().Err(err).Str("path", r.URL.Path).Msg("render site page")
	httpx.WriteError(w, err)
}

func translate(r *http.Request, key string) string {
	tag, _ := i18n.ResolveTag(r)
	return i18n.Printer(tag).Sprintf(key)
}
