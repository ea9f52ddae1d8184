// Package routepath holds the HTTP paths served by the theme service.
package routepath

import "net/url"

const (
	Root   = "/"
	Blog   = "/blog"
	Search = "/search"
	Health = "/up"

	PostPrefix = "/post/"
	PagePrefix = "/page/"

	AdminAjax = "/admin-ajax"

	AdminPrefix     = "/admin/"
	AdminGetStarted = "/admin/get-started"
	AdminActivated  = "/admin/plugins/activated"
	AdminPlugins    = "/admin/theme-plugins"
	AdminComponents = "/admin/components"
	AdminNonce      = "/admin/nonce"
)

// Post returns the path of a post.
func Post(slug string) string {
	return PostPrefix + url.PathEscape(slug)
}

// Page returns the path of a page.
func Page(slug string) string {
	return PagePrefix + url.PathEscape(slug)
}

// SearchFor returns the search path for a query.
func SearchFor(query string) string {
	if query == "" {
		return Search
	}
	return Search + "?" + url.Values{"s": {query}}.Encode()
}
