package components

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/manifest"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// Main wraps the content component for the current page kind.
func Main() templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("main", "id", "content", "class", view.Classes("content", "content-"+string(m.View.Kind)))
		m.Child(contentKey(m.View.Kind))
		m.Close("main")
	})
}

func contentKey(kind view.Kind) string {
	switch kind {
	case view.KindFront:
		return "front-page-content"
	case view.KindSingle, view.KindPage:
		return "single"
	case view.KindSearch:
		return "search"
	case view.KindNotFound:
		return "page-not-found"
	default:
		return "main-loop"
	}
}

// FrontPageContent lists the latest posts below the front page hero.
func FrontPageContent() templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("section", "class", "front-page-content")
		m.Element("h2", m.View.T(i18n.KeyFrontLatestPosts), "class", "section-title")
		m.Child("post-loop")
		m.Close("section")
	})
}

// Single renders the entry of a post or page view.
func Single() templ.Component {
	return view.Component(func(m *view.Markup) {
		if m.View.Entry == nil {
			m.Child("page-not-found")
			return
		}
		m.Open("article", "class", view.Classes("entry", "entry-"+string(m.View.Kind)), "data-slug", m.View.Entry.Slug)
		if m.View.Entry.Date != "" {
			m.Element("time", m.View.Entry.Date, "class", "entry-date", "datetime", m.View.Entry.Date)
		}
		m.Child("content")
		m.Close("article")
	})
}

// Content renders the body paragraphs of the current entry. Blank lines
// separate paragraphs.
func Content() templ.Component {
	return view.Component(func(m *view.Markup) {
		if m.View.Entry == nil {
			return
		}
		m.Open("div", "class", "entry-content")
		for _, paragraph := range paragraphs(m.View.Entry.Body) {
			m.Element("p", paragraph)
		}
		m.Close("div")
	})
}

func paragraphs(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(body, "\n\n") {
		if block = strings.Join(strings.Fields(block), " "); block != "" {
			out = append(out, block)
		}
	}
	return out
}

// Search renders the search form and the matching posts.
func Search() templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("section", "class", "search-results")
		if m.View.SearchQuery != "" {
			m.Element("h2", m.View.T(i18n.KeySearchResults, m.View.SearchQuery), "class", "section-title")
		}
		searchForm(m)
		m.Child("archive-loop")
		m.Close("section")
	})
}

func searchForm(m *view.Markup) {
	m.Open("form", "role", "search", "method", "get", "class", "search-form", "action", "/search")
	m.Open("input", "type", "search", "name", "s", "class", "search-field",
		"value", m.View.SearchQuery, "placeholder", m.View.T(i18n.KeySearchPlaceholder))
	m.Element("button", m.View.T(i18n.KeySearchSubmit), "type", "submit", "class", "search-submit")
	m.Close("form")
}

// PageNotFound renders the 404 body.
func PageNotFound() templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("section", "class", "page-not-found")
		m.Element("h2", m.View.T(i18n.KeyNotFoundTitle), "class", "section-title")
		m.Element("p", m.View.T(i18n.KeyNotFoundBody))
		searchForm(m)
		m.Close("section")
	})
}

// PostLoop renders the posts as cards.
func PostLoop() templ.Component {
	return loop("post-loop")
}

// ArchiveLoop renders the posts as an archive list. main-loop is the same
// renderer.
func ArchiveLoop() templ.Component {
	return loop("archive-loop")
}

func loop(class string) templ.Component {
	return view.Component(func(m *view.Markup) {
		if len(m.View.Posts) == 0 {
			m.Element("p", m.View.T(i18n.KeyNoPosts), "class", "no-posts")
			return
		}
		m.Open("div", "class", view.Classes("loop", class))
		for _, post := range m.View.Posts {
			loopItem(m, post)
		}
		m.Close("div")
	})
}

func loopItem(m *view.Markup, post manifest.Post) {
	link := "/post/" + post.Slug
	m.Open("article", "class", "loop-item", "data-slug", post.Slug)
	m.Open("h3", "class", "loop-item-title")
	m.Element("a", post.Title, "href", link)
	m.Close("h3")
	if post.Date != "" {
		m.Element("time", post.Date, "datetime", post.Date)
	}
	if post.Excerpt != "" {
		m.Element("p", post.Excerpt, "class", "loop-item-excerpt")
	}
	m.Element("a", m.View.T(i18n.KeyReadMore), "class", "read-more", "href", link)
	m.Close("article")
}
