package onboarding

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// ImportedNotice renders the success notice of the get-started page. It
// prints nothing unless the query marks an imported design.
func ImportedNotice() templ.Component {
	return view.Component(func(m *view.Markup) {
		if !IsImported(m.View.Query) {
			return
		}
		name := m.View.Manifest.Name
		siteURL := m.View.Manifest.Site.URL
		if siteURL == "" {
			siteURL = "/"
		}
		m.Open("div", "class", "kubio-admin-page-page-section kubio-get-started-section-1 wrap")
		m.Open("div", "class", "kubio-admin-row get-started-imported notice notice-success")
		m.Open("div")
		m.Element("p", m.View.T(i18n.KeyImportedTitle, name), "class", "imported-title")
		m.Element("p", m.View.T(i18n.KeyImportedSubtitle, name), "class", "imported-subtitle")
		m.Close("div")
		m.Open("div", "class", "button imported-view-site-button")
		m.Element("a", m.View.T(i18n.KeyViewSite), "href", siteURL)
		m.Close("div")
		m.Close("div")
		m.Close("div")
	})
}
