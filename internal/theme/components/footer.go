package components

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// FrontFooter renders the site footer with the footer menu and copyright.
func FrontFooter() templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("footer", "class", "footer")
		m.Child("footer-menu")
		if copyright := Copyright(m.View.Manifest.Footer.Copyright, m.View.Now.Year(), m.View.SiteName()); copyright != "" {
			m.Element("p", copyright, "class", "copyright")
		}
		m.Close("footer")
	})
}

// Copyright expands the {year} and {site} placeholders.
func Copyright(format string, year int, site string) string {
	return strings.NewReplacer("{year}", strconv.Itoa(year), "{site}", site).Replace(strings.TrimSpace(format))
}
