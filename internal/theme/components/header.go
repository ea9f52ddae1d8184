package components

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/pathway/internal/theme/manifest"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// Header composes the front page or inner page header fragments.
func Header() templ.Component {
	return view.Component(func(m *view.Markup) {
		prefix := "inner"
		if m.View.IsFront() {
			prefix = "front"
		}
		m.Open("header", "class", view.Classes("header", "header-"+prefix))
		m.Child(prefix + "-top-bar")
		m.Child(prefix + "-nav-bar")
		m.Child(prefix + "-hero")
		m.Close("header")
	})
}

// Logo links the site logo, or the site name when no logo is configured, to
// the home page.
func Logo() templ.Component {
	return view.Component(func(m *view.Markup) {
		site := m.View.Manifest.Site
		m.Open("a", "class", "logo", "href", homeURL(site.URL), "rel", "home")
		if logo := strings.TrimSpace(site.Logo); logo != "" {
			m.Open("img", "src", m.View.Asset(logo), "alt", m.View.SiteName())
		} else {
			m.Element("span", m.View.SiteName(), "class", "logo-text")
		}
		m.Close("a")
	})
}

// HeaderMenu lists the header-menu items and marks the current one.
func HeaderMenu() templ.Component {
	return menu("header-menu", "header-menu")
}

// FooterMenu lists the footer-menu items.
func FooterMenu() templ.Component {
	return menu("footer-menu", "footer-menu")
}

func menu(location string, class string) templ.Component {
	return view.Component(func(m *view.Markup) {
		items := m.View.Manifest.Menus[location]
		if len(items) == 0 {
			return
		}
		m.Open("nav", "class", class, "data-location", location)
		m.Open("ul", "class", "menu")
		for _, item := range items {
			current := ""
			if item.URL == m.View.Path {
				current = "current-menu-item"
			}
			m.Open("li", "class", view.Classes("menu-item", current))
			m.Element("a", item.Label, "href", item.URL)
			m.Close("li")
		}
		m.Close("ul")
		m.Close("nav")
	})
}

// NavBar renders the logo and header menu. variant is "front" or "inner".
func NavBar(variant string) templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("div", "class", view.Classes("navigation", "navigation-"+variant))
		m.Child("logo")
		m.Child("header-menu")
		m.Close("div")
	})
}

// TopBar renders the icon lists above the navigation. variant is "front" or
// "inner".
func TopBar(variant string) templ.Component {
	return view.Component(func(m *view.Markup) {
		bar := m.View.Manifest.TopBar
		if len(bar.ListIcons) == 0 && len(bar.SocialIcons) == 0 {
			return
		}
		m.Open("div", "class", view.Classes("top-bar", "top-bar-"+variant))
		m.Child("top-bar-list-icons")
		m.Child("top-bar-social-icons")
		m.Close("div")
	})
}

// TopBarListIcons renders contact style icon links.
func TopBarListIcons() templ.Component {
	return iconList("top-bar-list-icons", func(bar manifest.TopBar) []manifest.Link { return bar.ListIcons }, true)
}

// TopBarSocialIcons renders social network icon links.
func TopBarSocialIcons() templ.Component {
	return iconList("top-bar-social-icons", func(bar manifest.TopBar) []manifest.Link { return bar.SocialIcons }, false)
}

func iconList(class string, pick func(manifest.TopBar) []manifest.Link, showLabel bool) templ.Component {
	return view.Component(func(m *view.Markup) {
		links := pick(m.View.Manifest.TopBar)
		if len(links) == 0 {
			return
		}
		m.Open("ul", "class", class)
		for _, link := range links {
			m.Open("li")
			m.Open("a", "href", link.URL, "aria-label", link.Label)
			m.Open("i", "class", view.Classes("icon", "icon-"+link.Icon))
			m.Close("i")
			if showLabel {
				m.Element("span", link.Label)
			}
			m.Close("a")
			m.Close("li")
		}
		m.Close("ul")
	})
}

func homeURL(siteURL string) string {
	if siteURL == "" {
		return "/"
	}
	return siteURL + "/"
}
