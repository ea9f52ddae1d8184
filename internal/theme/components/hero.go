package components

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// FrontHero renders the front page hero block.
func FrontHero() templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("div", "class", "hero hero-front")
		m.Open("div", "class", "hero-text")
		m.Child("front-title")
		m.Child("front-subtitle")
		m.Child("buttons")
		m.Close("div")
		m.Child("front-image")
		m.Close("div")
	})
}

// FrontTitle renders the hero title.
func FrontTitle() templ.Component {
	return view.Component(func(m *view.Markup) {
		title := m.View.Manifest.FrontPage.Hero.Title
		if title == "" {
			title = m.View.SiteName()
		}
		m.Element("h1", title, "class", "hero-title")
	})
}

// FrontSubtitle renders the hero subtitle, falling back to the site tagline.
func FrontSubtitle() templ.Component {
	return view.Component(func(m *view.Markup) {
		subtitle := m.View.Manifest.FrontPage.Hero.Subtitle
		if subtitle == "" {
			subtitle = m.View.Manifest.Site.Tagline
		}
		if subtitle == "" {
			return
		}
		m.Element("p", subtitle, "class", "hero-subtitle")
	})
}

// Buttons renders the hero call to action links.
func Buttons() templ.Component {
	return view.Component(func(m *view.Markup) {
		buttons := m.View.Manifest.FrontPage.Hero.Buttons
		if len(buttons) == 0 {
			return
		}
		m.Open("div", "class", "hero-buttons")
		for _, button := range buttons {
			style := button.Style
			if style == "" {
				style = "primary"
			}
			m.Element("a", button.Label, "class", view.Classes("button", "button-"+style), "href", button.URL)
		}
		m.Close("div")
	})
}

// FrontImage renders the hero image when one is configured.
func FrontImage() templ.Component {
	return view.Component(func(m *view.Markup) {
		image := m.View.Manifest.FrontPage.Hero.Image
		if image == "" {
			return
		}
		m.Open("div", "class", "hero-image")
		m.Open("img", "src", m.View.Asset(image), "alt", "")
		m.Close("div")
	})
}

// InnerHero renders the inner page hero block.
func InnerHero() templ.Component {
	return view.Component(func(m *view.Markup) {
		m.Open("div", "class", "hero hero-inner")
		m.Child("inner-title")
		m.Close("div")
	})
}

// InnerTitle renders the title of the current inner page.
func InnerTitle() templ.Component {
	return view.Component(func(m *view.Markup) {
		title := m.View.Title
		if m.View.Entry != nil && m.View.Entry.Title != "" {
			title = m.View.Entry.Title
		}
		if title == "" {
			title = m.View.SiteName()
		}
		m.Element("h1", title, "class", "page-title")
	})
}
