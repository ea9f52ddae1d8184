package admin

import (
	"github.com/a-h/templ"

	"github.com/louisbranch/pathway/internal/services/pathway/modules/ajax"
	"github.com/louisbranch/pathway/internal/services/pathway/routepath"
	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/onboarding"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// getStarted renders the builder get-started screen. Both choices post the
// predesign action with the session token.
func getStarted(token string) templ.Component {
	return view.Component(func(m *view.Markup) {
		name := m.View.Manifest.Name
		m.Render(onboarding.ImportedNotice())
		m.Open("main", "id", "content", "class", "kubio-get-started wrap")
		m.Element("h1", m.View.T(i18n.KeyGetStartedTitle, name), "class", "get-started-title")
		m.Open("div", "class", "get-started-choices")
		predesignForm(m, token, "yes", "get-started-ai", m.View.T(i18n.KeyGetStartedStartAI))
		predesignForm(m, token, "no", "get-started-import", m.View.T(i18n.KeyGetStartedImport, name))
		m.Close("div")
		m.Close("main")
	})
}

func predesignForm(m *view.Markup, token, ai, class, label string) {
	m.Open("form", "method", "post", "class", view.Classes("predesign-form", class), "action", routepath.AdminAjax)
	for _, field := range [][2]string{
		{"action", ajax.ActionSetPredesign},
		{"nonce", token},
		{"AI", ai},
		{"source", onboarding.DefaultSource},
	} {
		m.Open("input", "type", "hidden", "name", field[0], "value", field[1])
	}
	m.Element("button", label, "type", "submit", "class", "button button-primary")
	m.Close("form")
}
