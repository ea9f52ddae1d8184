package components

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/pathway/internal/theme/manifest"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// CSS prints the header style: palette utility classes bound to the color
// scheme variables.
func CSS() templ.Component {
	return view.Component(func(m *view.Markup) {
		if block := PaletteCSS(m.View.Manifest.ColorScheme); block != "" {
			m.Raw(`<style id="pathway-header-style">`, block, "</style>")
		}
	})
}

// PaletteCSS returns the has-color-<n>-color and has-color-<n>-background-color
// rules for each color of the scheme, numbered from 1.
func PaletteCSS(scheme []manifest.Color) string {
	var b strings.Builder
	for idx := range scheme {
		n := strconv.Itoa(idx + 1)
		b.WriteString(".has-color-" + n + "-color{color:var(--color-" + n + ")}")
		b.WriteString(".has-color-" + n + "-background-color{background-color:var(--color-" + n + ")}")
	}
	return b.String()
}
