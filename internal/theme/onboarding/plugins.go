package onboarding

import (
	"golang.org/x/text/message"

	"github.com/louisbranch/pathway/internal/theme/i18n"
)

// Plugin describes a plugin the theme recommends.
type Plugin struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PluginPath  string `json:"plugin_path"`
}

// BuilderPluginSlug returns kubio-pro when its plugin file is installed, and
// kubio otherwise.
func BuilderPluginSlug(installed []string) string {
	for _, path := range installed {
		if path == BuilderProSlug+"/plugin.php" {
			return BuilderProSlug
		}
	}
	return BuilderSlug
}

// RecommendedPlugins returns the theme plugins keyed by slug.
func RecommendedPlugins(installed []string, printer *message.Printer) map[string]Plugin {
	if printer == nil {
		printer = i18n.Printer(i18n.Default())
	}
	slug := BuilderPluginSlug(installed)
	name := printer.Sprintf(i18n.KeyBuilderName)
	if slug == BuilderProSlug {
		name = printer.Sprintf(i18n.KeyBuilderProName)
	}
	return map[string]Plugin{
		slug: {
			Name:        name,
			Description: printer.Sprintf(i18n.KeyBuilderDescription),
			PluginPath:  slug + "/plugin.php",
		},
	}
}
