package onboarding

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/manifest"
	"github.com/louisbranch/pathway/internal/theme/view"
	"golang.org/x/text/language"
)

func TestRecommendedPlugins(t *testing.T) {
	t.Parallel()

	free := RecommendedPlugins(nil, nil)
	plugin, ok := free["kubio"]
	if !ok || len(free) != 1 {
		t.Fatalf("RecommendedPlugins() = %+v, want kubio", free)
	}
	if plugin.Name != "Kubio" || plugin.PluginPath != "kubio/plugin.php" || plugin.Description == "" {
		t.Fatalf("kubio plugin = %+v", plugin)
	}

	pro := RecommendedPlugins([]string{"kubio-pro/plugin.php"}, i18n.Printer(language.English))
	if got := pro["kubio-pro"]; got.Name != "Kubio PRO" || got.PluginPath != "kubio-pro/plugin.php" {
		t.Fatalf("kubio-pro plugin = %+v", got)
	}
}

func TestImportedNotice(t *testing.T) {
	t.Parallel()

	m := &manifest.Manifest{Name: "Pathway", Site: manifest.Site{URL: "http://example.com"}}
	render := func(query string) string {
		values, _ := url.ParseQuery(query)
		ctx := view.WithContext(context.Background(), &view.Context{Manifest: m, Query: values})
		var buf bytes.Buffer
		if err := ImportedNotice().Render(ctx, &buf); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		return buf.String()
	}

	if got := render("kubio-designed-imported=0"); got != "" {
		t.Fatalf("notice = %q, want empty", got)
	}
	got := render("kubio-designed-imported=1")
	for _, want := range []string{
		"Pathway design has been successfully imported!",
		`href="http://example.com"`,
		"View site",
		"imported-subtitle",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("notice = %q, want %q", got, want)
		}
	}
}
