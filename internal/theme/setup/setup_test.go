package setup

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/louisbranch/pathway/internal/theme/component"
	"github.com/louisbranch/pathway/internal/theme/manifest"
)

func defaultManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Default()
	if err != nil {
		t.Fatalf("manifest.Default() error = %v", err)
	}
	return m
}

func TestLoadDeclaresSupportsMenusAndFeatures(t *testing.T) {
	t.Parallel()

	theme, err := Load(defaultManifest(t), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, name := range []string{"automatic-feed-links", "title-tag", "post-thumbnails", "custom-logo", "woocommerce", "kubio-woocommerce"} {
		if !theme.HasSupport(name) {
			t.Fatalf("HasSupport(%q) = false, want true", name)
		}
	}

	logo, _ := theme.Support("custom-logo")
	if got, want := logo.Args, (CustomLogo{FlexHeight: true, FlexWidth: true, Width: 150, Height: 70}); got != want {
		t.Fatalf("custom-logo args = %+v, want %+v", got, want)
	}
	woo, _ := theme.Support("woocommerce")
	grid := woo.Args.(WooCommerce).ProductGrid
	if grid != (ProductGrid{DefaultRows: 3, MinRows: 2, MaxRows: 8, DefaultColumns: 3, MinColumns: 2, MaxColumns: 4}) {
		t.Fatalf("product grid = %+v", grid)
	}

	if len(theme.Menus) != 2 || theme.Menus[0].Location != "header-menu" || theme.Menus[1].Location != "footer-menu" {
		t.Fatalf("menus = %+v", theme.Menus)
	}
	for _, feature := range []string{FeatureBlockTemplates, FeatureTryOnline, FeatureSupplementaryUpsell, FeatureAICapabilities} {
		if !theme.Feature(feature) {
			t.Fatalf("Feature(%q) = false, want true", feature)
		}
	}
	if theme.Feature("unknown") {
		t.Fatal("Feature(unknown) = true, want false")
	}
}

func TestTryOnlineURL(t *testing.T) {
	t.Parallel()

	theme, err := Load(defaultManifest(t), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := theme.TryOnlineURL(), "https://kubiobuilder.com/go/try-theme/pathway"; got != want {
		t.Fatalf("TryOnlineURL() = %q, want %q", got, want)
	}
}

func TestAssetsWithoutBuilder(t *testing.T) {
	t.Parallel()

	m := defaultManifest(t)
	manager, err := Assets(m, false)
	if err != nil {
		t.Fatalf("Assets() error = %v", err)
	}
	head, err := manager.Head()
	if err != nil {
		t.Fatalf("Head() error = %v", err)
	}
	if !strings.HasPrefix(head, `<style id="pathway-color-scheme">:root{--color-1:`) {
		t.Fatalf("head = %q, want color scheme first", head)
	}
	for _, want := range []string{m.BaseURL + "/theme/theme.css", "fonts.googleapis.com", "jquery.min.js"} {
		if !strings.Contains(head, want) {
			t.Fatalf("head = %q, want %q", head, want)
		}
	}
	footer, err := manager.Footer()
	if err != nil {
		t.Fatalf("Footer() error = %v", err)
	}
	if !strings.Contains(footer, m.BaseURL+"/theme/theme.js") {
		t.Fatalf("footer = %q, want theme.js", footer)
	}
}

func TestAssetsWithBuilder(t *testing.T) {
	t.Parallel()

	m := defaultManifest(t)
	manager, err := Assets(m, true)
	if err != nil {
		t.Fatalf("Assets() error = %v", err)
	}
	head, err := manager.Head()
	if err != nil {
		t.Fatalf("Head() error = %v", err)
	}
	want := `<link rel="stylesheet" id="pathway-theme-css" href="` + m.BaseURL + `/theme/fse-base-style.css">`
	if head != want {
		t.Fatalf("head = %q, want %q", head, want)
	}
	if manager.GoogleFontsURL() != "" {
		t.Fatal("GoogleFontsURL() not empty with builder enabled")
	}
}

func TestLoadMergesExtraContributors(t *testing.T) {
	t.Parallel()

	theme, err := Load(defaultManifest(t), Options{Contributors: []component.Contributor{{
		Name:     "child",
		Priority: 30,
		Entries: func() component.Batch {
			return component.Batch{{Key: "front-footer", Renderer: component.RendererFunc(func(_ context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "child footer")
				return err
			})}}
		},
	}}})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	var buf bytes.Buffer
	if err := theme.Registry.Render(context.Background(), "front-footer", &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "child footer" {
		t.Fatalf("front-footer = %q, want %q", buf.String(), "child footer")
	}
	if !theme.Registry.Has("archive-loop") {
		t.Fatal("registry lost archive-loop")
	}
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	t.Parallel()

	if _, err := Load(nil, Options{}); err == nil {
		t.Fatal("Load(nil) error = nil, want error")
	}
	if _, err := Load(&manifest.Manifest{}, Options{}); err == nil {
		t.Fatal("Load(empty) error = nil, want error")
	}
}
