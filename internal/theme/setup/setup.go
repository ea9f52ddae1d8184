// Package setup assembles the theme at startup: supports, menus, builder
// feature switches, assets and the component registry.
package setup

import (
	"errors"
	"fmt"

	"github.com/louisbranch/pathway/internal/theme/assets"
	"github.com/louisbranch/pathway/internal/theme/component"
	"github.com/louisbranch/pathway/internal/theme/components"
	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/manifest"
)

// TryOnlineBase prefixes the builder's try-online URL.
const TryOnlineBase = "https://kubiobuilder.com/go/try-theme/"

// Builder feature switches enabled by the theme.
const (
	FeatureBlockTemplates      = "has_block_templates_support"
	FeatureTryOnline           = "enable_try_online"
	FeatureSupplementaryUpsell = "show-supplementary-upgrade-to-pro"
	FeatureAICapabilities      = "enable_ai_capabilities"
)

// Vendor scripts the theme script depends on.
const (
	JQueryURL             = "https://cdn.jsdelivr.net/npm/jquery@3.7.1/dist/jquery.min.js"
	JQueryEffectsCoreURL  = "https://cdn.jsdelivr.net/npm/jquery-ui@1.13.2/ui/effect.js"
	JQueryEffectsSlideURL = "https://cdn.jsdelivr.net/npm/jquery-ui@1.13.2/ui/effects/effect-slide.js"
)

// CustomLogo holds the custom-logo support arguments.
type CustomLogo struct {
	FlexHeight bool `json:"flex-height"`
	FlexWidth  bool `json:"flex-width"`
	Width      int  `json:"width"`
	Height     int  `json:"height"`
}

// ProductGrid bounds the shop grid.
type ProductGrid struct {
	DefaultRows    int `json:"default_rows"`
	MinRows        int `json:"min_rows"`
	MaxRows        int `json:"max_rows"`
	DefaultColumns int `json:"default_columns"`
	MinColumns     int `json:"min_columns"`
	MaxColumns     int `json:"max_columns"`
}

// WooCommerce holds the woocommerce support arguments.
type WooCommerce struct {
	ProductGrid ProductGrid `json:"product_grid"`
}

// Support is one declared theme support with optional arguments.
type Support struct {
	Name string `json:"name"`
	Args any    `json:"args,omitempty"`
}

// Menu is a registered menu location.
type Menu struct {
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Options configures Load.
type Options struct {
	BuilderEnabled bool
	// Contributors are merged after the framework and theme sets.
	Contributors []component.Contributor
}

// Theme is the assembled, read-only theme.
type Theme struct {
	Manifest       *manifest.Manifest
	Registry       *component.Registry
	Assets         *assets.Manager
	Supports       []Support
	Menus          []Menu
	Features       map[string]bool
	BuilderEnabled bool
}

// DefaultSupports returns the theme supports in declaration order.
func DefaultSupports() []Support {
	return []Support{
		{Name: "automatic-feed-links"},
		{Name: "title-tag"},
		{Name: "post-thumbnails"},
		{Name: "custom-logo", Args: CustomLogo{FlexHeight: true, FlexWidth: true, Width: 150, Height: 70}},
		{Name: "woocommerce", Args: WooCommerce{ProductGrid: ProductGrid{
			DefaultRows:    3,
			MinRows:        2,
			MaxRows:        8,
			DefaultColumns: 3,
			MinColumns:     2,
			MaxColumns:     4,
		}}},
		{Name: "kubio-woocommerce"},
	}
}

// DefaultMenus returns the menu locations. Descriptions are message keys.
func DefaultMenus() []Menu {
	return []Menu{
		{Location: "header-menu", Description: i18n.KeyHeaderMenu},
		{Location: "footer-menu", Description: i18n.KeyFooterMenu},
	}
}

// DefaultFeatures returns the builder feature switches.
func DefaultFeatures() map[string]bool {
	return map[string]bool{
		FeatureBlockTemplates:      true,
		FeatureTryOnline:           true,
		FeatureSupplementaryUpsell: true,
		FeatureAICapabilities:      true,
	}
}

// TryOnlineURL returns the builder try-online link for a template.
func TryOnlineURL(template string) string {
	return TryOnlineBase + template
}

// Load assembles the theme for m.
func Load(m *manifest.Manifest, opts Options) (*Theme, error) {
	if m == nil {
		return nil, errors.New("manifest is required")
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validate manifest: %w", err)
	}

	manager, err := Assets(m, opts.BuilderEnabled)
	if err != nil {
		return nil, err
	}
	registry, err := components.Build(opts.Contributors...)
	if err != nil {
		return nil, fmt.Errorf("build components: %w", err)
	}

	return &Theme{
		Manifest:       m,
		Registry:       registry,
		Assets:         manager,
		Supports:       DefaultSupports(),
		Menus:          DefaultMenus(),
		Features:       DefaultFeatures(),
		BuilderEnabled: opts.BuilderEnabled,
	}, nil
}

// Assets registers the theme assets. With the builder enabled only the base
// block style is loaded and Google fonts are skipped.
func Assets(m *manifest.Manifest, builderEnabled bool) (*assets.Manager, error) {
	manager := assets.New(m.BaseURL)
	if builderEnabled {
		manager.RegisterStyle("pathway-theme", manager.BaseURL()+"/theme/fse-base-style.css")
		manager.SkipGoogleFonts(true)
	} else {
		manager.
			RegisterScript("jquery", JQueryURL).
			RegisterScript("jquery-effects-core", JQueryEffectsCoreURL, "jquery").
			RegisterScript("jquery-effects-slide", JQueryEffectsSlideURL, "jquery-effects-core").
			RegisterTemplateScript("pathway-theme", "/theme/theme.js", "jquery", "jquery-effects-slide", "jquery-effects-core").
			RegisterStylesheet("pathway-theme", "/theme/theme.css")
		for _, family := range m.FontFamilies() {
			manager.AddGoogleFont(family, m.Fonts[family]...)
		}
		values := make([]string, 0, len(m.ColorScheme))
		for _, color := range m.ColorScheme {
			values = append(values, color.Value)
		}
		manager.AddInlineStyle(assets.ColorSchemeID, 0, assets.ColorSchemeCSS(values))
	}
	if _, err := manager.Head(); err != nil {
		return nil, fmt.Errorf("resolve assets: %w", err)
	}
	return manager, nil
}

// HasSupport reports whether the theme declares name.
func (t *Theme) HasSupport(name string) bool {
	_, ok := t.Support(name)
	return ok
}

// Support returns the declared support named name.
func (t *Theme) Support(name string) (Support, bool) {
	for _, support := range t.Supports {
		if support.Name == name {
			return support, true
		}
	}
	return Support{}, false
}

// Feature reports a builder feature switch.
func (t *Theme) Feature(name string) bool {
	return t.Features[name]
}

// TryOnlineURL returns the try-online link of this theme.
func (t *Theme) TryOnlineURL() string {
	return TryOnlineURL(t.Manifest.Template)
}
