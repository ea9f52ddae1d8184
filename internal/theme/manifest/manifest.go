// Package manifest loads the theme defaults: identity, fonts, color scheme,
// menus and the demo content rendered by the site.
package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed pathway.yaml
var defaultManifest []byte

// Manifest is the decoded theme defaults document.
type Manifest struct {
	Name        string              `yaml:"name" toml:"name"`
	Template    string              `yaml:"template" toml:"template"`
	BaseURL     string              `yaml:"base_url" toml:"base_url"`
	Site        Site                `yaml:"site" toml:"site"`
	Fonts       map[string][]string `yaml:"fonts" toml:"fonts"`
	ColorScheme []Color             `yaml:"color_scheme" toml:"color_scheme"`
	Menus       map[string][]Link   `yaml:"menus" toml:"menus"`
	FrontPage   FrontPage           `yaml:"front_page" toml:"front_page"`
	TopBar      TopBar              `yaml:"top_bar" toml:"top_bar"`
	Footer      Footer              `yaml:"footer" toml:"footer"`
	Posts       []Post              `yaml:"posts" toml:"posts"`
	Pages       []Post              `yaml:"pages" toml:"pages"`
}

// Site describes the site hosting the theme.
type Site struct {
	Name    string `yaml:"name" toml:"name"`
	URL     string `yaml:"url" toml:"url"`
	Tagline string `yaml:"tagline" toml:"tagline"`
	Logo    string `yaml:"logo" toml:"logo"`
}

// Color is one named entry of the color scheme, printed as a CSS variable.
type Color struct {
	Name  string `yaml:"name" toml:"name"`
	Value string `yaml:"value" toml:"value"`
}

// Link is a labelled URL, optionally decorated with an icon or style.
type Link struct {
	Label string `yaml:"label" toml:"label"`
	URL   string `yaml:"url" toml:"url"`
	Icon  string `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Style string `yaml:"style,omitempty" toml:"style,omitempty"`
}

// FrontPage holds the front page header content.
type FrontPage struct {
	Hero Hero `yaml:"hero" toml:"hero"`
}

// Hero is the large header block of a page.
type Hero struct {
	Title    string `yaml:"title" toml:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle"`
	Image    string `yaml:"image" toml:"image"`
	Buttons  []Link `yaml:"buttons" toml:"buttons"`
}

// TopBar holds the strip rendered above the navigation.
type TopBar struct {
	ListIcons   []Link `yaml:"list_icons" toml:"list_icons"`
	SocialIcons []Link `yaml:"social_icons" toml:"social_icons"`
}

// Footer holds the footer copy. Copyright may contain {year} and {site}.
type Footer struct {
	Copyright string `yaml:"copyright" toml:"copyright"`
}

// Post is a unit of demo content.
type Post struct {
	Slug    string `yaml:"slug" toml:"slug"`
	Title   string `yaml:"title" toml:"title"`
	Date    string `yaml:"date" toml:"date"`
	Excerpt string `yaml:"excerpt" toml:"excerpt"`
	Body    string `yaml:"body" toml:"body"`
}

// Default returns the embedded manifest.
func Default() (*Manifest, error) {
	return Decode(defaultManifest, FormatYAML)
}

// Format names a manifest encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath selects the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported manifest extension %q", filepath.Ext(path))
	}
}

// Load reads a manifest from disk. An empty path returns the default.
func Load(path string) (*Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Decode(data, format)
}

// Decode parses data in the given format and validates the result.
func Decode(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode yaml manifest: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode toml manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	m.normalize()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the fields the theme cannot run without.
func (m *Manifest) Validate() error {
	if m == nil {
		return errors.New("manifest is required")
	}
	if m.Name == "" {
		return errors.New("manifest name is required")
	}
	if m.Template == "" {
		return errors.New("manifest template is required")
	}
	seen := make(map[string]bool)
	for _, post := range append(append([]Post(nil), m.Posts...), m.Pages...) {
		if post.Slug == "" {
			return fmt.Errorf("content %q: slug is required", post.Title)
		}
		if seen[post.Slug] {
			return fmt.Errorf("content slug %q is duplicated", post.Slug)
		}
		seen[post.Slug] = true
	}
	return nil
}

// FontFamilies returns font families in lexical order.
func (m *Manifest) FontFamilies() []string {
	families := make([]string, 0, len(m.Fonts))
	for family := range m.Fonts {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// FindPost returns the post with slug.
func (m *Manifest) FindPost(slug string) (Post, bool) {
	return find(m.Posts, slug)
}

// FindPage returns the page with slug.
func (m *Manifest) FindPage(slug string) (Post, bool) {
	return find(m.Pages, slug)
}

func find(items []Post, slug string) (Post, bool) {
	slug = strings.TrimSpace(slug)
	for _, item := range items {
		if item.Slug == slug {
			return item, true
		}
	}
	return Post{}, false
}

func (m *Manifest) normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Template = strings.TrimSpace(m.Template)
	m.BaseURL = strings.TrimRight(strings.TrimSpace(m.BaseURL), "/")
	if m.Site.Name == "" {
		m.Site.Name = m.Name
	}
	m.Site.URL = strings.TrimRight(strings.TrimSpace(m.Site.URL), "/")
	for idx := range m.Posts {
		m.Posts[idx].Slug = strings.TrimSpace(m.Posts[idx].Slug)
	}
	for idx := range m.Pages {
		m.Pages[idx].Slug = strings.TrimSpace(m.Pages[idx].Slug)
	}
}
