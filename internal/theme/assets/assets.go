// Package assets collects the stylesheets, scripts, fonts and inline styles a
// page prints, and renders them in dependency order.
package assets

import (
	"fmt"
	"html"
	"io"
	"net/url"
	"sort"
	"strings"
)

// GoogleFontsBase is the stylesheet endpoint used for Google fonts.
const GoogleFontsBase = "https://fonts.googleapis.com/css"

// PriorityEnqueued is the head position of linked styles and scripts. Inline
// blocks with a lower priority print before them.
const PriorityEnqueued = 10

// Asset is a registered stylesheet or script.
type Asset struct {
	Handle   string
	URL      string
	Deps     []string
	InFooter bool
}

// Font is a Google font family with its variants.
type Font struct {
	Family   string
	Variants []string
}

// Inline is a raw style block printed in the head at Priority.
type Inline struct {
	ID       string
	Priority int
	CSS      string
}

// Manager accumulates a page's assets. It is built during theme setup and
// read concurrently afterwards.
type Manager struct {
	baseURL   string
	styles    []Asset
	scripts   []Asset
	fonts     []Font
	inline    []Inline
	skipFonts bool
}

// New returns a manager resolving relative paths against baseURL.
func New(baseURL string) *Manager {
	return &Manager{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// BaseURL returns the theme base URL.
func (m *Manager) BaseURL() string {
	return m.baseURL
}

// Resolve joins a theme relative path to the base URL. Absolute and protocol
// relative URLs are returned unchanged.
func (m *Manager) Resolve(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || strings.Contains(path, "://") || strings.HasPrefix(path, "//") {
		return path
	}
	return m.baseURL + "/" + strings.TrimLeft(path, "/")
}

// RegisterTemplateScript registers a theme script printed before </body>.
func (m *Manager) RegisterTemplateScript(handle, path string, deps ...string) *Manager {
	m.scripts = appendUnique(m.scripts, Asset{Handle: handle, URL: m.Resolve(path), Deps: deps, InFooter: true})
	return m
}

// RegisterScript registers a script printed in the head.
func (m *Manager) RegisterScript(handle, src string, deps ...string) *Manager {
	m.scripts = appendUnique(m.scripts, Asset{Handle: handle, URL: m.Resolve(src), Deps: deps})
	return m
}

// RegisterStylesheet registers a theme relative stylesheet.
func (m *Manager) RegisterStylesheet(handle, path string, deps ...string) *Manager {
	return m.RegisterStyle(handle, m.Resolve(path), deps...)
}

// RegisterStyle registers a stylesheet by URL.
func (m *Manager) RegisterStyle(handle, href string, deps ...string) *Manager {
	m.styles = appendUnique(m.styles, Asset{Handle: handle, URL: strings.TrimSpace(href), Deps: deps})
	return m
}

// AddGoogleFont adds a family; variants of a repeated family are merged.
func (m *Manager) AddGoogleFont(family string, variants ...string) *Manager {
	family = strings.TrimSpace(family)
	if family == "" {
		return m
	}
	for idx := range m.fonts {
		if m.fonts[idx].Family == family {
			m.fonts[idx].Variants = mergeVariants(m.fonts[idx].Variants, variants)
			return m
		}
	}
	m.fonts = append(m.fonts, Font{Family: family, Variants: mergeVariants(nil, variants)})
	return m
}

// SkipGoogleFonts disables the fonts link.
func (m *Manager) SkipGoogleFonts(skip bool) *Manager {
	m.skipFonts = skip
	return m
}

// AddInlineStyle adds a style block. A repeated id replaces the earlier block.
func (m *Manager) AddInlineStyle(id string, priority int, css string) *Manager {
	for idx := range m.inline {
		if m.inline[idx].ID == id {
			m.inline[idx] = Inline{ID: id, Priority: priority, CSS: css}
			return m
		}
	}
	m.inline = append(m.inline, Inline{ID: id, Priority: priority, CSS: css})
	return m
}

// Fonts returns the registered fonts, empty when fonts are skipped.
func (m *Manager) Fonts() []Font {
	if m.skipFonts {
		return nil
	}
	return append([]Font(nil), m.fonts...)
}

// GoogleFontsURL returns the combined fonts stylesheet URL, or "" when there
// is nothing to load.
func (m *Manager) GoogleFontsURL() string {
	fonts := m.Fonts()
	if len(fonts) == 0 {
		return ""
	}
	families := make([]string, 0, len(fonts))
	for _, font := range fonts {
		family := url.QueryEscape(font.Family)
		if len(font.Variants) > 0 {
			variants := make([]string, 0, len(font.Variants))
			for _, variant := range font.Variants {
				variants = append(variants, url.QueryEscape(variant))
			}
			family += ":" + strings.Join(variants, ",")
		}
		families = append(families, family)
	}
	return GoogleFontsBase + "?family=" + strings.Join(families, "|") + "&display=swap"
}

// Styles returns the stylesheets with dependencies first.
func (m *Manager) Styles() ([]Asset, error) {
	return order("style", m.styles)
}

// Scripts returns the scripts with dependencies first.
func (m *Manager) Scripts() ([]Asset, error) {
	return order("script", m.scripts)
}

// WriteHead prints the head block: inline styles and enqueued assets sorted
// by priority.
func (m *Manager) WriteHead(w io.Writer) error {
	styles, err := m.Styles()
	if err != nil {
		return err
	}
	scripts, err := m.Scripts()
	if err != nil {
		return err
	}

	inline := append([]Inline(nil), m.inline...)
	sort.SliceStable(inline, func(i, j int) bool { return inline[i].Priority < inline[j].Priority })

	var b strings.Builder
	enqueued := false
	writeEnqueued := func() {
		if enqueued {
			return
		}
		enqueued = true
		for _, style := range styles {
			fmt.Fprintf(&b, `<link rel="stylesheet" id="%s-css" href="%s">`, html.EscapeString(style.Handle), html.EscapeString(style.URL))
		}
		if fonts := m.GoogleFontsURL(); fonts != "" {
			fmt.Fprintf(&b, `<link rel="stylesheet" id="google-fonts-css" href="%s">`, html.EscapeString(fonts))
		}
		writeScripts(&b, scripts, false)
	}
	for _, block := range inline {
		if block.Priority >= PriorityEnqueued {
			writeEnqueued()
		}
		if strings.TrimSpace(block.CSS) == "" {
			continue
		}
		fmt.Fprintf(&b, `<style id="%s">%s</style>`, html.EscapeString(block.ID), sanitizeStyle(block.CSS))
	}
	writeEnqueued()

	_, err = io.WriteString(w, b.String())
	return err
}

// WriteFooter prints the scripts registered for the end of the body.
func (m *Manager) WriteFooter(w io.Writer) error {
	scripts, err := m.Scripts()
	if err != nil {
		return err
	}
	var b strings.Builder
	writeScripts(&b, scripts, true)
	_, err = io.WriteString(w, b.String())
	return err
}

// Head renders WriteHead to a string.
func (m *Manager) Head() (string, error) {
	var b strings.Builder
	if err := m.WriteHead(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Footer renders WriteFooter to a string.
func (m *Manager) Footer() (string, error) {
	var b strings.Builder
	if err := m.WriteFooter(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeScripts(b *strings.Builder, scripts []Asset, footer bool) {
	for _, script := range scripts {
		if script.InFooter != footer {
			continue
		}
		fmt.Fprintf(b, `<script id="%s-js" src="%s"></script>`, html.EscapeString(script.Handle), html.EscapeString(script.URL))
	}
}

// sanitizeStyle keeps a style block from closing its element.
func sanitizeStyle(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func appendUnique(list []Asset, asset Asset) []Asset {
	asset.Handle = strings.TrimSpace(asset.Handle)
	if asset.Handle == "" {
		return list
	}
	for _, existing := range list {
		if existing.Handle == asset.Handle {
			return list
		}
	}
	asset.Deps = append([]string(nil), asset.Deps...)
	return append(list, asset)
}

func mergeVariants(existing []string, variants []string) []string {
	out := append([]string(nil), existing...)
	for _, variant := range variants {
		variant = strings.TrimSpace(variant)
		if variant == "" {
			continue
		}
		seen := false
		for _, have := range out {
			if have == variant {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, variant)
		}
	}
	return out
}

// order sorts assets so every dependency precedes its dependents, keeping
// registration order otherwise.
func order(kind string, assets []Asset) ([]Asset, error) {
	byHandle := make(map[string]Asset, len(assets))
	for _, asset := range assets {
		byHandle[asset.Handle] = asset
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(assets))
	out := make([]Asset, 0, len(assets))

	var visit func(handle string, from string) error
	visit = func(handle string, from string) error {
		asset, ok := byHandle[handle]
		if !ok {
			return fmt.Errorf("%s %q depends on unregistered %q", kind, from, handle)
		}
		switch state[handle] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%s %q has a dependency cycle", kind, handle)
		}
		state[handle] = visiting
		for _, dep := range asset.Deps {
			if err := visit(dep, handle); err != nil {
				return err
			}
		}
		state[handle] = done
		out = append(out, asset)
		return nil
	}
	for _, asset := range assets {
		if err := visit(asset.Handle, asset.Handle); err != nil {
			return nil, err
		}
	}
	return out, nil
}
