// Package view carries the per-request rendering context that component
// renderers read from context.Context.
package view

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/pathway/internal/theme/manifest"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind classifies the page being rendered.
type Kind string

const (
	KindFront    Kind = "front"
	KindBlog     Kind = "blog"
	KindSingle   Kind = "single"
	KindPage     Kind = "page"
	KindSearch   Kind = "search"
	KindNotFound Kind = "not-found"
)

// Composer renders a registered component by key.
type Composer interface {
	Render(ctx context.Context, key string, w io.Writer) error
}

// Context is the rendering context of one page.
type Context struct {
	Manifest   *manifest.Manifest
	Components Composer
	Kind       Kind
	Title      string
	Path       string
	Query      url.Values
	// Posts feeds the loops; Entry is the post or page of single views.
	Posts       []manifest.Post
	Entry       *manifest.Post
	SearchQuery string
	// HeadMarkup is the pre-rendered asset block printed in <head>.
	HeadMarkup string
	Lang       language.Tag
	Printer    *message.Printer
	Now        time.Time
}

type contextKey struct{}

// WithContext attaches rc to ctx.
func WithContext(ctx context.Context, rc *Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the attached rendering context or an empty one backed
// by an empty manifest.
func FromContext(ctx context.Context) *Context {
	if ctx != nil {
		if rc, ok := ctx.Value(contextKey{}).(*Context); ok && rc != nil {
			return rc.withDefaults()
		}
	}
	return (&Context{}).withDefaults()
}

func (c *Context) withDefaults() *Context {
	if c.Manifest == nil {
		c.Manifest = &manifest.Manifest{}
	}
	if c.Query == nil {
		c.Query = url.Values{}
	}
	if c.Printer == nil {
		lang := c.Lang
		if lang == language.Und {
			lang = language.English
		}
		c.Printer = message.NewPrinter(lang)
	}
	if c.Now.IsZero() {
		c.Now = time.Now()
	}
	return c
}

// T translates a message key through the context printer.
func (c *Context) T(key message.Reference, args ...any) string {
	return c.Printer.Sprintf(key, args...)
}

// SiteName returns the display name of the site.
func (c *Context) SiteName() string {
	if name := strings.TrimSpace(c.Manifest.Site.Name); name != "" {
		return name
	}
	return c.Manifest.Name
}

// Asset resolves a theme relative path against the theme base URL.
func (c *Context) Asset(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || strings.Contains(path, "://") || strings.HasPrefix(path, "//") {
		return path
	}
	return c.Manifest.BaseURL + "/" + strings.TrimLeft(path, "/")
}

// Render renders a nested component through the page's composer.
func (c *Context) Render(ctx context.Context, key string, w io.Writer) error {
	if c.Components == nil {
		return errors.New("rendering context has no component composer")
	}
	return c.Components.Render(ctx, key, w)
}

// IsFront reports whether the front page is rendered.
func (c *Context) IsFront() bool {
	return c.Kind == KindFront
}
