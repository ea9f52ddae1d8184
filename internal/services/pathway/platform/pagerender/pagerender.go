// Package pagerender renders theme pages through the component registry.
package pagerender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/httpx"
	"github.com/louisbranch/pathway/internal/theme/i18n"
	"github.com/louisbranch/pathway/internal/theme/manifest"
	"github.com/louisbranch/pathway/internal/theme/view"
)

// TracerName names the tracer of component renders.
const TracerName = "github.com/louisbranch/pathway/internal/services/pathway/platform/pagerender"

// Page describes one page response.
type Page struct {
	Kind        view.Kind
	Title       string
	StatusCode  int
	Posts       []manifest.Post
	Entry       *manifest.Post
	SearchQuery string
	// Main replaces the registry main component, for admin screens.
	Main templ.Component
}

// tracedComposer starts a span around every component render.
type tracedComposer struct {
	next   view.Composer
	tracer trace.Tracer
}

func (c tracedComposer) Render(ctx context.Context, key string, w io.Writer) error {
	ctx, span := c.tracer.Start(ctx, "component "+key, trace.WithAttributes(attribute.String("pathway.component", key)))
	defer span.End()
	err := c.next.Render(ctx, key, w)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Traced wraps composer so nested renders are traced.
func Traced(composer view.Composer) view.Composer {
	return tracedComposer{next: composer, tracer: otel.Tracer(TracerName)}
}

// Context builds the rendering context of page for r. The language cookie is
// refreshed when the language came from the query.
func Context(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) (*view.Context, error) {
	if deps.Theme == nil {
		return nil, fmt.Errorf("theme is not configured")
	}
	tag, setCookie := i18n.ResolveTag(r)
	if setCookie {
		i18n.SetLanguageCookie(w, tag)
	}
	head, err := deps.Theme.Assets.Head()
	if err != nil {
		return nil, fmt.Errorf("render head assets: %w", err)
	}
	return &view.Context{
		Manifest:    deps.Theme.Manifest,
		Components:  Traced(deps.Theme.Registry),
		Kind:        page.Kind,
		Title:       page.Title,
		Path:        r.URL.Path,
		Query:       r.URL.Query(),
		Posts:       page.Posts,
		Entry:       page.Entry,
		SearchQuery: page.SearchQuery,
		HeadMarkup:  head,
		Lang:        tag,
		Printer:     i18n.Printer(tag),
	}, nil
}

// Write renders page into a buffer and writes it with its status. Nothing is
// written to w before rendering succeeds.
func Write(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	rc, err := Context(w, r, deps, page)
	if err != nil {
		return err
	}
	footer, err := deps.Theme.Assets.Footer()
	if err != nil {
		return fmt.Errorf("render footer assets: %w", err)
	}

	ctx := view.WithContext(httpx.RequestContext(r), rc)
	var buf bytes.Buffer
	if err := layout(ctx, rc, &buf, page.Main, footer); err != nil {
		return err
	}

	status := page.StatusCode
	if status <= 0 {
		status = http.StatusOK
	}
	return httpx.WriteHTML(w, status, buf.String())
}

func layout(ctx context.Context, rc *view.Context, w *bytes.Buffer, main templ.Component, footer string) error {
	title := rc.SiteName()
	if t := strings.TrimSpace(rc.Title); t != "" && !rc.IsFront() {
		title = t + " | " + title
	}
	lang := rc.Lang.String()
	if lang == "und" {
		lang = i18n.Default().String()
	}

	m := view.NewMarkup(ctx, w)
	m.Raw("<!DOCTYPE html>")
	m.Open("html", "lang", lang)
	m.Open("head")
	m.Open("meta", "charset", "utf-8")
	m.Open("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
	m.Element("title", title)
	m.Raw(rc.HeadMarkup)
	if err := m.Err(); err != nil {
		return err
	}
	m.Child("css")
	if err := m.Err(); err != nil {
		return fmt.Errorf("render css: %w", err)
	}
	m.Close("head")
	m.Open("body", "class", bodyClass(rc))

	if main != nil {
		m.Render(main)
		if err := m.Err(); err != nil {
			return fmt.Errorf("render page: %w", err)
		}
	} else {
		for _, key := range []string{"header", "main", "front-footer"} {
			m.Child(key)
			if err := m.Err(); err != nil {
				return fmt.Errorf("render %s: %w", key, err)
			}
		}
	}

	m.Raw(footer)
	m.Close("body")
	m.Close("html")
	return m.Err()
}

func bodyClass(rc *view.Context) string {
	classes := []string{"pathway", "page-" + string(rc.Kind)}
	if rc.IsFront() {
		classes = append(classes, "home")
	}
	return view.Classes(classes...)
}
