package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Markup writes HTML for a renderer and keeps the first write error. Text and
// attribute values are escaped; href, src and action values are sanitized as
// URLs.
type Markup struct {
	// View is the rendering context of the request.
	View *Context

	ctx context.Context
	w   io.Writer
	err error
}

// NewMarkup returns a writer over w for the rendering context in ctx.
func NewMarkup(ctx context.Context, w io.Writer) *Markup {
	return &Markup{View: FromContext(ctx), ctx: ctx, w: w}
}

// Component adapts a markup-writing function to a templ component.
func Component(fn func(m *Markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := NewMarkup(ctx, w)
		fn(m)
		return m.Err()
	})
}

// Raw writes parts unescaped.
func (m *Markup) Raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

// Text writes value escaped.
func (m *Markup) Text(value string) {
	m.Raw(templ.EscapeString(value))
}

// Open writes a start tag; attrs alternate name and value. Empty values are
// omitted except for alt and value.
func (m *Markup) Open(tag string, attrs ...string) {
	m.Raw("<", tag)
	for idx := 0; idx+1 < len(attrs); idx += 2 {
		name, value := attrs[idx], attrs[idx+1]
		if value == "" && name != "alt" && name != "value" {
			continue
		}
		if name == "href" || name == "src" || name == "action" {
			value = string(templ.URL(value))
		}
		m.Raw(" ", name, `="`, templ.EscapeString(value), `"`)
	}
	m.Raw(">")
}

// Close writes an end tag.
func (m *Markup) Close(tag string) {
	m.Raw("</", tag, ">")
}

// Element writes <tag attrs>text</tag>.
func (m *Markup) Element(tag string, text string, attrs ...string) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Child renders a registry component by key.
func (m *Markup) Child(key string) {
	if m.err != nil {
		return
	}
	m.err = m.View.Render(m.ctx, key, m.w)
}

// Render renders c in place.
func (m *Markup) Render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// Err returns the first error met while writing.
func (m *Markup) Err() error {
	return m.err
}

// Classes joins the non-empty class names.
func Classes(values ...string) string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return strings.Join(out, " ")
}
