// Package component maps symbolic component keys to renderers.
//
// A Registry is populated once at bootstrap, usually through a Builder, and
// is read-only while requests are served. Reads take no locks.
package component

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// Renderer produces the markup of one component for the rendering context
// carried by ctx. templ.Component satisfies Renderer.
type Renderer interface {
	Render(ctx context.Context, w io.Writer) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, w io.Writer) error

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, w io.Writer) error {
	return f(ctx, w)
}

// Entry binds a key to a renderer.
type Entry struct {
	Key      string
	Renderer Renderer
}

// Batch is an ordered set of entries merged with last-writer-wins semantics.
type Batch []Entry

// Registry is the key to renderer table.
type Registry struct {
	entries map[string]Renderer
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Renderer)}
}

// Register inserts or overwrites the renderer for key.
func (r *Registry) Register(key string, renderer Renderer) {
	if r.entries == nil {
		r.entries = make(map[string]Renderer)
	}
	r.entries[key] = renderer
}

// RegisterMany merges batch in order. Keys absent from batch keep their
// current renderer.
func (r *Registry) RegisterMany(batch Batch) {
	for _, entry := range batch {
		r.Register(entry.Key, entry.Renderer)
	}
}

// Get returns the renderer for key or a *NotFoundError. Keys match exactly.
func (r *Registry) Get(key string) (Renderer, error) {
	if r != nil {
		if renderer, ok := r.entries[key]; ok {
			return renderer, nil
		}
	}
	return nil, &NotFoundError{Key: key}
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, err := r.Get(key)
	return err == nil
}

// Render looks up key and writes its output to w unchanged. Renderer errors
// are returned as-is.
func (r *Registry) Render(ctx context.Context, key string, w io.Writer) error {
	renderer, err := r.Get(key)
	if err != nil {
		return err
	}
	if renderer == nil {
		return fmt.Errorf("component %q has a nil renderer", key)
	}
	return renderer.Render(ctx, w)
}

// Keys returns the registered keys in lexical order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}
