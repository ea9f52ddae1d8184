// Package content supplies the posts and pages the site renders.
package content

import (
	"context"
	"sort"
	"strings"

	"github.com/louisbranch/pathway/internal/theme/manifest"
)

// Source looks up site content.
type Source interface {
	Posts(ctx context.Context) ([]manifest.Post, error)
	Post(ctx context.Context, slug string) (manifest.Post, bool, error)
	Page(ctx context.Context, slug string) (manifest.Post, bool, error)
	Search(ctx context.Context, query string) ([]manifest.Post, error)
}

// Static serves the demo content of a manifest.
type Static struct {
	posts []manifest.Post
	pages []manifest.Post
}

var _ Source = (*Static)(nil)

// NewStatic copies the manifest content. Posts are listed newest first.
func NewStatic(m *manifest.Manifest) *Static {
	if m == nil {
		return &Static{}
	}
	posts := append([]manifest.Post(nil), m.Posts...)
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Date > posts[j].Date })
	return &Static{posts: posts, pages: append([]manifest.Post(nil), m.Pages...)}
}

// Posts returns every post.
func (s *Static) Posts(ctx context.Context) ([]manifest.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]manifest.Post(nil), s.posts...), nil
}

// Post finds a post by slug.
func (s *Static) Post(ctx context.Context, slug string) (manifest.Post, bool, error) {
	return find(ctx, s.posts, slug)
}

// Page finds a page by slug.
func (s *Static) Page(ctx context.Context, slug string) (manifest.Post, bool, error) {
	return find(ctx, s.pages, slug)
}

// Search returns the posts whose title, excerpt or body contain every word of
// query, ignoring case. An empty query matches nothing.
func (s *Static) Search(ctx context.Context, query string) ([]manifest.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil, nil
	}
	var out []manifest.Post
	for _, post := range s.posts {
		haystack := strings.ToLower(post.Title + " " + post.Excerpt + " " + post.Body)
		matched := true
		for _, word := range words {
			if !strings.Contains(haystack, word) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, post)
		}
	}
	return out, nil
}

func find(ctx context.Context, items []manifest.Post, slug string) (manifest.Post, bool, error) {
	if err := ctx.Err(); err != nil {
		return manifest.Post{}, false, err
	}
	for _, item := range items {
		if item.Slug == slug {
			return item, true, nil
		}
	}
	return manifest.Post{}, false, nil
}
